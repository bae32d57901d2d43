// Package commands holds the cobra command tree of the terminal storefront.
// Every invocation opens the cart from the file store, runs one storefront
// operation and exits; the cart is written through on each change.
package commands
