// Package ports holds the interfaces the storefront layers meet at. Handlers
// call the service ports implemented in app; app calls the availability,
// storage and health ports implemented by outbound adapters and platform code.
package ports
