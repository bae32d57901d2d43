// Package domain contains shared domain types used across the storefront
// sub-packages. Entity-specific types live in sub-packages (domain/availability,
// domain/cart). This root package holds the sentinel errors and the validation
// error type that adapters translate into transport status codes.
package domain
