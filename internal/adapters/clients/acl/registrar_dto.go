package acl

import "github.com/shopspring/decimal"

// Registrar status values. Anything other than statusFree is treated as taken.
const (
	statusFree   = "free"
	statusActive = "active"
)

// CheckRequestDTO is the registrar's availability request body.
type CheckRequestDTO struct {
	Name      string `json:"name"`
	Extension string `json:"extension"`
}

// CheckResponseDTO is the registrar's availability answer for one extension.
// Price arrives as either a JSON string or a number; decimal accepts both.
type CheckResponseDTO struct {
	Domain string          `json:"domain"`
	TLD    string          `json:"tld"`
	Price  decimal.Decimal `json:"price"`
	Status string          `json:"status"`
}
