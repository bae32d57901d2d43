// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// MsgEmptyCart is shown in place of cart lines when the cart has none.
const MsgEmptyCart = "Your cart is empty."

const currencySymbol = "€"

// FormatPrice renders an amount with the euro sign and two decimals,
// e.g. 12.5 as "€12.50".
func FormatPrice(v float64) string {
	return currencySymbol + decimal.NewFromFloat(v).StringFixed(2)
}

// CandidateResponse is one search result.
type CandidateResponse struct {
	Domain    string `json:"domain"`
	TLD       string `json:"tld"`
	Price     string `json:"price"`
	Status    string `json:"status"`
	Available bool   `json:"available"`
}

// LineResponse is one cart line. Index is the position used for removal.
type LineResponse struct {
	Index  int    `json:"index"`
	Domain string `json:"domain"`
	TLD    string `json:"tld"`
	Price  string `json:"price"`
}

// CartResponse is the mini-cart panel.
type CartResponse struct {
	Items    []LineResponse `json:"items"`
	Count    int            `json:"count"`
	Subtotal string         `json:"subtotal"`
	Visible  bool           `json:"visible"`
	Message  string         `json:"message,omitempty"`
}

// StorefrontResponse is the full page state for one session.
type StorefrontResponse struct {
	Phase   string              `json:"phase"`
	Query   string              `json:"query,omitempty"`
	Results []CandidateResponse `json:"results"`
	Message string              `json:"message,omitempty"`
	Cart    CartResponse        `json:"cart"`
}

// CheckoutResponse is the checkout page.
type CheckoutResponse struct {
	Items    []LineResponse `json:"items"`
	Subtotal string         `json:"subtotal"`
	Tax      string         `json:"tax"`
	Total    string         `json:"total"`
	Message  string         `json:"message,omitempty"`
}

// ToggleResponse reports the mini-cart visibility after a toggle.
type ToggleResponse struct {
	Visible bool `json:"visible"`
}

// AddToCartResponse reports the added line and the cart that now holds it.
type AddToCartResponse struct {
	Added   LineResponse `json:"added"`
	Message string       `json:"message,omitempty"`
	Cart    CartResponse `json:"cart"`
}

// ToCandidateResponse converts an availability candidate to its DTO.
func ToCandidateResponse(c availability.Candidate) CandidateResponse {
	return CandidateResponse{
		Domain:    c.Domain(),
		TLD:       c.Suffix,
		Price:     FormatPrice(c.Price),
		Status:    c.Status.String(),
		Available: c.Available(),
	}
}

// ToLineResponse converts a cart line at position i to its DTO.
func ToLineResponse(i int, l cart.Line) LineResponse {
	return LineResponse{
		Index:  i,
		Domain: l.Domain(),
		TLD:    l.Suffix,
		Price:  FormatPrice(l.Price),
	}
}

func toLineResponses(lines []cart.Line) []LineResponse {
	items := make([]LineResponse, len(lines))
	for i, l := range lines {
		items[i] = ToLineResponse(i, l)
	}
	return items
}

// ToCartResponse builds the mini-cart panel from a storefront snapshot.
func ToCartResponse(v ports.StorefrontView) CartResponse {
	resp := CartResponse{
		Items:    toLineResponses(v.Lines),
		Count:    len(v.Lines),
		Subtotal: FormatPrice(v.Subtotal),
		Visible:  v.CartVisible,
	}
	if len(v.Lines) == 0 {
		resp.Message = MsgEmptyCart
	}
	return resp
}

// ToStorefrontResponse converts a storefront snapshot to its DTO.
func ToStorefrontResponse(v ports.StorefrontView) StorefrontResponse {
	results := make([]CandidateResponse, len(v.Results))
	for i, c := range v.Results {
		results[i] = ToCandidateResponse(c)
	}
	return StorefrontResponse{
		Phase:   string(v.Phase),
		Query:   v.Query,
		Results: results,
		Message: v.Message,
		Cart:    ToCartResponse(v),
	}
}

// ToCheckoutResponse converts a checkout snapshot to its DTO.
func ToCheckoutResponse(v ports.CheckoutView) CheckoutResponse {
	resp := CheckoutResponse{
		Items:    toLineResponses(v.Lines),
		Subtotal: FormatPrice(v.Totals.Subtotal),
		Tax:      FormatPrice(v.Totals.Tax),
		Total:    FormatPrice(v.Totals.Total),
	}
	if len(v.Lines) == 0 {
		resp.Message = MsgEmptyCart
	}
	return resp
}
