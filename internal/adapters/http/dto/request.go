package dto

import (
	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
)

// SearchRequest is the JSON body for POST /api/v1/search. Name is checked by
// the storefront itself so that rejections carry the shopper-facing message.
type SearchRequest struct {
	Name string `json:"name"`
}

// AddToCartRequest is the JSON body for POST /api/v1/cart. TLD selects one of
// the currently displayed results; prices are never taken from the client.
type AddToCartRequest struct {
	TLD string `json:"tld"`
}

// Validate checks that a suffix was given.
// Returns a *domain.ValidationError if any checks fail.
func (r *AddToCartRequest) Validate() error {
	r.TLD = availability.NormalizeSuffix(r.TLD)
	if r.TLD == "" {
		return &domain.ValidationError{Fields: map[string]string{"tld": domain.MsgRequired}}
	}
	return nil
}
