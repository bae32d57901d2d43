// Package availability holds the quote a registrar returns for one name and
// suffix. Candidates are produced fresh for every query and are never stored.
package availability

import (
	"fmt"
	"math"
	"strings"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
)

// Candidate is one suffix's availability quote for a queried name.
type Candidate struct {
	Name   string
	Suffix string
	Price  float64
	Status Status
}

// Domain returns the fully qualified name, e.g. "foo.com".
func (c Candidate) Domain() string {
	return c.Name + "." + c.Suffix
}

// Available reports whether the candidate may be added to a cart.
func (c Candidate) Available() bool {
	return c.Status == StatusAvailable
}

// Validate checks that a quote is usable by the cart.
// Returns a *domain.ValidationError with per-field details, or nil.
func (c *Candidate) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(c.Name) == "" {
		fields["name"] = domain.MsgRequired
	}
	if strings.TrimSpace(c.Suffix) == "" {
		fields["suffix"] = domain.MsgRequired
	}
	switch {
	case math.IsNaN(c.Price) || math.IsInf(c.Price, 0):
		fields["price"] = fmt.Sprintf("must be a finite number, got %v", c.Price)
	case c.Price < 0:
		fields["price"] = fmt.Sprintf("must be non-negative, got %v", c.Price)
	}
	if !c.Status.IsValid() {
		fields["status"] = fmt.Sprintf("invalid: %q", c.Status)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
