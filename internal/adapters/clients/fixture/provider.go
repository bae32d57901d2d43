// Package fixture provides a deterministic ports.AvailabilityProvider for
// local development and tests. Price and status are a pure function of the
// (name, suffix) pair, so repeated queries return identical quotes.
package fixture

import (
	"context"
	"hash/fnv"

	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// Compile-time check that Provider implements ports.AvailabilityProvider.
var _ ports.AvailabilityProvider = (*Provider)(nil)

// Prices are whole amounts in [minPrice, maxPrice].
const (
	minPrice = 1
	maxPrice = 99
)

// Provider quotes every configured suffix without any I/O.
type Provider struct {
	suffixes []string
}

// New returns a Provider for suffixes in the given order. An empty list
// selects availability.DefaultSuffixes.
func New(suffixes []string) *Provider {
	if len(suffixes) == 0 {
		suffixes = availability.DefaultSuffixes
	}
	return &Provider{suffixes: append([]string(nil), suffixes...)}
}

// Query implements ports.AvailabilityProvider.
func (p *Provider) Query(ctx context.Context, name string) ([]availability.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]availability.Candidate, len(p.suffixes))
	for i, suffix := range p.suffixes {
		out[i] = Quote(name, suffix)
	}
	return out, nil
}

// Quote returns the fixture's quote for one pair.
func Quote(name, suffix string) availability.Candidate {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	_, _ = h.Write([]byte{'.'})
	_, _ = h.Write([]byte(suffix))
	sum := h.Sum64()

	status := availability.StatusAvailable
	if sum&1 == 1 {
		status = availability.StatusTaken
	}

	return availability.Candidate{
		Name:   name,
		Suffix: suffix,
		Price:  float64(minPrice + (sum>>1)%(maxPrice-minPrice+1)),
		Status: status,
	}
}
