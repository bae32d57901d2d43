package ports

import (
	"context"

	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
)

// AvailabilityProvider defines the client port for availability lookups.
// Implemented by the fixture and registrar adapters; called by the storefront.
type AvailabilityProvider interface {
	// Query returns exactly one candidate per supported suffix, in the fixed
	// suffix order. The result is complete or the call fails: a failed lookup
	// returns an error wrapping domain.ErrProviderFailure, never a partial list.
	// Callers guarantee name is non-empty and meets the minimum length.
	Query(ctx context.Context, name string) ([]availability.Candidate, error)
}
