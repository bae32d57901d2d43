package ports

import (
	"context"

	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
)

// Phase is the lifecycle position of the most recent query.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseQuerying Phase = "querying"
	PhaseResults  Phase = "results"
	PhaseRejected Phase = "rejected"
)

// StorefrontView is a point-in-time snapshot of one session's storefront,
// handed to whatever renders it.
type StorefrontView struct {
	Phase       Phase
	Query       string
	Results     []availability.Candidate
	Message     string
	CartVisible bool
	Lines       []cart.Line
	Subtotal    float64
}

// CheckoutView holds the cart lines and their totals at checkout.
type CheckoutView struct {
	Lines  []cart.Line
	Totals cart.Totals
}

// StorefrontService defines the service port for one session's storefront.
// Implemented by the application layer; called by inbound adapters.
type StorefrontService interface {
	// Submit validates name and, when valid, replaces the displayed results
	// with a fresh availability query.
	// Returns domain.ErrInvalidQuery without querying when name is too short,
	// domain.ErrProviderFailure when the lookup fails and
	// domain.ErrStaleResponse when a newer query superseded this one.
	Submit(ctx context.Context, name string) ([]availability.Candidate, error)

	// AddResult adds the displayed candidate with the given suffix to the cart.
	// Returns domain.ErrNotFound when no such result is displayed,
	// domain.ErrNotAvailable for taken domains and domain.ErrDuplicateItem
	// when the domain is already in the cart.
	AddResult(ctx context.Context, suffix string) (cart.Line, error)

	// AddToCart adds a candidate to the cart directly.
	AddToCart(ctx context.Context, c availability.Candidate) (cart.Line, error)

	// RemoveFromCart removes the line at index.
	// Returns domain.ErrIndexOutOfRange for an invalid index.
	RemoveFromCart(ctx context.Context, index int) (cart.Line, error)

	// ToggleCart flips the mini-cart panel visibility and returns the new value.
	ToggleCart(ctx context.Context) bool

	// State returns the current storefront snapshot.
	State(ctx context.Context) StorefrontView

	// Checkout returns the cart lines with computed totals.
	Checkout(ctx context.Context) CheckoutView
}

// SessionResolver returns the storefront belonging to a session id, creating
// it on first use.
type SessionResolver interface {
	Resolve(ctx context.Context, sessionID string) (StorefrontService, error)
}
