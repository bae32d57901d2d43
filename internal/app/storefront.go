// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
//
// Storefront drives one session's query, results, and cart cycle. CartStore is
// the session's single cart writer. Sessions maps session ids to storefronts.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// Compile-time check that Storefront implements ports.StorefrontService.
var _ ports.StorefrontService = (*Storefront)(nil)

// DefaultMinQueryLength is the shortest name, in characters, that is queried.
const DefaultMinQueryLength = 3

// User-facing messages set on the storefront state.
const (
	MsgEmptyQuery         = "Please enter a domain name"
	MsgShortQuery         = "Please enter a valid domain name"
	MsgDuplicateItem      = "This domain is already in the cart."
	MsgNotAvailable       = "This domain is not available."
	MsgNotInResults       = "This domain is not in the current results."
	MsgProviderFailure    = "Could not check availability right now. Please try again."
	MsgPersistenceFailure = "Your cart could not be saved. Please try again."
)

// StorefrontOptions configures a Storefront. Zero values select defaults.
type StorefrontOptions struct {
	MinQueryLength int
	Recorder       Recorder
	Logger         *slog.Logger
}

// Storefront implements ports.StorefrontService. It owns the transient
// per-session state (query, results, message, cart visibility) and changes the
// cart only through its CartStore.
//
// The provider is called without holding the lock. Each submission takes a new
// generation number and only the newest generation may replace the results, so
// a superseded lookup that returns late is discarded.
type Storefront struct {
	provider ports.AvailabilityProvider
	store    *CartStore
	policy   cart.PricePolicy
	minLen   int
	recorder Recorder
	logger   *slog.Logger

	mu          sync.Mutex
	generation  uint64
	phase       ports.Phase
	query       string
	results     []availability.Candidate
	message     string
	cartVisible bool
}

// NewStorefront creates a Storefront over a provider and a loaded cart.
func NewStorefront(provider ports.AvailabilityProvider, store *CartStore, policy cart.PricePolicy, opts StorefrontOptions) *Storefront {
	if opts.MinQueryLength <= 0 {
		opts.MinQueryLength = DefaultMinQueryLength
	}
	if opts.Recorder == nil {
		opts.Recorder = noopRecorder{}
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	return &Storefront{
		provider: provider,
		store:    store,
		policy:   policy,
		minLen:   opts.MinQueryLength,
		recorder: opts.Recorder,
		logger:   opts.Logger,
		phase:    ports.PhaseIdle,
	}
}

// Submit validates name and replaces the displayed results with a new query.
func (s *Storefront) Submit(ctx context.Context, name string) ([]availability.Candidate, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if msg := s.checkQuery(name); msg != "" {
		s.mu.Lock()
		s.phase = ports.PhaseRejected
		s.message = msg
		s.mu.Unlock()

		s.recorder.RecordQuery(ctx, ResultRejected)
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidQuery,
			&domain.ValidationError{Fields: map[string]string{"name": msg}})
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.phase = ports.PhaseQuerying
	s.message = ""
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "querying availability", slog.String("name", name))
	results, err := s.provider.Query(ctx, name)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.generation {
		s.logger.DebugContext(ctx, "discarding superseded availability response",
			slog.String("name", name),
			slog.Uint64("generation", gen),
			slog.Uint64("current", s.generation),
		)
		s.recorder.RecordQuery(ctx, ResultStale)
		return nil, fmt.Errorf("query %q: %w", name, domain.ErrStaleResponse)
	}

	if err != nil {
		s.logger.ErrorContext(ctx, "failed to query availability",
			slog.String("operation", "Submit"),
			slog.String("name", name),
			slog.Any("error", err),
		)
		s.phase = ports.PhaseIdle
		if s.results != nil {
			s.phase = ports.PhaseResults
		}
		s.message = MsgProviderFailure
		s.recorder.RecordQuery(ctx, ResultFailed)
		if !errors.Is(err, domain.ErrProviderFailure) {
			err = fmt.Errorf("%w: %w", domain.ErrProviderFailure, err)
		}
		return nil, err
	}

	s.phase = ports.PhaseResults
	s.query = name
	s.results = slices.Clone(results)
	s.recorder.RecordQuery(ctx, ResultOK)
	return slices.Clone(results), nil
}

// checkQuery returns the rejection message for name, or "" when it is valid.
func (s *Storefront) checkQuery(name string) string {
	switch {
	case name == "":
		return MsgEmptyQuery
	case utf8.RuneCountInString(name) < s.minLen:
		return MsgShortQuery
	default:
		return ""
	}
}

// AddResult adds the displayed candidate for suffix. Using the displayed
// result keeps the quoted price authoritative.
func (s *Storefront) AddResult(ctx context.Context, suffix string) (cart.Line, error) {
	s.mu.Lock()
	idx := slices.IndexFunc(s.results, func(c availability.Candidate) bool { return c.Suffix == suffix })
	var c availability.Candidate
	if idx >= 0 {
		c = s.results[idx]
	} else {
		s.message = MsgNotInResults
	}
	s.mu.Unlock()

	if idx < 0 {
		s.recorder.RecordCartMutation(ctx, "add", ResultNotFound)
		return cart.Line{}, fmt.Errorf("no displayed result for %q: %w", suffix, domain.ErrNotFound)
	}
	return s.AddToCart(ctx, c)
}

// AddToCart adds c to the cart. Results stay as displayed whatever the outcome.
func (s *Storefront) AddToCart(ctx context.Context, c availability.Candidate) (cart.Line, error) {
	line, err := s.store.Add(ctx, c)

	result, msg := mutationOutcome(err)
	switch {
	case errors.Is(err, domain.ErrDuplicateItem):
		msg = MsgDuplicateItem
	case errors.Is(err, domain.ErrNotAvailable):
		result, msg = ResultUnavailable, MsgNotAvailable
	}

	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()

	s.recorder.RecordCartMutation(ctx, "add", result)
	if err != nil {
		return cart.Line{}, err
	}
	s.logger.InfoContext(ctx, "added to cart", slog.String("domain", line.Domain()))
	return line, nil
}

// RemoveFromCart removes the line at index. An invalid index is logged and
// reported without changing any state.
func (s *Storefront) RemoveFromCart(ctx context.Context, index int) (cart.Line, error) {
	line, err := s.store.RemoveAt(ctx, index)

	result, msg := mutationOutcome(err)
	if errors.Is(err, domain.ErrIndexOutOfRange) {
		s.logger.WarnContext(ctx, "ignoring removal at invalid cart index",
			slog.String("operation", "RemoveFromCart"),
			slog.Int("index", index),
			slog.Any("error", err),
		)
	}

	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()

	s.recorder.RecordCartMutation(ctx, "remove", result)
	if err != nil {
		return cart.Line{}, err
	}
	s.logger.InfoContext(ctx, "removed from cart", slog.String("domain", line.Domain()))
	return line, nil
}

func mutationOutcome(err error) (result, msg string) {
	switch {
	case err == nil:
		return ResultOK, ""
	case errors.Is(err, domain.ErrDuplicateItem):
		return ResultDuplicate, ""
	case errors.Is(err, domain.ErrIndexOutOfRange):
		return ResultNotFound, ""
	case errors.Is(err, domain.ErrPersistenceWrite):
		return ResultFailed, MsgPersistenceFailure
	default:
		return ResultFailed, ""
	}
}

// ToggleCart flips the mini-cart panel visibility. It gates nothing else.
func (s *Storefront) ToggleCart(_ context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartVisible = !s.cartVisible
	return s.cartVisible
}

// State returns a snapshot of the storefront and its cart.
func (s *Storefront) State(_ context.Context) ports.StorefrontView {
	lines := s.store.Lines()

	s.mu.Lock()
	defer s.mu.Unlock()
	return ports.StorefrontView{
		Phase:       s.phase,
		Query:       s.query,
		Results:     slices.Clone(s.results),
		Message:     s.message,
		CartVisible: s.cartVisible,
		Lines:       lines,
		Subtotal:    cart.Subtotal(lines),
	}
}

// Checkout returns the current lines and their totals.
func (s *Storefront) Checkout(_ context.Context) ports.CheckoutView {
	lines := s.store.Lines()
	return ports.CheckoutView{
		Lines:  lines,
		Totals: s.policy.ComputeTotals(lines),
	}
}

// Cart returns the store backing this storefront.
func (s *Storefront) Cart() *CartStore {
	return s.store
}
