package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// Compile-time check that Sessions implements ports.SessionResolver.
var _ ports.SessionResolver = (*Sessions)(nil)

// KVFactory returns the persistence boundary scoped to one session.
type KVFactory func(sessionID string) ports.KVStore

// Sessions keeps the most recently used storefronts in memory, one per session.
// An evicted session loses only its transient query state; its cart was
// already persisted and is reloaded on the next request.
type Sessions struct {
	mu       sync.Mutex
	cache    *lru.Cache[string, *Storefront]
	provider ports.AvailabilityProvider
	kvFor    KVFactory
	policy   cart.PricePolicy
	opts     StorefrontOptions
	logger   *slog.Logger
}

// NewSessions creates a session cache holding at most maxSessions storefronts.
func NewSessions(
	maxSessions int,
	provider ports.AvailabilityProvider,
	kvFor KVFactory,
	policy cart.PricePolicy,
	opts StorefrontOptions,
) (*Sessions, error) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Recorder == nil {
		opts.Recorder = noopRecorder{}
	}

	logger := opts.Logger
	cache, err := lru.NewWithEvict(maxSessions, func(id string, _ *Storefront) {
		logger.Debug("evicted session storefront", slog.String("session", sessionTag(id)))
	})
	if err != nil {
		return nil, fmt.Errorf("creating session cache: %w", err)
	}

	return &Sessions{
		cache:    cache,
		provider: provider,
		kvFor:    kvFor,
		policy:   policy,
		opts:     opts,
		logger:   logger,
	}, nil
}

// Resolve returns the storefront for sessionID, loading its cart on first use.
func (s *Sessions) Resolve(ctx context.Context, sessionID string) (ports.StorefrontService, error) {
	return s.Storefront(ctx, sessionID)
}

// Storefront is Resolve with the concrete type.
func (s *Sessions) Storefront(ctx context.Context, sessionID string) (*Storefront, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("resolve session: empty session id: %w", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sf, ok := s.cache.Get(sessionID); ok {
		return sf, nil
	}

	store := NewCartStore(ctx, s.kvFor(sessionID), s.logger.With(slog.String("session", sessionTag(sessionID))))
	recorder := s.opts.Recorder
	store.Subscribe(func(lines []cart.Line) {
		recorder.RecordCartSize(context.Background(), len(lines))
	})

	opts := s.opts
	opts.Logger = s.logger.With(slog.String("session", sessionTag(sessionID)))
	sf := NewStorefront(s.provider, store, s.policy, opts)
	s.cache.Add(sessionID, sf)

	s.logger.DebugContext(ctx, "created session storefront",
		slog.String("session", sessionTag(sessionID)),
		slog.Int("cart_size", store.Len()),
	)
	return sf, nil
}

// Len returns the number of storefronts held in memory.
func (s *Sessions) Len() int {
	return s.cache.Len()
}

// sessionTag shortens a session id for logs. The full id is a credential.
func sessionTag(id string) string {
	const n = 8
	if len(id) <= n {
		return id
	}
	return id[:n]
}
