package app

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// CartKey is the storage key holding the serialized cart.
const CartKey = "cartItems"

// CartStore is the single writer of a session's cart lines. Every mutation is
// persisted through the KV port before it becomes visible in memory, so a
// successful return guarantees storage and memory agree. Mutations are
// serialized; subscribers are notified after each successful one.
type CartStore struct {
	mu          sync.Mutex
	kv          ports.KVStore
	lines       []cart.Line
	subscribers map[int]func([]cart.Line)
	nextSubID   int
	logger      *slog.Logger
}

// NewCartStore creates a CartStore and loads the persisted cart once.
func NewCartStore(ctx context.Context, kv ports.KVStore, logger *slog.Logger) *CartStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &CartStore{
		kv:          kv,
		subscribers: make(map[int]func([]cart.Line)),
		logger:      logger,
	}
	s.lines = s.Load(ctx)
	return s
}

// Load reads and decodes the persisted cart. Absent, unreadable, or malformed
// data yields an empty cart; the failure is logged, never returned.
func (s *CartStore) Load(ctx context.Context) []cart.Line {
	payload, ok, err := s.kv.Get(ctx, CartKey)
	if err != nil {
		s.logger.WarnContext(ctx, "cart storage unreadable, starting empty",
			slog.String("operation", "Load"),
			slog.Any("error", err),
		)
		return []cart.Line{}
	}
	if !ok || payload == "" {
		return []cart.Line{}
	}

	lines, err := decodeLines(payload)
	if err != nil {
		s.logger.WarnContext(ctx, "persisted cart malformed, starting empty",
			slog.String("operation", "Load"),
			slog.Any("error", err),
		)
		return []cart.Line{}
	}
	return lines
}

// Lines returns a snapshot of the current cart.
func (s *CartStore) Lines() []cart.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lines)
}

// Len returns the number of lines.
func (s *CartStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

// Add appends an available candidate and persists the cart.
// Returns a *domain.ValidationError for a malformed quote,
// domain.ErrNotAvailable for taken candidates, domain.ErrDuplicateItem
// when the (name, suffix) pair is already present and domain.ErrPersistenceWrite
// when the write fails. State is unchanged on any error.
func (s *CartStore) Add(ctx context.Context, c availability.Candidate) (cart.Line, error) {
	if err := c.Validate(); err != nil {
		return cart.Line{}, fmt.Errorf("add %s: %w", c.Domain(), err)
	}
	if !c.Available() {
		return cart.Line{}, fmt.Errorf("add %s: %w", c.Domain(), domain.ErrNotAvailable)
	}
	line := cart.FromCandidate(c)

	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := cart.Append(s.lines, line)
	if err != nil {
		return cart.Line{}, err
	}
	if err := s.commit(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart",
			slog.String("operation", "Add"),
			slog.String("domain", line.Domain()),
			slog.Any("error", err),
		)
		return cart.Line{}, err
	}
	return line, nil
}

// RemoveAt removes the line at index and persists the cart.
// Returns domain.ErrIndexOutOfRange for an invalid index and
// domain.ErrPersistenceWrite when the write fails. State is unchanged on error.
func (s *CartStore) RemoveAt(ctx context.Context, index int) (cart.Line, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, removed, err := cart.RemoveAt(s.lines, index)
	if err != nil {
		return cart.Line{}, err
	}
	if err := s.commit(ctx, next); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart",
			slog.String("operation", "RemoveAt"),
			slog.Int("index", index),
			slog.Any("error", err),
		)
		return cart.Line{}, err
	}
	return removed, nil
}

// Save persists the current lines unchanged.
func (s *CartStore) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx, s.lines)
}

// Subscribe registers fn to receive a snapshot after every successful
// mutation. fn runs while the store is locked and must not call back into it.
// The returned function removes the subscription.
func (s *CartStore) Subscribe(fn func([]cart.Line)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// commit persists next and only then makes it the current cart.
// Callers hold s.mu.
func (s *CartStore) commit(ctx context.Context, next []cart.Line) error {
	if err := s.persist(ctx, next); err != nil {
		return err
	}
	s.lines = next
	for _, fn := range s.subscribers {
		fn(slices.Clone(next))
	}
	return nil
}

func (s *CartStore) persist(ctx context.Context, lines []cart.Line) error {
	payload, err := encodeLines(lines)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
	}
	if err := s.kv.Set(ctx, CartKey, payload); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrPersistenceWrite, err)
	}
	return nil
}
