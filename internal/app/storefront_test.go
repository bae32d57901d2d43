package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/domain-storefront/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/cart"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
	"github.com/jsamuelsen11/domain-storefront/mocks"
)

// recordingRecorder collects recorded measurements for assertions.
type recordingRecorder struct {
	mu        sync.Mutex
	queries   []string
	mutations []string
}

func (r *recordingRecorder) RecordQuery(_ context.Context, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, result)
}

func (r *recordingRecorder) RecordCartMutation(_ context.Context, op, result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mutations = append(r.mutations, op+":"+result)
}

func (r *recordingRecorder) RecordCartSize(context.Context, int) {}

func quotes(name string, statuses ...availability.Status) []availability.Candidate {
	suffixes := []string{"com", "nl", "io"}
	out := make([]availability.Candidate, len(statuses))
	for i, st := range statuses {
		out[i] = availability.Candidate{Name: name, Suffix: suffixes[i], Price: float64(10 * (i + 1)), Status: st}
	}
	return out
}

func newTestStorefront(t *testing.T, provider ports.AvailabilityProvider) (*Storefront, *recordingRecorder) {
	t.Helper()
	rec := &recordingRecorder{}
	store := NewCartStore(context.Background(), memory.New(), discardLogger())
	sf := NewStorefront(provider, store, cart.NewPricePolicy(cart.DefaultTaxRate), StorefrontOptions{
		Recorder: rec,
		Logger:   discardLogger(),
	})
	return sf, rec
}

func TestStorefront_Submit_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		query   string
		wantMsg string
	}{
		{name: "empty", query: "", wantMsg: MsgEmptyQuery},
		{name: "whitespace", query: "   ", wantMsg: MsgEmptyQuery},
		{name: "one char", query: "a", wantMsg: MsgShortQuery},
		{name: "two chars", query: "ab", wantMsg: MsgShortQuery},
		{name: "two runes", query: "éé", wantMsg: MsgShortQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			provider := mocks.NewMockAvailabilityProvider(t)
			sf, rec := newTestStorefront(t, provider)

			_, err := sf.Submit(context.Background(), tt.query)
			if !errors.Is(err, domain.ErrInvalidQuery) {
				t.Fatalf("Submit(%q) error = %v, want ErrInvalidQuery", tt.query, err)
			}
			var verr *domain.ValidationError
			if !errors.As(err, &verr) || verr.Fields["name"] != tt.wantMsg {
				t.Errorf("Submit(%q) validation fields = %v, want name=%q", tt.query, verr, tt.wantMsg)
			}

			st := sf.State(context.Background())
			if st.Phase != ports.PhaseRejected || st.Message != tt.wantMsg {
				t.Errorf("State() = phase %q msg %q, want rejected %q", st.Phase, st.Message, tt.wantMsg)
			}
			if len(rec.queries) != 1 || rec.queries[0] != ResultRejected {
				t.Errorf("recorded queries = %v, want [rejected]", rec.queries)
			}
			// provider mock has no expectations: any call fails the test.
		})
	}
}

func TestStorefront_Submit_ReplacesResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := mocks.NewMockAvailabilityProvider(t)
	provider.EXPECT().Query(mock.Anything, "foo").Return(quotes("foo", availability.StatusAvailable, availability.StatusTaken), nil).Once()
	provider.EXPECT().Query(mock.Anything, "bar").Return(quotes("bar", availability.StatusTaken), nil).Once()
	sf, _ := newTestStorefront(t, provider)

	got, err := sf.Submit(ctx, "  FOO ")
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(got))
	}

	if _, err := sf.Submit(ctx, "bar"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	st := sf.State(ctx)
	if st.Phase != ports.PhaseResults || st.Query != "bar" || len(st.Results) != 1 {
		t.Errorf("State() = %+v, want only bar's results", st)
	}
}

func TestStorefront_Submit_ProviderFailureKeepsResults(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := mocks.NewMockAvailabilityProvider(t)
	provider.EXPECT().Query(mock.Anything, "foo").Return(quotes("foo", availability.StatusAvailable), nil).Once()
	provider.EXPECT().Query(mock.Anything, "bar").Return(nil, errors.New("timeout")).Once()
	sf, rec := newTestStorefront(t, provider)

	if _, err := sf.Submit(ctx, "foo"); err != nil {
		t.Fatalf("Submit(foo) error = %v", err)
	}
	_, err := sf.Submit(ctx, "bar")
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("Submit(bar) error = %v, want ErrProviderFailure", err)
	}
	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Submit(bar) error should wrap ErrUnavailable")
	}

	st := sf.State(ctx)
	if st.Query != "foo" || len(st.Results) != 1 || st.Phase != ports.PhaseResults {
		t.Errorf("State() = %+v, want foo's results still displayed", st)
	}
	if st.Message != MsgProviderFailure {
		t.Errorf("Message = %q, want %q", st.Message, MsgProviderFailure)
	}
	if rec.queries[1] != ResultFailed {
		t.Errorf("recorded = %v, want second query failed", rec.queries)
	}
}

func TestStorefront_Submit_ProviderFailureWithoutPriorResults(t *testing.T) {
	t.Parallel()
	provider := mocks.NewMockAvailabilityProvider(t)
	provider.EXPECT().Query(mock.Anything, "foo").Return(nil, domain.ErrProviderFailure)
	sf, _ := newTestStorefront(t, provider)

	_, err := sf.Submit(context.Background(), "foo")
	if !errors.Is(err, domain.ErrProviderFailure) {
		t.Fatalf("Submit() error = %v, want ErrProviderFailure", err)
	}
	if st := sf.State(context.Background()); st.Phase != ports.PhaseIdle {
		t.Errorf("Phase = %q, want idle", st.Phase)
	}
}

func TestStorefront_Submit_ZeroCandidatesIsNotAFailure(t *testing.T) {
	t.Parallel()
	provider := mocks.NewMockAvailabilityProvider(t)
	provider.EXPECT().Query(mock.Anything, "foo").Return([]availability.Candidate{}, nil)
	sf, _ := newTestStorefront(t, provider)

	got, err := sf.Submit(context.Background(), "foo")
	if err != nil || len(got) != 0 {
		t.Fatalf("Submit() = %v, %v, want empty results and nil", got, err)
	}
	if st := sf.State(context.Background()); st.Phase != ports.PhaseResults {
		t.Errorf("Phase = %q, want results", st.Phase)
	}
}

func TestStorefront_Submit_DiscardsStaleResponse(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	slowStarted := make(chan struct{})
	releaseSlow := make(chan struct{})
	provider := mocks.NewMockAvailabilityProvider(t)
	provider.EXPECT().Query(mock.Anything, "slow").RunAndReturn(func(context.Context, string) ([]availability.Candidate, error) {
		close(slowStarted)
		<-releaseSlow
		return quotes("slow", availability.StatusAvailable), nil
	}).Once()
	provider.EXPECT().Query(mock.Anything, "fast").Return(quotes("fast", availability.StatusAvailable, availability.StatusAvailable), nil).Once()
	sf, rec := newTestStorefront(t, provider)

	slowErr := make(chan error, 1)
	go func() {
		_, err := sf.Submit(ctx, "slow")
		slowErr <- err
	}()

	<-slowStarted
	if _, err := sf.Submit(ctx, "fast"); err != nil {
		t.Fatalf("Submit(fast) error = %v", err)
	}
	close(releaseSlow)

	if err := <-slowErr; !errors.Is(err, domain.ErrStaleResponse) {
		t.Fatalf("Submit(slow) error = %v, want ErrStaleResponse", err)
	}

	st := sf.State(ctx)
	if st.Query != "fast" || len(st.Results) != 2 {
		t.Errorf("State() = %+v, want fast's results", st)
	}
	if len(rec.queries) != 2 || rec.queries[0] != ResultOK || rec.queries[1] != ResultStale {
		t.Errorf("recorded = %v, want [ok stale]", rec.queries)
	}
}

func TestStorefront_AddResult(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	provider := mocks.NewMockAvailabilityProvider(t)
	provider.EXPECT().Query(mock.Anything, "foo").Return(quotes("foo", availability.StatusAvailable, availability.StatusTaken), nil)
	sf, rec := newTestStorefront(t, provider)

	if _, err := sf.Submit(ctx, "foo"); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	line, err := sf.AddResult(ctx, "com")
	if err != nil {
		t.Fatalf("AddResult(com) error = %v", err)
	}
	if line.Price != 10 {
		t.Errorf("line price = %v, want quoted 10", line.Price)
	}

	_, err = sf.AddResult(ctx, "com")
	if !errors.Is(err, domain.ErrDuplicateItem) {
		t.Errorf("AddResult(com) again error = %v, want ErrDuplicateItem", err)
	}
	st := sf.State(ctx)
	if st.Message != MsgDuplicateItem {
		t.Errorf("Message = %q, want %q", st.Message, MsgDuplicateItem)
	}
	if len(st.Results) != 2 {
		t.Errorf("results changed after add: %+v", st.Results)
	}

	if _, err := sf.AddResult(ctx, "nl"); !errors.Is(err, domain.ErrNotAvailable) {
		t.Errorf("AddResult(nl) error = %v, want ErrNotAvailable", err)
	}
	if _, err := sf.AddResult(ctx, "xyz"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("AddResult(xyz) error = %v, want ErrNotFound", err)
	}
	if msg := sf.State(ctx).Message; msg != MsgNotInResults {
		t.Errorf("Message after AddResult(xyz) = %q, want %q", msg, MsgNotInResults)
	}

	want := []string{"add:ok", "add:duplicate", "add:unavailable", "add:not_found"}
	if len(rec.mutations) != len(want) {
		t.Fatalf("mutations = %v, want %v", rec.mutations, want)
	}
	for i := range want {
		if rec.mutations[i] != want[i] {
			t.Errorf("mutations[%d] = %q, want %q", i, rec.mutations[i], want[i])
		}
	}
}

func TestStorefront_RemoveFromCart(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sf, _ := newTestStorefront(t, mocks.NewMockAvailabilityProvider(t))

	_, _ = sf.AddToCart(ctx, available("foo", "com", 12.5))
	_, _ = sf.AddToCart(ctx, available("foo", "io", 20))

	if _, err := sf.RemoveFromCart(ctx, 5); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Errorf("RemoveFromCart(5) error = %v, want ErrIndexOutOfRange", err)
	}
	if n := len(sf.State(ctx).Lines); n != 2 {
		t.Errorf("cart size after invalid removal = %d, want 2", n)
	}

	removed, err := sf.RemoveFromCart(ctx, 0)
	if err != nil {
		t.Fatalf("RemoveFromCart(0) error = %v", err)
	}
	if removed.Suffix != "com" {
		t.Errorf("removed = %+v, want com", removed)
	}
	st := sf.State(ctx)
	if len(st.Lines) != 1 || st.Subtotal != 20 {
		t.Errorf("State() lines = %+v subtotal = %v, want io only and 20", st.Lines, st.Subtotal)
	}
}

func TestStorefront_ToggleCart_DoesNotGateRemoval(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sf, _ := newTestStorefront(t, mocks.NewMockAvailabilityProvider(t))

	if sf.State(ctx).CartVisible {
		t.Fatal("cart visible initially, want hidden")
	}
	if !sf.ToggleCart(ctx) {
		t.Error("ToggleCart() = false, want true")
	}
	if sf.ToggleCart(ctx) {
		t.Error("ToggleCart() = true, want false")
	}

	_, _ = sf.AddToCart(ctx, available("foo", "com", 1))
	if _, err := sf.RemoveFromCart(ctx, 0); err != nil {
		t.Errorf("RemoveFromCart() with hidden panel error = %v", err)
	}
}

func TestStorefront_Checkout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sf, _ := newTestStorefront(t, mocks.NewMockAvailabilityProvider(t))

	if got := sf.Checkout(ctx); len(got.Lines) != 0 || got.Totals != (cart.Totals{}) {
		t.Errorf("Checkout() on empty cart = %+v", got)
	}

	_, _ = sf.AddToCart(ctx, available("foo", "com", 12.5))
	got := sf.Checkout(ctx)
	assertClose(t, "subtotal", got.Totals.Subtotal, 12.5)
	assertClose(t, "tax", got.Totals.Tax, 2.625)
	assertClose(t, "total", got.Totals.Total, 15.125)
}

func TestStorefront_AddToCart_PersistenceFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	kv := mocks.NewMockKVStore(t)
	kv.EXPECT().Get(mock.Anything, CartKey).Return("", false, nil)
	kv.EXPECT().Set(mock.Anything, CartKey, mock.Anything).Return(errors.New("full"))

	store := NewCartStore(ctx, kv, discardLogger())
	sf := NewStorefront(mocks.NewMockAvailabilityProvider(t), store, cart.NewPricePolicy(0.21), StorefrontOptions{})

	_, err := sf.AddToCart(ctx, available("foo", "com", 1))
	if !errors.Is(err, domain.ErrPersistenceWrite) {
		t.Fatalf("AddToCart() error = %v, want ErrPersistenceWrite", err)
	}
	st := sf.State(ctx)
	if st.Message != MsgPersistenceFailure || len(st.Lines) != 0 {
		t.Errorf("State() = %+v, want failure message and empty cart", st)
	}
}
