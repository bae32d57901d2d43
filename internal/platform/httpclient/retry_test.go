package httpclient

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRetryPolicy_DelayWithinJitterBand(t *testing.T) {
	t.Parallel()

	p := retryPolicy{attempts: 4, initial: 100 * time.Millisecond, ceiling: time.Second, multiplier: 2}

	for n, nominal := range map[int]time.Duration{1: 100 * time.Millisecond, 2: 200 * time.Millisecond, 3: 400 * time.Millisecond} {
		lo := time.Duration(float64(nominal) * (1 - jitter))
		hi := time.Duration(float64(nominal) * (1 + jitter))
		for range 50 {
			d := p.delay(n, 0)
			require.GreaterOrEqual(t, d, lo, "retry %d", n)
			require.LessOrEqual(t, d, hi, "retry %d", n)
		}
	}
}

func TestRetryPolicy_DelayCapped(t *testing.T) {
	t.Parallel()

	p := retryPolicy{attempts: 10, initial: 100 * time.Millisecond, ceiling: 300 * time.Millisecond, multiplier: 10}

	require.LessOrEqual(t, p.delay(5, 0), time.Duration(float64(300*time.Millisecond)*(1+jitter)))
	require.Equal(t, 300*time.Millisecond, p.delay(1, 30*time.Second), "Retry-After is capped without jitter")
	require.Equal(t, 50*time.Millisecond, p.delay(1, 50*time.Millisecond))
}

func TestParseRetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		in   string
		want time.Duration
	}{
		{in: "", want: 0},
		{in: "3", want: 3 * time.Second},
		{in: "0", want: 0},
		{in: "-5", want: 0},
		{in: "soon", want: 0},
		{in: now.Add(90 * time.Second).Format(http.TimeFormat), want: 90 * time.Second},
		{in: now.Add(-time.Minute).Format(http.TimeFormat), want: 0},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, parseRetryAfter(tt.in, now), "Retry-After %q", tt.in)
	}
}

func TestRetryableStatus(t *testing.T) {
	t.Parallel()

	for code, want := range map[int]bool{
		http.StatusOK:                  false,
		http.StatusBadRequest:          false,
		http.StatusUnauthorized:        false,
		http.StatusNotFound:            false,
		http.StatusTooManyRequests:     true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
	} {
		require.Equal(t, want, retryableStatus(code), "status %d", code)
	}
}

func TestRewind(t *testing.T) {
	t.Parallel()

	req, err := http.NewRequest(http.MethodPost, "http://registrar.test", http.NoBody)
	require.NoError(t, err)
	require.NoError(t, rewind(req), "empty bodies need no replay")

	req.Body = http.NoBody
	req.GetBody = nil
	require.NoError(t, rewind(req))

	req.Body = readCloser{}
	require.Error(t, rewind(req), "a body without GetBody cannot be replayed")
}

type readCloser struct{}

func (readCloser) Read([]byte) (int, error) { return 0, nil }
func (readCloser) Close() error             { return nil }
