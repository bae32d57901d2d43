package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/domain-storefront/internal/platform/logging"
)

// jitter spreads each backoff over ±25% of its nominal value.
const jitter = 0.25

// maxErrorBody bounds how much of a failed response StatusError keeps.
const maxErrorBody = 64 << 10

// StatusError is a response whose status was still retryable after the last
// attempt. The body is read, bounded, and closed.
type StatusError struct {
	Service    string
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewStatusError consumes and closes resp.Body.
func NewStatusError(service string, resp *http.Response) *StatusError {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return &StatusError{
		Service:    service,
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s answered %d %s", e.Service, e.StatusCode, http.StatusText(e.StatusCode))
}

type retryPolicy struct {
	attempts   int
	initial    time.Duration
	ceiling    time.Duration
	multiplier float64
}

// delay returns the wait before retry n (1 for the first retry). A positive
// Retry-After hint wins over the computed backoff; both are capped.
func (p retryPolicy) delay(n int, hint time.Duration) time.Duration {
	if hint > 0 {
		return min(hint, p.ceiling)
	}
	d := min(float64(p.initial)*math.Pow(p.multiplier, float64(n-1)), float64(p.ceiling))
	d += d * jitter * (2*rand.Float64() - 1) //nolint:gosec // jitter needs no crypto source
	return time.Duration(max(d, 0))
}

// send runs the attempts for one call. Bodies are replayed through
// req.GetBody, which http.NewRequestWithContext sets for in-memory readers.
func (c *Client) send(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	var (
		lastErr error
		hint    time.Duration
	)
	for n := range c.policy.attempts {
		if n > 0 {
			if err := c.pause(ctx, req, n, hint, lastErr); err != nil {
				return nil, err
			}
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			// The caller gave up; another attempt cannot help.
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr, hint = err, 0
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}
		hint = parseRetryAfter(resp.Header.Get("Retry-After"), time.Now())
		lastErr = NewStatusError(c.name, resp)
	}
	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, n int, hint time.Duration, lastErr error) error {
	d := c.policy.delay(n, hint)
	logging.FromContext(ctx).WarnContext(ctx, "retrying registrar call",
		slog.String("peer_service", c.name),
		slog.String("method", req.Method),
		slog.Int("attempt", n+1),
		slog.Int("max_attempts", c.policy.attempts),
		slog.Duration("backoff", d),
		slog.Any("error", lastErr),
	)

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func rewind(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody {
		return nil
	}
	if req.GetBody == nil {
		return errors.New("request body cannot be replayed")
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("replaying request body: %w", err)
	}
	req.Body = body
	return nil
}

// parseRetryAfter reads Retry-After as seconds or an HTTP date. Absent,
// malformed and past values give 0.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil && at.After(now) {
		return at.Sub(now)
	}
	return 0
}

// retryableStatus reports throttling and server errors.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}
