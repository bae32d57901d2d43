// Package httpclient is the outbound HTTP client for registrar lookups. Each
// call passes through a circuit breaker, a rate limiter and a retry loop
// that backs off exponentially and honors Retry-After. Calls are traced,
// counted, and carry the inbound request and correlation ids.
//
//	client := httpclient.New(&cfg.Client, "registrar", metrics, logger)
//	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, client.Endpoint(), body)
//	resp, err := client.Do(req)
//
// A response is returned for any status that is not retried. A status that
// is still retryable after the last attempt comes back as a *StatusError.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/jsamuelsen11/domain-storefront/internal/platform/config"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/telemetry"
)

const userAgent = "domain-storefront/1"

// Client sends requests to one downstream service.
type Client struct {
	http     *http.Client
	endpoint string
	apiKey   string
	name     string
	breaker  *gobreaker.CircuitBreaker[*http.Response]
	limiter  *rate.Limiter // nil when unlimited
	policy   retryPolicy
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates a client for the service called name, which labels its spans,
// metrics and breaker. metrics may be nil. A configured API key is sent as
// "Authorization: Basic <key>" unless the request sets its own.
func New(cfg *config.ClientConfig, name string, metrics *telemetry.Metrics, logger *slog.Logger) *Client {
	c := &Client{
		http:     &http.Client{Timeout: cfg.Timeout},
		endpoint: cfg.BaseURL,
		apiKey:   cfg.APIKey,
		name:     name,
		policy: retryPolicy{
			attempts:   max(cfg.Retry.MaxAttempts, 1),
			initial:    cfg.Retry.InitialInterval,
			ceiling:    cfg.Retry.MaxInterval,
			multiplier: cfg.Retry.Multiplier,
		},
		metrics: metrics,
		logger:  logger,
	}

	maxFailures := cfg.CircuitBreaker.MaxFailures
	c.breaker = gobreaker.NewCircuitBreaker[*http.Response](gobreaker.Settings{
		Name:        name,
		MaxRequests: clampUint32(cfg.CircuitBreaker.HalfOpenLimit),
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return int(counts.ConsecutiveFailures) >= maxFailures
		},
		// A lookup canceled because the shopper typed a newer query says
		// nothing about the registrar's health.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(breaker string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state change",
				slog.String("breaker", breaker),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	if cfg.RateLimit.RequestsPerSecond > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit.RequestsPerSecond), cfg.RateLimit.BurstSize)
	}
	return c
}

// Do sends req, which must carry its context. The caller closes the body of
// a returned response.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()
	c.setHeaders(req)

	resp, err := c.breaker.Execute(func() (*http.Response, error) {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		spanCtx, span := c.startSpan(ctx, req)
		defer span.End()

		resp, err := c.send(req.WithContext(spanCtx))
		endSpan(span, resp, err)
		return resp, err
	})
	c.record(ctx, req.Method, time.Since(start), resp, err)

	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, c.name, err)
	}
	return resp, nil
}

// Endpoint returns the configured base URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Name returns the service name given to New.
func (c *Client) Name() string {
	return c.name
}

// HealthCheck reports the breaker state without calling the service. A
// half-open breaker counts as unhealthy until a probe succeeds.
func (c *Client) HealthCheck(context.Context) error {
	switch state := c.breaker.State(); state {
	case gobreaker.StateClosed:
		return nil
	case gobreaker.StateHalfOpen:
		return fmt.Errorf("%s: recovering, circuit breaker half-open", c.name)
	case gobreaker.StateOpen:
		return fmt.Errorf("%s: failing, circuit breaker open", c.name)
	default:
		return fmt.Errorf("%s: circuit breaker in unknown state %v", c.name, state)
	}
}

func (c *Client) setHeaders(req *http.Request) {
	h := req.Header
	if c.apiKey != "" && h.Get("Authorization") == "" {
		h.Set("Authorization", "Basic "+c.apiKey)
	}
	if h.Get("User-Agent") == "" {
		h.Set("User-Agent", userAgent)
	}
	ctx := req.Context()
	if id := RequestIDFromContext(ctx); id != "" {
		h.Set("X-Request-ID", id)
	}
	if id := CorrelationIDFromContext(ctx); id != "" {
		h.Set("X-Correlation-ID", id)
	}
}

func clampUint32(v int) uint32 {
	switch {
	case v <= 0:
		return 0
	case v > math.MaxUint32:
		return math.MaxUint32
	default:
		return uint32(v)
	}
}
