package acl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/domain-storefront/internal/app/fanout"
	"github.com/jsamuelsen11/domain-storefront/internal/domain"
	"github.com/jsamuelsen11/domain-storefront/internal/domain/availability"
	"github.com/jsamuelsen11/domain-storefront/internal/platform/httpclient"
	"github.com/jsamuelsen11/domain-storefront/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AvailabilityProvider = (*RegistrarClient)(nil)
	_ ports.HealthChecker        = (*RegistrarClient)(nil)
)

// DefaultMaxConcurrency bounds in-flight lookups when none is configured.
const DefaultMaxConcurrency = 4

// RegistrarClient is the outbound adapter for a registrar's availability API.
// A query issues one POST per supported suffix, fanned out with bounded
// concurrency, and succeeds only when every suffix answers.
//
// The underlying [httpclient.Client] provides circuit breaking, rate limiting,
// retry with backoff, tracing, and health reporting for every call.
type RegistrarClient struct {
	client   *httpclient.Client
	suffixes []string
	workers  int
	logger   *slog.Logger
}

// NewRegistrarClient creates a RegistrarClient. The client's endpoint is the
// registrar's check endpoint. An empty suffix list selects
// availability.DefaultSuffixes; maxConcurrency below 1 selects
// DefaultMaxConcurrency.
func NewRegistrarClient(client *httpclient.Client, suffixes []string, maxConcurrency int, logger *slog.Logger) *RegistrarClient {
	if len(suffixes) == 0 {
		suffixes = availability.DefaultSuffixes
	}
	if maxConcurrency < 1 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &RegistrarClient{
		client:   client,
		suffixes: append([]string(nil), suffixes...),
		workers:  maxConcurrency,
		logger:   logger,
	}
}

// Query implements ports.AvailabilityProvider. Any failed suffix fails the
// whole query with an error wrapping domain.ErrProviderFailure.
func (c *RegistrarClient) Query(ctx context.Context, name string) ([]availability.Candidate, error) {
	results := fanout.Run(ctx, c.workers, c.suffixes, func(ctx context.Context, suffix string) (availability.Candidate, error) {
		return c.check(ctx, name, suffix)
	})

	candidates, err := fanout.Collect(results)
	if err != nil {
		var itemErr *fanout.ItemError
		suffix := "?"
		if errors.As(err, &itemErr) {
			suffix = c.suffixes[itemErr.Index]
		}
		c.logger.WarnContext(ctx, "registrar lookup failed",
			slog.String("operation", "RegistrarClient.Query"),
			slog.String("suffix", suffix),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, domain.ErrProviderFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: .%s: %w", domain.ErrProviderFailure, suffix, err)
	}
	return candidates, nil
}

func (c *RegistrarClient) check(ctx context.Context, name, suffix string) (availability.Candidate, error) {
	var dto CheckResponseDTO
	if err := postJSON(ctx, c.client, ToCheckRequest(name, suffix), &dto); err != nil {
		return availability.Candidate{}, err
	}
	return ToCandidate(dto, name, suffix)
}

// Name returns the identifier used with a [ports.HealthRegistry]; it matches
// the service name of the underlying HTTP client.
func (c *RegistrarClient) Name() string {
	return c.client.Name()
}

// HealthCheck reports the registrar's availability from the circuit breaker
// state without making a call. It reflects downstream status, not readiness:
// the storefront keeps serving carts while the registrar is failing.
func (c *RegistrarClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
