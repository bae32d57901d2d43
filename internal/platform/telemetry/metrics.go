package telemetry

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// meterName scopes every instrument to the module path.
const meterName = "github.com/jsamuelsen11/domain-storefront"

// Attribute keys shared by spans and metric points.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrOperation   = attribute.Key("operation")
)

// Metrics holds the pre-registered instruments.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	QueryTotal        metric.Int64Counter
	CartMutationTotal metric.Int64Counter
	CartSize          metric.Int64Histogram
}

// instruments registers against one meter and collects every failure.
type instruments struct {
	meter metric.Meter
	errs  []error
}

func (in *instruments) counter(name, desc, unit string) metric.Int64Counter {
	c, err := in.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	in.keep(name, err)
	return c
}

func (in *instruments) seconds(name, desc string) metric.Float64Histogram {
	h, err := in.meter.Float64Histogram(name, metric.WithDescription(desc), metric.WithUnit("s"))
	in.keep(name, err)
	return h
}

func (in *instruments) keep(name string, err error) {
	if err != nil {
		in.errs = append(in.errs, fmt.Errorf("creating %s: %w", name, err))
	}
}

// NewMetrics registers every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	in := &instruments{meter: mp.Meter(meterName)}

	m := &Metrics{
		ServerRequestDuration: in.seconds("http.server.request.duration", "Duration of incoming HTTP requests"),
		ServerRequestTotal:    in.counter("http.server.request.total", "Incoming HTTP requests", "{request}"),
		ClientRequestDuration: in.seconds("http.client.request.duration", "Duration of registrar calls"),
		ClientRequestTotal:    in.counter("http.client.request.total", "Registrar calls by outcome", "{request}"),
		QueryTotal:            in.counter("storefront.query.total", "Availability queries by result", "{query}"),
		CartMutationTotal:     in.counter("storefront.cart.mutation.total", "Cart adds and removes by result", "{mutation}"),
	}

	size, err := in.meter.Int64Histogram("storefront.cart.size",
		metric.WithDescription("Lines in a cart after each change"),
		metric.WithUnit("{line}"),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 3, 5, 10, 20),
	)
	in.keep("storefront.cart.size", err)
	m.CartSize = size

	if err := errors.Join(in.errs...); err != nil {
		return nil, err
	}
	return m, nil
}

// RecordQuery counts one availability query.
func (m *Metrics) RecordQuery(ctx context.Context, result string) {
	m.QueryTotal.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

// RecordCartMutation counts one cart add or remove.
func (m *Metrics) RecordCartMutation(ctx context.Context, operation, result string) {
	m.CartMutationTotal.Add(ctx, 1, metric.WithAttributes(
		AttrOperation.String(operation),
		AttrResult.String(result),
	))
}

// RecordCartSize records the number of lines after a cart change.
func (m *Metrics) RecordCartSize(ctx context.Context, size int) {
	m.CartSize.Record(ctx, int64(size))
}
