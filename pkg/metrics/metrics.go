// Package metrics holds the OpenTelemetry instruments and shared histogram
// buckets used to measure HTTP traffic. Instruments are exported through the
// Prometheus exporter wired up by the API server.
package metrics

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// HTTP bundles the request instruments recorded by the metrics middleware.
type HTTP struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

// NewHTTP creates the HTTP request instruments on the given meter provider.
func NewHTTP(mp metric.MeterProvider) (*HTTP, error) {
	meter := mp.Meter("ledger/api")

	requests, err := meter.Int64Counter("http_server_requests_total",
		metric.WithDescription("Number of handled HTTP requests"))
	if err != nil {
		return nil, fmt.Errorf("could not create request counter: %w", err)
	}

	duration, err := meter.Float64Histogram("http_server_request_duration_seconds",
		metric.WithDescription("HTTP request handling latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create duration histogram: %w", err)
	}

	return &HTTP{requests: requests, duration: duration}, nil
}

// Observe records one finished request. Pattern is the matched route pattern
// (not the raw URL) to keep label cardinality bounded.
func (h *HTTP) Observe(ctx context.Context, method, pattern string, status int, seconds float64) {
	attrs := metric.WithAttributes(
		attribute.String("method", method),
		attribute.String("pattern", pattern),
		attribute.Int("status", status),
	)

	h.requests.Add(ctx, 1, attrs)
	h.duration.Record(ctx, seconds, attrs)
}
