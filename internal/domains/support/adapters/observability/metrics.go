package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

type serviceMetrics struct {
	requests metric.Int64Counter
	duration metric.Float64Histogram
}

func newServiceMetrics(m metric.Meter) serviceMetrics {
	if m == nil {
		m = metricnoop.NewMeterProvider().Meter(tracerName)
	}
	requests, err := m.Int64Counter(
		"support.customer_orders.requests",
		metric.WithDescription("Customer order view assemblies, by outcome."),
	)
	if err != nil {
		requests, _ = metricnoop.NewMeterProvider().Meter(tracerName).Int64Counter("support.customer_orders.requests")
	}
	duration, err := m.Float64Histogram(
		"support.customer_orders.duration",
		metric.WithDescription("Customer order view assembly latency."),
		metric.WithUnit("s"),
	)
	if err != nil {
		duration, _ = metricnoop.NewMeterProvider().Meter(tracerName).Float64Histogram("support.customer_orders.duration")
	}
	return serviceMetrics{requests: requests, duration: duration}
}

func (m serviceMetrics) recordRequest(ctx context.Context, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.requests.Add(ctx, 1, attrs)
	m.duration.Record(ctx, elapsed.Seconds(), attrs)
}
