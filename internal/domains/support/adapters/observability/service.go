// Package observability decorates the support service with tracing, logging,
// and metrics.
package observability

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/domain"
	"github.com/JDavidVR/zendesk-support-api/internal/domains/support/ports"
)

const tracerName = "github.com/JDavidVR/zendesk-support-api/internal/domains/support/adapters/observability/service"

// Service decorates a support service port with tracing, logging, and metrics.
type Service struct {
	inner   ports.Service
	tracer  trace.Tracer
	logger  *slog.Logger
	metrics serviceMetrics
}

type Option func(*Service)

// WithLogger injects a slog logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTracer injects a tracer implementation.
func WithTracer(tr trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tr
	}
}

// WithMeter injects the meter used to create service metrics instruments.
func WithMeter(m metric.Meter) Option {
	return func(s *Service) {
		s.metrics = newServiceMetrics(m)
	}
}

// New wires a decorator around the core service.
func New(inner ports.Service, opts ...Option) ports.Service {
	s := &Service{
		inner:   inner,
		tracer:  nooptrace.NewTracerProvider().Tracer(tracerName),
		logger:  slog.Default(),
		metrics: newServiceMetrics(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.tracer == nil {
		s.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// CustomerOrders assembles the consolidated view with instrumentation. The
// email itself is PII and deliberately kept out of span attributes and logs.
func (s *Service) CustomerOrders(ctx context.Context, email string) (*domain.CustomerOrders, error) {
	ctx, span := s.tracer.Start(ctx, "Service.CustomerOrders")
	defer span.End()
	start := time.Now()

	s.logger.LogAttrs(ctx, slog.LevelInfo, "assembling customer order view")
	result, err := s.inner.CustomerOrders(ctx, email)
	s.metrics.recordRequest(ctx, time.Since(start), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.LogAttrs(ctx, slog.LevelError, "failed to assemble customer order view",
			slog.String("error", err.Error()))
		return nil, err
	}
	span.SetAttributes(
		attribute.Int("support.orders.count", len(result.Orders)),
		attribute.Bool("support.customer.resolved", result.Email != ""),
	)
	s.logger.LogAttrs(ctx, slog.LevelInfo, "customer order view assembled",
		slog.Int("orders", len(result.Orders)))
	return result, nil
}

var _ ports.Service = (*Service)(nil)
