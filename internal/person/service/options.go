package service

import (
	"log/slog"

	personmetrics "cadastro/internal/person/metrics"
	"cadastro/internal/platform/tracing"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *personmetrics.Metrics
	tracer  tracing.Tracer
}

// Option configures the service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *personmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracing.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}
