package service

import (
	"log/slog"

	addressmetrics "cadastro/internal/address/metrics"
	"cadastro/internal/platform/tracing"
)

// serviceConfig holds optional dependencies for the service.
type serviceConfig struct {
	logger  *slog.Logger
	metrics *addressmetrics.Metrics
	tracer  tracing.Tracer
}

// Option configures the service.
type Option func(c *serviceConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(c *serviceConfig) {
		c.logger = logger
	}
}

func WithMetrics(m *addressmetrics.Metrics) Option {
	return func(c *serviceConfig) {
		c.metrics = m
	}
}

func WithTracer(t tracing.Tracer) Option {
	return func(c *serviceConfig) {
		c.tracer = t
	}
}
