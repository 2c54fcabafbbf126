package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for address operations.
type Metrics struct {
	AddressesCreated prometheus.Counter
	AddressesUpdated prometheus.Counter
	AddressesDeleted prometheus.Counter
	OperationLatency *prometheus.HistogramVec
}

// New registers and returns address metrics collectors.
func New() *Metrics {
	return &Metrics{
		AddressesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cadastro_addresses_created_total",
			Help: "Total number of addresses created",
		}),
		AddressesUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cadastro_addresses_updated_total",
			Help: "Total number of addresses updated",
		}),
		AddressesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cadastro_addresses_deleted_total",
			Help: "Total number of addresses deleted",
		}),
		OperationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cadastro_address_operation_latency_seconds",
			Help:    "Latency of address service operations in seconds, labeled by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementCreated() { m.AddressesCreated.Inc() }
func (m *Metrics) IncrementUpdated() { m.AddressesUpdated.Inc() }
func (m *Metrics) IncrementDeleted() { m.AddressesDeleted.Inc() }

// ObserveOperation records the latency of a service operation.
func (m *Metrics) ObserveOperation(operation string, durationSeconds float64) {
	m.OperationLatency.WithLabelValues(operation).Observe(durationSeconds)
}
