package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds Prometheus collectors for person operations.
type Metrics struct {
	PersonsCreated   prometheus.Counter
	PersonsUpdated   prometheus.Counter
	PersonsDeleted   prometheus.Counter
	OperationLatency *prometheus.HistogramVec
}

// New registers and returns person metrics collectors.
func New() *Metrics {
	return &Metrics{
		PersonsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cadastro_persons_created_total",
			Help: "Total number of persons created",
		}),
		PersonsUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cadastro_persons_updated_total",
			Help: "Total number of persons updated",
		}),
		PersonsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "cadastro_persons_deleted_total",
			Help: "Total number of persons deleted",
		}),
		OperationLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "cadastro_person_operation_latency_seconds",
			Help:    "Latency of person service operations in seconds, labeled by operation",
			Buckets: prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

func (m *Metrics) IncrementCreated() { m.PersonsCreated.Inc() }
func (m *Metrics) IncrementUpdated() { m.PersonsUpdated.Inc() }
func (m *Metrics) IncrementDeleted() { m.PersonsDeleted.Inc() }

// ObserveOperation records the latency of a service operation.
func (m *Metrics) ObserveOperation(operation string, durationSeconds float64) {
	m.OperationLatency.WithLabelValues(operation).Observe(durationSeconds)
}
