// Package metrics holds the prometheus collectors exported at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can build as many as they like.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	storageOps    *prometheus.CounterVec
	degradedReads *prometheus.CounterVec
	transitions   *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		storageOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medcare",
			Name:      "storage_operations_total",
			Help:      "Entity store operations by collection, operation and result.",
		}, []string{"collection", "op", "result"}),
		degradedReads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medcare",
			Name:      "storage_degraded_reads_total",
			Help:      "Collection reads that fell back to an empty value.",
		}, []string{"collection", "reason"}),
		transitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "medcare",
			Name:      "appointment_transitions_total",
			Help:      "Appointment status changes by target status and outcome.",
		}, []string{"status", "result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.storageOps,
		m.degradedReads,
		m.transitions,
	)
	return m
}

func (m *Metrics) StorageOp(collection, op string, err error) {
	if m == nil {
		return
	}
	m.storageOps.WithLabelValues(collection, op, result(err)).Inc()
}

func (m *Metrics) DegradedRead(collection, reason string) {
	if m == nil {
		return
	}
	m.degradedReads.WithLabelValues(collection, reason).Inc()
}

func (m *Metrics) Transition(status string, err error) {
	if m == nil {
		return
	}
	m.transitions.WithLabelValues(status, result(err)).Inc()
}

// Registry exposes the underlying registry, mostly for tests
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
