// Package metrics exposes the Prometheus collectors of the custody ledger.
//
// Collectors live in a private registry so tests can build as many Metrics
// values as they need. A nil *Metrics is valid and records nothing.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "supplychain"

// Metrics holds the ledger's collectors.
type Metrics struct {
	registry *prometheus.Registry

	lots        *prometheus.GaugeVec
	invocations *prometheus.CounterVec
	snapshots   *prometheus.CounterVec
}

// New registers the ledger collectors and the Go runtime collectors in a
// fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		lots: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "lots",
				Help:      "Number of lots per type and custody status at the last snapshot",
			},
			[]string{"type", "status"},
		),
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invocations_total",
				Help:      "Ledger operations dispatched, by operation and outcome",
			},
			[]string{"operation", "outcome"},
		),
		snapshots: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "custody_snapshots_total",
				Help:      "Custody snapshots taken, by outcome",
			},
			[]string{"outcome"},
		),
	}

	registry.MustRegister(
		m.lots,
		m.invocations,
		m.snapshots,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// SetLots publishes the lot count of one type and status.
func (m *Metrics) SetLots(lotType, status string, count int) {
	if m == nil {
		return
	}
	m.lots.WithLabelValues(lotType, status).Set(float64(count))
}

// ObserveInvocation counts one dispatched operation. Outcome is "ok" or the
// error class the caller mapped the failure to.
func (m *Metrics) ObserveInvocation(operation, outcome string) {
	if m == nil {
		return
	}
	m.invocations.WithLabelValues(operation, outcome).Inc()
}

// ObserveSnapshot counts one snapshot run.
func (m *Metrics) ObserveSnapshot(ok bool) {
	if m == nil {
		return
	}
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	m.snapshots.WithLabelValues(outcome).Inc()
}

// Registry returns the private registry, or nil for a nil Metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
