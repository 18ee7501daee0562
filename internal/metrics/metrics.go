// Package metrics exposes Prometheus collectors for the RPC layer and the ledger.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "splitledger"

// Metrics holds every collector the server records into.
type Metrics struct {
	rpcDuration           *prometheus.HistogramVec
	ledgerWrites          *prometheus.CounterVec
	settlementTransitions *prometheus.CounterVec
	invariantViolations   prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "Duration of Connect RPCs by procedure and result code.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure", "code"}),
		ledgerWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_writes_total",
			Help:      "Ledger mutations by kind and outcome.",
		}, []string{"kind", "outcome"}),
		settlementTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "settlement_transitions_total",
			Help:      "Settlements entering each status.",
		}, []string{"status"}),
		invariantViolations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_invariant_violations_total",
			Help:      "Ledger writes rejected because balances would not sum to zero.",
		}),
	}
	reg.MustRegister(m.rpcDuration, m.ledgerWrites, m.settlementTransitions, m.invariantViolations)
	return m
}

// ObserveRPC records one RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.rpcDuration.WithLabelValues(procedure, code).Observe(d.Seconds())
}

// LedgerWrite records one ledger mutation attempt.
func (m *Metrics) LedgerWrite(kind, outcome string) {
	if m == nil {
		return
	}
	m.ledgerWrites.WithLabelValues(kind, outcome).Inc()
}

// SettlementTransition records a settlement entering status.
func (m *Metrics) SettlementTransition(status string) {
	if m == nil {
		return
	}
	m.settlementTransitions.WithLabelValues(status).Inc()
}

// InvariantViolation records a rejected unbalanced write.
func (m *Metrics) InvariantViolation() {
	if m == nil {
		return
	}
	m.invariantViolations.Inc()
}
