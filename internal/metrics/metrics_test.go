package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.LedgerWrite("expense", "ok")
	m.LedgerWrite("expense", "ok")
	m.SettlementTransition("completed")
	m.InvariantViolation()
	m.ObserveRPC("/GroupService/GetGroup", "ok", 10*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ledgerWrites.WithLabelValues("expense", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.settlementTransitions.WithLabelValues("completed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.invariantViolations))
	assert.Equal(t, 1, testutil.CollectAndCount(m.rpcDuration))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.LedgerWrite("expense", "ok")
		m.SettlementTransition("completed")
		m.InvariantViolation()
		m.ObserveRPC("p", "ok", time.Second)
	})
}
