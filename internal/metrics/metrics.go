package metrics

import (
	"escrow-engine/internal/escrowerrors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "escrow"

// Recorder publishes engine metrics. A nil *Recorder is a no-op.
type Recorder struct {
	operations *prometheus.CounterVec
	escrowHeld prometheus.Gauge
	feeBps     prometheus.Gauge
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Escrow operations by name and outcome.",
		}, []string{"operation", "result"}),
		escrowHeld: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "held_amount",
			Help:      "Smallest currency units currently held in escrow.",
		}),
		feeBps: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fee_basis_points",
			Help:      "Current platform fee in basis points.",
		}),
	}
	reg.MustRegister(r.operations, r.escrowHeld, r.feeBps)
	return r
}

// Observe counts one operation. The result label is "ok" or the error kind.
func (r *Recorder) Observe(operation string, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = escrowerrors.KindOf(err).String()
	}
	r.operations.WithLabelValues(operation, result).Inc()
}

// SetEscrowHeld records the escrow account balance
func (r *Recorder) SetEscrowHeld(amount int64) {
	if r == nil {
		return
	}
	r.escrowHeld.Set(float64(amount))
}

// SetFeeBasisPoints records the configured fee
func (r *Recorder) SetFeeBasisPoints(bps int64) {
	if r == nil {
		return
	}
	r.feeBps.Set(float64(bps))
}
