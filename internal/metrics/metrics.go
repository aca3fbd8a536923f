// Package metrics holds the Prometheus collectors for the transfer engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type TransferMetrics struct {
	// TransfersTotal counts finished transfer attempts by terminal ledger
	// status (SUCCESS, ROLLBACK, FAILED) or "rejected" for attempts stopped
	// before any store was touched.
	TransfersTotal *prometheus.CounterVec

	TransferDuration prometheus.Histogram

	// PhaseFailures counts coordinator failures by the phase they happened
	// in. COMMIT_FAILED entries are the ones needing reconciliation.
	PhaseFailures *prometheus.CounterVec
}

func NewTransferMetrics(reg prometheus.Registerer) *TransferMetrics {
	factory := promauto.With(reg)

	return &TransferMetrics{
		TransfersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transfers",
			Name:      "total",
			Help:      "Finished transfer attempts by outcome.",
		}, []string{"status"}),

		TransferDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "transfers",
			Name:      "duration_seconds",
			Help:      "End-to-end transfer processing time.",
			Buckets:   prometheus.DefBuckets,
		}),

		PhaseFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "transfers",
			Name:      "coordinator_phase_failures_total",
			Help:      "Coordinator failures by phase.",
		}, []string{"phase"}),
	}
}
