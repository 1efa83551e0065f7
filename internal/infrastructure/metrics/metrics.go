package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Payment metrics
	PaymentsCompleted prometheus.Counter
	PaymentDuration   prometheus.Histogram
	PaymentAmount     prometheus.Histogram
	PaymentErrors     *prometheus.CounterVec

	// Payroll metrics
	PayrollsCreated  prometheus.Counter
	PayrollsApproved prometheus.Counter

	// Account metrics
	AccountsCreated  prometheus.Counter
	DepositsRecorded prometheus.Counter

	// Outbox dispatcher metrics
	OutboxEventsPublished  *prometheus.CounterVec
	OutboxPublishErrors    prometheus.Counter
	NotificationsDelivered prometheus.Counter

	// Reconciliation metrics
	ReconciliationRuns   prometheus.Counter
	UnreconciledAccounts prometheus.Gauge
	OrphanedWithdrawals  prometheus.Gauge
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Payment metrics
		PaymentsCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planpilot_payments_completed_total",
			Help: "Total number of payroll payments completed",
		}),
		PaymentDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "planpilot_payment_duration_seconds",
			Help:    "Duration of payment operations",
			Buckets: prometheus.DefBuckets,
		}),
		PaymentAmount: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "planpilot_payment_amount",
			Help:    "Net pay amounts disbursed",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		}),
		PaymentErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planpilot_payment_errors_total",
				Help: "Total number of payment errors by type",
			},
			[]string{"error_type"},
		),

		// Payroll metrics
		PayrollsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planpilot_payrolls_created_total",
			Help: "Total number of payroll records created",
		}),
		PayrollsApproved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planpilot_payrolls_approved_total",
			Help: "Total number of payroll records approved",
		}),

		// Account metrics
		AccountsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planpilot_accounts_created_total",
			Help: "Total number of bank accounts created",
		}),
		DepositsRecorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planpilot_deposits_recorded_total",
			Help: "Total number of deposits recorded",
		}),

		// Outbox dispatcher metrics
		OutboxEventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "planpilot_outbox_events_published_total",
				Help: "Total outbox events published by type",
			},
			[]string{"event_type"},
		),
		OutboxPublishErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planpilot_outbox_publish_errors_total",
			Help: "Total outbox publish failures",
		}),
		NotificationsDelivered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planpilot_notifications_delivered_total",
			Help: "Total notifications delivered to workers",
		}),

		// Reconciliation metrics
		ReconciliationRuns: promauto.NewCounter(prometheus.CounterOpts{
			Name: "planpilot_reconciliation_runs_total",
			Help: "Total reconciliation sweeps completed",
		}),
		UnreconciledAccounts: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "planpilot_unreconciled_accounts",
			Help: "Accounts whose materialized balance drifted from the ledger at the last sweep",
		}),
		OrphanedWithdrawals: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "planpilot_orphaned_withdrawals",
			Help: "Salary withdrawals without a paid payroll record at the last sweep",
		}),
	}
}
