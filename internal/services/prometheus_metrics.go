package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	statementsGenerated  *prometheus.CounterVec
	statementsFinalized  prometheus.Counter
	statementsDeleted    prometheus.Counter
	generationDuration   prometheus.Histogram
	finalizationDuration prometheus.Histogram
	payoutsCreated       *prometheus.CounterVec
	commissionRegistered prometheus.Counter
	conversionFallbacks  *prometheus.CounterVec
	walletBalance        *prometheus.GaugeVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		statementsGenerated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "statements_generated_total",
				Help: "Total number of statement generation runs",
			},
			[]string{"status"},
		),
		statementsFinalized: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "statements_finalized_total",
				Help: "Total number of statements finalized",
			},
		),
		statementsDeleted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "statements_deleted_total",
				Help: "Total number of draft statements deleted",
			},
		),
		generationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_generation_duration_milliseconds",
				Help:    "Statement generation duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		finalizationDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "statement_finalization_duration_milliseconds",
				Help:    "Statement finalization duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		payoutsCreated: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wallet_payouts_total",
				Help: "Total number of owner payouts created",
			},
			[]string{"method"},
		),
		commissionRegistered: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "wallet_commission_registered_total",
				Help: "Total number of owner-flow commission registrations",
			},
		),
		conversionFallbacks: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "currency_conversion_fallbacks_total",
				Help: "Conversions that fell back from a pinned rate to the current rate",
			},
			[]string{"from", "to"},
		),
		walletBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "owner_wallet_balance",
				Help: "Current owner wallet balance in display currency units",
			},
			[]string{"owner_id"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case "statement.generated":
		status := tags["status"]
		if status == "" {
			status = "success"
		}
		m.statementsGenerated.WithLabelValues(status).Inc()
	case "statement.finalized":
		m.statementsFinalized.Inc()
	case "statement.deleted":
		m.statementsDeleted.Inc()
	case "wallet.payout.created":
		if method := tags["method"]; method != "" {
			m.payoutsCreated.WithLabelValues(method).Inc()
		}
	case "wallet.commission.registered":
		m.commissionRegistered.Inc()
	case "currency.conversion.fallback":
		m.conversionFallbacks.WithLabelValues(tags["from"], tags["to"]).Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "statement.generation":
		m.generationDuration.Observe(float64(duration.Milliseconds()))
	case "statement.finalization":
		m.finalizationDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "wallet.balance":
		if ownerID := tags["owner_id"]; ownerID != "" {
			m.walletBalance.WithLabelValues(ownerID).Set(value)
		}
	}
}
