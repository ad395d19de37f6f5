package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Ledger metrics
	DebitsProcessed *prometheus.CounterVec
	DebitAmount     *prometheus.HistogramVec
	CreditsIssued   prometheus.Counter
	Reversals       prometheus.Counter
	LedgerErrors    *prometheus.CounterVec

	// Gift card metrics
	GiftCardsIssued *prometheus.CounterVec

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Idempotency metrics
	IdempotencyReplays prometheus.Counter

	// Outbox metrics
	OutboxPublished prometheus.Counter
	OutboxErrors    prometheus.Counter
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Ledger metrics
		DebitsProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_debits_total",
				Help: "Total debits processed by channel and result",
			},
			[]string{"channel", "result"},
		),
		DebitAmount: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "corebank_debit_amount",
				Help:    "Debit amounts by channel",
				Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000, 10000, 100000},
			},
			[]string{"channel"},
		),
		CreditsIssued: promauto.NewCounter(prometheus.CounterOpts{
			Name: "corebank_credits_total",
			Help: "Total back-office credits issued",
		}),
		Reversals: promauto.NewCounter(prometheus.CounterOpts{
			Name: "corebank_reversals_total",
			Help: "Total transactions reversed",
		}),
		LedgerErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_ledger_errors_total",
				Help: "Total ledger errors by type",
			},
			[]string{"error_type"},
		),

		// Gift card metrics
		GiftCardsIssued: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_giftcards_issued_total",
				Help: "Total gift cards issued by product",
			},
			[]string{"product"},
		),

		// API metrics
		HTTPRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "corebank_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "corebank_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		// Idempotency metrics
		IdempotencyReplays: promauto.NewCounter(prometheus.CounterOpts{
			Name: "corebank_idempotency_replays_total",
			Help: "Total requests served from the idempotency cache",
		}),

		// Outbox metrics
		OutboxPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "corebank_outbox_published_total",
			Help: "Total outbox events published",
		}),
		OutboxErrors: promauto.NewCounter(prometheus.CounterOpts{
			Name: "corebank_outbox_errors_total",
			Help: "Total outbox publish errors",
		}),
	}
}
