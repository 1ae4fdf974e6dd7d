package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	NotificationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bitpay_notifications_total",
			Help: "BitPay IPN notifications handled, by outcome and reason",
		},
		[]string{"outcome", "reason"},
	)

	AccountCreditsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "account_credits_total",
			Help: "Account credits applied from gateway payments",
		},
		[]string{"target"},
	)

	AccountCreditAmounts = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "account_credit_amounts",
			Help:    "Distribution of credited amounts in USD",
			Buckets: prometheus.ExponentialBuckets(5, 2, 10),
		},
		[]string{"target"},
	)

	InvoiceLookupDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bitpay_invoice_lookup_seconds",
			Help:    "Latency of invoice lookups against the BitPay API",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(
		NotificationsTotal,
		AccountCreditsTotal,
		AccountCreditAmounts,
		InvoiceLookupDuration,
	)
}
