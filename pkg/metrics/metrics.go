package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "donation_ledger"

// WebhookEvents counts webhook deliveries by result
var WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "webhook_events_total",
	Help:      "Webhook deliveries by result",
}, []string{"result"})

// DonationsRecorded counts first recordings, by allocation target
var DonationsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "donations_recorded_total",
	Help:      "Donations recorded into the ledger",
}, []string{"target"})

// AmountRaised sums total_amount of recorded donations, by currency
var AmountRaised = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "amount_raised_total",
	Help:      "Sum of recorded donation totals in major units",
}, []string{"currency"})

// RecordDuration of the recording transaction, including retries
var RecordDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: namespace,
	Name:      "record_duration_seconds",
	Help:      "Duration of recording a donation",
	Buckets:   prometheus.DefBuckets,
})

// RecordRetries counts transactions retried after a deadlock or lock wait timeout
var RecordRetries = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "record_retries_total",
	Help:      "Recording transactions retried",
})

// ValidatorRejections counts item edits rejected by the allocation validator, by reason
var ValidatorRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "validator_rejections_total",
	Help:      "Item edits rejected by the allocation validator",
}, []string{"reason"})

// ProgressCacheAccess counts progress reads by the layer that served them
var ProgressCacheAccess = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: namespace,
	Name:      "progress_cache_access_total",
	Help:      "Progress reads by serving layer",
}, []string{"layer"})

// FeedSubscribers is the number of connected live feed subscribers
var FeedSubscribers = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: namespace,
	Name:      "feed_subscribers",
	Help:      "Connected live feed subscribers",
})
