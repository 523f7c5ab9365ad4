package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(WebhookEvents.WithLabelValues("recorded"))
	WebhookEvents.WithLabelValues("recorded").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(WebhookEvents.WithLabelValues("recorded")))

	FeedSubscribers.Set(0)
	FeedSubscribers.Inc()
	FeedSubscribers.Inc()
	FeedSubscribers.Dec()
	assert.Equal(t, float64(1), testutil.ToFloat64(FeedSubscribers))
}
