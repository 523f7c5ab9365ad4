package livefeed

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(h *Hub, campaignID int64) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeWS(w, r, campaignID)
	}))
}

func dial(t *testing.T, server *httptest.Server) *websocket.Conn {
	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.Nil(t, err)
	return conn
}

func TestHub_PublishDonation(t *testing.T) {
	h := NewHub(zap.NewNop())
	server := newTestServer(h, 11)
	defer server.Close()

	conn := dial(t, server)
	defer func() { _ = conn.Close() }()

	assert.Eventually(t, func() bool {
		return h.SubscriberCount(11) == 1
	}, time.Second, 5*time.Millisecond)

	h.PublishDonation(model.DonationEvent{
		CampaignID: 12,
		DonorName:  "Other",
		Amount:     decimal.NewFromInt(5),
	})
	h.PublishDonation(model.DonationEvent{
		CampaignID: 11,
		DonorName:  "Anonymous",
		Amount:     decimal.NewFromInt(110),
		Raised:     decimal.NewFromInt(610),
		Donors:     4,
	})

	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	require.Nil(t, err)

	var event model.DonationEvent
	require.Nil(t, json.Unmarshal(data, &event))

	assert.Equal(t, int64(11), event.CampaignID)
	assert.Equal(t, "Anonymous", event.DonorName)
	assert.Equal(t, "110", event.Amount.String())
	assert.Equal(t, "610", event.Raised.String())
	assert.Equal(t, int64(4), event.Donors)
}

func TestHub_Unregister_On_Client_Close(t *testing.T) {
	h := NewHub(zap.NewNop())
	server := newTestServer(h, 11)
	defer server.Close()

	conn := dial(t, server)

	assert.Eventually(t, func() bool {
		return h.SubscriberCount(11) == 1
	}, time.Second, 5*time.Millisecond)

	_ = conn.Close()

	assert.Eventually(t, func() bool {
		return h.SubscriberCount(11) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestHub_Drop_Slow_Subscriber(t *testing.T) {
	h := NewHub(zap.NewNop(), WithBufferSize(1))

	slow := h.register(11)
	assert.Equal(t, 1, h.SubscriberCount(11))

	h.PublishDonation(model.DonationEvent{CampaignID: 11})
	assert.Equal(t, 1, h.SubscriberCount(11))

	h.PublishDonation(model.DonationEvent{CampaignID: 11})
	assert.Equal(t, 0, h.SubscriberCount(11))

	_, ok := <-slow.send
	assert.True(t, ok)
	_, ok = <-slow.send
	assert.False(t, ok)

	// unregister after drop is a no op
	h.unregister(slow)
	assert.Equal(t, 0, h.SubscriberCount(11))
}

func TestHub_Close(t *testing.T) {
	h := NewHub(zap.NewNop())

	a := h.register(11)
	b := h.register(12)

	h.Close()

	assert.Equal(t, 0, h.SubscriberCount(11))
	assert.Equal(t, 0, h.SubscriberCount(12))

	_, ok := <-a.send
	assert.False(t, ok)
	_, ok = <-b.send
	assert.False(t, ok)
}
