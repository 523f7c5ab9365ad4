package livefeed

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/QuangTung97/donation-ledger/model"
	"github.com/QuangTung97/donation-ledger/pkg/metrics"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Hub fans out donation events to the websocket subscribers of each campaign
type Hub struct {
	logger   *zap.Logger
	upgrader websocket.Upgrader
	opts     hubOptions

	mut  sync.Mutex
	subs map[int64]map[*subscriber]struct{}
}

type subscriber struct {
	campaignID int64
	send       chan []byte
	closeOnce  sync.Once
}

func (s *subscriber) close() {
	s.closeOnce.Do(func() {
		close(s.send)
	})
}

// NewHub ...
func NewHub(logger *zap.Logger, options ...Option) *Hub {
	return &Hub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		opts: newHubOptions(options...),
		subs: map[int64]map[*subscriber]struct{}{},
	}
}

func (h *Hub) register(campaignID int64) *subscriber {
	sub := &subscriber{
		campaignID: campaignID,
		send:       make(chan []byte, h.opts.bufferSize),
	}

	h.mut.Lock()
	defer h.mut.Unlock()

	campaignSubs, ok := h.subs[campaignID]
	if !ok {
		campaignSubs = map[*subscriber]struct{}{}
		h.subs[campaignID] = campaignSubs
	}
	campaignSubs[sub] = struct{}{}
	metrics.FeedSubscribers.Inc()

	return sub
}

func (h *Hub) unregister(sub *subscriber) {
	h.mut.Lock()
	defer h.mut.Unlock()

	h.removeLocked(sub)
}

func (h *Hub) removeLocked(sub *subscriber) {
	campaignSubs := h.subs[sub.campaignID]
	if _, ok := campaignSubs[sub]; !ok {
		return
	}

	delete(campaignSubs, sub)
	if len(campaignSubs) == 0 {
		delete(h.subs, sub.campaignID)
	}
	sub.close()
	metrics.FeedSubscribers.Dec()
}

// SubscriberCount of a campaign
func (h *Hub) SubscriberCount(campaignID int64) int {
	h.mut.Lock()
	defer h.mut.Unlock()
	return len(h.subs[campaignID])
}

// PublishDonation never blocks, a subscriber whose buffer is full is dropped
func (h *Hub) PublishDonation(event model.DonationEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("Marshal donation event", zap.Error(err))
		return
	}

	h.mut.Lock()
	defer h.mut.Unlock()

	for sub := range h.subs[event.CampaignID] {
		select {
		case sub.send <- data:
		default:
			h.logger.Warn("Drop slow feed subscriber", zap.Int64("campaign.id", event.CampaignID))
			h.removeLocked(sub)
		}
	}
}

// ServeWS upgrades the request and streams the events of a campaign until the client goes away
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, campaignID int64) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Upgrade websocket failed", zap.Error(err))
		return
	}

	sub := h.register(campaignID)

	go h.writeLoop(conn, sub)
	h.readLoop(conn)

	h.unregister(sub)
}

func (h *Hub) readLoop(conn *websocket.Conn) {
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(h.opts.pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(h.opts.pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				h.logger.Warn("Websocket closed unexpectedly", zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writeLoop(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(h.opts.pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case data, ok := <-sub.send:
			_ = conn.SetWriteDeadline(time.Now().Add(h.opts.writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(h.opts.writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every subscriber
func (h *Hub) Close() {
	h.mut.Lock()
	defer h.mut.Unlock()

	for _, campaignSubs := range h.subs {
		for sub := range campaignSubs {
			h.removeLocked(sub)
		}
	}
}
