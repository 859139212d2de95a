package web

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vitos/crypto_scenario/internal/infrastructure/metrics"
	"github.com/vitos/crypto_scenario/internal/usecase"
	"go.uber.org/zap"
)

const (
	feedSendBuffer = 16
	feedWriteWait  = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type WSMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// feedClient owns one connection. Only its writeLoop writes to conn.
type feedClient struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
}

// Feed pushes every new analysis to connected websocket clients.
// Broadcast never blocks: a client whose queue is full is dropped.
type Feed struct {
	clients map[*feedClient]struct{}
	mu      sync.RWMutex
	metrics *metrics.Registry
	logger  *zap.Logger
}

func NewFeed(registry *metrics.Registry, logger *zap.Logger) *Feed {
	return &Feed{
		clients: make(map[*feedClient]struct{}),
		metrics: registry,
		logger:  logger,
	}
}

func (f *Feed) HandleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.logger.Error("Failed to upgrade feed connection", zap.Error(err))
		return
	}

	c := &feedClient{
		conn: conn,
		send: make(chan []byte, feedSendBuffer),
		done: make(chan struct{}),
	}
	f.add(c)
	defer f.remove(c)

	go f.writeLoop(c)

	// Clients do not send anything; reading detects the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (f *Feed) writeLoop(c *feedClient) {
	for {
		select {
		case data := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				f.logger.Warn("Failed to send analysis to feed client", zap.Error(err))
				f.remove(c)
				return
			}
		case <-c.done:
			return
		}
	}
}

func (f *Feed) add(c *feedClient) {
	f.mu.Lock()
	f.clients[c] = struct{}{}
	n := len(f.clients)
	f.mu.Unlock()

	if f.metrics != nil {
		f.metrics.FeedClients.Inc()
	}
	f.logger.Debug("Feed client connected", zap.Int("clients", n))
}

// remove is safe to call more than once per client.
func (f *Feed) remove(c *feedClient) {
	f.mu.Lock()
	_, ok := f.clients[c]
	delete(f.clients, c)
	f.mu.Unlock()

	if !ok {
		return
	}
	close(c.done)
	c.conn.Close()
	if f.metrics != nil {
		f.metrics.FeedClients.Dec()
	}
}

func (f *Feed) Clients() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.clients)
}

// Broadcast is registered as an AnalysisListener.
func (f *Feed) Broadcast(result *usecase.AnalysisResult) {
	data, err := json.Marshal(WSMessage{Type: "analysis", Payload: result})
	if err != nil {
		f.logger.Error("Failed to marshal analysis message", zap.Error(err))
		return
	}

	var slow []*feedClient
	f.mu.RLock()
	for c := range f.clients {
		select {
		case c.send <- data:
		default:
			slow = append(slow, c)
		}
	}
	f.mu.RUnlock()

	for _, c := range slow {
		f.logger.Warn("Dropping slow feed client", zap.String("remote", c.conn.RemoteAddr().String()))
		f.remove(c)
	}
}

func (f *Feed) Close() {
	f.mu.RLock()
	clients := make([]*feedClient, 0, len(f.clients))
	for c := range f.clients {
		clients = append(clients, c)
	}
	f.mu.RUnlock()

	for _, c := range clients {
		f.remove(c)
	}
}
