package sse

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/krishiquest/KrishiQuest_Go/internal/metrics"
)

// Event is one message on a stream
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`

	// scope is the owning player; empty reaches everyone
	scope string
}

// Client is one open stream
type Client struct {
	ID       string
	PlayerID string // empty receives every player's events
	Events   chan Event

	types map[string]struct{} // nil accepts every type
}

func (c *Client) accepts(evt Event) bool {
	if c.types != nil {
		if _, ok := c.types[evt.Type]; !ok {
			return false
		}
	}
	return c.PlayerID == "" || evt.scope == "" || evt.scope == c.PlayerID
}

// Hub fans events out to connected streams. Broadcast is non-blocking; a
// single loop delivers queued events and skips clients whose buffer is full.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	stopped bool

	queue chan Event
	done  chan struct{}
	once  sync.Once
	wg    sync.WaitGroup
}

// NewHub creates a hub; call Start before broadcasting
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		queue:   make(chan Event, BroadcastBufferSize),
		done:    make(chan struct{}),
	}
}

// Start launches the delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case evt := <-h.queue:
				h.deliver(evt)
			case <-h.done:
				return
			}
		}
	}()
}

// Stop ends delivery and closes every client stream. Repeated calls are no-ops.
func (h *Hub) Stop() {
	h.once.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.stopped = true
		for id, c := range h.clients {
			close(c.Events)
			delete(h.clients, id)
		}
		metrics.SSEClients.Set(0)
	})
}

func (h *Hub) deliver(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.accepts(evt) {
			continue
		}
		select {
		case c.Events <- evt:
		default:
			slog.Debug(LogMsgClientSlow, "client_id", c.ID, "type", evt.Type)
		}
	}
}

// Register opens a stream for playerID limited to eventTypes (all when empty).
// It returns nil once the hub has stopped.
func (h *Hub) Register(playerID string, eventTypes []string) *Client {
	c := &Client{
		ID:       uuid.NewString(),
		PlayerID: playerID,
		Events:   make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			c.types[t] = struct{}{}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return nil
	}
	h.clients[c.ID] = c
	metrics.SSEClients.Set(float64(len(h.clients)))
	return c
}

// Unregister closes and forgets a stream
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c, ok := h.clients[clientID]
	if !ok {
		return
	}
	close(c.Events)
	delete(h.clients, clientID)
	metrics.SSEClients.Set(float64(len(h.clients)))
}

// Broadcast queues an event for every interested client. An empty playerID
// reaches all streams. Events are dropped when the queue is full.
func (h *Hub) Broadcast(eventType, playerID string, payload interface{}) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
		scope:     playerID,
	}
	select {
	case h.queue <- evt:
	default:
		slog.Warn(LogMsgEventDropped, "type", eventType)
	}
}

// ClientCount reports the open streams
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	return fmt.Appendf(nil, "id: %s\nevent: %s\ndata: %s\n\n", evt.ID, evt.Type, data), nil
}
