package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"agegate-admin-be/internal/changefeed"
	"agegate-admin-be/internal/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// Hub tracks connected admin clients and their table subscriptions, and
// fans row change events out to them. Redis pub/sub carries the events
// across instances when configured.
type Hub struct {
	// All connected clients. Each client keeps its own subscription set.
	clients map[*Client]struct{}

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fanout, may be nil.
	rdb *redis.Client

	logger logger.ILogger
}

const clusterChannel = "cluster_changes"

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[*Client]struct{}),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = struct{}{}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"admin_id": client.AdminID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"admin_id": client.AdminID})
			}
			h.mu.Unlock()
		}
	}
}

// BroadcastChange delivers a change event to every local client
// subscribed to its table and relays it to the other instances.
func (h *Hub) BroadcastChange(ev changefeed.ChangeEvent) {
	data, err := ev.Marshal()
	if err != nil {
		h.logger.Error("Hub", "Failed to marshal change event", map[string]interface{}{"error": err.Error()})
		return
	}

	h.deliverLocal(ev.Table, data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"table":   ev.Table,
			"message": json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, payload)
	}
}

func (h *Hub) deliverLocal(table string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		if !client.subscribedTo(table) {
			continue
		}
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client send buffer full, dropping connection", map[string]interface{}{"admin_id": client.AdminID})
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

// subscribeToRedis delivers events published by other instances to the
// local clients. Events are not re-published to avoid loops.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			Table   string          `json:"table"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		h.deliverLocal(payload.Table, payload.Message)
	}
}
