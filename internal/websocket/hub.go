package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"ducochat-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const redisChannel = "dashboard_events"

// Hub fans dashboard events out to every connected client. The feed is
// broadcast only; clients never address each other.
type Hub struct {
	// Connected clients keyed by connection id.
	clients map[uuid.UUID]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis relay so every instance behind a load balancer sees the event.
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
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
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Dashboard client connected", map[string]interface{}{"connection_id": client.ID})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
				h.logger.Info("Hub", "Dashboard client disconnected", map[string]interface{}{"connection_id": client.ID})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a named event to every connected dashboard and relays it
// through Redis for other instances.
func (h *Hub) Broadcast(event string, data interface{}) {
	message, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  data,
	})
	if err != nil {
		h.logger.Error("Hub", "Failed to serialize broadcast", map[string]interface{}{
			"event": event,
			"error": err.Error(),
		})
		return
	}

	h.broadcastLocal(message)

	if h.rdb != nil {
		h.rdb.Publish(context.Background(), redisChannel, message)
	}
}

// ClientCount reports how many dashboards are connected to this instance.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) broadcastLocal(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- message:
		default:
			// Slow consumer; drop the connection rather than block the hub.
			close(client.Send)
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		h.broadcastLocal([]byte(msg.Payload))
	}
}
