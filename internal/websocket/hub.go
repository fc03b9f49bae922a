package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"ai-studio-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "studio_cluster_events"

type Hub struct {
	// Registered clients map: SessionID -> Client
	clients map[uuid.UUID]*Client

	// Register requests from the clients.
	register chan *Client

	// Unregister requests from clients.
	unregister chan *Client

	// Lock for safe map access
	mu sync.RWMutex

	// Redis connection for cross-instance fan-out
	rdb *redis.Client

	// Distinguishes our own cluster messages from other instances'
	instanceId string

	// Dedicated Logger
	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID]*Client),
		rdb:        rdb,
		instanceId: uuid.New().String(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	// Start Redis Subscriber if Redis is available
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.SessionID] = client
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"session_id": client.SessionID})

		case client := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.clients[client.SessionID]; ok && existing == client {
				delete(h.clients, client.SessionID)
				close(client.Send)
				h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"session_id": client.SessionID})
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast sends a studio event to ALL connected clients and mirrors it to
// other instances through Redis.
func (h *Hub) Broadcast(data []byte) {
	h.sendLocal(data)

	if h.rdb != nil {
		payload := map[string]interface{}{
			"origin":  h.instanceId,
			"message": json.RawMessage(data),
		}
		jsonPayload, err := json.Marshal(payload)
		if err != nil {
			h.logger.Error("Hub", "Failed to marshal cluster payload", map[string]interface{}{"error": err.Error()})
			return
		}
		h.rdb.Publish(context.Background(), clusterChannel, jsonPayload)
	}
}

func (h *Hub) sendLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, client := range h.clients {
		select {
		case client.Send <- data:
		default:
			h.logger.Warn("Hub", "Client Send buffer full, dropping message", map[string]interface{}{"session_id": client.SessionID})
			// The unregister handler owns the channel close.
			go func(c *Client) { h.unregister <- c }(client)
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()

	for msg := range ch {
		var payload struct {
			Origin  string          `json:"origin"`
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}

		// Our own broadcast already reached local clients.
		if payload.Origin == h.instanceId {
			continue
		}

		h.sendLocal(payload.Message)
	}
}
