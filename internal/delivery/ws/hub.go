// Package ws pushes order status changes to connected clients over WebSocket.
package ws

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	broadcastBuffer = 256
	clientBuffer    = 64
)

// Message is the frame written to subscribers.
type Message struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// Hub keeps the live connections of each account and fans order events out to them.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	broadcast  chan *entity.OrderStatusChangedEvent
	register   chan *Client
	unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex

	pingInterval   time.Duration
	writeTimeout   time.Duration
	maxMessageSize int64
	logger         *slog.Logger
}

// HubParams holds dependencies for Hub, injected by Fx.
type HubParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewHub creates the hub and runs it for the lifetime of the application.
func NewHub(params HubParams) *Hub {
	hub := newHub(params.Config.WebSocket, params.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go hub.Run(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return hub
}

func newHub(cfg *config.WebSocketConfig, logger *slog.Logger) *Hub {
	return &Hub{
		clients:        make(map[uuid.UUID]map[*Client]struct{}),
		broadcast:      make(chan *entity.OrderStatusChangedEvent, broadcastBuffer),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		done:           make(chan struct{}),
		pingInterval:   cfg.PingInterval,
		writeTimeout:   cfg.WriteTimeout,
		maxMessageSize: cfg.MaxMessageSize,
		logger:         logger,
	}
}

// Run serves register, unregister and broadcast requests until ctx is done.
// Remaining connections are closed on exit.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case client := <-h.register:
			h.mutex.Lock()
			if h.clients[client.accountID] == nil {
				h.clients[client.accountID] = make(map[*Client]struct{})
			}
			h.clients[client.accountID][client] = struct{}{}
			h.mutex.Unlock()
			h.logger.Debug("WebSocket client connected",
				slog.String("account_id", client.accountID.String()),
				slog.Int("client_count", h.ClientCount()),
			)

		case client := <-h.unregister:
			h.mutex.Lock()
			h.remove(client)
			h.mutex.Unlock()
			h.logger.Debug("WebSocket client disconnected",
				slog.String("account_id", client.accountID.String()),
				slog.Int("client_count", h.ClientCount()),
			)

		case event := <-h.broadcast:
			h.deliver(event)

		case <-ctx.Done():
			h.mutex.Lock()
			for _, set := range h.clients {
				for client := range set {
					h.remove(client)
				}
			}
			h.mutex.Unlock()

			return
		}
	}
}

// deliver sends the event to every connection of every order party.
// Connections that cannot keep up are dropped.
func (h *Hub) deliver(event *entity.OrderStatusChangedEvent) {
	message := Message{
		Type:      event.Type,
		Data:      event,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	for _, accountID := range event.Recipients() {
		for client := range h.clients[accountID] {
			select {
			case client.send <- message:
			default:
				h.logger.Warn("WebSocket client too slow, dropping connection",
					slog.String("account_id", accountID.String()),
				)
				h.remove(client)
			}
		}
	}
}

// remove must be called with the mutex held.
func (h *Hub) remove(client *Client) {
	set, ok := h.clients[client.accountID]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}

	delete(set, client)
	close(client.send)
	if len(set) == 0 {
		delete(h.clients, client.accountID)
	}
}

// Register adds a client. It reports false once the hub has stopped.
func (h *Hub) Register(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a client and closes its send channel.
func (h *Hub) Unregister(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// BroadcastOrderEvent queues the event without blocking the caller.
func (h *Hub) BroadcastOrderEvent(event *entity.OrderStatusChangedEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.logger.Warn("Broadcast channel full, dropping order event", slog.Int64("order_id", event.OrderID))
	}
}

// ClientCount returns the number of open connections.
func (h *Hub) ClientCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	count := 0
	for _, set := range h.clients {
		count += len(set)
	}

	return count
}
