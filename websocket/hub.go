package websocket

import (
	"context"
	"log/slog"
	"sync"
)

// Conn is the part of a websocket connection the hub writes to.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Client is an authenticated admin connection.
type Client struct {
	Subject string
	Conn    Conn
}

// Notification is the frame pushed to every connected admin.
type Notification struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

// Hub fans notifications out to the connected admin dashboards.
type Hub struct {
	clients    map[*Client]struct{}
	clientsMu  sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan Notification
	done       chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan Notification, 64),
		done:       make(chan struct{}),
	}
}

// Run owns the client set until ctx is cancelled. Once it returns, Register
// closes the new connection and Unregister is a no-op.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			slog.Info("admin socket registered", "subject", client.Subject)
			h.clientsMu.Lock()
			h.clients[client] = struct{}{}
			h.clientsMu.Unlock()
		case client := <-h.unregister:
			slog.Info("admin socket unregistered", "subject", client.Subject)
			h.clientsMu.Lock()
			delete(h.clients, client)
			h.clientsMu.Unlock()
		case n := <-h.broadcast:
			h.deliver(n)
		}
	}
}

func (h *Hub) Register(c *Client) {
	select {
	case h.register <- c:
	case <-h.done:
		_ = c.Conn.Close()
	}
}

func (h *Hub) Unregister(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues a notification without blocking the caller. When the
// queue is full the notification is dropped.
func (h *Hub) Broadcast(eventType string, data any) {
	select {
	case h.broadcast <- Notification{Type: eventType, Data: data}:
	default:
		slog.Warn("admin socket queue full, dropping notification", "type", eventType)
	}
}

// Count reports the number of connected clients.
func (h *Hub) Count() int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients)
}

func (h *Hub) deliver(n Notification) {
	h.clientsMu.RLock()
	var failed []*Client
	for client := range h.clients {
		if err := client.Conn.WriteJSON(n); err != nil {
			slog.Warn("failed to write to admin socket", "subject", client.Subject, "error", err)
			failed = append(failed, client)
		}
	}
	h.clientsMu.RUnlock()

	if len(failed) == 0 {
		return
	}
	h.clientsMu.Lock()
	for _, client := range failed {
		_ = client.Conn.Close()
		delete(h.clients, client)
	}
	h.clientsMu.Unlock()
}

func (h *Hub) closeAll() {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	for client := range h.clients {
		_ = client.Conn.Close()
		delete(h.clients, client)
	}
}
