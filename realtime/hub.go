// Package realtime fans data-change notifications out to connected
// clients over websockets. Each account is its own room; a client only
// ever sees events for the account its token belongs to.
package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Event describes one acknowledged mutation. The payload is intentionally
// thin: clients refetch the collection they care about.
type Event struct {
	Collection string    `json:"collection"`
	Action     string    `json:"action"`
	ID         uuid.UUID `json:"id"`
}

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 16
)

type Client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	account string
}

type Hub struct {
	register   chan *Client
	unregister chan *Client
	rooms      map[string]map[*Client]bool
	mu         sync.RWMutex
	logger     *slog.Logger
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rooms:      make(map[string]map[*Client]bool),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.rooms[client.account]; !ok {
				h.rooms[client.account] = make(map[*Client]bool)
			}
			h.rooms[client.account][client] = true
			h.mu.Unlock()
			h.logger.Debug("realtime client registered", slog.String("account", client.account))

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.rooms[client.account]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					close(client.send)
					if len(clients) == 0 {
						delete(h.rooms, client.account)
					}
				}
			}
			h.mu.Unlock()
			h.logger.Debug("realtime client unregistered", slog.String("account", client.account))
		}
	}
}

// Publish sends an event to every client of the given account. Delivery is
// best effort: a client whose buffer is full misses the event.
func (h *Hub) Publish(userID uuid.UUID, event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("failed to marshal realtime event", slog.Any("error", err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.rooms[userID.String()] {
		select {
		case client.send <- payload:
		default:
		}
	}
}

// NewClient attaches a websocket connection to the hub and starts its
// pumps. The connection is owned by the hub from this point on.
func (h *Hub) NewClient(conn *websocket.Conn, userID uuid.UUID) {
	client := &Client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, sendBuffer),
		account: userID.String(),
	}
	h.register <- client
	go client.writePump()
	go client.readPump()
}

// readPump discards inbound frames; the feed is one-way. It exists to
// process control messages and detect the peer going away.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
