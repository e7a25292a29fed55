package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

// envelope is the frame format pushed to clients.
type envelope struct {
	Event   string `json:"event"`
	Channel string `json:"channel,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// clientFrame is what clients send over the socket.
type clientFrame struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
	Auth    string `json:"auth,omitempty"`
}

// connection is one websocket client identified by its server-assigned
// socket ID.
type connection struct {
	socketID string
	userID   int64
	conn     *websocket.Conn
	send     chan []byte
	channels map[string]bool
}

// Hub tracks live connections and their channel subscriptions, and publishes
// events onto private channels. It implements notification.Publisher.
type Hub struct {
	mu          sync.RWMutex
	connections map[string]*connection
	signer      *Signer
}

func NewHub(signer *Signer) *Hub {
	return &Hub{
		connections: make(map[string]*connection),
		signer:      signer,
	}
}

func (h *Hub) register(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.connections[c.socketID] = c
}

func (h *Hub) unregister(c *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if existing, ok := h.connections[c.socketID]; ok && existing == c {
		delete(h.connections, c.socketID)
		close(c.send)
	}
}

// Publish sends an event to every connection subscribed to the user's private
// channel. Delivery is at-most-once: nobody subscribed means the event is
// dropped, and a slow client is skipped rather than awaited.
func (h *Hub) Publish(ctx context.Context, userID int64, event string, payload any) error {
	channel := UserChannel(userID)

	data, err := json.Marshal(envelope{Event: event, Channel: channel, Data: payload})
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.connections {
		if c.channels[channel] {
			select {
			case c.send <- data:
			default:
				// Client too slow, skip
			}
		}
	}
	return nil
}

// ServeConn runs the read/write loops for an upgraded connection. It blocks
// until the peer disconnects.
func (h *Hub) ServeConn(conn *websocket.Conn, socketID string, userID int64) {
	c := &connection{
		socketID: socketID,
		userID:   userID,
		conn:     conn,
		send:     make(chan []byte, 64),
		channels: make(map[string]bool),
	}

	h.register(c)

	hello, _ := json.Marshal(envelope{
		Event: "connection_established",
		Data:  map[string]string{"socket_id": socketID},
	})
	c.send <- hello

	go h.writePump(c)
	h.readPump(c)
}

func (h *Hub) readPump(c *connection) {
	defer func() {
		h.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			break
		}

		var frame clientFrame
		if err := json.Unmarshal(msg, &frame); err != nil {
			continue
		}

		switch frame.Type {
		case "subscribe":
			h.subscribe(c, frame.Channel, frame.Auth)
		case "unsubscribe":
			h.mu.Lock()
			delete(c.channels, frame.Channel)
			h.mu.Unlock()
		}
	}
}

// subscribe binds the connection to a channel only when the auth token from
// the authorization endpoint checks out for this exact socket and channel.
// Verified on every attempt; a previous successful subscription earns nothing.
func (h *Hub) subscribe(c *connection, channel, auth string) {
	if !h.signer.Verify(c.socketID, channel, auth) {
		slog.Warn("rejected channel subscription",
			"socket_id", c.socketID,
			"user_id", c.userID,
			"channel", channel,
		)
		reply, _ := json.Marshal(envelope{
			Event:   "subscription_error",
			Channel: channel,
			Data:    map[string]string{"code": "FORBIDDEN"},
		})
		select {
		case c.send <- reply:
		default:
		}
		return
	}

	h.mu.Lock()
	c.channels[channel] = true
	h.mu.Unlock()

	reply, _ := json.Marshal(envelope{Event: "subscription_succeeded", Channel: channel})
	select {
	case c.send <- reply:
	default:
	}
}

func (h *Hub) writePump(c *connection) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
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
