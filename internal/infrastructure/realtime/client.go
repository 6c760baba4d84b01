package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	domainerrors "homeservice.backend/internal/domain/errors"
	"homeservice.backend/pkg/logger"
	"homeservice.backend/pkg/utils"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 30 * time.Second
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Client is one socket connection
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	closeOnce sync.Once
}

func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	return &Client{
		ID:   utils.NewID(),
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
}

func (c *Client) enqueue(data []byte) (ok bool) {
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Client) closeSend() {
	c.closeOnce.Do(func() { close(c.send) })
}

func (c *Client) reply(eventType string, payload interface{}) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return
	}
	data, err := json.Marshal(Message{Type: eventType, Payload: raw, Timestamp: time.Now()})
	if err != nil {
		return
	}
	c.enqueue(data)
}

// WritePump drains the send buffer to the socket and keeps it alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// ReadPump handles inbound frames until the socket closes, then unregisters the client.
func (c *Client) ReadPump(ctx context.Context) {
	defer func() {
		c.hub.Unregister(c)
		_ = c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn(ctx, "Socket closed unexpectedly", zap.String("client_id", c.ID), zap.Error(err))
			}
			return
		}

		var msg Message
		if err := json.Unmarshal(data, &msg); err != nil {
			c.reply(EventError, map[string]string{"error": "invalid message"})
			continue
		}
		c.handle(ctx, msg)
	}
}

type roomRequest struct {
	WorkerID string `json:"workerId"`
	UserID   string `json:"userId"`
}

func (c *Client) handle(ctx context.Context, msg Message) {
	switch msg.Type {
	case MessageJoinWorkerRoom, MessageJoinUserRoom:
		var req roomRequest
		_ = json.Unmarshal(msg.Payload, &req)
		room := ""
		if msg.Type == MessageJoinWorkerRoom && req.WorkerID != "" {
			room = WorkerRoom(req.WorkerID)
		}
		if msg.Type == MessageJoinUserRoom && req.UserID != "" {
			room = UserRoom(req.UserID)
		}
		if room == "" {
			c.reply(EventError, map[string]string{"error": "missing room id"})
			return
		}
		c.join(room)
	case MessageJoinLocations:
		c.join(LocationsRoom)
	case MessageLocationUpdate:
		handler := c.hub.locationHandler()
		if handler == nil {
			return
		}
		if err := handler(ctx, msg.Payload); err != nil {
			logger.Warn(ctx, "Socket location update rejected", zap.String("client_id", c.ID), zap.Error(err))
			c.reply(EventError, map[string]string{"error": domainerrors.FromError(err).Message})
		}
	default:
		c.reply(EventError, map[string]string{"error": "unknown message type"})
	}
}

func (c *Client) join(room string) {
	if c.hub.Join(c, room) {
		c.reply(EventJoined, map[string]string{"room": room})
	}
}
