package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
	"homeservice.backend/internal/domain/entities"
	"homeservice.backend/pkg/logger"
	"homeservice.backend/pkg/metrics"
)

// Event types pushed to sockets
const (
	EventWorkerLocationUpdate = entities.EventWorkerLocationUpdate
	EventNewJobBroadcast      = entities.EventNewJobBroadcast
	EventJobStatus            = entities.EventJobStatus
	EventError                = "error"
	EventJoined               = "joined"
)

// Message types sent by sockets
const (
	MessageJoinWorkerRoom = "join_worker_room"
	MessageJoinUserRoom   = "join_user_room"
	MessageJoinLocations  = "join_locations"
	MessageLocationUpdate = "location_update"
)

const LocationsRoom = entities.LocationsRoom

var (
	WorkerRoom = entities.WorkerRoom
	UserRoom   = entities.UserRoom
)

// Message is the frame written to a socket
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// LocationHandler persists a location_update sent over a socket.
type LocationHandler func(ctx context.Context, payload json.RawMessage) error

// Hub tracks local sockets and the rooms they joined
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]map[string]struct{}
	rooms   map[string]map[*Client]struct{}

	onLocation LocationHandler
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*Client]map[string]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
	}
}

// OnLocationUpdate sets the handler for socket location updates.
func (h *Hub) OnLocationUpdate(fn LocationHandler) {
	h.mu.Lock()
	h.onLocation = fn
	h.mu.Unlock()
}

func (h *Hub) locationHandler() LocationHandler {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.onLocation
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = make(map[string]struct{})
	h.mu.Unlock()
	metrics.RealtimeConnections.Inc()
}

// Unregister removes c from every room and closes its send buffer.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	rooms, ok := h.clients[c]
	if ok {
		for room := range rooms {
			h.leaveLocked(c, room)
		}
		delete(h.clients, c)
	}
	h.mu.Unlock()

	if ok {
		c.closeSend()
		metrics.RealtimeConnections.Dec()
	}
}

func (h *Hub) Join(c *Client, room string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	joined, ok := h.clients[c]
	if !ok {
		return false
	}
	joined[room] = struct{}{}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	return true
}

func (h *Hub) leaveLocked(c *Client, room string) {
	members := h.rooms[room]
	delete(members, c)
	if len(members) == 0 {
		delete(h.rooms, room)
	}
}

// RoomSize reports how many local sockets joined room.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Deliver writes msg to every local socket in room and returns how many accepted it.
// Sockets whose send buffer is full are dropped.
func (h *Hub) Deliver(room string, msg Message) int {
	data, err := json.Marshal(msg)
	if err != nil {
		logger.Error(context.Background(), "Failed to marshal socket message", zap.String("type", msg.Type), zap.Error(err))
		return 0
	}

	var slow []*Client
	delivered := 0

	h.mu.RLock()
	for c := range h.rooms[room] {
		if c.enqueue(data) {
			delivered++
		} else {
			slow = append(slow, c)
		}
	}
	h.mu.RUnlock()

	for _, c := range slow {
		logger.Warn(context.Background(), "Dropping slow socket", zap.String("client_id", c.ID))
		h.Unregister(c)
	}
	metrics.RealtimeDelivered.Add(float64(delivered))
	return delivered
}

// Close drops every socket.
func (h *Hub) Close() {
	h.mu.RLock()
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.RUnlock()

	for _, c := range clients {
		h.Unregister(c)
	}
}
