package realtime

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Conn is the slice of a websocket connection the hub needs. Both
// *websocket.Conn and test fakes satisfy it.
type Conn interface {
	WriteJSON(v interface{}) error
	Close() error
}

// Router delivers an event to every connection joined to a room. Delivery is
// fire-and-forget: an empty room is a silent no-op.
type Router interface {
	Emit(room, event string, data any)
}

// Hub is the in-process room router. It is constructed once at startup and
// handed to its consumers explicitly; nothing reaches it through a global.
type Hub struct {
	mu    sync.Mutex
	log   *logrus.Logger
	rooms map[string]map[Conn]bool
	conns map[Conn]map[string]bool
}

func NewHub(log *logrus.Logger) *Hub {
	return &Hub{
		log:   log,
		rooms: make(map[string]map[Conn]bool),
		conns: make(map[Conn]map[string]bool),
	}
}

// Join adds conn to room. A connection may sit in several rooms, though in
// practice each client joins exactly one room named after its own email.
func (h *Hub) Join(conn Conn, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[Conn]bool)
	}
	h.rooms[room][conn] = true

	if h.conns[conn] == nil {
		h.conns[conn] = make(map[string]bool)
	}
	h.conns[conn][room] = true

	h.log.Infof("Client joined room: %s (Total: %d)", room, len(h.rooms[room]))
}

// Leave removes conn from every room it joined. Called when the transport
// closes the connection.
func (h *Hub) Leave(conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.dropLocked(conn)
}

// Emit writes the event to every connection currently in the room, at most
// once per connection. A failed write closes and drops the connection.
func (h *Hub) Emit(room, event string, data any) {
	h.mu.Lock()
	defer h.mu.Unlock()

	envelope := Envelope{Event: event, Data: data}
	for conn := range h.rooms[room] {
		if err := conn.WriteJSON(envelope); err != nil {
			h.log.Warnf("Error emitting %s to room %s: %v", event, room, err)
			conn.Close()
			h.dropLocked(conn)
		}
	}
}

// RoomSize reports how many connections are joined to a room.
func (h *Hub) RoomSize(room string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[room])
}

func (h *Hub) dropLocked(conn Conn) {
	for room := range h.conns[conn] {
		delete(h.rooms[room], conn)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.conns, conn)
}
