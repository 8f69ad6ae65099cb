package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans session events out to the browser tabs of each room.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{
		rooms: make(map[string]map[*websocket.Conn]bool),
	}
}

func (h *Hub) Register(roomID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[roomID]; !ok {
		h.rooms[roomID] = make(map[*websocket.Conn]bool)
	}
	h.rooms[roomID][conn] = true
	log.Printf("[hub] register room=%s conns=%d", roomID, len(h.rooms[roomID]))
}

// Unregister removes the connection and reports how many clients are left
// in the room.
func (h *Hub) Unregister(roomID string, conn *websocket.Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.rooms[roomID]
	if !ok {
		return 0
	}
	if _, ok := conns[conn]; ok {
		delete(conns, conn)
		conn.Close()
	}
	if len(conns) == 0 {
		delete(h.rooms, roomID)
		log.Printf("[hub] delete room=%s", roomID)
		return 0
	}
	return len(conns)
}

// RoomSize reports the number of connected clients in the room.
func (h *Hub) RoomSize(roomID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[roomID])
}

func (h *Hub) SendToRoom(roomID string, msg []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns, ok := h.rooms[roomID]
	if !ok || len(conns) == 0 {
		return
	}
	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			log.Printf("[hub] send failed room=%s err=%v", roomID, err)
		}
	}
}

var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}
