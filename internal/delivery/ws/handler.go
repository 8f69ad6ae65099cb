package ws

import (
	"net/http"
)

// Handler upgrades the connection, parks it in the room and holds it open
// until the client goes away. onRoomEmpty fires when the last client of a
// room disconnects so the owning session can be dropped.
func Handler(hub *Hub, onRoomEmpty func(roomID string)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := Upgrader.Upgrade(w, r, nil)
		if err != nil {
			http.Error(w, "ws upgrade failed", http.StatusBadRequest)
			return
		}

		roomID := r.URL.Query().Get("roomID")
		if roomID == "" {
			roomID = "default"
		}
		hub.Register(roomID, conn)

		defer func() {
			if remaining := hub.Unregister(roomID, conn); remaining == 0 && onRoomEmpty != nil {
				onRoomEmpty(roomID)
			}
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
