package ws

import (
	"encoding/json"
	"log"

	"github.com/bsaveapp/bsave/internal/ports"
)

// EventNotifier adapts the hub to the domain's Notifier port.
type EventNotifier struct {
	hub *Hub
}

func NewEventNotifier(hub *Hub) *EventNotifier {
	return &EventNotifier{hub: hub}
}

func (n *EventNotifier) Publish(ev ports.SessionEvent) {
	b, err := json.Marshal(ev)
	if err != nil {
		log.Printf("[ws] marshal event failed: %v", err)
		return
	}
	n.hub.SendToRoom(ev.Room, b)
}
