package ports

import "github.com/bsaveapp/bsave/internal/models"

// SessionEvent is pushed to the clients of a room whenever the session
// changes state or emits a transient notice.
type SessionEvent struct {
	Room   string              `json:"-"`
	State  string              `json:"state"`
	Video  *models.VideoResult `json:"video,omitempty"`
	Error  string              `json:"error,omitempty"`
	Notice string              `json:"notice,omitempty"`
}

type Notifier interface {
	Publish(ev SessionEvent)
}
