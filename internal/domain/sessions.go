package domain

import (
	"sync"

	"github.com/bsaveapp/bsave/internal/ports"
)

// SessionManager hands out one Session per room.
type SessionManager struct {
	extractor ports.Extractor
	notifier  ports.Notifier
	cfg       SessionConfig

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager(extractor ports.Extractor, notifier ports.Notifier, cfg SessionConfig) *SessionManager {
	return &SessionManager{
		extractor: extractor,
		notifier:  notifier,
		cfg:       cfg,
		sessions:  make(map[string]*Session),
	}
}

// Get returns the session for the room, creating it on first use.
func (m *SessionManager) Get(room string) *Session {
	if room == "" {
		room = "default"
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[room]; ok {
		return s
	}
	s := NewSession(room, m.extractor, m.notifier, m.cfg)
	m.sessions[room] = s
	return s
}

// Drop closes and forgets the room's session. Called when the last client
// of a room disconnects.
func (m *SessionManager) Drop(room string) {
	m.mu.Lock()
	s, ok := m.sessions[room]
	delete(m.sessions, room)
	m.mu.Unlock()

	if ok {
		s.Close()
	}
}
