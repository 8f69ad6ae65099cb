package domain

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bsaveapp/bsave/internal/models"
	"github.com/bsaveapp/bsave/internal/ports"
)

const defaultErrorDismiss = 5 * time.Second

// SessionConfig tunes session timing. Zero values take defaults.
type SessionConfig struct {
	// ErrorDismiss is how long an error stays shown before the session
	// returns to idle on its own. Negative disables auto-dismiss.
	ErrorDismiss time.Duration
}

// Session owns the per-client download state: the current state machine
// position, the single current VideoResult and the cancellable dismiss
// timer. All mutation goes through its methods; nothing is ambient.
//
// Overlapping submissions are not serialized: a later resolution simply
// overwrites the state. That mirrors the accepted stale-result behavior of
// the page this service fronts.
type Session struct {
	room         string
	extractor    ports.Extractor
	notifier     ports.Notifier
	errorDismiss time.Duration

	mu           sync.Mutex
	state        SessionState
	current      *models.VideoResult
	sourceURL    string
	lastError    string
	dismissTimer *time.Timer
}

func NewSession(room string, extractor ports.Extractor, notifier ports.Notifier, cfg SessionConfig) *Session {
	dismiss := cfg.ErrorDismiss
	if dismiss == 0 {
		dismiss = defaultErrorDismiss
	}
	return &Session{
		room:         room,
		extractor:    extractor,
		notifier:     notifier,
		errorDismiss: dismiss,
		state:        StateIdle,
	}
}

// Submit validates the raw input and, if it passes, performs exactly one
// resolve against the extraction API. Invalid input fails locally and never
// reaches the network.
func (s *Session) Submit(ctx context.Context, raw string) (*models.VideoResult, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !IsVideoURL(trimmed) {
		return nil, s.fail(ErrValidation)
	}

	s.mu.Lock()
	s.cancelDismissLocked()
	s.state = StateLoading
	s.current = nil
	s.lastError = ""
	s.sourceURL = trimmed
	s.mu.Unlock()
	s.publish(ports.SessionEvent{State: StateLoading.String()})

	resp, err := s.extractor.Resolve(ctx, trimmed)
	if err != nil {
		return nil, s.fail(err)
	}
	if !resp.Success {
		return nil, s.fail(&ExtractFailedError{Message: resp.Message})
	}
	if resp.MediaLink() == "" && strings.TrimSpace(resp.Title) == "" {
		// Extraction succeeded but there is nothing to present.
		return nil, s.fail(ErrPreviewRender)
	}

	result := models.ResultFrom(resp)

	s.mu.Lock()
	s.cancelDismissLocked()
	s.state = StatePreviewShown
	s.current = &result
	s.lastError = ""
	s.mu.Unlock()
	s.publish(ports.SessionEvent{State: StatePreviewShown.String(), Video: &result})

	return &result, nil
}

// Download hands out the trigger for the current result. It requires a
// result with a non-empty media URL and otherwise reports the no-data
// error. The state stays at preview; the actual transfer is the browser's
// business.
func (s *Session) Download() (DownloadTrigger, error) {
	s.mu.Lock()
	cur := s.current
	src := s.sourceURL
	s.mu.Unlock()

	if cur == nil || !cur.HasMedia() {
		return DownloadTrigger{}, s.fail(ErrNoData)
	}

	trig := DownloadTrigger{
		SourceURL: src,
		Title:     cur.Title,
		MediaURL:  cur.MediaURL,
		Filename:  DownloadFilename(time.Now()),
	}
	s.publish(ports.SessionEvent{State: StatePreviewShown.String(), Notice: "Download started!"})
	return trig, nil
}

// EditInput clears error and preview and returns the session to idle,
// discarding the current result.
func (s *Session) EditInput() {
	s.reset()
}

// Clear is the Escape action: same transition as an input edit.
func (s *Session) Clear() {
	s.reset()
}

// Snapshot returns the current state for handlers and tests.
func (s *Session) Snapshot() (SessionState, *models.VideoResult, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.current, s.lastError
}

// Close stops the dismiss timer. Called when the room goes away.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelDismissLocked()
}

func (s *Session) reset() {
	s.mu.Lock()
	s.cancelDismissLocked()
	s.state = StateIdle
	s.current = nil
	s.sourceURL = ""
	s.lastError = ""
	s.mu.Unlock()
	s.publish(ports.SessionEvent{State: StateIdle.String()})
}

// fail converts err into the user-facing message, moves to the error state
// and schedules the auto-dismiss. Returns err unchanged for the caller.
func (s *Session) fail(err error) error {
	msg := UserMessage(err)

	s.mu.Lock()
	s.cancelDismissLocked()
	s.state = StateErrorShown
	s.current = nil
	s.lastError = msg
	if s.errorDismiss > 0 {
		s.dismissTimer = time.AfterFunc(s.errorDismiss, s.dismissError)
	}
	s.mu.Unlock()
	s.publish(ports.SessionEvent{State: StateErrorShown.String(), Error: msg})

	return err
}

// dismissError fires from the timer. A transition that happened in the
// meantime wins: only a still-shown error is dismissed.
func (s *Session) dismissError() {
	s.mu.Lock()
	if s.state != StateErrorShown {
		s.mu.Unlock()
		return
	}
	s.state = StateIdle
	s.lastError = ""
	s.dismissTimer = nil
	s.mu.Unlock()
	s.publish(ports.SessionEvent{State: StateIdle.String()})
}

func (s *Session) cancelDismissLocked() {
	if s.dismissTimer != nil {
		s.dismissTimer.Stop()
		s.dismissTimer = nil
	}
}

func (s *Session) publish(ev ports.SessionEvent) {
	if s.notifier == nil {
		return
	}
	ev.Room = s.room
	s.notifier.Publish(ev)
}
