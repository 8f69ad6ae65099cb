package domain

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bsaveapp/bsave/internal/models"
	"github.com/bsaveapp/bsave/internal/ports"
)

type fakeExtractor struct {
	mu    sync.Mutex
	calls int
	resp  models.ExtractResponse
	err   error
}

func (f *fakeExtractor) Resolve(ctx context.Context, videoURL string) (models.ExtractResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.resp, f.err
}

func (f *fakeExtractor) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []ports.SessionEvent
}

func (n *recordingNotifier) Publish(ev ports.SessionEvent) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) states() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.events))
	for _, ev := range n.events {
		out = append(out, ev.State)
	}
	return out
}

func newTestSession(ext *fakeExtractor) (*Session, *recordingNotifier) {
	n := &recordingNotifier{}
	// auto-dismiss disabled unless a test opts in
	return NewSession("t", ext, n, SessionConfig{ErrorDismiss: -1}), n
}

const watchURL = "https://www.facebook.com/watch?v=12345"

func TestSubmit_WhitespaceNeverReachesNetwork(t *testing.T) {
	ext := &fakeExtractor{}
	s, _ := newTestSession(ext)

	for _, in := range []string{"", "   ", "\t\n"} {
		if _, err := s.Submit(context.Background(), in); !errors.Is(err, ErrValidation) {
			t.Fatalf("Submit(%q) err=%v, want ErrValidation", in, err)
		}
	}
	if ext.callCount() != 0 {
		t.Fatalf("extractor called %d times for empty input", ext.callCount())
	}
	state, _, msg := s.Snapshot()
	if state != StateErrorShown {
		t.Fatalf("state=%s, want error", state)
	}
	if msg != "Please enter a valid Facebook video URL" {
		t.Fatalf("message=%q", msg)
	}
}

func TestSubmit_MalformedURLFailsLocally(t *testing.T) {
	ext := &fakeExtractor{}
	s, _ := newTestSession(ext)

	_, err := s.Submit(context.Background(), "https://example.com")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("err=%v, want ErrValidation", err)
	}
	if ext.callCount() != 0 {
		t.Fatal("network call issued for invalid URL")
	}
}

func TestSubmit_SuccessShowsPreviewWithDefaults(t *testing.T) {
	ext := &fakeExtractor{resp: models.ExtractResponse{
		Success:  true,
		VideoURL: "https://cdn/x.mp4",
		Title:    "Cat video",
		Duration: "1:30",
	}}
	s, n := newTestSession(ext)

	got, err := s.Submit(context.Background(), watchURL)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if got.Title != "Cat video" || got.Duration != "1:30" || got.Quality != models.DefaultQuality {
		t.Fatalf("unexpected result: %+v", got)
	}
	if got.MediaURL != "https://cdn/x.mp4" {
		t.Fatalf("MediaURL=%q", got.MediaURL)
	}

	state, cur, _ := s.Snapshot()
	if state != StatePreviewShown || cur == nil {
		t.Fatalf("state=%s cur=%v, want preview with result", state, cur)
	}

	wantStates := []string{"loading", "preview"}
	if gotStates := n.states(); len(gotStates) != 2 || gotStates[0] != wantStates[0] || gotStates[1] != wantStates[1] {
		t.Fatalf("published states=%v, want %v", gotStates, wantStates)
	}
}

func TestSubmit_FailureFlagShowsAPIMessage(t *testing.T) {
	ext := &fakeExtractor{resp: models.ExtractResponse{Success: false, Message: "Video is private"}}
	s, _ := newTestSession(ext)

	_, err := s.Submit(context.Background(), watchURL)
	var failed *ExtractFailedError
	if !errors.As(err, &failed) {
		t.Fatalf("err=%v, want ExtractFailedError", err)
	}
	state, cur, msg := s.Snapshot()
	if state != StateErrorShown || cur != nil {
		t.Fatalf("state=%s cur=%v", state, cur)
	}
	if msg != "Video is private" {
		t.Fatalf("message=%q", msg)
	}
}

func TestSubmit_MissingSuccessFlagIsFailure(t *testing.T) {
	ext := &fakeExtractor{resp: models.ExtractResponse{Title: "x", VideoURL: "https://cdn/x.mp4"}}
	s, _ := newTestSession(ext)

	if _, err := s.Submit(context.Background(), watchURL); err == nil {
		t.Fatal("expected failure for missing success flag")
	}
	if state, _, _ := s.Snapshot(); state != StateErrorShown {
		t.Fatalf("state=%s, want error", state)
	}
}

func TestSubmit_ExtractorErrorShowsError(t *testing.T) {
	ext := &fakeExtractor{err: ErrConnectivity}
	s, _ := newTestSession(ext)

	_, err := s.Submit(context.Background(), watchURL)
	if !errors.Is(err, ErrConnectivity) {
		t.Fatalf("err=%v", err)
	}
	_, _, msg := s.Snapshot()
	if !strings.Contains(msg, "Network error") {
		t.Fatalf("message=%q", msg)
	}
}

func TestSubmit_SuccessWithEmptyPayloadIsPreviewFailure(t *testing.T) {
	ext := &fakeExtractor{resp: models.ExtractResponse{Success: true}}
	s, _ := newTestSession(ext)

	_, err := s.Submit(context.Background(), watchURL)
	if !errors.Is(err, ErrPreviewRender) {
		t.Fatalf("err=%v, want ErrPreviewRender", err)
	}
	_, _, msg := s.Snapshot()
	if msg != "Video found, but the preview could not be displayed." {
		t.Fatalf("message=%q", msg)
	}
}

func TestEditInput_ClearsPreviewAndResult(t *testing.T) {
	ext := &fakeExtractor{resp: models.ExtractResponse{Success: true, VideoURL: "https://cdn/x.mp4"}}
	s, _ := newTestSession(ext)

	if _, err := s.Submit(context.Background(), watchURL); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	s.EditInput()

	state, cur, msg := s.Snapshot()
	if state != StateIdle || cur != nil || msg != "" {
		t.Fatalf("after edit: state=%s cur=%v msg=%q", state, cur, msg)
	}

	// the discarded result must not be downloadable anymore
	if _, err := s.Download(); !errors.Is(err, ErrNoData) {
		t.Fatalf("Download after edit err=%v, want ErrNoData", err)
	}
}

func TestEditInput_ClearsError(t *testing.T) {
	ext := &fakeExtractor{}
	s, _ := newTestSession(ext)

	_, _ = s.Submit(context.Background(), "bogus")
	s.EditInput()

	state, _, msg := s.Snapshot()
	if state != StateIdle || msg != "" {
		t.Fatalf("state=%s msg=%q", state, msg)
	}
}

func TestDownload_WithoutResultFailsWithNoData(t *testing.T) {
	ext := &fakeExtractor{}
	s, _ := newTestSession(ext)

	_, err := s.Download()
	if !errors.Is(err, ErrNoData) {
		t.Fatalf("err=%v, want ErrNoData", err)
	}
	_, _, msg := s.Snapshot()
	if msg != "No video data. Please fetch a video first." {
		t.Fatalf("message=%q", msg)
	}
}

func TestDownload_ReturnsTriggerAndKeepsPreview(t *testing.T) {
	ext := &fakeExtractor{resp: models.ExtractResponse{Success: true, VideoURL: "https://cdn/x.mp4", Title: "Cat video"}}
	s, n := newTestSession(ext)

	if _, err := s.Submit(context.Background(), watchURL); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	trig, err := s.Download()
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if trig.MediaURL != "https://cdn/x.mp4" {
		t.Fatalf("MediaURL=%q", trig.MediaURL)
	}
	if !strings.HasPrefix(trig.Filename, "BSave_") || !strings.HasSuffix(trig.Filename, ".mp4") {
		t.Fatalf("Filename=%q", trig.Filename)
	}
	if trig.SourceURL != watchURL || trig.Title != "Cat video" {
		t.Fatalf("trigger=%+v", trig)
	}

	if state, _, _ := s.Snapshot(); state != StatePreviewShown {
		t.Fatalf("state=%s, want preview kept", state)
	}

	n.mu.Lock()
	last := n.events[len(n.events)-1]
	n.mu.Unlock()
	if last.Notice == "" {
		t.Fatal("download did not publish a notice event")
	}
}

func TestErrorAutoDismiss(t *testing.T) {
	ext := &fakeExtractor{}
	n := &recordingNotifier{}
	s := NewSession("t", ext, n, SessionConfig{ErrorDismiss: 20 * time.Millisecond})

	_, _ = s.Submit(context.Background(), "bogus")
	if state, _, _ := s.Snapshot(); state != StateErrorShown {
		t.Fatalf("state=%s", state)
	}

	deadline := time.Now().Add(time.Second)
	for {
		state, _, msg := s.Snapshot()
		if state == StateIdle && msg == "" {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("error was not auto-dismissed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestErrorDismissCancelledBySupersedingTransition(t *testing.T) {
	ext := &fakeExtractor{resp: models.ExtractResponse{Success: true, VideoURL: "https://cdn/x.mp4"}}
	s := NewSession("t", ext, &recordingNotifier{}, SessionConfig{ErrorDismiss: 30 * time.Millisecond})

	_, _ = s.Submit(context.Background(), "bogus")
	if _, err := s.Submit(context.Background(), watchURL); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	time.Sleep(60 * time.Millisecond)
	state, cur, _ := s.Snapshot()
	if state != StatePreviewShown || cur == nil {
		t.Fatalf("stale dismiss clobbered preview: state=%s", state)
	}
}

func TestSessionManager_GetAndDrop(t *testing.T) {
	m := NewSessionManager(&fakeExtractor{}, nil, SessionConfig{ErrorDismiss: -1})

	a := m.Get("room-a")
	if a == nil {
		t.Fatal("nil session")
	}
	if m.Get("room-a") != a {
		t.Fatal("second Get returned a different session")
	}
	if m.Get("room-b") == a {
		t.Fatal("rooms share a session")
	}
	if m.Get("") != m.Get("default") {
		t.Fatal("empty room is not the default room")
	}

	m.Drop("room-a")
	if m.Get("room-a") == a {
		t.Fatal("dropped session was handed out again")
	}
}
