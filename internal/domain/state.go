package domain

// SessionState is the UI-visible state of a session.
type SessionState string

const (
	// StateIdle means no fetch has happened or state was cleared.
	StateIdle SessionState = "idle"

	// StateLoading means a resolve is in flight.
	StateLoading SessionState = "loading"

	// StatePreviewShown means a result is held and presented.
	StatePreviewShown SessionState = "preview"

	// StateErrorShown means an error message is presented.
	StateErrorShown SessionState = "error"
)

// String returns the string representation of SessionState.
func (s SessionState) String() string {
	return string(s)
}

// HasResult reports whether this state can hold a current video result.
func (s SessionState) HasResult() bool {
	return s == StatePreviewShown
}
