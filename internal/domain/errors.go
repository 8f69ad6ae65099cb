package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates an empty or malformed video URL. Never
	// reaches the network layer.
	ErrValidation = errors.New("invalid video url")
	// ErrConnectivity indicates the transport layer itself failed.
	ErrConnectivity = errors.New("network unreachable")
	// ErrService indicates a generic extraction failure not otherwise
	// classified.
	ErrService = errors.New("extraction service unavailable")
	// ErrNoData indicates a download attempt with no current result.
	ErrNoData = errors.New("no video data")
	// ErrPreviewRender indicates extraction succeeded but the payload
	// could not be presented.
	ErrPreviewRender = errors.New("preview unavailable")
)

// HTTPStatusError reports a non-2xx response from the extraction API.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("extraction api http %d", e.StatusCode)
}

// ExtractFailedError carries the failure message the extraction API
// returned with success=false.
type ExtractFailedError struct {
	Message string
}

func (e *ExtractFailedError) Error() string {
	if e.Message == "" {
		return "extraction failed"
	}
	return "extraction failed: " + e.Message
}

// UserMessage converts any session error into the single user-facing text
// shown by the front end.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "Please enter a valid Facebook video URL"
	case errors.Is(err, ErrNoData):
		return "No video data. Please fetch a video first."
	case errors.Is(err, ErrConnectivity):
		return "Network error. Please check your internet connection and try again."
	case errors.Is(err, ErrPreviewRender):
		return "Video found, but the preview could not be displayed."
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		return fmt.Sprintf("Server error (%d). Please try again later.", statusErr.StatusCode)
	}

	var failedErr *ExtractFailedError
	if errors.As(err, &failedErr) {
		if failedErr.Message != "" {
			return failedErr.Message
		}
		return "Could not fetch this video. Please check the URL and try again."
	}

	return "Service unavailable. Please try again later."
}
