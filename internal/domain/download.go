package domain

import (
	"fmt"
	"time"
)

const (
	downloadPrefix = "BSave_"
	downloadExt    = ".mp4"
)

// DownloadTrigger is everything the front end needs to start the actual
// browser download in a new context. Fire-and-forget: no completion signal
// exists.
type DownloadTrigger struct {
	SourceURL string `json:"-"`
	Title     string `json:"-"`
	MediaURL  string `json:"media_url"`
	Filename  string `json:"filename"`
}

// DownloadFilename generates the suggested filename for a download started
// at the given moment.
func DownloadFilename(now time.Time) string {
	return fmt.Sprintf("%s%d%s", downloadPrefix, now.UnixMilli(), downloadExt)
}
