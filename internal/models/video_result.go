package models

import "strings"

// ExtractResponse is the wire shape returned by the extraction API.
// The media link may arrive under any of three field names depending on
// which upstream extractor handled the request.
type ExtractResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message,omitempty"`
	Title       string `json:"title,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	URL         string `json:"url,omitempty"`
	DownloadURL string `json:"download_url,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Duration    string `json:"duration,omitempty"`
	Quality     string `json:"quality,omitempty"`
}

// MediaLink returns the first non-empty media URL field.
func (r ExtractResponse) MediaLink() string {
	for _, u := range []string{r.VideoURL, r.URL, r.DownloadURL} {
		if strings.TrimSpace(u) != "" {
			return u
		}
	}
	return ""
}

const (
	DefaultTitle    = "Facebook Video"
	DefaultDuration = "--:--"
	DefaultQuality  = "HD"
)

// VideoResult is the decoded success payload, held as the current
// downloadable item of a session.
type VideoResult struct {
	Title        string `json:"title"`
	MediaURL     string `json:"media_url"`
	ThumbnailURL string `json:"thumbnail,omitempty"`
	Duration     string `json:"duration"`
	Quality      string `json:"quality"`
}

// ResultFrom converts a successful extraction response, filling defaults
// for absent fields.
func ResultFrom(r ExtractResponse) VideoResult {
	v := VideoResult{
		Title:        strings.TrimSpace(r.Title),
		MediaURL:     r.MediaLink(),
		ThumbnailURL: r.Thumbnail,
		Duration:     strings.TrimSpace(r.Duration),
		Quality:      strings.TrimSpace(r.Quality),
	}
	if v.Title == "" {
		v.Title = DefaultTitle
	}
	if v.Duration == "" {
		v.Duration = DefaultDuration
	}
	if v.Quality == "" {
		v.Quality = DefaultQuality
	}
	return v
}

// HasMedia reports whether the result can be downloaded.
func (v VideoResult) HasMedia() bool {
	return strings.TrimSpace(v.MediaURL) != ""
}
