package domain

import (
	"regexp"
	"strings"
)

// Accepted Facebook video URL shapes. Matching is case-insensitive, the
// "www." prefix is optional and trailing content is unanchored.
var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^https?://(www\.)?facebook\.com/.+/videos/`),
	regexp.MustCompile(`(?i)^https?://(www\.)?facebook\.com/watch/?\?v=\d+`),
	regexp.MustCompile(`(?i)^https?://(www\.)?facebook\.com/.+/posts/`),
	regexp.MustCompile(`(?i)^https?://fb\.watch/`),
	regexp.MustCompile(`(?i)^https?://(www\.)?facebook\.com/reel/\d+`),
}

// IsVideoURL reports whether s looks like a Facebook video link. Empty or
// whitespace-only input is the caller's job to reject before calling.
func IsVideoURL(s string) bool {
	s = strings.TrimSpace(s)
	for _, p := range videoURLPatterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}
