package models

import "time"

type DownloadRecord struct {
	ID        int       `json:"id" db:"id"`
	SourceURL string    `json:"source_url" db:"source_url"`
	MediaURL  string    `json:"media_url" db:"media_url"`
	Title     string    `json:"title" db:"title"`
	Filename  string    `json:"filename" db:"filename"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
