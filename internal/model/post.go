package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Published    bool      `json:"published"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeThumbnailURL maps an empty or whitespace-only URL to nil so that
// "no thumbnail" has a single representation in storage.
func NormalizeThumbnailURL(url *string) *string {
	if url == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*url)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
