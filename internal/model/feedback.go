package model

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackEntry is one stored round of writing feedback for a post.
// Entries are immutable once created.
type FeedbackEntry struct {
	ID           uuid.UUID `json:"id"`
	PostID       uuid.UUID `json:"post_id"`
	UserMessage  string    `json:"user_message"`
	AIFeedback   string    `json:"ai_feedback"`
	DraftContent *string   `json:"draft_content"`
	Sequence     int       `json:"sequence"`
	CreatedAt    time.Time `json:"created_at"`
}
