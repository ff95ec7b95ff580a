package feedback

import (
	"errors"
	"strings"

	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/google/uuid"
)

var ErrEmptyResponse = errors.New("language model returned an empty response")

// Draft is what the writer submitted for review.
type Draft struct {
	PostID      uuid.UUID
	Content     string
	UserMessage string
}

// NextSequence returns the ordinal for the next entry of a post given the
// highest existing one, or nil when the post has no entries yet.
func NextSequence(latest *int) int {
	if latest == nil {
		return 1
	}
	return *latest + 1
}

// NewEntry builds the record to persist for one answered feedback request.
// ID and CreatedAt are left for the store to assign.
func NewEntry(draft Draft, latest *int, response string) (*model.FeedbackEntry, error) {
	aiFeedback := strings.TrimSpace(response)
	if aiFeedback == "" {
		return nil, ErrEmptyResponse
	}

	content := draft.Content

	return &model.FeedbackEntry{
		PostID:       draft.PostID,
		UserMessage:  ResolveUserMessage(draft.UserMessage),
		AIFeedback:   aiFeedback,
		DraftContent: &content,
		Sequence:     NextSequence(latest),
	}, nil
}
