package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/BloggingApp/diary-service/internal/feedback"
	"github.com/BloggingApp/diary-service/internal/llm"
	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxSequenceAttempts bounds how often an insert is retried after another
// request took the same sequence number.
const maxSequenceAttempts = 3

type feedbackService struct {
	logger  *zap.Logger
	repo    *repository.Repository
	model   llm.Model
	ownerID string
}

func newFeedbackService(logger *zap.Logger, repo *repository.Repository, lm llm.Model, ownerID string) *feedbackService {
	return &feedbackService{
		logger:  logger,
		repo:    repo,
		model:   lm,
		ownerID: ownerID,
	}
}

// ParseFeedbackRequest checks the request fields and returns the post id and
// the trimmed draft.
func ParseFeedbackRequest(dto dto.RequestFeedbackRequest) (uuid.UUID, string, error) {
	postIDString := strings.TrimSpace(dto.PostID)
	if postIDString == "" {
		return uuid.Nil, "", validationError("post_id is required")
	}
	postID, err := uuid.Parse(postIDString)
	if err != nil {
		return uuid.Nil, "", validationError("invalid post_id")
	}

	content := strings.TrimSpace(dto.Content)
	if content == "" {
		return uuid.Nil, "", validationError("content is empty")
	}

	return postID, content, nil
}

func (s *feedbackService) Request(ctx context.Context, actor *model.Identity, dto dto.RequestFeedbackRequest) (*model.FeedbackEntry, error) {
	if err := auth.RequireOwner(s.ownerID, actor); err != nil {
		return nil, err
	}

	postID, content, err := ParseFeedbackRequest(dto)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Post.FindOwnerPost(ctx, postID, actor.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", postID.String(), err.Error())
		return nil, persistenceError(err)
	}

	latest, err := s.repo.Feedback.LatestSequence(ctx, postID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to get latest feedback sequence of post(%s): %s", postID.String(), err.Error())
		return nil, persistenceError(err)
	}

	draft := feedback.Draft{
		PostID:      postID,
		Content:     content,
		UserMessage: dto.UserMessage,
	}

	response, err := s.model.Generate(ctx, feedback.BuildPrompt(draft.Content, draft.UserMessage))
	if err != nil {
		s.logger.Sugar().Errorf("failed to generate feedback for post(%s): %s", postID.String(), err.Error())
		return nil, fmt.Errorf("%w: %s", ErrModelFailed, err.Error())
	}

	entry, err := feedback.NewEntry(draft, latest, response)
	if err != nil {
		if errors.Is(err, feedback.ErrEmptyResponse) {
			return nil, ErrModelEmptyResponse
		}
		return nil, err
	}

	return s.store(ctx, *entry)
}

// store inserts the entry, taking the next free sequence when a concurrent
// request got there first. The model answer is reused, never regenerated.
func (s *feedbackService) store(ctx context.Context, entry model.FeedbackEntry) (*model.FeedbackEntry, error) {
	var err error
	for attempt := 1; attempt <= maxSequenceAttempts; attempt++ {
		var created *model.FeedbackEntry
		created, err = s.repo.Feedback.Create(ctx, entry)
		if err == nil {
			return created, nil
		}

		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		if !errors.Is(err, repository.ErrSequenceTaken) {
			break
		}

		s.logger.Sugar().Warnf("feedback sequence(%d) of post(%s) already taken, attempt %d", entry.Sequence, entry.PostID.String(), attempt)

		latest, latestErr := s.repo.Feedback.LatestSequence(ctx, entry.PostID)
		if latestErr != nil {
			err = latestErr
			break
		}
		entry.Sequence = feedback.NextSequence(latest)
	}

	s.logger.Sugar().Errorf("failed to create feedback for post(%s): %s", entry.PostID.String(), err.Error())
	return nil, persistenceError(err)
}

func (s *feedbackService) History(ctx context.Context, actor *model.Identity, postID uuid.UUID) ([]*model.FeedbackEntry, error) {
	if err := auth.RequireOwner(s.ownerID, actor); err != nil {
		return nil, err
	}

	entries, err := s.repo.Feedback.FindByPost(ctx, postID, actor.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find feedback history of post(%s): %s", postID.String(), err.Error())
		return nil, persistenceError(err)
	}

	return entries, nil
}
