package repository

import (
	"context"

	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository/redisrepo"
	"github.com/google/uuid"
)

type Post interface {
	Create(ctx context.Context, post model.Post) (*model.Post, error)
	// Update replaces title, content, thumbnail and published of the post
	// owned by post.UserID. Returns ErrNotFound when no such post exists.
	Update(ctx context.Context, post model.Post) (*model.Post, error)
	// Delete removes the post and all of its feedback entries.
	Delete(ctx context.Context, id uuid.UUID, userID string) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	FindOwnerPost(ctx context.Context, id uuid.UUID, userID string) (*model.Post, error)
	FindPublished(ctx context.Context) ([]*model.Post, error)
	FindByUser(ctx context.Context, userID string) ([]*model.Post, error)
}

type Feedback interface {
	// LatestSequence returns the highest sequence stored for the post, or nil
	// when it has none.
	LatestSequence(ctx context.Context, postID uuid.UUID) (*int, error)
	// Create returns ErrSequenceTaken when the (post, sequence) pair already exists.
	Create(ctx context.Context, entry model.FeedbackEntry) (*model.FeedbackEntry, error)
	FindByPost(ctx context.Context, postID uuid.UUID, userID string) ([]*model.FeedbackEntry, error)
}

type Repository struct {
	Post     Post
	Feedback Feedback
	Redis    *redisrepo.RedisRepository
}

func New(post Post, feedback Feedback, redis *redisrepo.RedisRepository) *Repository {
	return &Repository{
		Post:     post,
		Feedback: feedback,
		Redis:    redis,
	}
}
