package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/BloggingApp/diary-service/internal/cdn"
	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/BloggingApp/diary-service/internal/llm"
	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Post interface {
	Create(ctx context.Context, actor *model.Identity, dto dto.CreatePostRequest) (*model.Post, error)
	Update(ctx context.Context, actor *model.Identity, id uuid.UUID, dto dto.UpdatePostRequest) (*model.Post, error)
	Delete(ctx context.Context, actor *model.Identity, id uuid.UUID) error
	ListPublished(ctx context.Context) ([]*model.Post, error)
	// Get returns a published post to anyone and an unpublished one only to
	// its owner. Everyone else gets ErrNotFound.
	Get(ctx context.Context, actor *model.Identity, id uuid.UUID) (*model.Post, error)
	ListMine(ctx context.Context, actor *model.Identity) ([]*model.Post, error)
}

type Feedback interface {
	Request(ctx context.Context, actor *model.Identity, dto dto.RequestFeedbackRequest) (*model.FeedbackEntry, error)
	History(ctx context.Context, actor *model.Identity, postID uuid.UUID) ([]*model.FeedbackEntry, error)
}

type Image interface {
	Upload(ctx context.Context, actor *model.Identity, fileHeader *multipart.FileHeader) (string, error)
}

type Site interface {
	Sitemap(ctx context.Context) ([]dto.SitemapURL, error)
	LLMsTxt() string
}

type Options struct {
	OwnerUserID string
	SiteURL     string
	ImageBucket string
	CacheTTL    time.Duration
}

type Service struct {
	Post
	Feedback
	Image
	Site
}

func New(logger *zap.Logger, repo *repository.Repository, lm llm.Model, uploader cdn.Uploader, opts Options) *Service {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = time.Hour
	}

	posts := newPostService(logger, repo, opts.OwnerUserID, opts.CacheTTL)

	return &Service{
		Post:     posts,
		Feedback: newFeedbackService(logger, repo, lm, opts.OwnerUserID),
		Image:    newImageService(logger, uploader, opts.OwnerUserID, opts.ImageBucket),
		Site:     newSiteService(posts, opts.SiteURL),
	}
}
