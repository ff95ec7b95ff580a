package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BloggingApp/diary-service/internal/auth"
	"github.com/BloggingApp/diary-service/internal/dto"
	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/BloggingApp/diary-service/internal/repository/redisrepo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type postService struct {
	logger   *zap.Logger
	repo     *repository.Repository
	ownerID  string
	cacheTTL time.Duration
}

func newPostService(logger *zap.Logger, repo *repository.Repository, ownerID string, cacheTTL time.Duration) *postService {
	return &postService{
		logger:   logger,
		repo:     repo,
		ownerID:  ownerID,
		cacheTTL: cacheTTL,
	}
}

func validatePost(title string, content string) (string, string, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return "", "", validationError("title and content are required")
	}
	return title, content, nil
}

func (s *postService) Create(ctx context.Context, actor *model.Identity, dto dto.CreatePostRequest) (*model.Post, error) {
	if err := auth.RequireOwner(s.ownerID, actor); err != nil {
		return nil, err
	}

	title, content, err := validatePost(dto.Title, dto.Content)
	if err != nil {
		return nil, err
	}

	createdPost, err := s.repo.Post.Create(ctx, model.Post{
		UserID:       actor.ID,
		Title:        title,
		Content:      content,
		ThumbnailURL: model.NormalizeThumbnailURL(dto.ThumbnailURL),
		Published:    dto.Published,
	})
	if err != nil {
		s.logger.Sugar().Errorf("failed to create user(%s) post: %s", actor.ID, err.Error())
		return nil, persistenceError(err)
	}

	s.invalidate(ctx, createdPost.ID)

	return createdPost, nil
}

func (s *postService) Update(ctx context.Context, actor *model.Identity, id uuid.UUID, dto dto.UpdatePostRequest) (*model.Post, error) {
	if err := auth.RequireOwner(s.ownerID, actor); err != nil {
		return nil, err
	}

	title, content, err := validatePost(dto.Title, dto.Content)
	if err != nil {
		return nil, err
	}

	updatedPost, err := s.repo.Post.Update(ctx, model.Post{
		ID:           id,
		UserID:       actor.ID,
		Title:        title,
		Content:      content,
		ThumbnailURL: model.NormalizeThumbnailURL(dto.ThumbnailURL),
		Published:    dto.Published,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to update post(%s): %s", id.String(), err.Error())
		return nil, persistenceError(err)
	}

	s.invalidate(ctx, id)

	return updatedPost, nil
}

func (s *postService) Delete(ctx context.Context, actor *model.Identity, id uuid.UUID) error {
	if err := auth.RequireOwner(s.ownerID, actor); err != nil {
		return err
	}

	if err := s.repo.Post.Delete(ctx, id, actor.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to delete post(%s): %s", id.String(), err.Error())
		return persistenceError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *postService) ListPublished(ctx context.Context) ([]*model.Post, error) {
	// The version is read before the store so a concurrent mutation retires this key.
	version, cached := s.cacheVersion(ctx)
	key := redisrepo.PublishedPostsKey(version)

	if cached {
		cachedPosts, err := redisrepo.GetMany[model.Post](s.repo.Redis.Default, ctx, key)
		if err == nil {
			return cachedPosts, nil
		}
		if err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get published posts from redis: %s", err.Error())
		}
	}

	posts, err := s.repo.Post.FindPublished(ctx)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find published posts: %s", err.Error())
		return nil, persistenceError(err)
	}

	if cached {
		s.setCache(ctx, key, posts)
	}

	return posts, nil
}

func (s *postService) Get(ctx context.Context, actor *model.Identity, id uuid.UUID) (*model.Post, error) {
	version, cached := s.cacheVersion(ctx)
	key := redisrepo.PublishedPostKey(version, id.String())

	if cached {
		cachedPost, err := redisrepo.Get[model.Post](s.repo.Redis.Default, ctx, key)
		if err == nil && cachedPost != nil && cachedPost.Published {
			return cachedPost, nil
		}
		if err != nil && err != redis.Nil {
			s.logger.Sugar().Errorf("failed to get post(%s) from redis: %s", id.String(), err.Error())
		}
	}

	post, err := s.repo.Post.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Sugar().Errorf("failed to find post(%s): %s", id.String(), err.Error())
		return nil, persistenceError(err)
	}

	if !post.Published {
		if auth.RequireOwner(s.ownerID, actor) != nil || post.UserID != actor.ID {
			return nil, ErrNotFound
		}
		return post, nil
	}

	if cached {
		s.setCache(ctx, key, post)
	}

	return post, nil
}

func (s *postService) ListMine(ctx context.Context, actor *model.Identity) ([]*model.Post, error) {
	if err := auth.RequireOwner(s.ownerID, actor); err != nil {
		return nil, err
	}

	posts, err := s.repo.Post.FindByUser(ctx, actor.ID)
	if err != nil {
		s.logger.Sugar().Errorf("failed to find user(%s) posts: %s", actor.ID, err.Error())
		return nil, persistenceError(err)
	}

	return posts, nil
}

// cacheVersion reports the current post cache version. The cache is skipped
// when redis is absent or the version cannot be read.
func (s *postService) cacheVersion(ctx context.Context) (int64, bool) {
	if s.repo.Redis == nil {
		return 0, false
	}

	version, err := redisrepo.Version(s.repo.Redis.Default, ctx, redisrepo.PostsVersionKey())
	if err != nil {
		s.logger.Sugar().Errorf("failed to get posts cache version from redis: %s", err.Error())
		return 0, false
	}

	return version, true
}

func (s *postService) setCache(ctx context.Context, key string, value interface{}) {
	if err := s.repo.Redis.Default.SetJSON(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Sugar().Errorf("failed to set %s in redis: %s", key, err.Error())
	}
}

// invalidate retires every cached post by bumping the version. When the bump
// fails the keys of the current version are deleted instead.
func (s *postService) invalidate(ctx context.Context, postID uuid.UUID) {
	if s.repo.Redis == nil {
		return
	}

	err := s.repo.Redis.Default.Incr(ctx, redisrepo.PostsVersionKey()).Err()
	if err == nil {
		return
	}
	s.logger.Sugar().Errorf("failed to bump posts cache version in redis: %s", err.Error())

	version, err := redisrepo.Version(s.repo.Redis.Default, ctx, redisrepo.PostsVersionKey())
	if err != nil {
		s.logger.Sugar().Errorf("failed to get posts cache version from redis: %s", err.Error())
		return
	}

	if err := s.repo.Redis.Default.Del(ctx, redisrepo.PublishedPostsKey(version), redisrepo.PublishedPostKey(version, postID.String())).Err(); err != nil {
		s.logger.Sugar().Errorf("failed to delete post(%s) cache from redis: %s", postID.String(), err.Error())
	}
}
