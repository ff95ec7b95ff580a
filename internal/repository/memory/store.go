// Package memory keeps posts and feedback entries in process memory. It backs
// the "memory" storage mode and the service tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/google/uuid"
)

type state struct {
	mu       sync.RWMutex
	now      func() time.Time
	posts    map[uuid.UUID]*model.Post
	feedback map[uuid.UUID][]*model.FeedbackEntry // post id -> entries in insertion order
}

type MemoryRepository struct {
	Post     repository.Post
	Feedback repository.Feedback
}

func New() *MemoryRepository {
	s := &state{
		now:      func() time.Time { return time.Now().UTC() },
		posts:    make(map[uuid.UUID]*model.Post),
		feedback: make(map[uuid.UUID][]*model.FeedbackEntry),
	}

	return &MemoryRepository{
		Post:     &postRepo{s: s},
		Feedback: &feedbackRepo{s: s},
	}
}

type postRepo struct {
	s *state
}

func copyPost(p *model.Post) *model.Post {
	c := *p
	if p.ThumbnailURL != nil {
		url := *p.ThumbnailURL
		c.ThumbnailURL = &url
	}
	return &c
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	post.ID = uuid.New()
	post.CreatedAt = now
	post.UpdatedAt = now
	r.s.posts[post.ID] = copyPost(&post)

	return copyPost(&post), nil
}

func (r *postRepo) Update(ctx context.Context, post model.Post) (*model.Post, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.posts[post.ID]
	if !ok || existing.UserID != post.UserID {
		return nil, repository.ErrNotFound
	}

	existing.Title = post.Title
	existing.Content = post.Content
	existing.ThumbnailURL = post.ThumbnailURL
	existing.Published = post.Published
	existing.UpdatedAt = r.s.now()

	return copyPost(existing), nil
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.posts[id]
	if !ok || existing.UserID != userID {
		return repository.ErrNotFound
	}

	delete(r.s.posts, id)
	delete(r.s.feedback, id)
	return nil
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return copyPost(post), nil
}

func (r *postRepo) FindOwnerPost(ctx context.Context, id uuid.UUID, userID string) (*model.Post, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	post, ok := r.s.posts[id]
	if !ok || post.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return copyPost(post), nil
}

func (r *postRepo) FindPublished(ctx context.Context) ([]*model.Post, error) {
	posts := r.filter(func(p *model.Post) bool { return p.Published })
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (r *postRepo) FindByUser(ctx context.Context, userID string) ([]*model.Post, error) {
	posts := r.filter(func(p *model.Post) bool { return p.UserID == userID })
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].UpdatedAt.After(posts[j].UpdatedAt)
	})
	return posts, nil
}

func (r *postRepo) filter(keep func(p *model.Post) bool) []*model.Post {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	posts := []*model.Post{}
	for _, p := range r.s.posts {
		if keep(p) {
			posts = append(posts, copyPost(p))
		}
	}
	// map order is random; ties on timestamps fall back to id
	sort.Slice(posts, func(i, j int) bool {
		return strings.Compare(posts[i].ID.String(), posts[j].ID.String()) < 0
	})
	return posts
}

type feedbackRepo struct {
	s *state
}

func (r *feedbackRepo) LatestSequence(ctx context.Context, postID uuid.UUID) (*int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var latest *int
	for _, e := range r.s.feedback[postID] {
		if latest == nil || e.Sequence > *latest {
			seq := e.Sequence
			latest = &seq
		}
	}
	return latest, nil
}

func (r *feedbackRepo) Create(ctx context.Context, entry model.FeedbackEntry) (*model.FeedbackEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.posts[entry.PostID]; !ok {
		return nil, repository.ErrNotFound
	}

	for _, e := range r.s.feedback[entry.PostID] {
		if e.Sequence == entry.Sequence {
			return nil, repository.ErrSequenceTaken
		}
	}

	entry.ID = uuid.New()
	entry.CreatedAt = r.s.now()
	stored := entry
	r.s.feedback[entry.PostID] = append(r.s.feedback[entry.PostID], &stored)

	return &entry, nil
}

func (r *feedbackRepo) FindByPost(ctx context.Context, postID uuid.UUID, userID string) ([]*model.FeedbackEntry, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	entries := []*model.FeedbackEntry{}
	post, ok := r.s.posts[postID]
	if !ok || post.UserID != userID {
		return entries, nil
	}

	for _, e := range r.s.feedback[postID] {
		c := *e
		entries = append(entries, &c)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Sequence < entries[j].Sequence
	})
	return entries, nil
}
