package memory

import (
	"context"
	"testing"
	"time"

	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const owner = "owner-1"

// newTestRepo creates a repository with a deterministic clock and one post.
func newTestRepo(t *testing.T) (*MemoryRepository, *model.Post) {
	repo := New()

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.Post.(*postRepo).s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	post, err := repo.Post.Create(context.Background(), model.Post{
		UserID:  owner,
		Title:   "今日の日記",
		Content: "今日は天気が良かった。",
	})
	require.NoError(t, err)
	return repo, post
}

func TestPost_CreateAndFind(t *testing.T) {
	repo, post := newTestRepo(t)
	ctx := context.Background()

	assert.NotEqual(t, uuid.Nil, post.ID)
	assert.False(t, post.CreatedAt.IsZero())
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)

	found, err := repo.Post.FindByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, post.Title, found.Title)

	_, err = repo.Post.FindOwnerPost(ctx, post.ID, "someone-else")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Post.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPost_UpdateScopedByOwner(t *testing.T) {
	repo, post := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Post.Update(ctx, model.Post{ID: post.ID, UserID: "someone-else", Title: "x", Content: "y"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	url := "https://cdn.example.com/a.png"
	updated, err := repo.Post.Update(ctx, model.Post{ID: post.ID, UserID: owner, Title: "新", Content: "本文", ThumbnailURL: &url, Published: true})
	require.NoError(t, err)
	assert.Equal(t, "新", updated.Title)
	assert.True(t, updated.Published)
	assert.Equal(t, post.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(post.UpdatedAt))
}

func TestPost_Listings(t *testing.T) {
	repo, first := newTestRepo(t)
	ctx := context.Background()

	second, err := repo.Post.Create(ctx, model.Post{UserID: owner, Title: "二", Content: "二", Published: true})
	require.NoError(t, err)
	third, err := repo.Post.Create(ctx, model.Post{UserID: owner, Title: "三", Content: "三", Published: true})
	require.NoError(t, err)

	published, err := repo.Post.FindPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, third.ID, published[0].ID)
	assert.Equal(t, second.ID, published[1].ID)

	_, err = repo.Post.Update(ctx, model.Post{ID: first.ID, UserID: owner, Title: "一", Content: "一"})
	require.NoError(t, err)

	mine, err := repo.Post.FindByUser(ctx, owner)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, first.ID, mine[0].ID)
}

func TestFeedback_SequenceAndIsolation(t *testing.T) {
	repo, post := newTestRepo(t)
	ctx := context.Background()

	other, err := repo.Post.Create(ctx, model.Post{UserID: owner, Title: "別", Content: "別"})
	require.NoError(t, err)

	latest, err := repo.Feedback.LatestSequence(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	for _, seq := range []int{1, 2, 5} {
		_, err := repo.Feedback.Create(ctx, model.FeedbackEntry{PostID: post.ID, AIFeedback: "fb", Sequence: seq})
		require.NoError(t, err)
	}
	_, err = repo.Feedback.Create(ctx, model.FeedbackEntry{PostID: other.ID, AIFeedback: "other", Sequence: 1})
	require.NoError(t, err)

	_, err = repo.Feedback.Create(ctx, model.FeedbackEntry{PostID: post.ID, AIFeedback: "dup", Sequence: 2})
	assert.ErrorIs(t, err, repository.ErrSequenceTaken)

	latest, err = repo.Feedback.LatestSequence(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 5, *latest)

	history, err := repo.Feedback.FindByPost(ctx, post.ID, owner)
	require.NoError(t, err)
	require.Len(t, history, 3)
	for _, e := range history {
		assert.Equal(t, post.ID, e.PostID)
	}

	history, err = repo.Feedback.FindByPost(ctx, post.ID, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestPost_DeleteCascades(t *testing.T) {
	repo, post := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Feedback.Create(ctx, model.FeedbackEntry{PostID: post.ID, AIFeedback: "fb", Sequence: 1})
	require.NoError(t, err)

	assert.ErrorIs(t, repo.Post.Delete(ctx, post.ID, "someone-else"), repository.ErrNotFound)
	require.NoError(t, repo.Post.Delete(ctx, post.ID, owner))
	assert.ErrorIs(t, repo.Post.Delete(ctx, post.ID, owner), repository.ErrNotFound)

	history, err := repo.Feedback.FindByPost(ctx, post.ID, owner)
	require.NoError(t, err)
	assert.Empty(t, history)

	_, err = repo.Feedback.Create(ctx, model.FeedbackEntry{PostID: post.ID, AIFeedback: "fb", Sequence: 2})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
