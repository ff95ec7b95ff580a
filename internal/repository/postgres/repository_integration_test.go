//go:build integration

package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: POSTGRES_TEST_DSN=postgres://... go test -tags integration ./internal/repository/postgres
func newTestRepository(t *testing.T) *PostgresRepository {
	t.Helper()

	dsn := os.Getenv("POSTGRES_TEST_DSN")
	if dsn == "" {
		t.Skip("POSTGRES_TEST_DSN is not set")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, Migrate(ctx, db))

	return New(db)
}

func createTestPost(t *testing.T, repo *PostgresRepository, userID string, published bool) *model.Post {
	t.Helper()

	post, err := repo.Post.Create(context.Background(), model.Post{
		UserID:    userID,
		Title:     "title",
		Content:   "content",
		Published: published,
	})
	require.NoError(t, err)
	return post
}

func TestFeedback_SequenceAndHistory(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	userID := uuid.NewString()
	post := createTestPost(t, repo, userID, false)

	latest, err := repo.Feedback.LatestSequence(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	draft := "draft"
	for _, seq := range []int{2, 1} {
		_, err := repo.Feedback.Create(ctx, model.FeedbackEntry{
			PostID:       post.ID,
			UserMessage:  "msg",
			AIFeedback:   "feedback",
			DraftContent: &draft,
			Sequence:     seq,
		})
		require.NoError(t, err)
	}

	_, err = repo.Feedback.Create(ctx, model.FeedbackEntry{PostID: post.ID, AIFeedback: "again", Sequence: 2})
	assert.ErrorIs(t, err, repository.ErrSequenceTaken)

	latest, err = repo.Feedback.LatestSequence(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, 2, *latest)

	entries, err := repo.Feedback.FindByPost(ctx, post.ID, userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 1, entries[0].Sequence)
	assert.Equal(t, 2, entries[1].Sequence)
	require.NotNil(t, entries[0].DraftContent)
	assert.Equal(t, draft, *entries[0].DraftContent)

	entries, err = repo.Feedback.FindByPost(ctx, post.ID, uuid.NewString())
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = repo.Feedback.Create(ctx, model.FeedbackEntry{PostID: uuid.New(), AIFeedback: "orphan", Sequence: 1})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPost_DeleteCascadesAndScopes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	userID := uuid.NewString()
	post := createTestPost(t, repo, userID, true)

	_, err := repo.Feedback.Create(ctx, model.FeedbackEntry{PostID: post.ID, AIFeedback: "feedback", Sequence: 1})
	require.NoError(t, err)

	err = repo.Post.Delete(ctx, post.ID, uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.Post.Delete(ctx, post.ID, userID))

	err = repo.Post.Delete(ctx, post.ID, userID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Post.FindByID(ctx, post.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	latest, err := repo.Feedback.LatestSequence(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, latest)

	entries, err := repo.Feedback.FindByPost(ctx, post.ID, userID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPost_UpdateAndQueries(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	userID := uuid.NewString()
	draft := createTestPost(t, repo, userID, false)
	createTestPost(t, repo, userID, true)

	thumbnail := "https://cdn.example.com/a.png"
	updated, err := repo.Post.Update(ctx, model.Post{
		ID:           draft.ID,
		UserID:       userID,
		Title:        "edited",
		Content:      "edited content",
		ThumbnailURL: &thumbnail,
		Published:    true,
	})
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Title)
	assert.True(t, updated.Published)
	require.NotNil(t, updated.ThumbnailURL)
	assert.False(t, updated.UpdatedAt.Before(draft.UpdatedAt))

	_, err = repo.Post.Update(ctx, model.Post{ID: draft.ID, UserID: uuid.NewString(), Title: "x", Content: "y"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Post.FindOwnerPost(ctx, draft.ID, uuid.NewString())
	assert.ErrorIs(t, err, repository.ErrNotFound)

	mine, err := repo.Post.FindByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, draft.ID, mine[0].ID)

	published, err := repo.Post.FindPublished(ctx)
	require.NoError(t, err)
	found := 0
	for _, p := range published {
		assert.True(t, p.Published)
		if p.UserID == userID {
			found++
		}
	}
	assert.Equal(t, 2, found)
}
