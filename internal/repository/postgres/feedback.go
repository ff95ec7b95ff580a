package postgres

import (
	"context"

	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type feedbackRepo struct {
	db *pgxpool.Pool
}

func newFeedbackRepo(db *pgxpool.Pool) repository.Feedback {
	return &feedbackRepo{
		db: db,
	}
}

func (r *feedbackRepo) LatestSequence(ctx context.Context, postID uuid.UUID) (*int, error) {
	var latest *int
	if err := r.db.QueryRow(
		ctx,
		"SELECT MAX(sequence) FROM feedback_history WHERE post_id = $1",
		postID,
	).Scan(&latest); err != nil {
		return nil, mapErr(err)
	}

	return latest, nil
}

func (r *feedbackRepo) Create(ctx context.Context, entry model.FeedbackEntry) (*model.FeedbackEntry, error) {
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO feedback_history(post_id, user_message, ai_feedback, draft_content, sequence)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		entry.PostID,
		entry.UserMessage,
		entry.AIFeedback,
		entry.DraftContent,
		entry.Sequence,
	).Scan(&entry.ID, &entry.CreatedAt); err != nil {
		return nil, mapErr(err)
	}

	return &entry, nil
}

func (r *feedbackRepo) FindByPost(ctx context.Context, postID uuid.UUID, userID string) ([]*model.FeedbackEntry, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT
		f.id, f.post_id, f.user_message, f.ai_feedback, f.draft_content, f.sequence, f.created_at
		FROM feedback_history f
		JOIN posts p ON p.id = f.post_id
		WHERE f.post_id = $1 AND p.user_id = $2
		ORDER BY f.sequence ASC`,
		postID,
		userID,
	)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	entries := []*model.FeedbackEntry{}
	for rows.Next() {
		var entry model.FeedbackEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.PostID,
			&entry.UserMessage,
			&entry.AIFeedback,
			&entry.DraftContent,
			&entry.Sequence,
			&entry.CreatedAt,
		); err != nil {
			return nil, mapErr(err)
		}

		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}

	return entries, nil
}
