package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

const feedbackSequenceConstraint = "feedback_history_post_sequence_key"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS posts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id TEXT NOT NULL,
		title TEXT NOT NULL CHECK (btrim(title) <> ''),
		content TEXT NOT NULL CHECK (btrim(content) <> ''),
		thumbnail_url TEXT,
		published BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS posts_user_id_updated_at_idx ON posts(user_id, updated_at DESC)`,
	`CREATE INDEX IF NOT EXISTS posts_published_created_at_idx ON posts(created_at DESC) WHERE published`,
	`CREATE TABLE IF NOT EXISTS feedback_history (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		post_id UUID NOT NULL REFERENCES posts(id) ON DELETE CASCADE,
		user_message TEXT NOT NULL,
		ai_feedback TEXT NOT NULL CHECK (btrim(ai_feedback) <> ''),
		draft_content TEXT,
		sequence INTEGER NOT NULL CHECK (sequence > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		CONSTRAINT ` + feedbackSequenceConstraint + ` UNIQUE (post_id, sequence)
	)`,
}

// Migrate creates the tables when they do not exist yet.
func Migrate(ctx context.Context, db *pgxpool.Pool) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
