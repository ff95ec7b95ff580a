package postgres

import (
	"errors"

	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

func mapErr(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == uniqueViolation && pgErr.ConstraintName == feedbackSequenceConstraint:
			return repository.ErrSequenceTaken
		case pgErr.Code == foreignKeyViolation:
			return repository.ErrNotFound
		}
	}

	return err
}
