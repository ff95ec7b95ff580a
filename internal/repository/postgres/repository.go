package postgres

import (
	"context"
	"fmt"

	"github.com/BloggingApp/diary-service/internal/config"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	Post     repository.Post
	Feedback repository.Feedback
}

func New(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		Post:     newPostRepo(db),
		Feedback: newFeedbackRepo(db),
	}
}

func DB(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolConfig.MaxConns = cfg.MaxConns
	}

	return pgxpool.NewWithConfig(ctx, poolConfig)
}
