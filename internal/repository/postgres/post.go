package postgres

import (
	"context"

	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postColumns = "id, user_id, title, content, thumbnail_url, published, created_at, updated_at"

type postRepo struct {
	db *pgxpool.Pool
}

func newPostRepo(db *pgxpool.Pool) repository.Post {
	return &postRepo{
		db: db,
	}
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var post model.Post
	if err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Content,
		&post.ThumbnailURL,
		&post.Published,
		&post.CreatedAt,
		&post.UpdatedAt,
	); err != nil {
		return nil, mapErr(err)
	}

	return &post, nil
}

func (r *postRepo) Create(ctx context.Context, post model.Post) (*model.Post, error) {
	return scanPost(r.db.QueryRow(
		ctx,
		"INSERT INTO posts(user_id, title, content, thumbnail_url, published) VALUES($1, $2, $3, $4, $5) RETURNING "+postColumns,
		post.UserID,
		post.Title,
		post.Content,
		post.ThumbnailURL,
		post.Published,
	))
}

func (r *postRepo) Update(ctx context.Context, post model.Post) (*model.Post, error) {
	return scanPost(r.db.QueryRow(
		ctx,
		`UPDATE posts
		SET title = $1, content = $2, thumbnail_url = $3, published = $4, updated_at = now()
		WHERE id = $5 AND user_id = $6
		RETURNING `+postColumns,
		post.Title,
		post.Content,
		post.ThumbnailURL,
		post.Published,
		post.ID,
		post.UserID,
	))
}

func (r *postRepo) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return mapErr(err)
	}

	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *postRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	return scanPost(r.db.QueryRow(ctx, "SELECT "+postColumns+" FROM posts WHERE id = $1", id))
}

func (r *postRepo) FindOwnerPost(ctx context.Context, id uuid.UUID, userID string) (*model.Post, error) {
	return scanPost(r.db.QueryRow(ctx, "SELECT "+postColumns+" FROM posts WHERE id = $1 AND user_id = $2", id, userID))
}

func (r *postRepo) FindPublished(ctx context.Context) ([]*model.Post, error) {
	return r.findMany(ctx, "SELECT "+postColumns+" FROM posts WHERE published ORDER BY created_at DESC")
}

func (r *postRepo) FindByUser(ctx context.Context, userID string) ([]*model.Post, error) {
	return r.findMany(ctx, "SELECT "+postColumns+" FROM posts WHERE user_id = $1 ORDER BY updated_at DESC", userID)
}

func (r *postRepo) findMany(ctx context.Context, query string, args ...interface{}) ([]*model.Post, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapErr(err)
	}
	defer rows.Close()

	posts := []*model.Post{}
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, mapErr(err)
	}

	return posts, nil
}
