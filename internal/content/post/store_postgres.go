package post

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/platform/apperr"
	"github.com/lenahoward/inkwell/internal/platform/dberr"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (repository *PostgresRepository) ListPosts(context context.Context, params pagination.Params) ([]*Post, int, error) {
	const countQuery = `SELECT COUNT(*) FROM posts`

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Post")
	}

	const listQuery = `
		SELECT id, content, owner_id, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, listQuery, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Post")
	}
	defer rows.Close()

	posts := make([]*Post, 0, params.Limit)
	for rows.Next() {
		post := &Post{}
		err := rows.Scan(
			&post.ID,
			&post.Content,
			&post.OwnerID,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Post")
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Post")
	}

	return posts, total, nil
}

func (repository *PostgresRepository) GetPost(context context.Context, id int64) (*Post, error) {
	const query = `
		SELECT id, content, owner_id, created_at, updated_at
		FROM posts
		WHERE id = $1`

	post := &Post{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&post.ID,
		&post.Content,
		&post.OwnerID,
		&post.CreatedAt,
		&post.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Post")
	}

	return post, nil
}

func (repository *PostgresRepository) CreatePost(context context.Context, post *Post) error {
	const query = `
		INSERT INTO posts (content, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	err := repository.pool.QueryRow(context, query,
		post.Content,
		post.OwnerID,
		post.CreatedAt,
		post.UpdatedAt,
	).Scan(&post.ID)

	if err != nil {
		return dberr.Wrap(err, "Post")
	}

	return nil
}

func (repository *PostgresRepository) UpdatePost(context context.Context, post *Post) error {
	const query = `
		UPDATE posts
		SET content = $1, updated_at = $2
		WHERE id = $3`

	post.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		post.Content,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "Post")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}

func (repository *PostgresRepository) DeletePost(context context.Context, id, ownerID int64) error {
	const query = `DELETE FROM posts WHERE id = $1 AND owner_id = $2`

	tag, err := repository.pool.Exec(context, query, id, ownerID)
	if err != nil {
		return dberr.Wrap(err, "Post")
	}

	// Missing and not-owned rows are deliberately the same outcome.
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Post")
	}

	return nil
}
