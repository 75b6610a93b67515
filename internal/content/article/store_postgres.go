package article

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

func (repository *PostgresRepository) ListArticles(context context.Context, params pagination.Params) ([]*Article, int, error) {
	const countQuery = `SELECT COUNT(*) FROM articles`

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "Article")
	}

	const listQuery = `
		SELECT id, title, body, owner_id, created_at, updated_at
		FROM articles
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, listQuery, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "Article")
	}
	defer rows.Close()

	articles := make([]*Article, 0, params.Limit)
	for rows.Next() {
		article := &Article{}
		err := rows.Scan(
			&article.ID,
			&article.Title,
			&article.Body,
			&article.OwnerID,
			&article.CreatedAt,
			&article.UpdatedAt,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "Article")
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "Article")
	}

	return articles, total, nil
}

func (repository *PostgresRepository) GetArticle(context context.Context, id int64) (*Article, error) {
	const query = `
		SELECT id, title, body, owner_id, created_at, updated_at
		FROM articles
		WHERE id = $1`

	article := &Article{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&article.ID,
		&article.Title,
		&article.Body,
		&article.OwnerID,
		&article.CreatedAt,
		&article.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "Article")
	}

	return article, nil
}

func (repository *PostgresRepository) CreateArticle(context context.Context, article *Article) error {
	const query = `
		INSERT INTO articles (title, body, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	now := time.Now()
	article.CreatedAt = now
	article.UpdatedAt = now

	err := repository.pool.QueryRow(context, query,
		article.Title,
		article.Body,
		article.OwnerID,
		article.CreatedAt,
		article.UpdatedAt,
	).Scan(&article.ID)

	if err != nil {
		return dberr.Wrap(err, "Article")
	}

	return nil
}

func (repository *PostgresRepository) UpdateArticle(context context.Context, article *Article) error {
	const query = `
		UPDATE articles
		SET title = $1, body = $2, updated_at = $3
		WHERE id = $4`

	article.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		article.Title,
		article.Body,
		article.UpdatedAt,
		article.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "Article")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Article")
	}

	return nil
}

func (repository *PostgresRepository) DeleteArticle(context context.Context, id, ownerID int64) error {
	const query = `DELETE FROM articles WHERE id = $1 AND owner_id = $2`

	tag, err := repository.pool.Exec(context, query, id, ownerID)
	if err != nil {
		return dberr.Wrap(err, "Article")
	}

	// Missing and not-owned rows are deliberately the same outcome.
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Article")
	}

	return nil
}
