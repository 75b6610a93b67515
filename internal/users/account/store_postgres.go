// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package account

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/platform/apperr"
	"github.com/lenahoward/inkwell/internal/platform/dberr"
	"github.com/lenahoward/inkwell/internal/users/auth"
)

// # Account Repository

// PostgresAccountRepository implements the AccountRepository interface using pgx.
type PostgresAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new PostgreSQL implementation of the AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *PostgresAccountRepository {
	return &PostgresAccountRepository{pool: pool}
}

/*
List retrieves a page of user accounts ordered by creation time (newest first).

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []auth.User: Page of accounts
  - int: Total account count
  - error: Database errors
*/
func (repository *PostgresAccountRepository) List(context context.Context, params pagination.Params) ([]auth.User, int, error) {
	const countQuery = `SELECT COUNT(*) FROM users`

	var total int
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "User")
	}

	const listQuery = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2`

	rows, err := repository.pool.Query(context, listQuery, params.Limit, params.Offset())
	if err != nil {
		return nil, 0, dberr.Wrap(err, "User")
	}
	defer rows.Close()

	users := make([]auth.User, 0, params.Limit)
	for rows.Next() {
		var user auth.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.PasswordHash,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "User")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, "User")
	}

	return users, total, nil
}

/*
FindByID retrieves a user record by primary key.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *auth.User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresAccountRepository) FindByID(context context.Context, id int64) (*auth.User, error) {
	const query = `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1`

	user := &auth.User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}

	return user, nil
}

/*
UpdateIdentity persists new username and email values for an account.

Description: The unique indexes on username and email guard concurrent
updates; a violation is mapped to the duplicate-identity error.

Parameters:
  - context: context.Context
  - user: *auth.User (Hydrated entity with changes)

Returns:
  - error: apperr.DuplicateIdentity, apperr.NotFound, or database errors
*/
func (repository *PostgresAccountRepository) UpdateIdentity(context context.Context, user *auth.User) error {
	const query = `
		UPDATE users
		SET username = $1, email = $2, updated_at = $3
		WHERE id = $4`

	user.UpdatedAt = time.Now()

	tag, err := repository.pool.Exec(context, query,
		user.Username,
		user.Email,
		user.UpdatedAt,
		user.ID,
	)
	if err != nil {
		return dberr.Wrap(err, "User")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

/*
Delete removes an account row permanently.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: apperr.NotFound when no row matched, or database errors
*/
func (repository *PostgresAccountRepository) Delete(context context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "User")
	}

	// A vanished row and a foreign row look the same to the caller.
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}
