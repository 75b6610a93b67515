// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

/*
Package account handles the public users resource.

It provides discovery of member profiles and lets an authenticated member
update or delete their own account.

# Architecture

  - Entities: This package depends on the auth package for the User entity.
  - Security: Mutations are restricted to the account owner; attempts against
    any other account surface as a plain not-found.
*/
package account

import (
	"context"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/users/auth"
)

// # Repository Contracts

// AccountRepository defines the persistence contract for user accounts.
type AccountRepository interface {
	/*
		List retrieves a page of user accounts ordered by creation time.

		Parameters:
		  - context: context.Context
		  - params: pagination.Params

		Returns:
		  - []auth.User: Page of accounts
		  - int: Total account count (for pagination metadata)
		  - error: Storage failures
	*/
	List(context context.Context, params pagination.Params) ([]auth.User, int, error)

	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id int64) (*auth.User, error)

	/*
		UpdateIdentity modifies the username and email of an existing user.

		Parameters:
		  - context: context.Context
		  - user: *auth.User (Hydrated entity with changes)

		Returns:
		  - error: apperr.DuplicateIdentity on unique violations, or storage failures
	*/
	UpdateIdentity(context context.Context, user *auth.User) error

	/*
		Delete removes an account permanently.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - error: apperr.NotFound when no row matched, or execution failures
	*/
	Delete(context context.Context, id int64) error
}
