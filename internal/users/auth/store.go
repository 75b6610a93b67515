// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package auth

import (
	"context"
	"time"
)

// # User Data Access

// UserRepository defines the data access contract for user accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given id.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int64) (*User, error)

	/*
		FindByEmail returns the account with the given email.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByEmail(context context.Context, email string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a brand-new user account and assigns its id.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: Duplicate-identity or persistence failures
	*/
	Create(context context.Context, user *User) error
}

// # Volatile Data Access

// AttemptRepository defines the contract for the failed-login throttle counters.
//
// Counters are volatile: each email's counter expires [LoginAttemptWindow]
// after its first failure.
type AttemptRepository interface {

	/*
		Incr records one failed login for the email and returns the running
		count within the current window.

		Parameters:
		  - context: context.Context
		  - email: string
		  - window: time.Duration

		Returns:
		  - int64: Failures recorded in the active window, including this one
		  - error: Storage failures
	*/
	Incr(context context.Context, email string, window time.Duration) (int64, error)

	/*
		Count returns the number of failed logins recorded for the email in
		the active window without modifying it.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - int64: Current failure count (0 when no counter exists)
		  - error: Storage failures
	*/
	Count(context context.Context, email string) (int64, error)

	/*
		Reset clears the email's counter after a successful login.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - error: Storage failures
	*/
	Reset(context context.Context, email string) error
}
