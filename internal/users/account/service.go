// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/platform/apperr"
	"github.com/lenahoward/inkwell/internal/users/auth"
)

// # Service Layer

// Service orchestrates business logic for the users resource.
//
// It enforces the ownership rule: a member may read anyone but mutate only
// themselves. Mutations against foreign accounts surface as not-found so the
// API never confirms which ids exist to an unauthorized caller.
type Service struct {
	accountRepository AccountRepository
	logger            *slog.Logger
}

// NewService constructs a new [Service] with its repository dependency.
func NewService(accountRepo AccountRepository, logger *slog.Logger) *Service {
	return &Service{
		accountRepository: accountRepo,
		logger:            logger,
	}
}

// # Profile Discovery

/*
List retrieves a page of member profiles.

Parameters:
  - context: context.Context
  - params: pagination.Params

Returns:
  - []auth.User: Page of accounts
  - int: Total account count
  - error: Storage failures
*/
func (service *Service) List(context context.Context, params pagination.Params) ([]auth.User, int, error) {
	users, total, err := service.accountRepository.List(context, params)
	if err != nil {
		return nil, 0, fmt.Errorf("account_service_list_failed: %w", err)
	}
	return users, total, nil
}

/*
GetProfile retrieves a single member profile by id.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *auth.User: The hydrated user profile
  - error: apperr.NotFound or execution failures
*/
func (service *Service) GetProfile(context context.Context, userID int64) (*auth.User, error) {
	user, err := service.accountRepository.FindByID(context, userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// # Profile Mutation

// UpdateIdentityInput defines the mutable identity fields. Nil pointers mean
// "leave unchanged"; the handler's validation pipeline decides which fields
// are mandatory for PUT versus PATCH.
type UpdateIdentityInput struct {
	Username *string
	Email    *string
}

/*
UpdateIdentity applies identity changes to the caller's own account.

Description: Verifies ownership, normalizes the new values, and persists the
change. Uniqueness of username and email is enforced the same way as during
registration.

Parameters:
  - context: context.Context
  - callerID: int64 (Authenticated identity)
  - targetID: int64 (Account being modified)
  - input: UpdateIdentityInput

Returns:
  - *auth.User: The updated profile
  - error: apperr.NotFound (foreign or missing account), apperr.DuplicateIdentity, or storage failures
*/
func (service *Service) UpdateIdentity(context context.Context, callerID, targetID int64, input UpdateIdentityInput) (*auth.User, error) {

	// Ownership: foreign accounts are indistinguishable from missing ones.
	if callerID != targetID {
		return nil, apperr.NotFound("User")
	}

	user, err := service.accountRepository.FindByID(context, targetID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		user.Username = auth.NormalizeUsername(*input.Username)
	}
	if input.Email != nil {
		user.Email = auth.NormalizeEmail(*input.Email)
	}

	// The unique indexes back this up for races; the repository maps the
	// violation to the same duplicate-identity error as registration.
	if err := service.accountRepository.UpdateIdentity(context, user); err != nil {
		return nil, err
	}

	service.logger.Info("user_identity_updated", slog.Int64("user_id", targetID))

	return user, nil
}

/*
DeleteAccount removes the caller's own account permanently.

Parameters:
  - context: context.Context
  - callerID: int64
  - targetID: int64

Returns:
  - error: apperr.NotFound (foreign or missing account) or execution failures
*/
func (service *Service) DeleteAccount(context context.Context, callerID, targetID int64) error {

	// Ownership: foreign accounts are indistinguishable from missing ones.
	if callerID != targetID {
		return apperr.NotFound("User")
	}

	if err := service.accountRepository.Delete(context, targetID); err != nil {
		return err
	}

	service.logger.Warn("user_account_deleted", slog.Int64("user_id", targetID))

	return nil
}
