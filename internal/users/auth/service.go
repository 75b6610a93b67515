// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lenahoward/inkwell/internal/platform/apperr"
	"github.com/lenahoward/inkwell/internal/platform/sec"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing access tokens.
type TokenProvider interface {
	// Issue creates a signed JWT string whose subject is the given user id.
	Issue(userID int64, username string) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	userRepository    UserRepository
	attemptRepository AttemptRepository
	tokenProvider     TokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(userRepo UserRepository, attemptRepo AttemptRepository, tokenProv TokenProvider) *Service {
	return &Service{
		userRepository:    userRepo,
		attemptRepository: attemptRepo,
		tokenProvider:     tokenProv,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Normalizes the identity fields, verifies uniqueness, hashes the
password, and persists the account.

Parameters:
  - context: context.Context
  - input: RegisterInput (shape-validated by the handler's pipeline)

Returns:
  - *User: Created entity
  - error: apperr.DuplicateIdentity (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {
	username := NormalizeUsername(input.Username)
	email := NormalizeEmail(input.Email)

	// Verify email uniqueness. A single combined message keeps callers from
	// probing which half collided.
	if _, err := service.userRepository.FindByEmail(context, email); err == nil {
		return nil, apperr.DuplicateIdentity()
	}

	// Verify username uniqueness.
	if _, err := service.userRepository.FindByUsername(context, username); err == nil {
		return nil, apperr.DuplicateIdentity()
	}

	// Prevent storing plain-text passwords. Default cost balances security
	// against CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}

	// Persist the user. The unique indexes catch the race where two
	// registrations pass the lookups above concurrently.
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

// LoginSession represents a successfully established authentication.
type LoginSession struct {
	Token string
	User  *User
}

/*
Login validates user credentials and issues an access token.

Description: Checks the failed-attempt throttle, verifies identity, performs
the constant-time password comparison, and issues a fresh signed token.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Transport-ready token and user
  - error: apperr.Unauthorized, apperr.RateLimited, or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {
	email := NormalizeEmail(input.Email)

	// Throttle gate: refuse before running the (slow) bcrypt compare when
	// this email has exhausted its failure budget.
	count, err := service.attemptRepository.Count(context, email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_attempt_count_failed: %w", err)
	}
	if count >= LoginAttemptLimit {
		return nil, apperr.RateLimited(int(LoginAttemptWindow.Seconds()))
	}

	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		// Unknown email counts against the throttle too, and the generic
		// message prevents account enumeration.
		service.recordFailure(context, email)
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// bcrypt performs a constant-time comparison internally.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.recordFailure(context, email)
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Successful login clears the failure budget.
	if err := service.attemptRepository.Reset(context, email); err != nil {
		return nil, fmt.Errorf("auth_service_attempt_reset_failed: %w", err)
	}

	token, err := service.tokenProvider.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginSession{Token: token, User: user}, nil
}

// recordFailure bumps the email's throttle counter. Counting failures is
// best-effort; a broken counter must not mask the real login error.
func (service *Service) recordFailure(context context.Context, email string) {
	_, _ = service.attemptRepository.Incr(context, email, LoginAttemptWindow)
}

// # Identity Normalization

// NormalizeUsername trims whitespace and applies Unicode NFC normalization
// so that visually identical usernames collide on the unique index.
func NormalizeUsername(username string) string {
	return norm.NFC.String(strings.TrimSpace(username))
}

// NormalizeEmail lowercases and trims the address; email uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
