// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Verification Errors

// Verification failures are classified so operators can see WHY a token was
// rejected. Handlers must never forward the subtype to the client; the HTTP
// layer collapses all of them into a generic 401.
var (
	// ErrTokenMalformed means the token could not be parsed or decoded at all.
	ErrTokenMalformed = errors.New("sec: token malformed")

	// ErrTokenBadSignature means the token parsed but its signature does not
	// match the configured signing secret.
	ErrTokenBadSignature = errors.New("sec: token signature mismatch")

	// ErrTokenExpired means the token was valid once but its exp claim has passed.
	ErrTokenExpired = errors.New("sec: token expired")
)

// TokenClaims represents the payload embedded inside a JWT access token.
//
// # Why custom claims?
//
// By embedding the UserID and Username directly inside the JWT, the
// authentication middleware can reconstruct the active user context WITHOUT
// querying the database on every single API request.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID   int64  `json:"uid"`
	Username string `json:"unm"`
}

// TokenService issues and verifies HS256-signed JWT access tokens.
//
// The signing secret is process-wide configuration: it is injected once at
// construction and never mutated afterwards. Tokens are stateless — nothing
// is persisted server-side and expiry is the only end-of-life mechanism.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// minSecretLength guards against accidentally deploying with a trivial secret.
const minSecretLength = 32

// NewTokenService creates a new TokenService.
//
// # Parameters
//   - secret: The HMAC signing secret (from configuration, at least 32 bytes).
//   - issuer: The 'iss' claim stamped on every issued token.
//   - ttl: The fixed lifetime of issued tokens.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("sec: signing secret must be at least %d bytes", minSecretLength)
	}
	if ttl <= 0 {
		return nil, errors.New("sec: token ttl must be positive")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue creates a signed access token whose subject is the given user id.
//
// The token embeds issued-at and expiry timestamps; the expiry is always
// IssuedAt + the service's fixed TTL.
func (service *TokenService) Issue(userID int64, username string) (string, error) {
	currentTime := time.Now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string and returns the
// embedded claims.
//
// # Failure Modes
//   - [ErrTokenMalformed]: the string is not a decodable JWT.
//   - [ErrTokenBadSignature]: the signature does not match the secret.
//   - [ErrTokenExpired]: the exp claim is in the past.
//
// The signature comparison is performed by the jwt library's HMAC
// implementation, which uses a constant-time compare.
func (service *TokenService) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(service.issuer),
	)

	if err != nil {
		return nil, classifyTokenError(err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// classifyTokenError maps jwt library errors onto the package's stable error set.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %w", ErrTokenBadSignature, err)
	default:
		// Undecodable input, wrong algorithm, bad issuer, missing claims.
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
