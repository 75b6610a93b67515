// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a JWT access token remains valid.
	// Tokens are stateless and cannot be revoked, so their lifetime is the
	// only end-of-life mechanism.
	AccessTokenTTL = 24 * time.Hour

	// UsernameMinLen / UsernameMaxLen bound the username length. The lower
	// bound is exclusive of two-character names.
	UsernameMinLen = 3
	UsernameMaxLen = 50

	// PasswordMinLen is the minimum accepted password length.
	PasswordMinLen = 6

	// LoginAttemptLimit is the number of failed logins per email tolerated
	// within [LoginAttemptWindow] before further attempts are throttled.
	LoginAttemptLimit = 5

	// LoginAttemptWindow is the sliding interval for failed-login counting.
	LoginAttemptWindow = 15 * time.Minute
)
