// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

/*
Package auth implements the user identity layer.

It defines the core User entity and the logic for registration and login,
including password hashing and access-token issuance.

# Architecture

This layer is the "Truth" of the system. The User entity encapsulates all
business rules related to identity: username and email are globally unique,
and the password digest is stored alongside but never serialized.
*/
package auth

import "time"

// # Domain Entities

// User represents a registered member of the Inkwell platform.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// # Field Identifiers

// Field names for validation and identity mapping in the authentication domain.
const (
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"
)
