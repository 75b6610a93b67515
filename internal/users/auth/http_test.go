// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenahoward/inkwell/internal/platform/respond"
	"github.com/lenahoward/inkwell/internal/users/auth"
)

// newTestHandler wires a Handler against the in-memory service fixture.
func newTestHandler(t *testing.T) *auth.Handler {
	t.Helper()
	service, _, _, _ := newTestService(t)
	return auth.NewHandler(service)
}

// postJSON drives one request through the router and decodes the error
// envelope when the status indicates a failure.
func postJSON(t *testing.T, handler *auth.Handler, path, body string) (*httptest.ResponseRecorder, *respond.ErrorEnvelope) {
	t.Helper()

	request := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	handler.Routes().ServeHTTP(recorder, request)

	if recorder.Code >= 400 {
		var envelope respond.ErrorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		return recorder, &envelope
	}
	return recorder, nil
}

// detailFields collects the field names present in an error envelope.
func detailFields(envelope *respond.ErrorEnvelope) []string {
	fields := make([]string, 0, len(envelope.Details))
	for _, detail := range envelope.Details {
		fields = append(fields, detail.Field)
	}
	return fields
}

/*
TestRegister_ValidationFailure submits a payload where only the password is
acceptable and checks that every bad field is surfaced at once.
*/
func TestRegister_ValidationFailure(t *testing.T) {
	handler := newTestHandler(t)

	recorder, envelope := postJSON(t, handler, "/register",
		`{"username":"ab","email":"bad","password":"123456"}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Code)

	fields := detailFields(envelope)
	assert.Contains(t, fields, auth.FieldUsername)
	assert.Contains(t, fields, auth.FieldEmail)
	assert.NotContains(t, fields, auth.FieldPassword)
}

/*
TestRegister_FieldRules exercises the boundary values of each field rule.
*/
func TestRegister_FieldRules(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus int
		badField   string
	}{
		{"username_too_short", `{"username":"ab","email":"a@b.com","password":"123456"}`, http.StatusBadRequest, auth.FieldUsername},
		{"username_min_boundary", `{"username":"abc","email":"a@b.com","password":"123456"}`, http.StatusCreated, ""},
		{"username_too_long", `{"username":"` + strings.Repeat("x", 51) + `","email":"a@b.com","password":"123456"}`, http.StatusBadRequest, auth.FieldUsername},
		{"password_too_short", `{"username":"abc","email":"a@b.com","password":"12345"}`, http.StatusBadRequest, auth.FieldPassword},
		{"password_min_boundary", `{"username":"abc","email":"a@b.com","password":"123456"}`, http.StatusCreated, ""},
		{"email_missing_at", `{"username":"abc","email":"nope","password":"123456"}`, http.StatusBadRequest, auth.FieldEmail},
		{"all_missing", `{}`, http.StatusBadRequest, auth.FieldUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler(t)
			recorder, envelope := postJSON(t, handler, "/register", tt.body)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.badField != "" {
				require.NotNil(t, envelope)
				assert.Contains(t, detailFields(envelope), tt.badField)
			}
		})
	}
}

/*
TestRegister_Success checks the created envelope and that the password hash
never leaks into the response body.
*/
func TestRegister_Success(t *testing.T) {
	handler := newTestHandler(t)

	recorder, _ := postJSON(t, handler, "/register",
		`{"username":"lena","email":"lena@example.com","password":"123456"}`)

	require.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		Message string     `json:"message"`
		User    *auth.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "User registered successfully", body.Message)
	require.NotNil(t, body.User)
	assert.Equal(t, "lena", body.User.Username)
	assert.NotZero(t, body.User.ID)
	assert.NotContains(t, recorder.Body.String(), "password")
}

/*
TestRegister_Duplicate registers the same identity twice and expects the
combined conflict message on the second attempt.
*/
func TestRegister_Duplicate(t *testing.T) {
	handler := newTestHandler(t)
	payload := `{"username":"lena","email":"lena@example.com","password":"123456"}`

	recorder, _ := postJSON(t, handler, "/register", payload)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder, envelope := postJSON(t, handler, "/register", payload)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, "User with this email or username already exists", envelope.Error)
}

/*
TestAuth_InvalidJSON checks that malformed bodies short-circuit with a JSON
parse error rather than field-level details.
*/
func TestAuth_InvalidJSON(t *testing.T) {
	handler := newTestHandler(t)

	for _, path := range []string{"/register", "/login"} {
		t.Run(path, func(t *testing.T) {
			recorder, envelope := postJSON(t, handler, path, `{"username": `)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			require.NotNil(t, envelope)
			assert.Empty(t, envelope.Details)
		})
	}
}

/*
TestLogin_Flow covers the full register-then-login happy path plus the
generic rejection for bad credentials.
*/
func TestLogin_Flow(t *testing.T) {
	handler := newTestHandler(t)

	recorder, _ := postJSON(t, handler, "/register",
		`{"username":"lena","email":"lena@example.com","password":"123456"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder, _ = postJSON(t, handler, "/login",
		`{"email":"lena@example.com","password":"123456"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Message string     `json:"message"`
		Token   string     `json:"token"`
		User    *auth.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Login successful", body.Message)
	assert.NotEmpty(t, body.Token)
	require.NotNil(t, body.User)
	assert.Equal(t, "lena@example.com", body.User.Email)

	recorder, envelope := postJSON(t, handler, "/login",
		`{"email":"lena@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, "Invalid login credentials", envelope.Error)
}

/*
TestLogin_MissingFields verifies that empty credentials are rejected before
touching the store.
*/
func TestLogin_MissingFields(t *testing.T) {
	handler := newTestHandler(t)

	recorder, envelope := postJSON(t, handler, "/login", `{"email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, envelope)
	assert.Len(t, envelope.Details, 2)
}
