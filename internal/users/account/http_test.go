// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: lena.howard.dev@gmail.com

package account_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenahoward/inkwell/internal/platform/ctxutil"
	"github.com/lenahoward/inkwell/internal/platform/respond"
	"github.com/lenahoward/inkwell/internal/platform/sec"
	"github.com/lenahoward/inkwell/internal/users/account"
	"github.com/lenahoward/inkwell/internal/users/auth"
)

// newTestHandler wires a Handler against the in-memory repository.
func newTestHandler(seed ...*auth.User) http.Handler {
	service, _ := newTestService(seed...)
	return account.NewHandler(service).Routes()
}

// doJSON performs one request, optionally authenticated as the given user id.
func doJSON(t *testing.T, handler http.Handler, method, path, body string, callerID int64) (*httptest.ResponseRecorder, *respond.ErrorEnvelope) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")

	if callerID != 0 {
		claims := &sec.TokenClaims{UserID: callerID, Username: "caller"}
		request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	if recorder.Code >= 400 {
		var envelope respond.ErrorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
		return recorder, &envelope
	}
	return recorder, nil
}

// # Public Discovery

/*
TestList_Paginated checks the list envelope carries data plus metadata.
*/
func TestList_Paginated(t *testing.T) {
	handler := newTestHandler(
		testUser(1, "lena", "lena@example.com"),
		testUser(2, "remi", "remi@example.com"),
	)

	recorder, _ := doJSON(t, handler, http.MethodGet, "/", "", 0)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []auth.User `json:"data"`
		Meta struct {
			Total int `json:"total"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)
	assert.Equal(t, 2, body.Meta.Total)
	assert.NotContains(t, recorder.Body.String(), "password")
}

/*
TestGet_InvalidID verifies the uniform 400 policy for non-numeric ids.
*/
func TestGet_InvalidID(t *testing.T) {
	handler := newTestHandler(testUser(1, "lena", "lena@example.com"))

	tests := []struct {
		name string
		path string
	}{
		{"alpha", "/abc"},
		{"mixed", "/12abc"},
		{"negative", "/-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, envelope := doJSON(t, handler, http.MethodGet, tt.path, "", 0)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			require.NotNil(t, envelope)
			assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
		})
	}
}

/*
TestGet_Profile covers the found and not-found public reads.
*/
func TestGet_Profile(t *testing.T) {
	handler := newTestHandler(testUser(1, "lena", "lena@example.com"))

	recorder, _ := doJSON(t, handler, http.MethodGet, "/1", "", 0)
	require.Equal(t, http.StatusOK, recorder.Code)

	var user auth.User
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	assert.Equal(t, "lena", user.Username)

	recorder, envelope := doJSON(t, handler, http.MethodGet, "/99", "", 0)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

// # Protected Mutations

/*
TestUpdate_RequiresAuth verifies the 401 gate on every mutating verb.
*/
func TestUpdate_RequiresAuth(t *testing.T) {
	handler := newTestHandler(testUser(1, "lena", "lena@example.com"))

	tests := []struct {
		method string
		body   string
	}{
		{http.MethodPut, `{"username":"lena","email":"lena@example.com"}`},
		{http.MethodPatch, `{"username":"lena"}`},
		{http.MethodDelete, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			recorder, envelope := doJSON(t, handler, tt.method, "/1", tt.body, 0)
			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			require.NotNil(t, envelope)
			assert.Equal(t, "Unauthorized", envelope.Error)
		})
	}
}

/*
TestUpdate_PipelineOrder submits a bad id together with a bad body and
expects only the id step's messages: the pipeline must stop at the first
failing step.
*/
func TestUpdate_PipelineOrder(t *testing.T) {
	handler := newTestHandler(testUser(1, "lena", "lena@example.com"))

	recorder, envelope := doJSON(t, handler, http.MethodPut, "/abc",
		`{"username":"x","email":"not-an-email"}`, 1)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, envelope)
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "id", envelope.Details[0].Field)
}

/*
TestUpdate_FullReplace checks that PUT demands both fields and applies them.
*/
func TestUpdate_FullReplace(t *testing.T) {
	handler := newTestHandler(testUser(1, "lena", "lena@example.com"))

	// Missing email fails.
	recorder, envelope := doJSON(t, handler, http.MethodPut, "/1",
		`{"username":"lena2"}`, 1)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, envelope)
	assert.Equal(t, auth.FieldEmail, envelope.Details[0].Field)

	// Complete payload succeeds.
	recorder, _ = doJSON(t, handler, http.MethodPut, "/1",
		`{"username":"lena2","email":"lena2@example.com"}`, 1)
	require.Equal(t, http.StatusOK, recorder.Code)

	var user auth.User
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	assert.Equal(t, "lena2", user.Username)
	assert.Equal(t, "lena2@example.com", user.Email)
}

/*
TestPartialUpdate_NoFields verifies the empty-payload rejection on PATCH.
*/
func TestPartialUpdate_NoFields(t *testing.T) {
	handler := newTestHandler(testUser(1, "lena", "lena@example.com"))

	recorder, envelope := doJSON(t, handler, http.MethodPatch, "/1", `{}`, 1)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	require.NotNil(t, envelope)
	require.Len(t, envelope.Details, 1)
	assert.Equal(t, "No fields to update", envelope.Details[0].Message)
}

/*
TestPartialUpdate_SingleField applies one field and leaves the other alone.
*/
func TestPartialUpdate_SingleField(t *testing.T) {
	handler := newTestHandler(testUser(1, "lena", "lena@example.com"))

	recorder, _ := doJSON(t, handler, http.MethodPatch, "/1",
		`{"email":"fresh@example.com"}`, 1)
	require.Equal(t, http.StatusOK, recorder.Code)

	var user auth.User
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &user))
	assert.Equal(t, "lena", user.Username)
	assert.Equal(t, "fresh@example.com", user.Email)
}

/*
TestMutation_ForeignAccount verifies the 404 conflation end to end: an
authenticated caller targeting another account.
*/
func TestMutation_ForeignAccount(t *testing.T) {
	handler := newTestHandler(
		testUser(1, "lena", "lena@example.com"),
		testUser(2, "remi", "remi@example.com"),
	)

	tests := []struct {
		method string
		body   string
	}{
		{http.MethodPut, `{"username":"taken","email":"taken@example.com"}`},
		{http.MethodPatch, `{"username":"taken"}`},
		{http.MethodDelete, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			recorder, envelope := doJSON(t, handler, tt.method, "/2", tt.body, 1)
			assert.Equal(t, http.StatusNotFound, recorder.Code)
			require.NotNil(t, envelope)
			assert.Equal(t, "NOT_FOUND", envelope.Code)
		})
	}
}

/*
TestRemove_OwnAccount covers the happy-path delete.
*/
func TestRemove_OwnAccount(t *testing.T) {
	handler := newTestHandler(testUser(1, "lena", "lena@example.com"))

	recorder, _ := doJSON(t, handler, http.MethodDelete, "/1", "", 1)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder, _ = doJSON(t, handler, http.MethodGet, "/1", "", 0)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
