package post_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/content/post"
	"github.com/lenahoward/inkwell/internal/platform/apperr"
	"github.com/lenahoward/inkwell/internal/platform/ctxutil"
	"github.com/lenahoward/inkwell/internal/platform/respond"
	"github.com/lenahoward/inkwell/internal/platform/sec"
)

type memoryRepository struct {
	posts  map[int64]*post.Post
	nextID int64
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{posts: map[int64]*post.Post{}, nextID: 1}
}

func (repository *memoryRepository) ListPosts(_ context.Context, params pagination.Params) ([]*post.Post, int, error) {
	list := make([]*post.Post, 0, len(repository.posts))
	for _, item := range repository.posts {
		clone := *item
		list = append(list, &clone)
	}
	return list, len(repository.posts), nil
}

func (repository *memoryRepository) GetPost(_ context.Context, id int64) (*post.Post, error) {
	item, ok := repository.posts[id]
	if !ok {
		return nil, apperr.NotFound("Post")
	}
	clone := *item
	return &clone, nil
}

func (repository *memoryRepository) CreatePost(_ context.Context, item *post.Post) error {
	item.ID = repository.nextID
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	repository.nextID++
	stored := *item
	repository.posts[item.ID] = &stored
	return nil
}

func (repository *memoryRepository) UpdatePost(_ context.Context, item *post.Post) error {
	existing, ok := repository.posts[item.ID]
	if !ok {
		return apperr.NotFound("Post")
	}
	*existing = *item
	return nil
}

func (repository *memoryRepository) DeletePost(_ context.Context, id, ownerID int64) error {
	item, ok := repository.posts[id]
	if !ok || item.OwnerID != ownerID {
		return apperr.NotFound("Post")
	}
	delete(repository.posts, id)
	return nil
}

func newTestHandler() http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := post.NewService(newMemoryRepository(), logger)
	return post.NewHandler(service).Routes()
}

func doJSON(t *testing.T, handler http.Handler, method, path, body string, callerID int64) (*httptest.ResponseRecorder, *respond.ErrorEnvelope) {
	t.Helper()

	request := httptest.NewRequest(method, path, strings.NewReader(body))
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

func TestPost_Lifecycle(t *testing.T) {
	handler := newTestHandler()

	// Anonymous creation is refused.
	recorder, envelope := doJSON(t, handler, http.MethodPost, "/", `{"content":"hi"}`, 0)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	require.NotNil(t, envelope)

	// Authenticated creation succeeds.
	recorder, _ = doJSON(t, handler, http.MethodPost, "/", `{"content":"hello world"}`, 1)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var created post.Post
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.OwnerID)

	// Owner updates, anyone reads.
	recorder, _ = doJSON(t, handler, http.MethodPut, "/1", `{"content":"edited"}`, 1)
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder, _ = doJSON(t, handler, http.MethodGet, "/1", "", 0)
	require.Equal(t, http.StatusOK, recorder.Code)

	var fetched post.Post
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &fetched))
	assert.Equal(t, "edited", fetched.Content)

	// Owner deletes.
	recorder, _ = doJSON(t, handler, http.MethodDelete, "/1", "", 1)
	assert.Equal(t, http.StatusNoContent, recorder.Code)

	recorder, _ = doJSON(t, handler, http.MethodGet, "/1", "", 0)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestPost_ForeignMutations(t *testing.T) {
	handler := newTestHandler()

	doJSON(t, handler, http.MethodPost, "/", `{"content":"mine"}`, 1)

	tests := []struct {
		method string
		body   string
	}{
		{http.MethodPut, `{"content":"stolen"}`},
		{http.MethodPatch, `{"content":"stolen"}`},
		{http.MethodDelete, ""},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			recorder, envelope := doJSON(t, handler, tt.method, "/1", tt.body, 2)
			assert.Equal(t, http.StatusNotFound, recorder.Code)
			require.NotNil(t, envelope)
			assert.Equal(t, "NOT_FOUND", envelope.Code)
		})
	}
}

func TestPost_Validation(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantDetail string
	}{
		{"create_missing_content", http.MethodPost, "/", `{}`, "Is required"},
		{"create_blank_content", http.MethodPost, "/", `{"content":"  "}`, "This field is required"},
		{"patch_empty_payload", http.MethodPatch, "/1", `{}`, "No fields to update"},
		{"put_bad_id_short_circuits", http.MethodPut, "/abc", `{}`, "Must be a numeric id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newTestHandler()
			doJSON(t, handler, http.MethodPost, "/", `{"content":"seed"}`, 1)

			recorder, envelope := doJSON(t, handler, tt.method, tt.path, tt.body, 1)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			require.NotNil(t, envelope)
			require.NotEmpty(t, envelope.Details)
			assert.Equal(t, tt.wantDetail, envelope.Details[0].Message)
		})
	}
}
