package article_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/content/article"
	"github.com/lenahoward/inkwell/internal/platform/apperr"
)

// memoryRepository is an in-memory article.Repository for tests.
type memoryRepository struct {
	articles map[int64]*article.Article
	nextID   int64
	updates  int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{articles: map[int64]*article.Article{}, nextID: 1}
}

func (repository *memoryRepository) ListArticles(_ context.Context, params pagination.Params) ([]*article.Article, int, error) {
	list := make([]*article.Article, 0, len(repository.articles))
	for _, item := range repository.articles {
		clone := *item
		list = append(list, &clone)
	}
	return list, len(repository.articles), nil
}

func (repository *memoryRepository) GetArticle(_ context.Context, id int64) (*article.Article, error) {
	item, ok := repository.articles[id]
	if !ok {
		return nil, apperr.NotFound("Article")
	}
	clone := *item
	return &clone, nil
}

func (repository *memoryRepository) CreateArticle(_ context.Context, item *article.Article) error {
	item.ID = repository.nextID
	item.CreatedAt = time.Now().UTC()
	item.UpdatedAt = item.CreatedAt
	repository.nextID++
	stored := *item
	repository.articles[item.ID] = &stored
	return nil
}

func (repository *memoryRepository) UpdateArticle(_ context.Context, item *article.Article) error {
	existing, ok := repository.articles[item.ID]
	if !ok {
		return apperr.NotFound("Article")
	}
	repository.updates++
	*existing = *item
	return nil
}

func (repository *memoryRepository) DeleteArticle(_ context.Context, id, ownerID int64) error {
	item, ok := repository.articles[id]
	if !ok || item.OwnerID != ownerID {
		return apperr.NotFound("Article")
	}
	delete(repository.articles, id)
	return nil
}

func newTestService() (*article.Service, *memoryRepository) {
	repository := newMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return article.NewService(repository, logger), repository
}

func ptr(value string) *string { return &value }

func TestService_Create_AssignsOwner(t *testing.T) {
	service, repository := newTestService()

	created, err := service.CreateArticle(context.Background(), 7, "First", "Hello.")
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.OwnerID)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "First", repository.articles[created.ID].Title)
}

func TestService_Update_OwnershipMismatch(t *testing.T) {
	service, repository := newTestService()

	created, err := service.CreateArticle(context.Background(), 1, "Mine", "Body.")
	require.NoError(t, err)

	_, err = service.UpdateArticle(context.Background(), 2, created.ID, article.UpdateInput{
		Title: ptr("Stolen"),
	})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	// 404 rather than 403: non-owners cannot probe for existing ids.
	assert.Equal(t, 404, ae.HTTPStatus)

	assert.Zero(t, repository.updates)
	assert.Equal(t, "Mine", repository.articles[created.ID].Title)
}

func TestService_Update_PartialKeepsOther(t *testing.T) {
	service, _ := newTestService()

	created, err := service.CreateArticle(context.Background(), 1, "Title", "Body.")
	require.NoError(t, err)

	updated, err := service.UpdateArticle(context.Background(), 1, created.ID, article.UpdateInput{
		Body: ptr("Rewritten."),
	})
	require.NoError(t, err)
	assert.Equal(t, "Title", updated.Title)
	assert.Equal(t, "Rewritten.", updated.Body)
}

func TestService_Delete_OwnershipMismatch(t *testing.T) {
	service, repository := newTestService()

	created, err := service.CreateArticle(context.Background(), 1, "Mine", "Body.")
	require.NoError(t, err)

	err = service.DeleteArticle(context.Background(), 2, created.ID)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
	assert.Contains(t, repository.articles, created.ID)

	// The owner can delete.
	require.NoError(t, service.DeleteArticle(context.Background(), 1, created.ID))
	assert.NotContains(t, repository.articles, created.ID)
}

func TestService_Get_Missing(t *testing.T) {
	service, _ := newTestService()

	_, err := service.GetArticle(context.Background(), 42)
	require.Error(t, err)
	assert.Equal(t, 404, apperr.As(err).HTTPStatus)
}
