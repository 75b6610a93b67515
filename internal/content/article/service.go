package article

import (
	"context"
	"log/slog"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/platform/apperr"
)

// Service orchestrates article business rules. Ownership violations are
// reported as not-found so the API never reveals which ids exist to
// non-owners.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListArticles(context context.Context, params pagination.Params) ([]*Article, int, error) {
	return service.repo.ListArticles(context, params)
}

func (service *Service) GetArticle(context context.Context, id int64) (*Article, error) {
	return service.repo.GetArticle(context, id)
}

func (service *Service) CreateArticle(context context.Context, ownerID int64, title, body string) (*Article, error) {
	article := &Article{
		Title:   title,
		Body:    body,
		OwnerID: ownerID,
	}

	if err := service.repo.CreateArticle(context, article); err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.Int64("article_id", article.ID),
		slog.Int64("owner_id", ownerID),
	)
	return article, nil
}

// UpdateInput carries the mutable article fields. Nil means unchanged; the
// handler's pipeline decides which fields each verb requires.
type UpdateInput struct {
	Title *string
	Body  *string
}

func (service *Service) UpdateArticle(context context.Context, callerID, id int64, input UpdateInput) (*Article, error) {
	article, err := service.repo.GetArticle(context, id)
	if err != nil {
		return nil, err
	}

	// Not the owner: indistinguishable from a missing article.
	if article.OwnerID != callerID {
		return nil, apperr.NotFound("Article")
	}

	if input.Title != nil {
		article.Title = *input.Title
	}
	if input.Body != nil {
		article.Body = *input.Body
	}

	if err := service.repo.UpdateArticle(context, article); err != nil {
		return nil, err
	}

	service.logger.Info("article_updated", slog.Int64("article_id", id))
	return article, nil
}

func (service *Service) DeleteArticle(context context.Context, callerID, id int64) error {
	if err := service.repo.DeleteArticle(context, id, callerID); err != nil {
		return err
	}

	service.logger.Warn("article_deleted", slog.Int64("article_id", id))
	return nil
}
