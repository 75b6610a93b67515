package post

import (
	"context"
	"log/slog"

	"github.com/lenahoward/inkwell/pkg/pagination"

	"github.com/lenahoward/inkwell/internal/platform/apperr"
)

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

func (service *Service) ListPosts(context context.Context, params pagination.Params) ([]*Post, int, error) {
	return service.repo.ListPosts(context, params)
}

func (service *Service) GetPost(context context.Context, id int64) (*Post, error) {
	return service.repo.GetPost(context, id)
}

func (service *Service) CreatePost(context context.Context, ownerID int64, content string) (*Post, error) {
	post := &Post{
		Content: content,
		OwnerID: ownerID,
	}

	if err := service.repo.CreatePost(context, post); err != nil {
		return nil, err
	}

	service.logger.Info("post_created",
		slog.Int64("post_id", post.ID),
		slog.Int64("owner_id", ownerID),
	)
	return post, nil
}

func (service *Service) UpdatePost(context context.Context, callerID, id int64, content string) (*Post, error) {
	post, err := service.repo.GetPost(context, id)
	if err != nil {
		return nil, err
	}

	// Not the owner: indistinguishable from a missing post.
	if post.OwnerID != callerID {
		return nil, apperr.NotFound("Post")
	}

	post.Content = content

	if err := service.repo.UpdatePost(context, post); err != nil {
		return nil, err
	}

	service.logger.Info("post_updated", slog.Int64("post_id", id))
	return post, nil
}

func (service *Service) DeletePost(context context.Context, callerID, id int64) error {
	if err := service.repo.DeletePost(context, id, callerID); err != nil {
		return err
	}

	service.logger.Warn("post_deleted", slog.Int64("post_id", id))
	return nil
}
