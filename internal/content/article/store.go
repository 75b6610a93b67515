package article

import (
	"context"

	"github.com/lenahoward/inkwell/pkg/pagination"
)

type Repository interface {
	ListArticles(context context.Context, params pagination.Params) ([]*Article, int, error)
	GetArticle(context context.Context, id int64) (*Article, error)
	CreateArticle(context context.Context, article *Article) error
	UpdateArticle(context context.Context, article *Article) error
	// DeleteArticle removes the row only when owned by ownerID; zero rows
	// affected surfaces as not-found.
	DeleteArticle(context context.Context, id, ownerID int64) error
}
