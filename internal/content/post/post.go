package post

import (
	"context"
	"time"

	"github.com/lenahoward/inkwell/pkg/pagination"
)

// Post is a short-form piece owned by the member who created it.
type Post struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldContent = "content"

	ContentMaxLen = 2000
)

type Repository interface {
	ListPosts(context context.Context, params pagination.Params) ([]*Post, int, error)
	GetPost(context context.Context, id int64) (*Post, error)
	CreatePost(context context.Context, post *Post) error
	UpdatePost(context context.Context, post *Post) error
	DeletePost(context context.Context, id, ownerID int64) error
}
