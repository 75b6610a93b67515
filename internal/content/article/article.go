package article

import "time"

// Article is a long-form piece owned by the member who created it.
type Article struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	OwnerID   int64     `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldTitle = "title"
	FieldBody  = "body"

	TitleMaxLen = 200
)
