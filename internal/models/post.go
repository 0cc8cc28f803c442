package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Post represents an article written by a user
type Post struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id" validate:"required,gt=0"`
	Title     string    `json:"title" validate:"required,max=255"`
	Body      string    `json:"body" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate validates the post using go-playground/validator
func (p *Post) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// PostComments is the composite view returned by GET /posts/{id}/comments
type PostComments struct {
	Post     *Post             `json:"post"`
	Comments []*CommentSummary `json:"comments"`
}

// CommentSummary is a comment without its post reference, used inside PostComments
type CommentSummary struct {
	ID        int64     `json:"id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
