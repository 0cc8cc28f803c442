package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Comment represents a reader comment on a post
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id" validate:"required,gt=0"`
	Body      string    `json:"body" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate validates the comment using go-playground/validator
func (c *Comment) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}
