package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// User represents a registered author
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,max=255"`
	Email     string    `json:"email" validate:"required,email,max=255"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate validates the user using go-playground/validator
func (u *User) Validate() error {
	validate := validator.New()
	return validate.Struct(u)
}

// UserPosts is the composite view returned by GET /users/{id}/posts
type UserPosts struct {
	User  *User          `json:"user"`
	Posts []*PostSummary `json:"posts"`
}

// PostSummary is a post without author fields, used inside UserPosts
type PostSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}
