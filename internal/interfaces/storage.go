package interfaces

import (
	"context"

	"github.com/ternarybob/scribo/internal/models"
)

// UserStorage - interface for user persistence
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int, error)
}

// PostStorage - interface for post persistence
type PostStorage interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	ListPosts(ctx context.Context) ([]*models.Post, error)
	ListPostsByUser(ctx context.Context, userID int64) ([]*models.Post, error)
	UpdatePost(ctx context.Context, post *models.Post) error
	DeletePost(ctx context.Context, id int64) error
	CountPosts(ctx context.Context) (int, error)
}

// CommentStorage - interface for comment persistence
type CommentStorage interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetComment(ctx context.Context, id int64) (*models.Comment, error)
	ListComments(ctx context.Context) ([]*models.Comment, error)
	ListCommentsByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	UpdateComment(ctx context.Context, comment *models.Comment) error
	DeleteComment(ctx context.Context, id int64) error
	CountComments(ctx context.Context) (int, error)
}

// StorageManager provides access to all storage implementations
type StorageManager interface {
	UserStorage() UserStorage
	PostStorage() PostStorage
	CommentStorage() CommentStorage
	Ping(ctx context.Context) error
	Close() error
}
