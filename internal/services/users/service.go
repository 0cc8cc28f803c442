package users

import (
	"context"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
)

// Service manages users
type Service struct {
	storage     interfaces.UserStorage
	postStorage interfaces.PostStorage
	logger      arbor.ILogger
}

// NewService creates a new user service
func NewService(storage interfaces.UserStorage, postStorage interfaces.PostStorage, logger arbor.ILogger) *Service {
	return &Service{
		storage:     storage,
		postStorage: postStorage,
		logger:      logger,
	}
}

// CreateUser validates and creates a new user
func (s *Service) CreateUser(ctx context.Context, user *models.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := user.Validate(); err != nil {
		return fmt.Errorf("user validation failed: %w", err)
	}

	if err := s.storage.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID
func (s *Service) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.storage.GetUser(ctx, id)
}

// ListUsers retrieves all users
func (s *Service) ListUsers(ctx context.Context) ([]*models.User, error) {
	return s.storage.ListUsers(ctx)
}

// UpdateUser validates and updates an existing user. The read-then-write
// keeps a no-op update a success rather than a phantom 404.
func (s *Service) UpdateUser(ctx context.Context, user *models.User) error {
	existing, err := s.storage.GetUser(ctx, user.ID)
	if err != nil {
		return err
	}

	user.CreatedAt = existing.CreatedAt
	user.UpdatedAt = time.Now()

	if err := user.Validate(); err != nil {
		return fmt.Errorf("user validation failed: %w", err)
	}

	if err := s.storage.UpdateUser(ctx, user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// DeleteUser deletes a user. Posts and comments cascade in storage.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	return s.storage.DeleteUser(ctx, id)
}

// GetUserPosts returns a user with all of their posts
func (s *Service) GetUserPosts(ctx context.Context, id int64) (*models.UserPosts, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	posts, err := s.postStorage.ListPostsByUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for user %d: %w", id, err)
	}

	summaries := make([]*models.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, &models.PostSummary{
			ID:    p.ID,
			Title: p.Title,
			Body:  p.Body,
		})
	}

	return &models.UserPosts{
		User:  user,
		Posts: summaries,
	}, nil
}
