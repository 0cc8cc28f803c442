package posts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
)

// Service manages posts
type Service struct {
	storage        interfaces.PostStorage
	userStorage    interfaces.UserStorage
	commentStorage interfaces.CommentStorage
	logger         arbor.ILogger
}

// NewService creates a new post service
func NewService(storage interfaces.PostStorage, userStorage interfaces.UserStorage, commentStorage interfaces.CommentStorage, logger arbor.ILogger) *Service {
	return &Service{
		storage:        storage,
		userStorage:    userStorage,
		commentStorage: commentStorage,
		logger:         logger,
	}
}

// checkAuthor verifies the referenced user exists
func (s *Service) checkAuthor(ctx context.Context, userID int64) error {
	if _, err := s.userStorage.GetUser(ctx, userID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return fmt.Errorf("user %d: %w", userID, interfaces.ErrInvalidReference)
		}
		return fmt.Errorf("failed to verify user %d: %w", userID, err)
	}
	return nil
}

// CreatePost validates and creates a new post
func (s *Service) CreatePost(ctx context.Context, post *models.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	if err := post.Validate(); err != nil {
		return fmt.Errorf("post validation failed: %w", err)
	}

	if err := s.checkAuthor(ctx, post.UserID); err != nil {
		return err
	}

	if err := s.storage.CreatePost(ctx, post); err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	return nil
}

// GetPost retrieves a post by ID
func (s *Service) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	return s.storage.GetPost(ctx, id)
}

// ListPosts retrieves all posts
func (s *Service) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.storage.ListPosts(ctx)
}

// UpdatePost validates and updates an existing post
func (s *Service) UpdatePost(ctx context.Context, post *models.Post) error {
	existing, err := s.storage.GetPost(ctx, post.ID)
	if err != nil {
		return err
	}

	post.CreatedAt = existing.CreatedAt
	post.UpdatedAt = time.Now()

	if err := post.Validate(); err != nil {
		return fmt.Errorf("post validation failed: %w", err)
	}

	if post.UserID != existing.UserID {
		if err := s.checkAuthor(ctx, post.UserID); err != nil {
			return err
		}
	}

	if err := s.storage.UpdatePost(ctx, post); err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	return nil
}

// DeletePost deletes a post. Comments cascade in storage.
func (s *Service) DeletePost(ctx context.Context, id int64) error {
	return s.storage.DeletePost(ctx, id)
}

// GetPostComments returns a post with all of its comments
func (s *Service) GetPostComments(ctx context.Context, id int64) (*models.PostComments, error) {
	post, err := s.storage.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentStorage.ListCommentsByPost(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments for post %d: %w", id, err)
	}

	summaries := make([]*models.CommentSummary, 0, len(comments))
	for _, c := range comments {
		summaries = append(summaries, &models.CommentSummary{
			ID:        c.ID,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}

	return &models.PostComments{
		Post:     post,
		Comments: summaries,
	}, nil
}
