package comments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
)

// Service manages comments
type Service struct {
	storage     interfaces.CommentStorage
	postStorage interfaces.PostStorage
	logger      arbor.ILogger
}

// NewService creates a new comment service
func NewService(storage interfaces.CommentStorage, postStorage interfaces.PostStorage, logger arbor.ILogger) *Service {
	return &Service{
		storage:     storage,
		postStorage: postStorage,
		logger:      logger,
	}
}

// checkPost verifies the referenced post exists
func (s *Service) checkPost(ctx context.Context, postID int64) error {
	if _, err := s.postStorage.GetPost(ctx, postID); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return fmt.Errorf("post %d: %w", postID, interfaces.ErrInvalidReference)
		}
		return fmt.Errorf("failed to verify post %d: %w", postID, err)
	}
	return nil
}

// CreateComment validates and creates a new comment
func (s *Service) CreateComment(ctx context.Context, comment *models.Comment) error {
	now := time.Now()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("comment validation failed: %w", err)
	}

	if err := s.checkPost(ctx, comment.PostID); err != nil {
		return err
	}

	if err := s.storage.CreateComment(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	return nil
}

// GetComment retrieves a comment by ID
func (s *Service) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	return s.storage.GetComment(ctx, id)
}

// ListComments retrieves all comments
func (s *Service) ListComments(ctx context.Context) ([]*models.Comment, error) {
	return s.storage.ListComments(ctx)
}

// UpdateComment validates and updates an existing comment
func (s *Service) UpdateComment(ctx context.Context, comment *models.Comment) error {
	existing, err := s.storage.GetComment(ctx, comment.ID)
	if err != nil {
		return err
	}

	comment.CreatedAt = existing.CreatedAt
	comment.UpdatedAt = time.Now()

	if err := comment.Validate(); err != nil {
		return fmt.Errorf("comment validation failed: %w", err)
	}

	if comment.PostID != existing.PostID {
		if err := s.checkPost(ctx, comment.PostID); err != nil {
			return err
		}
	}

	if err := s.storage.UpdateComment(ctx, comment); err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	return nil
}

// DeleteComment deletes a comment by ID
func (s *Service) DeleteComment(ctx context.Context, id int64) error {
	return s.storage.DeleteComment(ctx, id)
}
