package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
)

// CommentStorage implements interfaces.CommentStorage for MySQL
type CommentStorage struct {
	db     *MySQLDB
	logger arbor.ILogger
}

// NewCommentStorage creates a new CommentStorage instance
func NewCommentStorage(db *MySQLDB, logger arbor.ILogger) interfaces.CommentStorage {
	return &CommentStorage{
		db:     db,
		logger: logger,
	}
}

// CreateComment inserts a new comment and sets its generated ID
func (s *CommentStorage) CreateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, body, created_at, updated_at)
		VALUES (?, ?, ?, ?)
	`

	result, err := s.db.DB().ExecContext(ctx, query,
		comment.PostID,
		comment.Body,
		comment.CreatedAt,
		comment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted comment id: %w", err)
	}
	comment.ID = id

	s.logger.Info().
		Int64("id", comment.ID).
		Int64("post_id", comment.PostID).
		Msg("Comment created")

	return nil
}

// GetComment retrieves a comment by ID
func (s *CommentStorage) GetComment(ctx context.Context, id int64) (*models.Comment, error) {
	query := `
		SELECT id, post_id, body, created_at, updated_at
		FROM comments
		WHERE id = ?
	`

	row := s.db.DB().QueryRowContext(ctx, query, id)
	comment, err := scanComment(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("comment %d: %w", id, interfaces.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListComments retrieves all comments ordered by ID
func (s *CommentStorage) ListComments(ctx context.Context) ([]*models.Comment, error) {
	query := `
		SELECT id, post_id, body, created_at, updated_at
		FROM comments
		ORDER BY id
	`

	rows, err := s.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// ListCommentsByPost retrieves all comments on a post, ordered by ID
func (s *CommentStorage) ListCommentsByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	query := `
		SELECT id, post_id, body, created_at, updated_at
		FROM comments
		WHERE post_id = ?
		ORDER BY id
	`

	rows, err := s.db.DB().QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments by post: %w", err)
	}
	defer rows.Close()

	return scanComments(rows)
}

// UpdateComment updates an existing comment
func (s *CommentStorage) UpdateComment(ctx context.Context, comment *models.Comment) error {
	query := `
		UPDATE comments
		SET post_id = ?, body = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.DB().ExecContext(ctx, query,
		comment.PostID,
		comment.Body,
		comment.UpdatedAt,
		comment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("comment %d: %w", comment.ID, interfaces.ErrNotFound)
	}

	s.logger.Info().Int64("id", comment.ID).Msg("Comment updated")
	return nil
}

// DeleteComment deletes a comment by ID
func (s *CommentStorage) DeleteComment(ctx context.Context, id int64) error {
	result, err := s.db.DB().ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("comment %d: %w", id, interfaces.ErrNotFound)
	}

	s.logger.Info().Int64("id", id).Msg("Comment deleted")
	return nil
}

// CountComments returns the total number of comments
func (s *CommentStorage) CountComments(ctx context.Context) (int, error) {
	var count int
	err := s.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM comments`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count comments: %w", err)
	}
	return count, nil
}

// scanComment scans a single comment from a row
func scanComment(row *sql.Row) (*models.Comment, error) {
	var comment models.Comment
	err := row.Scan(
		&comment.ID,
		&comment.PostID,
		&comment.Body,
		&comment.CreatedAt,
		&comment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// scanComments scans multiple comments from rows
func scanComments(rows *sql.Rows) ([]*models.Comment, error) {
	var comments []*models.Comment

	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID,
			&comment.PostID,
			&comment.Body,
			&comment.CreatedAt,
			&comment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}
