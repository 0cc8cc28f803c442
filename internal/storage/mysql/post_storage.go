package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
)

// PostStorage implements interfaces.PostStorage for MySQL
type PostStorage struct {
	db     *MySQLDB
	logger arbor.ILogger
}

// NewPostStorage creates a new PostStorage instance
func NewPostStorage(db *MySQLDB, logger arbor.ILogger) interfaces.PostStorage {
	return &PostStorage{
		db:     db,
		logger: logger,
	}
}

// CreatePost inserts a new post and sets its generated ID
func (s *PostStorage) CreatePost(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (user_id, title, body, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.DB().ExecContext(ctx, query,
		post.UserID,
		post.Title,
		post.Body,
		post.CreatedAt,
		post.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted post id: %w", err)
	}
	post.ID = id

	s.logger.Info().
		Int64("id", post.ID).
		Int64("user_id", post.UserID).
		Msg("Post created")

	return nil
}

// GetPost retrieves a post by ID
func (s *PostStorage) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		SELECT id, user_id, title, body, created_at, updated_at
		FROM posts
		WHERE id = ?
	`

	row := s.db.DB().QueryRowContext(ctx, query, id)
	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("post %d: %w", id, interfaces.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPosts retrieves all posts ordered by ID
func (s *PostStorage) ListPosts(ctx context.Context) ([]*models.Post, error) {
	query := `
		SELECT id, user_id, title, body, created_at, updated_at
		FROM posts
		ORDER BY id
	`

	rows, err := s.db.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// ListPostsByUser retrieves all posts written by a user, ordered by ID
func (s *PostStorage) ListPostsByUser(ctx context.Context, userID int64) ([]*models.Post, error) {
	query := `
		SELECT id, user_id, title, body, created_at, updated_at
		FROM posts
		WHERE user_id = ?
		ORDER BY id
	`

	rows, err := s.db.DB().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by user: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// UpdatePost updates an existing post
func (s *PostStorage) UpdatePost(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts
		SET user_id = ?, title = ?, body = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := s.db.DB().ExecContext(ctx, query,
		post.UserID,
		post.Title,
		post.Body,
		post.UpdatedAt,
		post.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", post.ID, interfaces.ErrNotFound)
	}

	s.logger.Info().Int64("id", post.ID).Msg("Post updated")
	return nil
}

// DeletePost deletes a post by ID
func (s *PostStorage) DeletePost(ctx context.Context, id int64) error {
	result, err := s.db.DB().ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("post %d: %w", id, interfaces.ErrNotFound)
	}

	s.logger.Info().Int64("id", id).Msg("Post deleted")
	return nil
}

// CountPosts returns the total number of posts
func (s *PostStorage) CountPosts(ctx context.Context) (int, error) {
	var count int
	err := s.db.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}

// scanPost scans a single post from a row
func scanPost(row *sql.Row) (*models.Post, error) {
	var post models.Post
	err := row.Scan(
		&post.ID,
		&post.UserID,
		&post.Title,
		&post.Body,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// scanPosts scans multiple posts from rows
func scanPosts(rows *sql.Rows) ([]*models.Post, error) {
	var posts []*models.Post

	for rows.Next() {
		var post models.Post
		err := rows.Scan(
			&post.ID,
			&post.UserID,
			&post.Title,
			&post.Body,
			&post.CreatedAt,
			&post.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}
