package mysql

import (
	"context"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/common"
	"github.com/ternarybob/scribo/internal/interfaces"
)

// Manager implements interfaces.StorageManager for MySQL
type Manager struct {
	db       *MySQLDB
	users    interfaces.UserStorage
	posts    interfaces.PostStorage
	comments interfaces.CommentStorage
	logger   arbor.ILogger
}

// NewManager opens the database and wires up per-entity storage
func NewManager(logger arbor.ILogger, config *common.MySQLConfig) (*Manager, error) {
	db, err := NewMySQLDB(logger, config)
	if err != nil {
		return nil, err
	}

	return &Manager{
		db:       db,
		users:    NewUserStorage(db, logger),
		posts:    NewPostStorage(db, logger),
		comments: NewCommentStorage(db, logger),
		logger:   logger,
	}, nil
}

// UserStorage returns the user storage
func (m *Manager) UserStorage() interfaces.UserStorage {
	return m.users
}

// PostStorage returns the post storage
func (m *Manager) PostStorage() interfaces.PostStorage {
	return m.posts
}

// CommentStorage returns the comment storage
func (m *Manager) CommentStorage() interfaces.CommentStorage {
	return m.comments
}

// Ping verifies the database connection is alive
func (m *Manager) Ping(ctx context.Context) error {
	return m.db.Ping(ctx)
}

// Close closes the database connection
func (m *Manager) Close() error {
	return m.db.Close()
}
