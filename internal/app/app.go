package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/common"
	"github.com/ternarybob/scribo/internal/handlers"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/services/comments"
	"github.com/ternarybob/scribo/internal/services/posts"
	"github.com/ternarybob/scribo/internal/services/status"
	"github.com/ternarybob/scribo/internal/services/users"
	"github.com/ternarybob/scribo/internal/storage"
)

// App holds all application components and dependencies
type App struct {
	Config         *common.Config
	Logger         arbor.ILogger
	StorageManager interfaces.StorageManager

	// Domain services
	UserService    *users.Service
	PostService    *posts.Service
	CommentService *comments.Service
	StatusService  *status.Service

	// HTTP handlers
	APIHandler     *handlers.APIHandler
	UserHandler    *handlers.UserHandler
	PostHandler    *handlers.PostHandler
	CommentHandler *handlers.CommentHandler
	StatusHandler  *handlers.StatusHandler
}

// New initializes all application components in dependency order
func New(config *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: config,
		Logger: logger,
	}

	// Storage (blocks until the database is reachable and migrated)
	storageManager, err := storage.NewStorageManager(logger, config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.StorageManager = storageManager

	// Services
	a.UserService = users.NewService(
		storageManager.UserStorage(),
		storageManager.PostStorage(),
		logger,
	)
	a.PostService = posts.NewService(
		storageManager.PostStorage(),
		storageManager.UserStorage(),
		storageManager.CommentStorage(),
		logger,
	)
	a.CommentService = comments.NewService(
		storageManager.CommentStorage(),
		storageManager.PostStorage(),
		logger,
	)
	a.StatusService = status.NewService(storageManager, &config.Stats, logger)

	if err := a.StatusService.Start(); err != nil {
		storageManager.Close()
		return nil, fmt.Errorf("failed to start status service: %w", err)
	}

	// Handlers
	a.APIHandler = handlers.NewAPIHandler(storageManager)
	a.UserHandler = handlers.NewUserHandler(a.UserService, logger)
	a.PostHandler = handlers.NewPostHandler(a.PostService, logger)
	a.CommentHandler = handlers.NewCommentHandler(a.CommentService, logger)
	a.StatusHandler = handlers.NewStatusHandler(a.StatusService, logger)

	logger.Info().Msg("Application initialized")
	return a, nil
}

// Close releases application resources
func (a *App) Close() {
	if a.StatusService != nil {
		a.StatusService.Stop()
	}

	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("Failed to close storage")
		}
	}

	a.Logger.Info().Msg("Application closed")
}
