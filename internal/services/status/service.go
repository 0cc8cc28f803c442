package status

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/common"
	"github.com/ternarybob/scribo/internal/interfaces"
	"github.com/ternarybob/scribo/internal/models"
)

// Service reports content totals, on demand and on a cron schedule
type Service struct {
	storage interfaces.StorageManager
	config  *common.StatsConfig
	logger  arbor.ILogger
	cron    *cron.Cron
}

// NewService creates a new status service
func NewService(storage interfaces.StorageManager, config *common.StatsConfig, logger arbor.ILogger) *Service {
	return &Service{
		storage: storage,
		config:  config,
		logger:  logger,
	}
}

// Stats collects a point-in-time snapshot of content totals
func (s *Service) Stats(ctx context.Context) (*models.ContentStats, error) {
	users, err := s.storage.UserStorage().CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	posts, err := s.storage.PostStorage().CountPosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}

	comments, err := s.storage.CommentStorage().CountComments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count comments: %w", err)
	}

	return &models.ContentStats{
		Users:       users,
		Posts:       posts,
		Comments:    comments,
		CollectedAt: time.Now(),
	}, nil
}

// Start schedules the periodic stats snapshot. No-op when disabled.
func (s *Service) Start() error {
	if !s.config.Enabled {
		s.logger.Debug().Msg("Periodic stats snapshot disabled")
		return nil
	}

	// Six-field schedule (with seconds)
	s.cron = cron.New(cron.WithSeconds())

	_, err := s.cron.AddFunc(s.config.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		stats, err := s.Stats(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("Stats snapshot failed")
			return
		}

		s.logger.Info().
			Int("users", stats.Users).
			Int("posts", stats.Posts).
			Int("comments", stats.Comments).
			Msg("Content stats snapshot")
	})
	if err != nil {
		return fmt.Errorf("invalid stats schedule %q: %w", s.config.Schedule, err)
	}

	s.cron.Start()
	s.logger.Info().Str("schedule", s.config.Schedule).Msg("Stats snapshot scheduled")
	return nil
}

// Stop stops the scheduler and waits for a running snapshot to finish
func (s *Service) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
