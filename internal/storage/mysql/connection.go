package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/scribo/internal/common"
)

// MySQLDB manages the MySQL database connection
type MySQLDB struct {
	db     *sql.DB
	logger arbor.ILogger
	config *common.MySQLConfig
}

// NewMySQLDB opens a MySQL connection, waits for the server to accept
// connections, and runs migrations
func NewMySQLDB(logger arbor.ILogger, config *common.MySQLConfig) (*MySQLDB, error) {
	dsn := buildDSN(config)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &MySQLDB{
		db:     db,
		logger: logger,
		config: config,
	}

	if err := s.configure(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	if err := s.waitForReady(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("database not reachable: %w", err)
	}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info().
		Str("host", config.Host).
		Str("database", config.Database).
		Msg("MySQL database initialized")
	return s, nil
}

// buildDSN builds the driver DSN from configuration
func buildDSN(config *common.MySQLConfig) string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = fmt.Sprintf("%s:%d", config.Host, config.Port)
	cfg.User = config.User
	cfg.Passwd = config.Password
	cfg.DBName = config.Database
	cfg.ParseTime = true // Scan DATETIME columns into time.Time
	cfg.MultiStatements = true
	// RowsAffected reports matched rows, so an update to identical values is
	// not mistaken for a missing row
	cfg.ClientFoundRows = true
	return cfg.FormatDSN()
}

// configure sets up the connection pool
func (s *MySQLDB) configure() error {
	if s.config.MaxOpenConns > 0 {
		s.db.SetMaxOpenConns(s.config.MaxOpenConns)
	}
	if s.config.MaxIdleConns > 0 {
		s.db.SetMaxIdleConns(s.config.MaxIdleConns)
	}

	if s.config.ConnMaxLifetime != "" {
		lifetime, err := time.ParseDuration(s.config.ConnMaxLifetime)
		if err != nil {
			return fmt.Errorf("invalid conn_max_lifetime %q: %w", s.config.ConnMaxLifetime, err)
		}
		s.db.SetConnMaxLifetime(lifetime)
	}

	return nil
}

// waitForReady pings the server until it accepts connections or attempts run out.
// The database container usually starts alongside this one, so the first pings
// are expected to fail.
func (s *MySQLDB) waitForReady(ctx context.Context) error {
	attempts := s.config.StartupAttempts
	if attempts <= 0 {
		attempts = 1
	}

	delay := time.Second
	if s.config.StartupDelay != "" {
		d, err := time.ParseDuration(s.config.StartupDelay)
		if err != nil {
			return fmt.Errorf("invalid startup_delay %q: %w", s.config.StartupDelay, err)
		}
		delay = d
	}

	var lastErr error
	for i := 0; i < attempts; i++ {
		if lastErr = s.db.PingContext(ctx); lastErr == nil {
			if i > 0 {
				s.logger.Info().Int("attempts", i+1).Msg("Database became reachable")
			}
			return nil
		}

		s.logger.Debug().
			Err(lastErr).
			Int("attempt", i+1).
			Int("max_attempts", attempts).
			Msg("Database not ready, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("after %d attempts: %w", attempts, lastErr)
}

// DB returns the underlying sql.DB
func (s *MySQLDB) DB() *sql.DB {
	return s.db
}

// Ping verifies the connection is still alive
func (s *MySQLDB) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the database connection
func (s *MySQLDB) Close() error {
	s.logger.Debug().Msg("Closing MySQL connection")
	return s.db.Close()
}
