package db

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Store owns the exercises table. The connection is opened on first use and
// kept until Close.
type Store struct {
	path     string
	log      *slog.Logger
	logLevel logger.LogLevel

	mu   sync.Mutex
	conn *gorm.DB
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithLogLevel sets gorm's own SQL logging level. Silent by default.
func WithLogLevel(level logger.LogLevel) Option {
	return func(s *Store) {
		s.logLevel = level
	}
}

// NewStore returns a Store for the database file at path. Nothing is opened yet.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		log:      slog.Default(),
		logLevel: logger.Silent,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultPath returns the path to the SQLite database file
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".slidegym", "slidegym.db"), nil
}

// ResolvePath returns SLIDEGYM_DB_PATH if set, otherwise DefaultPath.
func ResolvePath() (string, error) {
	if p := os.Getenv("SLIDEGYM_DB_PATH"); p != "" {
		return p, nil
	}
	return DefaultPath()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Open forces the lazy connection open. Safe to call repeatedly.
func (s *Store) Open(ctx context.Context) error {
	_, err := s.db(ctx)
	return err
}

// db returns the live connection, opening it on first use. A failed open is
// not cached; the next call tries again.
func (s *Store) db(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return s.conn.WithContext(ctx), nil
	}

	conn, err := s.open(ctx)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}
	s.conn = conn
	return conn.WithContext(ctx), nil
}

func (s *Store) open(ctx context.Context) (*gorm.DB, error) {
	if s.path == "" {
		return nil, fmt.Errorf("empty database path")
	}

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	dsn := s.path + "?_pragma=busy_timeout(5000)"
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(s.logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql handle: %w", err)
	}
	// one writer, used sequentially
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrate(conn.WithContext(ctx), SchemaVersion, s.log); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	s.log.Debug("database opened", slog.String("path", s.path))
	return conn, nil
}

// Close closes the database connection if it was opened.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	sqlDB, err := s.conn.DB()
	if err != nil {
		return err
	}
	s.conn = nil
	return sqlDB.Close()
}
