// Package store persists the append-only business records behind the KPI
// engine in an embedded SQLite database.
//
// Rows are only ever inserted or status-flipped. Lifecycle transitions
// (customer churn, employee departure) set a timestamp column instead of
// deleting, so derived metrics can be recomputed for any past month.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// envDBPath overrides the default database location.
const envDBPath = "STARTUP_DB"

// Config holds the knobs needed to open a metrics database.
type Config struct {
	// Path is the SQLite database file. Empty falls back to DefaultPath.
	Path string
}

// DefaultPath returns the database location: $STARTUP_DB when set, otherwise
// ~/.blackroad/startup_metrics.db.
func DefaultPath() string {
	if p := os.Getenv(envDBPath); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "startup_metrics.db"
	}
	return filepath.Join(home, ".blackroad", "startup_metrics.db")
}

// Store gives access to every persisted business record. A Store is safe for
// concurrent use; all access is serialized on a single connection.
type Store struct {
	db *gorm.DB
}

// Open opens the database at cfg.Path, creating file and schema as needed.
func Open(cfg Config) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath()
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("cannot create database directory %q: %w", dir, err)
		}
	}

	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fail("open database", err)
	}

	if err := db.AutoMigrate(&Startup{}, &Customer{}, &Employee{}, &FundingRound{}, &Metric{}); err != nil {
		return nil, fail("migrate schema", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fail("open database", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Debug().Str("path", path).Msg("metrics database ready")
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
