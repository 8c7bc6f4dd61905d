// Package sqlitecheck verifies that a sqlite database file can be used before the console is
// started against it.
package sqlitecheck

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anyproto/any-sync/app/logger"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

const CName = "launcher.sqlitecheck"

var log = logger.NewNamed(CName)

var ErrEmptyPath = errors.New("empty database path")

// Check creates the parent directory when needed, opens the database, pings it and runs a quick
// integrity check. The file is created if it does not exist yet.
func Check(ctx context.Context, path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return ErrEmptyPath
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory %q: %w", dir, err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close sqlite database", zap.String("path", path), zap.Error(err))
		}
	}()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to verify database connection: %w", err)
	}

	var result string
	if err := db.QueryRowContext(ctx, "PRAGMA quick_check").Scan(&result); err != nil {
		return fmt.Errorf("quick check: %w", err)
	}
	if result != "ok" {
		return fmt.Errorf("quick check: %s", result)
	}

	log.Debug("sqlite database is usable", zap.String("path", path))
	return nil
}
