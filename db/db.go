package db

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/Xordas/ScreenX/logging"

	_ "github.com/mattn/go-sqlite3"
)

var logCtx = logging.PackageCtx("db")

const currentLayoutKey = "current_layout"

type SQLiteStorage struct {
	db *sql.DB
}

func NewStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db}
}

func InitDbStorage(db *sql.DB) error {
	statements := []string{
		`create table if not exists presets(
			name text primary key,
			layout text not null,
			updated_at datetime not null default (datetime('now', 'subsec')));`,
		`create table if not exists state(key text primary key, value text not null);`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			slog.ErrorContext(logCtx, "Could not initialise storage", "statement", stmt, "error", err)

			return fmt.Errorf("could not initialise storage: %w", err)
		}
	}

	return nil
}

// ConnectDB opens (creating if needed) the sqlite database at path. ":memory:" gives a
// private in-memory store.
func ConnectDB(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("could not open database %s: %w", path, err)
	}

	// every connection to :memory: would see its own empty database
	db.SetMaxOpenConns(1)

	if err := InitDbStorage(db); err != nil {
		db.Close()

		return nil, err
	}

	slog.DebugContext(logCtx, "Connected to storage", "path", path)

	return NewStorage(db), nil
}

func (s *SQLiteStorage) Close() {
	if err := s.db.Close(); err != nil {
		slog.ErrorContext(logCtx, "Could not close storage", "error", err)
	}
}
