// internal/db/db.go
//
// Database helpers for the words API.
// Responsibilities:
//   - Opening SQLite database with safe defaults (WAL, busy timeout).
//   - Applying migrations from an fs.FS of *.sql files (idempotent, recorded in _migrations).
//
// Note: This file assumes SQLite but can be adapted for other backends.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// Open opens (and creates if missing) a SQLite database file.
//
//   - Ensures parent directory exists for relative DSNs (e.g. ./data/words.db).
//   - Configures busy timeout and WAL journaling mode through the DSN.
//
// ":memory:" is accepted for tests; it is pinned to one connection so every
// query sees the same database. WAL does not apply to it.
func Open(dsn string) (*sql.DB, error) {
	if dsn == ":memory:" {
		db, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, err
		}
		db.SetMaxOpenConns(1)
		return db, nil
	}

	// Ensure directory exists for ./data/words.db, etc.
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open %s: %w", dsn, err)
	}
	return db, nil
}

// Migrate applies *.sql files found in migrations.
//
//   - Uses a _migrations table to track applied files.
//   - Executes each file in lexical order, skipping those already applied.
//   - Scripts that open their own transaction (table rebuilds) run as-is;
//     everything else is wrapped in one together with its _migrations row.
func Migrate(db *sql.DB, migrations fs.FS) error {
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS _migrations (name TEXT PRIMARY KEY);`); err != nil {
		return fmt.Errorf("create _migrations: %w", err)
	}

	var files []string
	if err := fs.WalkDir(migrations, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".sql") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(files)

	for _, f := range files {
		var done int
		err := db.QueryRow(`SELECT 1 FROM _migrations WHERE name=?`, f).Scan(&done)
		if err == nil {
			log.Debug().Str("migration", f).Msg("already applied")
			continue
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("query _migrations: %w", err)
		}

		sqlBytes, err := fs.ReadFile(migrations, f)
		if err != nil {
			return fmt.Errorf("read %s: %w", f, err)
		}
		mode, err := apply(db, f, string(sqlBytes))
		if err != nil {
			return err
		}
		log.Info().Str("migration", f).Str("tx", mode).Msg("applied")
	}
	return nil
}

// ownsTx reports whether a script manages its own transaction. SQLite
// rejects a nested BEGIN, and PRAGMA foreign_keys is a no-op inside one.
func ownsTx(script string) bool {
	s := strings.Join(strings.Fields(strings.ToUpper(script)), " ")
	return strings.Contains(s, "BEGIN TRANSACTION") ||
		strings.Contains(s, "BEGIN;") ||
		strings.Contains(s, "PRAGMA FOREIGN_KEYS=OFF") ||
		strings.Contains(s, "PRAGMA FOREIGN_KEYS = OFF")
}

// apply runs one migration and records it. It returns "script" when the
// migration managed its own transaction and "wrapped" otherwise.
func apply(db *sql.DB, name, script string) (string, error) {
	if ownsTx(script) {
		if _, err := db.Exec(script); err != nil {
			return "", fmt.Errorf("apply %s: %w", name, err)
		}
		if _, err := db.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
			return "", fmt.Errorf("record %s: %w", name, err)
		}
		return "script", nil
	}

	tx, err := db.Begin()
	if err != nil {
		return "", err
	}
	if _, err := tx.Exec(script); err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("apply %s: %w", name, err)
	}
	if _, err := tx.Exec(`INSERT INTO _migrations(name) VALUES (?)`, name); err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("record %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit %s: %w", name, err)
	}
	return "wrapped", nil
}
