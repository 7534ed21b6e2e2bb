package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"shelf/internal/catalog"
)

const booksSchema = `
CREATE TABLE IF NOT EXISTS books (
	position    INTEGER PRIMARY KEY,
	title       TEXT    NOT NULL,
	author      TEXT    NOT NULL,
	checked_out INTEGER NOT NULL DEFAULT 0
)`

// SQLite stores the catalog in a books table ordered by position.
type SQLite struct{}

func ensureContext(ctx context.Context) context.Context {
	if ctx != nil {
		return ctx
	}
	return context.Background()
}

func openDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// One connection keeps the transaction and pragmas on the same handle.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragma: %w", err)
	}
	return db, nil
}

func (SQLite) Save(ctx context.Context, path string, books []catalog.Book) error {
	ctx = ensureContext(ctx)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	db, err := openDB(path)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, booksSchema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM books"); err != nil {
		return fmt.Errorf("clear books: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT INTO books (position, title, author, checked_out) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range toRecords(books) {
		if _, err := stmt.ExecContext(ctx, i, r.Title, r.Author, r.CheckedOut); err != nil {
			return fmt.Errorf("insert book %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (SQLite) Load(ctx context.Context, path string) ([]catalog.Book, error) {
	ctx = ensureContext(ctx)
	// sql.Open would create an empty database, so check first.
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotExist, err)
		}
		return nil, fmt.Errorf("%w: stat store: %w", ErrCorrupt, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrCorrupt, path)
	}

	db, err := openDB(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	defer db.Close()

	var tables int
	if err := db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='books'",
	).Scan(&tables); err != nil {
		return nil, fmt.Errorf("%w: inspect %s: %w", ErrCorrupt, path, err)
	}
	if tables == 0 {
		return nil, fmt.Errorf("%w: %s has no books table", ErrCorrupt, path)
	}

	rows, err := db.QueryContext(ctx, "SELECT title, author, checked_out FROM books ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("%w: query books: %w", ErrCorrupt, err)
	}
	defer rows.Close()

	records := []record{}
	for rows.Next() {
		var r record
		if err := rows.Scan(&r.Title, &r.Author, &r.CheckedOut); err != nil {
			return nil, fmt.Errorf("%w: scan book: %w", ErrCorrupt, err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read books: %w", ErrCorrupt, err)
	}
	return fromRecords(records), nil
}
