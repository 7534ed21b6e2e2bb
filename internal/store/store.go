package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"shelf/internal/catalog"
	"shelf/internal/config"
)

var (
	ErrNotExist = errors.New("store does not exist")
	ErrCorrupt  = errors.New("store is corrupt")
)

// record is the on-disk shape of one book.
type record struct {
	Title      string `json:"title" yaml:"title"`
	Author     string `json:"author" yaml:"author"`
	CheckedOut bool   `json:"checked_out" yaml:"checked_out"`
}

const fileMode os.FileMode = 0o644

// New returns the backend for format (json, yaml, or sqlite).
func New(format string) (catalog.Persister, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case config.FormatJSON, "":
		return JSON{}, nil
	case config.FormatYAML, "yml":
		return YAML{}, nil
	case config.FormatSQLite:
		return SQLite{}, nil
	default:
		return nil, fmt.Errorf("unsupported store format %q", format)
	}
}

// ForConfig returns the backend selected by the config's store settings.
func ForConfig(cfg *config.Config) (catalog.Persister, error) {
	return New(cfg.StoreFormat())
}

func toRecords(books []catalog.Book) []record {
	records := make([]record, 0, len(books))
	for _, book := range books {
		records = append(records, record{Title: book.Title, Author: book.Author, CheckedOut: book.CheckedOut})
	}
	return records
}

func fromRecords(records []record) []catalog.Book {
	books := make([]catalog.Book, 0, len(records))
	for _, r := range records {
		books = append(books, catalog.Book{Title: r.Title, Author: r.Author, CheckedOut: r.CheckedOut})
	}
	return books
}

// readFile loads path, closing the handle on every path.
func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w", ErrNotExist, err)
		}
		return nil, fmt.Errorf("%w: open store: %w", ErrCorrupt, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat store: %w", ErrCorrupt, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrCorrupt, path)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: read store: %w", ErrCorrupt, err)
	}
	return data, nil
}
