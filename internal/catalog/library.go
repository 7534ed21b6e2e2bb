package catalog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"

	"shelf/internal/logging"
)

// Persister moves a whole collection to and from a persisted store.
type Persister interface {
	Save(ctx context.Context, path string, books []Book) error
	Load(ctx context.Context, path string) ([]Book, error)
}

// Library is the ordered collection of books for one session.
// It is not safe for concurrent use.
type Library struct {
	books     []Book
	persister Persister
	logger    *slog.Logger
}

// New returns an empty library. A nil persister makes Save and Load fail with
// the store sentinels; a nil logger discards output.
func New(persister Persister, logger *slog.Logger) *Library {
	return &Library{
		persister: persister,
		logger:    logging.NewComponentLogger(logger, "catalog"),
	}
}

// Add appends book to the collection.
func (l *Library) Add(book Book) {
	l.books = append(l.books, book)
	l.logger.Debug("book added",
		logging.String(logging.FieldEventType, "book_added"),
		logging.String("title", book.Title),
		logging.String("author", book.Author))
}

// Remove drops every book whose title matches and returns how many were removed.
func (l *Library) Remove(title string) int {
	kept := l.books[:0]
	for _, book := range l.books {
		if !book.Matches(title) {
			kept = append(kept, book)
		}
	}
	removed := len(l.books) - len(kept)
	clear(l.books[len(kept):])
	l.books = kept
	if removed > 0 {
		l.logger.Debug("books removed",
			logging.String(logging.FieldEventType, "book_removed"),
			logging.String("title", title),
			logging.Int("count", removed))
	}
	return removed
}

// Find returns the first book whose title matches.
func (l *Library) Find(title string) (*Book, error) {
	for i := range l.books {
		if l.books[i].Matches(title) {
			return &l.books[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, title)
}

// CheckOut marks the first matching book checked out and returns it.
func (l *Library) CheckOut(title string) (Book, error) {
	book, err := l.Find(title)
	if err != nil {
		return Book{}, err
	}
	if book.CheckedOut {
		return *book, fmt.Errorf("%w: %q", ErrAlreadyCheckedOut, book.Title)
	}
	book.CheckOut()
	l.logger.Info("book checked out",
		logging.String(logging.FieldEventType, "book_checked_out"),
		logging.String("title", book.Title))
	return *book, nil
}

// Return marks the first matching book available and returns it.
func (l *Library) Return(title string) (Book, error) {
	book, err := l.Find(title)
	if err != nil {
		return Book{}, err
	}
	if !book.CheckedOut {
		return *book, fmt.Errorf("%w: %q", ErrNotCheckedOut, book.Title)
	}
	book.Return()
	l.logger.Info("book returned",
		logging.String(logging.FieldEventType, "book_returned"),
		logging.String("title", book.Title))
	return *book, nil
}

// ListAll yields one Describe line per book in collection order. It returns
// ErrEmpty instead of an empty sequence when there are no books.
func (l *Library) ListAll() (iter.Seq[string], error) {
	if len(l.books) == 0 {
		return nil, ErrEmpty
	}
	return func(yield func(string) bool) {
		for _, book := range l.books {
			if !yield(book.Describe()) {
				return
			}
		}
	}, nil
}

// Books returns a copy of the collection in order.
func (l *Library) Books() []Book {
	out := make([]Book, len(l.books))
	copy(out, l.books)
	return out
}

// Len returns the number of books, duplicates included.
func (l *Library) Len() int {
	return len(l.books)
}

// Save writes the whole collection to path.
func (l *Library) Save(ctx context.Context, path string) error {
	if l.persister == nil {
		return fmt.Errorf("%w: no persister configured", ErrStoreWrite)
	}
	if err := l.persister.Save(ctx, path, l.Books()); err != nil {
		logging.WarnWithContext(l.logger, "library save failed", "library_save_failed",
			logging.String("path", path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check that the data directory is writable"),
			logging.String(logging.FieldImpact, "changes from this session are not persisted"))
		return fmt.Errorf("%w: %w", ErrStoreWrite, err)
	}
	l.logger.Info("library saved",
		logging.String(logging.FieldEventType, "library_saved"),
		logging.String("path", path),
		logging.Int("book_count", len(l.books)))
	return nil
}

// Load replaces the collection with the contents of path. On failure the
// collection is left empty; missing and unreadable stores both match
// ErrStoreUnavailable. A cancelled ctx is returned as is.
func (l *Library) Load(ctx context.Context, path string) error {
	l.books = nil
	if l.persister == nil {
		return fmt.Errorf("%w: no persister configured", ErrStoreUnavailable)
	}
	books, err := l.persister.Load(ctx, path)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if err != nil {
		marker := ErrStoreCorrupt
		if errors.Is(err, fs.ErrNotExist) {
			marker = ErrStoreUnavailable
		}
		logging.WarnWithContext(l.logger, "library load failed", "library_load_failed",
			logging.String("path", path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "a new store is written on the next save"),
			logging.String(logging.FieldImpact, "session starts with an empty library"))
		return fmt.Errorf("%w: %w", marker, err)
	}
	l.books = books
	l.logger.Info("library loaded",
		logging.String(logging.FieldEventType, "library_loaded"),
		logging.String("path", path),
		logging.Int("book_count", len(books)))
	return nil
}
