package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("book not found")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrAlreadyCheckedOut = fmt.Errorf("%w: already checked out", ErrInvalidTransition)
	ErrNotCheckedOut     = fmt.Errorf("%w: not checked out", ErrInvalidTransition)
	ErrEmpty             = errors.New("library is empty")
	ErrStoreUnavailable  = errors.New("library data unavailable")
	ErrStoreCorrupt      = fmt.Errorf("%w: corrupt data", ErrStoreUnavailable)
	ErrStoreWrite        = errors.New("library data write failed")
)

// Message maps an error from this package to the text shown to the user.
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotFound):
		return "Book not found."
	case errors.Is(err, ErrAlreadyCheckedOut):
		return "Book is already checked out."
	case errors.Is(err, ErrNotCheckedOut):
		return "Book was not checked out."
	case errors.Is(err, ErrEmpty):
		return "No books in the library."
	case errors.Is(err, ErrStoreCorrupt):
		return "Library data is unreadable. Starting with an empty library."
	case errors.Is(err, ErrStoreUnavailable):
		return "No existing library data found. Starting with an empty library."
	case errors.Is(err, ErrStoreWrite):
		return "Error saving library data."
	default:
		return err.Error()
	}
}
