package catalog

import (
	"fmt"

	"shelf/internal/textutil"
)

const (
	StatusCheckedOut = "Checked Out"
	StatusAvailable  = "Available"
)

// Book is one catalog entry.
type Book struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	CheckedOut bool   `json:"checked_out"`
}

// NewBook returns an available book.
func NewBook(title, author string) Book {
	return Book{Title: title, Author: author}
}

// CheckOut marks the book checked out. Callers check the current state first.
func (b *Book) CheckOut() {
	b.CheckedOut = true
}

// Return marks the book available.
func (b *Book) Return() {
	b.CheckedOut = false
}

// Status returns StatusCheckedOut or StatusAvailable.
func (b Book) Status() string {
	if b.CheckedOut {
		return StatusCheckedOut
	}
	return StatusAvailable
}

// Describe renders the book as a fixed-width display line.
func (b Book) Describe() string {
	return fmt.Sprintf("%-30s %-30s %s", b.Title, b.Author, b.Status())
}

// Matches reports whether the book's title equals title ignoring case.
func (b Book) Matches(title string) bool {
	return textutil.EqualFold(b.Title, title)
}
