package catalog

import (
	"strings"
	"testing"
)

func TestNewBookIsAvailable(t *testing.T) {
	book := NewBook("Dune", "Frank Herbert")
	if book.CheckedOut {
		t.Fatal("expected new book to be available")
	}
	if book.Status() != StatusAvailable {
		t.Fatalf("unexpected status: %q", book.Status())
	}
}

func TestBookCheckOutAndReturn(t *testing.T) {
	book := NewBook("Dune", "Frank Herbert")
	book.CheckOut()
	if !book.CheckedOut || book.Status() != StatusCheckedOut {
		t.Fatalf("expected checked out, got %+v", book)
	}
	book.Return()
	if book.CheckedOut {
		t.Fatal("expected book to be available after return")
	}
}

func TestBookDescribeUsesFixedColumns(t *testing.T) {
	book := NewBook("Dune", "Frank Herbert")
	got := book.Describe()
	want := "Dune" + strings.Repeat(" ", 26) + " " + "Frank Herbert" + strings.Repeat(" ", 17) + " Available"
	if got != want {
		t.Fatalf("unexpected describe line:\n got %q\nwant %q", got, want)
	}

	book.CheckOut()
	if !strings.HasSuffix(book.Describe(), " Checked Out") {
		t.Fatalf("expected checked out status in %q", book.Describe())
	}
}

func TestBookMatchesIgnoresCase(t *testing.T) {
	book := NewBook("Moby Dick", "Herman Melville")
	if !book.Matches("moby dick") {
		t.Fatal("expected case-insensitive match")
	}
	if book.Matches("moby") {
		t.Fatal("expected prefix not to match")
	}
}
