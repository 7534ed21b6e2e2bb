package store

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"

	"shelf/internal/catalog"
)

func sampleBooks() []catalog.Book {
	return []catalog.Book{
		{Title: "Dune", Author: "Frank Herbert", CheckedOut: true},
		{Title: "Emma", Author: "Jane Austen"},
		{Title: "", Author: ""},
		{Title: "yes", Author: "123"},
		{Title: "Straße: \"quoted\"", Author: "Ünïcode, Author"},
		{Title: "Caf\xe9", Author: "A\xff"},
	}
}

var backends = []struct {
	name      string
	persister catalog.Persister
	file      string
}{
	{"json", JSON{}, "library.json"},
	{"yaml", YAML{}, "library.yaml"},
	{"sqlite", SQLite{}, "library.db"},
}

func TestBackendsRoundTrip(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), "data", tt.file)
			want := sampleBooks()

			if err := tt.persister.Save(ctx, path, want); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := tt.persister.Load(ctx, path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !slices.Equal(got, want) {
				t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestBackendsSaveReplacesPreviousContents(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), tt.file)

			if err := tt.persister.Save(ctx, path, sampleBooks()); err != nil {
				t.Fatalf("first Save: %v", err)
			}
			second := []catalog.Book{{Title: "Ulysses", Author: "James Joyce"}}
			if err := tt.persister.Save(ctx, path, second); err != nil {
				t.Fatalf("second Save: %v", err)
			}
			got, err := tt.persister.Load(ctx, path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if !slices.Equal(got, second) {
				t.Fatalf("expected replace-all semantics, got %+v", got)
			}
		})
	}
}

func TestBackendsEmptyCollection(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			path := filepath.Join(t.TempDir(), tt.file)

			if err := tt.persister.Save(ctx, path, nil); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := tt.persister.Load(ctx, path)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if len(got) != 0 {
				t.Fatalf("expected empty collection, got %+v", got)
			}
		})
	}
}

func TestBackendsMissingStore(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)

			_, err := tt.persister.Load(context.Background(), path)
			if !errors.Is(err, ErrNotExist) || !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("expected not-exist error, got %v", err)
			}
			if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
				t.Fatalf("Load must not create the store, stat err=%v", statErr)
			}
		})
	}
}

func TestBackendsCorruptStore(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			if err := os.WriteFile(path, []byte("{{{ not a catalog"), 0o644); err != nil {
				t.Fatal(err)
			}

			_, err := tt.persister.Load(context.Background(), path)
			if !errors.Is(err, ErrCorrupt) {
				t.Fatalf("expected ErrCorrupt, got %v", err)
			}
			if errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("corrupt store must not look missing: %v", err)
			}
		})
	}
}

func TestJSONTrailingDataIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	content := `[{"title":"a","author":"b","checked_out":false}] garbage{{{`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	books, err := (JSON{}).Load(context.Background(), path)
	if !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v (books %+v)", err, books)
	}
}

func TestJSONKeepsInvalidUTF8Bytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	want := []catalog.Book{{Title: "Caf\xe9", Author: "Jane Austen"}}
	if err := (JSON{}).Save(context.Background(), path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"title_raw"`) || strings.Contains(string(data), `"author_raw"`) {
		t.Fatalf("expected raw bytes only for the invalid title:\n%s", data)
	}

	got, err := (JSON{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(got, want) {
		t.Fatalf("round trip mismatch: got %q want %q", got[0].Title, want[0].Title)
	}
}

func TestBackendsSaveUnwritableDestination(t *testing.T) {
	for _, tt := range backends {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			blocker := filepath.Join(dir, "blocker")
			if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
				t.Fatal(err)
			}
			if err := tt.persister.Save(context.Background(), filepath.Join(blocker, tt.file), sampleBooks()); err == nil {
				t.Fatal("expected error writing beneath a regular file")
			}
		})
	}
}

func TestJSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	books := []catalog.Book{
		{Title: "Dune", Author: "Frank Herbert", CheckedOut: true},
		{Title: "Emma", Author: "Jane Austen"},
	}
	if err := (JSON{}).Save(context.Background(), path, books); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	g := goldie.New(t)
	g.Assert(t, "library_json", data)
}

func TestJSONEmptyFileIsEmptyCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	books, err := (JSON{}).Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(books) != 0 {
		t.Fatalf("expected no books, got %+v", books)
	}
}

func TestSQLiteRejectsForeignDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "other.db")
	db, err := openDB(path)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec("CREATE TABLE notes (body TEXT)"); err != nil {
		t.Fatal(err)
	}
	_ = db.Close()

	if _, err := (SQLite{}).Load(ctx, path); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt for database without books table, got %v", err)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	cases := map[string]catalog.Persister{
		"":       JSON{},
		"json":   JSON{},
		"YAML":   YAML{},
		"yml":    YAML{},
		"sqlite": SQLite{},
	}
	for format, want := range cases {
		got, err := New(format)
		if err != nil {
			t.Fatalf("New(%q): %v", format, err)
		}
		if got != want {
			t.Fatalf("New(%q) = %T, want %T", format, got, want)
		}
	}
	if _, err := New("csv"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestLibraryRoundTripThroughStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "library.json")

	lib := catalog.New(JSON{}, nil)
	lib.Add(catalog.NewBook("Moby Dick", "Herman Melville"))
	lib.Add(catalog.NewBook("Dune", "Frank Herbert"))
	if _, err := lib.CheckOut("dune"); err != nil {
		t.Fatal(err)
	}
	if err := lib.Save(ctx, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	fresh := catalog.New(JSON{}, nil)
	if err := fresh.Load(ctx, path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !slices.Equal(fresh.Books(), lib.Books()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", fresh.Books(), lib.Books())
	}

	missing := catalog.New(JSON{}, nil)
	missing.Add(catalog.NewBook("Stale", "Entry"))
	err := missing.Load(ctx, filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, catalog.ErrStoreUnavailable) || errors.Is(err, catalog.ErrStoreCorrupt) {
		t.Fatalf("expected plain unavailable error, got %v", err)
	}
	if missing.Len() != 0 {
		t.Fatal("expected empty library after failed load")
	}
}
