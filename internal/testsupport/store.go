package testsupport

import (
	"context"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"shelf/internal/catalog"
	"shelf/internal/config"
	"shelf/internal/store"
)

func encodeTOML(cfg *config.Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// SeedStore writes books to the configured store.
func SeedStore(t testing.TB, cfg *config.Config, books ...catalog.Book) {
	t.Helper()

	persister, err := store.ForConfig(cfg)
	if err != nil {
		t.Fatalf("store.ForConfig: %v", err)
	}
	if err := persister.Save(context.Background(), cfg.Store.Path, books); err != nil {
		t.Fatalf("seed store: %v", err)
	}
}

// LoadStore reads the configured store back.
func LoadStore(t testing.TB, cfg *config.Config) []catalog.Book {
	t.Helper()

	persister, err := store.ForConfig(cfg)
	if err != nil {
		t.Fatalf("store.ForConfig: %v", err)
	}
	books, err := persister.Load(context.Background(), cfg.Store.Path)
	if err != nil {
		t.Fatalf("load store: %v", err)
	}
	return books
}
