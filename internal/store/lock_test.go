package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestAcquireIsExclusive(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "data", "library.json")

	first, err := Acquire(storePath)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if first.Path() != storePath+".lock" {
		t.Fatalf("unexpected lock path %q", first.Path())
	}

	if _, err := Acquire(storePath); !errors.Is(err, ErrLocked) {
		t.Fatalf("expected ErrLocked while held, got %v", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}

	second, err := Acquire(storePath)
	if err != nil {
		t.Fatalf("Acquire after release: %v", err)
	}
	defer second.Release()
}

func TestReleaseNilLock(t *testing.T) {
	var lock *Lock
	if err := lock.Release(); err != nil {
		t.Fatalf("Release on nil lock: %v", err)
	}
}
