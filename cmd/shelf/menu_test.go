package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"shelf/internal/catalog"
	"shelf/internal/testsupport"
)

func menuInput(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestMenuSessionSavesOnExit(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, menuInput(
		"1", "Dune", "Frank Herbert",
		"3", "dune",
		"3", "Dune",
		"5",
		"6",
	))
	if err != nil {
		t.Fatalf("menu: %v", err)
	}

	requireContains(t, out, "No existing library data found. Starting with an empty library.")
	requireContains(t, out, "Library Management System")
	requireContains(t, out, "6. Save and Exit")
	requireContains(t, out, "Book added successfully.")
	requireContains(t, out, "You have checked out: Dune")
	requireContains(t, out, "Book is already checked out.")
	requireContains(t, out, "Library data saved. Exiting.")
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("expected no color codes when output is not a terminal: %q", out)
	}

	books := testsupport.LoadStore(t, env.cfg)
	want := []catalog.Book{{Title: "Dune", Author: "Frank Herbert", CheckedOut: true}}
	if !slices.Equal(books, want) {
		t.Fatalf("unexpected stored books %+v", books)
	}
}

func TestMenuIsDefaultCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.SeedStore(t, env.cfg, catalog.NewBook("Emma", "Jane Austen"))

	out, _, err := env.run(t, menuInput("5", "6"))
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireNotContains(t, out, "Starting with an empty library")
	requireContains(t, out, "Emma")
	requireContains(t, out, "Available")

	out, _, err = env.run(t, menuInput("6"), "menu")
	if err != nil {
		t.Fatalf("menu subcommand: %v", err)
	}
	requireContains(t, out, "Library data saved. Exiting.")
}

func TestMenuEndOfInputDoesNotSave(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := env.run(t, menuInput("1", "Dune", "Frank Herbert"))
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Book added successfully.")

	if _, err := os.Stat(env.cfg.Store.Path); !os.IsNotExist(err) {
		t.Fatalf("expected no store without explicit save, stat err=%v", err)
	}
}

func TestMenuAutosave(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithAutosave(true))

	if _, _, err := env.run(t, menuInput("1", "Dune", "Frank Herbert")); err != nil {
		t.Fatalf("menu: %v", err)
	}
	books := testsupport.LoadStore(t, env.cfg)
	if len(books) != 1 || books[0].Title != "Dune" {
		t.Fatalf("expected autosaved book, got %+v", books)
	}
}

func TestMenuSaveOnExitDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithSaveOnExit(false))

	out, _, err := env.run(t, menuInput("1", "Dune", "Frank Herbert", "6"))
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Exiting without saving.")
	if _, err := os.Stat(env.cfg.Store.Path); !os.IsNotExist(err) {
		t.Fatalf("expected no store, stat err=%v", err)
	}
}

func TestMenuMessages(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.SeedStore(t, env.cfg, catalog.NewBook("Dune", "Frank Herbert"))

	out, _, err := env.run(t, menuInput(
		"9",
		"abc",
		"4", "Dune",
		"4", "Emma",
		"2", "dune",
		"5",
		"6",
	))
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	if strings.Count(out, "Invalid choice. Please try again.") != 2 {
		t.Fatalf("expected two invalid choice messages in %q", out)
	}
	requireContains(t, out, "Book was not checked out.")
	requireContains(t, out, "Book not found.")
	requireContains(t, out, "Book removed successfully.")
	requireContains(t, out, "No books in the library.")

	if books := testsupport.LoadStore(t, env.cfg); len(books) != 0 {
		t.Fatalf("expected empty store after remove and save, got %+v", books)
	}
}

func TestMenuCorruptStoreStartsEmpty(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.MkdirAll(filepath.Dir(env.cfg.Store.Path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(env.cfg.Store.Path, []byte("[{"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, _, err := env.run(t, menuInput("5"))
	if err != nil {
		t.Fatalf("menu: %v", err)
	}
	requireContains(t, out, "Library data is unreadable. Starting with an empty library.")
	requireContains(t, out, "No books in the library.")
}
