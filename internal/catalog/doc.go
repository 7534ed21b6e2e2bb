// Package catalog holds the in-memory book collection and its checkout rules.
//
// A Library owns an ordered slice of Book values. Lookups are linear and
// case-insensitive on the title; duplicate titles are allowed, Remove drops
// every match while Find, CheckOut, and Return act on the first one.
//
// Persistence is delegated to a Persister (see internal/store). Save and Load
// always move the whole collection: Load replaces the slice, Save rewrites the
// destination. Errors are sentinel values that callers test with errors.Is and
// turn into user-facing text with Message.
package catalog
