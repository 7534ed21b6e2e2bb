// Package store persists a catalog to a single file.
//
// Three backends implement catalog.Persister:
//
//   - JSON: an indented array of {title, author, checked_out} objects.
//   - YAML: the same records as a YAML sequence.
//   - SQLite: a books table keyed by position.
//
// Every Save rewrites the whole collection. The file backends write a temp
// file beside the target and rename it into place; the SQLite backend
// replaces all rows inside one transaction. Load never creates a missing
// store and reports ErrNotExist (which also matches fs.ErrNotExist) or
// ErrCorrupt.
//
// Lock guards a store path for the length of a CLI session so two shells
// cannot interleave whole-file rewrites.
package store
