// Package main hosts the shelf CLI entrypoint and command graph.
//
// Running shelf with no subcommand opens the interactive menu. The one-shot
// subcommands (add, remove, find, checkout, return, list, backup) lock the
// store, load it, apply one change, and save it again, which makes them easy
// to script. Configuration resolution, session logging, and store locking
// live in commandContext so each command only deals with the catalog.
//
// Keep this package lean: catalog rules belong in internal/catalog and
// persistence in internal/store.
package main
