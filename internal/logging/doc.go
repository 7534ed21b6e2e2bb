// Package logging assembles structured slog loggers used across shelf.
//
// It owns the console and JSON handlers, level parsing, output plumbing, a
// session handler that stamps every record with the CLI session id, and log
// retention. The package also provides a no-op logger for tests and wiring
// code that cannot fail.
package logging
