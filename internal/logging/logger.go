package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"shelf/internal/config"
)

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// OutputPaths lists files to append to; "stdout" and "stderr" name the
	// standard streams. Empty means stderr.
	OutputPaths []string
	// Development forces caller information at every level.
	Development bool
	// SessionID, when set, is attached to every record as session_id.
	SessionID string
}

// New constructs a slog logger using the provided options.
func New(opts Options) (*slog.Logger, error) {
	level := parseLevel(opts.Level)
	addSource := opts.Development || level <= slog.LevelDebug

	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = "console"
	}
	if format != "console" && format != "json" {
		return nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}

	out, err := openOutputs(opts.OutputPaths)
	if err != nil {
		return nil, err
	}

	var handler slog.Handler
	if format == "json" {
		handler = newJSONHandler(out, level, addSource)
	} else {
		handler = newConsoleHandler(out, level, addSource)
	}

	if id := strings.TrimSpace(opts.SessionID); id != "" {
		handler = withStamp(handler, slog.String(FieldSessionID, id))
	}
	return slog.New(handler), nil
}

// NewFromConfig builds the session logger. Records go to a dated file under
// logging.dir so the interactive menu stays readable; without a directory
// they go to stderr.
func NewFromConfig(cfg *config.Config, sessionID string) (*slog.Logger, error) {
	if cfg == nil {
		return New(Options{SessionID: sessionID})
	}

	opts := Options{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		SessionID: sessionID,
	}
	if cfg.Logging.Dir != "" {
		opts.OutputPaths = []string{LogFilePath(cfg.Logging.Dir, time.Now())}
	}
	return New(opts)
}

// LogFilePath returns the dated log file for day inside dir.
func LogFilePath(dir string, day time.Time) string {
	return filepath.Join(dir, "shelf-"+day.Format("2006-01-02")+".log")
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func openOutputs(paths []string) (io.Writer, error) {
	seen := make(map[string]struct{}, len(paths))
	var writers []io.Writer
	for _, path := range paths {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if _, ok := seen[path]; ok {
			continue
		}
		seen[path] = struct{}{}

		switch path {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("ensure log directory: %w", err)
			}
			file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
			if err != nil {
				return nil, fmt.Errorf("open log file %s: %w", path, err)
			}
			writers = append(writers, file)
		}
	}

	switch len(writers) {
	case 0:
		return os.Stderr, nil
	case 1:
		return writers[0], nil
	default:
		return io.MultiWriter(writers...), nil
	}
}
