package logging

import (
	"context"
	"log/slog"
)

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Any("error", err)
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(NoopHandler{})
}

// NewComponentLogger tags logger with a component name. A nil logger yields
// a no-op logger.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(String(FieldComponent, component))
}

// warnDefaults fill in whatever a warning leaves out, so every WARN line says
// what happened, what to try, and what it cost.
var warnDefaults = []struct{ key, value string }{
	{FieldErrorHint, "check the log for details"},
	{FieldImpact, "operation completed with warnings"},
}

// WarnWithContext logs a warning carrying event_type, error_hint, and impact,
// injecting defaults for any of them missing from attrs.
func WarnWithContext(logger *slog.Logger, msg, eventType string, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	if !hasKey(attrs, FieldEventType) {
		attrs = append(attrs, String(FieldEventType, eventType))
	}
	for _, d := range warnDefaults {
		if !hasKey(attrs, d.key) {
			attrs = append(attrs, String(d.key, d.value))
		}
	}
	logger.LogAttrs(context.Background(), slog.LevelWarn, msg, attrs...)
}

func hasKey(attrs []slog.Attr, key string) bool {
	for _, a := range attrs {
		if a.Key == key {
			return true
		}
	}
	return false
}

// NoopHandler discards all log output.
type NoopHandler struct{}

func (NoopHandler) Enabled(context.Context, slog.Level) bool { return false }

func (NoopHandler) Handle(context.Context, slog.Record) error { return nil }

func (NoopHandler) WithAttrs([]slog.Attr) slog.Handler { return NoopHandler{} }

func (NoopHandler) WithGroup(string) slog.Handler { return NoopHandler{} }
