package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
)

// FieldSessionID identifies one shelf invocation across its log records.
const FieldSessionID = "session_id"

func newJSONHandler(w io.Writer, level slog.Leveler, addSource bool) slog.Handler {
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		AddSource:   addSource,
		ReplaceAttr: shortJSONKeys,
	})
}

// shortJSONKeys renames the built-in keys to ts/level/msg, lowercases the
// level, and trims source to file:line.
func shortJSONKeys(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey:
		attr.Key = "ts"
		if attr.Value.Kind() == slog.KindTime {
			attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
		}
	case slog.LevelKey:
		attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
		}
	}
	return attr
}

// stampHandler appends fixed attributes to every record at handle time.
type stampHandler struct {
	base  slog.Handler
	stamp []slog.Attr
}

func withStamp(base slog.Handler, stamp ...slog.Attr) slog.Handler {
	if base == nil {
		return NoopHandler{}
	}
	if len(stamp) == 0 {
		return base
	}
	return &stampHandler{base: base, stamp: stamp}
}

func (h *stampHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

func (h *stampHandler) Handle(ctx context.Context, record slog.Record) error {
	record = record.Clone()
	record.AddAttrs(h.stamp...)
	return h.base.Handle(ctx, record)
}

func (h *stampHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &stampHandler{base: h.base.WithAttrs(attrs), stamp: h.stamp}
}

func (h *stampHandler) WithGroup(name string) slog.Handler {
	return &stampHandler{base: h.base.WithGroup(name), stamp: h.stamp}
}
