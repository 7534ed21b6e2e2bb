package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// consoleHandler writes one line per record:
//
//	2026-10-18T15:30:00Z INFO catalog: book returned title="Moby Dick"
//
// The component attribute becomes the line prefix instead of a key=value pair.
type consoleHandler struct {
	out       *syncWriter
	level     slog.Leveler
	addSource bool
	component string
	// preformatted holds attrs added through WithAttrs, already rendered.
	preformatted string
	group        string
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.w.Write(p)
	return err
}

func newConsoleHandler(w io.Writer, level slog.Leveler, addSource bool) *consoleHandler {
	return &consoleHandler{out: &syncWriter{w: w}, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	var buf bytes.Buffer
	buf.WriteString(ts.UTC().Format(time.RFC3339))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(record.Level))
	buf.WriteByte(' ')

	component := h.component
	var attrs bytes.Buffer
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == FieldComponent && h.group == "" {
			if component == "" {
				component = attr.Value.String()
			}
			return true
		}
		appendAttr(&attrs, h.group, attr)
		return true
	})

	if component != "" {
		buf.WriteString(component)
		buf.WriteString(": ")
	}
	if msg := strings.TrimSpace(record.Message); msg != "" {
		buf.WriteString(msg)
	} else {
		buf.WriteString("(no message)")
	}
	if h.addSource {
		if src := record.Source(); src != nil && src.File != "" {
			fmt.Fprintf(&buf, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	buf.WriteString(h.preformatted)
	buf.Write(attrs.Bytes())
	buf.WriteByte('\n')

	return h.out.write(buf.Bytes())
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	var buf bytes.Buffer
	for _, attr := range attrs {
		if attr.Key == FieldComponent && h.group == "" {
			clone.component = attr.Value.String()
			continue
		}
		appendAttr(&buf, h.group, attr)
	}
	clone.preformatted += buf.String()
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.group = joinKey(h.group, name)
	return &clone
}

func appendAttr(buf *bytes.Buffer, group string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}
	if attr.Value.Kind() == slog.KindGroup {
		prefix := group
		if attr.Key != "" {
			prefix = joinKey(group, attr.Key)
		}
		for _, member := range attr.Value.Group() {
			appendAttr(buf, prefix, member)
		}
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(joinKey(group, attr.Key))
	buf.WriteByte('=')
	buf.WriteString(quoteIfNeeded(valueText(attr.Value)))
}

func joinKey(group, key string) string {
	switch {
	case group == "":
		return key
	case key == "":
		return group
	default:
		return group + "." + key
	}
}

func valueText(v slog.Value) string {
	switch v.Kind() {
	case slog.KindTime:
		return v.Time().UTC().Format(time.RFC3339)
	case slog.KindFloat64:
		return strconv.FormatFloat(v.Float64(), 'f', -1, 64)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	default:
		return v.String()
	}
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r <= ' ' || r == '=' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
