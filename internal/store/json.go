package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"shelf/internal/catalog"
	"shelf/internal/fileutil"
)

// JSON stores the catalog as an indented JSON array.
type JSON struct{}

// jsonRecord adds raw byte fields for text that is not valid UTF-8, which
// encoding/json would otherwise rewrite to U+FFFD. They are omitted for
// ordinary text.
type jsonRecord struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	CheckedOut bool   `json:"checked_out"`
	TitleRaw   []byte `json:"title_raw,omitempty"`
	AuthorRaw  []byte `json:"author_raw,omitempty"`
}

func splitText(s string) (string, []byte) {
	if utf8.ValidString(s) {
		return s, nil
	}
	return strings.ToValidUTF8(s, "\uFFFD"), []byte(s)
}

func joinText(s string, raw []byte) string {
	if raw != nil {
		return string(raw)
	}
	return s
}

func (JSON) Save(_ context.Context, path string, books []catalog.Book) error {
	records := make([]jsonRecord, 0, len(books))
	for _, r := range toRecords(books) {
		jr := jsonRecord{CheckedOut: r.CheckedOut}
		jr.Title, jr.TitleRaw = splitText(r.Title)
		jr.Author, jr.AuthorRaw = splitText(r.Author)
		records = append(records, jr)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	data = append(data, '\n')
	return fileutil.WriteFileAtomic(path, data, fileMode)
}

func (JSON) Load(_ context.Context, path string) ([]catalog.Book, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []catalog.Book{}, nil
	}

	var records []jsonRecord
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrCorrupt, path, err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse %s: trailing data after catalog", ErrCorrupt, path)
	}

	out := make([]record, 0, len(records))
	for _, jr := range records {
		out = append(out, record{
			Title:      joinText(jr.Title, jr.TitleRaw),
			Author:     joinText(jr.Author, jr.AuthorRaw),
			CheckedOut: jr.CheckedOut,
		})
	}
	return fromRecords(out), nil
}
