package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"shelf/internal/catalog"
	"shelf/internal/fileutil"
)

// YAML stores the catalog as a YAML sequence.
type YAML struct{}

func (YAML) Save(_ context.Context, path string, books []catalog.Book) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(toRecords(books)); err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	return fileutil.WriteFileAtomic(path, buf.Bytes(), fileMode)
}

func (YAML) Load(_ context.Context, path string) ([]catalog.Book, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	var records []record
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse %s: %w", ErrCorrupt, path, err)
	}
	return fromRecords(records), nil
}
