package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// WriteFileAtomic replaces path with data. The bytes land in a temp file in the
// same directory first, so readers observe either the old or the new content.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	return replaceFile(path, mode, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

// CopyVerified copies src to dst through a temp file and rename, then re-reads
// dst and compares its SHA-256 with what was read from src. dst is removed on
// mismatch. It returns the number of bytes copied.
func CopyVerified(src, dst string) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return 0, fmt.Errorf("stat source: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("copy %s: is a directory", src)
	}

	srcHash := sha256.New()
	var written int64
	err = replaceFile(dst, info.Mode().Perm(), func(w io.Writer) error {
		written, err = io.Copy(w, io.TeeReader(in, srcHash))
		return err
	})
	if err != nil {
		return 0, err
	}

	dstSum, dstSize, err := hashFile(dst)
	if err != nil {
		return 0, fmt.Errorf("verify copy: %w", err)
	}
	if dstSize != written || !bytes.Equal(dstSum, srcHash.Sum(nil)) {
		_ = os.Remove(dst)
		return 0, fmt.Errorf("verify copy: %s does not match %s", dst, src)
	}
	return written, nil
}

func replaceFile(path string, mode os.FileMode, fill func(io.Writer) error) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = fill(tmp); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func hashFile(path string) ([]byte, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	h := sha256.New()
	n, err := io.Copy(h, f)
	if err != nil {
		return nil, 0, err
	}
	return h.Sum(nil), n, nil
}
