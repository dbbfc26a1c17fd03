// Package store confines txtpack's file I/O: mapping bundle input into
// memory and writing reconstructed files back out.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/samcharles93/txtpack/pkg/bundle"
)

// MapFile maps a bundle read-only into memory and returns the bytes plus a
// release function. The scanner addresses the whole buffer, so mmap gives
// large bundles to the parser without a copy; when mmap is unavailable the
// file is read normally and release is a no-op.
func MapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, nil, err
	}
	size := stat.Size()
	if size == 0 {
		return nil, func() error { return nil }, nil
	}
	if size > int64(int(^uint(0)>>1)) {
		return nil, nil, fmt.Errorf("%s: too large to address in memory", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err == nil {
		return data, func() error { return unix.Munmap(data) }, nil
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return buf, func() error { return nil }, nil
}

// ReadInput loads the unpack input from path, or from stdin when path is
// empty or "-". The release function must be called once the buffer is no
// longer referenced.
func ReadInput(path string) ([]byte, func() error, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, nil, err
		}
		return data, func() error { return nil }, nil
	}
	return MapFile(path)
}

// EnsureDir creates dir and any missing parents.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteFile writes content to path, creating parent directories as needed.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// WriteAll writes every record under dir, keyed by record name. Duplicate
// names overwrite: last write wins.
func WriteAll(dir string, recs []bundle.Record) error {
	for _, r := range recs {
		if err := WriteFile(filepath.Join(dir, r.Name), r.Content); err != nil {
			return fmt.Errorf("write %s: %w", r.Name, err)
		}
	}
	return nil
}
