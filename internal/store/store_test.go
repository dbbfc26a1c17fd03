package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samcharles93/txtpack/pkg/bundle"
)

func TestWriteFileCreatesParents(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "a", "b", "c.txt")
	if err := WriteFile(path, "nested"); err != nil {
		t.Fatalf("write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "nested" {
		t.Fatalf("got %q want %q", data, "nested")
	}
}

func TestWriteAllLastWriteWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	recs := []bundle.Record{
		{Name: "same.txt", Content: "first"},
		{Name: "same.txt", Content: "second"},
	}
	if err := WriteAll(dir, recs); err != nil {
		t.Fatalf("write all: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "same.txt"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("got %q want %q", data, "second")
	}
}

func TestWriteAllMultiple(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	recs := []bundle.Record{
		{Name: "a.txt", Content: "alpha"},
		{Name: "sub/b.txt", Content: "beta"},
	}
	if err := WriteAll(dir, recs); err != nil {
		t.Fatalf("write all: %v", err)
	}
	for _, rec := range recs {
		data, err := os.ReadFile(filepath.Join(dir, rec.Name))
		if err != nil {
			t.Fatalf("read back %s: %v", rec.Name, err)
		}
		if string(data) != rec.Content {
			t.Fatalf("%s: got %q want %q", rec.Name, data, rec.Content)
		}
	}
}

func TestMapFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bundle.txt")
	content := "--- FILE: a.txt (5 bytes) ---\nhello\n--- END: a.txt ---\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, release, err := MapFile(path)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if string(data) != content {
		t.Fatalf("got %q want %q", data, content)
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestMapFileEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, release, err := MapFile(path)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty buffer, got %d bytes", len(data))
	}
	if err := release(); err != nil {
		t.Fatalf("release: %v", err)
	}
}

func TestMapFileMissing(t *testing.T) {
	t.Parallel()

	_, _, err := MapFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "out", "deep")
	if err := EnsureDir(dir); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("expected directory, got %v / %v", info, err)
	}
}
