package fileset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestMatchGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "b.txt", "b")
	writeTestFile(t, dir, "a.txt", "a")
	writeTestFile(t, dir, "c.md", "c")

	paths, err := Match(dir, "*.txt")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths: got %d want 2: %v", len(paths), paths)
	}
	// Lexical order.
	if filepath.Base(paths[0]) != "a.txt" || filepath.Base(paths[1]) != "b.txt" {
		t.Fatalf("order: got %v", paths)
	}
}

func TestMatchRegex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "note-1.txt", "1")
	writeTestFile(t, dir, "note-2.txt", "2")
	writeTestFile(t, dir, "other.txt", "x")

	paths, err := Match(dir, `note-\d+\.txt`)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("paths: got %d want 2: %v", len(paths), paths)
	}
}

func TestMatchLiteralName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "exact.txt", "x")
	writeTestFile(t, dir, "exactXtxt", "y")

	paths, err := Match(dir, "exact.txt")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	// "." matches any char under regex semantics, so both names match;
	// the named file must be among them.
	found := false
	for _, p := range paths {
		if filepath.Base(p) == "exact.txt" {
			found = true
		}
	}
	if !found {
		t.Fatalf("exact.txt not matched: %v", paths)
	}
}

func TestMatchRegexIsAnchored(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "abc.txt", "x")
	writeTestFile(t, dir, "xabc.txtx", "y")

	paths, err := Match(dir, `abc\.txt`)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "abc.txt" {
		t.Fatalf("anchoring failed: got %v", paths)
	}
}

func TestMatchNoFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "a")

	_, err := Match(dir, "*.nonexistent")
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("got %v, want ErrNoFiles", err)
	}
}

func TestMatchEmptyDir(t *testing.T) {
	t.Parallel()

	_, err := Match(t.TempDir(), "*.txt")
	if !errors.Is(err, ErrNoFiles) {
		t.Fatalf("got %v, want ErrNoFiles", err)
	}
}

func TestMatchDirNotFound(t *testing.T) {
	t.Parallel()

	_, err := Match(filepath.Join(t.TempDir(), "does_not_exist"), "*.txt")
	if !errors.Is(err, ErrDirNotFound) {
		t.Fatalf("got %v, want ErrDirNotFound", err)
	}
}

func TestMatchBadRegex(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "a")

	_, err := Match(dir, "^(invalid")
	if !errors.Is(err, ErrBadPattern) {
		t.Fatalf("got %v, want ErrBadPattern", err)
	}
}

func TestMatchBadGlob(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "a")

	_, err := Match(dir, "[invalid")
	if !errors.Is(err, ErrBadPattern) {
		t.Fatalf("got %v, want ErrBadPattern", err)
	}
}

func TestMatchSkipsDirectories(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "a")
	if err := os.Mkdir(filepath.Join(dir, "sub.txt"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	paths, err := Match(dir, "*.txt")
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	if len(paths) != 1 || filepath.Base(paths[0]) != "a.txt" {
		t.Fatalf("got %v", paths)
	}
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTestFile(t, dir, "a.txt", "alpha")
	writeTestFile(t, dir, "b.txt", "beta")

	files, err := ReadAll([]string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "b.txt"),
	})
	if err != nil {
		t.Fatalf("read all: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files: got %d want 2", len(files))
	}
	if files[0].Name != "a.txt" || string(files[0].Data) != "alpha" {
		t.Fatalf("first: got %+v", files[0])
	}
	if files[1].Name != "b.txt" || string(files[1].Data) != "beta" {
		t.Fatalf("second: got %+v", files[1])
	}
}

func TestReadAllMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadAll([]string{filepath.Join(t.TempDir(), "missing.txt")})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
