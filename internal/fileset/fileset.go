// Package fileset lists and reads the files that feed a pack run.
package fileset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/samcharles93/txtpack/pkg/bundle"
)

var (
	ErrDirNotFound = errors.New("search directory not found")
	ErrBadPattern  = errors.New("invalid pattern")
	ErrNoFiles     = errors.New("no files matched")
)

// Match returns the paths of regular files directly under dir whose names
// match pattern, in lexical order. A pattern containing glob metacharacters
// is matched with filepath.Match semantics; anything else is compiled as an
// anchored regular expression, which also covers literal filenames.
func Match(dir, pattern string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	match, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDirNotFound, dir)
	}

	var paths []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if match(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: pattern %q in %s", ErrNoFiles, pattern, dir)
	}
	return paths, nil
}

func compilePattern(pattern string) (func(string) bool, error) {
	if strings.ContainsAny(pattern, "*?[") {
		// Validate eagerly so a malformed glob is reported once, not
		// silently matched against nothing.
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
		}
		return func(name string) bool {
			ok, _ := filepath.Match(pattern, name)
			return ok
		}, nil
	}

	re, err := regexp.Compile("^(?:" + pattern + ")$")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}
	return re.MatchString, nil
}

// ReadAll reads every path into a bundle.File, keeping order. The first
// failing read aborts the whole run.
func ReadAll(paths []string) ([]bundle.File, error) {
	files := make([]bundle.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", p, err)
		}
		files = append(files, bundle.File{Name: filepath.Base(p), Data: data})
	}
	return files, nil
}
