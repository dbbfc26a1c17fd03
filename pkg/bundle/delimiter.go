package bundle

import (
	"fmt"
	"strconv"
	"strings"
)

// StartDelimiter formats the start line for a file of byteCount payload bytes.
func StartDelimiter(name string, byteCount int, cfg Config) string {
	return cfg.StartPrefix + name + cfg.StartMiddle + strconv.Itoa(byteCount) + cfg.StartBytesSuffix
}

// EndDelimiter formats the end line for a file.
func EndDelimiter(name string, cfg Config) string {
	return cfg.EndPrefix + name + cfg.EndSuffix
}

// IsStartDelimiter reports whether line matches the start delimiter shape.
// This is a necessary but not sufficient check; ParseStartDelimiter may still
// reject the line.
func IsStartDelimiter(line string, cfg Config) bool {
	return strings.HasPrefix(line, cfg.StartPrefix) &&
		strings.Contains(line, cfg.StartMiddle) &&
		strings.HasSuffix(line, cfg.StartBytesSuffix)
}

// ParseStartDelimiter extracts the filename and declared byte count from a
// start line. The first occurrence of the middle fragment is the split point
// between filename and count, so a filename containing that fragment
// truncates; this tie-break is part of the format and must not change.
func ParseStartDelimiter(line string, cfg Config) (string, int, error) {
	if !IsStartDelimiter(line, cfg) {
		return "", 0, fmt.Errorf("%w: %q", ErrInvalidDelimiter, line)
	}

	middle := strings.Index(line, cfg.StartMiddle)
	if middle < len(cfg.StartPrefix) {
		return "", 0, fmt.Errorf("%w: middle fragment inside prefix: %q", ErrInvalidDelimiter, line)
	}
	name := line[len(cfg.StartPrefix):middle]

	countStart := middle + len(cfg.StartMiddle)
	countEnd := strings.Index(line, cfg.StartBytesSuffix)
	if countEnd < countStart {
		return "", 0, fmt.Errorf("%w: missing bytes suffix: %q", ErrInvalidDelimiter, line)
	}

	count, err := strconv.Atoi(line[countStart:countEnd])
	if err != nil || count < 0 {
		return "", 0, fmt.Errorf("%w: bad byte count %q in %q", ErrInvalidDelimiter, line[countStart:countEnd], line)
	}

	return name, count, nil
}

// IsEndDelimiter reports whether line is exactly the end delimiter for name.
// No trimming, no partial matching.
func IsEndDelimiter(line, name string, cfg Config) bool {
	return line == EndDelimiter(name, cfg)
}
