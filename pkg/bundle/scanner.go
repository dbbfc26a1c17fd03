package bundle

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// FindLineEnd returns the index of the next newline at or after pos, or
// len(buf) when the final line is unterminated.
func FindLineEnd(buf []byte, pos int) int {
	if pos >= len(buf) {
		return len(buf)
	}
	if i := bytes.IndexByte(buf[pos:], '\n'); i >= 0 {
		return pos + i
	}
	return len(buf)
}

// ExtractPayload slices exactly byteCount bytes starting at pos and decodes
// them as UTF-8. The slice is raw, not line-bounded: payloads legitimately
// span newlines and may contain delimiter-looking text. On success the
// returned cursor is pos+byteCount.
func ExtractPayload(buf []byte, pos int, name string, byteCount int) (string, int, error) {
	// Compare via subtraction: pos+byteCount can overflow for absurd
	// declared counts, which would slip past the guard and panic on the
	// slice below.
	if byteCount > len(buf)-pos {
		return "", pos, fmt.Errorf("%s: %w: declared %d, available %d",
			name, ErrTruncatedContent, byteCount, len(buf)-pos)
	}
	payload := buf[pos : pos+byteCount]
	if !utf8.Valid(payload) {
		return "", pos, fmt.Errorf("%s: %w", name, ErrDecode)
	}
	return string(payload), pos + byteCount, nil
}

// SkipEndDelimiter advances past the end delimiter for name if it directly
// follows the payload. Best effort: when the next line is not the expected
// end delimiter (wrong name, garbage, truncated, or not UTF-8) the cursor is
// left right after the payload separator so the top-level scan reinterprets
// that line. A missing end delimiter never fails the record.
func SkipEndDelimiter(buf []byte, pos int, name string, cfg Config) int {
	if pos >= len(buf) {
		return pos
	}
	if buf[pos] == '\n' {
		pos++
	}

	lineEnd := FindLineEnd(buf, pos)
	if lineEnd > pos {
		line := buf[pos:lineEnd]
		if utf8.Valid(line) && IsEndDelimiter(string(line), name, cfg) {
			if lineEnd < len(buf) {
				return lineEnd + 1
			}
			return lineEnd
		}
	}
	return pos
}

// NextRecord performs one step of the top-level scan: it reads the line at
// pos and either produces the record framed there or advances past whatever
// occupies that line.
//
// The returned record is nil when the line is not the start of a valid
// record. In that case the cursor has moved one line forward; a zero-length
// line (end of buffer, or a bare newline at pos) returns the cursor
// unchanged, which callers treat as the end of the scan.
//
// Failures inside a record (unparseable count, truncated or undecodable
// payload) skip only the start line. After a truncated record the cursor sits
// inside payload bytes; subsequent calls line-scan past them naturally.
func NextRecord(buf []byte, pos int, cfg Config) (*Record, int) {
	if pos >= len(buf) {
		return nil, pos
	}
	lineEnd := FindLineEnd(buf, pos)
	if lineEnd == pos {
		return nil, pos
	}

	line := buf[pos:lineEnd]
	if !utf8.Valid(line) {
		return nil, lineEnd + 1
	}
	if !IsStartDelimiter(string(line), cfg) {
		return nil, lineEnd + 1
	}

	name, byteCount, err := ParseStartDelimiter(string(line), cfg)
	if err != nil {
		return nil, lineEnd + 1
	}

	content, afterPayload, err := ExtractPayload(buf, lineEnd+1, name, byteCount)
	if err != nil {
		return nil, lineEnd + 1
	}

	final := SkipEndDelimiter(buf, afterPayload, name, cfg)
	return &Record{Name: name, Content: content}, final
}
