// Package bundle implements the txtpack delimited text bundle format.
//
// A bundle is a single UTF-8 stream that concatenates any number of text
// files, each framed by a start line declaring the payload's byte length and
// an end line repeating the filename:
//
//	--- FILE: notes.txt (13 bytes) ---
//	Hello, world!
//	--- END: notes.txt ---
//
// The byte count is the single source of truth on extraction: exactly that
// many bytes are sliced, so payloads may contain newlines or text that looks
// like a delimiter. Parsing never aborts on malformed input; invalid lines
// and damaged records are skipped one line at a time.
package bundle

// File is the pack-side input: a named blob of raw bytes.
type File struct {
	Name string
	Data []byte
}

// Record is a (filename, decoded text) pair recovered from a bundle.
type Record struct {
	Name    string
	Content string
}

// Pack serialises files into a single delimited bundle.
//
// Each file contributes its start line, the payload verbatim, a separator
// newline and its end line. Filenames are not escaped; a name that embeds a
// delimiter fragment will not round-trip (documented format limitation).
func Pack(files []File, cfg Config) []byte {
	var out []byte
	for _, f := range files {
		out = append(out, StartDelimiter(f.Name, len(f.Data), cfg)...)
		out = append(out, '\n')
		out = append(out, f.Data...)
		out = append(out, '\n')
		out = append(out, EndDelimiter(f.Name, cfg)...)
		out = append(out, '\n')
	}
	return out
}

// Unpack scans a bundle and collects every valid record in order.
//
// Damaged or garbage regions are skipped; an empty result on non-empty input
// is for the caller to judge. The scan terminates when the cursor stops
// advancing, which happens at the end of the buffer.
func Unpack(buf []byte, cfg Config) []Record {
	var recs []Record
	pos := 0
	for pos < len(buf) {
		rec, next := NextRecord(buf, pos, cfg)
		if rec != nil {
			recs = append(recs, *rec)
		}
		if next == pos {
			break
		}
		pos = next
	}
	return recs
}
