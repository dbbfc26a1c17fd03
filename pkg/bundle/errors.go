package bundle

import "errors"

var (
	ErrInvalidDelimiter = errors.New("invalid start delimiter")
	ErrTruncatedContent = errors.New("declared byte count exceeds remaining content")
	ErrDecode           = errors.New("payload is not valid UTF-8")
)
