package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/samcharles93/txtpack/internal/fileset"
)

// Stable machine-readable failure tags. Scripts match on these, so they are
// part of the CLI contract and must not change.
const (
	tagNoFilesFound      = "no_files_found"
	tagSearchDirNotFound = "search_directory_not_found"
	tagInvalidRegex      = "invalid_regex_pattern"
	tagFailedToReadFile  = "failed_to_read_file"

	tagNoInputContent    = "no_input_content_to_unpack"
	tagNoValidDelimiters = "no_valid_file_delimiters_found"
	tagFailedToReadInput = "failed_to_read_input"
	tagFailedToCreateDir = "failed_to_create_output_directory"
	tagFailedToWriteFile = "failed_to_write_file"
)

// exitTag builds the exit-1 error for a failure tag. The tag is the leading
// token of the stderr line; detail follows after a colon.
func exitTag(tag string, err error) error {
	if err != nil {
		return cli.Exit(fmt.Sprintf("%s: %v", tag, err), 1)
	}
	return cli.Exit(tag, 1)
}

// matchTag maps a fileset.Match failure to its pack-side tag.
func matchTag(err error) string {
	switch {
	case errors.Is(err, fileset.ErrDirNotFound):
		return tagSearchDirNotFound
	case errors.Is(err, fileset.ErrBadPattern):
		return tagInvalidRegex
	default:
		return tagNoFilesFound
	}
}
