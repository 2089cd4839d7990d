package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/prettydoc/internal/configloader"
	"github.com/yaklabco/prettydoc/pkg/docfile"
	"github.com/yaklabco/prettydoc/pkg/fsutil"
)

// Exit codes for prettydoc.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failure without a more specific code,
	// including command-line usage errors reported by cobra.
	ExitFailure = 1

	// ExitOverflow indicates rendered output has lines wider than the page.
	ExitOverflow = 2

	// ExitDataError indicates an invalid document file.
	ExitDataError = 65

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74

	// ExitConfigError indicates configuration errors.
	ExitConfigError = 78
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var validationErr *configloader.ValidationError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrOverflow):
		return ExitOverflow
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, docfile.ErrInvalidNode), errors.Is(err, docfile.ErrUnknownFormat):
		return ExitDataError
	case errors.Is(err, fsutil.ErrNotFound), errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fsutil.ErrIsDirectory), errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitFailure
	}
}
