package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/yaklabco/gomdedit/internal/configloader"
	"github.com/yaklabco/gomdedit/internal/ui/pretty"
	"github.com/yaklabco/gomdedit/pkg/config"
	"github.com/yaklabco/gomdedit/pkg/fsutil"
)

// Exit codes for gomdedit.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failure with no more specific code.
	ExitFailure = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// Sentinel errors mapped to usage exit codes.
var (
	// ErrNoInput is returned when a command needs a file argument and got none.
	ErrNoInput = errors.New("no input file given")

	// ErrInvalidFlag is returned when flag values contradict each other.
	ErrInvalidFlag = errors.New("invalid flag combination")
)

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var validationErr *configloader.ValidationError
	switch {
	case errors.Is(err, ErrNoInput), errors.Is(err, ErrInvalidFlag):
		return ExitInvalidUsage
	case errors.As(err, &validationErr):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrIsDirectory),
		errors.Is(err, fsutil.ErrNotText):
		return ExitIOError
	default:
		return ExitFailure
	}
}

// PrintError writes err to w as an "error:" line, colored when w is a
// terminal.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	styles := pretty.NewStyles(pretty.IsColorEnabled(config.ColorAuto, w))
	_, _ = fmt.Fprintln(w, styles.FormatError(err.Error()))
}
