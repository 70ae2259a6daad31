package ui

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"

	"github.com/safedep/pmb/usefulerror"
)

const errCodeUnknown = usefulerror.ErrCodeUnknown

// errorMatcher defines how to detect and convert a specific error type
type errorMatcher struct {
	match   func(err error) bool
	convert func(err error) usefulerror.UsefulError
}

// errorMatchers is an ordered list of error matchers
// Order matters - more specific matchers should come first
var errorMatchers = []errorMatcher{
	// Executable not found in PATH
	{
		match: func(err error) bool {
			return errors.Is(err, exec.ErrNotFound)
		},
		convert: func(err error) usefulerror.UsefulError {
			var execErr *exec.Error
			humanError := "Executable not found"
			if errors.As(err, &execErr) {
				humanError = fmt.Sprintf("Executable not found: %s", execErr.Name)
			}

			return usefulerror.Useful().
				WithCode(usefulerror.ErrCodeNotFound).
				WithHumanError(humanError).
				WithHelp("Install the package manager or add it to your PATH").
				Wrap(err)
		},
	},
	// File not found errors
	{
		match: func(err error) bool {
			return errors.Is(err, fs.ErrNotExist)
		},
		convert: func(err error) usefulerror.UsefulError {
			path := extractPathFromError(err)
			humanError := "File or directory not found"
			if path != "" {
				humanError = fmt.Sprintf("File or directory not found: %s", path)
			}

			return usefulerror.Useful().
				WithCode(usefulerror.ErrCodeNotFound).
				WithHumanError(humanError).
				WithHelp("Check if the path exists").
				Wrap(err)
		},
	},
	// Permission denied errors
	{
		match: func(err error) bool {
			return errors.Is(err, fs.ErrPermission)
		},
		convert: func(err error) usefulerror.UsefulError {
			path := extractPathFromError(err)
			humanError := "Permission denied"
			if path != "" {
				humanError = fmt.Sprintf("Permission denied: %s", path)
			}

			return usefulerror.Useful().
				WithCode(usefulerror.ErrCodePermissionDenied).
				WithHumanError(humanError).
				WithHelp("Check permissions of the working directory").
				Wrap(err)
		},
	},
	{
		match: func(err error) bool {
			return errors.Is(err, context.DeadlineExceeded)
		},
		convert: func(err error) usefulerror.UsefulError {
			return usefulerror.Useful().
				WithCode(usefulerror.ErrCodeTimeout).
				WithHumanError("Operation timed out").
				WithHelp("Try again or increase the timeout").
				Wrap(err)
		},
	},
	{
		match: func(err error) bool {
			return errors.Is(err, context.Canceled)
		},
		convert: func(err error) usefulerror.UsefulError {
			return usefulerror.Useful().
				WithCode(usefulerror.ErrCodeCanceled).
				WithHumanError("Operation was canceled").
				Wrap(err)
		},
	},
}

// convertToUsefulError attempts to convert a regular error to a UsefulError
// by analyzing the error chain for known error types.
// Returns the original error wrapped in a generic UsefulError if no specific match is found.
func convertToUsefulError(err error) usefulerror.UsefulError {
	if err == nil {
		return nil
	}

	if ue, ok := usefulerror.AsUsefulError(err); ok {
		return ue
	}

	for _, matcher := range errorMatchers {
		if matcher.match(err) {
			return matcher.convert(err)
		}
	}

	return usefulerror.Useful().
		WithCode(usefulerror.ErrCodeUnknown).
		WithHumanError(extractRootCause(err)).
		WithHelp("An unexpected error occurred.").
		Wrap(err)
}

// extractRootCause traverses the error chain and returns the innermost error message.
func extractRootCause(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}

		err = unwrapped
	}
}

// extractPathFromError attempts to extract a file path from path-related errors
func extractPathFromError(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Path
	}

	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return linkErr.Old
	}

	return ""
}
