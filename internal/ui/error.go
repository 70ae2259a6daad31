package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/safedep/pmb/internal/eventlog"
)

const issuesURL = "https://github.com/safedep/pmb/issues/new?assignees=&labels=bug"

// ErrorExit prints the error message and exits the program with a non-zero status code.
func ErrorExit(err error) {
	reportError(os.Stderr, err)
	os.Exit(1)
}

// reportError records err in the event log and prints it.
func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	eventlog.LogError("Command failed", err)
	PrintError(w, err)
}

// PrintError renders err for the user. Errors that are not already useful
// errors are converted based on their cause.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	usefulErr := convertToUsefulError(err)

	fmt.Fprintln(w, Colors.Red(fmt.Sprintf("Error occurred: %s", usefulErr.HumanError())))
	fmt.Fprintln(w, Colors.Dim(fmt.Sprintf("[%s] %s", usefulErr.Code(), err.Error())))
	fmt.Fprintln(w, Colors.Yellow(usefulErr.Help()))

	if usefulErr.Code() == errCodeUnknown {
		fmt.Fprintln(w, Colors.Yellow(fmt.Sprintf("If you believe this is a bug, please report it at: %s", issuesURL)))
	}
}
