package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// The UI is internal to PMB and opinionated for the CLI.
// It is not intended to be used outside of PMB.

// InvocationView is what the CLI shows about a prepared invocation.
type InvocationView struct {
	ID        string
	Manager   string
	Directory string
	Args      []string
}

// CommandLine returns the invocation as it would be typed in a shell.
func (v InvocationView) CommandLine() string {
	return strings.TrimSpace(v.Manager + " " + strings.Join(v.Args, " "))
}

// RenderInvocation renders the invocation as a table.
func RenderInvocation(v InvocationView) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Field", "Value"})

	if v.ID != "" {
		tbl.AppendRow(table.Row{"Invocation", v.ID})
	}

	tbl.AppendRow(table.Row{"Manager", v.Manager})
	tbl.AppendRow(table.Row{"Directory", v.Directory})
	tbl.AppendRow(table.Row{"Command", v.CommandLine()})

	return tbl.Render()
}

// PrintDryRun shows what would have been executed.
func PrintDryRun(w io.Writer, v InvocationView) {
	fmt.Fprintln(w, Colors.Yellow("Dry run, the package manager was not executed"))
	fmt.Fprintln(w, RenderInvocation(v))
}

// PrintStarting announces a package manager run.
func PrintStarting(w io.Writer, v InvocationView) {
	fmt.Fprintln(w, Colors.Dim(fmt.Sprintf("Running %s in %s", v.CommandLine(), v.Directory)))
}

// PrintExitStatus reports how the package manager exited.
func PrintExitStatus(w io.Writer, manager string, exitCode int) {
	if exitCode == 0 {
		fmt.Fprintln(w, Colors.Green(fmt.Sprintf("✓ %s completed", manager)))
		return
	}

	fmt.Fprintln(w, Colors.Red(fmt.Sprintf("✗ %s exited with code %d", manager, exitCode)))
}
