package ui

import (
	"fmt"
	"io"
	"sort"
)

// PrintInfoSection prints a formatted block of key-value information.
func PrintInfoSection(w io.Writer, title string, entries map[string]string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, Colors.Cyan(title))
	fmt.Fprintln(w, Colors.Normal("--------------------"))

	// Sort keys for consistent output
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%-25s: %s\n", Colors.Bold(k), entries[k])
	}
}
