package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: html2bbcode [flags] <input> [input...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert HTML files to BBCode.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    HTML file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>    Output file or directory")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>      Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show detailed timing")
	fmt.Fprintln(w, "      --version          Show version information")
}
