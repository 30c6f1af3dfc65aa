package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the html2bbcode command.
type cliFlags struct {
	output  string
	workers int
	config  string
	quiet   bool
	verbose bool
	version bool
}

// parseFlags parses command-line flags and returns the positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("html2bbcode", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "show version information")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
