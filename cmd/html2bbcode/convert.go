package main

import (
	"context"
	"fmt"

	html2bbcode "github.com/alnah/go-html2bbcode"
)

// run executes the conversion and returns the process exit code.
func run(ctx context.Context, flags *cliFlags, args []string, env *Environment) int {
	if flags.version {
		fmt.Fprintf(env.Stdout, "html2bbcode %s\n", Version)
		return ExitSuccess
	}

	cfg := DefaultConfig()
	if flags.config != "" {
		loaded, err := LoadConfig(flags.config)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		cfg = loaded
	}

	inputs := args
	if len(inputs) == 0 && cfg.Input.DefaultDir != "" {
		inputs = []string{cfg.Input.DefaultDir}
	}
	if len(inputs) == 0 {
		fmt.Fprintln(env.Stderr, ErrNoInput)
		printUsage(env.Stderr)
		return exitCodeFor(ErrNoInput)
	}

	outputDir := flags.output
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	workers := flags.workers
	if workers == 0 {
		workers = cfg.Workers
	}
	if err := validateWorkers(workers); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}
	workers = resolveWorkers(workers)
	if flags.verbose {
		fmt.Fprintf(env.Stderr, "Workers: %d\n", workers)
	}

	var files []FileToConvert
	for _, input := range inputs {
		discovered, err := discoverFiles(input, outputDir)
		if err != nil {
			fmt.Fprintln(env.Stderr, err)
			return exitCodeFor(err)
		}
		files = append(files, discovered...)
	}
	if len(files) == 0 {
		fmt.Fprintln(env.Stderr, "No HTML files found")
		return exitCodeFor(ErrNoInput)
	}

	conv, err := html2bbcode.NewConverter()
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return exitCodeFor(err)
	}

	results := convertBatch(ctx, conv, files, workers)
	if failed := printResults(results, flags.quiet, flags.verbose, env); failed > 0 {
		return firstFailureCode(results)
	}
	return ExitSuccess
}

// firstFailureCode derives the exit code from the first failed conversion.
func firstFailureCode(results []ConversionResult) int {
	for _, r := range results {
		if r.Err != nil {
			return exitCodeFor(r.Err)
		}
	}
	return ExitSuccess
}
