package main

import (
	"errors"
	"os"

	html2bbcode "github.com/alnah/go-html2bbcode"
)

// Exit codes for the html2bbcode CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadHTML) ||
		errors.Is(err, ErrWriteBBCode) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrEmptyConfigName) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, html2bbcode.ErrEmptyInput) ||
		errors.Is(err, html2bbcode.ErrInputTooLarge) ||
		errors.Is(err, html2bbcode.ErrMalformedInput) {
		return ExitUsage
	}

	return ExitGeneral
}
