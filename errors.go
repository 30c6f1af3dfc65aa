package html2bbcode

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInput     = errors.New("HTML content cannot be empty")
	ErrInputTooLarge  = errors.New("HTML content exceeds maximum size")
	ErrMalformedInput = errors.New("malformed input")
)
