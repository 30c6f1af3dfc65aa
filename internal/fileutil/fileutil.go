// Package fileutil provides file and path utility functions.
package fileutil

import (
	"os"
	"strings"
)

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsFilePath returns true if the string looks like a file path rather than a
// name. A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "defaults" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/html2bbcode/site.yaml" -> true (absolute)
//   - "C:\configs\site.yaml" -> true (Windows)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsHTMLFile returns true for the input extensions the CLI converts.
func IsHTMLFile(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".html") || strings.HasSuffix(lower, ".htm")
}
