// Package pipeline implements the HTML-to-BBCode conversion stages.
//
// The stages operate on a single text value, each stage's output feeding the
// next:
//   - Entity decoding (named and numeric HTML character references)
//   - Snippet extraction (pre/code/[code] regions swapped for markers)
//   - Anchor rewriting ([url=... t=...])
//   - Image rewriting ([img])
//   - Generic tag rewriting (fixed tag table)
//   - Tag stripping and snippet restoration
//
// Orchestration and the public API live in the root html2bbcode package.
// This separation keeps each stage independently testable while the root
// package owns input validation and error reporting.
package pipeline
