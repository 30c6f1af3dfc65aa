package html2bbcode

// DefaultMaxInputSize bounds the input accepted by Convert (4 MiB).
// Regular-expression matching is linear in input size, so the limit keeps
// worst-case conversion cost proportional to a known bound.
const DefaultMaxInputSize = 4 << 20

// Input contains conversion parameters.
type Input struct {
	HTML       string // HTML content (required)
	DocumentID string // identifier attached to errors (optional)
}

// ConvertResult holds the conversion output.
type ConvertResult struct {
	BBCode string
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	maxInputSize int
}

// WithMaxInputSize sets the maximum accepted input size in bytes.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithMaxInputSize(n int) Option {
	if n <= 0 {
		panic("html2bbcode: WithMaxInputSize must be positive")
	}
	return func(c *Converter) {
		c.cfg.maxInputSize = n
	}
}
