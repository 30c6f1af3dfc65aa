package html2bbcode

import (
	"context"
	"errors"
	"fmt"

	"github.com/alnah/go-html2bbcode/internal/pipeline"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.SnippetExtractor = (*pipeline.CodeSnippetExtractor)(nil)
	_ pipeline.LinkRewriter     = (*pipeline.AnchorRewriter)(nil)
	_ pipeline.ImageRewriter    = (*pipeline.InlineImageRewriter)(nil)
	_ pipeline.TagRewriter      = (*pipeline.TableTagRewriter)(nil)
)

// Converter orchestrates the HTML-to-BBCode conversion pipeline.
// Create with NewConverter and use Convert for conversion. A Converter holds
// no per-call state and is safe for concurrent use.
type Converter struct {
	cfg       converterConfig
	extractor pipeline.SnippetExtractor
	links     pipeline.LinkRewriter
	images    pipeline.ImageRewriter
	tags      pipeline.TagRewriter
}

// NewConverter creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithMaxInputSize).
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg:       converterConfig{maxInputSize: DefaultMaxInputSize},
		extractor: &pipeline.CodeSnippetExtractor{},
		links:     &pipeline.AnchorRewriter{},
		images:    &pipeline.InlineImageRewriter{},
		tags:      &pipeline.TableTagRewriter{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Convert runs the full pipeline and returns the resulting BBCode.
// The context is used for cancellation between stages.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := c.validateInput(input); err != nil {
		return nil, err
	}

	// Decode HTML entities before any stage sees the text
	content := pipeline.DecodeEntities(input.HTML)

	// Protect verbatim code regions behind placeholder markers
	content, snippets := c.extractor.ExtractSnippets(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Rewrite anchors to [url=... t=...]
	content = c.links.RewriteLinks(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Rewrite images to [img]; an image without src aborts the conversion
	content, err = c.images.RewriteImages(ctx, content)
	if errors.Is(err, pipeline.ErrMissingImageSource) {
		return nil, fmt.Errorf("%w: document %q: %v", ErrMalformedInput, input.DocumentID, err)
	}
	if err != nil {
		return nil, err
	}

	// Map the fixed tag table to BBCode
	content = c.tags.RewriteTags(ctx, content)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Strip leftover HTML, then reinject the protected snippets in order
	content = pipeline.StripTags(content)
	content = pipeline.RestoreSnippets(content, snippets)

	return &ConvertResult{BBCode: content}, nil
}

// validateInput checks that required fields are present and within bounds.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their files size-checked at read time; both paths converge
// here before any processing happens.
func (c *Converter) validateInput(input Input) error {
	if input.HTML == "" {
		return ErrEmptyInput
	}
	if len(input.HTML) > c.cfg.maxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(input.HTML), c.cfg.maxInputSize)
	}
	return nil
}
