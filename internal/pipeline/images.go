package pipeline

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// ErrMissingImageSource indicates an image element without a src attribute.
// An image without a source cannot be represented in BBCode, so this aborts
// the whole conversion instead of silently degrading.
var ErrMissingImageSource = errors.New("image element has no src attribute")

// imagePattern matches a self-contained image element, with or without a
// self-closing slash.
var imagePattern = regexp.MustCompile(`(?is)<img(\s[^>]*)?/?>`)

// ImageRewriter defines the contract for the image rewriting stage.
type ImageRewriter interface {
	RewriteImages(ctx context.Context, content string) (string, error)
}

// InlineImageRewriter rewrites image elements into BBCode image tags.
type InlineImageRewriter struct{}

// RewriteImages replaces every <img ...> with [img]<src>[/img]. If any
// matched image lacks a src attribute the conversion fails and no partial
// output is returned.
func (r *InlineImageRewriter) RewriteImages(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var firstErr error
	replaced := imagePattern.ReplaceAllStringFunc(content, func(match string) string {
		m := imagePattern.FindStringSubmatch(match)
		// Drop a trailing self-closing slash so it cannot be swallowed
		// by an unquoted attribute value.
		attrs := strings.TrimSuffix(strings.TrimSpace(m[1]), "/")

		src, ok := attrValue(srcAttr, attrs)
		if !ok {
			if firstErr == nil {
				firstErr = ErrMissingImageSource
			}
			return match
		}
		return "[img]" + src + "[/img]"
	})
	if firstErr != nil {
		return "", firstErr
	}
	return replaced, nil
}
