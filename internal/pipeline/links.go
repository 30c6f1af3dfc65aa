package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// anchorPattern matches a whole anchor element with its inner text captured
// non-greedily. The inner text is preserved for later stages, so nested tags
// inside a link still get rewritten afterwards.
var anchorPattern = regexp.MustCompile(`(?is)<a(\s[^>]*)?>(.*?)</a>`)

// Defaults for absent anchor attributes. Malformed attributes fall back
// silently; this stage never fails.
const (
	defaultHref   = "#"
	defaultTarget = "_self"
)

// LinkRewriter defines the contract for the anchor rewriting stage.
type LinkRewriter interface {
	RewriteLinks(ctx context.Context, content string) string
}

// AnchorRewriter rewrites anchor elements into BBCode URL tags carrying the
// href and target as named parameters.
type AnchorRewriter struct{}

// RewriteLinks replaces every <a ...>inner</a> with
// [url=<href> t=<target>]inner[/url].
func (r *AnchorRewriter) RewriteLinks(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	return anchorPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := anchorPattern.FindStringSubmatch(match)
		attrs, inner := m[1], m[2]

		href, ok := attrValue(hrefAttr, attrs)
		if !ok {
			href = defaultHref
		}
		target, ok := attrValue(targetAttr, attrs)
		if !ok {
			target = defaultTarget
		}

		return "[url=" + href + " t=" + strings.ToLower(target) + "]" + inner + "[/url]"
	})
}
