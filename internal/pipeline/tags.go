package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// Precompiled regex patterns for the generic rewriter and the stripper.
var (
	// Any start or end tag beginning with a letter. Attributes may span
	// newlines; text like "a < b" is left alone.
	htmlTagPattern = regexp.MustCompile(`(?s)</?[a-zA-Z][^<>]*>`)

	// Tag name at the start of an already-lowercased tag token.
	tagNamePattern = regexp.MustCompile(`^<(/?)([a-z][a-z0-9]*)`)

	// Stripper patterns: comments first, then any leftover tag token
	// (including </...> and <!DOCTYPE ...>).
	htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	strayTagPattern    = regexp.MustCompile(`(?s)<[!/]?[a-zA-Z][^>]*>`)
)

// tagAction describes what happens to a recognized tag.
type tagAction int

const (
	actionLiteral tagAction = iota // replace with the entry's text
	actionNewline                  // replace with a single newline
	actionDrop                     // remove entirely
)

type tagRewrite struct {
	action tagAction
	text   string
}

// tagTable maps normalized tag keys to their BBCode rewrites. Closing tags
// are keyed with a leading slash. Attributes inside a matched tag are ignored
// for the mapping; tags not in the table pass through lower-cased so the
// stripper can remove them as plain HTML cruft.
var tagTable = map[string]tagRewrite{
	"strong":  {actionLiteral, "[b]"},
	"b":       {actionLiteral, "[b]"},
	"/strong": {actionLiteral, "[/b]"},
	"/b":      {actionLiteral, "[/b]"},
	"em":      {actionLiteral, "[i]"},
	"i":       {actionLiteral, "[i]"},
	"/em":     {actionLiteral, "[/i]"},
	"/i":      {actionLiteral, "[/i]"},
	"u":       {actionLiteral, "[u]"},
	"/u":      {actionLiteral, "[/u]"},
	"strike":  {actionLiteral, "[s]"},
	"del":     {actionLiteral, "[s]"},
	"/strike": {actionLiteral, "[/s]"},
	"/del":    {actionLiteral, "[/s]"},
	"ul":      {actionLiteral, "[list]"},
	"/ul":     {actionLiteral, "[/list]"},
	"ol":      {actionLiteral, "[list=1]"},
	"/ol":     {actionLiteral, "[/list]"},
	"li":      {actionLiteral, "[*]"},
	"/li":     {actionDrop, ""},
	"center":  {actionLiteral, "[center]"},
	"/center": {actionLiteral, "[/center]"},
	"br":      {actionNewline, ""},
}

// TagRewriter defines the contract for the generic tag rewriting stage.
type TagRewriter interface {
	RewriteTags(ctx context.Context, content string) string
}

// TableTagRewriter maps the fixed table of remaining HTML tags to BBCode.
type TableTagRewriter struct{}

// RewriteTags lower-cases every remaining HTML start or end tag and maps it
// through tagTable. BBCode produced by earlier stages uses square brackets
// and is untouched, so the rewriter is idempotent on converted text.
func (r *TableTagRewriter) RewriteTags(ctx context.Context, content string) string {
	if ctx.Err() != nil {
		return content
	}

	return htmlTagPattern.ReplaceAllStringFunc(content, func(match string) string {
		lowered := strings.ToLower(match)

		m := tagNamePattern.FindStringSubmatch(lowered)
		if m == nil {
			return lowered
		}
		key := m[1] + m[2]

		rw, ok := tagTable[key]
		if !ok {
			return lowered
		}
		switch rw.action {
		case actionNewline:
			return "\n"
		case actionDrop:
			return ""
		default:
			return rw.text
		}
	})
}

// StripTags removes every remaining HTML tag token from the text, leaving
// only the transformed BBCode and plain text. Comments go first so their
// inner ">" characters cannot truncate the match.
func StripTags(content string) string {
	content = htmlCommentPattern.ReplaceAllString(content, "")
	return strayTagPattern.ReplaceAllString(content, "")
}
