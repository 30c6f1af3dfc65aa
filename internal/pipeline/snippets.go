package pipeline

import (
	"context"
	"regexp"
	"strings"
)

// SnippetMarker stands in for an extracted code region until restoration.
// It is delimited by Unicode Private Use Area characters, which are
// guaranteed to not conflict with any standard characters and pass through
// the rewriting stages unchanged (no angle brackets, no square brackets).
const SnippetMarker = "\uE000snippet\uE001"

// snippetPattern matches the three verbatim wrapper forms: <pre>, <code>,
// and bracket-style [code] / [code=lang]. Case-insensitive, non-greedy,
// spanning newlines. Which alternative matched is determined by submatch
// position, not emptiness: empty blocks are still valid snippets.
var snippetPattern = regexp.MustCompile(
	`(?is)<pre>(.*?)</pre>|<code>(.*?)</code>|\[(code(?:=[^\]\r\n]+)?)\](.*?)\[/code\]`)

// SnippetKind identifies which wrapper form a snippet was extracted from.
type SnippetKind int

const (
	SnippetPre     SnippetKind = iota // <pre>...</pre>
	SnippetCode                       // <code>...</code>
	SnippetBracket                    // [code]...[/code] or [code=lang]...[/code]
)

// Snippet is one captured verbatim code region. Snippets are write-once:
// captured before any rewriting, consumed once during restoration.
type Snippet struct {
	Kind    SnippetKind
	Content string // inner content, trimmed
	OpenTag string // original bracket open tag ("code" or "code=lang"), bracket kind only
}

// BBCode renders the snippet wrapped in its BBCode code tags. Bracket-style
// snippets keep their original opening tag, including any language qualifier.
func (s Snippet) BBCode() string {
	open := "code"
	if s.Kind == SnippetBracket {
		open = s.OpenTag
	}
	return "[" + open + "]\n" + s.Content + "\n[/code]"
}

// SnippetExtractor defines the contract for the snippet extraction stage.
type SnippetExtractor interface {
	ExtractSnippets(ctx context.Context, content string) (string, []Snippet)
}

// CodeSnippetExtractor removes verbatim code regions and replaces each with
// a placeholder marker, preserving document order.
type CodeSnippetExtractor struct{}

// ExtractSnippets returns the content with every matched region replaced by
// SnippetMarker, plus the captured snippets in document order. Content with
// no code regions comes back unchanged with a nil snippet slice.
func (e *CodeSnippetExtractor) ExtractSnippets(ctx context.Context, content string) (string, []Snippet) {
	if ctx.Err() != nil {
		return content, nil
	}

	var snippets []Snippet
	replaced := snippetPattern.ReplaceAllStringFunc(content, func(match string) string {
		m := snippetPattern.FindStringSubmatchIndex(match)
		switch {
		case m[2] >= 0: // <pre>
			snippets = append(snippets, Snippet{
				Kind:    SnippetPre,
				Content: strings.TrimSpace(match[m[2]:m[3]]),
			})
		case m[4] >= 0: // <code>
			snippets = append(snippets, Snippet{
				Kind:    SnippetCode,
				Content: strings.TrimSpace(match[m[4]:m[5]]),
			})
		default: // [code] / [code=lang]
			snippets = append(snippets, Snippet{
				Kind:    SnippetBracket,
				OpenTag: match[m[6]:m[7]],
				Content: strings.TrimSpace(match[m[8]:m[9]]),
			})
		}
		return SnippetMarker
	})

	return replaced, snippets
}

// RestoreSnippets reinjects extracted snippets into their marker positions,
// consuming exactly one marker per snippet, left to right. Runs after tag
// stripping, so the markers are the only non-BBCode tokens left in the text.
func RestoreSnippets(content string, snippets []Snippet) string {
	for _, s := range snippets {
		idx := strings.Index(content, SnippetMarker)
		if idx < 0 {
			break
		}
		content = content[:idx] + s.BBCode() + content[idx+len(SnippetMarker):]
	}
	return content
}
