package pipeline

import (
	"context"
	"testing"
)

func TestTableTagRewriter_RewriteTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bold via b",
			input:    "<b>Hi</b>",
			expected: "[b]Hi[/b]",
		},
		{
			name:     "bold via strong with attributes",
			input:    `<strong class="x">Hi</strong>`,
			expected: "[b]Hi[/b]",
		},
		{
			name:     "italic via em and i",
			input:    "<em>a</em> <i>b</i>",
			expected: "[i]a[/i] [i]b[/i]",
		},
		{
			name:     "underline",
			input:    "<u>a</u>",
			expected: "[u]a[/u]",
		},
		{
			name:     "strike via strike and del",
			input:    "<strike>a</strike> <del>b</del>",
			expected: "[s]a[/s] [s]b[/s]",
		},
		{
			name:     "unordered list",
			input:    "<ul><li>one</li><li>two</li></ul>",
			expected: "[list][*]one[*]two[/list]",
		},
		{
			name:     "ordered list",
			input:    "<ol><li>one</li></ol>",
			expected: "[list=1][*]one[/list]",
		},
		{
			name:     "center",
			input:    "<center>mid</center>",
			expected: "[center]mid[/center]",
		},
		{
			name:     "br variants become newlines",
			input:    "a<br>b<br/>c<br />d",
			expected: "a\nb\nc\nd",
		},
		{
			name:     "uppercase tags normalized",
			input:    "<B>Hi</B>",
			expected: "[b]Hi[/b]",
		},
		{
			name:     "unknown tag passes through lower-cased",
			input:    `<DIV CLASS="X">text</DIV>`,
			expected: `<div class="x">text</div>`,
		},
		{
			name:     "already-converted BBCode untouched",
			input:    "[b]Hi[/b] [url=http://x.com t=_self]x[/url]",
			expected: "[b]Hi[/b] [url=http://x.com t=_self]x[/url]",
		},
		{
			name:     "stray angle bracket in text untouched",
			input:    "a < b and c > d",
			expected: "a < b and c > d",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	rewriter := &TableTagRewriter{}
	ctx := context.Background()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := rewriter.RewriteTags(ctx, tt.input); got != tt.expected {
				t.Errorf("RewriteTags() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRewriteTags_Idempotent(t *testing.T) {
	t.Parallel()

	rewriter := &TableTagRewriter{}
	ctx := context.Background()

	input := "<b>Hi</b> <ul><li>x</li></ul>"
	once := rewriter.RewriteTags(ctx, input)
	twice := rewriter.RewriteTags(ctx, once)
	if once != twice {
		t.Errorf("RewriteTags() not idempotent: first %q, second %q", once, twice)
	}
}

func TestStripTags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple tags removed",
			input:    "<div>text</div>",
			expected: "text",
		},
		{
			name:     "tags with attributes removed",
			input:    `<span class="x" data-y='z'>text</span>`,
			expected: "text",
		},
		{
			name:     "doctype removed",
			input:    "<!DOCTYPE html>text",
			expected: "text",
		},
		{
			name:     "comments removed",
			input:    "a<!-- note with > inside -->b",
			expected: "ab",
		},
		{
			name:     "BBCode untouched",
			input:    "[b]Hi[/b] [code]\nx\n[/code]",
			expected: "[b]Hi[/b] [code]\nx\n[/code]",
		},
		{
			name:     "snippet markers untouched",
			input:    "a " + SnippetMarker + " b",
			expected: "a " + SnippetMarker + " b",
		},
		{
			name:     "tag spanning newlines removed",
			input:    "<div\n class=\"x\">text</div>",
			expected: "text",
		},
		{
			name:     "plain text unchanged",
			input:    "no tags here",
			expected: "no tags here",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := StripTags(tt.input); got != tt.expected {
				t.Errorf("StripTags() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "named entities",
			input:    "fish &amp; chips",
			expected: "fish & chips",
		},
		{
			name:     "numeric reference",
			input:    "&#39;quoted&#39;",
			expected: "'quoted'",
		},
		{
			name:     "angle brackets decoded before conversion",
			input:    "&lt;b&gt;Hi&lt;/b&gt;",
			expected: "<b>Hi</b>",
		},
		{
			name:     "no entities",
			input:    "plain",
			expected: "plain",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := DecodeEntities(tt.input); got != tt.expected {
				t.Errorf("DecodeEntities() = %q, want %q", got, tt.expected)
			}
		})
	}
}
