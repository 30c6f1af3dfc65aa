package pipeline

import "regexp"

// Attribute values may be double-quoted, single-quoted, or bare. The same
// sub-grammar serves the link and image stages, one precompiled pattern per
// attribute of interest.
var (
	hrefAttr   = attrPattern("href")
	srcAttr    = attrPattern("src")
	targetAttr = attrPattern("target")
)

// The name must follow whitespace, a quote, or the start of the attribute
// text. A word boundary is not enough: it would let data-src satisfy a src
// lookup.
func attrPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)(?:^|[\s"'])` + name + `\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
}

// attrValue extracts an attribute value from a tag's attribute text.
// The second return reports whether the attribute was present at all;
// a present-but-empty quoted value is still "present".
func attrValue(re *regexp.Regexp, attrs string) (string, bool) {
	m := re.FindStringSubmatchIndex(attrs)
	if m == nil {
		return "", false
	}
	for i := 1; i <= 3; i++ {
		if m[2*i] >= 0 {
			return attrs[m[2*i]:m[2*i+1]], true
		}
	}
	return "", false
}
