package pipeline

import "golang.org/x/net/html"

// DecodeEntities resolves HTML character references (&amp;, &#39;, &hellip;)
// in the raw input. Runs before every other stage so that entity-encoded
// markup is visible to the rewriters.
func DecodeEntities(content string) string {
	return html.UnescapeString(content)
}
