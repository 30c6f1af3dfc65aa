// Package html2bbcode converts HTML markup into BBCode markup.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv, err := html2bbcode.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, html2bbcode.Input{
//	    HTML:       "<b>Hello</b> <a href=\"http://example.com\">world</a>",
//	    DocumentID: "post-42",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.BBCode)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. HTML entity decoding (&amp;, &lt;, numeric references)
//  2. Snippet extraction: <pre>, <code> and [code] blocks are removed and
//     replaced with placeholder markers so their content survives untouched
//  3. Anchor rewriting: <a href target> becomes [url=... t=...]...[/url]
//  4. Image rewriting: <img src> becomes [img]...[/img]
//  5. Generic tag rewriting: bold, italic, underline, strike, lists, center
//     and line breaks are mapped to their BBCode equivalents
//  6. Remaining HTML tags are stripped and the extracted snippets are
//     restored in their original order, wrapped in [code] tags
//
// Conversion is a pure function of the input: no I/O, no shared state. A
// single Converter is safe for concurrent use.
//
// # Error Handling
//
// The only hard failure is an image element without a src attribute, reported
// as ErrMalformedInput carrying the Input.DocumentID. Every other
// irregularity (missing href, stray tags, unknown elements) degrades to a
// documented fallback instead of failing.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := html2bbcode.NewConverter(
//	    html2bbcode.WithMaxInputSize(1 << 20),
//	)
package html2bbcode
