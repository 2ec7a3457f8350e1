package htmldom

import "golang.org/x/net/html"

// ExtractText serializes node's descendant text, inserting a newline
// before any child element whose preceding sibling element was a <p>, when
// deep is true. It is used both to gather the raw text a candidate is
// scored on and to produce the final plain-text rendering — the original
// Rust implementation reuses a single function for both, and this keeps
// that behavior rather than splitting it into two near-identical walks.
func ExtractText(node *html.Node, buf *[]byte, deep bool) {
	lastTagWasP := false
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			*buf = append(*buf, c.Data...)
		case html.ElementNode:
			if deep {
				if lastTagWasP {
					*buf = append(*buf, '\n')
				}
				ExtractText(c, buf, deep)
				lastTagWasP = TagName(c) == "p"
			}
		}
	}
}

// Text is a convenience wrapper around ExtractText that returns the result
// as a string, used wherever callers need the concatenated descendant text
// rather than a buffer to keep appending to (content scoring, title
// extraction).
func Text(node *html.Node) string {
	var buf []byte
	ExtractText(node, &buf, true)
	return string(buf)
}
