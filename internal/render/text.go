// Package render turns a cleaned content subtree into its final plain-text
// form — the sixth and last stage of the extraction pipeline.
package render

import (
	"golang.org/x/net/html"

	"github.com/go-readability/readability/internal/htmldom"
)

// Text serializes node's children to plain text, inserting a newline
// between siblings whenever the previous element sibling was a <p>.
func Text(node *html.Node) string {
	var buf []byte
	htmldom.ExtractText(node, &buf, true)
	return string(buf)
}
