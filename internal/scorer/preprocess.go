package scorer

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/go-readability/readability/internal/htmldom"
)

// Preprocess walks node in DFS order, stripping scripts/styles/unlikely-
// class chrome, extracting the document title into title, and rewriting
// runs of two-or-more consecutive <br> siblings followed by a non-empty
// text node into a <p>. It returns true when node itself should be removed
// by its parent.
func (s *Scorer) Preprocess(node *html.Node, title *strings.Builder) bool {
	if node.Type == html.ElementNode {
		tag := htmldom.TagName(node)
		switch tag {
		case "script", "link", "style":
			return true
		case "title":
			title.WriteString(htmldom.Text(node))
		default:
			for _, name := range [...]string{"id", "class"} {
				val, ok := htmldom.Attr(node, name)
				if !ok {
					continue
				}
				if tag != "body" &&
					s.opts.UnlikelyCandidates.MatchString(val) &&
					!s.opts.LikelyCandidates.MatchString(val) {
					return true
				}
			}
		}
	}

	var useless []*html.Node
	var paragraphs []*html.Node
	brCount := 0

	for _, child := range htmldom.Children(node) {
		if s.Preprocess(child, title) {
			useless = append(useless, child)
		}

		switch child.Type {
		case html.ElementNode:
			if htmldom.TagName(child) == "br" {
				brCount++
			} else {
				brCount = 0
			}
		case html.TextNode:
			if brCount >= 2 && strings.TrimSpace(child.Data) != "" {
				paragraphs = append(paragraphs, child)
				brCount = 0
			}
		}
	}

	htmldom.RemoveChildren(node, useless)

	for _, textNode := range paragraphs {
		p := &html.Node{
			Type:     html.ElementNode,
			Data:     "p",
			DataAtom: atom.P,
		}
		node.InsertBefore(p, textNode)
		node.RemoveChild(textNode)
		p.AppendChild(&html.Node{Type: html.TextNode, Data: textNode.Data})
	}

	return false
}
