package scorer

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-readability/readability/internal/htmldom"
)

var alwaysRemovableTags = map[string]bool{
	"script": true, "link": true, "style": true, "noscript": true,
	"meta": true, "h1": true, "object": true, "header": true,
	"footer": true, "aside": true,
}

var conditionallyUselessTags = map[string]bool{
	"form": true, "table": true, "ul": true, "div": true,
}

// Clean recursively walks node (the chosen top-candidate subtree),
// stripping id/class/style from every element, rewriting img/a URLs
// against pageURL, and removing nodes the rules below flag as useless. It
// returns true when node itself should be removed by its parent.
func (s *Scorer) Clean(id Path, node *html.Node, pageURL *url.URL, candidates Candidates) bool {
	useless := false

	switch node.Type {
	case html.DocumentNode, html.DoctypeNode:
		// never removable
	case html.TextNode:
		useless = strings.TrimSpace(node.Data) == ""
	case html.CommentNode:
		useless = true
	case html.ElementNode:
		tag := htmldom.TagName(node)
		switch {
		case alwaysRemovableTags[tag]:
			useless = true
		case conditionallyUselessTags[tag]:
			useless = s.isUseless(id, node, candidates)
		case tag == "img":
			useless = !fixURLAttr(node, "src", pageURL)
		case tag == "a":
			useless = !fixURLAttr(node, "href", pageURL)
		}
		htmldom.CleanAttr(node, "id")
		htmldom.CleanAttr(node, "class")
		htmldom.CleanAttr(node, "style")
	default:
		panic("scorer: Clean encountered a node kind the HTML parser never produces")
	}

	var dead []*html.Node
	for i, child := range htmldom.Children(node) {
		if s.Clean(id.Child(i), child, pageURL, candidates) {
			dead = append(dead, child)
		}
	}
	htmldom.RemoveChildren(node, dead)

	if htmldom.IsEmpty(node) {
		useless = true
	}
	return useless
}

// fixURLAttr resolves attrName on node against pageURL when its value is a
// relative reference, replacing it in place on success. It returns false
// when the attribute is absent (fatal for the node); a join failure leaves
// the original value untouched and is not fatal.
func fixURLAttr(node *html.Node, attrName string, pageURL *url.URL) bool {
	val, ok := htmldom.Attr(node, attrName)
	if !ok {
		return false
	}
	if strings.HasPrefix(val, "//") || strings.HasPrefix(val, "http://") || strings.HasPrefix(val, "https://") {
		return true
	}
	if pageURL == nil {
		return true
	}
	ref, err := url.Parse(val)
	if err != nil {
		return true
	}
	htmldom.SetAttr(node, attrName, pageURL.ResolveReference(ref).String())
	return true
}

// isUseless computes the §4.4 conditional-removal heuristic over node's
// subtree.
func (s *Scorer) isUseless(id Path, node *html.Node, candidates Candidates) bool {
	tag := htmldom.TagName(node)
	weight := s.classWeight(node)

	score := 0.0
	if c, ok := candidates[id]; ok {
		score = c.Score
	}
	if weight+score < 0 {
		return true
	}

	pCount := len(htmldom.FindDescendants(node, "p"))
	imgCount := len(htmldom.FindDescendants(node, "img"))
	inputCount := len(htmldom.FindDescendants(node, "input"))
	embedCount := len(htmldom.FindDescendants(node, "embed"))
	liCount := len(htmldom.FindDescendants(node, "li")) - 100

	textNodesLen := htmldom.TextChildrenCount(node)
	paraCount := textNodesLen + pCount
	contentLength := htmldom.TextLen(node)
	linkDensity := LinkDensity(node)

	switch {
	case imgCount > paraCount+textNodesLen:
		return true
	case liCount > paraCount && tag != "ul" && tag != "ol":
		return true
	case float64(inputCount) > floor(float64(paraCount)/3.0):
		return true
	case contentLength < 25 && (imgCount == 0 || imgCount > 2):
		return true
	case weight < 25 && linkDensity > 0.2:
		return true
	case (embedCount == 1 && contentLength < 35) || embedCount > 1:
		return true
	default:
		return false
	}
}
