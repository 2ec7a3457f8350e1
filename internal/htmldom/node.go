// Package htmldom provides the small set of DOM helper primitives the
// scorer and cleaner need on top of golang.org/x/net/html: attribute
// lookup/mutation, tag-name access, text-length accounting, emptiness
// checks, and descendant search. Every function here is a direct port of
// the node helpers in the original Rust crate's html.rs, adapted to
// golang.org/x/net/html's linked-list child representation.
package htmldom

import (
	"strings"

	"golang.org/x/net/html"
)

// Attr returns the first matching attribute value for name on node, and
// whether it was present. Node kinds other than ElementNode never have
// attributes.
func Attr(node *html.Node, name string) (string, bool) {
	if node == nil || node.Type != html.ElementNode {
		return "", false
	}
	for _, a := range node.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr replaces the value of the first matching attribute on node. It is
// a no-op when the attribute is absent.
func SetAttr(node *html.Node, name, value string) {
	if node == nil || node.Type != html.ElementNode {
		return
	}
	for i, a := range node.Attr {
		if a.Key == name {
			node.Attr[i].Val = value
			return
		}
	}
}

// CleanAttr removes the first matching attribute from node, if present.
func CleanAttr(node *html.Node, name string) {
	if node == nil || node.Type != html.ElementNode {
		return
	}
	for i, a := range node.Attr {
		if a.Key == name {
			node.Attr = append(node.Attr[:i], node.Attr[i+1:]...)
			return
		}
	}
}

// TagName returns the lowercase tag name of an element node, or "" for any
// other node kind.
func TagName(node *html.Node) string {
	if node == nil || node.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(node.Data)
}

// Children returns node's children in DFS sibling order as a slice, so
// callers can iterate without juggling the FirstChild/NextSibling linked
// list directly.
func Children(node *html.Node) []*html.Node {
	if node == nil {
		return nil
	}
	var out []*html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// RemoveChildren detaches each node in dead from its parent. Callers must
// collect removals while iterating a stable snapshot of the children (see
// Children) and call RemoveChildren only after that iteration completes, so
// that removals never disturb a walk over the same children.
func RemoveChildren(parent *html.Node, dead []*html.Node) {
	for _, n := range dead {
		if n.Parent == parent {
			parent.RemoveChild(n)
		}
	}
}

// TextLen sums the Unicode code-point count of the trimmed text of every
// descendant text node.
func TextLen(node *html.Node) int {
	if node == nil {
		return 0
	}
	length := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			length += len([]rune(strings.TrimSpace(c.Data)))
		case html.ElementNode:
			length += TextLen(c)
		}
	}
	return length
}

// FindDescendants returns every descendant of node whose lowercase tag name
// equals tag, in DFS pre-order.
func FindDescendants(node *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && TagName(c) == tag {
			out = append(out, c)
		}
		out = append(out, FindDescendants(c, tag)...)
	}
	return out
}

// HasDescendantWithTagIn reports whether any descendant of node has a
// lowercase tag name present in tags.
func HasDescendantWithTagIn(node *html.Node, tags []string) bool {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		name := TagName(c)
		for _, t := range tags {
			if name == t {
				return true
			}
		}
		if c.Type == html.ElementNode && HasDescendantWithTagIn(c, tags) {
			return true
		}
	}
	return false
}

// TextChildrenCount counts node's direct-child text nodes whose trimmed
// content is at least 20 characters long.
func TextChildrenCount(node *html.Node) int {
	count := 0
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode && len([]rune(strings.TrimSpace(c.Data))) >= 20 {
			count++
		}
	}
	return count
}

// IsEmpty reports whether node counts as empty: every child is either
// whitespace-only text or an empty li/dt/dd/p/div, and node's own tag is
// one of li, dt, dd, p, div, canvas.
func IsEmpty(node *html.Node) bool {
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return false
			}
		case html.ElementNode:
			switch TagName(c) {
			case "li", "dt", "dd", "p", "div":
				if !IsEmpty(c) {
					return false
				}
			default:
				return false
			}
		default:
			// comments, doctypes etc. don't block emptiness
		}
	}
	switch TagName(node) {
	case "li", "dt", "dd", "p", "div", "canvas":
		return true
	default:
		return false
	}
}
