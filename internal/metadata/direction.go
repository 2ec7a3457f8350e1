package metadata

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/go-readability/readability/internal/htmldom"
)

// ExtractDirection returns the document's text direction: the dir
// attribute on <html> or <body> if set to "rtl" or "ltr", otherwise "ltr".
func ExtractDirection(root *html.Node) string {
	if htmlEl := findElement(root, "html"); htmlEl != nil {
		if dir, ok := htmldom.Attr(htmlEl, "dir"); ok {
			if d := strings.ToLower(strings.TrimSpace(dir)); d == "rtl" || d == "ltr" {
				return d
			}
		}
	}
	if body := findElement(root, "body"); body != nil {
		if dir, ok := htmldom.Attr(body, "dir"); ok {
			if d := strings.ToLower(strings.TrimSpace(dir)); d == "rtl" || d == "ltr" {
				return d
			}
		}
	}
	return "ltr"
}

// ExtractLanguage returns the lang attribute of <html>, or "" when absent.
func ExtractLanguage(root *html.Node) string {
	htmlEl := findElement(root, "html")
	if htmlEl == nil {
		return ""
	}
	lang, _ := htmldom.Attr(htmlEl, "lang")
	return strings.TrimSpace(lang)
}

func findElement(node *html.Node, tag string) *html.Node {
	if node.Type == html.ElementNode && node.Data == tag {
		return node
	}
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}
