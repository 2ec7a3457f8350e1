// Package metadata extracts the secondary article attributes the
// specification's core pipeline does not compute itself: author, published
// date, lead image, site name, excerpt, word count, text direction, and
// language. Each extractor reads from a parsed *html.Node tree of the
// original document (wrapped in a *goquery.Document for meta-tag and
// selector queries), separate from the tree the core scorer mutates, plus
// the cleaned content the core produced.
package metadata

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Metadata is the bundle of secondary attributes attached to a Result
// alongside the core title/content/text triple.
type Metadata struct {
	Author        string
	PublishedDate string
	Image         string
	SiteName      string
	Excerpt       string
	WordCount     int
	Direction     string
	Language      string
}

// Extract runs every metadata extractor over root (the full parsed
// document, before cleaning) and contentHTML/contentText (the core's
// cleaned output), resolving relative URLs against pageURL.
func Extract(root *html.Node, contentHTML, contentText string, pageURL *url.URL) Metadata {
	doc := goquery.NewDocumentFromNode(root)

	return Metadata{
		Author:        ExtractAuthor(doc),
		PublishedDate: ExtractDate(doc),
		Image:         ExtractImage(doc, contentHTML, pageURL),
		SiteName:      ExtractSiteName(doc, pageURL),
		Excerpt:       ExtractExcerpt(doc, contentText),
		WordCount:     WordCount(contentText),
		Direction:     ExtractDirection(root),
		Language:      ExtractLanguage(root),
	}
}

// metaContent returns the content attribute of the first <meta> element
// whose name or property attribute equals one of names, tried in order.
func metaContent(doc *goquery.Document, names ...string) string {
	for _, name := range names {
		sel := doc.Find(`meta[name="` + name + `"]`)
		if sel.Length() == 0 {
			sel = doc.Find(`meta[property="` + name + `"]`)
		}
		if val, ok := sel.First().Attr("content"); ok {
			val = strings.TrimSpace(val)
			if val != "" {
				return val
			}
		}
	}
	return ""
}

// WordCount counts whitespace-separated tokens in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
