package readability

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/go-readability/readability/internal/metadata"
)

// reparseForMetadata gives the metadata extractors their own parse of the
// original document: the core's parse tree gets mutated in place by
// Preprocess/Clean, so metadata (which wants the original meta tags,
// <time> elements, and <html lang>/<html dir>) reads from a fresh tree.
func reparseForMetadata(htmlContent string) (*html.Node, error) {
	return html.Parse(strings.NewReader(htmlContent))
}

// cleanTitleIfPossible re-resolves the core's raw title against site-name/
// breadcrumb heuristics. It degrades to "" (leaving the core's title
// untouched) if the document can't be re-parsed as a goquery document.
func cleanTitleIfPossible(rawTitle string, pageURL *url.URL, htmlContent string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	return metadata.CleanTitle(rawTitle, pageURL, doc)
}
