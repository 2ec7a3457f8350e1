package metadata

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var siteNameMetaTags = []string{"og:site_name", "application-name"}

// ExtractSiteName returns the og:site_name (or else application-name) meta
// tag if present, otherwise the page's bare host (www. stripped).
func ExtractSiteName(doc *goquery.Document, pageURL *url.URL) string {
	if name := metaContent(doc, siteNameMetaTags...); name != "" {
		return name
	}
	if pageURL == nil {
		return ""
	}
	return strings.TrimPrefix(pageURL.Host, "www.")
}
