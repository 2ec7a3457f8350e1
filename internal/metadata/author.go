package metadata

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// authorMetaTags is tried in order, most distinct first. "author" alone is
// excluded — it too often names the page's developer rather than the
// article's writer.
var authorMetaTags = []string{
	"byl", "clmst", "dc.author", "dcsext.author", "dc.creator",
	"article:author", "rbauthors", "authors",
}

var authorSelectors = []string{
	".author.vcard .fn", ".byline.vcard .fn", ".byline .vcard .fn",
	".byline .by .author", ".byline .by", ".byline .author",
	"a[rel=author]", "#author", ".author", ".articleauthor", ".byline",
}

const authorMaxLength = 300

var bylineRe = regexp.MustCompile(`(?i)^[\n\s]*By\s*`)

// ExtractAuthor looks for an author meta tag, then a byline-ish selector,
// stripping a leading "By " prefix from whatever is found.
func ExtractAuthor(doc *goquery.Document) string {
	if author := metaContent(doc, authorMetaTags...); author != "" {
		return cleanAuthor(author)
	}

	for _, sel := range authorSelectors {
		text := strings.TrimSpace(doc.Find(sel).First().Text())
		if text != "" && len(text) <= authorMaxLength {
			return cleanAuthor(text)
		}
	}

	return ""
}

func cleanAuthor(author string) string {
	author = bylineRe.ReplaceAllString(author, "")
	return normalizeSpaces(author)
}
