package metadata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var excerptMetaTags = []string{"og:description", "twitter:description", "description"}

const excerptMaxLength = 200

// ExtractExcerpt returns a meta description if present, otherwise an
// ellipsized prefix of the extracted content's text.
func ExtractExcerpt(doc *goquery.Document, contentText string) string {
	if excerpt := metaContent(doc, excerptMetaTags...); excerpt != "" {
		return ellipsize(normalizeSpaces(excerpt), excerptMaxLength)
	}
	return ellipsize(normalizeSpaces(contentText), excerptMaxLength)
}

// ellipsize truncates s to at most maxLength runes at a word boundary,
// appending an ellipsis when truncation happened.
func ellipsize(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	truncated := string(runes[:maxLength])
	if idx := strings.LastIndexAny(truncated, " \t\n"); idx > 0 {
		truncated = truncated[:idx]
	}
	return strings.TrimSpace(truncated) + "…"
}
