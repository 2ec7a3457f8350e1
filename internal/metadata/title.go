package metadata

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/agnivade/levenshtein"
)

// titleSplittersRe matches the separators ("The Page : Site", "The Page -
// Site", "The Page | Site") a breadcrumbed or site-suffixed title is built
// from.
var titleSplittersRe = regexp.MustCompile(`(: | - | \| )`)

// domainEndingsRe strips common TLDs before a domain is fuzzy-matched
// against a title segment.
var domainEndingsRe = regexp.MustCompile(`\.com$|\.net$|\.org$|\.co\.uk$`)

// CleanTitle resolves a raw <title> string against the page URL and
// document, stripping a trailing/leading site name or breadcrumb trail and
// falling back to the document's sole <h1> when the result looks wrong.
func CleanTitle(rawTitle string, pageURL *url.URL, doc *goquery.Document) string {
	cleaned := strings.TrimSpace(rawTitle)
	if cleaned == "" {
		return ""
	}

	if titleSplittersRe.MatchString(cleaned) {
		cleaned = resolveSplitTitle(cleaned, pageURL)
	}

	if len(cleaned) > 150 || len(cleaned) == 0 {
		h1s := doc.Find("h1")
		if h1s.Length() == 1 {
			cleaned = strings.TrimSpace(h1s.Text())
		}
	}

	return normalizeSpaces(cleaned)
}

func resolveSplitTitle(title string, pageURL *url.URL) string {
	segments := splitPreservingSeparators(title, titleSplittersRe)
	if len(segments) <= 1 {
		return title
	}

	if t := extractBreadcrumbTitle(segments, title); t != "" {
		return t
	}
	if t := cleanDomainFromTitle(segments, pageURL); t != "" {
		return t
	}
	return title
}

func splitPreservingSeparators(s string, re *regexp.Regexp) []string {
	var out []string
	last := 0
	for _, m := range re.FindAllStringIndex(s, -1) {
		start, end := m[0], m[1]
		if start > last {
			out = append(out, s[last:start])
		}
		out = append(out, s[start:end])
		last = end
	}
	if last < len(s) {
		out = append(out, s[last:])
	}
	return out
}

// extractBreadcrumbTitle handles heavily-breadcrumbed titles ("NYTimes -
// Blogs - Bits - The Best Gadgets on Earth") by finding a separator that
// repeats, splitting on that instead, and keeping whichever end segment is
// longest.
func extractBreadcrumbTitle(segments []string, full string) string {
	if len(segments) < 6 {
		return ""
	}

	counts := map[string]int{}
	for _, s := range segments {
		counts[s]++
	}
	var mostCommon string
	var mostCount int
	for term, count := range counts {
		if count > mostCount {
			mostCommon, mostCount = term, count
		}
	}
	if mostCount >= 2 && len(mostCommon) <= 4 {
		segments = strings.Split(full, mostCommon)
	}

	if len(segments) == 0 {
		return full
	}
	ends := []string{segments[0], segments[len(segments)-1]}
	longest := ""
	for _, e := range ends {
		if len(e) > len(longest) {
			longest = e
		}
	}
	if len(longest) > 10 {
		return strings.TrimSpace(longest)
	}
	return full
}

// cleanDomainFromTitle drops a title segment that fuzzy-matches the page's
// host, using Levenshtein distance as the similarity measure.
func cleanDomainFromTitle(segments []string, pageURL *url.URL) string {
	if pageURL == nil || len(segments) < 2 {
		return ""
	}
	nakedDomain := domainEndingsRe.ReplaceAllString(pageURL.Host, "")

	start := strings.ToLower(strings.Replace(segments[0], " ", "", 1))
	if levenshteinRatio(start, nakedDomain) > 0.4 && len(start) > 5 && len(segments) >= 3 {
		return strings.Join(segments[2:], "")
	}

	end := strings.ToLower(strings.Replace(segments[len(segments)-1], " ", "", 1))
	if levenshteinRatio(end, nakedDomain) > 0.4 && len(end) >= 5 && len(segments) >= 3 {
		return strings.Join(segments[:len(segments)-2], "")
	}

	return ""
}

func levenshteinRatio(a, b string) float64 {
	if a == b {
		return 1.0
	}
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(dist)/float64(maxLen)
}

var spacesRe = regexp.MustCompile(`\s+`)

func normalizeSpaces(s string) string {
	return strings.TrimSpace(spacesRe.ReplaceAllString(s, " "))
}
