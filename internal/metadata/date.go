package metadata

import (
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-dateparser"
)

var dateMetaTags = []string{
	"article:published_time", "datePublished", "date", "dc.date.issued",
	"dc.date", "sailthru.date", "article.published", "published-date",
	"publish-date", "og:updated_time", "article:modified_time",
}

var dateFallbackFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// ExtractDate returns the best-guess publish date as an RFC3339 string. The
// first non-empty date meta tag is used; only when none is present is a
// <time datetime="..."> attribute, or else the first <time> element's text,
// used instead. It returns "" when the chosen value is empty or does not
// parse.
func ExtractDate(doc *goquery.Document) string {
	raw := metaContent(doc, dateMetaTags...)
	if raw == "" {
		if dt, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
			raw = dt
		} else {
			raw = doc.Find("time").First().Text()
		}
	}
	if raw == "" {
		return ""
	}

	if t, err := parseDate(raw); err == nil {
		return t.UTC().Format(time.RFC3339)
	}
	return ""
}

func parseDate(raw string) (time.Time, error) {
	cfg := &dateparser.Configuration{
		CurrentTime:   time.Now(),
		StrictParsing: false,
	}
	if parsed, err := dateparser.Parse(cfg, raw); err == nil {
		return parsed.Time, nil
	}

	for _, layout := range dateFallbackFormats {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errNoDate
}

type dateError string

func (e dateError) Error() string { return string(e) }

const errNoDate = dateError("metadata: no parseable date")
