package metadata

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var imageMetaTags = []string{"og:image", "twitter:image", "image_src"}

var negativeImageHintsRe = regexp.MustCompile(`(?i)spacer|sprite|blank|throbber|icon|social|advert|spinner|loader|loading|rating|share|facebook|twitter|logo`)

// ExtractImage returns the page's lead image URL: an og:image/twitter:image/
// image_src meta tag or a <link rel="image_src"> if present, otherwise the
// first non-decorative <img> inside the extracted content. Relative URLs
// are resolved against pageURL.
func ExtractImage(doc *goquery.Document, contentHTML string, pageURL *url.URL) string {
	if img := metaContent(doc, imageMetaTags...); img != "" {
		return resolveURL(img, pageURL)
	}
	if src, ok := doc.Find(`link[rel="image_src"]`).First().Attr("href"); ok && src != "" {
		return resolveURL(src, pageURL)
	}

	contentDoc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return ""
	}
	var found string
	contentDoc.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
		src, ok := img.Attr("src")
		if !ok || src == "" || negativeImageHintsRe.MatchString(src) {
			return true
		}
		found = src
		return false
	})
	if found == "" {
		return ""
	}
	return resolveURL(found, pageURL)
}

func resolveURL(raw string, pageURL *url.URL) string {
	if pageURL == nil {
		return raw
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return pageURL.ResolveReference(ref).String()
}
