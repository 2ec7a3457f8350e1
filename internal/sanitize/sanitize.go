// Package sanitize runs a defense-in-depth bluemonday pass over the core
// cleaner's output. The scorer's Clean already removes script/style
// elements and id/class/style attributes by construction (it does not strip
// event-handler attributes such as onclick), but this second
// pass guards against anything a future cleaner change, a malformed
// attribute the cleaner didn't anticipate, or a caller-supplied fragment
// might let through.
package sanitize

import "github.com/microcosm-cc/bluemonday"

// ArticlePolicy is the allow-list used to sanitize extracted article HTML
// before it is handed to a caller.
var ArticlePolicy = newArticlePolicy()

func newArticlePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()

	p.AllowElements(
		"p", "br", "strong", "b", "em", "i", "u", "s", "sub", "sup",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"ul", "ol", "li", "blockquote", "pre", "code",
		"table", "thead", "tbody", "tr", "td", "th",
		"img", "a", "span", "div", "figure", "figcaption",
	)

	p.AllowAttrs("href").OnElements("a")
	p.RequireNoReferrerOnLinks(true)
	p.RequireNoFollowOnLinks(true)
	p.AllowAttrs("src", "alt", "width", "height", "srcset", "sizes").OnElements("img")

	return p
}

// Article sanitizes HTML intended for display, removing anything outside
// ArticlePolicy's allow-list.
func Article(html string) string {
	return ArticlePolicy.Sanitize(html)
}
