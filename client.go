package readability

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-readability/readability/internal/extract"
	"github.com/go-readability/readability/internal/fetch"
	"github.com/go-readability/readability/internal/metadata"
	"github.com/go-readability/readability/internal/scorer"
)

// Client is a thread-safe, reusable extractor. Create one with New and
// share it across goroutines; it holds no per-call mutable state.
type Client struct {
	httpClient           *http.Client
	userAgent            string
	timeout              time.Duration
	allowPrivateNetworks bool
	strict               bool
	headers              map[string]string
	scorerOptions        scorer.Options
}

// New builds a Client from the given options. Defaults: a 30s timeout,
// SSRF protection on, lenient (non-strict) HTML parsing, and the package's
// default scoring tunables.
func New(opts ...Option) *Client {
	c := &Client{
		userAgent:     "readability/1.0",
		timeout:       30 * time.Second,
		scorerOptions: scorer.DefaultOptions(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c
}

// Parse fetches pageURL and extracts its main content.
func (c *Client) Parse(ctx context.Context, pageURL string) (*Result, error) {
	if pageURL == "" {
		return nil, &ParseError{Code: ErrInvalidURL, Op: "Parse", Err: fmt.Errorf("empty URL")}
	}

	fetched, err := fetch.Fetch(ctx, pageURL, fetch.Options{
		Client:               c.httpClient,
		UserAgent:            c.userAgent,
		Headers:              c.headers,
		AllowPrivateNetworks: c.allowPrivateNetworks,
	})
	if err != nil {
		return nil, &ParseError{Code: classifyErr(ctx.Err(), err), URL: pageURL, Op: "Parse", Err: err}
	}

	html := fetch.DetectAndDecode(fetched.Body, fetched.ContentType)
	return c.parse(ctx, html, fetched.FinalURL, "Parse")
}

// ParseHTML extracts content from already-fetched HTML, resolving
// relative URLs against pageURL without performing any network request.
func (c *Client) ParseHTML(ctx context.Context, html, pageURL string) (*Result, error) {
	if pageURL == "" {
		return nil, &ParseError{Code: ErrInvalidURL, Op: "ParseHTML", Err: fmt.Errorf("empty URL")}
	}
	if html == "" {
		return nil, &ParseError{Code: ErrInvalidURL, Op: "ParseHTML", Err: fmt.Errorf("empty HTML content")}
	}
	return c.parse(ctx, html, pageURL, "ParseHTML")
}

func (c *Client) parse(ctx context.Context, htmlContent, pageURL, op string) (*Result, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, &ParseError{Code: ErrInvalidURL, URL: pageURL, Op: op, Err: err}
	}

	if err := ctx.Err(); err != nil {
		return nil, &ParseError{Code: classifyErr(err, nil), URL: pageURL, Op: op, Err: err}
	}

	readable, err := extract.Extract(strings.NewReader(htmlContent), parsedURL, extract.Options{
		Strict: c.strict,
		Scorer: c.scorerOptions,
	})
	if err != nil {
		return nil, &ParseError{Code: classifyErr(ctx.Err(), err), URL: pageURL, Op: op, Err: err}
	}

	root, parseErr := reparseForMetadata(htmlContent)
	var meta metadata.Metadata
	if parseErr == nil {
		meta = metadata.Extract(root, readable.Content, readable.Text, parsedURL)
	}

	title := readable.Title
	if cleaned := cleanTitleIfPossible(title, parsedURL, htmlContent); cleaned != "" {
		title = cleaned
	}

	return &Result{
		URL:           pageURL,
		Title:         title,
		Content:       readable.Content,
		Text:          readable.Text,
		Author:        meta.Author,
		DatePublished: meta.PublishedDate,
		LeadImageURL:  meta.Image,
		SiteName:      meta.SiteName,
		Excerpt:       meta.Excerpt,
		WordCount:     meta.WordCount,
		Direction:     meta.Direction,
		Language:      meta.Language,
	}, nil
}
