package readability

import "context"

// Parser is the content-extraction interface Client implements; it exists
// so callers can substitute a mock in tests.
type Parser interface {
	Parse(ctx context.Context, url string) (*Result, error)
	ParseHTML(ctx context.Context, html, url string) (*Result, error)
}

var _ Parser = (*Client)(nil)
