package readability

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-readability/readability/internal/extract"
	"github.com/go-readability/readability/internal/security"
)

// ErrorCode classifies why a Parse/ParseHTML call failed.
type ErrorCode int

const (
	// ErrInvalidURL: the page URL is empty or malformed, or ParseHTML was
	// given empty HTML content.
	ErrInvalidURL ErrorCode = iota
	// ErrFetch: the HTTP request for the page failed.
	ErrFetch
	// ErrTimeout: the operation's context deadline was exceeded.
	ErrTimeout
	// ErrSSRF: the URL was blocked by SSRF protection.
	ErrSSRF
	// ErrParseHTML: strict mode only — the HTML parser reported diagnostics.
	ErrParseHTML
	// ErrExtract: the extraction pipeline itself failed.
	ErrExtract
	// ErrContext: the context was cancelled.
	ErrContext
)

func (e ErrorCode) String() string {
	switch e {
	case ErrInvalidURL:
		return "invalid URL"
	case ErrFetch:
		return "fetch error"
	case ErrTimeout:
		return "timeout"
	case ErrSSRF:
		return "SSRF blocked"
	case ErrParseHTML:
		return "HTML parse error"
	case ErrExtract:
		return "extraction error"
	case ErrContext:
		return "context cancelled"
	default:
		return "unknown error"
	}
}

// ParseError is returned by Parse and ParseHTML on failure.
type ParseError struct {
	Code ErrorCode
	URL  string
	Op   string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("readability: %s %s: %s: %v", e.Op, e.URL, e.Code, e.Err)
	}
	return fmt.Sprintf("readability: %s %s: %s", e.Op, e.URL, e.Code)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

func (e *ParseError) IsTimeout() bool    { return e.Code == ErrTimeout }
func (e *ParseError) IsSSRF() bool       { return e.Code == ErrSSRF }
func (e *ParseError) IsFetch() bool      { return e.Code == ErrFetch }
func (e *ParseError) IsExtract() bool    { return e.Code == ErrExtract }
func (e *ParseError) IsInvalidURL() bool { return e.Code == ErrInvalidURL }
func (e *ParseError) IsContext() bool    { return e.Code == ErrContext }

// classifyErr maps an internal error (from internal/extract, internal/fetch,
// or ctx) into the public ErrorCode a caller should branch on.
func classifyErr(ctx error, err error) ErrorCode {
	if ctx != nil {
		if errors.Is(ctx, context.DeadlineExceeded) {
			return ErrTimeout
		}
		return ErrContext
	}

	var extractErr *extract.Error
	if errors.As(err, &extractErr) {
		switch extractErr.Kind {
		case extract.KindParseURL:
			return ErrInvalidURL
		case extract.KindParseHTML:
			return ErrParseHTML
		case extract.KindFetchURL:
			return ErrFetch
		case extract.KindReadHTML:
			return ErrExtract
		default:
			return ErrExtract
		}
	}

	if security.IsSSRF(err) {
		return ErrSSRF
	}

	var secErr *security.ValidationError
	if errors.As(err, &secErr) {
		return ErrInvalidURL
	}

	return ErrFetch
}
