// Package fetch is the optional HTTP front-end: given a page URL it
// validates the target against SSRF rules, performs a bounded-redirect
// GET with a cookie jar, enforces content-type and size limits, and
// transcodes the body to UTF-8 before handing it to the core extractor.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"regexp"
	"strconv"
	"time"

	"github.com/go-readability/readability/internal/security"
)

const (
	// DefaultTimeout bounds one fetch end-to-end.
	DefaultTimeout = 30 * time.Second
	// MaxContentLength rejects bodies advertised larger than this via
	// Content-Length, to bound memory use before the body is even read.
	MaxContentLength = 20 * 1024 * 1024
	// MaxRedirects bounds the redirect chain net/http will follow.
	MaxRedirects = 5
)

var badContentTypeRe = regexp.MustCompile(`(?i)^(image|audio|video|application/octet-stream|application/pdf|application/zip)/`)

// Result is a successfully fetched and validated page body plus the
// response metadata the encoding detector and caller need.
type Result struct {
	Body        []byte
	ContentType string
	FinalURL    string
	StatusCode  int
}

// Options configures one Fetch call.
type Options struct {
	Client               *http.Client
	UserAgent            string
	Headers              map[string]string
	AllowPrivateNetworks bool
}

// Fetch validates rawURL, performs the GET, and returns its raw body and
// metadata. The caller (the public Client) is responsible for transcoding
// via DetectAndDecode and parsing the result.
func Fetch(ctx context.Context, rawURL string, opts Options) (*Result, error) {
	if err := security.ValidateURL(ctx, rawURL, opts.AllowPrivateNetworks); err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	client := opts.Client
	if client == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, fmt.Errorf("fetch: creating cookie jar: %w", err)
		}
		client = &http.Client{
			Timeout: DefaultTimeout,
			Jar:     jar,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= MaxRedirects {
					return fmt.Errorf("stopped after %d redirects", MaxRedirects)
				}
				return nil
			},
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: building request: %w", err)
	}
	if opts.UserAgent != "" {
		req.Header.Set("User-Agent", opts.UserAgent)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := validateResponse(resp); err != nil {
		return nil, err
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxContentLength+1))
	if err != nil {
		return nil, fmt.Errorf("fetch: reading body: %w", err)
	}
	if len(body) > MaxContentLength {
		return nil, fmt.Errorf("fetch: response body exceeds %d bytes", MaxContentLength)
	}

	return &Result{
		Body:        body,
		ContentType: resp.Header.Get("Content-Type"),
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
	}, nil
}

func validateResponse(resp *http.Response) error {
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch: unexpected status code %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); badContentTypeRe.MatchString(ct) {
		return fmt.Errorf("fetch: content-type %q is not allowed", ct)
	}
	if cl := resp.Header.Get("Content-Length"); cl != "" {
		if n, err := strconv.ParseInt(cl, 10, 64); err == nil && n > MaxContentLength {
			return fmt.Errorf("fetch: content-length %d exceeds maximum %d", n, MaxContentLength)
		}
	}
	return nil
}
