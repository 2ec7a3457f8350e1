package readability

import (
	"net/http"
	"time"

	"github.com/go-readability/readability/internal/scorer"
)

// Option configures a Client constructed by New.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client, overriding WithTimeout and
// WithTransport for any field it sets directly.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTransport sets a custom RoundTripper on the client's HTTP client.
func WithTransport(transport http.RoundTripper) Option {
	return func(c *Client) {
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Transport = transport
	}
}

// WithTimeout sets the HTTP client's timeout, which bounds the fetch step
// of Parse. Extraction itself is not time-limited by this option.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with fetch requests.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) { c.userAgent = userAgent }
}

// WithAllowPrivateNetworks allows Parse to target private/loopback
// addresses. Off by default as SSRF protection; enable only for trusted,
// internal-network use.
func WithAllowPrivateNetworks(allow bool) Option {
	return func(c *Client) { c.allowPrivateNetworks = allow }
}

// WithStrict enables strict HTML parsing: any parser diagnostic becomes a
// fatal ErrParseHTML instead of being ignored.
func WithStrict(strict bool) Option {
	return func(c *Client) { c.strict = strict }
}

// WithScorerOptions overrides the scoring/cleaning tunables used for every
// extraction; opts is used as given, and a zero-value scorer.Options is not
// usable. Omitting this option uses scorer.DefaultOptions().
func WithScorerOptions(opts scorer.Options) Option {
	return func(c *Client) { c.scorerOptions = opts }
}

// WithHeaders sets additional HTTP headers sent with every fetch request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) { c.headers = headers }
}
