// Package security validates candidate page URLs before the optional HTTP
// front-end (internal/fetch) dials them, guarding against SSRF via private-
// IP targets and against a handful of dangerous URL schemes/patterns.
package security

import (
	"context"
	"errors"
	"net"
	"net/url"
	"regexp"
	"strings"
)

var allowedSchemes = map[string]bool{
	"http":  true,
	"https": true,
}

var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\.\./`),
	regexp.MustCompile(`%2e%2e%2f`),
	regexp.MustCompile(`javascript:`),
	regexp.MustCompile(`data:`),
	regexp.MustCompile(`file:`),
	regexp.MustCompile(`ftp:`),
	regexp.MustCompile(`\x00`),
	regexp.MustCompile(`[\x01-\x08\x0B\x0C\x0E-\x1F\x7F]`),
}

var privateNetworkCIDRs = []string{
	"127.0.0.0/8",
	"10.0.0.0/8",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"169.254.0.0/16",
	"::1/128",
	"fc00::/7",
	"fe80::/10",
}

var privateIPNets []*net.IPNet

func init() {
	for _, cidr := range privateNetworkCIDRs {
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			privateIPNets = append(privateIPNets, ipNet)
		}
	}
}

// ValidationError describes why ValidateURL rejected a URL.
type ValidationError struct {
	Type    string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// IsSSRF reports whether err was raised because the URL resolves to a
// private or otherwise unroutable address. It unwraps err (via errors.As)
// so a *ValidationError wrapped by an upstream caller, e.g.
// internal/fetch's fmt.Errorf("fetch: %w", err), is still recognized.
func IsSSRF(err error) bool {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	return verr.Type == "private_ip" || verr.Type == "dns_error"
}

// ValidateURL checks rawURL's scheme, pattern safety, and (unless
// allowPrivateNetworks is set) confirms it does not resolve to a private
// or loopback address, using ctx for the DNS lookup.
func ValidateURL(ctx context.Context, rawURL string, allowPrivateNetworks bool) error {
	if rawURL == "" {
		return &ValidationError{Type: "empty", Message: "url cannot be empty"}
	}

	lower := strings.ToLower(rawURL)
	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(lower) {
			return &ValidationError{Type: "dangerous_pattern", Message: "url contains a disallowed pattern"}
		}
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Type: "malformed", Message: "url is malformed: " + err.Error()}
	}
	if !allowedSchemes[strings.ToLower(parsed.Scheme)] {
		return &ValidationError{Type: "invalid_scheme", Message: "url scheme not allowed: " + parsed.Scheme}
	}
	if parsed.Host == "" {
		return &ValidationError{Type: "no_host", Message: "url must have a host"}
	}
	if strings.Contains(parsed.Path, "..") {
		return &ValidationError{Type: "path_traversal", Message: "path traversal detected in url path"}
	}

	if !allowPrivateNetworks {
		if err := validateHostNotPrivate(ctx, parsed.Host); err != nil {
			return err
		}
	}
	return nil
}

func validateHostNotPrivate(ctx context.Context, host string) error {
	hostname := host
	if strings.Contains(host, ":") {
		var err error
		hostname, _, err = net.SplitHostPort(host)
		if err != nil {
			return &ValidationError{Type: "invalid_host", Message: "invalid host: " + err.Error()}
		}
	}

	if ip := net.ParseIP(hostname); ip != nil {
		return validateIPNotPrivate(ip)
	}

	resolver := &net.Resolver{}
	ips, err := resolver.LookupIPAddr(ctx, hostname)
	if err != nil {
		if ctx.Err() != nil {
			return &ValidationError{Type: "context_cancelled", Message: "dns resolution cancelled: " + ctx.Err().Error()}
		}
		return &ValidationError{Type: "dns_error", Message: "failed to resolve hostname: " + err.Error()}
	}
	for _, addr := range ips {
		if err := validateIPNotPrivate(addr.IP); err != nil {
			return err
		}
	}
	return nil
}

func validateIPNotPrivate(ip net.IP) error {
	for _, ipNet := range privateIPNets {
		if ipNet.Contains(ip) {
			return &ValidationError{Type: "private_ip", Message: "url resolves to a private address: " + ip.String()}
		}
	}
	return nil
}
