package readability_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-readability/readability"
)

func TestNewClientDefaultsAndOptions(t *testing.T) {
	client := readability.New()
	require.NotNil(t, client)

	client = readability.New(
		readability.WithTimeout(10*time.Second),
		readability.WithUserAgent("TestClient/1.0"),
	)
	require.NotNil(t, client)
}

func TestParseEmptyURL(t *testing.T) {
	client := readability.New()
	_, err := client.Parse(context.Background(), "")
	require.Error(t, err)

	var parseErr *readability.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, readability.ErrInvalidURL, parseErr.Code)
}

func TestParseHTMLInvalidInputs(t *testing.T) {
	client := readability.New()
	ctx := context.Background()

	_, err := client.ParseHTML(ctx, "<html></html>", "")
	require.Error(t, err)

	_, err = client.ParseHTML(ctx, "", "https://example.com")
	require.Error(t, err)
}

func TestParseHTMLBasicExtraction(t *testing.T) {
	client := readability.New()
	html := `<html><head><title>Hello World</title></head>
		<body><article><p>This is a sufficiently long paragraph of real article text for scoring.</p></article></body></html>`

	result, err := client.ParseHTML(context.Background(), html, "https://example.com/article")
	require.NoError(t, err)
	assert.Equal(t, "Hello World", result.Title)
	assert.Contains(t, result.Content, "sufficiently long paragraph")
	assert.False(t, result.IsEmpty())
}

func TestParserInterfaceSatisfiedByClient(t *testing.T) {
	var _ readability.Parser = (*readability.Client)(nil)
}

func TestParseFetchesOverHTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head><title>Served Page</title></head>
			<body><article><p>Article body fetched over the wire with enough text to score.</p></article></body></html>`))
	}))
	defer server.Close()

	client := readability.New(readability.WithAllowPrivateNetworks(true))
	result, err := client.Parse(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, "Served Page", result.Title)
}

func TestFormatMarkdownIncludesTitleAndContent(t *testing.T) {
	client := readability.New()
	html := `<html><head><title>MD Title</title></head>
		<body><article><p>Markdown rendering test paragraph with enough content to be scored well.</p></article></body></html>`
	result, err := client.ParseHTML(context.Background(), html, "https://example.com")
	require.NoError(t, err)

	out := result.FormatMarkdown()
	assert.Contains(t, out, "# MD Title")
	assert.Contains(t, out, "Markdown rendering test paragraph")
}
