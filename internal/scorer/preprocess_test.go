package scorer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, src string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return root
}

func findAll(node *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
		}
		out = append(out, findAll(c, tag)...)
	}
	return out
}

func findFirst(node *html.Node, tag string) *html.Node {
	all := findAll(node, tag)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func TestPreprocessExtractsTitle(t *testing.T) {
	s := New(DefaultOptions())
	root := parseDoc(t, `<html><head><title>My Page</title></head><body><p>hi</p></body></html>`)

	var title strings.Builder
	s.Preprocess(root, &title)

	assert.Equal(t, "My Page", title.String())
}

func TestPreprocessStripsScriptStyleLink(t *testing.T) {
	s := New(DefaultOptions())
	root := parseDoc(t, `<html><head><title>T</title><link rel="stylesheet"><style>.a{}</style></head>
		<body><script>bad()</script><p>content here</p></body></html>`)

	var title strings.Builder
	s.Preprocess(root, &title)

	body := findFirst(root, "body")
	require.NotNil(t, body)
	assert.Empty(t, findAll(body, "script"))
	assert.Empty(t, findAll(body, "style"))
	assert.Empty(t, findAll(body, "link"))
}

func TestPreprocessRemovesUnlikelyCandidateClass(t *testing.T) {
	s := New(DefaultOptions())
	root := parseDoc(t, `<html><head><title>T</title></head>
		<body><div class="sidebar">chrome</div><p>real content</p></body></html>`)

	var title strings.Builder
	s.Preprocess(root, &title)

	body := findFirst(root, "body")
	require.NotNil(t, body)
	assert.Empty(t, findAll(body, "div"))
}

func TestPreprocessKeepsBodyEvenIfClassMatchesUnlikely(t *testing.T) {
	s := New(DefaultOptions())
	root := parseDoc(t, `<html><head><title>T</title></head>
		<body class="sidebar-wrapper"><p>real content</p></body></html>`)

	var title strings.Builder
	s.Preprocess(root, &title)

	body := findFirst(root, "body")
	assert.NotNil(t, body)
}

func TestPreprocessConvertsDoubleBrRunToParagraph(t *testing.T) {
	s := New(DefaultOptions())
	root := parseDoc(t, `<html><head><title>T</title></head>
		<body><br><br>orphan text</body></html>`)

	var title strings.Builder
	s.Preprocess(root, &title)

	body := findFirst(root, "body")
	require.NotNil(t, body)
	ps := findAll(body, "p")
	require.Len(t, ps, 1)
	assert.Equal(t, "orphan text", ps[0].FirstChild.Data)
}
