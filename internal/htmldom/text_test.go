package htmldom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestExtractTextInsertsNewlineAfterParagraph(t *testing.T) {
	root, err := html.Parse(strings.NewReader(`<body><p>First.</p><p>Second.</p></body>`))
	require.NoError(t, err)
	body := findFirst(root, "body")
	require.NotNil(t, body)

	got := Text(body)
	assert.Equal(t, "First.\nSecond.", got)
}

func TestExtractTextNoLeadingNewlineBeforeFirstParagraph(t *testing.T) {
	root, err := html.Parse(strings.NewReader(`<body><p>Only.</p></body>`))
	require.NoError(t, err)
	body := findFirst(root, "body")
	require.NotNil(t, body)

	assert.Equal(t, "Only.", Text(body))
}
