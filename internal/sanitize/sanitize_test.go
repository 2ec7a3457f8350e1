package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArticleStripsScriptTags(t *testing.T) {
	got := Article(`<p>hi</p><script>alert(1)</script>`)
	assert.Contains(t, got, "<p>hi</p>")
	assert.NotContains(t, got, "<script")
}

func TestArticleKeepsAllowedFormatting(t *testing.T) {
	got := Article(`<p>Some <strong>bold</strong> and <a href="https://example.com">link</a>.</p>`)
	assert.Contains(t, got, "<strong>bold</strong>")
	assert.Contains(t, got, `href="https://example.com"`)
}

func TestArticleDropsOnClickAttribute(t *testing.T) {
	got := Article(`<div onclick="evil()">text</div>`)
	assert.NotContains(t, got, "onclick")
}
