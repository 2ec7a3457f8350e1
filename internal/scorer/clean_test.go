package scorer

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-readability/readability/internal/htmldom"
)

func TestCleanRemovesAlwaysRemovableTags(t *testing.T) {
	s := New(DefaultOptions())
	body := parseBody(t, `<html><body><script>bad()</script><p>kept text right here</p></body></html>`)
	pageURL, err := url.Parse("https://example.com")
	require.NoError(t, err)

	candidates := Candidates{}
	s.Clean(RootPath, body, pageURL, candidates)

	assert.Empty(t, htmldom.FindDescendants(body, "script"))
	assert.Len(t, htmldom.FindDescendants(body, "p"), 1)
}

func TestCleanStripsIDClassStyleAttrs(t *testing.T) {
	s := New(DefaultOptions())
	body := parseBody(t, `<html><body><p id="x" class="y" style="color:red">text</p></body></html>`)
	pageURL, _ := url.Parse("https://example.com")

	s.Clean(RootPath, body, pageURL, Candidates{})

	p := htmldom.FindDescendants(body, "p")[0]
	_, hasID := htmldom.Attr(p, "id")
	_, hasClass := htmldom.Attr(p, "class")
	_, hasStyle := htmldom.Attr(p, "style")
	assert.False(t, hasID)
	assert.False(t, hasClass)
	assert.False(t, hasStyle)
}

func TestCleanResolvesRelativeImgSrc(t *testing.T) {
	s := New(DefaultOptions())
	body := parseBody(t, `<html><body><img src="/a.png"></body></html>`)
	pageURL, _ := url.Parse("https://example.com/page")

	s.Clean(RootPath, body, pageURL, Candidates{})

	img := htmldom.FindDescendants(body, "img")
	require.Len(t, img, 1)
	src, ok := htmldom.Attr(img[0], "src")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/a.png", src)
}

func TestCleanRemovesImgWithoutSrc(t *testing.T) {
	s := New(DefaultOptions())
	body := parseBody(t, `<html><body><img><p>kept text right here</p></body></html>`)
	pageURL, _ := url.Parse("https://example.com")

	s.Clean(RootPath, body, pageURL, Candidates{})

	assert.Empty(t, htmldom.FindDescendants(body, "img"))
}

func TestIsUselessDivWithHighLinkDensityAndLowWeight(t *testing.T) {
	s := New(DefaultOptions())
	body := parseBody(t, `<html><body><div class="zzz">`+
		`<a href="#">aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa</a></div></body></html>`)
	div := body.FirstChild
	assert.True(t, s.isUseless(RootPath.Child(0), div, Candidates{}))
}
