package htmldom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parseFragment(t *testing.T, src string) *html.Node {
	t.Helper()
	root, err := html.Parse(strings.NewReader(src))
	require.NoError(t, err)
	return root
}

func findFirst(node *html.Node, tag string) *html.Node {
	matches := FindDescendants(node, tag)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

func TestAttrSetAttrCleanAttr(t *testing.T) {
	root := parseFragment(t, `<div id="x" class="y z"></div>`)
	div := findFirst(root, "div")
	require.NotNil(t, div)

	val, ok := Attr(div, "class")
	assert.True(t, ok)
	assert.Equal(t, "y z", val)

	SetAttr(div, "class", "w")
	val, ok = Attr(div, "class")
	assert.True(t, ok)
	assert.Equal(t, "w", val)

	CleanAttr(div, "id")
	_, ok = Attr(div, "id")
	assert.False(t, ok)
}

func TestTagNameNonElement(t *testing.T) {
	root := parseFragment(t, `<p>hi</p>`)
	p := findFirst(root, "p")
	require.NotNil(t, p)
	assert.Equal(t, "p", TagName(p))
	assert.Equal(t, "", TagName(p.FirstChild))
}

func TestTextLenTrimsAndSumsDescendants(t *testing.T) {
	root := parseFragment(t, `<div>  hello <span>world</span>  </div>`)
	div := findFirst(root, "div")
	require.NotNil(t, div)
	// "hello" (5) + "world" (5) after trimming each text node.
	assert.Equal(t, 10, TextLen(div))
}

func TestFindDescendantsPreOrder(t *testing.T) {
	root := parseFragment(t, `<div><p>a</p><div><p>b</p></div></div>`)
	ps := FindDescendants(root, "p")
	require.Len(t, ps, 2)
	assert.Equal(t, "a", ps[0].FirstChild.Data)
	assert.Equal(t, "b", ps[1].FirstChild.Data)
}

func TestHasDescendantWithTagIn(t *testing.T) {
	root := parseFragment(t, `<div><table></table></div>`)
	div := findFirst(root, "div")
	require.NotNil(t, div)
	assert.True(t, HasDescendantWithTagIn(div, []string{"table", "ul"}))
	assert.False(t, HasDescendantWithTagIn(div, []string{"ul", "ol"}))
}

func TestIsEmptyNestedWhitespace(t *testing.T) {
	root := parseFragment(t, `<div><p>   </p><div>  </div></div>`)
	div := findFirst(root, "div")
	require.NotNil(t, div)
	assert.True(t, IsEmpty(div))
}

func TestIsEmptyFalseWithText(t *testing.T) {
	root := parseFragment(t, `<div><p>content</p></div>`)
	div := findFirst(root, "div")
	require.NotNil(t, div)
	assert.False(t, IsEmpty(div))
}

func TestRemoveChildren(t *testing.T) {
	root := parseFragment(t, `<div><p>a</p><p>b</p></div>`)
	div := findFirst(root, "div")
	require.NotNil(t, div)
	children := Children(div)
	require.Len(t, children, 2)

	RemoveChildren(div, []*html.Node{children[0]})
	remaining := Children(div)
	require.Len(t, remaining, 1)
	assert.Equal(t, "b", remaining[0].FirstChild.Data)
}
