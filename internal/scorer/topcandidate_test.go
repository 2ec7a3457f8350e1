package scorer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-readability/readability/internal/htmldom"
)

func TestFindTopCandidateEmptyReturnsFalse(t *testing.T) {
	_, ok := (&Scorer{opts: DefaultOptions()}).FindTopCandidate(Candidates{})
	assert.False(t, ok)
}

func TestFindTopCandidatePicksHighestAdjustedScore(t *testing.T) {
	s := New(DefaultOptions())
	body := parseBody(t, `<html><body>
		<div id="a"><p>`+strings.Repeat("plain text here ", 20)+`</p></div>
		<div id="b"><p><a href="#">`+strings.Repeat("linky text here ", 20)+`</a></p></div>
	</body></html>`)

	candidates := Candidates{}
	nodes := Nodes{}
	s.FindCandidates(RootPath, body, candidates, nodes)
	require.NotEmpty(t, candidates)

	top, ok := s.FindTopCandidate(candidates)
	require.True(t, ok)
	assert.NotNil(t, top.Candidate)
	// Both divs score 5 + 4; div "b" is all link text, so its adjusted
	// score drops to 0 and div "a" wins.
	id, _ := htmldom.Attr(top.Candidate.Node, "id")
	assert.Equal(t, "a", id)
}

func TestLinkDensityAllTextInLinks(t *testing.T) {
	body := parseBody(t, `<html><body><p><a href="#">all the text</a></p></body></html>`)
	p := body.FirstChild
	assert.Equal(t, 1.0, LinkDensity(p))
}

func TestLinkDensityNoLinks(t *testing.T) {
	body := parseBody(t, `<html><body><p>no links here</p></body></html>`)
	p := body.FirstChild
	assert.Equal(t, 0.0, LinkDensity(p))
}

func TestLinkDensityZeroTextIsZero(t *testing.T) {
	body := parseBody(t, `<html><body><div></div></body></html>`)
	div := body.FirstChild
	assert.Equal(t, 0.0, LinkDensity(div))
}
