package scorer

import (
	"sort"

	"golang.org/x/net/html"

	"github.com/go-readability/readability/internal/htmldom"
)

// TopCandidate is the winning (path, candidate) pair returned by
// FindTopCandidate.
type TopCandidate struct {
	ID        Path
	Candidate *Candidate
}

// FindTopCandidate multiplies every candidate's accumulated score by
// (1 - link density) exactly once, then returns the candidate with the
// strictly greatest adjusted score. Ties are broken by lexicographic path
// order (the first-seen candidate in that deterministic order wins). It
// returns ok=false when candidates is empty; callers fall back to the
// document root with score 0.
func (s *Scorer) FindTopCandidate(candidates Candidates) (TopCandidate, bool) {
	if len(candidates) == 0 {
		return TopCandidate{}, false
	}

	ids := make([]Path, 0, len(candidates))
	for id := range candidates {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var top TopCandidate
	var topSet bool
	for _, id := range ids {
		c := candidates[id]
		c.Score = c.Score * (1 - LinkDensity(c.Node))
		if !topSet || c.Score > top.Candidate.Score {
			top = TopCandidate{ID: id, Candidate: c}
			topSet = true
		}
	}
	return top, true
}

// LinkDensity is the fraction of node's text length contained inside
// descendant <a> elements. It is 0 when node's text length is 0.
func LinkDensity(node *html.Node) float64 {
	textLength := float64(htmldom.TextLen(node))
	if textLength == 0 {
		return 0
	}
	linkLength := 0.0
	for _, a := range htmldom.FindDescendants(node, "a") {
		linkLength += float64(htmldom.TextLen(a))
	}
	return linkLength / textLength
}
