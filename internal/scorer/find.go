package scorer

import (
	"golang.org/x/net/html"

	"github.com/go-readability/readability/internal/htmldom"
)

// FindCandidates walks node in DFS order starting from id, recording every
// visited node in nodes and distributing content scores up the ancestor
// chain for every node that qualifies as a candidate.
//
// Deliberately omitted: the original Rust implementation's source carries a
// second, vestigial propagation block that re-adds the same content score
// to the candidate itself and both of its ancestors a second time, from
// whatever is already in the candidates map. It duplicates the main loop's
// work and does not affect which node ultimately wins — this port uses
// only the bounded ancestor loop below.
func (s *Scorer) FindCandidates(id Path, node *html.Node, candidates Candidates, nodes Nodes) {
	nodes[id] = node

	if s.isCandidate(node) {
		score := s.calcContentScore(node)
		ancestor := id
		for level := 1; level <= s.opts.MaxCandidateParents; level++ {
			parentID, ok := ancestor.Parent()
			if !ok {
				break
			}
			ancestor = parentID

			parentNode, known := nodes[parentID]
			if !known {
				continue
			}

			c := s.findOrCreateCandidate(parentID, parentNode, candidates)
			switch s.opts.CandidateScore {
			case LevelWeight:
				c.Score += score / float64(level)
			default:
				c.Score += score
			}

			if htmldom.TagName(parentNode) == "body" {
				break
			}
		}
	}

	for i, child := range htmldom.Children(node) {
		s.FindCandidates(id.Child(i), child, candidates, nodes)
	}
}

// isCandidate reports whether node qualifies as a candidate: its
// cumulative trimmed descendant text length is at least
// Options.MinCandidateLength, and its tag is "p" (unconditionally) or one
// of div/article/center/section, provided none of its descendants has a
// tag in Options.BlockChildTags.
func (s *Scorer) isCandidate(node *html.Node) bool {
	if htmldom.TextLen(node) < s.opts.MinCandidateLength {
		return false
	}
	switch htmldom.TagName(node) {
	case "p":
		return true
	case "div", "article", "center", "section":
		return !htmldom.HasDescendantWithTagIn(node, s.opts.BlockChildTags)
	default:
		return false
	}
}

// calcContentScore computes a candidate's raw content score from its
// descendant text: a base of 1, plus one per non-overlapping punctuation
// match, plus min(floor(charCount/100), 3).
func (s *Scorer) calcContentScore(node *html.Node) float64 {
	text := htmldom.Text(node)
	score := 1.0
	score += float64(len(s.opts.Punctuations.FindAllStringIndex(text, -1)))
	charCount := float64(len([]rune(text)))
	bonus := charCount / 100.0
	if bonus > 3 {
		bonus = 3
	}
	score += floor(bonus)
	return score
}

func floor(f float64) float64 {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return float64(i)
}

// classWeight sums the positive/negative class-weight contributions of
// node's id and class attributes.
func (s *Scorer) classWeight(node *html.Node) float64 {
	weight := 0.0
	for _, name := range [...]string{"id", "class"} {
		val, ok := htmldom.Attr(node, name)
		if !ok {
			continue
		}
		if s.opts.PositiveCandidates.MatchString(val) {
			weight += s.opts.PositiveCandidateWeight
		}
		if s.opts.NegativeCandidates.MatchString(val) {
			weight -= s.opts.NegativeCandidateWeight
		}
	}
	return weight
}

// initContentScore computes the initial score a freshly-created candidate
// record starts from: a tag-based base plus class weight.
func (s *Scorer) initContentScore(node *html.Node) float64 {
	var base float64
	switch htmldom.TagName(node) {
	case "article":
		base = 10
	case "div":
		base = 5
	case "pre", "td", "blockquote":
		base = 3
	case "address", "ol", "ul", "dl", "dd", "dt", "li", "form":
		base = -3
	case "h1", "h2", "h3", "h4", "h5", "h6", "th":
		base = -5
	}
	return base + s.classWeight(node)
}

// findOrCreateCandidate looks up the candidate record for id, creating one
// initialized via initContentScore if absent.
func (s *Scorer) findOrCreateCandidate(id Path, node *html.Node, candidates Candidates) *Candidate {
	if c, ok := candidates[id]; ok {
		return c
	}
	c := &Candidate{Node: node, Score: s.initContentScore(node)}
	candidates[id] = c
	return c
}
