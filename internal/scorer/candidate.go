package scorer

import "golang.org/x/net/html"

// Candidate is a DOM element tentatively considered as the article
// container, tracked with a mutable accumulated score. It is created on
// demand during score propagation and lives for the duration of one
// extraction.
type Candidate struct {
	Node  *html.Node
	Score float64
}

// Candidates maps path identifiers to the candidate discovered at that
// path. Map iteration order is not used directly for selection — callers
// that need deterministic order (top-candidate tie-breaking) iterate the
// sorted keys instead, see FindTopCandidate.
type Candidates map[Path]*Candidate

// Nodes maps path identifiers to every node visited during the find-
// candidates DFS, regardless of candidacy.
type Nodes map[Path]*html.Node
