// Package scorer implements the heuristic scoring and cleaning engine:
// preprocessing, candidate discovery, score propagation, top-candidate
// selection, and recursive cleanup, operating directly over
// golang.org/x/net/html's DOM. It is a close port of the original Rust
// crate's scorer.rs and html.rs (see DESIGN.md), generalized per the
// specification's bounded ancestor-propagation loop.
package scorer

// Scorer bundles the compiled regexes and tunables every stage of the
// pipeline reads from. Options are read-only for the lifetime of a Scorer,
// so one instance may be shared across concurrent extractions.
type Scorer struct {
	opts Options
}

// New returns a Scorer configured with opts.
func New(opts Options) *Scorer {
	return &Scorer{opts: opts}
}

// Options returns the scorer's configured options.
func (s *Scorer) Options() Options {
	return s.opts
}
