package scorer

import "regexp"

// CandidateScore selects how a candidate's content score is distributed to
// its ancestors during score propagation (see Options.CandidateScore).
type CandidateScore int

const (
	// EqualWeight adds the full content score to every ancestor within
	// MaxCandidateParents hops.
	EqualWeight CandidateScore = iota
	// LevelWeight divides the content score by the ancestor's level
	// (1 for the parent, 2 for the grandparent, ...) before adding it.
	LevelWeight
)

// Options is the set of tunables the scorer and cleaner read from; see
// DefaultOptions for the default values.
type Options struct {
	// MinCandidateLength is the text-length threshold below which a node
	// can never be a candidate.
	MinCandidateLength int

	// MaxCandidateParents bounds how many ancestor hops a candidate's
	// score is propagated through.
	MaxCandidateParents int

	// CandidateScore controls how score is distributed to ancestors.
	CandidateScore CandidateScore

	// Punctuations matches punctuation-like tokens for the scoring bonus.
	Punctuations *regexp.Regexp

	// UnlikelyCandidates and LikelyCandidates classify id/class values
	// during preprocessing; UnlikelyCandidates wins unless LikelyCandidates
	// also matches.
	UnlikelyCandidates *regexp.Regexp
	LikelyCandidates   *regexp.Regexp

	// PositiveCandidates and NegativeCandidates give class-weight
	// bonuses/penalties, scaled by PositiveCandidateWeight/NegativeCandidateWeight.
	PositiveCandidates      *regexp.Regexp
	NegativeCandidates      *regexp.Regexp
	PositiveCandidateWeight float64
	NegativeCandidateWeight float64

	// BlockChildTags disqualifies a div/article/center/section candidate
	// when any descendant has one of these tags.
	BlockChildTags []string
}

// Default regex sources, ported verbatim from the original crate's
// scorer.rs (PUNCTUATIONS_REGEX, UNLIKELY_CANDIDATES, LIKELY_CANDIDATES,
// POSITIVE_CANDIDATES, NEGATIVE_CANDIDATES).
const (
	punctuationsSource = `([、。，．！？]|\.[^A-Za-z0-9]|,[^0-9]|!|\?)`
	unlikelySource      = `combx|comment|community|disqus|extra|foot|header|menu|remark|rss|shoutbox|sidebar|sponsor|ad-break|agegate|pagination|pager|popup|tweet|twitter|ssba`
	likelySource        = `and|article|body|column|main|shadow|content|hentry`
	positiveSource      = `article|body|content|entry|hentry|main|page|pagination|post|text|blog|story`
	negativeSource      = `combx|comment|com|contact|foot|footer|footnote|masthead|media|meta|outbrain|promo|related|scroll|shoutbox|sidebar|sponsor|shopping|tags|tool|widget|form|textfield|uiScale|hidden`
)

var (
	defaultPunctuations = regexp.MustCompile(punctuationsSource)
	defaultUnlikely     = regexp.MustCompile(`(?i)` + unlikelySource)
	defaultLikely       = regexp.MustCompile(`(?i)` + likelySource)
	defaultPositive     = regexp.MustCompile(`(?i)` + positiveSource)
	defaultNegative     = regexp.MustCompile(`(?i)` + negativeSource)
)

// DefaultBlockChildTags is the set of tags whose presence inside a
// div/article/center/section disqualifies it as a candidate.
var DefaultBlockChildTags = []string{
	"a", "blockquote", "dl", "div", "img", "ol", "p", "pre", "table", "ul",
}

// DefaultOptions returns the recognized default ScorerOptions. The five
// regexes are package-level compiled-once values; callers that build their
// own Options may share them or substitute their own.
//
// CandidateScore defaults to LevelWeight: the original crate only ever
// propagated a content score to a node's parent (full weight) and
// grandparent (half weight) — LevelWeight with the default
// MaxCandidateParents generalizes that exact 1x/0.5x falloff to an
// arbitrary ancestor depth.
func DefaultOptions() Options {
	return Options{
		MinCandidateLength:      20,
		MaxCandidateParents:     10,
		CandidateScore:          LevelWeight,
		Punctuations:            defaultPunctuations,
		UnlikelyCandidates:      defaultUnlikely,
		LikelyCandidates:        defaultLikely,
		PositiveCandidates:      defaultPositive,
		NegativeCandidates:      defaultNegative,
		PositiveCandidateWeight: 25.0,
		NegativeCandidateWeight: 25.0,
		BlockChildTags:          append([]string(nil), DefaultBlockChildTags...),
	}
}
