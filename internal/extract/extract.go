// Package extract orchestrates the core pipeline — parse, preprocess,
// find candidates, pick the top candidate, clean, render — into the
// three-artifact {title, content, text} result the specification defines.
package extract

import (
	"bytes"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-readability/readability/internal/htmlparser"
	"github.com/go-readability/readability/internal/render"
	"github.com/go-readability/readability/internal/scorer"
)

// Readable is the core's output: the three artifacts spec.md §6 defines.
type Readable struct {
	Title   string
	Content string
	Text    string
}

// Options configures one extraction.
type Options struct {
	// Strict, when true, fails the extraction with KindParseHTML if the
	// HTML parser reported any diagnostic.
	Strict bool
	// Scorer is the scoring/cleaning configuration; the zero value is not
	// usable — callers should start from scorer.DefaultOptions().
	Scorer scorer.Options
}

// Content is the intermediate result of ExtractContent: the chosen subtree
// and the raw document title, before HTML/text serialization.
type Content struct {
	Node  *html.Node
	Title string
}

// Extract reads HTML from r, resolves relative URLs against pageURL, and
// returns the extracted title/content/text.
func Extract(r io.Reader, pageURL *url.URL, opts Options) (*Readable, error) {
	parsed, err := htmlparser.Parse(r)
	if err != nil {
		return nil, &Error{Kind: KindReadHTML, Err: err}
	}
	if opts.Strict && len(parsed.Errors) > 0 {
		return nil, &Error{Kind: KindParseHTML, Messages: parsed.Errors}
	}

	content := ExtractContent(parsed.Root, pageURL, opts)

	// Only the chosen node's children are serialized, never the node
	// itself — the original crate's serializer defaults to a
	// children-only traversal scope, so a <body> or <article> top
	// candidate never re-wraps the output in its own tag.
	var htmlBuf bytes.Buffer
	for c := content.Node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&htmlBuf, c); err != nil {
			return nil, &Error{Kind: KindReadHTML, Err: err}
		}
	}

	return &Readable{
		Title:   content.Title,
		Content: htmlBuf.String(),
		Text:    render.Text(content.Node),
	}, nil
}

// ExtractContent runs the scoring + cleaning pipeline over root and
// returns the chosen subtree and the raw extracted title, without
// serializing either to their final string form. It mutates root in place
// (preprocessing and cleaning), so a pass that needs the original document
// has to run before it or on a separate parse.
func ExtractContent(root *html.Node, pageURL *url.URL, opts Options) *Content {
	s := scorer.New(opts.Scorer)

	var title strings.Builder
	candidates := scorer.Candidates{}
	nodes := scorer.Nodes{}

	s.Preprocess(root, &title)
	s.FindCandidates(scorer.RootPath, root, candidates, nodes)

	top, ok := s.FindTopCandidate(candidates)
	if !ok {
		top = scorer.TopCandidate{
			ID:        scorer.RootPath,
			Candidate: &scorer.Candidate{Node: root, Score: 0},
		}
	}

	s.Clean(top.ID, top.Candidate.Node, pageURL, candidates)

	return &Content{Node: top.Candidate.Node, Title: title.String()}
}
