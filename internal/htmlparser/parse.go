// Package htmlparser adapts golang.org/x/net/html into the "black-box HTML
// parser" collaborator spec'd out by the core: it turns a byte stream into
// a mutable *html.Node tree plus a list of parse diagnostics, and leaves
// strict-mode enforcement to the caller.
package htmlparser

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
)

// Result is what the parser adapter hands back to the core: the parsed
// tree and any diagnostics the tokenizer surfaced along the way.
// golang.org/x/net/html's recursive-descent parser is deliberately lenient
// (the HTML5 spec asks it to recover from almost anything), so Errors is
// gathered from a side tag-balance pass rather than from Parse itself.
type Result struct {
	Root   *html.Node
	Errors []string
}

// Parse reads all of r, parses it as HTML, and collects tag-balance
// diagnostics alongside the resulting tree. Parse never fails on malformed
// markup — callers decide whether diagnostics are fatal (strict mode).
func Parse(r io.Reader) (*Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var errs []string
	if len(data) == 0 {
		errs = append(errs, "empty input")
	} else {
		errs = append(errs, tagBalanceDiagnostics(data)...)
	}

	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return &Result{Root: root, Errors: errs}, nil
}

// voidElements never require (or admit) a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// omittableEndTag elements are allowed by the HTML5 spec to reach
// end-of-input (or an enclosing close) without an explicit closing tag;
// being left open at EOF is not a diagnostic for these.
var omittableEndTag = map[string]bool{
	"html": true, "head": true, "body": true, "p": true, "li": true,
	"dt": true, "dd": true, "option": true, "optgroup": true,
	"colgroup": true, "thead": true, "tbody": true, "tfoot": true,
	"tr": true, "td": true, "th": true, "rp": true, "rt": true,
}

// tagBalanceDiagnostics walks data with a tokenizer, tracking an explicit
// stack of open elements, and reports genuine tree-construction problems
// golang.org/x/net/html.Parse silently recovers from: a closing tag with
// no matching open tag, an element that had to be implicitly closed out
// of order by an enclosing tag's close, and elements still open at
// end-of-input that aren't allowed to omit their closing tag.
func tagBalanceDiagnostics(data []byte) []string {
	var errs []string
	var stack []string
	z := html.NewTokenizer(bytes.NewReader(data))

loop:
	for {
		switch z.Next() {
		case html.ErrorToken:
			break loop
		case html.StartTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if !voidElements[tag] {
				stack = append(stack, tag)
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)

			idx := -1
			for i := len(stack) - 1; i >= 0; i-- {
				if stack[i] == tag {
					idx = i
					break
				}
			}
			if idx == -1 {
				errs = append(errs, fmt.Sprintf("unexpected closing tag </%s>: no matching open tag", tag))
				continue
			}
			for i := len(stack) - 1; i > idx; i-- {
				errs = append(errs, fmt.Sprintf("mismatched nesting: <%s> still open when </%s> was seen", stack[i], tag))
			}
			stack = stack[:idx]
		}
	}

	for i := len(stack) - 1; i >= 0; i-- {
		if !omittableEndTag[stack[i]] {
			errs = append(errs, fmt.Sprintf("unclosed tag <%s>", stack[i]))
		}
	}
	return errs
}
