package readability

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"

	"github.com/go-readability/readability/internal/sanitize"
)

// Result is the extracted article and the secondary metadata gathered
// alongside it.
type Result struct {
	URL     string `json:"url"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Text    string `json:"text"`

	Author        string `json:"author,omitempty"`
	DatePublished string `json:"date_published,omitempty"`
	LeadImageURL  string `json:"lead_image_url,omitempty"`
	SiteName      string `json:"site_name,omitempty"`
	Excerpt       string `json:"excerpt,omitempty"`
	WordCount     int    `json:"word_count"`
	Direction     string `json:"direction,omitempty"`
	Language      string `json:"language,omitempty"`
}

// Sanitized returns a copy of Content run through a defense-in-depth
// bluemonday allow-list, for callers that render Content directly in a
// browser.
func (r *Result) Sanitized() string {
	return sanitize.Article(r.Content)
}

// FormatMarkdown renders the result as a Markdown document: a metadata
// header followed by the article content converted from HTML.
func (r *Result) FormatMarkdown() string {
	var sb strings.Builder

	if r.Title != "" {
		sb.WriteString("# ")
		sb.WriteString(r.Title)
		sb.WriteString("\n\n")
	}

	if r.Author != "" || r.DatePublished != "" || r.URL != "" || r.SiteName != "" {
		sb.WriteString("## Metadata\n\n")
		if r.Author != "" {
			fmt.Fprintf(&sb, "**Author:** %s\n", r.Author)
		}
		if r.DatePublished != "" {
			fmt.Fprintf(&sb, "**Date:** %s\n", r.DatePublished)
		}
		if r.URL != "" {
			fmt.Fprintf(&sb, "**URL:** %s\n", r.URL)
		}
		if r.SiteName != "" {
			fmt.Fprintf(&sb, "**Site:** %s\n", r.SiteName)
		}
		if r.Language != "" {
			fmt.Fprintf(&sb, "**Language:** %s\n", r.Language)
		}
		if r.WordCount > 0 {
			fmt.Fprintf(&sb, "**Word Count:** %d\n", r.WordCount)
		}
		sb.WriteString("\n")
	}

	if r.Excerpt != "" {
		sb.WriteString("## Excerpt\n\n")
		sb.WriteString(r.Excerpt)
		sb.WriteString("\n\n")
	}

	if r.Content != "" {
		sb.WriteString("## Content\n\n")
		sb.WriteString(contentToMarkdown(r.Content))
	}

	return sb.String()
}

func contentToMarkdown(content string) string {
	converter := md.NewConverter("", true, nil)
	markdown, err := converter.ConvertString(content)
	if err != nil {
		return content
	}
	return markdown
}

// IsEmpty reports whether the result carries no meaningful article.
func (r *Result) IsEmpty() bool { return r.Title == "" && r.Content == "" }

// HasAuthor reports whether author metadata was found.
func (r *Result) HasAuthor() bool { return r.Author != "" }

// HasDate reports whether a publish date was found.
func (r *Result) HasDate() bool { return r.DatePublished != "" }

// HasImage reports whether a lead image was found.
func (r *Result) HasImage() bool { return r.LeadImageURL != "" }
