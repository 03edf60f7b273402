// Package phishing renders the simulated emails attached to phishing
// questions. Question bodies arrive as HTML fragments; the terminal UI needs
// plain text plus the embedded link targets, which are often the tell.
package phishing

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ekaraca/phishdrill/internal/model"
)

// Link is an anchor found in an email body
type Link struct {
	Text string
	URL  string
}

// RenderedEmail is an email body flattened for terminal display
type RenderedEmail struct {
	From    string
	Subject string
	Text    string
	Links   []Link
	Urgency string
}

// Render flattens an email's HTML body into displayable text and pulls out
// every link target so the UI can surface them next to the message
func Render(email model.Email) (RenderedEmail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(email.Body))
	if err != nil {
		return RenderedEmail{}, fmt.Errorf("parsing email body: %w", err)
	}

	rendered := RenderedEmail{
		From:    email.From,
		Subject: email.Subject,
		Urgency: email.Urgency,
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		rendered.Links = append(rendered.Links, Link{
			Text: strings.TrimSpace(sel.Text()),
			URL:  href,
		})
	})

	rendered.Text = flatten(doc)
	return rendered, nil
}

// flatten walks the body and emits paragraph-ish text with blank lines
// between block elements
func flatten(doc *goquery.Document) string {
	var blocks []string

	body := doc.Find("body")
	selection := body.Children()
	if selection.Length() == 0 {
		// Fragment without block structure; take the whole text
		if text := collapseWhitespace(body.Text()); text != "" {
			return text
		}
		return collapseWhitespace(doc.Text())
	}

	selection.Each(func(_ int, sel *goquery.Selection) {
		if text := collapseWhitespace(sel.Text()); text != "" {
			blocks = append(blocks, text)
		}
	})
	return strings.Join(blocks, "\n\n")
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// SuspiciousLinks returns the links whose visible text disagrees with where
// they actually point, a classic phishing indicator
func (r RenderedEmail) SuspiciousLinks() []Link {
	var out []Link
	for _, l := range r.Links {
		text := strings.ToLower(strings.TrimSpace(l.Text))
		if text == "" || !looksLikeURL(text) {
			continue
		}
		if !strings.Contains(normalizeHost(l.URL), normalizeHost(text)) {
			out = append(out, l)
		}
	}
	return out
}

func looksLikeURL(s string) bool {
	return strings.Contains(s, ".") && !strings.Contains(s, " ")
}

func normalizeHost(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")
	if i := strings.IndexAny(s, "/?#"); i >= 0 {
		s = s[:i]
	}
	return s
}
