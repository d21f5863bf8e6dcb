package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mrozanski/docinv"
	"golang.org/x/net/html"
)

// contentSelectors locate the main content area of a guide page, in
// priority order. The whole document is the fallback.
var contentSelectors = []string{
	`article[aria-live="polite"]`,
	"article[aria-live]",
	"article",
	"main",
}

// Ensure HeadingExtractor implements docinv.HeadingExtractor at compile time.
var _ docinv.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor extracts the ordered heading hierarchy from a guide page.
type HeadingExtractor struct{}

// NewHeadingExtractor creates a new HeadingExtractor.
func NewHeadingExtractor() *HeadingExtractor {
	return &HeadingExtractor{}
}

// ExtractHeadings parses guide page HTML and returns all h1-h6 headings in
// document order with anchors resolved. Boilerplate and skip-listed
// headings are dropped.
func (e *HeadingExtractor) ExtractHeadings(htmlSrc string, pageURL string) ([]docinv.Heading, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlSrc))
	if err != nil {
		return nil, docinv.Errorf(docinv.EINVALID, "failed to parse HTML: %v", err)
	}

	root := doc.Selection
	for _, selector := range contentSelectors {
		if s := doc.Find(selector).First(); s.Length() > 0 {
			root = s
			break
		}
	}

	var headings []docinv.Heading

	root.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, h *goquery.Selection) {
		text := docinv.CleanHeadingText(h.Text())
		if text == "" || docinv.SkipHeading(text) {
			return
		}
		if len(h.Nodes) == 0 {
			return
		}
		node := h.Nodes[0]

		level := headingLevel(node)
		if level == 0 {
			return
		}

		anchor := findAnchor(node)
		headingURL := pageURL
		if anchor != "" {
			headingURL = pageURL + "#" + anchor
		}

		headings = append(headings, docinv.Heading{
			Level:  level,
			Text:   text,
			Anchor: anchor,
			URL:    headingURL,
		})
	})

	return headings, nil
}

// headingLevel returns the numeric level of an hN element, or 0 if the node
// is not a heading.
func headingLevel(n *html.Node) int {
	if len(n.Data) != 2 || n.Data[0] != 'h' {
		return 0
	}
	if n.Data[1] < '1' || n.Data[1] > '6' {
		return 0
	}
	return int(n.Data[1] - '0')
}

// findAnchor resolves the best in-page anchor for a heading node: its own
// id, then the parent element's id, then an inner <a id> or <a name>.
func findAnchor(n *html.Node) string {
	if id := nodeAttr(n, "id"); id != "" {
		return id
	}
	if n.Parent != nil {
		if id := nodeAttr(n.Parent, "id"); id != "" {
			return id
		}
	}
	if a := findDescendantAnchor(n, "id"); a != "" {
		return a
	}
	return findDescendantAnchor(n, "name")
}

// findDescendantAnchor depth-first searches for the first <a> descendant
// carrying a non-empty value for the given attribute.
func findDescendantAnchor(n *html.Node, attr string) string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "a" {
			if v := nodeAttr(c, attr); v != "" {
				return v
			}
		}
		if v := findDescendantAnchor(c, attr); v != "" {
			return v
		}
	}
	return ""
}

// nodeAttr returns the value of the named attribute, or empty string.
func nodeAttr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
