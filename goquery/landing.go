// Package goquery provides goquery-based implementations of the docinv
// HTML extraction interfaces.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mrozanski/docinv"
)

// Ensure LandingExtractor implements docinv.GuideExtractor at compile time.
var _ docinv.GuideExtractor = (*LandingExtractor)(nil)

// LandingExtractor extracts guide links from a product landing page.
// Each h2 heading names a category; anchors inside the h2's parent
// container that point at documentation pages become guides.
type LandingExtractor struct{}

// NewLandingExtractor creates a new LandingExtractor.
func NewLandingExtractor() *LandingExtractor {
	return &LandingExtractor{}
}

// ExtractGuides parses landing page HTML and returns (category, title, URL)
// tuples in document order. Guide URLs are rewritten to their html-single
// form and deduplicated, first occurrence winning.
func (e *LandingExtractor) ExtractGuides(html string, baseURL string) ([]docinv.Guide, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, docinv.Errorf(docinv.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, docinv.Errorf(docinv.EINVALID, "failed to parse HTML: %v", err)
	}

	seen := make(map[string]struct{})
	var guides []docinv.Guide

	doc.Find("h2").Each(func(_ int, h2 *goquery.Selection) {
		category := docinv.CleanHeadingText(h2.Text())
		if docinv.SkipHeading(category) {
			return
		}

		h2.Parent().Find("a[href]").Each(func(_ int, link *goquery.Selection) {
			href, _ := link.Attr("href")
			if href == "" || isNonContentLink(href) {
				return
			}

			ref, err := url.Parse(href)
			if err != nil {
				return
			}
			absolute := base.ResolveReference(ref).String()

			// Only documentation pages; landing pages also link to
			// support portals and marketing content.
			if !strings.Contains(absolute, "/documentation/") {
				return
			}

			guideURL := docinv.HTMLSingleURL(absolute)
			if _, ok := seen[guideURL]; ok {
				return
			}
			seen[guideURL] = struct{}{}

			title := docinv.CleanHeadingText(link.Text())
			if title == "" {
				return
			}

			guides = append(guides, docinv.Guide{
				Category: category,
				Title:    title,
				URL:      guideURL,
			})
		})
	})

	return guides, nil
}

// isNonContentLink checks if a href is a fragment or non-HTTP link that
// should be skipped.
func isNonContentLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "#") ||
		strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:")
}
