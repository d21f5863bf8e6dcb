package docinv

import (
	"net/url"
	"strings"
)

// Guide represents a guide linked from a product landing page.
type Guide struct {
	// Category is the landing-page section heading the guide appears under.
	Category string

	// Title is the guide's link text on the landing page.
	Title string

	// URL is the absolute full-page (html-single) address of the guide.
	URL string
}

// Validate returns an error if the guide contains invalid fields.
func (g *Guide) Validate() error {
	if g.Title == "" {
		return Errorf(EINVALID, "guide title required")
	}
	if g.URL == "" {
		return Errorf(EINVALID, "guide URL required")
	}
	return nil
}

// GuideFilter restricts a guide list by case-insensitive substring match.
// Multiple values within a field match any (OR); populated fields must all
// match (AND).
type GuideFilter struct {
	Categories []string
	Titles     []string
}

// Match reports whether the guide passes the filter.
func (f *GuideFilter) Match(g Guide) bool {
	if f == nil {
		return true
	}
	if len(f.Categories) > 0 && !containsFold(g.Category, f.Categories) {
		return false
	}
	if len(f.Titles) > 0 && !containsFold(g.Title, f.Titles) {
		return false
	}
	return true
}

// FilterGuides returns the guides matching the filter, preserving order.
// A nil or empty filter returns the input unchanged.
func FilterGuides(guides []Guide, filter *GuideFilter) []Guide {
	if filter == nil || (len(filter.Categories) == 0 && len(filter.Titles) == 0) {
		return guides
	}
	filtered := make([]Guide, 0, len(guides))
	for _, g := range guides {
		if filter.Match(g) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

// containsFold reports whether s contains any of the needles, ignoring case.
func containsFold(s string, needles []string) bool {
	lower := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(lower, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// HTMLSingleURL converts a multi-page guide URL to its single-page form so
// one fetch covers the whole guide.
// Example: .../html/serving_models/overview → .../html-single/serving_models/overview
func HTMLSingleURL(rawURL string) string {
	return strings.Replace(rawURL, "/html/", "/html-single/", 1)
}

// ProductSlug derives a short product identifier from a landing page URL,
// used for default output filenames. It prefers the path segment following
// "documentation", falls back to the last segment, then to "docs".
func ProductSlug(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "docs"
	}

	var parts []string
	for _, p := range strings.Split(strings.Trim(u.Path, "/"), "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}

	for i, p := range parts {
		if p == "documentation" && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	if len(parts) > 0 {
		return parts[len(parts)-1]
	}
	return "docs"
}
