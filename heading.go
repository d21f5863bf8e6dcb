package docinv

import "strings"

// Heading represents a heading within a guide page.
type Heading struct {
	Level  int    // 1-6, from the hN tag name
	Text   string // cleaned heading text
	Anchor string // in-page anchor ID, may be empty
	URL    string // guide URL plus #anchor when an anchor exists
}

// boilerplateSuffixes are copy-link widget remnants that heading text
// extraction picks up on docs sites. Stripped in order; earlier entries
// subsume later ones.
var boilerplateSuffixes = []string{
	"Copy linkLink copied to clipboard!",
	"Copy linkLink copied to clipboard",
	"Copy link",
	"Link copied",
	"Copied!",
	" to clipboard!",
}

// skipHeadings are navigation and legal headings that never belong in a
// content inventory. Matched against the cleaned, lowercased heading text.
var skipHeadings = map[string]struct{}{
	"legal notice":     {},
	"left navigation":  {},
	"copyright":        {},
	"privacy":          {},
	"red hat legal":    {},
	"about red hat":    {},
	"learn":            {},
	"try, buy, & sell": {},
	"communities":      {},
}

// CleanHeadingText collapses whitespace and strips boilerplate suffixes
// from raw heading text.
func CleanHeadingText(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	for _, suffix := range boilerplateSuffixes {
		if strings.HasSuffix(text, suffix) {
			text = strings.TrimSpace(strings.TrimSuffix(text, suffix))
		}
	}
	return text
}

// SkipHeading reports whether a heading is boilerplate that should be
// excluded from the inventory.
func SkipHeading(text string) bool {
	_, ok := skipHeadings[strings.ToLower(strings.TrimSpace(text))]
	return ok
}

// FilterByChapter keeps only the h2 headings matching one of the chapter
// substrings (case-insensitive) together with their child headings. A
// matching h2 turns inclusion on; the next non-matching h2 turns it off.
// An empty chapter list returns the input unchanged.
func FilterByChapter(headings []Heading, chapters []string) []Heading {
	if len(chapters) == 0 {
		return headings
	}

	filtered := make([]Heading, 0, len(headings))
	include := false
	for _, h := range headings {
		if h.Level == 2 {
			include = containsFold(h.Text, chapters)
		}
		if include {
			filtered = append(filtered, h)
		}
	}
	return filtered
}
