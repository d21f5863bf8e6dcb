package docinv

// GuideExtractor extracts guide links from a product landing page.
type GuideExtractor interface {
	// ExtractGuides parses landing page HTML and returns the guides it
	// links to, grouped under category headings, deduplicated by URL,
	// in document order. The baseURL resolves relative hrefs.
	ExtractGuides(html string, baseURL string) ([]Guide, error)
}

// HeadingExtractor extracts the ordered heading hierarchy from a guide page.
type HeadingExtractor interface {
	// ExtractHeadings parses guide page HTML and returns its headings in
	// document order, with anchors resolved. The pageURL anchors heading
	// URLs (pageURL#anchor).
	ExtractHeadings(html string, pageURL string) ([]Heading, error)
}

// InventoryWriter persists shaped inventory rows.
type InventoryWriter interface {
	// WriteInventory writes the header plus rows to path, creating parent
	// directories as needed.
	WriteInventory(path string, rows [][]string) error
}
