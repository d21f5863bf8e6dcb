package mock

import "github.com/mrozanski/docinv"

var _ docinv.GuideExtractor = (*GuideExtractor)(nil)

// GuideExtractor is a mock implementation of docinv.GuideExtractor.
type GuideExtractor struct {
	ExtractGuidesFn func(html string, baseURL string) ([]docinv.Guide, error)
}

func (e *GuideExtractor) ExtractGuides(html string, baseURL string) ([]docinv.Guide, error) {
	return e.ExtractGuidesFn(html, baseURL)
}

var _ docinv.HeadingExtractor = (*HeadingExtractor)(nil)

// HeadingExtractor is a mock implementation of docinv.HeadingExtractor.
type HeadingExtractor struct {
	ExtractHeadingsFn func(html string, pageURL string) ([]docinv.Heading, error)
}

func (e *HeadingExtractor) ExtractHeadings(html string, pageURL string) ([]docinv.Heading, error) {
	return e.ExtractHeadingsFn(html, pageURL)
}
