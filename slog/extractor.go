package slog

import (
	"log/slog"
	"time"

	"github.com/mrozanski/docinv"
)

// Ensure LoggingGuideExtractor implements docinv.GuideExtractor.
var _ docinv.GuideExtractor = (*LoggingGuideExtractor)(nil)

// LoggingGuideExtractor wraps a GuideExtractor with debug logging.
type LoggingGuideExtractor struct {
	next   docinv.GuideExtractor
	logger *slog.Logger
}

// NewLoggingGuideExtractor creates a new LoggingGuideExtractor.
func NewLoggingGuideExtractor(next docinv.GuideExtractor, logger *slog.Logger) *LoggingGuideExtractor {
	return &LoggingGuideExtractor{next: next, logger: logger}
}

// ExtractGuides delegates to the wrapped extractor and logs the operation.
func (e *LoggingGuideExtractor) ExtractGuides(html string, baseURL string) (guides []docinv.Guide, err error) {
	defer func(begin time.Time) {
		e.logger.Info("guide discovery",
			"url", baseURL,
			"count", len(guides),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractGuides(html, baseURL)
}

// Ensure LoggingHeadingExtractor implements docinv.HeadingExtractor.
var _ docinv.HeadingExtractor = (*LoggingHeadingExtractor)(nil)

// LoggingHeadingExtractor wraps a HeadingExtractor with debug logging.
type LoggingHeadingExtractor struct {
	next   docinv.HeadingExtractor
	logger *slog.Logger
}

// NewLoggingHeadingExtractor creates a new LoggingHeadingExtractor.
func NewLoggingHeadingExtractor(next docinv.HeadingExtractor, logger *slog.Logger) *LoggingHeadingExtractor {
	return &LoggingHeadingExtractor{next: next, logger: logger}
}

// ExtractHeadings delegates to the wrapped extractor and logs the operation.
func (e *LoggingHeadingExtractor) ExtractHeadings(html string, pageURL string) (headings []docinv.Heading, err error) {
	defer func(begin time.Time) {
		e.logger.Info("heading extraction",
			"url", pageURL,
			"count", len(headings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractHeadings(html, pageURL)
}
