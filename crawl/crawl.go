// Package crawl provides content inventory crawl orchestration.
// It coordinates landing page fetching, guide discovery, paced guide
// fetching, and heading extraction.
package crawl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mrozanski/docinv"
	"golang.org/x/time/rate"
)

// DefaultDelay is the default pause between consecutive guide fetches.
const DefaultDelay = time.Second

// Crawler orchestrates a content inventory crawl. Guides are fetched
// strictly sequentially; the delay paces requests so documentation portals
// are not hammered.
type Crawler struct {
	Fetcher  docinv.Fetcher
	Guides   docinv.GuideExtractor
	Headings docinv.HeadingExtractor

	// Delay between consecutive guide fetches. Defaults to DefaultDelay.
	Delay time.Duration

	// Limit caps the number of guides fetched after filtering (0 = all).
	Limit int

	// Filter restricts guides by category/title substrings.
	Filter *docinv.GuideFilter

	// Chapters restricts extracted headings to matching h2 chapters.
	Chapters []string
}

// Result holds the outcome of a crawl.
type Result struct {
	Guides     int
	Headings   int
	Failed     int
	Categories int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressGuideCompleted
	ProgressGuideFailed
	ProgressFinished
)

// ProgressEvent reports progress during a crawl.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Guide     docinv.Guide
	Headings  int
	Error     error
}

// ProgressFunc is a callback for reporting crawl progress.
type ProgressFunc func(event ProgressEvent)

// Run crawls the landing page and every discovered guide, returning one
// entry per guide in discovery order. A guide whose fetch or parse fails is
// reported via progress and kept with no headings; the crawl continues.
// A landing page failure aborts the crawl.
func (c *Crawler) Run(ctx context.Context, landingURL string, progress ProgressFunc) ([]docinv.Entry, *Result, error) {
	landingURL = strings.TrimRight(landingURL, "/")

	landingHTML, err := c.Fetcher.Fetch(ctx, landingURL)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch landing page: %w", err)
	}

	guides, err := c.Guides.ExtractGuides(landingHTML, landingURL)
	if err != nil {
		return nil, nil, fmt.Errorf("extract guides: %w", err)
	}

	guides = docinv.FilterGuides(guides, c.Filter)
	if c.Limit > 0 && len(guides) > c.Limit {
		guides = guides[:c.Limit]
	}

	total := len(guides)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	delay := c.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	// Burst 1 means the first fetch goes out immediately and each
	// subsequent fetch waits out the delay.
	limiter := rate.NewLimiter(rate.Every(delay), 1)

	entries := make([]docinv.Entry, 0, total)
	result := &Result{Guides: total}
	categories := make(map[string]struct{})

	for i, guide := range guides {
		if err := limiter.Wait(ctx); err != nil {
			return nil, nil, err
		}
		categories[guide.Category] = struct{}{}

		headings, err := c.crawlGuide(ctx, guide)
		if err != nil {
			result.Failed++
			entries = append(entries, docinv.Entry{Guide: guide})
			if progress != nil {
				progress(ProgressEvent{
					Type:      ProgressGuideFailed,
					Completed: i + 1,
					Total:     total,
					Guide:     guide,
					Error:     err,
				})
			}
			continue
		}

		result.Headings += len(headings)
		entries = append(entries, docinv.Entry{Guide: guide, Headings: headings})
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressGuideCompleted,
				Completed: i + 1,
				Total:     total,
				Guide:     guide,
				Headings:  len(headings),
			})
		}
	}

	result.Categories = len(categories)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return entries, result, nil
}

// crawlGuide fetches one guide page and extracts its filtered headings.
func (c *Crawler) crawlGuide(ctx context.Context, guide docinv.Guide) ([]docinv.Heading, error) {
	html, err := c.Fetcher.Fetch(ctx, guide.URL)
	if err != nil {
		return nil, err
	}

	headings, err := c.Headings.ExtractHeadings(html, guide.URL)
	if err != nil {
		return nil, err
	}

	return docinv.FilterByChapter(headings, c.Chapters), nil
}
