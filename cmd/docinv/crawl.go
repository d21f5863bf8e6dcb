package main

import (
	"fmt"

	"github.com/mrozanski/docinv"
	"github.com/mrozanski/docinv/crawl"
	"github.com/mrozanski/docinv/fs"
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	output := c.Output
	if output == "" {
		output = fs.DefaultOutputPath(c.URL)
	}

	var filter *docinv.GuideFilter
	if len(c.Category) > 0 || len(c.Title) > 0 {
		filter = &docinv.GuideFilter{Categories: c.Category, Titles: c.Title}
	}

	crawler := &crawl.Crawler{
		Fetcher:  deps.Fetcher,
		Guides:   deps.Guides,
		Headings: deps.Headings,
		Delay:    c.Delay,
		Limit:    c.Limit,
		Filter:   filter,
		Chapters: c.Chapter,
	}

	fmt.Fprintf(deps.Stdout, "Fetching landing page: %s\n", c.URL)

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Found %d guides\n", event.Total)
		case crawl.ProgressGuideCompleted:
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s: %d headings\n",
				event.Completed, event.Total,
				crawl.TruncateTitle(event.Guide.Title, 60), event.Headings)
		case crawl.ProgressGuideFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: failed: %s\n",
				event.Completed, event.Total,
				crawl.TruncateTitle(event.Guide.Title, 60),
				docinv.ErrorMessage(event.Error))
		}
	}

	entries, result, err := crawler.Run(deps.Ctx, c.URL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docinv.ErrorMessage(err))
		return err
	}

	rows := docinv.BuildRows(entries)
	if err := deps.Writer.WriteInventory(output, rows); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docinv.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "\nDone! Wrote %s\n", output)
	fmt.Fprintf(deps.Stdout, "  %d categories, %d guides, %d headings (%d failed)\n",
		result.Categories, result.Guides, result.Headings, result.Failed)
	fmt.Fprintf(deps.Stdout, "  %d CSV rows (including separators)\n", len(rows))

	return nil
}
