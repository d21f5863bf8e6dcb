package main

import (
	"fmt"
	"strings"

	"github.com/mrozanski/docinv"
)

// Run executes the guides command.
func (g *GuidesCmd) Run(deps *Dependencies) error {
	landingURL := strings.TrimRight(g.URL, "/")

	html, err := deps.Fetcher.Fetch(deps.Ctx, landingURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docinv.ErrorMessage(err))
		return err
	}

	guides, err := deps.Guides.ExtractGuides(html, landingURL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", docinv.ErrorMessage(err))
		return err
	}

	var filter *docinv.GuideFilter
	if len(g.Category) > 0 || len(g.Title) > 0 {
		filter = &docinv.GuideFilter{Categories: g.Category, Titles: g.Title}
	}
	guides = docinv.FilterGuides(guides, filter)

	for _, guide := range guides {
		fmt.Fprintf(deps.Stdout, "%s\t%s\t%s\n", guide.Category, guide.Title, guide.URL)
	}
	fmt.Fprintf(deps.Stdout, "%d guides\n", len(guides))

	return nil
}
