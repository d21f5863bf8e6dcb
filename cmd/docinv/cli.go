package main

import (
	"context"
	"io"
	"time"

	"github.com/mrozanski/docinv"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher  docinv.Fetcher
	Guides   docinv.GuideExtractor
	Headings docinv.HeadingExtractor
	Writer   docinv.InventoryWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Log fetches and extraction to stderr"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl a landing page and write a content inventory CSV"`
	Guides GuidesCmd `cmd:"" help:"List guides discovered on a landing page without crawling them"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL      string        `arg:"" help:"Product documentation landing page URL"`
	Output   string        `short:"o" help:"Output CSV file path (default: output/<product>_content_inventory.csv)"`
	Limit    int           `short:"l" help:"Limit number of guides to fetch (0 = all, useful for testing)"`
	Delay    time.Duration `default:"1s" help:"Delay between page fetches"`
	Category []string      `help:"Filter by category (case-insensitive substring, repeatable)"`
	Title    []string      `help:"Filter by guide title (case-insensitive substring, repeatable)"`
	Chapter  []string      `help:"Filter by chapter heading (case-insensitive substring, repeatable)"`
}

// GuidesCmd is the "guides" subcommand.
type GuidesCmd struct {
	URL      string   `arg:"" help:"Product documentation landing page URL"`
	Category []string `help:"Filter by category (case-insensitive substring, repeatable)"`
	Title    []string `help:"Filter by guide title (case-insensitive substring, repeatable)"`
}
