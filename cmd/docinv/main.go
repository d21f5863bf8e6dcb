package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mrozanski/docinv"
	"github.com/mrozanski/docinv/fs"
	"github.com/mrozanski/docinv/goquery"
	docinvhttp "github.com/mrozanski/docinv/http"
	docinvslog "github.com/mrozanski/docinv/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docinv"),
		kong.Description("Crawl a documentation landing page and generate a content inventory CSV."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docinv --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Wire services into dependencies. Verbose mode wraps each service
	// with a logging decorator writing to stderr.
	fetcher := docinvhttp.NewFetcher()
	defer fetcher.Close()

	var (
		f        docinv.Fetcher          = fetcher
		guides   docinv.GuideExtractor   = goquery.NewLandingExtractor()
		headings docinv.HeadingExtractor = goquery.NewHeadingExtractor()
	)
	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		f = docinvslog.NewLoggingFetcher(f, logger)
		guides = docinvslog.NewLoggingGuideExtractor(guides, logger)
		headings = docinvslog.NewLoggingHeadingExtractor(headings, logger)
	}

	deps.Fetcher = f
	deps.Guides = guides
	deps.Headings = headings
	deps.Writer = fs.NewWriter()

	return kongCtx.Run(deps)
}
