package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/katadl"
	"github.com/fwojciec/katadl/chromedp"
	"github.com/fwojciec/katadl/fs"
	"github.com/fwojciec/katadl/goquery"
	"github.com/fwojciec/katadl/htmltomarkdown"
	"github.com/fwojciec/katadl/rod"
	"github.com/fwojciec/katadl/scrape"
	katslog "github.com/fwojciec/katadl/slog"
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
type Main struct {
	// Renderer replaces the browser backend chosen by --browser.
	// Set before calling Run().
	Renderer katadl.Renderer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("katadl"),
		kong.Description("Download a Codewars kata into <language>/<level>/<kata>/"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// No URL: show usage and stop
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
	}

	renderer := m.Renderer
	if renderer == nil {
		renderer = newRenderer(cli.Browser, cli.OverlayTimeout, cli.DescriptionTimeout)
	}
	var writer katadl.KataWriter = fs.NewWriter(cli.Output)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Logger = logger
		logger.Debug("config",
			"output", cli.Output,
			"browser", cli.Browser,
			"markdown", cli.Markdown,
			"overlay_timeout", cli.OverlayTimeout,
			"description_timeout", cli.DescriptionTimeout,
		)
		renderer = katslog.NewLoggingRenderer(renderer, logger)
		writer = katslog.NewLoggingWriter(writer, logger)
	}

	deps.Scraper = &scrape.Scraper{
		Renderer:  renderer,
		Extractor: goquery.NewExtractor(),
	}
	if cli.Markdown {
		deps.Scraper.Converter = htmltomarkdown.NewConverter()
	}
	deps.Writer = writer

	cmd := &KataCmd{URL: cli.URL}
	return cmd.Run(deps)
}

// newRenderer returns the browser backend named by browser.
func newRenderer(browser string, overlayTimeout, descriptionTimeout time.Duration) katadl.Renderer {
	switch browser {
	case BrowserChromedp:
		return chromedp.NewRenderer(
			chromedp.WithOverlayTimeout(overlayTimeout),
			chromedp.WithDescriptionTimeout(descriptionTimeout),
		)
	case BrowserRod:
		fallthrough
	default:
		return rod.NewRenderer(
			rod.WithOverlayTimeout(overlayTimeout),
			rod.WithDescriptionTimeout(descriptionTimeout),
		)
	}
}
