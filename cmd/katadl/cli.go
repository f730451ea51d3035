package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/katadl"
	"github.com/fwojciec/katadl/scrape"
)

// Browser backends.
const (
	BrowserRod      = "rod"
	BrowserChromedp = "chromedp"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Output             string        `short:"o" default:"." env:"KATADL_OUTPUT" help:"Base directory for kata folders"`
	Browser            string        `short:"b" default:"rod" enum:"rod,chromedp" env:"KATADL_BROWSER" help:"Browser automation backend (rod, chromedp)"`
	Markdown           bool          `short:"m" help:"Convert the description HTML to markdown instead of plain text"`
	OverlayTimeout     time.Duration `default:"15s" help:"How long to wait for the loading overlay to disappear"`
	DescriptionTimeout time.Duration `default:"10s" help:"How long to wait for the description to become visible"`
	Verbose            bool          `short:"v" help:"Log browser and filesystem operations to stderr"`
	URL                string        `arg:"" required:"" help:"Kata training URL, e.g. https://www.codewars.com/kata/<id>/train/<language>"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Scraper *scrape.Scraper
	Writer  katadl.KataWriter
}

// KataCmd downloads a single kata.
type KataCmd struct {
	URL string
}
