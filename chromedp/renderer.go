// Package chromedp renders kata training pages with chromedp.
package chromedp

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/fwojciec/katadl"
)

// Default wait budgets for the training page.
const (
	DefaultOverlayTimeout     = 15 * time.Second
	DefaultDescriptionTimeout = 10 * time.Second
)

// Ensure Renderer implements katadl.Renderer at compile time.
var _ katadl.Renderer = (*Renderer)(nil)

// Renderer loads training pages in a fresh headless Chrome per call.
type Renderer struct {
	overlayTimeout     time.Duration
	descriptionTimeout time.Duration
	allocOpts          []chromedp.ExecAllocatorOption
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOverlayTimeout sets how long to wait for the loading overlay to go away.
func WithOverlayTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.overlayTimeout = d
	}
}

// WithDescriptionTimeout sets how long to wait for the description to appear.
func WithDescriptionTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.descriptionTimeout = d
	}
}

// NewRenderer creates a new Renderer. No browser is started until Render.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		overlayTimeout:     DefaultOverlayTimeout,
		descriptionTimeout: DefaultDescriptionTimeout,
		allocOpts: append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.Flag("disable-renderer-backgrounding", true),
		),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render navigates to the URL and returns the rendered page once the
// description is visible. The browser is shut down before Render returns.
func (r *Renderer) Render(ctx context.Context, url string) (*katadl.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, r.allocOpts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	if err := chromedp.Run(browserCtx, chromedp.Navigate(url)); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}

	var hidden, visible bool
	if err := chromedp.Run(browserCtx, chromedp.PollFunction(katadl.HiddenPredicateJS, &hidden,
		chromedp.WithPollingArgs(katadl.OverlaySelector),
		chromedp.WithPollingTimeout(r.overlayTimeout),
	)); err != nil {
		return nil, fmt.Errorf("waiting for loading overlay to disappear: %w", err)
	}
	if err := chromedp.Run(browserCtx, chromedp.PollFunction(katadl.VisiblePredicateJS, &visible,
		chromedp.WithPollingArgs(katadl.DescriptionSelector),
		chromedp.WithPollingTimeout(r.descriptionTimeout),
	)); err != nil {
		return nil, fmt.Errorf("waiting for description: %w", err)
	}

	var html string
	if err := chromedp.Run(browserCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return nil, fmt.Errorf("reading page HTML: %w", err)
	}

	initialCode, err := editorValue(browserCtx, katadl.CodeEditorSelector)
	if err != nil {
		return nil, err
	}
	testCode, err := editorValue(browserCtx, katadl.FixtureEditorSelector)
	if err != nil {
		return nil, err
	}

	return &katadl.RenderedPage{
		HTML:        html,
		InitialCode: initialCode,
		TestCode:    testCode,
	}, nil
}

// editorValue reads a CodeMirror buffer through the editor's own API.
func editorValue(ctx context.Context, selector string) (string, error) {
	var exists bool
	if err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf("document.querySelector(%q) !== null", selector), &exists)); err != nil {
		return "", fmt.Errorf("looking up editor %q: %w", selector, err)
	}
	if !exists {
		return "", katadl.Errorf(katadl.ENOTFOUND, "editor %q not found", selector)
	}

	var value string
	if err := chromedp.Run(ctx, chromedp.Evaluate(fmt.Sprintf("(%s)(%q)", katadl.EditorValueJS, selector), &value)); err != nil {
		return "", fmt.Errorf("reading editor %q: %w", selector, err)
	}
	return value, nil
}
