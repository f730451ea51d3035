// Package rod renders kata training pages with go-rod.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/katadl"
	"github.com/go-rod/rod"
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
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithOverlayTimeout sets how long to wait for the loading overlay to go away.
// Defaults to DefaultOverlayTimeout (15s) if not specified.
func WithOverlayTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		r.overlayTimeout = d
	}
}

// WithDescriptionTimeout sets how long to wait for the description to appear.
// Defaults to DefaultDescriptionTimeout (10s) if not specified.
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
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render navigates to the URL and returns the rendered page once the
// description is visible. The browser is closed before Render returns.
func (r *Renderer) Render(ctx context.Context, url string) (*katadl.RenderedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	session, err := NewSession()
	if err != nil {
		return nil, err
	}
	defer session.Close()

	page, err := session.Page(ctx)
	if err != nil {
		return nil, err
	}
	defer page.Close()

	if err := page.Navigate(url); err != nil {
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("loading %s: %w", url, err)
	}

	if err := page.Timeout(r.overlayTimeout).Wait(rod.Eval(katadl.HiddenPredicateJS, katadl.OverlaySelector)); err != nil {
		return nil, fmt.Errorf("waiting for loading overlay to disappear: %w", err)
	}
	if err := page.Timeout(r.descriptionTimeout).Wait(rod.Eval(katadl.VisiblePredicateJS, katadl.DescriptionSelector)); err != nil {
		return nil, fmt.Errorf("waiting for description: %w", err)
	}

	html, err := page.HTML()
	if err != nil {
		return nil, fmt.Errorf("reading page HTML: %w", err)
	}

	initialCode, err := editorValue(page, katadl.CodeEditorSelector)
	if err != nil {
		return nil, err
	}
	testCode, err := editorValue(page, katadl.FixtureEditorSelector)
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
func editorValue(page *rod.Page, selector string) (string, error) {
	has, _, err := page.Has(selector)
	if err != nil {
		return "", fmt.Errorf("looking up editor %q: %w", selector, err)
	}
	if !has {
		return "", katadl.Errorf(katadl.ENOTFOUND, "editor %q not found", selector)
	}

	res, err := page.Eval(katadl.EditorValueJS, selector)
	if err != nil {
		return "", fmt.Errorf("reading editor %q: %w", selector, err)
	}
	return res.Value.Str(), nil
}
