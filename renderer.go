package katadl

import "context"

// Selectors shared by the browser renderers.
const (
	// OverlaySelector matches the full-screen overlay shown while the
	// training page loads.
	OverlaySelector = "div.fixed.inset-0.w-full.h-screen.z-50.overflow-hidden"

	// DescriptionSelector matches the kata description container.
	DescriptionSelector = "#description"

	// CodeEditorSelector matches the CodeMirror widget holding the starter code.
	CodeEditorSelector = "#code .CodeMirror"

	// FixtureEditorSelector matches the CodeMirror widget holding the test code.
	FixtureEditorSelector = "#fixture .CodeMirror"
)

// Page functions evaluated in the browser. Each takes a CSS selector.
const (
	// HiddenPredicateJS reports whether the matched element is absent or
	// not displayed.
	HiddenPredicateJS = `(selector) => {
	const el = document.querySelector(selector);
	if (!el) return true;
	const style = window.getComputedStyle(el);
	return style.display === 'none' || style.visibility === 'hidden' || el.getClientRects().length === 0;
}`

	// VisiblePredicateJS reports whether the matched element is present
	// and displayed.
	VisiblePredicateJS = `(selector) => {
	const el = document.querySelector(selector);
	if (!el) return false;
	const style = window.getComputedStyle(el);
	return style.display !== 'none' && style.visibility !== 'hidden' && el.getClientRects().length > 0;
}`

	// EditorValueJS returns the buffer of the CodeMirror instance attached
	// to the matched element.
	EditorValueJS = `(selector) => document.querySelector(selector).CodeMirror.getValue()`
)

// RenderedPage is a training page after client-side rendering.
type RenderedPage struct {
	// HTML is the serialized DOM once the description is visible.
	HTML string

	// InitialCode and TestCode are the live editor buffers. They are read
	// through the editor API because the serialized DOM does not reliably
	// contain them.
	InitialCode string
	TestCode    string
}

// Renderer loads kata pages in a browser.
type Renderer interface {
	// Render launches a browser session, navigates to the URL, waits for the
	// page to finish loading, and returns the snapshot and editor buffers.
	// The session is released before Render returns.
	Render(ctx context.Context, url string) (*RenderedPage, error)
}
