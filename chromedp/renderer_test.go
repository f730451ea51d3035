//go:build integration

package chromedp_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/katadl"
	"github.com/fwojciec/katadl/chromedp"
	"github.com/fwojciec/katadl/internal/katatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Renderer implements katadl.Renderer.
var _ katadl.Renderer = (*chromedp.Renderer)(nil)

func TestRenderer_Render_ReadsEditorBuffers(t *testing.T) {
	t.Parallel()

	url := katatest.NewServer(t, katatest.Page{
		Level:         "7 kyu",
		Name:          "Reverse",
		Description:   "Reverse a string.",
		InitialCode:   "function reverse($s) {}",
		TestCode:      "class ReverseTest {}",
		OverlayMillis: 200,
	})

	page, err := chromedp.NewRenderer().Render(context.Background(), url)

	require.NoError(t, err)
	assert.Contains(t, page.HTML, "Reverse a string.")
	assert.Equal(t, "function reverse($s) {}", page.InitialCode)
	assert.Equal(t, "class ReverseTest {}", page.TestCode)
}

func TestRenderer_Render_TimesOutOnStuckOverlay(t *testing.T) {
	t.Parallel()

	url := katatest.NewServer(t, katatest.Page{OverlayMillis: -1})

	r := chromedp.NewRenderer(chromedp.WithOverlayTimeout(300 * time.Millisecond))
	_, err := r.Render(context.Background(), url)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading overlay")
}

func TestRenderer_Render_MissingFixtureEditor(t *testing.T) {
	t.Parallel()

	url := katatest.NewServer(t, katatest.Page{
		Description: "Desc.",
		NoFixture:   true,
	})

	_, err := chromedp.NewRenderer().Render(context.Background(), url)

	require.Error(t, err)
	assert.Equal(t, katadl.ENOTFOUND, katadl.ErrorCode(err))
}
