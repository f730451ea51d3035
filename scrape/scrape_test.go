package scrape_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/katadl"
	"github.com/fwojciec/katadl/goquery"
	"github.com/fwojciec/katadl/mock"
	"github.com/fwojciec/katadl/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageHTML = `<html><body>
<div class="inner-small-hex">8 kyu</div>
<h4>Sum Two Numbers</h4>
<div id="description"><p>Add <code>two</code> numbers.</p></div>
</body></html>`

func staticRenderer(html, code, test string) *mock.Renderer {
	return &mock.Renderer{
		RenderFn: func(_ context.Context, _ string) (*katadl.RenderedPage, error) {
			return &katadl.RenderedPage{HTML: html, InitialCode: code, TestCode: test}, nil
		},
	}
}

// Story: Scraping a Kata
// The scraper renders the training page and combines the static details
// with the live editor buffers.

func TestScraper_Scrape(t *testing.T) {
	t.Parallel()

	t.Run("builds kata from rendered page", func(t *testing.T) {
		t.Parallel()

		// Given a renderer returning a python training page
		var renderedURL string
		s := &scrape.Scraper{
			Renderer: &mock.Renderer{
				RenderFn: func(_ context.Context, url string) (*katadl.RenderedPage, error) {
					renderedURL = url
					return &katadl.RenderedPage{
						HTML:        pageHTML,
						InitialCode: "def sum(a,b): pass",
						TestCode:    "assert sum(1,2)==3",
					}, nil
				},
			},
			Extractor: goquery.NewExtractor(),
		}

		// When I scrape the training URL
		kata, err := s.Scrape(context.Background(), "https://www.codewars.com/kata/abc123/train/python")

		// Then all fields are populated
		require.NoError(t, err)
		assert.Equal(t, "https://www.codewars.com/kata/abc123/train/python", renderedURL)
		assert.Equal(t, &katadl.Kata{
			Language:    "python",
			Level:       "8 kyu",
			Name:        "Sum Two Numbers",
			Description: "Add two numbers.",
			InitialCode: "def sum(a,b): pass",
			TestCode:    "assert sum(1,2)==3",
		}, kata)
	})

	t.Run("rejects URL without language before rendering", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Renderer: &mock.Renderer{
				RenderFn: func(_ context.Context, _ string) (*katadl.RenderedPage, error) {
					t.Fatal("renderer must not be called")
					return nil, nil
				},
			},
			Extractor: goquery.NewExtractor(),
		}

		kata, err := s.Scrape(context.Background(), "https://www.codewars.com/kata/abc123")

		require.Error(t, err)
		assert.Nil(t, kata)
		assert.Equal(t, katadl.EINVALID, katadl.ErrorCode(err))
		assert.ErrorIs(t, err, katadl.ErrNoLanguage)
		assert.Equal(t, "could not determine the language from the URL", katadl.ErrorMessage(err))
	})

	t.Run("wraps render failure", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Renderer: &mock.Renderer{
				RenderFn: func(_ context.Context, _ string) (*katadl.RenderedPage, error) {
					return nil, context.DeadlineExceeded
				},
			},
			Extractor: goquery.NewExtractor(),
		}

		kata, err := s.Scrape(context.Background(), "https://www.codewars.com/kata/abc123/train/python")

		require.Error(t, err)
		assert.Nil(t, kata)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Contains(t, err.Error(), "rendering kata page")
	})

	t.Run("wraps extraction failure", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Renderer:  staticRenderer(pageHTML, "", ""),
			Extractor: &mock.DetailsExtractor{
				ExtractFn: func(_ string) (*katadl.Details, error) {
					return nil, katadl.Errorf(katadl.EINVALID, "failed to parse HTML")
				},
			},
		}

		_, err := s.Scrape(context.Background(), "https://www.codewars.com/kata/abc123/train/python")

		require.Error(t, err)
		assert.Equal(t, katadl.EINVALID, katadl.ErrorCode(err))
		assert.NotErrorIs(t, err, katadl.ErrNoLanguage)
	})

	t.Run("keeps empty editor buffers", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Renderer:  staticRenderer(pageHTML, "", ""),
			Extractor: goquery.NewExtractor(),
		}

		kata, err := s.Scrape(context.Background(), "https://www.codewars.com/kata/abc123/train/python")

		require.NoError(t, err)
		assert.Empty(t, kata.InitialCode)
		assert.Empty(t, kata.TestCode)
	})

	t.Run("converts description when converter is set", func(t *testing.T) {
		t.Parallel()

		var convertedHTML, convertedLanguage string
		s := &scrape.Scraper{
			Renderer:  staticRenderer(pageHTML, "", ""),
			Extractor: goquery.NewExtractor(),
			Converter: &mock.Converter{
				ConvertFn: func(html, language string) (string, error) {
					convertedHTML = html
					convertedLanguage = language
					return "Add `two` numbers.", nil
				},
			},
		}

		kata, err := s.Scrape(context.Background(), "https://www.codewars.com/kata/abc123/train/javascript")

		require.NoError(t, err)
		assert.Equal(t, "<p>Add <code>two</code> numbers.</p>", convertedHTML)
		assert.Equal(t, "javascript", convertedLanguage)
		assert.Equal(t, "Add `two` numbers.", kata.Description)
		assert.Equal(t, "javascript", kata.Language)
	})

	t.Run("skips conversion when description is missing", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Renderer:  staticRenderer(`<h4>Only Title</h4>`, "", ""),
			Extractor: goquery.NewExtractor(),
			Converter: &mock.Converter{
				ConvertFn: func(_, _ string) (string, error) {
					t.Fatal("converter must not be called")
					return "", nil
				},
			},
		}

		kata, err := s.Scrape(context.Background(), "https://www.codewars.com/kata/abc123/train/python")

		require.NoError(t, err)
		assert.Equal(t, katadl.NoDescription, kata.Description)
	})

	t.Run("wraps conversion failure", func(t *testing.T) {
		t.Parallel()

		s := &scrape.Scraper{
			Renderer:  staticRenderer(pageHTML, "", ""),
			Extractor: goquery.NewExtractor(),
			Converter: &mock.Converter{
				ConvertFn: func(_, _ string) (string, error) {
					return "", errors.New("bad markup")
				},
			},
		}

		_, err := s.Scrape(context.Background(), "https://www.codewars.com/kata/abc123/train/python")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "converting description: bad markup")
	})
}
