// Package scrape turns a kata training URL into a katadl.Kata.
// It coordinates language detection, browser rendering, and extraction
// of the kata details.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/katadl"
)

// Scraper extracts katas from training pages.
type Scraper struct {
	Renderer  katadl.Renderer
	Extractor katadl.DetailsExtractor

	// Converter, if set, replaces the plain-text description with the
	// Markdown conversion of the description HTML.
	Converter katadl.Converter
}

// Scrape renders the training page at rawURL and returns the kata it holds.
// The URL must end in /train/<language>; otherwise katadl.ErrNoLanguage is
// returned before any browser is started.
func (s *Scraper) Scrape(ctx context.Context, rawURL string) (*katadl.Kata, error) {
	language, ok := katadl.ParseLanguage(rawURL)
	if !ok {
		return nil, katadl.ErrNoLanguage
	}

	page, err := s.Renderer.Render(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("rendering kata page: %w", err)
	}

	details, err := s.Extractor.Extract(page.HTML)
	if err != nil {
		return nil, fmt.Errorf("extracting kata details: %w", err)
	}

	description := details.Description
	if s.Converter != nil && details.DescriptionHTML != "" {
		description, err = s.Converter.Convert(details.DescriptionHTML, language)
		if err != nil {
			return nil, fmt.Errorf("converting description: %w", err)
		}
	}

	return &katadl.Kata{
		Language:    language,
		Level:       details.Level,
		Name:        details.Name,
		Description: description,
		InitialCode: page.InitialCode,
		TestCode:    page.TestCode,
	}, nil
}
