package main

import (
	"errors"
	"fmt"

	"github.com/fwojciec/katadl"
)

// Run executes the download. Failures to resolve the language or to
// scrape a complete kata are reported on stdout and end the run without
// an error; filesystem errors are returned.
func (c *KataCmd) Run(deps *Dependencies) error {
	kata, err := deps.Scraper.Scrape(deps.Ctx, c.URL)
	if errors.Is(err, katadl.ErrNoLanguage) {
		fmt.Fprintln(deps.Stdout, "Could not determine the language from the URL.")
		return nil
	} else if err != nil {
		fmt.Fprintf(deps.Stdout, "An error occurred while scraping the kata: %v\n", err)
		fmt.Fprintln(deps.Stdout, "Failed to retrieve the necessary kata details.")
		return nil
	}

	if err := kata.Validate(); err != nil {
		deps.Logger.Warn("incomplete kata", "url", c.URL, "reason", katadl.ErrorMessage(err))
		fmt.Fprintln(deps.Stdout, "Failed to retrieve the necessary kata details.")
		return nil
	}

	files, err := deps.Writer.WriteKata(deps.Ctx, kata)
	if err != nil {
		return fmt.Errorf("writing kata files: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Kata files created successfully in: %s\n", files.Dir)
	return nil
}
