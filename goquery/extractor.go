// Package goquery reads kata details from rendered training page HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/katadl"
)

// Selectors for the static kata details.
const (
	LevelSelector       = "div.inner-small-hex"
	TitleSelector       = "h4"
	DescriptionSelector = "div#description"
)

// Ensure Extractor implements katadl.DetailsExtractor at compile time.
var _ katadl.DetailsExtractor = (*Extractor)(nil)

// Extractor reads kata details from rendered training page HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the level, title and description of the kata. Elements
// that are missing from the page are replaced by placeholders.
func (e *Extractor) Extract(html string) (*katadl.Details, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, katadl.Errorf(katadl.EINVALID, "failed to parse HTML: %v", err)
	}

	details := &katadl.Details{
		Level:       firstText(doc, LevelSelector, katadl.UnknownLevel),
		Name:        firstText(doc, TitleSelector, katadl.UnknownKata),
		Description: firstText(doc, DescriptionSelector, katadl.NoDescription),
	}

	if desc := doc.Find(DescriptionSelector).First(); desc.Length() > 0 {
		inner, err := desc.Html()
		if err != nil {
			return nil, katadl.Errorf(katadl.EINVALID, "failed to render description HTML: %v", err)
		}
		details.DescriptionHTML = strings.TrimSpace(inner)
	}

	return details, nil
}

// firstText returns the trimmed text of the first match, or fallback when
// nothing matches.
func firstText(doc *goquery.Document, selector, fallback string) string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return fallback
	}
	return strings.TrimSpace(sel.Text())
}
