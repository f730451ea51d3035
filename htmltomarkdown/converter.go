// Package htmltomarkdown converts kata descriptions from HTML to Markdown.
package htmltomarkdown

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/katadl"
)

// Ensure Converter implements katadl.Converter at compile time.
var _ katadl.Converter = (*Converter)(nil)

// Converter renders kata descriptions as Markdown. Example tables are
// kept, and every fenced code block carries a language so the examples
// stay highlighted outside the training page.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a description container's inner HTML into Markdown
// with surrounding whitespace removed. Code blocks that declare no
// language-* or lang-* class are fenced as language.
func (c *Converter) Convert(html, language string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", katadl.Errorf(katadl.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", katadl.Errorf(katadl.EINVALID, "failed to parse HTML: %v", err)
	}
	tagCodeBlocks(doc.Selection, language)

	result, err := c.conv.ConvertNode(doc.Get(0))
	if err != nil {
		return "", fmt.Errorf("converting description: %w", err)
	}

	return strings.TrimSpace(string(result)), nil
}

// tagCodeBlocks adds a language-<language> class to the code element of
// every <pre> block that has no language yet.
func tagCodeBlocks(sel *goquery.Selection, language string) {
	if language == "" {
		return
	}

	sel.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		if hasLanguageClass(pre) || hasLanguageClass(pre.Find("code")) {
			return
		}

		code := pre.ChildrenFiltered("code").First()
		if code.Length() == 0 {
			pre.AddClass("language-" + language)
			return
		}
		code.AddClass("language-" + language)
	})
}

func hasLanguageClass(sel *goquery.Selection) bool {
	found := false
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, class := range strings.Fields(s.AttrOr("class", "")) {
			if strings.HasPrefix(class, "language-") || strings.HasPrefix(class, "lang-") {
				found = true
				return false
			}
		}
		return true
	})
	return found
}
