package katadl

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. Code blocks without
	// a language of their own are fenced as language.
	Convert(html, language string) (string, error)
}
