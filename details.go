package katadl

// Placeholders used when an element is missing from the page.
const (
	UnknownLevel  = "Unknown Level"
	UnknownKata   = "Unknown Kata"
	NoDescription = "No Description"
)

// Details holds the kata fields read from the static page markup.
type Details struct {
	Level       string
	Name        string
	Description string

	// DescriptionHTML is the inner HTML of the description container.
	// Empty when the container is missing.
	DescriptionHTML string
}

// DetailsExtractor reads kata details from rendered HTML.
type DetailsExtractor interface {
	// Extract parses the HTML. Missing elements fall back to placeholders
	// instead of failing.
	Extract(html string) (*Details, error)
}
