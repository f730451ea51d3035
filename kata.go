package katadl

import "context"

// Kata is a single exercise extracted from a training page.
type Kata struct {
	Language    string
	Level       string
	Name        string
	Description string
	InitialCode string
	TestCode    string
}

// Validate returns an error if the kata lacks the details needed to write it.
// Code fields may be empty.
func (k *Kata) Validate() error {
	if k.Language == "" {
		return Errorf(EINVALID, "kata language required")
	}
	if k.Level == "" {
		return Errorf(EINVALID, "kata level required")
	}
	if k.Name == "" {
		return Errorf(EINVALID, "kata name required")
	}
	if k.Description == "" {
		return Errorf(EINVALID, "kata description required")
	}
	return nil
}

// Markdown returns the content of the kata's markdown file.
func (k *Kata) Markdown() string {
	return "# " + k.Name + "\n\n" + k.Description
}

// KataFiles lists the paths written for a kata.
type KataFiles struct {
	Dir      string
	Markdown string
	Code     string
	Test     string
}

// KataWriter persists katas to storage.
type KataWriter interface {
	// WriteKata validates the kata and writes its files, overwriting
	// any existing ones. Nothing is written if validation fails.
	WriteKata(ctx context.Context, kata *Kata) (*KataFiles, error)
}
