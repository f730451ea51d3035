package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/katadl"
)

// CreateKataFolder creates basePath/level/kataName with both components
// sanitized and returns the path. Existing directories are not an error.
func CreateKataFolder(basePath, level, kataName string) (string, error) {
	path := filepath.Join(basePath, MakeValidFilename(level), MakeValidFilename(kataName))
	if err := os.MkdirAll(path, 0755); err != nil {
		return "", err
	}
	return path, nil
}

// SaveFile writes content to path, replacing any existing file.
func SaveFile(content, path string) error {
	return os.WriteFile(path, []byte(content), 0644)
}

// Ensure Writer implements katadl.KataWriter at compile time.
var _ katadl.KataWriter = (*Writer)(nil)

// Writer writes katas below a base directory as
// <language>/<level>/<kata>/ folders.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteKata writes the markdown, starter code and test files for a kata.
func (w *Writer) WriteKata(ctx context.Context, kata *katadl.Kata) (*katadl.KataFiles, error) {
	if err := kata.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir, err := CreateKataFolder(filepath.Join(w.baseDir, kata.Language), kata.Level, kata.Name)
	if err != nil {
		return nil, err
	}

	base := CodeFileBase(kata.Name)
	ext := katadl.Extension(kata.Language)
	files := &katadl.KataFiles{
		Dir:      dir,
		Markdown: filepath.Join(dir, MakeValidFilename(kata.Name+".md")),
		Code:     filepath.Join(dir, base+"."+ext),
		Test:     filepath.Join(dir, base+"Test."+ext),
	}

	if err := SaveFile(kata.Markdown(), files.Markdown); err != nil {
		return nil, err
	}
	if err := SaveFile(katadl.WithHeader(kata.Language, kata.InitialCode), files.Code); err != nil {
		return nil, err
	}
	if err := SaveFile(katadl.WithHeader(kata.Language, kata.TestCode), files.Test); err != nil {
		return nil, err
	}

	return files, nil
}
