// Package fs writes katas as files on local storage.
package fs

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// invalidChars are removed from path components.
const invalidChars = `<>:"/\|?*`

// MakeValidFilename returns s as a best-effort portable path component.
// Unicode is decomposed and reduced to ASCII, characters invalid on common
// filesystems are removed, and surrounding whitespace is trimmed.
// Reserved device names, length limits and collisions are not handled.
func MakeValidFilename(s string) string {
	s = norm.NFKD.String(s)
	s = strings.Map(func(r rune) rune {
		if r > unicode.MaxASCII || strings.ContainsRune(invalidChars, r) {
			return -1
		}
		return r
	}, s)
	return strings.TrimSpace(s)
}

// CodeFileBase returns the base name of a kata's code files:
// the kata name lower-cased with spaces removed.
func CodeFileBase(kataName string) string {
	return MakeValidFilename(strings.ToLower(strings.ReplaceAll(kataName, " ", "")))
}
