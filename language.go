package katadl

import (
	"net/url"
	"strings"
)

// LanguagePHP is the language tag that receives a source header.
const LanguagePHP = "php"

// PHPHeader is prepended to PHP starter and test code.
const PHPHeader = "<?php declare(strict_types=1);\n\n"

// ErrNoLanguage is returned when a URL has no /train/<language> suffix.
var ErrNoLanguage = &Error{Code: EINVALID, Message: "could not determine the language from the URL"}

var extensions = map[string]string{
	"php":        "php",
	"python":     "py",
	"javascript": "js",
}

// ParseLanguage extracts the language tag from a kata training URL of the
// form https://www.codewars.com/kata/<id>/train/<language>.
// The segment is returned as written in the URL, without percent-decoding.
// Returns false if the URL does not have that shape.
func ParseLanguage(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	parts := strings.Split(strings.Trim(u.EscapedPath(), "/"), "/")
	if len(parts) < 4 || parts[len(parts)-2] != "train" {
		return "", false
	}

	language := parts[len(parts)-1]
	if language == "" {
		return "", false
	}
	return language, true
}

// Extension returns the source file extension for a language.
// Unlisted languages use the tag itself.
func Extension(language string) string {
	if ext, ok := extensions[language]; ok {
		return ext
	}
	return language
}

// WithHeader returns code prefixed with the language's source header, if any.
func WithHeader(language, code string) string {
	if language == LanguagePHP {
		return PHPHeader + code
	}
	return code
}
