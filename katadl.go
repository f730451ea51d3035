// Package katadl downloads Codewars katas to local folders.
// It renders a kata training page in a headless browser, extracts the
// level, title, description, starter code and test code, and writes them
// into a <language>/<level>/<kata>/ directory.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, fs/).
package katadl
