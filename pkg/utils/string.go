// Package utils provides common string helpers.
package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// IsBlank reports whether str is empty or only whitespace.
func IsBlank(str string) bool {
	return strings.TrimSpace(str) == ""
}

// NormalizeWhitespace replaces runs of whitespace, newlines included, with a
// single space.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateString shortens str to at most maxWidth display columns, ending
// with "..." when cut. Wide runes count as two columns.
func TruncateString(str string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(str) <= maxWidth {
		return str
	}

	return runewidth.Truncate(str, maxWidth, "...")
}
