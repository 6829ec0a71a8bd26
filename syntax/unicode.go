package syntax

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/runenames"
)

// IsNewline returns true if the character is a newline character.
func IsNewline(c rune) bool {
	return c == '\n' || c == '\r'
}

// isBlank returns true for the characters that form whitespace runs
// together with newlines.
func isBlank(c rune) bool {
	return c == ' ' || c == '\t' || IsNewline(c)
}

// isCommandLetter returns true if the character may appear in the name
// part of a control sequence.
func isCommandLetter(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '@'
}

// isWordChar returns true if the character may appear in a Word lexeme.
// Word boundaries are at whitespace, command starts, comments, and the
// structural punctuation tokens.
func isWordChar(c rune) bool {
	switch c {
	case '\\', '%', '{', '}', '[', ']', '(', ')', ',', '=', '$':
		return false
	}
	return !isBlank(c)
}

// countNewlines returns the number of line feeds in the text.
func countNewlines(text string) int {
	return strings.Count(text, "\n")
}

// RuneName describes a rune for diagnostics. Printable ASCII other than
// the space is quoted; any other rune is described by its lower-cased
// Unicode name, or as "control character" for control characters and
// runes without a name.
func RuneName(c rune) string {
	if c > ' ' && c < 0x7f {
		return "`" + string(c) + "`"
	}
	name := runenames.Name(c)
	if name == "" || unicode.IsControl(c) {
		return "control character"
	}
	return strings.ToLower(name)
}
