package syntax

import (
	"unicode/utf8"
)

// Scanner is a string iterator with peek/eat capabilities.
// It tracks a byte cursor and provides methods for consuming runes.
type Scanner struct {
	text   string
	cursor int
}

// NewScanner creates a new scanner for the given text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Cursor returns the current byte position in the text.
func (s *Scanner) Cursor() int {
	return s.cursor
}

// Done returns true if the scanner has reached the end of the text.
func (s *Scanner) Done() bool {
	return s.cursor >= len(s.text)
}

// Advance moves the cursor forward by the given number of bytes.
func (s *Scanner) Advance(by int) {
	s.cursor += by
	if s.cursor > len(s.text) {
		s.cursor = len(s.text)
	}
}

// Peek returns the next rune without consuming it.
// Returns 0 if at end.
func (s *Scanner) Peek() rune {
	if s.cursor >= len(s.text) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.text[s.cursor:])
	return r
}

// Eat consumes and returns the next rune.
// Returns 0 if at end.
func (s *Scanner) Eat() rune {
	if s.cursor >= len(s.text) {
		return 0
	}
	r, size := utf8.DecodeRuneInString(s.text[s.cursor:])
	s.cursor += size
	return r
}

// EatIf consumes the next rune if it matches the given rune.
// Returns true if consumed.
func (s *Scanner) EatIf(r rune) bool {
	if !s.Done() && s.Peek() == r {
		s.Eat()
		return true
	}
	return false
}

// EatWhile consumes runes while the predicate returns true.
// Returns the consumed string.
func (s *Scanner) EatWhile(pred func(rune) bool) string {
	start := s.cursor
	for !s.Done() && pred(s.Peek()) {
		s.Eat()
	}
	return s.text[start:s.cursor]
}

// EatUntil consumes runes until the predicate returns true.
// Returns the consumed string.
func (s *Scanner) EatUntil(pred func(rune) bool) string {
	start := s.cursor
	for !s.Done() && !pred(s.Peek()) {
		s.Eat()
	}
	return s.text[start:s.cursor]
}

// At checks if the current position starts with the given string.
func (s *Scanner) At(str string) bool {
	if s.cursor+len(str) > len(s.text) {
		return false
	}
	return s.text[s.cursor:s.cursor+len(str)] == str
}

// After returns the text after the cursor.
func (s *Scanner) After() string {
	return s.text[s.cursor:]
}

// From returns the text from the given position to the cursor.
func (s *Scanner) From(start int) string {
	if start < 0 {
		start = 0
	}
	if start > s.cursor {
		return ""
	}
	return s.text[start:s.cursor]
}
