package syntax

import (
	"sort"

	"github.com/rivo/uniseg"
)

// Position is a 0-based line/column pair. Columns count grapheme
// clusters, not bytes, so positions agree with what an editor displays.
type Position struct {
	Line   int
	Column int
}

// Lines is an acceleration structure for converting between byte
// offsets and line/column positions in a source text.
type Lines struct {
	text   string
	starts []int
}

// NewLines builds the line index for the given text.
func NewLines(text string) *Lines {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &Lines{text: text, starts: starts}
}

// LineCount returns the number of lines in the text.
func (l *Lines) LineCount() int {
	return len(l.starts)
}

// LineOf returns the 0-based line containing the given byte offset.
// Offsets outside the text are clamped.
func (l *Lines) LineOf(offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(l.text) {
		offset = len(l.text)
	}
	return sort.Search(len(l.starts), func(i int) bool {
		return l.starts[i] > offset
	}) - 1
}

// LineStart returns the byte offset at which the given line begins.
func (l *Lines) LineStart(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(l.starts) {
		return len(l.text)
	}
	return l.starts[line]
}

// ColumnOf returns the 0-based display column of the byte offset,
// counted in grapheme clusters from the start of its line.
func (l *Lines) ColumnOf(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(l.text) {
		offset = len(l.text)
	}
	start := l.LineStart(l.LineOf(offset))
	count := 0
	gr := uniseg.NewGraphemes(l.text[start:offset])
	for gr.Next() {
		count++
	}
	return count
}

// PositionOf converts a byte offset into a line/column position.
func (l *Lines) PositionOf(offset int) Position {
	return Position{Line: l.LineOf(offset), Column: l.ColumnOf(offset)}
}

// OffsetOf converts a line/column position back into a byte offset.
// Columns past the end of the line resolve to the line's end.
func (l *Lines) OffsetOf(pos Position) int {
	start := l.LineStart(pos.Line)
	end := l.LineStart(pos.Line + 1)
	line := l.text[start:end]

	offset := start
	gr := uniseg.NewGraphemes(line)
	for col := 0; col < pos.Column && gr.Next(); col++ {
		if r := gr.Runes(); len(r) == 1 && r[0] == '\n' {
			break
		}
		_, to := gr.Positions()
		offset = start + to
	}
	return offset
}
