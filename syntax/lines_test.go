package syntax

import "testing"

func TestLinesPositions(t *testing.T) {
	lines := NewLines("ab\ncd\n\nx")

	tests := []struct {
		offset int
		want   Position
	}{
		{0, Position{0, 0}},
		{1, Position{0, 1}},
		{2, Position{0, 2}},
		{3, Position{1, 0}},
		{5, Position{1, 2}},
		{6, Position{2, 0}},
		{7, Position{3, 0}},
		{8, Position{3, 1}},
	}

	for _, tt := range tests {
		if got := lines.PositionOf(tt.offset); got != tt.want {
			t.Errorf("PositionOf(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}
	if got := lines.LineCount(); got != 4 {
		t.Errorf("LineCount() = %d", got)
	}
}

func TestLinesGraphemeColumns(t *testing.T) {
	// é is two bytes but one column; the emoji with a skin-tone
	// modifier is eight bytes but a single grapheme cluster.
	text := "héllo\n\U0001F44D\U0001F3FDx"
	lines := NewLines(text)

	eol := 6 // after "héllo"
	if got := lines.ColumnOf(eol); got != 5 {
		t.Errorf("ColumnOf(end of héllo) = %d, want 5", got)
	}

	xOffset := 7 + 8 // newline, then the 8-byte emoji
	if got := lines.PositionOf(xOffset); got != (Position{1, 1}) {
		t.Errorf("PositionOf(x) = %v, want {1 1}", got)
	}
}

func TestLinesRoundTrip(t *testing.T) {
	text := "one\ntwo three\nfour"
	lines := NewLines(text)

	for _, offset := range []int{0, 3, 4, 8, 13, 14, 18} {
		pos := lines.PositionOf(offset)
		if got := lines.OffsetOf(pos); got != offset {
			t.Errorf("OffsetOf(PositionOf(%d)) = %d", offset, got)
		}
	}
}

func TestLinesClamping(t *testing.T) {
	lines := NewLines("ab")
	if got := lines.PositionOf(-1); got != (Position{0, 0}) {
		t.Errorf("PositionOf(-1) = %v", got)
	}
	if got := lines.PositionOf(99); got != (Position{0, 2}) {
		t.Errorf("PositionOf(99) = %v", got)
	}
	if got := lines.OffsetOf(Position{0, 99}); got != 2 {
		t.Errorf("OffsetOf(col 99) = %d", got)
	}
}
