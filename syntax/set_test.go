package syntax

import "testing"

func TestSyntaxSet(t *testing.T) {
	s := SyntaxSetOf(Word, Comma, GraphicsPathName)
	for _, k := range []SyntaxKind{Word, Comma, GraphicsPathName} {
		if !s.Contains(k) {
			t.Errorf("set does not contain %v", k)
		}
	}
	for _, k := range []SyntaxKind{Whitespace, Dollar, Root} {
		if s.Contains(k) {
			t.Errorf("set contains %v", k)
		}
	}
}

func TestSyntaxSetRemove(t *testing.T) {
	s := SyntaxSetOf(Word, Comma).Remove(Comma)
	if s.Contains(Comma) {
		t.Error("removed kind still present")
	}
	if !s.Contains(Word) {
		t.Error("remove dropped an unrelated kind")
	}
	if got := s.Remove(Word); !got.IsEmpty() {
		t.Error("set not empty after removing everything")
	}
}

func TestSyntaxSetUnion(t *testing.T) {
	a := SyntaxSetOf(Word)
	b := SyntaxSetOf(GraphicsPath) // high bit, above 64
	u := a.Union(b)
	if !u.Contains(Word) || !u.Contains(GraphicsPath) {
		t.Errorf("union missing members")
	}
}

func TestSectioningStopsNest(t *testing.T) {
	// Each sectioning level must stop at every higher level's name.
	if !subparagraphStop.Contains(PartName) || !subparagraphStop.Contains(ParagraphName) {
		t.Error("subparagraph does not stop at higher levels")
	}
	if partStop.Contains(ChapterName) {
		t.Error("part stops at a lower level")
	}
}
