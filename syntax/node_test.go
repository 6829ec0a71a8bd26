package syntax

import (
	"testing"
)

func TestNodeBasics(t *testing.T) {
	leaf := Leaf(Word, "hello")
	if leaf.Kind() != Word || leaf.Len() != 5 || leaf.Text() != "hello" {
		t.Errorf("leaf = %v", leaf)
	}
	if !leaf.IsLeaf() {
		t.Error("leaf.IsLeaf() = false")
	}

	inner := Inner(Text, []*SyntaxNode{leaf, Leaf(Whitespace, " "), Leaf(Word, "world")})
	if inner.Kind() != Text || inner.Len() != 11 {
		t.Errorf("inner = %v", inner)
	}
	if inner.Text() != "" {
		t.Errorf("inner.Text() = %q", inner.Text())
	}
	if got := inner.IntoText(); got != "hello world" {
		t.Errorf("IntoText() = %q", got)
	}
	if inner.Descendants() != 4 {
		t.Errorf("Descendants() = %d", inner.Descendants())
	}
	if inner.Erroneous() {
		t.Error("Erroneous() = true for clean tree")
	}
}

func TestNodeErroneous(t *testing.T) {
	group := Inner(CurlyGroup, []*SyntaxNode{Leaf(LeftCurly, "{"), MissingLeaf()})
	if !group.Erroneous() {
		t.Error("group with Missing leaf is not erroneous")
	}
	root := Inner(Root, []*SyntaxNode{Inner(Preamble, []*SyntaxNode{group})})
	if !root.Erroneous() {
		t.Error("erroneous flag does not propagate")
	}
}

func TestNodeEq(t *testing.T) {
	a := Parse(`\section{x}`)
	b := Parse(`\section{x}`)
	c := Parse(`\section{y}`)
	if !a.Eq(b) {
		t.Error("equal trees are not Eq")
	}
	if a.Eq(c) {
		t.Error("different trees are Eq")
	}
	if a.Eq(a.Children()[0]) {
		t.Error("tree equals its own child")
	}
}

func TestLinkedNodeOffsets(t *testing.T) {
	// "a {b}" parses to Text("a ") and CurlyGroup("{b}").
	root := NewLinkedNode(Parse("a {b}"))
	preamble := root.Children()[0]

	children := preamble.Children()
	if len(children) != 2 {
		t.Fatalf("preamble children = %d, want 2", len(children))
	}

	text, group := children[0], children[1]
	if text.Kind() != Text || text.Offset() != 0 || text.Len() != 2 {
		t.Errorf("text node = %v at %d..%d", text.Kind(), text.Offset(), text.Offset()+text.Len())
	}
	if group.Kind() != CurlyGroup || group.Offset() != 2 {
		t.Errorf("group node = %v at offset %d", group.Kind(), group.Offset())
	}
	if r := group.Range(); r != [2]int{2, 5} {
		t.Errorf("group range = %v", r)
	}
	if group.Parent() != preamble {
		t.Error("group parent mismatch")
	}
	if group.Index() != 1 {
		t.Errorf("group index = %d", group.Index())
	}
}

func TestLinkedNodeSiblings(t *testing.T) {
	// "} {b}" puts a whitespace leaf between the Error node and the
	// group; the sibling accessors skip it.
	root := NewLinkedNode(Parse("} {b}"))
	preamble := root.Children()[0]
	children := preamble.Children()
	if len(children) != 3 {
		t.Fatalf("preamble children = %d, want 3", len(children))
	}

	first := children[0]
	if first.Kind() != Error {
		t.Fatalf("first child = %v, want Error", first.Kind())
	}
	next := first.NextSibling()
	if next == nil || next.Kind() != CurlyGroup || next.Offset() != 2 {
		t.Fatalf("NextSibling = %v", next)
	}
	prev := next.PrevSibling()
	if prev == nil || prev.Kind() != Error || prev.Offset() != 0 {
		t.Fatalf("PrevSibling = %v", prev)
	}
	if first.PrevSibling() != nil {
		t.Error("first child has a previous sibling")
	}
}

func TestLinkedNodeLeaves(t *testing.T) {
	root := NewLinkedNode(Parse(`\section{abc}`))

	leftmost := root.LeftmostLeaf()
	if leftmost == nil || leftmost.Kind() != SectionName {
		t.Fatalf("LeftmostLeaf = %v", leftmost)
	}
	rightmost := root.RightmostLeaf()
	if rightmost == nil || rightmost.Kind() != RightCurly {
		t.Fatalf("RightmostLeaf = %v", rightmost)
	}

	next := leftmost.NextLeaf()
	if next == nil || next.Kind() != LeftCurly || next.Offset() != 8 {
		t.Fatalf("NextLeaf = %v", next)
	}
	if prev := leftmost.PrevLeaf(); prev != nil {
		t.Errorf("PrevLeaf of first leaf = %v", prev)
	}
}

func TestLinkedNodeLeafAt(t *testing.T) {
	// "ab{cd}" with Word "ab" at 0..2 and Word "cd" at 3..5.
	root := NewLinkedNode(Parse("ab{cd}"))

	leaf := root.LeafAt(1, Before)
	if leaf == nil || leaf.Kind() != Word || leaf.Text() != "ab" {
		t.Fatalf("LeafAt(1, Before) = %v", leaf)
	}
	leaf = root.LeafAt(3, After)
	if leaf == nil || leaf.Kind() != Word || leaf.Text() != "cd" {
		t.Fatalf("LeafAt(3, After) = %v", leaf)
	}
	leaf = root.LeafAt(2, Before)
	if leaf == nil || leaf.Text() != "ab" {
		t.Fatalf("LeafAt(2, Before) = %v", leaf)
	}
}
