package syntax

// Builder assembles a syntax tree bottom-up while the parser walks the
// token stream left to right. StartNode/FinishNode must pair
// symmetrically; Checkpoint/StartNodeAt support retroactively wrapping
// children that were appended before the node kind was known.
type Builder struct {
	stack []builderFrame
}

type builderFrame struct {
	kind     SyntaxKind
	children []*SyntaxNode
}

// Checkpoint marks a position between the children of the node under
// construction. It stays valid as long as the node it was taken in is
// still the innermost unfinished node.
type Checkpoint struct {
	depth int
	index int
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{stack: []builderFrame{{}}}
}

func (b *Builder) top() *builderFrame {
	return &b.stack[len(b.stack)-1]
}

// StartNode pushes a new interior node of the given kind. Children
// appended afterwards belong to it until the matching FinishNode.
func (b *Builder) StartNode(kind SyntaxKind) {
	b.stack = append(b.stack, builderFrame{kind: kind})
}

// Token appends a leaf to the node under construction. The text may be
// empty (for Missing placeholders).
func (b *Builder) Token(kind SyntaxKind, text string) {
	top := b.top()
	top.children = append(top.children, Leaf(kind, text))
}

// FinishNode pops the innermost node and attaches it to its parent.
func (b *Builder) FinishNode() {
	last := len(b.stack) - 1
	frame := b.stack[last]
	b.stack = b.stack[:last]
	top := b.top()
	top.children = append(top.children, Inner(frame.kind, frame.children))
}

// Checkpoint records the current position between children of the node
// under construction.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint{
		depth: len(b.stack),
		index: len(b.top().children),
	}
}

// StartNodeAt starts a node of the given kind at an earlier checkpoint:
// all children appended since the checkpoint move into the new node,
// which then becomes the node under construction until FinishNode.
func (b *Builder) StartNodeAt(c Checkpoint, kind SyntaxKind) {
	if c.depth != len(b.stack) {
		panic("syntax: checkpoint used outside the node it was taken in")
	}
	top := b.top()
	moved := append([]*SyntaxNode(nil), top.children[c.index:]...)
	top.children = top.children[:c.index]
	b.stack = append(b.stack, builderFrame{kind: kind, children: moved})
}

// Finish returns the completed tree. Exactly one root node must have
// been built.
func (b *Builder) Finish() *SyntaxNode {
	if len(b.stack) != 1 || len(b.stack[0].children) != 1 {
		panic("syntax: unbalanced builder")
	}
	return b.stack[0].children[0]
}
