package syntax

// Source couples a file name with its text, the parsed syntax tree,
// and a line index for position conversions. The tree is built once
// and immutable afterwards; Source is cheap to pass around.
type Source struct {
	name  string
	text  string
	root  *SyntaxNode
	lines *Lines
}

// NewSource parses the given text into a new source file.
func NewSource(name, text string) *Source {
	return &Source{
		name:  name,
		text:  text,
		root:  Parse(text),
		lines: NewLines(text),
	}
}

// Name returns the source file's name.
func (s *Source) Name() string {
	return s.name
}

// Text returns the full source text.
func (s *Source) Text() string {
	return s.text
}

// Root returns the untyped syntax tree root node.
func (s *Source) Root() *SyntaxNode {
	return s.root
}

// Lines returns the line index for position conversions.
func (s *Source) Lines() *Lines {
	return s.lines
}

// Len returns the length of the source text in bytes.
func (s *Source) Len() int {
	return len(s.text)
}
