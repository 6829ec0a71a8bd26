package syntax

import (
	"unicode/utf8"
)

// Diagnostic describes one recovery the parser performed: a missing
// mandatory token or a stray closing delimiter. The parser itself
// draws no such distinction; scanning the tree afterwards is how
// callers tell clean trees from recovered ones.
type Diagnostic struct {
	// Range is the byte range the diagnostic covers. It is empty for
	// missing tokens.
	Range [2]int
	// Position is the line/column of the range start.
	Position Position
	// Message is a human-readable description.
	Message string
}

// Diagnose scans the source's tree for Missing and Error nodes and
// returns positioned diagnostics ordered by offset.
func Diagnose(src *Source) []Diagnostic {
	var diags []Diagnostic
	collectDiagnostics(NewLinkedNode(src.Root()), src.Lines(), &diags)
	return diags
}

func collectDiagnostics(ln *LinkedNode, lines *Lines, out *[]Diagnostic) {
	if !ln.Get().Erroneous() {
		return
	}

	switch {
	case ln.Kind() == Error && !ln.IsLeaf():
		*out = append(*out, Diagnostic{
			Range:    ln.Range(),
			Position: lines.PositionOf(ln.Offset()),
			Message:  "unexpected " + describeStray(ln.Get()),
		})
		return
	case ln.Kind() == Missing:
		*out = append(*out, Diagnostic{
			Range:    ln.Range(),
			Position: lines.PositionOf(ln.Offset()),
			Message:  "expected " + expectedThing(ln),
		})
		return
	}

	for _, child := range ln.Children() {
		collectDiagnostics(child, lines, out)
	}
}

// describeStray names the token wrapped in an error node.
func describeStray(n *SyntaxNode) string {
	text := n.IntoText()
	if r, size := utf8.DecodeRuneInString(text); size == len(text) && size > 0 {
		return RuneName(r)
	}
	if text == "" {
		return "token"
	}
	return "`" + text + "`"
}

// expectedThing guesses what the parser was looking for when it
// inserted a missing placeholder, from the placeholder's parent.
func expectedThing(ln *LinkedNode) string {
	parent := ln.Parent()
	if parent == nil {
		return "token"
	}
	last := ln.Index() == len(parent.Get().Children())-1

	switch parent.Kind() {
	case CurlyGroup, CurlyGroupWord, CurlyGroupWordList,
		CurlyGroupCommand, CurlyGroupKeyValue:
		if last {
			return "`}`"
		}
	case BrackGroup, BrackGroupWord, BrackGroupKeyValue:
		if last {
			return "`]`"
		}
	case MixedGroup:
		if last {
			return "`]` or `)`"
		}
	case Formula:
		return "`$`"
	case Equation:
		return "`\\]`"
	case BlockComment:
		return "`\\fi`"
	case Environment:
		return "`\\end`"
	case Begin, End:
		return "environment name"
	case KeyValuePair:
		return "value"
	}
	return "argument"
}
