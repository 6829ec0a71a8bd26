// Package golatex provides fault-tolerant parsing of LaTeX source text
// into lossless concrete syntax trees.
//
// The core lives in the syntax package: syntax.Parse turns any byte
// sequence into an immutable tree whose leaves reproduce the input
// exactly, recovering locally from malformed input instead of failing.
// This package adds the surrounding project surface: documents,
// project manifests, and a workspace that can watch files and
// re-check them on change.
package golatex

import (
	"fmt"
	"os"

	"github.com/boergens/golatex/syntax"
)

// Version is the release version of golatex.
const Version = "0.1.0"

// Document is a single parsed LaTeX file together with the recovery
// diagnostics found in its tree.
type Document struct {
	// Path is the file path the document was read from, or the name it
	// was given when created from a string.
	Path string
	// Source holds the text, the parsed tree, and the line index.
	Source *syntax.Source
	// Diagnostics lists the recoveries the parser performed, ordered
	// by offset. A clean document has none.
	Diagnostics []syntax.Diagnostic
}

// Open reads and parses the file at the given path.
func Open(path string) (*Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("golatex: open %s: %w", path, err)
	}
	return NewDocument(path, string(content)), nil
}

// NewDocument parses the given text as a document with the given name.
func NewDocument(path, text string) *Document {
	src := syntax.NewSource(path, text)
	return &Document{
		Path:        path,
		Source:      src,
		Diagnostics: syntax.Diagnose(src),
	}
}

// Clean returns true if the parser performed no recoveries on this
// document.
func (d *Document) Clean() bool {
	return len(d.Diagnostics) == 0
}
