package golatex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument("main.tex", `\section{Intro}text`)
	if !doc.Clean() {
		t.Errorf("clean document has diagnostics: %v", doc.Diagnostics)
	}
	if doc.Source.Root().IntoText() != `\section{Intro}text` {
		t.Error("document does not round-trip its text")
	}

	broken := NewDocument("bad.tex", "{")
	if broken.Clean() {
		t.Error("broken document reports clean")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.tex")
	if err := os.WriteFile(path, []byte(`\section{Hi}`), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if doc.Path != path {
		t.Errorf("path = %q", doc.Path)
	}
	if !doc.Clean() {
		t.Errorf("diagnostics = %v", doc.Diagnostics)
	}

	if _, err := Open(filepath.Join(dir, "missing.tex")); err == nil {
		t.Error("Open of missing file did not error")
	}
}
