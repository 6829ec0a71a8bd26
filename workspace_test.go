package golatex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorkspaceCheck(t *testing.T) {
	ws := NewWorkspace().
		AddString("a.tex", `\section{ok}`).
		AddString("b.tex", `\begin{x}unclosed`)

	diags, err := ws.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(diags) == 0 {
		t.Fatal("no diagnostics for broken file")
	}
	for _, d := range diags {
		if d.File != "b.tex" {
			t.Errorf("diagnostic in wrong file: %v", d)
		}
	}
}

func TestWorkspaceParse(t *testing.T) {
	ws := NewWorkspace().AddString("a.tex", "hello")
	sources, err := ws.Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	src, ok := sources["a.tex"]
	if !ok {
		t.Fatal("a.tex not parsed")
	}
	if src.Root().IntoText() != "hello" {
		t.Errorf("parsed text = %q", src.Root().IntoText())
	}
}

func TestWorkspaceAddDir(t *testing.T) {
	dir := t.TempDir()
	writeFile := func(name, content string) {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	writeFile("main.tex", `\documentclass{article}`)
	writeFile("sub/chapter.tex", "text")
	writeFile("notes.md", "ignored")

	sources, err := NewWorkspace().AddDir(dir).Parse()
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(sources) != 2 {
		t.Errorf("parsed %d files, want 2", len(sources))
	}
	for name := range sources {
		if filepath.Ext(name) != ".tex" {
			t.Errorf("non-tex file parsed: %s", name)
		}
	}
}

func TestWorkspaceErrorLatch(t *testing.T) {
	ws := NewWorkspace().AddFile("does-not-exist.tex")
	if _, err := ws.Parse(); err == nil {
		t.Error("Parse did not surface the AddFile error")
	}
	if _, err := ws.Check(); err == nil {
		t.Error("Check did not surface the AddFile error")
	}
}

func TestWorkspaceWatchRequiresWatcher(t *testing.T) {
	ws := NewWorkspace().AddString("a.tex", "x")
	if err := ws.Watch(nil); err == nil {
		t.Error("Watch without WatchFiles(true) did not error")
	}
}
