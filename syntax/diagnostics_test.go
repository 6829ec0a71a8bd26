package syntax

import (
	"strings"
	"testing"
)

func TestDiagnoseClean(t *testing.T) {
	src := NewSource("main.tex", `\section{Intro}text`)
	if diags := Diagnose(src); len(diags) != 0 {
		t.Errorf("clean source has diagnostics: %v", diags)
	}
}

func TestDiagnoseMissingCloser(t *testing.T) {
	src := NewSource("main.tex", "{")
	diags := Diagnose(src)
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want 1", diags)
	}
	d := diags[0]
	if d.Message != "expected `}`" {
		t.Errorf("message = %q", d.Message)
	}
	if d.Range != [2]int{1, 1} {
		t.Errorf("range = %v", d.Range)
	}
	if d.Position != (Position{0, 1}) {
		t.Errorf("position = %v", d.Position)
	}
}

func TestDiagnoseStrayCloser(t *testing.T) {
	src := NewSource("main.tex", "}")
	diags := Diagnose(src)
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want 1", diags)
	}
	d := diags[0]
	if d.Message != "unexpected `}`" {
		t.Errorf("message = %q", d.Message)
	}
	if d.Range != [2]int{0, 1} {
		t.Errorf("range = %v", d.Range)
	}
}

func TestDiagnoseMessages(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`\begin{a}text`, "expected `\\end`"},
		{"$x", "expected `$`"},
		{`\[x`, "expected `\\]`"},
		{`\iffalse x`, "expected `\\fi`"},
		{`\item[a`, "expected `]`"},
		{`\usepackage[a=`, "expected value"},
	}

	for _, tt := range tests {
		src := NewSource("t.tex", tt.input)
		diags := Diagnose(src)
		found := false
		for _, d := range diags {
			if d.Message == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("Diagnose(%q) = %v, want one %q", tt.input, diags, tt.want)
		}
	}
}

func TestDiagnoseOrdering(t *testing.T) {
	src := NewSource("t.tex", "} text {")
	diags := Diagnose(src)
	if len(diags) != 2 {
		t.Fatalf("diagnostics = %v, want 2", diags)
	}
	if diags[0].Range[0] > diags[1].Range[0] {
		t.Error("diagnostics are not ordered by offset")
	}
	if !strings.HasPrefix(diags[0].Message, "unexpected") {
		t.Errorf("first message = %q", diags[0].Message)
	}
	if !strings.HasPrefix(diags[1].Message, "expected") {
		t.Errorf("second message = %q", diags[1].Message)
	}
}
