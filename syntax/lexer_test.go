package syntax

import (
	"strings"
	"testing"
)

func lexKinds(input string) []SyntaxKind {
	l := NewLexer(input)
	var kinds []SyntaxKind
	for {
		kind, _, ok := l.Eat()
		if !ok {
			break
		}
		kinds = append(kinds, kind)
	}
	return kinds
}

func lexTexts(input string) []string {
	l := NewLexer(input)
	var texts []string
	for {
		_, text, ok := l.Eat()
		if !ok {
			break
		}
		texts = append(texts, text)
	}
	return texts
}

func TestLexerKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []SyntaxKind
	}{
		{"empty", "", nil},
		{"word", "hello", []SyntaxKind{Word}},
		{"two words", "hello world", []SyntaxKind{Word, Whitespace, Word}},
		{"single newline is whitespace", "a\nb", []SyntaxKind{Word, Whitespace, Word}},
		{"paragraph break", "a\n\nb", []SyntaxKind{Word, LineBreak, Word}},
		{"blank run with spaces", "a \n \n b", []SyntaxKind{Word, LineBreak, Word}},
		{"comment", "% note\nx", []SyntaxKind{Comment, Whitespace, Word}},
		{"comment at eof", "% note", []SyntaxKind{Comment}},
		{"punctuation", "{}[](),=$", []SyntaxKind{
			LeftCurly, RightCurly, LeftBrack, RightBrack,
			LeftParen, RightParen, Comma, EqualitySign, Dollar,
		}},
		{"generic command", `\foo`, []SyntaxKind{GenericCommandName}},
		{"single char escape", `\&`, []SyntaxKind{GenericCommandName}},
		{"lone backslash", `\`, []SyntaxKind{GenericCommandName}},
		{"begin end", `\begin\end`, []SyntaxKind{BeginEnvironmentName, EndEnvironmentName}},
		{"display math", `\[x\]`, []SyntaxKind{BeginEquationName, Word, EndEquationName}},
		{"section", `\section`, []SyntaxKind{SectionName}},
		{"starred section", `\section*`, []SyntaxKind{SectionName}},
		{"citation", `\cite`, []SyntaxKind{CitationName}},
		{"package include", `\usepackage`, []SyntaxKind{PackageIncludeName}},
		{"label", `\label`, []SyntaxKind{LabelDefinitionName}},
		{"newcommand", `\newcommand`, []SyntaxKind{CommandDefinitionName}},
		{"item", `\item`, []SyntaxKind{EnumItemName}},
		{"at letter command", `\@ifnextchar`, []SyntaxKind{GenericCommandName}},
		{"word stops at command", `ab\cite`, []SyntaxKind{Word, CitationName}},
		{"verb span", `\verb|a b|`, []SyntaxKind{Verbatim}},
		{"verb span with tail", `\verb|a b|c`, []SyntaxKind{Verbatim, Word}},
		{"starred verb", `\verb*|x|`, []SyntaxKind{Verbatim}},
		{"block comment", `\iffalse hidden \fi`, []SyntaxKind{
			BeginBlockCommentName, Verbatim, EndBlockCommentName,
		}},
		{"block comment unterminated", `\iffalse hidden`, []SyntaxKind{
			BeginBlockCommentName, Verbatim,
		}},
		{"block comment empty", `\iffalse\fi`, []SyntaxKind{
			BeginBlockCommentName, EndBlockCommentName,
		}},
		{"unicode word", "héllo wörld", []SyntaxKind{Word, Whitespace, Word}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexKinds(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("lex(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lex(%q)[%d] = %v, want %v", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLexerTexts(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"comment excludes newline", "% note\nx", []string{"% note", "\n", "x"}},
		{"starred command keeps star", `\section*{x}`, []string{`\section*`, "{", "x", "}"}},
		{"verb keeps everything", `\verb|a b|c`, []string{`\verb|a b|`, "c"}},
		{"verb stops at newline", "\\verb|a\nb|", []string{"\\verb|a", "\n", "b|"}},
		{"block comment body", `\iffalse a b \fi`, []string{`\iffalse`, ` a b `, `\fi`}},
		{"single char escape", `\%abc`, []string{`\%`, "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lexTexts(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("lex(%q) = %q, want %q", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("lex(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestLexerFidelity checks that every input byte ends up in exactly one
// lexeme, in order.
func TestLexerFidelity(t *testing.T) {
	inputs := []string{
		"",
		"hello world",
		"\\section{Intro}\ntext",
		"\\begin{a}\\end{b}",
		"% only a comment",
		"\\verb|x y| after",
		"\\iffalse secret \\fi visible",
		"a\n\n\nb",
		"{[(,=$)]}",
		"héllo \\emph{wörld}",
		"\\",
		"\\verb",
	}

	for _, input := range inputs {
		if got := strings.Join(lexTexts(input), ""); got != input {
			t.Errorf("lexemes of %q concatenate to %q", input, got)
		}
	}
}
