package syntax

import (
	"strings"
)

// lexeme is a single classified slice of the input.
type lexeme struct {
	kind SyntaxKind
	text string
}

// Lexer is an iterator over LaTeX source which returns (kind, text)
// lexemes with one token of lookahead. It is pure: the same input
// always produces the same lexeme sequence, and every input byte ends
// up in exactly one lexeme.
type Lexer struct {
	s      *Scanner
	peeked *lexeme

	// inBlockComment is set after a block-comment begin command so the
	// following run up to the end command is emitted as one Verbatim
	// lexeme.
	inBlockComment bool
}

// NewLexer creates a lexer over the given text.
func NewLexer(text string) *Lexer {
	return &Lexer{s: NewScanner(text)}
}

// Peek returns the kind of the next lexeme without consuming it.
// The second result is false at end of input.
func (l *Lexer) Peek() (SyntaxKind, bool) {
	if l.peeked == nil {
		lx, ok := l.next()
		if !ok {
			return 0, false
		}
		l.peeked = &lx
	}
	return l.peeked.kind, true
}

// Eat consumes and returns the next lexeme.
// The last result is false at end of input.
func (l *Lexer) Eat() (SyntaxKind, string, bool) {
	if l.peeked != nil {
		lx := *l.peeked
		l.peeked = nil
		return lx.kind, lx.text, true
	}
	lx, ok := l.next()
	if !ok {
		return 0, "", false
	}
	return lx.kind, lx.text, true
}

func (l *Lexer) next() (lexeme, bool) {
	if l.s.Done() {
		return lexeme{}, false
	}

	if l.inBlockComment {
		l.inBlockComment = false
		if lx, ok := l.blockCommentBody(); ok {
			return lx, true
		}
		// The end command follows directly; lex it normally.
	}

	start := l.s.Cursor()
	c := l.s.Eat()

	switch {
	case isBlank(c):
		l.s.EatWhile(isBlank)
		text := l.s.From(start)
		if countNewlines(text) >= 2 {
			return lexeme{LineBreak, text}, true
		}
		return lexeme{Whitespace, text}, true
	case c == '%':
		l.s.EatUntil(IsNewline)
		return lexeme{Comment, l.s.From(start)}, true
	case c == '{':
		return lexeme{LeftCurly, "{"}, true
	case c == '}':
		return lexeme{RightCurly, "}"}, true
	case c == '[':
		return lexeme{LeftBrack, "["}, true
	case c == ']':
		return lexeme{RightBrack, "]"}, true
	case c == '(':
		return lexeme{LeftParen, "("}, true
	case c == ')':
		return lexeme{RightParen, ")"}, true
	case c == ',':
		return lexeme{Comma, ","}, true
	case c == '=':
		return lexeme{EqualitySign, "="}, true
	case c == '$':
		return lexeme{Dollar, "$"}, true
	case c == '\\':
		return l.commandName(start), true
	default:
		l.s.EatWhile(isWordChar)
		return lexeme{Word, l.s.From(start)}, true
	}
}

// commandName lexes a control sequence whose backslash has already been
// consumed. Recognised spellings are promoted to their family kind.
func (l *Lexer) commandName(start int) lexeme {
	if l.s.Done() {
		// A lone backslash at end of input.
		return lexeme{GenericCommandName, l.s.From(start)}
	}

	if !isCommandLetter(l.s.Peek()) {
		// A backslash followed by a single non-letter. The display-math
		// framings \[ and \] live in the command table like any other
		// spelling.
		l.s.Eat()
		text := l.s.From(start)
		return lexeme{lookupCommandName(text[1:]), text}
	}

	l.s.EatWhile(isCommandLetter)
	l.s.EatIf('*')
	text := l.s.From(start)
	name := text[1:]

	if name == "verb" || name == "verb*" {
		return l.verbSpan(start)
	}

	kind := lookupCommandName(name)
	if kind == BeginBlockCommentName {
		l.inBlockComment = true
	}
	return lexeme{kind, text}
}

// verbSpan lexes an inline verbatim span: the rune after the command is
// the delimiter and everything up to its next occurrence (or the end of
// the line) belongs to the span. The whole run is one Verbatim lexeme.
func (l *Lexer) verbSpan(start int) lexeme {
	if l.s.Done() {
		return lexeme{Verbatim, l.s.From(start)}
	}
	delim := l.s.Eat()
	l.s.EatUntil(func(r rune) bool { return r == delim || IsNewline(r) })
	l.s.EatIf(delim)
	return lexeme{Verbatim, l.s.From(start)}
}

// blockCommentBody emits the bytes between a block-comment begin and
// its end command as a single Verbatim lexeme. Returns false when the
// end command follows immediately or the input is exhausted.
func (l *Lexer) blockCommentBody() (lexeme, bool) {
	after := l.s.After()
	idx := strings.Index(after, `\fi`)
	if idx == 0 || len(after) == 0 {
		return lexeme{}, false
	}
	start := l.s.Cursor()
	if idx < 0 {
		l.s.Advance(len(after))
	} else {
		l.s.Advance(idx)
	}
	return lexeme{Verbatim, l.s.From(start)}, true
}
