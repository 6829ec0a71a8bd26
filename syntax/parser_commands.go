// Command-family rules. Each rule consumes the command-name token, then
// fills the command's argument slots: a mandatory slot inserts a
// zero-length Missing placeholder when absent, an optional slot is
// simply skipped.
package syntax

// formula parses inline math framed by dollar signs.
func (p *parser) formula() {
	p.builder.StartNode(Formula)
	p.eat()
	p.trivia()
	for {
		kind, ok := p.peek()
		if !ok || kind == RightCurly || kind == EndEnvironmentName || kind == Dollar {
			break
		}
		p.content(defaultContext())
	}
	p.expect(Dollar)
	p.builder.FinishNode()
}

// genericCommand parses an unrecognised command with any number of
// braced, bracketed, or parenthesised argument groups.
func (p *parser) genericCommand() {
	p.builder.StartNode(GenericCommand)
	p.eat()
loop:
	for {
		kind, ok := p.peek()
		if !ok {
			break
		}
		switch kind {
		case LineBreak, Whitespace, Comment:
			p.eat()
		case LeftCurly:
			p.curlyGroup()
		case LeftBrack, LeftParen:
			p.mixedGroup()
		default:
			break loop
		}
	}
	p.builder.FinishNode()
}

// equation parses display math framed by \[ and \].
func (p *parser) equation() {
	p.builder.StartNode(Equation)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == EndEnvironmentName || kind == RightCurly || kind == EndEquationName {
			break
		}
		p.content(defaultContext())
	}
	p.expect(EndEquationName)
	p.builder.FinishNode()
}

func (p *parser) begin() {
	p.builder.StartNode(Begin)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}

	if p.at(LeftBrack) {
		p.brackGroup()
	}
	p.builder.FinishNode()
}

func (p *parser) end() {
	p.builder.StartNode(End)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

// environment pairs \begin and \end structurally. Names in begin and
// end need not match; a mismatch is tolerated silently.
func (p *parser) environment() {
	p.builder.StartNode(Environment)
	p.begin()

	for {
		kind, ok := p.peek()
		if !ok || kind == RightCurly || kind == EndEnvironmentName {
			break
		}
		p.content(defaultContext())
	}

	if p.at(EndEnvironmentName) {
		p.end()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

// sectioning parses a sectioning command: mandatory braced title, then
// sibling content that stops at any equal-or-higher sectioning token.
func (p *parser) sectioning(nodeKind SyntaxKind, stop SyntaxSet) {
	p.builder.StartNode(nodeKind)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroup()
	} else {
		p.missing()
	}

	for {
		kind, ok := p.peek()
		if !ok || stop.Contains(kind) {
			break
		}
		p.content(defaultContext())
	}
	p.builder.FinishNode()
}

// enumItem parses \item with optional bracketed label and the sibling
// content up to the next item, sectioning token, or closer.
func (p *parser) enumItem() {
	p.builder.StartNode(EnumItem)
	p.eat()
	p.trivia()

	if p.at(LeftBrack) {
		p.brackGroup()
	}

	for {
		kind, ok := p.peek()
		if !ok || enumItemStop.Contains(kind) {
			break
		}
		p.content(defaultContext())
	}
	p.builder.FinishNode()
}

// blockComment parses the block-comment begin command, the verbatim
// body, and the end command.
func (p *parser) blockComment() {
	p.builder.StartNode(BlockComment)
	p.eat()

	if p.at(Verbatim) {
		p.eat()
	}

	if p.at(EndBlockCommentName) {
		p.eat()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) caption() {
	p.builder.StartNode(Caption)
	p.eat()
	p.trivia()

	if p.at(LeftBrack) {
		p.brackGroup()
	}

	if p.at(LeftCurly) {
		p.curlyGroup()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

// citation parses up to two optional bracketed arguments and the
// mandatory key list.
func (p *parser) citation() {
	p.builder.StartNode(Citation)
	p.eat()
	p.trivia()
	for i := 0; i < 2; i++ {
		if p.at(LeftBrack) {
			p.brackGroup()
		}
	}

	if p.at(LeftCurly) {
		p.curlyGroupWordList()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

// genericInclude parses an include command: optional key=value options
// where the family allows them, then a mandatory path list.
func (p *parser) genericInclude(nodeKind SyntaxKind, options bool) {
	p.builder.StartNode(nodeKind)
	p.eat()
	p.trivia()
	if options && p.at(LeftBrack) {
		p.brackGroupKeyValue()
	}

	if p.at(LeftCurly) {
		p.curlyGroupPathList()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

// importCommand parses \import and friends: two mandatory word groups
// naming the directory and the file.
func (p *parser) importCommand() {
	p.builder.StartNode(Import)
	p.eat()
	p.trivia()

	for i := 0; i < 2; i++ {
		if p.at(LeftCurly) {
			p.curlyGroupWord()
		} else {
			p.missing()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) labelDefinition() {
	p.builder.StartNode(LabelDefinition)
	p.eat()
	p.trivia()
	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) labelReference() {
	p.builder.StartNode(LabelReference)
	p.eat()
	p.trivia()
	if p.at(LeftCurly) {
		p.curlyGroupWordList()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) labelReferenceRange() {
	p.builder.StartNode(LabelReferenceRange)
	p.eat()
	p.trivia()

	for i := 0; i < 2; i++ {
		if p.at(LeftCurly) {
			p.curlyGroupWord()
		} else {
			p.missing()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) labelNumber() {
	p.builder.StartNode(LabelNumber)
	p.eat()
	p.trivia()
	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}

	if p.at(LeftCurly) {
		p.curlyGroup()
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) commandDefinition() {
	p.builder.StartNode(CommandDefinition)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupCommand()
	} else {
		p.missing()
	}

	if p.at(LeftBrack) {
		p.brackGroupWord()

		if p.at(LeftBrack) {
			p.brackGroup()
		}
	}

	if p.at(LeftCurly) {
		p.curlyGroupImpl()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) mathOperator() {
	p.builder.StartNode(MathOperator)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupCommand()
	} else {
		p.missing()
	}

	if p.at(LeftCurly) {
		p.curlyGroupImpl()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) glossaryEntryDefinition() {
	p.builder.StartNode(GlossaryEntryDefinition)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}

	if p.at(LeftCurly) {
		p.curlyGroupKeyValue()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) glossaryEntryReference() {
	p.builder.StartNode(GlossaryEntryReference)
	p.eat()
	p.trivia()

	if p.at(LeftBrack) {
		p.brackGroupKeyValue()
	}

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) acronymDefinition() {
	p.builder.StartNode(AcronymDefinition)
	p.eat()
	p.trivia()

	if p.at(LeftBrack) {
		p.brackGroupKeyValue()
	}

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	}

	if p.at(LeftBrack) {
		p.brackGroup()
	}

	for i := 0; i < 2; i++ {
		if p.at(LeftCurly) {
			p.curlyGroup()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) acronymDeclaration() {
	p.builder.StartNode(AcronymDeclaration)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}

	if p.at(LeftCurly) {
		p.curlyGroupKeyValue()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) acronymReference() {
	p.builder.StartNode(AcronymReference)
	p.eat()
	p.trivia()

	if p.at(LeftBrack) {
		p.brackGroupKeyValue()
	}

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) theoremDefinition() {
	p.builder.StartNode(TheoremDefinition)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}

	if p.at(LeftBrack) {
		p.brackGroupWord()
	}

	if p.at(LeftCurly) {
		p.curlyGroup()
	} else {
		p.missing()
	}

	if p.at(LeftBrack) {
		p.brackGroupWord()
	}
	p.builder.FinishNode()
}

func (p *parser) colorReference() {
	p.builder.StartNode(ColorReference)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) colorDefinition() {
	p.builder.StartNode(ColorDefinition)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}

	if p.at(LeftCurly) {
		p.curlyGroup()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) colorSetDefinition() {
	p.builder.StartNode(ColorSetDefinition)
	p.eat()
	p.trivia()

	if p.at(LeftBrack) {
		p.brackGroupWord()
	}

	if p.at(LeftCurly) {
		p.curlyGroupWordList()
	} else {
		p.missing()
	}

	for i := 0; i < 3; i++ {
		if p.at(LeftCurly) {
			p.curlyGroupWord()
		} else {
			p.missing()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) tikzLibraryImport() {
	p.builder.StartNode(TikzLibraryImport)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWordList()
	} else {
		p.missing()
	}
	p.builder.FinishNode()
}

func (p *parser) environmentDefinition() {
	p.builder.StartNode(EnvironmentDefinition)
	p.eat()
	p.trivia()

	if p.at(LeftCurly) {
		p.curlyGroupWord()
	} else {
		p.missing()
	}

	if p.at(LeftBrack) {
		p.brackGroupWord()
		if p.at(LeftBrack) {
			p.brackGroup()
		}
	}

	for i := 0; i < 2; i++ {
		if p.at(LeftCurly) {
			p.curlyGroupWithoutEnvironments()
		} else {
			p.missing()
		}
	}
	p.builder.FinishNode()
}

// graphicsPath decides only after one token of lookahead past the
// opening brace whether the argument is a single path or a list of
// braced paths, then commits the node kind at a checkpoint.
func (p *parser) graphicsPath() {
	p.builder.StartNode(GraphicsPath)
	p.eat()
	p.trivia()

	checkpoint := p.builder.Checkpoint()
	if p.at(LeftCurly) {
		p.eat()
		p.trivia()

		if p.atPathBody() {
			p.builder.StartNodeAt(checkpoint, CurlyGroupWord)
			p.path()
		} else {
			p.builder.StartNodeAt(checkpoint, CurlyGroup)
			for p.at(LeftCurly) {
				p.curlyGroupPath()
			}
		}

		p.expect(RightCurly)
		p.builder.FinishNode()
	}

	p.builder.FinishNode()
}

func (p *parser) atPathBody() bool {
	kind, ok := p.peek()
	if !ok {
		return false
	}
	switch kind {
	case Word, EqualitySign, LeftBrack, RightBrack, GenericCommandName:
		return true
	}
	return false
}
