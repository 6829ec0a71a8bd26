// Group rules: braced, bracketed, and mixed groups, the specialised
// word/command/key-value forms, and the permissive path groups used by
// include arguments.
package syntax

func (p *parser) curlyGroup() {
	p.builder.StartNode(CurlyGroup)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == RightCurly {
			break
		}
		p.content(defaultContext())
	}
	p.expect(RightCurly)
	p.builder.FinishNode()
}

// curlyGroupImpl parses the body of a command definition. Nested \begin
// and \end are recognised explicitly so that definitions containing
// environment framings parse cleanly without pairing them.
func (p *parser) curlyGroupImpl() {
	p.builder.StartNode(CurlyGroup)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == RightCurly {
			break
		}
		switch kind {
		case BeginEnvironmentName:
			p.begin()
		case EndEnvironmentName:
			p.end()
		default:
			p.content(defaultContext())
		}
	}
	p.expect(RightCurly)
	p.builder.FinishNode()
}

func (p *parser) curlyGroupWithoutEnvironments() {
	p.builder.StartNode(CurlyGroup)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || kind == RightCurly {
			break
		}
		p.content(parserContext{allowEnvironment: false, allowComma: true})
	}
	p.expect(RightCurly)
	p.builder.FinishNode()
}

// curlyGroupWord expects a single word argument, with any command name
// tolerated as a fallback.
func (p *parser) curlyGroupWord() {
	p.builder.StartNode(CurlyGroupWord)
	p.eat()
	p.trivia()
	kind, ok := p.peek()
	switch {
	case ok && kind == Word:
		p.key()
	case ok && kind.IsCommandName():
		p.content(defaultContext())
	default:
		p.missing()
	}
	p.expect(RightCurly)
	p.builder.FinishNode()
}

// curlyGroupWordList parses a comma-and-whitespace-separated list of
// words; each word becomes a Key.
func (p *parser) curlyGroupWordList() {
	p.builder.StartNode(CurlyGroupWordList)
	p.eat()
	for p.atSet(textTokenSet) {
		if p.at(Word) {
			p.key()
		} else {
			p.eat()
		}
	}
	p.expect(RightCurly)
	p.builder.FinishNode()
}

// curlyGroupCommand expects a command name as the argument, as in the
// first argument of \newcommand.
func (p *parser) curlyGroupCommand() {
	p.builder.StartNode(CurlyGroupCommand)
	p.eat()
	p.trivia()
	if kind, ok := p.peek(); ok && kind.IsCommandName() {
		p.eat()
		p.trivia()
	} else {
		p.missing()
	}
	p.expect(RightCurly)
	p.builder.FinishNode()
}

// brackGroup parses a bracketed optional argument. It terminates on
// sectioning and environment-end tokens so that an unclosed bracket
// does not consume the rest of the document.
func (p *parser) brackGroup() {
	p.builder.StartNode(BrackGroup)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || brackGroupStop.Contains(kind) {
			break
		}
		p.content(defaultContext())
	}
	p.expect(RightBrack)
	p.builder.FinishNode()
}

func (p *parser) brackGroupWord() {
	p.builder.StartNode(BrackGroupWord)
	p.eat()
	p.trivia()
	if p.at(Word) {
		p.key()
	} else {
		p.missing()
	}
	p.expect(RightBrack)
	p.builder.FinishNode()
}

func (p *parser) mixedGroup() {
	p.builder.StartNode(MixedGroup)
	p.eat()
	p.trivia()
	for {
		kind, ok := p.peek()
		if !ok || mixedGroupStop.Contains(kind) {
			break
		}
		p.content(defaultContext())
	}
	p.expect2(RightBrack, RightParen)
	p.builder.FinishNode()
}

func (p *parser) key() {
	p.builder.StartNode(Key)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok {
			break
		}
		if kind != Whitespace && kind != Comment && kind != Word {
			break
		}
		p.eat()
	}
	p.trivia()
	p.builder.FinishNode()
}

func (p *parser) value() {
	p.builder.StartNode(Value)
	for {
		kind, ok := p.peek()
		if !ok || valueStop.Contains(kind) {
			break
		}
		p.content(parserContext{allowEnvironment: true, allowComma: false})
	}
	p.builder.FinishNode()
}

func (p *parser) keyValuePair() {
	p.builder.StartNode(KeyValuePair)
	p.key()
	if p.at(EqualitySign) {
		p.eat()
		p.trivia()
		if kind, ok := p.peek(); ok && !pairValueStop.Contains(kind) {
			p.value()
		} else {
			p.missing()
		}
	}
	p.builder.FinishNode()
}

func (p *parser) keyValueBody() {
	p.builder.StartNode(KeyValueBody)
loop:
	for {
		kind, ok := p.peek()
		if !ok {
			break
		}
		switch kind {
		case LineBreak, Whitespace, Comment:
			p.eat()
		case Word:
			p.keyValuePair()
			if p.at(Comma) {
				p.eat()
			} else {
				break loop
			}
		default:
			break loop
		}
	}
	p.builder.FinishNode()
}

func (p *parser) groupKeyValue(nodeKind, rightKind SyntaxKind) {
	p.builder.StartNode(nodeKind)
	p.eat()
	p.trivia()
	p.keyValueBody()
	p.expect(rightKind)
	p.builder.FinishNode()
}

func (p *parser) curlyGroupKeyValue() {
	p.groupKeyValue(CurlyGroupKeyValue, RightCurly)
}

func (p *parser) brackGroupKeyValue() {
	p.groupKeyValue(BrackGroupKeyValue, RightBrack)
}

// curlyGroupPath parses a braced path where equals signs, brackets,
// commas, generic commands, and nested brace groups are all absorbed
// into the path.
func (p *parser) curlyGroupPath() {
	p.builder.StartNode(CurlyGroupWord)
	p.eat()
	p.trivia()
loop:
	for {
		kind, ok := p.peek()
		if !ok {
			break
		}
		switch kind {
		case Comment, Word, EqualitySign, Comma, LeftBrack, RightBrack, GenericCommandName:
			p.path()
		case LeftCurly:
			p.curlyGroupPath()
		case Whitespace:
			p.eat()
		default:
			break loop
		}
	}
	p.expect(RightCurly)
	p.builder.FinishNode()
}

// curlyGroupPathList additionally consumes commas, whitespace, and line
// breaks between paths.
func (p *parser) curlyGroupPathList() {
	p.builder.StartNode(CurlyGroupWordList)
	p.eat()
	p.trivia()
loop:
	for {
		kind, ok := p.peek()
		if !ok {
			break
		}
		switch kind {
		case Comment, Word, EqualitySign, LeftBrack, RightBrack, GenericCommandName:
			p.path()
		case Whitespace, LineBreak, Comma:
			p.eat()
		case LeftCurly:
			p.curlyGroupPath()
		default:
			break loop
		}
	}
	p.expect(RightCurly)
	p.builder.FinishNode()
}

func (p *parser) path() {
	p.builder.StartNode(Key)
	p.eat()
loop:
	for {
		kind, ok := p.peek()
		if !ok {
			break
		}
		switch kind {
		case Whitespace, Comment, Word, EqualitySign, LeftBrack, RightBrack, GenericCommandName:
			p.eat()
		case LeftCurly:
			p.curlyGroupPath()
		default:
			break loop
		}
	}
	p.builder.FinishNode()
}
