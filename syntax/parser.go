// This file implements the parse driver: a single-threaded recursive
// descent parser that consumes the lexer's output left to right and
// builds the tree through a Builder. Parsing is total; recovery is
// local. Missing mandatory tokens become zero-length Missing leaves and
// stray closers become Error nodes, so the tree's byte concatenation
// always equals the input.
package syntax

// parserContext threads the dispatch switches through recursive calls.
//
// allowEnvironment: when false, \begin and \end parse as generic
// commands instead of folding into an Environment node. Used inside
// groups that must not absorb environments.
//
// allowComma: when false, a comma terminates the surrounding textual
// run instead of being appended to it. Used inside the value position
// of key=value bodies.
type parserContext struct {
	allowEnvironment bool
	allowComma       bool
}

func defaultContext() parserContext {
	return parserContext{allowEnvironment: true, allowComma: true}
}

type parser struct {
	lexer   *Lexer
	builder *Builder
}

// Parse parses LaTeX source text into a lossless concrete syntax tree.
//
// It is a total function: any UTF-8 input, including empty and
// malformed, yields a Root-kinded tree whose in-order leaves reproduce
// the input byte-for-byte. Parse never returns an error and never
// panics on malformed input.
func Parse(text string) *SyntaxNode {
	p := &parser{lexer: NewLexer(text), builder: NewBuilder()}
	return p.parse()
}

func (p *parser) peek() (SyntaxKind, bool) {
	return p.lexer.Peek()
}

func (p *parser) at(kind SyntaxKind) bool {
	k, ok := p.peek()
	return ok && k == kind
}

func (p *parser) atSet(set SyntaxSet) bool {
	k, ok := p.peek()
	return ok && set.Contains(k)
}

func (p *parser) eat() {
	kind, text, ok := p.lexer.Eat()
	if !ok {
		return
	}
	p.builder.Token(kind, text)
}

func (p *parser) missing() {
	p.builder.Token(Missing, "")
}

// trivia consumes a maximal run of whitespace, line breaks, and
// comments so they attach to the surrounding node.
func (p *parser) trivia() {
	for p.atSet(TriviaSet) {
		p.eat()
	}
}

// expect consumes the given kind and following trivia, or emits a
// zero-length Missing placeholder.
func (p *parser) expect(kind SyntaxKind) {
	if p.at(kind) {
		p.eat()
		p.trivia()
	} else {
		p.missing()
	}
}

// expect2 accepts either of two kinds.
func (p *parser) expect2(kind1, kind2 SyntaxKind) {
	if p.at(kind1) || p.at(kind2) {
		p.eat()
		p.trivia()
	} else {
		p.missing()
	}
}

func (p *parser) parse() *SyntaxNode {
	p.builder.StartNode(Root)
	p.preamble()
	for {
		if _, ok := p.peek(); !ok {
			break
		}
		p.content(defaultContext())
	}
	p.builder.FinishNode()
	return p.builder.Finish()
}

// preamble captures the prefix region terminated only by end of input
// or the first \end at the current level. The node always exists,
// possibly empty; the distinction is structural, not semantic.
func (p *parser) preamble() {
	p.builder.StartNode(Preamble)
	for {
		kind, ok := p.peek()
		if !ok || kind == EndEnvironmentName {
			break
		}
		p.content(defaultContext())
	}
	p.builder.FinishNode()
}

// content dispatches on one token of lookahead. It is total over any
// peekable kind.
func (p *parser) content(ctx parserContext) {
	kind, ok := p.peek()
	if !ok {
		return
	}
	switch kind {
	case LineBreak, Whitespace, Comment, Verbatim:
		p.eat()
	case LeftCurly:
		if ctx.allowEnvironment {
			p.curlyGroup()
		} else {
			p.curlyGroupWithoutEnvironments()
		}
	case LeftBrack, LeftParen:
		p.mixedGroup()
	case RightCurly, RightBrack, RightParen:
		p.builder.StartNode(Error)
		p.eat()
		p.builder.FinishNode()
	case Word, Comma:
		p.text(ctx)
	case EqualitySign:
		p.eat()
	case Dollar:
		p.formula()
	case GenericCommandName:
		p.genericCommand()
	case BeginEnvironmentName:
		if ctx.allowEnvironment {
			p.environment()
		} else {
			p.genericCommand()
		}
	case EndEnvironmentName:
		p.genericCommand()
	case BeginEquationName:
		p.equation()
	case EndEquationName:
		p.genericCommand()
	case Missing, Error:
		p.eat()
	case PartName:
		p.sectioning(Part, partStop)
	case ChapterName:
		p.sectioning(Chapter, chapterStop)
	case SectionName:
		p.sectioning(Section, sectionStop)
	case SubsectionName:
		p.sectioning(Subsection, subsectionStop)
	case SubsubsectionName:
		p.sectioning(Subsubsection, subsubsectionStop)
	case ParagraphName:
		p.sectioning(Paragraph, paragraphStop)
	case SubparagraphName:
		p.sectioning(Subparagraph, subparagraphStop)
	case EnumItemName:
		p.enumItem()
	case CaptionName:
		p.caption()
	case CitationName:
		p.citation()
	case PackageIncludeName:
		p.genericInclude(PackageInclude, true)
	case ClassIncludeName:
		p.genericInclude(ClassInclude, true)
	case LatexIncludeName:
		p.genericInclude(LatexInclude, false)
	case BiblatexIncludeName:
		p.genericInclude(BiblatexInclude, true)
	case BibtexIncludeName:
		p.genericInclude(BibtexInclude, false)
	case GraphicsIncludeName:
		p.genericInclude(GraphicsInclude, true)
	case SvgIncludeName:
		p.genericInclude(SvgInclude, true)
	case InkscapeIncludeName:
		p.genericInclude(InkscapeInclude, true)
	case VerbatimIncludeName:
		p.genericInclude(VerbatimInclude, false)
	case ImportName:
		p.importCommand()
	case LabelDefinitionName:
		p.labelDefinition()
	case LabelReferenceName:
		p.labelReference()
	case LabelReferenceRangeName:
		p.labelReferenceRange()
	case LabelNumberName:
		p.labelNumber()
	case CommandDefinitionName:
		p.commandDefinition()
	case MathOperatorName:
		p.mathOperator()
	case GlossaryEntryDefinitionName:
		p.glossaryEntryDefinition()
	case GlossaryEntryReferenceName:
		p.glossaryEntryReference()
	case AcronymDefinitionName:
		p.acronymDefinition()
	case AcronymDeclarationName:
		p.acronymDeclaration()
	case AcronymReferenceName:
		p.acronymReference()
	case TheoremDefinitionName:
		p.theoremDefinition()
	case ColorReferenceName:
		p.colorReference()
	case ColorDefinitionName:
		p.colorDefinition()
	case ColorSetDefinitionName:
		p.colorSetDefinition()
	case TikzLibraryImportName:
		p.tikzLibraryImport()
	case EnvironmentDefinitionName:
		p.environmentDefinition()
	case BeginBlockCommentName:
		p.blockComment()
	case EndBlockCommentName:
		p.genericCommand()
	case GraphicsPathName:
		p.graphicsPath()
	default:
		// Every lexeme kind is covered above. Should a token kind be
		// added later, absorb it as text to keep dispatch total.
		p.text(ctx)
	}
}

// text parses a textual run of words, commas, and interleaved trivia.
func (p *parser) text(ctx parserContext) {
	p.builder.StartNode(Text)
	p.eat()
	for {
		kind, ok := p.peek()
		if !ok || !textTokenSet.Contains(kind) {
			break
		}
		if kind == Comma && !ctx.allowComma {
			break
		}
		p.eat()
	}
	p.builder.FinishNode()
}
