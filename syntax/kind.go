// Package syntax provides the foundational types for the LaTeX syntax tree.
// It defines SyntaxKind (token and node types) and SyntaxSet (bitset for kinds).
package syntax

// SyntaxKind represents the type of a syntax node or token.
// This is the foundation type for the LaTeX concrete syntax tree.
type SyntaxKind uint8

// All syntax kinds.
//
// The enumeration has three bands: plain token kinds, command-name token
// kinds (every spelling the lexer promotes from a generic command), and
// node kinds produced by the parser. The command-name band is contiguous
// so that IsCommandName is a range check.
const (
	// Synthetic kinds. Missing is a zero-length placeholder for an
	// expected-but-absent token; Error wraps a stray closing delimiter.
	Missing SyntaxKind = iota
	Error

	// Trivia and plain tokens.
	Whitespace
	LineBreak
	Comment
	Verbatim
	Word
	Comma
	EqualitySign
	LeftCurly
	RightCurly
	LeftBrack
	RightBrack
	LeftParen
	RightParen
	Dollar

	// Command names. GenericCommandName must stay the first and
	// GraphicsPathName the last kind of this band.
	GenericCommandName
	BeginEnvironmentName
	EndEnvironmentName
	BeginEquationName
	EndEquationName
	PartName
	ChapterName
	SectionName
	SubsectionName
	SubsubsectionName
	ParagraphName
	SubparagraphName
	EnumItemName
	CaptionName
	CitationName
	PackageIncludeName
	ClassIncludeName
	LatexIncludeName
	BiblatexIncludeName
	BibtexIncludeName
	GraphicsIncludeName
	SvgIncludeName
	InkscapeIncludeName
	VerbatimIncludeName
	ImportName
	LabelDefinitionName
	LabelReferenceName
	LabelReferenceRangeName
	LabelNumberName
	CommandDefinitionName
	MathOperatorName
	GlossaryEntryDefinitionName
	GlossaryEntryReferenceName
	AcronymDefinitionName
	AcronymDeclarationName
	AcronymReferenceName
	TheoremDefinitionName
	ColorReferenceName
	ColorDefinitionName
	ColorSetDefinitionName
	TikzLibraryImportName
	EnvironmentDefinitionName
	BeginBlockCommentName
	EndBlockCommentName
	GraphicsPathName

	// Node kinds.
	Root
	Preamble
	Text
	CurlyGroup
	CurlyGroupWord
	CurlyGroupWordList
	CurlyGroupCommand
	CurlyGroupKeyValue
	BrackGroup
	BrackGroupWord
	BrackGroupKeyValue
	MixedGroup
	Key
	Value
	KeyValuePair
	KeyValueBody
	Formula
	Equation
	GenericCommand
	Begin
	End
	Environment
	Part
	Chapter
	Section
	Subsection
	Subsubsection
	Paragraph
	Subparagraph
	EnumItem
	BlockComment
	Caption
	Citation
	PackageInclude
	ClassInclude
	LatexInclude
	BiblatexInclude
	BibtexInclude
	GraphicsInclude
	SvgInclude
	InkscapeInclude
	VerbatimInclude
	Import
	LabelDefinition
	LabelReference
	LabelReferenceRange
	LabelNumber
	CommandDefinition
	MathOperator
	GlossaryEntryDefinition
	GlossaryEntryReference
	AcronymDefinition
	AcronymDeclaration
	AcronymReference
	TheoremDefinition
	ColorReference
	ColorDefinition
	ColorSetDefinition
	TikzLibraryImport
	EnvironmentDefinition
	GraphicsPath

	numKinds
)

// IsTrivia returns true if this kind is whitespace, a line break, or a
// comment. Trivia is preserved in the tree but carries no structure.
func (k SyntaxKind) IsTrivia() bool {
	switch k {
	case Whitespace, LineBreak, Comment:
		return true
	}
	return false
}

// IsCommandName returns true for GenericCommandName and every
// command-family token kind, i.e. every kind a backslash-headed
// command can lex into.
func (k SyntaxKind) IsCommandName() bool {
	return k >= GenericCommandName && k <= GraphicsPathName
}

// IsSectioning returns true if this kind is a sectioning command name,
// from \part down to \subparagraph.
func (k SyntaxKind) IsSectioning() bool {
	return k >= PartName && k <= SubparagraphName
}

// IsMissing returns true if this kind is the synthetic missing-token kind.
func (k SyntaxKind) IsMissing() bool {
	return k == Missing
}

// IsError returns true if this kind is the error kind.
func (k SyntaxKind) IsError() bool {
	return k == Error
}

var kindNames = [...]string{
	Missing:      "Missing",
	Error:        "Error",
	Whitespace:   "Whitespace",
	LineBreak:    "LineBreak",
	Comment:      "Comment",
	Verbatim:     "Verbatim",
	Word:         "Word",
	Comma:        "Comma",
	EqualitySign: "EqualitySign",
	LeftCurly:    "LeftCurly",
	RightCurly:   "RightCurly",
	LeftBrack:    "LeftBrack",
	RightBrack:   "RightBrack",
	LeftParen:    "LeftParen",
	RightParen:   "RightParen",
	Dollar:       "Dollar",

	GenericCommandName:          "GenericCommandName",
	BeginEnvironmentName:        "BeginEnvironmentName",
	EndEnvironmentName:          "EndEnvironmentName",
	BeginEquationName:           "BeginEquationName",
	EndEquationName:             "EndEquationName",
	PartName:                    "PartName",
	ChapterName:                 "ChapterName",
	SectionName:                 "SectionName",
	SubsectionName:              "SubsectionName",
	SubsubsectionName:           "SubsubsectionName",
	ParagraphName:               "ParagraphName",
	SubparagraphName:            "SubparagraphName",
	EnumItemName:                "EnumItemName",
	CaptionName:                 "CaptionName",
	CitationName:                "CitationName",
	PackageIncludeName:          "PackageIncludeName",
	ClassIncludeName:            "ClassIncludeName",
	LatexIncludeName:            "LatexIncludeName",
	BiblatexIncludeName:         "BiblatexIncludeName",
	BibtexIncludeName:           "BibtexIncludeName",
	GraphicsIncludeName:         "GraphicsIncludeName",
	SvgIncludeName:              "SvgIncludeName",
	InkscapeIncludeName:         "InkscapeIncludeName",
	VerbatimIncludeName:         "VerbatimIncludeName",
	ImportName:                  "ImportName",
	LabelDefinitionName:         "LabelDefinitionName",
	LabelReferenceName:          "LabelReferenceName",
	LabelReferenceRangeName:     "LabelReferenceRangeName",
	LabelNumberName:             "LabelNumberName",
	CommandDefinitionName:       "CommandDefinitionName",
	MathOperatorName:            "MathOperatorName",
	GlossaryEntryDefinitionName: "GlossaryEntryDefinitionName",
	GlossaryEntryReferenceName:  "GlossaryEntryReferenceName",
	AcronymDefinitionName:       "AcronymDefinitionName",
	AcronymDeclarationName:      "AcronymDeclarationName",
	AcronymReferenceName:        "AcronymReferenceName",
	TheoremDefinitionName:       "TheoremDefinitionName",
	ColorReferenceName:          "ColorReferenceName",
	ColorDefinitionName:         "ColorDefinitionName",
	ColorSetDefinitionName:      "ColorSetDefinitionName",
	TikzLibraryImportName:       "TikzLibraryImportName",
	EnvironmentDefinitionName:   "EnvironmentDefinitionName",
	BeginBlockCommentName:       "BeginBlockCommentName",
	EndBlockCommentName:         "EndBlockCommentName",
	GraphicsPathName:            "GraphicsPathName",

	Root:                    "Root",
	Preamble:                "Preamble",
	Text:                    "Text",
	CurlyGroup:              "CurlyGroup",
	CurlyGroupWord:          "CurlyGroupWord",
	CurlyGroupWordList:      "CurlyGroupWordList",
	CurlyGroupCommand:       "CurlyGroupCommand",
	CurlyGroupKeyValue:      "CurlyGroupKeyValue",
	BrackGroup:              "BrackGroup",
	BrackGroupWord:          "BrackGroupWord",
	BrackGroupKeyValue:      "BrackGroupKeyValue",
	MixedGroup:              "MixedGroup",
	Key:                     "Key",
	Value:                   "Value",
	KeyValuePair:            "KeyValuePair",
	KeyValueBody:            "KeyValueBody",
	Formula:                 "Formula",
	Equation:                "Equation",
	GenericCommand:          "GenericCommand",
	Begin:                   "Begin",
	End:                     "End",
	Environment:             "Environment",
	Part:                    "Part",
	Chapter:                 "Chapter",
	Section:                 "Section",
	Subsection:              "Subsection",
	Subsubsection:           "Subsubsection",
	Paragraph:               "Paragraph",
	Subparagraph:            "Subparagraph",
	EnumItem:                "EnumItem",
	BlockComment:            "BlockComment",
	Caption:                 "Caption",
	Citation:                "Citation",
	PackageInclude:          "PackageInclude",
	ClassInclude:            "ClassInclude",
	LatexInclude:            "LatexInclude",
	BiblatexInclude:         "BiblatexInclude",
	BibtexInclude:           "BibtexInclude",
	GraphicsInclude:         "GraphicsInclude",
	SvgInclude:              "SvgInclude",
	InkscapeInclude:         "InkscapeInclude",
	VerbatimInclude:         "VerbatimInclude",
	Import:                  "Import",
	LabelDefinition:         "LabelDefinition",
	LabelReference:          "LabelReference",
	LabelReferenceRange:     "LabelReferenceRange",
	LabelNumber:             "LabelNumber",
	CommandDefinition:       "CommandDefinition",
	MathOperator:            "MathOperator",
	GlossaryEntryDefinition: "GlossaryEntryDefinition",
	GlossaryEntryReference:  "GlossaryEntryReference",
	AcronymDefinition:       "AcronymDefinition",
	AcronymDeclaration:      "AcronymDeclaration",
	AcronymReference:        "AcronymReference",
	TheoremDefinition:       "TheoremDefinition",
	ColorReference:          "ColorReference",
	ColorDefinition:         "ColorDefinition",
	ColorSetDefinition:      "ColorSetDefinition",
	TikzLibraryImport:       "TikzLibraryImport",
	EnvironmentDefinition:   "EnvironmentDefinition",
	GraphicsPath:            "GraphicsPath",
}

// Name returns the name of the syntax kind.
func (k SyntaxKind) Name() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Unknown"
}

// String returns the name of the syntax kind (same as Name).
func (k SyntaxKind) String() string {
	return k.Name()
}
