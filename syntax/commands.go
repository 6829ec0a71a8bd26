package syntax

// commandNames maps the spelling of a control sequence (without the
// leading backslash, with the trailing star where the starred variant is
// recognised) to its dedicated token kind. Every other spelling lexes as
// GenericCommandName. Adding a recognised command is one entry here plus
// one parse rule.
var commandNames = map[string]SyntaxKind{
	// Environment framing.
	"begin": BeginEnvironmentName,
	"end":   EndEnvironmentName,

	// Display math framing.
	"[": BeginEquationName,
	"]": EndEquationName,

	// Block comments.
	"iffalse": BeginBlockCommentName,
	"fi":      EndBlockCommentName,

	// Sectioning.
	"part":            PartName,
	"part*":           PartName,
	"chapter":         ChapterName,
	"chapter*":        ChapterName,
	"section":         SectionName,
	"section*":        SectionName,
	"subsection":      SubsectionName,
	"subsection*":     SubsectionName,
	"subsubsection":   SubsubsectionName,
	"subsubsection*":  SubsubsectionName,
	"paragraph":       ParagraphName,
	"paragraph*":      ParagraphName,
	"subparagraph":    SubparagraphName,
	"subparagraph*":   SubparagraphName,

	"item":    EnumItemName,
	"caption": CaptionName,

	// Citations.
	"cite":         CitationName,
	"cite*":        CitationName,
	"Cite":         CitationName,
	"nocite":       CitationName,
	"citet":        CitationName,
	"citet*":       CitationName,
	"citep":        CitationName,
	"citep*":       CitationName,
	"citeauthor":   CitationName,
	"citeauthor*":  CitationName,
	"Citeauthor":   CitationName,
	"Citeauthor*":  CitationName,
	"citetitle":    CitationName,
	"citetitle*":   CitationName,
	"citeyear":     CitationName,
	"citeyear*":    CitationName,
	"citedate":     CitationName,
	"citedate*":    CitationName,
	"citeurl":      CitationName,
	"fullcite":     CitationName,
	"citeyearpar":  CitationName,
	"citealt":      CitationName,
	"citealp":      CitationName,
	"citetext":     CitationName,
	"parencite":    CitationName,
	"parencite*":   CitationName,
	"Parencite":    CitationName,
	"footcite":     CitationName,
	"footfullcite": CitationName,
	"footcitetext": CitationName,
	"textcite":     CitationName,
	"Textcite":     CitationName,
	"smartcite":    CitationName,
	"Smartcite":    CitationName,
	"supercite":    CitationName,
	"autocite":     CitationName,
	"autocite*":    CitationName,
	"Autocite":     CitationName,
	"Autocite*":    CitationName,
	"volcite":      CitationName,
	"Volcite":      CitationName,
	"pvolcite":     CitationName,
	"Pvolcite":     CitationName,
	"fvolcite":     CitationName,
	"ftvolcite":    CitationName,
	"svolcite":     CitationName,
	"Svolcite":     CitationName,
	"tvolcite":     CitationName,
	"Tvolcite":     CitationName,
	"avolcite":     CitationName,
	"Avolcite":     CitationName,
	"notecite":     CitationName,
	"Notecite":     CitationName,
	"pnotecite":    CitationName,
	"Pnotecite":    CitationName,
	"fnotecite":    CitationName,

	// Includes.
	"usepackage":      PackageIncludeName,
	"RequirePackage":  PackageIncludeName,
	"documentclass":   ClassIncludeName,
	"LoadClass":       ClassIncludeName,
	"input":           LatexIncludeName,
	"include":         LatexIncludeName,
	"subfile":         LatexIncludeName,
	"subfileinclude":  LatexIncludeName,
	"addbibresource":  BiblatexIncludeName,
	"bibliography":    BibtexIncludeName,
	"includegraphics": GraphicsIncludeName,
	"includesvg":      SvgIncludeName,
	"includeinkscape": InkscapeIncludeName,
	"verbatiminput":   VerbatimIncludeName,
	"VerbatimInput":   VerbatimIncludeName,
	"lstinputlisting": VerbatimIncludeName,

	// Imports.
	"import":         ImportName,
	"subimport":      ImportName,
	"inputfrom":      ImportName,
	"subinputfrom":   ImportName,
	"includefrom":    ImportName,
	"subincludefrom": ImportName,

	// Labels.
	"label":          LabelDefinitionName,
	"refstepcounter": LabelDefinitionName,
	"ref":            LabelReferenceName,
	"vref":           LabelReferenceName,
	"Vref":           LabelReferenceName,
	"autoref":        LabelReferenceName,
	"pageref":        LabelReferenceName,
	"cref":           LabelReferenceName,
	"cref*":          LabelReferenceName,
	"Cref":           LabelReferenceName,
	"Cref*":          LabelReferenceName,
	"namecref":       LabelReferenceName,
	"nameCref":       LabelReferenceName,
	"lcnamecref":     LabelReferenceName,
	"namecrefs":      LabelReferenceName,
	"nameCrefs":      LabelReferenceName,
	"lcnamecrefs":    LabelReferenceName,
	"labelcref":      LabelReferenceName,
	"labelcpageref":  LabelReferenceName,
	"eqref":          LabelReferenceName,
	"crefrange":      LabelReferenceRangeName,
	"crefrange*":     LabelReferenceRangeName,
	"Crefrange":      LabelReferenceRangeName,
	"Crefrange*":     LabelReferenceRangeName,
	"newlabel":       LabelNumberName,

	// Definitions.
	"newcommand":            CommandDefinitionName,
	"newcommand*":           CommandDefinitionName,
	"renewcommand":          CommandDefinitionName,
	"renewcommand*":         CommandDefinitionName,
	"providecommand":        CommandDefinitionName,
	"providecommand*":       CommandDefinitionName,
	"DeclareRobustCommand":  CommandDefinitionName,
	"DeclareRobustCommand*": CommandDefinitionName,
	"DeclareMathOperator":   MathOperatorName,
	"DeclareMathOperator*":  MathOperatorName,

	// Glossaries.
	"newglossaryentry": GlossaryEntryDefinitionName,
	"gls":              GlossaryEntryReferenceName,
	"Gls":              GlossaryEntryReferenceName,
	"GLS":              GlossaryEntryReferenceName,
	"glspl":            GlossaryEntryReferenceName,
	"Glspl":            GlossaryEntryReferenceName,
	"GLSpl":            GlossaryEntryReferenceName,
	"glsdisp":          GlossaryEntryReferenceName,
	"glslink":          GlossaryEntryReferenceName,
	"glstext":          GlossaryEntryReferenceName,
	"Glstext":          GlossaryEntryReferenceName,
	"GLStext":          GlossaryEntryReferenceName,
	"glsfirst":         GlossaryEntryReferenceName,
	"Glsfirst":         GlossaryEntryReferenceName,
	"GLSfirst":         GlossaryEntryReferenceName,
	"glsplural":        GlossaryEntryReferenceName,
	"Glsplural":        GlossaryEntryReferenceName,
	"GLSplural":        GlossaryEntryReferenceName,
	"glsfirstplural":   GlossaryEntryReferenceName,
	"Glsfirstplural":   GlossaryEntryReferenceName,
	"GLSfirstplural":   GlossaryEntryReferenceName,
	"glsname":          GlossaryEntryReferenceName,
	"Glsname":          GlossaryEntryReferenceName,
	"GLSname":          GlossaryEntryReferenceName,
	"glssymbol":        GlossaryEntryReferenceName,
	"Glssymbol":        GlossaryEntryReferenceName,
	"glsdesc":          GlossaryEntryReferenceName,
	"Glsdesc":          GlossaryEntryReferenceName,
	"GLSdesc":          GlossaryEntryReferenceName,
	"glsuseri":         GlossaryEntryReferenceName,
	"Glsuseri":         GlossaryEntryReferenceName,
	"GLSuseri":         GlossaryEntryReferenceName,
	"glsuserii":        GlossaryEntryReferenceName,
	"Glsuserii":        GlossaryEntryReferenceName,
	"GLSuserii":        GlossaryEntryReferenceName,
	"glsuseriii":       GlossaryEntryReferenceName,
	"Glsuseriii":       GlossaryEntryReferenceName,
	"GLSuseriii":       GlossaryEntryReferenceName,
	"glsuseriv":        GlossaryEntryReferenceName,
	"Glsuseriv":        GlossaryEntryReferenceName,
	"GLSuseriv":        GlossaryEntryReferenceName,
	"glsuserv":         GlossaryEntryReferenceName,
	"Glsuserv":         GlossaryEntryReferenceName,
	"GLSuserv":         GlossaryEntryReferenceName,
	"glsuservi":        GlossaryEntryReferenceName,
	"Glsuservi":        GlossaryEntryReferenceName,
	"GLSuservi":        GlossaryEntryReferenceName,

	// Acronyms.
	"newacronym":      AcronymDefinitionName,
	"DeclareAcronym":  AcronymDeclarationName,
	"acrshort":        AcronymReferenceName,
	"Acrshort":        AcronymReferenceName,
	"ACRshort":        AcronymReferenceName,
	"acrshortpl":      AcronymReferenceName,
	"Acrshortpl":      AcronymReferenceName,
	"ACRshortpl":      AcronymReferenceName,
	"acrlong":         AcronymReferenceName,
	"Acrlong":         AcronymReferenceName,
	"ACRlong":         AcronymReferenceName,
	"acrlongpl":       AcronymReferenceName,
	"Acrlongpl":       AcronymReferenceName,
	"ACRlongpl":       AcronymReferenceName,
	"acrfull":         AcronymReferenceName,
	"Acrfull":         AcronymReferenceName,
	"ACRfull":         AcronymReferenceName,
	"acrfullpl":       AcronymReferenceName,
	"Acrfullpl":       AcronymReferenceName,
	"ACRfullpl":       AcronymReferenceName,
	"acs":             AcronymReferenceName,
	"Acs":             AcronymReferenceName,
	"acsp":            AcronymReferenceName,
	"Acsp":            AcronymReferenceName,
	"acl":             AcronymReferenceName,
	"Acl":             AcronymReferenceName,
	"aclp":            AcronymReferenceName,
	"Aclp":            AcronymReferenceName,
	"acf":             AcronymReferenceName,
	"Acf":             AcronymReferenceName,
	"acfp":            AcronymReferenceName,
	"Acfp":            AcronymReferenceName,
	"ac":              AcronymReferenceName,
	"Ac":              AcronymReferenceName,
	"acp":             AcronymReferenceName,
	"Acp":             AcronymReferenceName,
	"glsentrylong":    AcronymReferenceName,
	"Glsentrylong":    AcronymReferenceName,
	"glsentrylongpl":  AcronymReferenceName,
	"Glsentrylongpl":  AcronymReferenceName,
	"glsentryshort":   AcronymReferenceName,
	"Glsentryshort":   AcronymReferenceName,
	"glsentryshortpl": AcronymReferenceName,
	"Glsentryshortpl": AcronymReferenceName,
	"glsentryfullpl":  AcronymReferenceName,
	"Glsentryfullpl":  AcronymReferenceName,

	// Theorems.
	"newtheorem":     TheoremDefinitionName,
	"newtheorem*":    TheoremDefinitionName,
	"declaretheorem": TheoremDefinitionName,

	// Colors.
	"color":          ColorReferenceName,
	"colorbox":       ColorReferenceName,
	"textcolor":      ColorReferenceName,
	"pagecolor":      ColorReferenceName,
	"definecolor":    ColorDefinitionName,
	"definecolorset": ColorSetDefinitionName,

	// TikZ.
	"usepgflibrary":  TikzLibraryImportName,
	"usetikzlibrary": TikzLibraryImportName,

	// Environment definitions.
	"newenvironment":    EnvironmentDefinitionName,
	"newenvironment*":   EnvironmentDefinitionName,
	"renewenvironment":  EnvironmentDefinitionName,
	"renewenvironment*": EnvironmentDefinitionName,

	"graphicspath": GraphicsPathName,
}

// lookupCommandName resolves a control-sequence spelling to its token
// kind, falling back to GenericCommandName.
func lookupCommandName(name string) SyntaxKind {
	if kind, ok := commandNames[name]; ok {
		return kind
	}
	return GenericCommandName
}
