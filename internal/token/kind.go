package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token. The lexer itself never emits it;
	// single unrecognized characters are classified Other instead.
	Invalid Kind = iota
	// EOF marks the end of the lexed range.
	EOF

	// Ident represents an identifier token.
	Ident
	// Number represents a numeric literal token.
	Number
	// Quoted represents a quoted string token (directive labels).
	Quoted
	// Comment represents a '//' comment running to the end of the line.
	Comment
	// Directive represents a '#word' preprocessing directive token.
	Directive

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// Slash represents the slash operator token.
	Slash // /
	// StarStar represents the double-star power operator token.
	StarStar // **
	// Caret represents the caret power operator token.
	Caret // ^
	// Assign represents the assign operator token.
	Assign // =
	// Comma represents the comma operator token.
	Comma // ,
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
	// LBracket represents the left bracket token.
	LBracket // [
	// RBracket represents the right bracket token.
	RBracket // ]

	// Other represents any single character outside the grammar. It is
	// always produced, never reported as an error, so highlighting can
	// degrade gracefully.
	Other
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	Number:    "Number",
	Quoted:    "Quoted",
	Comment:   "Comment",
	Directive: "Directive",
	Plus:      "Plus",
	Minus:     "Minus",
	Star:      "Star",
	Slash:     "Slash",
	StarStar:  "StarStar",
	Caret:     "Caret",
	Assign:    "Assign",
	Comma:     "Comma",
	LParen:    "LParen",
	RParen:    "RParen",
	LBracket:  "LBracket",
	RBracket:  "RBracket",
	Other:     "Other",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}

// IsOperator reports whether the kind belongs to the fixed operator set,
// grouping parentheses and brackets included.
func (k Kind) IsOperator() bool {
	return k >= Plus && k <= RBracket
}

// Class is the coarse lexical classification used for editor highlighting.
type Class uint8

const (
	ClassOther Class = iota
	ClassNumber
	ClassIdent
	ClassOperator
	ClassComment
	ClassDirective
	ClassQuoted
	// ClassBuiltin marks an identifier naming a registered builtin
	// (primitive, functional, or constant). The lexer never produces it;
	// the semantic pass upgrades ClassIdent tokens whose text is builtin.
	ClassBuiltin
)

var classNames = map[Class]string{
	ClassOther:     "other",
	ClassNumber:    "number",
	ClassIdent:     "identifier",
	ClassOperator:  "operator",
	ClassComment:   "comment",
	ClassDirective: "preprocess",
	ClassQuoted:    "string",
	ClassBuiltin:   "builtin",
}

func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "other"
}

// Class maps a token kind onto its coarse classification.
func (k Kind) Class() Class {
	switch {
	case k == Number:
		return ClassNumber
	case k == Ident:
		return ClassIdent
	case k == Comment:
		return ClassComment
	case k == Directive:
		return ClassDirective
	case k == Quoted:
		return ClassQuoted
	case k.IsOperator():
		return ClassOperator
	default:
		return ClassOther
	}
}
