package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnterminatedString Code = 1001

	// Syntax
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectExpression   Code = 2002
	SynUnclosedParen      Code = 2003
	SynUnclosedBracket    Code = 2004
	SynExpectIdentifier   Code = 2005
	SynTrailingInput      Code = 2006
	SynExpectComma        Code = 2007
	SynBadParameterList   Code = 2008
	SynBadPlotParams      Code = 2009
	SynInvalidSyntax      Code = 2010

	// Evaluation
	EvalInfo             Code = 3000
	EvalNameError        Code = 3001
	EvalArityError       Code = 3002
	EvalShapeError       Code = 3003
	EvalUnsupportedOp    Code = 3004
	EvalBadPlotBound     Code = 3005
	EvalBadFunctionalArg Code = 3006
	EvalRecursionLimit   Code = 3007

	// Driver / IO
	IOInfo       Code = 4000
	IOReadFailed Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:               "lexical note",
	LexUnterminatedString: "unterminated string literal",

	SynInfo:             "syntax note",
	SynUnexpectedToken:  "unexpected token",
	SynExpectExpression: "expected expression",
	SynUnclosedParen:    "unclosed parenthesis",
	SynUnclosedBracket:  "unclosed bracket",
	SynExpectIdentifier: "expected identifier",
	SynTrailingInput:    "trailing input after expression",
	SynExpectComma:      "expected comma",
	SynBadParameterList: "invalid parameter list",
	SynBadPlotParams:    "invalid parametric plot parameters",
	SynInvalidSyntax:    "invalid syntax",

	EvalInfo:             "evaluation note",
	EvalNameError:        "undefined name",
	EvalArityError:       "wrong number of arguments",
	EvalShapeError:       "operand shape mismatch",
	EvalUnsupportedOp:    "unsupported operation",
	EvalBadPlotBound:     "plot bound is not a scalar",
	EvalBadFunctionalArg: "functional argument must be a variable",
	EvalRecursionLimit:   "call depth limit exceeded",

	IOInfo:       "io note",
	IOReadFailed: "failed to read input",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("EVL%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
