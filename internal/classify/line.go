package classify

import (
	"adacase/internal/token"
)

// Tag marks the dominant structural role of a logical line.
type Tag uint8

const (
	// TagOther is a line with no recognized structure.
	TagOther Tag = iota
	// TagContext is a with/use context clause.
	TagContext
	// TagPackageHeader starts a package spec or body.
	TagPackageHeader
	// TagSubprogramHeader starts a procedure or function.
	TagSubprogramHeader
	// TagParamList continues an unclosed subprogram parameter list.
	TagParamList
	// TagIs is a line whose first token is the 'is' keyword.
	TagIs
	// TagBegin is a line whose first token is the 'begin' keyword.
	TagBegin
	// TagEnd is a line whose first token is the 'end' keyword.
	TagEnd
	// TagForLoopHeader is a 'for <name> in ... loop' header.
	TagForLoopHeader
	// TagDeclaration is an object, type, or subtype declaration.
	TagDeclaration
	// TagStatement is any other executable line.
	TagStatement
)

func (t Tag) String() string {
	switch t {
	case TagContext:
		return "CONTEXT"
	case TagPackageHeader:
		return "PACKAGE_HEADER"
	case TagSubprogramHeader:
		return "SUBPROGRAM_HEADER"
	case TagParamList:
		return "PARAM_LIST"
	case TagIs:
		return "IS"
	case TagBegin:
		return "BEGIN"
	case TagEnd:
		return "END"
	case TagForLoopHeader:
		return "FOR_LOOP_HEADER"
	case TagDeclaration:
		return "DECLARATION"
	case TagStatement:
		return "STATEMENT"
	}
	return "OTHER"
}

// LogicalLine is one physical line's significant tokens plus its tag.
// Trivia never appears here, so comment text cannot influence anything
// downstream. A line may mix structure (a one-line header with parameters
// and 'is'); the tag records the dominant role and the resolver re-inspects
// Tokens for the rest.
type LogicalLine struct {
	Tag    Tag
	Line   uint32 // 1-based physical line of the first token
	Tokens []token.Token
}
