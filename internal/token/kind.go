package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	// KwAbort represents the 'abort' keyword.
	KwAbort // abort
	// KwAbs represents the 'abs' keyword.
	KwAbs // abs
	// KwAccept represents the 'accept' keyword.
	KwAccept // accept
	// KwAccess represents the 'access' keyword.
	KwAccess // access
	// KwAll represents the 'all' keyword.
	KwAll // all
	// KwAnd represents the 'and' keyword.
	KwAnd // and
	// KwArray represents the 'array' keyword.
	KwArray // array
	// KwAt represents the 'at' keyword.
	KwAt // at
	// KwBegin represents the 'begin' keyword.
	KwBegin // begin
	// KwBody represents the 'body' keyword.
	KwBody // body
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwConstant represents the 'constant' keyword.
	KwConstant // constant
	// KwDeclare represents the 'declare' keyword.
	KwDeclare // declare
	// KwDelay represents the 'delay' keyword.
	KwDelay // delay
	// KwDelta represents the 'delta' keyword.
	KwDelta // delta
	// KwDigits represents the 'digits' keyword.
	KwDigits // digits
	// KwDo represents the 'do' keyword.
	KwDo // do
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwElsif represents the 'elsif' keyword.
	KwElsif // elsif
	// KwEnd represents the 'end' keyword.
	KwEnd // end
	// KwEntry represents the 'entry' keyword.
	KwEntry // entry
	// KwException represents the 'exception' keyword.
	KwException // exception
	// KwExit represents the 'exit' keyword.
	KwExit // exit
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwFunction represents the 'function' keyword.
	KwFunction // function
	// KwGeneric represents the 'generic' keyword.
	KwGeneric // generic
	// KwGoto represents the 'goto' keyword.
	KwGoto // goto
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwIn represents the 'in' keyword.
	KwIn // in
	// KwIs represents the 'is' keyword.
	KwIs // is
	// KwLimited represents the 'limited' keyword.
	KwLimited // limited
	// KwLoop represents the 'loop' keyword.
	KwLoop // loop
	// KwMod represents the 'mod' keyword.
	KwMod // mod
	// KwNew represents the 'new' keyword.
	KwNew // new
	// KwNot represents the 'not' keyword.
	KwNot // not
	// KwNull represents the 'null' keyword.
	KwNull // null
	// KwOf represents the 'of' keyword.
	KwOf // of
	// KwOr represents the 'or' keyword.
	KwOr // or
	// KwOthers represents the 'others' keyword.
	KwOthers // others
	// KwOut represents the 'out' keyword.
	KwOut // out
	// KwPackage represents the 'package' keyword.
	KwPackage // package
	// KwPragma represents the 'pragma' keyword.
	KwPragma // pragma
	// KwPrivate represents the 'private' keyword.
	KwPrivate // private
	// KwProcedure represents the 'procedure' keyword.
	KwProcedure // procedure
	// KwRaise represents the 'raise' keyword.
	KwRaise // raise
	// KwRange represents the 'range' keyword.
	KwRange // range
	// KwRecord represents the 'record' keyword.
	KwRecord // record
	// KwRem represents the 'rem' keyword.
	KwRem // rem
	// KwRenames represents the 'renames' keyword.
	KwRenames // renames
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwReverse represents the 'reverse' keyword.
	KwReverse // reverse
	// KwSelect represents the 'select' keyword.
	KwSelect // select
	// KwSeparate represents the 'separate' keyword.
	KwSeparate // separate
	// KwSubtype represents the 'subtype' keyword.
	KwSubtype // subtype
	// KwTask represents the 'task' keyword.
	KwTask // task
	// KwTerminate represents the 'terminate' keyword.
	KwTerminate // terminate
	// KwThen represents the 'then' keyword.
	KwThen // then
	// KwType represents the 'type' keyword.
	KwType // type
	// KwUse represents the 'use' keyword.
	KwUse // use
	// KwWhen represents the 'when' keyword.
	KwWhen // when
	// KwWhile represents the 'while' keyword.
	KwWhile // while
	// KwWith represents the 'with' keyword.
	KwWith // with
	// KwXor represents the 'xor' keyword.
	KwXor // xor

	// NumberLit represents a numeric literal token (decimal or based).
	NumberLit
	// StringLit represents a string literal token.
	StringLit
	// CharLit represents a character literal token.
	CharLit

	// Plus represents the plus operator token.
	Plus // +
	// Minus represents the minus operator token.
	Minus // -
	// Star represents the star operator token.
	Star // *
	// StarStar represents the exponentiation operator token.
	StarStar // **
	// Slash represents the slash operator token.
	Slash // /
	// Amp represents the catenation operator token.
	Amp // &
	// Eq represents the equality operator token.
	Eq // =
	// Ne represents the inequality operator token.
	Ne // /=
	// Lt represents the lt operator token.
	Lt // <
	// LtEq represents the lt eq operator token.
	LtEq // <=
	// Gt represents the gt operator token.
	Gt // >
	// GtEq represents the gt eq operator token.
	GtEq // >=
	// Assign represents the assignment operator token.
	Assign // :=
	// Arrow represents the association arrow token.
	Arrow // =>
	// Colon represents the colon token.
	Colon // :
	// Semicolon represents the semicolon token.
	Semicolon // ;
	// Comma represents the comma token.
	Comma // ,
	// Dot represents the dot token.
	Dot // .
	// DotDot represents the range dots token.
	DotDot // ..
	// Tick represents the apostrophe (attribute) token.
	Tick // '
	// Pipe represents the alternative separator token.
	Pipe // |
	// LtLt represents the left label bracket token.
	LtLt // <<
	// GtGt represents the right label bracket token.
	GtGt // >>
	// Box represents the box compound delimiter token.
	Box // <>
	// LParen represents the left parenthesis token.
	LParen // (
	// RParen represents the right parenthesis token.
	RParen // )
)
