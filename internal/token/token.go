package token

import (
	"strings"

	"adacase/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a numeric, string, or character literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is an Ada reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAbort && t.Kind <= KwXor
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	switch t.Kind {
	case Plus, Minus, Star, StarStar, Slash, Amp, Eq, Ne, Lt, LtEq, Gt, GtEq,
		Assign, Arrow, Colon, Semicolon, Comma, Dot, DotDot, Tick, Pipe,
		LtLt, GtGt, Box, LParen, RParen:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// Normalized returns the case-insensitive canonical spelling of the token.
// Ada identifiers that differ only in case denote the same name.
func (t Token) Normalized() string { return strings.ToLower(t.Text) }
