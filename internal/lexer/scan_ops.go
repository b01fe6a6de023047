package lexer

import (
	"adacase/internal/diag"
	"adacase/internal/token"
)

// scanOperatorOrPunct scans Ada compound delimiters greedily, then singles.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	kind := token.Invalid
	switch {
	case lx.try2(':', '='):
		kind = token.Assign
	case lx.try2('=', '>'):
		kind = token.Arrow
	case lx.try2('/', '='):
		kind = token.Ne
	case lx.try2('*', '*'):
		kind = token.StarStar
	case lx.try2('.', '.'):
		kind = token.DotDot
	case lx.try2('<', '='):
		kind = token.LtEq
	case lx.try2('>', '='):
		kind = token.GtEq
	case lx.try2('<', '<'):
		kind = token.LtLt
	case lx.try2('>', '>'):
		kind = token.GtGt
	case lx.try2('<', '>'):
		kind = token.Box
	default:
		b := lx.cursor.Bump()
		switch b {
		case '+':
			kind = token.Plus
		case '-':
			kind = token.Minus
		case '*':
			kind = token.Star
		case '/':
			kind = token.Slash
		case '&':
			kind = token.Amp
		case '=':
			kind = token.Eq
		case '<':
			kind = token.Lt
		case '>':
			kind = token.Gt
		case ':':
			kind = token.Colon
		case ';':
			kind = token.Semicolon
		case ',':
			kind = token.Comma
		case '.':
			kind = token.Dot
		case '|':
			kind = token.Pipe
		case '(':
			kind = token.LParen
		case ')':
			kind = token.RParen
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.textFrom(sp)
	if kind == token.Invalid {
		lx.errLex(diag.LexUnknownChar, sp, "unknown character "+text)
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
