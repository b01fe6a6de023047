package lexer

import (
	"adacase/internal/diag"
	"adacase/internal/token"
)

// scanString scans an Ada string literal. A doubled quote ("") inside the
// literal is an escaped quote, not a terminator. Literal content is opaque to
// every later pass, so identifiers inside strings are never re-cased.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "string literal is never closed")
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.textFrom(sp)}
		}
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "string literal is never closed")
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.textFrom(sp)}
		}
		lx.cursor.Bump()
		if b == '"' {
			// "" is an escaped quote; a single " closes the literal
			if lx.cursor.Peek() == '"' {
				lx.cursor.Bump()
				continue
			}
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.StringLit, Span: sp, Text: lx.textFrom(sp)}
}

// scanCharOrTick disambiguates a character literal ('x') from the attribute
// apostrophe (Day'Image). Exactly quote-any-quote is a character literal;
// anything else is a Tick token.
func (lx *Lexer) scanCharOrTick() token.Token {
	start := lx.cursor.Mark()
	if b0, _, b2, ok := lx.cursor.Peek3(); ok && b0 == '\'' && b2 == '\'' {
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.cursor.Bump()
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: token.CharLit, Span: sp, Text: lx.textFrom(sp)}
	}
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Tick, Span: sp, Text: lx.textFrom(sp)}
}
