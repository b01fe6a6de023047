package lexer

import (
	"adacase/internal/diag"
	"adacase/internal/source"
	"adacase/internal/token"
)

// scanNumber scans an Ada numeric literal: decimal with optional fraction and
// exponent, underscores between digits, or a based literal like 16#FF# or
// 2#1010_1100#E4. Malformed literals are reported but still produce a
// NumberLit token; the rewriter copies them through untouched either way.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	lx.scanDigitRun(isDec)

	// based literal: <base># extended_digits [.extended_digits] #
	if lx.cursor.Peek() == '#' {
		lx.cursor.Bump()
		lx.scanDigitRun(isExtendedDigit)
		if lx.cursor.Peek() == '.' {
			lx.cursor.Bump()
			lx.scanDigitRun(isExtendedDigit)
		}
		if !lx.cursor.Eat('#') {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexBadNumber, sp, "based literal is missing its closing '#'")
			return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.textFrom(sp)}
		}
	} else {
		// fraction, but not a ".." range delimiter
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
			lx.cursor.Bump()
			lx.scanDigitRun(isDec)
		}
	}

	// exponent
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if isDec(lx.cursor.Peek()) {
			lx.scanDigitRun(isDec)
		} else {
			// not an exponent after all ("123E" could start an identifier-ish
			// typo); back off and leave it to the next scan
			lx.cursor.Reset(mark)
		}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.textFrom(sp)}
}

// scanDigitRun consumes digits of the given class with embedded underscores.
func (lx *Lexer) scanDigitRun(digit func(byte) bool) {
	for {
		b := lx.cursor.Peek()
		if digit(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '_' {
			if _, b1, ok := lx.cursor.Peek2(); ok && digit(b1) {
				lx.cursor.Bump()
				continue
			}
		}
		return
	}
}

func (lx *Lexer) textFrom(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
