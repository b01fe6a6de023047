package lexer

import (
	"adacase/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant token.
//   - ' ' and '\t' coalesce into one TriviaSpace
//   - '\n' and '\r' coalesce into one TriviaNewline
//   - "--" to end of line -> TriviaLineComment
//
// Comment text never reaches the token stream, so keywords or ":=" inside a
// comment cannot influence classification.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		// spaces/tabs
		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaSpace,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// newlines (CR and LF coalesce; covers CRLF files verbatim)
		if b == '\n' || b == '\r' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != '\n' && b2 != '\r' {
					break
				}
				lx.cursor.Bump()
			}
			sp := lx.cursor.SpanFrom(start)
			lx.hold = append(lx.hold, token.Trivia{
				Kind: token.TriviaNewline,
				Span: sp,
				Text: string(lx.file.Content[sp.Start:sp.End]),
			})
			continue
		}

		// "--" line comment
		if b == '-' {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '-' && b1 == '-' {
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' && lx.cursor.Peek() != '\r' {
					lx.cursor.Bump()
				}
				sp := lx.cursor.SpanFrom(start)
				lx.hold = append(lx.hold, token.Trivia{
					Kind: token.TriviaLineComment,
					Span: sp,
					Text: string(lx.file.Content[sp.Start:sp.End]),
				})
				continue
			}
		}

		// no more trivia
		break
	}
}
