package classify

import (
	"strings"

	"adacase/internal/token"
)

// Lines groups a token stream into tagged logical lines. The split points are
// the newline trivia attached to each token, so the grouping works on the
// verbatim source without re-scanning it.
func Lines(tokens []token.Token) []LogicalLine {
	var (
		out     []LogicalLine
		cur     []token.Token
		curLine uint32 = 1
		line    uint32 = 1
	)

	// parenDepth and pendingHeader persist across lines so a multi-line
	// parameter list tags its continuation lines PARAM_LIST.
	parenDepth := 0
	pendingHeader := false

	flush := func() {
		if len(cur) == 0 {
			return
		}
		ll := LogicalLine{
			Tag:    tagFor(cur, parenDepth > 0 && pendingHeader),
			Line:   curLine,
			Tokens: cur,
		}
		if ll.Tag == TagSubprogramHeader {
			pendingHeader = true
		}
		for _, t := range cur {
			switch t.Kind {
			case token.LParen:
				parenDepth++
			case token.RParen:
				if parenDepth > 0 {
					parenDepth--
				}
			}
		}
		if parenDepth == 0 && ll.Tag != TagSubprogramHeader {
			pendingHeader = false
		}
		out = append(out, ll)
		cur = nil
	}

	for _, tok := range tokens {
		newlines := uint32(0)
		for _, tr := range tok.Leading {
			if tr.Kind == token.TriviaNewline {
				n := uint32(strings.Count(tr.Text, "\n"))
				if n == 0 {
					n = 1 // lone CR still separates lines
				}
				newlines += n
			}
		}
		if newlines > 0 {
			flush()
			line += newlines
		}
		if tok.Kind == token.EOF {
			break
		}
		if len(cur) == 0 {
			curLine = line
		}
		cur = append(cur, tok)
	}
	flush()

	return out
}

// tagFor decides the dominant tag from the first significant token.
func tagFor(toks []token.Token, inParamList bool) Tag {
	if len(toks) == 0 {
		return TagOther
	}
	if inParamList {
		return TagParamList
	}

	switch t0 := toks[0]; t0.Kind {
	case token.KwWith, token.KwUse:
		return TagContext
	case token.KwPackage:
		return TagPackageHeader
	case token.KwProcedure, token.KwFunction:
		return TagSubprogramHeader
	case token.KwIs:
		return TagIs
	case token.KwBegin:
		return TagBegin
	case token.KwEnd:
		return TagEnd
	case token.KwFor:
		// 'for X in ... loop' declares X; a rep clause ('for X use ...')
		// does not.
		for _, t := range toks {
			if t.Kind == token.KwIn {
				return TagForLoopHeader
			}
		}
		return TagStatement
	case token.KwType, token.KwSubtype:
		return TagDeclaration
	case token.Ident:
		// Object declaration: idents separated by commas, then a colon.
		i := 0
		for i < len(toks) {
			if toks[i].Kind != token.Ident {
				break
			}
			i++
			if i < len(toks) && toks[i].Kind == token.Comma {
				i++
				continue
			}
			break
		}
		if i < len(toks) && toks[i].Kind == token.Colon {
			return TagDeclaration
		}
		return TagStatement
	default:
		if t0.IsKeyword() {
			return TagStatement
		}
		return TagOther
	}
}
