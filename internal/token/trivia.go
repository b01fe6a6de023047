package token

import "adacase/internal/source"

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
)

type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

// IsComment reports whether the trivia is an Ada line comment.
func (t Trivia) IsComment() bool { return t.Kind == TriviaLineComment }

func (tk TriviaKind) String() string {
	switch tk {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	}
	return "TriviaKind(?)"
}
