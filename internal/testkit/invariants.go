// Package testkit holds invariant checkers shared by tests.
package testkit

import (
	"fmt"

	"adacase/internal/diag"
	"adacase/internal/lexer"
	"adacase/internal/source"
	"adacase/internal/token"
)

// CheckRewriteInvariants verifies the structural invariants between a source
// file and its normalized output:
// 1) both lex into the same token sequence (same count, same kinds)
// 2) every non-identifier token keeps its exact text
// 3) every comment keeps its exact text
// 4) identifiers may change only in letter case
func CheckRewriteInvariants(input, output []byte) error {
	fs := source.NewFileSet()
	inFile := fs.Get(fs.AddVirtual("input", input))
	outFile := fs.Get(fs.AddVirtual("output", output))

	inToks := lexer.Tokens(inFile, lexer.Options{Reporter: diag.NopReporter{}})
	outToks := lexer.Tokens(outFile, lexer.Options{Reporter: diag.NopReporter{}})

	if len(inToks) != len(outToks) {
		return fmt.Errorf("token count changed: %d != %d", len(inToks), len(outToks))
	}

	for i := range inToks {
		in, out := inToks[i], outToks[i]
		if in.Kind != out.Kind {
			return fmt.Errorf("token %d kind changed: %v != %v", i, in.Kind, out.Kind)
		}
		if in.Kind == token.Ident {
			if in.Normalized() != out.Normalized() {
				return fmt.Errorf("token %d identifier changed spelling: %q -> %q", i, in.Text, out.Text)
			}
		} else if in.Text != out.Text {
			return fmt.Errorf("token %d text changed: %q -> %q", i, in.Text, out.Text)
		}
		if err := compareComments(i, in.Leading, out.Leading); err != nil {
			return err
		}
	}
	return nil
}

// CheckIdempotent applies normalize twice and verifies the second pass is a
// no-op.
func CheckIdempotent(normalize func([]byte) []byte, input []byte) error {
	once := normalize(input)
	twice := normalize(once)
	if string(once) != string(twice) {
		return fmt.Errorf("normalize is not idempotent:\nfirst:  %q\nsecond: %q", once, twice)
	}
	return nil
}

func compareComments(i int, in, out []token.Trivia) error {
	inComments := commentTexts(in)
	outComments := commentTexts(out)
	if len(inComments) != len(outComments) {
		return fmt.Errorf("token %d comment count changed: %d != %d", i, len(inComments), len(outComments))
	}
	for j := range inComments {
		if inComments[j] != outComments[j] {
			return fmt.Errorf("token %d comment changed: %q -> %q", i, inComments[j], outComments[j])
		}
	}
	return nil
}

func commentTexts(trivia []token.Trivia) []string {
	var texts []string
	for _, tr := range trivia {
		if tr.IsComment() {
			texts = append(texts, tr.Text)
		}
	}
	return texts
}
