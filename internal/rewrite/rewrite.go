// Package rewrite applies the finalized role table back onto the source
// bytes. Only identifier occurrences change; comments, literals, whitespace,
// and punctuation are copied through verbatim. Re-running the pipeline on
// its own output is a no-op.
package rewrite

import (
	"adacase/internal/casing"
	"adacase/internal/scope"
	"adacase/internal/source"
	"adacase/internal/token"
)

// Apply rewrites every resolved identifier occurrence in the file and
// returns the new content. Identifiers with no recorded role (never
// declared, never assigned) keep their original spelling: the implicit
// global rule fires only for assignment targets, and this pass must not
// second-guess it.
func Apply(file *source.File, tokens []token.Token, table *scope.Table, rules *casing.Rules) []byte {
	out := make([]byte, 0, len(file.Content))
	last := uint32(0)

	for _, tok := range tokens {
		if tok.Kind != token.Ident {
			continue
		}
		role := roleFor(tok, table, rules)
		if role == scope.RoleUnknown {
			continue
		}
		replacement := rules.Apply(tok.Text, role)
		if replacement == tok.Text {
			continue
		}
		out = append(out, file.Content[last:tok.Span.Start]...)
		out = append(out, replacement...)
		last = tok.Span.End
	}

	out = append(out, file.Content[last:]...)
	return out
}

// roleFor resolves one occurrence. Built-in type names are TYPE regardless
// of the table; a declared name wins its recorded role.
func roleFor(tok token.Token, table *scope.Table, rules *casing.Rules) scope.Role {
	norm := tok.Normalized()
	if rules.IsBuiltinType(norm) {
		return scope.RoleType
	}
	if role, ok := table.Lookup(norm); ok {
		return role
	}
	return scope.RoleUnknown
}
