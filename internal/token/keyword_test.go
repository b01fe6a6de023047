package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"begin":     KwBegin,
		"end":       KwEnd,
		"procedure": KwProcedure,
		"function":  KwFunction,
		"package":   KwPackage,
		"constant":  KwConstant,
		"is":        KwIs,
		"for":       KwFor,
		"in":        KwIn,
		"loop":      KwLoop,
		"type":      KwType,
		"subtype":   KwSubtype,
		"return":    KwReturn,
		"array":     KwArray,
		"of":        KwOf,
		"with":      KwWith,
		"use":       KwUse,
		"xor":       KwXor,
		"abort":     KwAbort,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_CaseInsensitive(t *testing.T) {
	// Ada reserved words match in any case.
	for _, s := range []string{"BEGIN", "Begin", "bEgIn"} {
		got, ok := LookupKeyword(s)
		if !ok || got != KwBegin {
			t.Fatalf("LookupKeyword(%q) = %v, %v; want KwBegin, true", s, got, ok)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	// Predefined type names are identifiers, not reserved words.
	notKw := []string{
		"Integer", "Float", "Boolean", "String", "Character",
		"identifier", "Count", "X1",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}
