// Package casing maps identifier roles to case transforms.
//
// The mapping is fixed: TYPE, CONSTANT, and GLOBAL uppercase; PARAMETER and
// LOCAL lowercase; UNKNOWN untouched. Built-in type names are always TYPE.
// Underscores and digits pass through either transform unchanged, so
// Global_Count becomes GLOBAL_COUNT and back.
package casing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"adacase/internal/scope"
)

// Transform is the case change applied to an identifier occurrence.
type Transform uint8

const (
	// KeepCase leaves the spelling alone.
	KeepCase Transform = iota
	// UpperCase folds every letter to upper.
	UpperCase
	// LowerCase folds every letter to lower.
	LowerCase
)

// Rules resolves roles to transforms and knows the built-in type names.
// The casers handle Latin-1 identifiers, which plain ASCII folding would
// pass through unchanged.
type Rules struct {
	upper cases.Caser
	lower cases.Caser
	extra map[string]bool
}

// NewRules builds the rule set. extraBuiltins supplements the predefined
// type names with project-specific ones from configuration.
func NewRules(extraBuiltins []string) *Rules {
	extra := make(map[string]bool, len(extraBuiltins))
	for _, name := range extraBuiltins {
		extra[strings.ToLower(name)] = true
	}
	return &Rules{
		upper: cases.Upper(language.Und),
		lower: cases.Lower(language.Und),
		extra: extra,
	}
}

// IsBuiltinType reports whether the normalized name is a known type name.
func (r *Rules) IsBuiltinType(norm string) bool {
	return builtinTypes[norm] || r.extra[norm]
}

// TransformFor is the pure role -> transform mapping.
func TransformFor(role scope.Role) Transform {
	switch role {
	case scope.RoleType, scope.RoleConstant, scope.RoleGlobal:
		return UpperCase
	case scope.RoleParameter, scope.RoleLocal:
		return LowerCase
	}
	return KeepCase
}

// Apply re-cases one identifier occurrence according to its role.
func (r *Rules) Apply(text string, role scope.Role) string {
	switch TransformFor(role) {
	case UpperCase:
		return r.upper.String(text)
	case LowerCase:
		return r.lower.String(text)
	}
	return text
}
