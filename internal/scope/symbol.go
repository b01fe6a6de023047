package scope

import "strings"

// DeclScope records where a symbol was declared.
type DeclScope uint8

const (
	// ScopeFileGlobal covers declarations outside any subprogram.
	ScopeFileGlobal DeclScope = iota
	// ScopeParameterList covers formal parameters.
	ScopeParameterList
	// ScopeSubprogramLocal covers declarations between 'is' and 'begin'.
	ScopeSubprogramLocal
	// ScopeLoopLocal covers 'for' loop variables.
	ScopeLoopLocal
)

// Symbol is one declared (or inferred) name. Identity is the normalized,
// case-insensitive name; Name keeps the spelling of the winning declaration.
type Symbol struct {
	Name  string
	Role  Role
	Scope DeclScope
}

// Table maps normalized names to symbols. Symbols are never deleted;
// redeclarations are resolved by role priority, later-wins on ties. No true
// lexical shadowing is modeled: one file, one table.
type Table struct {
	syms map[string]Symbol
}

func NewTable() *Table {
	return &Table{syms: make(map[string]Symbol)}
}

// Normalize returns the case-insensitive canonical form of a name.
func Normalize(name string) string { return strings.ToLower(name) }

// Declare records a name with the given role, honoring role priority.
func (t *Table) Declare(name string, role Role, scope DeclScope) {
	key := Normalize(name)
	if prev, ok := t.syms[key]; ok && prev.Role.priority() > role.priority() {
		return
	}
	t.syms[key] = Symbol{Name: name, Role: role, Scope: scope}
}

// DeclareIfAbsent records a name only when nothing is known about it.
// Used by the implicit-global pass, which must never beat a declaration.
func (t *Table) DeclareIfAbsent(name string, role Role, scope DeclScope) {
	key := Normalize(name)
	if _, ok := t.syms[key]; ok {
		return
	}
	t.syms[key] = Symbol{Name: name, Role: role, Scope: scope}
}

// Lookup returns the role recorded for a normalized name.
func (t *Table) Lookup(norm string) (Role, bool) {
	s, ok := t.syms[norm]
	if !ok {
		return RoleUnknown, false
	}
	return s.Role, true
}

// Get returns the full symbol for a normalized name.
func (t *Table) Get(norm string) (Symbol, bool) {
	s, ok := t.syms[norm]
	return s, ok
}

// Len returns the number of known symbols.
func (t *Table) Len() int { return len(t.syms) }

// Symbols returns a copy of the table for inspection.
func (t *Table) Symbols() map[string]Symbol {
	out := make(map[string]Symbol, len(t.syms))
	for k, v := range t.syms {
		out[k] = v
	}
	return out
}
