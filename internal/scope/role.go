package scope

// Role is the casing category assigned to an identifier.
type Role uint8

const (
	// RoleUnknown means the identifier was never declared or inferred;
	// its casing is left untouched.
	RoleUnknown Role = iota
	// RoleGlobal is a file-global or inferred external variable.
	RoleGlobal
	// RoleLocal is a subprogram-local variable or loop variable.
	RoleLocal
	// RoleParameter is a formal parameter.
	RoleParameter
	// RoleConstant is an object declared with 'constant'.
	RoleConstant
	// RoleType is a declared type/subtype name or a type mark.
	RoleType
)

func (r Role) String() string {
	switch r {
	case RoleGlobal:
		return "GLOBAL"
	case RoleLocal:
		return "LOCAL"
	case RoleParameter:
		return "PARAMETER"
	case RoleConstant:
		return "CONSTANT"
	case RoleType:
		return "TYPE"
	}
	return "UNKNOWN"
}

// priority orders roles when the heuristics disagree about a name:
// TYPE > CONSTANT > PARAMETER = LOCAL > GLOBAL. A type name is never
// downgraded; an explicit declaration always beats the implicit-global
// inference. Ties are resolved by the later declaration.
func (r Role) priority() int {
	switch r {
	case RoleType:
		return 4
	case RoleConstant:
		return 3
	case RoleParameter, RoleLocal:
		return 2
	case RoleGlobal:
		return 1
	}
	return 0
}
