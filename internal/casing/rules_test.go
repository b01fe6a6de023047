package casing_test

import (
	"testing"

	"adacase/internal/casing"
	"adacase/internal/scope"
)

func TestTransformFor(t *testing.T) {
	cases := []struct {
		role scope.Role
		want casing.Transform
	}{
		{scope.RoleType, casing.UpperCase},
		{scope.RoleConstant, casing.UpperCase},
		{scope.RoleGlobal, casing.UpperCase},
		{scope.RoleParameter, casing.LowerCase},
		{scope.RoleLocal, casing.LowerCase},
		{scope.RoleUnknown, casing.KeepCase},
	}
	for _, tc := range cases {
		if got := casing.TransformFor(tc.role); got != tc.want {
			t.Errorf("TransformFor(%v): expected %v, got %v", tc.role, tc.want, got)
		}
	}
}

func TestApplyKeepsUnderscoresAndDigits(t *testing.T) {
	r := casing.NewRules(nil)

	if got := r.Apply("Global_Count", scope.RoleGlobal); got != "GLOBAL_COUNT" {
		t.Errorf("expected GLOBAL_COUNT, got %q", got)
	}
	if got := r.Apply("Buffer_2_Size", scope.RoleConstant); got != "BUFFER_2_SIZE" {
		t.Errorf("expected BUFFER_2_SIZE, got %q", got)
	}
	if got := r.Apply("Index", scope.RoleLocal); got != "index" {
		t.Errorf("expected index, got %q", got)
	}
	if got := r.Apply("Whatever", scope.RoleUnknown); got != "Whatever" {
		t.Errorf("unknown role must keep spelling, got %q", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	r := casing.NewRules(nil)
	once := r.Apply("Some_Name", scope.RoleGlobal)
	twice := r.Apply(once, scope.RoleGlobal)
	if once != twice {
		t.Errorf("transform not idempotent: %q != %q", once, twice)
	}
}

func TestBuiltinTypes(t *testing.T) {
	r := casing.NewRules(nil)

	for _, name := range []string{"integer", "float", "boolean", "string", "long_float", "wide_character"} {
		if !r.IsBuiltinType(name) {
			t.Errorf("%s should be a built-in type", name)
		}
	}
	if r.IsBuiltinType("my_type") {
		t.Error("my_type should not be a built-in type")
	}
}

func TestExtraBuiltins(t *testing.T) {
	r := casing.NewRules([]string{"Unsigned_32"})
	if !r.IsBuiltinType("unsigned_32") {
		t.Error("extra builtins should match case-insensitively")
	}
}
