package scope_test

import (
	"testing"

	"adacase/internal/classify"
	"adacase/internal/diag"
	"adacase/internal/lexer"
	"adacase/internal/scope"
	"adacase/internal/source"
)

func resolve(t *testing.T, input string) (*scope.Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ada", []byte(input)))
	bag := diag.NewBag(64)
	reporter := diag.BagReporter{Bag: bag}
	tokens := lexer.Tokens(file, lexer.Options{Reporter: reporter})
	lines := classify.Lines(tokens)
	return scope.Resolve(lines, reporter), bag
}

func expectRole(t *testing.T, table *scope.Table, name string, want scope.Role) {
	t.Helper()
	got, ok := table.Lookup(scope.Normalize(name))
	if !ok {
		t.Fatalf("%s: not in table", name)
	}
	if got != want {
		t.Errorf("%s: expected role %v, got %v", name, want, got)
	}
}

func expectAbsent(t *testing.T, table *scope.Table, name string) {
	t.Helper()
	if role, ok := table.Lookup(scope.Normalize(name)); ok {
		t.Errorf("%s: expected no entry, found role %v", name, role)
	}
}

func TestStandaloneSubprogram(t *testing.T) {
	input := "Global_Count : Integer := 0;\n" +
		"procedure Process is\n" +
		"   Index : Integer := 1;\n" +
		"begin\n" +
		"   Global_Count := Global_Count + Index;\n" +
		"end Process;\n"
	res, _ := resolve(t, input)

	if res.Unit != scope.UnitSubprogram {
		t.Fatalf("expected subprogram unit, got %v", res.Unit)
	}
	expectRole(t, res.Table, "Global_Count", scope.RoleGlobal)
	expectRole(t, res.Table, "Index", scope.RoleLocal)
	expectAbsent(t, res.Table, "Process")
}

func TestParametersAndReturnType(t *testing.T) {
	input := "function Area (Width, Height : in Float; Scale : Float) return Float is\n" +
		"begin\n" +
		"   return Width * Height * Scale;\n" +
		"end Area;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "Width", scope.RoleParameter)
	expectRole(t, res.Table, "Height", scope.RoleParameter)
	expectRole(t, res.Table, "Scale", scope.RoleParameter)
	expectRole(t, res.Table, "Float", scope.RoleType)
}

func TestMultiLineParameterList(t *testing.T) {
	input := "procedure Copy (Src : in Buffer_Type;\n" +
		"                Dst : out Buffer_Type) is\n" +
		"begin\n" +
		"   null;\n" +
		"end Copy;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "Src", scope.RoleParameter)
	expectRole(t, res.Table, "Dst", scope.RoleParameter)
	expectRole(t, res.Table, "Buffer_Type", scope.RoleType)
}

func TestConstantsBeatLocals(t *testing.T) {
	input := "procedure P is\n" +
		"   Max : constant Integer := 10;\n" +
		"   Cur : Integer := 0;\n" +
		"begin\n" +
		"   Cur := Max;\n" +
		"end P;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "Max", scope.RoleConstant)
	expectRole(t, res.Table, "Cur", scope.RoleLocal)
}

func TestPackageUnitIsAllGlobal(t *testing.T) {
	input := "package Counters is\n" +
		"   Count : Integer := 0;\n" +
		"   Limit : constant Integer := 100;\n" +
		"   type Step_Type is range 1 .. 10;\n" +
		"end Counters;\n"
	res, _ := resolve(t, input)

	if res.Unit != scope.UnitPackage {
		t.Fatalf("expected package unit, got %v", res.Unit)
	}
	expectRole(t, res.Table, "Count", scope.RoleGlobal)
	expectRole(t, res.Table, "Limit", scope.RoleConstant)
	expectRole(t, res.Table, "Step_Type", scope.RoleType)

	for norm, sym := range res.Table.Symbols() {
		if sym.Role == scope.RoleParameter || sym.Role == scope.RoleLocal {
			t.Errorf("package unit produced %v for %s", sym.Role, norm)
		}
	}
}

func TestImplicitGlobalFromAssignment(t *testing.T) {
	input := "procedure P is\n" +
		"begin\n" +
		"   Hidden_State := 42;\n" +
		"end P;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "Hidden_State", scope.RoleGlobal)
}

func TestImplicitGlobalNeverBeatsDeclaration(t *testing.T) {
	input := "procedure P is\n" +
		"   Count : Integer := 0;\n" +
		"begin\n" +
		"   Count := 1;\n" +
		"end P;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "Count", scope.RoleLocal)
}

func TestUndeclaredReadStaysUnknown(t *testing.T) {
	// Only assignment targets are inferred; a name that is merely read
	// keeps no role at all.
	input := "procedure P is\n" +
		"begin\n" +
		"   Target := Source + 1;\n" +
		"end P;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "Target", scope.RoleGlobal)
	expectAbsent(t, res.Table, "Source")
}

func TestLoopVariable(t *testing.T) {
	input := "procedure P is\n" +
		"begin\n" +
		"   for I in 1 .. 10 loop\n" +
		"      null;\n" +
		"   end loop;\n" +
		"end P;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "I", scope.RoleLocal)
}

func TestLoopOverSubtypeMark(t *testing.T) {
	res, _ := resolve(t, "for I in Some_Type loop\nend loop;\n")

	expectRole(t, res.Table, "I", scope.RoleLocal)
	expectRole(t, res.Table, "Some_Type", scope.RoleType)
}

func TestLoopVariableDoesNotDowngradeType(t *testing.T) {
	input := "procedure P is\n" +
		"   type Day is range 1 .. 7;\n" +
		"begin\n" +
		"   for Day in 1 .. 7 loop\n" +
		"      null;\n" +
		"   end loop;\n" +
		"end P;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "Day", scope.RoleType)
}

func TestArrayElementTypeMark(t *testing.T) {
	input := "procedure P is\n" +
		"   Table : array (1 .. 10) of Cell_Type;\n" +
		"begin\n" +
		"   null;\n" +
		"end P;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "Table", scope.RoleLocal)
	expectRole(t, res.Table, "Cell_Type", scope.RoleType)
}

func TestNoUnitKeywordWarnsAndFallsBack(t *testing.T) {
	res, bag := resolve(t, "Index : Integer;\n")

	if !bag.HasWarnings() {
		t.Fatal("expected a warning for missing unit keyword")
	}
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.StructNoUnitKeyword {
			found = true
		}
	}
	if !found {
		t.Error("expected StructNoUnitKeyword diagnostic")
	}
	expectRole(t, res.Table, "Index", scope.RoleGlobal)
}

func TestNestedSubprogram(t *testing.T) {
	input := "procedure Outer is\n" +
		"   A : Integer;\n" +
		"   procedure Inner (X : in Integer) is\n" +
		"      B : Integer;\n" +
		"   begin\n" +
		"      B := X;\n" +
		"   end Inner;\n" +
		"begin\n" +
		"   A := 1;\n" +
		"end Outer;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "A", scope.RoleLocal)
	expectRole(t, res.Table, "B", scope.RoleLocal)
	expectRole(t, res.Table, "X", scope.RoleParameter)
}

func TestSpecOnlyHeaderKeepsGoing(t *testing.T) {
	input := "procedure Helper (N : in Integer);\n" +
		"procedure Main is\n" +
		"   V : Integer;\n" +
		"begin\n" +
		"   V := N;\n" +
		"end Main;\n"
	res, _ := resolve(t, input)

	expectRole(t, res.Table, "N", scope.RoleParameter)
	expectRole(t, res.Table, "V", scope.RoleLocal)
}

func TestMissingBeginWarns(t *testing.T) {
	input := "procedure P is\n" +
		"   X : Integer;\n"
	_, bag := resolve(t, input)

	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.StructMissingBegin {
			found = true
		}
	}
	if !found {
		t.Error("expected StructMissingBegin diagnostic")
	}
}
