package classify_test

import (
	"testing"

	"adacase/internal/classify"
	"adacase/internal/diag"
	"adacase/internal/lexer"
	"adacase/internal/source"
)

func linesOf(t *testing.T, input string) []classify.LogicalLine {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ada", []byte(input)))
	tokens := lexer.Tokens(file, lexer.Options{Reporter: diag.NopReporter{}})
	return classify.Lines(tokens)
}

func expectTags(t *testing.T, input string, expected []classify.Tag) {
	t.Helper()
	lines := linesOf(t, input)
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d\ninput:\n%s", len(expected), len(lines), input)
	}
	for i, ln := range lines {
		if ln.Tag != expected[i] {
			t.Errorf("line %d: expected %v, got %v (tokens: %d)", i, expected[i], ln.Tag, len(ln.Tokens))
		}
	}
}

func TestTagBasicLines(t *testing.T) {
	expectTags(t, "with Ada.Text_IO;", []classify.Tag{classify.TagContext})
	expectTags(t, "use Ada.Text_IO;", []classify.Tag{classify.TagContext})
	expectTags(t, "package Stack is", []classify.Tag{classify.TagPackageHeader})
	expectTags(t, "procedure Main is", []classify.Tag{classify.TagSubprogramHeader})
	expectTags(t, "function Top return Integer;", []classify.Tag{classify.TagSubprogramHeader})
	expectTags(t, "begin", []classify.Tag{classify.TagBegin})
	expectTags(t, "end Main;", []classify.Tag{classify.TagEnd})
	expectTags(t, "is", []classify.Tag{classify.TagIs})
}

func TestTagDeclarations(t *testing.T) {
	expectTags(t, "Index : Integer;", []classify.Tag{classify.TagDeclaration})
	expectTags(t, "A, B, C : Float := 0.0;", []classify.Tag{classify.TagDeclaration})
	expectTags(t, "type Day is (Mon, Tue);", []classify.Tag{classify.TagDeclaration})
	expectTags(t, "subtype Weekday is Day range Mon .. Fri;", []classify.Tag{classify.TagDeclaration})
}

func TestTagStatements(t *testing.T) {
	expectTags(t, "X := X + 1;", []classify.Tag{classify.TagStatement})
	expectTags(t, "Put_Line (\"hi\");", []classify.Tag{classify.TagStatement})
	expectTags(t, "if X > 0 then", []classify.Tag{classify.TagStatement})
	expectTags(t, "return X;", []classify.Tag{classify.TagStatement})
}

func TestForLoopVersusRepClause(t *testing.T) {
	expectTags(t, "for I in 1 .. 10 loop", []classify.Tag{classify.TagForLoopHeader})
	expectTags(t, "for Day_Type use (Mon => 0);", []classify.Tag{classify.TagStatement})
}

func TestMultiLineParamList(t *testing.T) {
	input := "procedure Copy (Src : in Integer;\n" +
		"                Dst : out Integer) is\n" +
		"begin\n" +
		"end Copy;\n"
	expectTags(t, input, []classify.Tag{
		classify.TagSubprogramHeader,
		classify.TagParamList,
		classify.TagBegin,
		classify.TagEnd,
	})
}

func TestCommentOnlyLinesVanish(t *testing.T) {
	input := "-- header comment\n" +
		"X : Integer;\n" +
		"-- trailing comment\n"
	lines := linesOf(t, input)
	if len(lines) != 1 {
		t.Fatalf("expected 1 logical line, got %d", len(lines))
	}
	if lines[0].Tag != classify.TagDeclaration {
		t.Errorf("expected TagDeclaration, got %v", lines[0].Tag)
	}
	if lines[0].Line != 2 {
		t.Errorf("expected line number 2, got %d", lines[0].Line)
	}
}

func TestLineNumbersSurviveBlankLines(t *testing.T) {
	input := "X : Integer;\n\n\nY : Integer;\n"
	lines := linesOf(t, input)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Line != 1 || lines[1].Line != 4 {
		t.Errorf("expected lines 1 and 4, got %d and %d", lines[0].Line, lines[1].Line)
	}
}
