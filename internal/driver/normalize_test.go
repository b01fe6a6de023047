package driver_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"adacase/internal/casing"
	"adacase/internal/diag"
	"adacase/internal/driver"
	"adacase/internal/scope"
	"adacase/internal/source"
	"adacase/internal/testkit"
)

func normalizeContent(t *testing.T, input string) string {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ada", []byte(input)))
	bag := diag.NewBag(64)
	out, _ := driver.NormalizeContent(file, bag, casing.NewRules(nil))
	return string(out)
}

func TestPipelineScenarios(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "package declaration",
			input: "Index : Integer;\n",
			want:  "INDEX : INTEGER;\n",
		},
		{
			name:  "constant",
			input: "Rate : constant Float := 1.5;\n",
			want:  "RATE : constant FLOAT := 1.5;\n",
		},
		{
			name:  "parameter",
			input: "procedure P (Count : in Integer);\n",
			want:  "procedure P (count : in INTEGER);\n",
		},
		{
			name:  "loop header",
			input: "for I in Some_Type loop\nend loop;\n",
			want:  "for i in SOME_TYPE loop\nend loop;\n",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := normalizeContent(t, tc.input)
			if got != tc.want {
				t.Errorf("want:\n%s\ngot:\n%s", tc.want, got)
			}
		})
	}
}

func TestPipelineIdempotent(t *testing.T) {
	inputs := []string{
		"Index : Integer;\n",
		"Rate : constant Float := 1.5;\n",
		"Global_Count : Integer := 0;\n" +
			"procedure Process is\n" +
			"   Index : Integer := 1;\n" +
			"begin\n" +
			"   Global_Count := Global_Count + Index;\n" +
			"end Process;\n",
	}
	for _, input := range inputs {
		err := testkit.CheckIdempotent(func(in []byte) []byte {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("test.ada", in))
			bag := diag.NewBag(64)
			out, _ := driver.NormalizeContent(file, bag, casing.NewRules(nil))
			return out
		}, []byte(input))
		if err != nil {
			t.Error(err)
		}
	}
}

func TestPipelinePreservesStructure(t *testing.T) {
	input := "procedure P is\n" +
		"   Max : constant Integer := 10; -- the Limit\n" +
		"   Msg : String := \"Max is 10\";\n" +
		"begin\n" +
		"   null;\n" +
		"end P;\n"

	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.ada", []byte(input)))
	bag := diag.NewBag(64)
	out, _ := driver.NormalizeContent(file, bag, casing.NewRules(nil))

	if err := testkit.CheckRewriteInvariants([]byte(input), out); err != nil {
		t.Error(err)
	}
}

func TestPipelineKeepsCRLFVerbatim(t *testing.T) {
	input := "Index : Integer; -- the Count\r\n" +
		"Msg : String := \"Index\";\r\n"
	want := "INDEX : INTEGER; -- the Count\r\n" +
		"MSG : STRING := \"Index\";\r\n"

	got := normalizeContent(t, input)
	if got != want {
		t.Errorf("CRLF input:\nwant: %q\ngot:  %q", want, got)
	}
	if err := testkit.CheckRewriteInvariants([]byte(input), []byte(got)); err != nil {
		t.Error(err)
	}
}

func TestUnitKindReported(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("pkg.ada", []byte("package Stack is\nend Stack;\n")))
	bag := diag.NewBag(64)
	_, unit := driver.NormalizeContent(file, bag, casing.NewRules(nil))
	if unit != scope.UnitPackage {
		t.Errorf("expected package unit, got %v", unit)
	}

	file = fs.Get(fs.AddVirtual("proc.ada", []byte("procedure Main is\nbegin\n   null;\nend Main;\n")))
	bag = diag.NewBag(64)
	_, unit = driver.NormalizeContent(file, bag, casing.NewRules(nil))
	if unit != scope.UnitSubprogram {
		t.Errorf("expected subprogram unit, got %v", unit)
	}
}

func TestNormalizeDirWritesOutputs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ada"), "Index : Integer;\n")
	writeFile(t, filepath.Join(dir, "b.ada"), "Rate : constant Float := 1.5;\n")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not ada\n")

	_, results, err := driver.NormalizeDir(context.Background(), dir, driver.DirOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}

	outA := readFile(t, filepath.Join(dir, driver.DefaultOutDirName, "a.ada"))
	if outA != "INDEX : INTEGER;\n" {
		t.Errorf("a.ada output: got %q", outA)
	}
	outB := readFile(t, filepath.Join(dir, driver.DefaultOutDirName, "b.ada"))
	if outB != "RATE : constant FLOAT := 1.5;\n" {
		t.Errorf("b.ada output: got %q", outB)
	}

	// Inputs stay byte-identical.
	if got := readFile(t, filepath.Join(dir, "a.ada")); got != "Index : Integer;\n" {
		t.Errorf("input file was modified: %q", got)
	}
}

func TestNormalizeDirSkipsOutputDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ada"), "Index : Integer;\n")

	// First run populates the output directory.
	if _, _, err := driver.NormalizeDir(context.Background(), dir, driver.DirOptions{Recursive: true}); err != nil {
		t.Fatal(err)
	}
	// Second recursive run must not pick up the first run's outputs.
	_, results, err := driver.NormalizeDir(context.Background(), dir, driver.DirOptions{Recursive: true})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
}

func TestNormalizeDirEmitsEvents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.ada"), "Index : Integer;\n")

	events := make(chan driver.Event, 64)
	_, _, err := driver.NormalizeDir(context.Background(), dir, driver.DirOptions{
		Progress: driver.ChannelSink{Ch: events},
	})
	if err != nil {
		t.Fatal(err)
	}
	close(events)

	seen := make(map[driver.Stage]bool)
	for ev := range events {
		seen[ev.Stage] = true
	}
	for _, want := range []driver.Stage{driver.StageQueued, driver.StageLex, driver.StageDone} {
		if !seen[want] {
			t.Errorf("missing %s event", want)
		}
	}
}

func TestNormalizeSingleFileLoadError(t *testing.T) {
	fs := source.NewFileSet()
	res := driver.Normalize(fs, "/does/not/exist.ada", 16, casing.NewRules(nil))
	if !res.Bag.HasErrors() {
		t.Fatal("expected a load error diagnostic")
	}
	if res.Bag.Items()[0].Code != diag.IOLoadFileError {
		t.Errorf("expected IOLoadFileError, got %v", res.Bag.Items()[0].Code.ID())
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return string(data)
}
