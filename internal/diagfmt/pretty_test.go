package diagfmt_test

import (
	"strings"
	"testing"

	"adacase/internal/diag"
	"adacase/internal/diagfmt"
	"adacase/internal/source"
)

func TestPrettyGolden(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.ada", []byte("Count : Integer;\nRate : Float;\n"))

	bag := diag.NewBag(16)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unknown character",
		Primary:  source.Span{File: id, Start: 0, End: 5},
	})
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StructMissingBegin,
		Message:  "declarative region is never closed by 'begin'",
		Primary:  source.Span{File: id, Start: 17, End: 21},
	})

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{
		Color:    false,
		Context:  0,
		PathMode: diagfmt.PathModeBasename,
	})

	want := "sample.ada:1:1: ERROR [LEX1001]: unknown character\n" +
		"    1 | Count : Integer;\n" +
		"      | ^~~~~\n" +
		"sample.ada:2:1: WARNING [STR2002]: declarative region is never closed by 'begin'\n" +
		"    2 | Rate : Float;\n" +
		"      | ^~~~\n"
	if got := b.String(); got != want {
		t.Errorf("unexpected pretty output:\nwant:\n%s\ngot:\n%s", want, got)
	}
}

func TestPrettyZeroSpan(t *testing.T) {
	fs := source.NewFileSet()
	fs.AddVirtual("sample.ada", []byte("X : Integer;\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.StructNoUnitKeyword,
		Message:  "treating whole file as file-global scope",
	})

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{})

	want := "<input>: WARNING [STR2001]: treating whole file as file-global scope\n"
	if got := b.String(); got != want {
		t.Errorf("zero-span diagnostic:\nwant: %q\ngot:  %q", want, got)
	}
}

func TestPrettyShowsNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("sample.ada", []byte("Count : Integer;\n"))

	bag := diag.NewBag(4)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevError,
		Code:     diag.LexUnknownChar,
		Message:  "unknown character",
		Primary:  source.Span{File: id, Start: 0, End: 5},
		Notes: []diag.Note{
			{Span: source.Span{File: id, Start: 8, End: 15}, Msg: "type mark here"},
		},
	})

	var b strings.Builder
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{
		Context:   0,
		PathMode:  diagfmt.PathModeBasename,
		ShowNotes: true,
	})

	out := b.String()
	if !strings.Contains(out, "sample.ada:1:9: note: type mark here") {
		t.Errorf("missing note line in output:\n%s", out)
	}

	// Without ShowNotes the note must not render.
	b.Reset()
	diagfmt.Pretty(&b, bag, fs, diagfmt.PrettyOpts{
		Context:  0,
		PathMode: diagfmt.PathModeBasename,
	})
	if strings.Contains(b.String(), "note:") {
		t.Error("notes rendered without ShowNotes")
	}
}
