package driver

import (
	"bytes"

	"adacase/internal/casing"
	"adacase/internal/classify"
	"adacase/internal/diag"
	"adacase/internal/lexer"
	"adacase/internal/rewrite"
	"adacase/internal/scope"
	"adacase/internal/source"
)

// NormalizeResult captures the outcome of normalizing a single file.
type NormalizeResult struct {
	Path     string
	FileID   source.FileID
	Unit     scope.UnitKind
	Output   []byte
	Changed  bool
	CacheHit bool
	Bag      *diag.Bag
}

// NormalizeContent runs the full single-file pipeline on loaded content:
// lex, classify, resolve scopes, rewrite. Each step consumes the complete
// output of the previous one; the implicit-global inference inside Resolve
// needs the whole file tabulated before the rewrite can start.
func NormalizeContent(file *source.File, bag *diag.Bag, rules *casing.Rules) ([]byte, scope.UnitKind) {
	return normalizeStages(file, bag, rules, NopSink{})
}

func normalizeStages(file *source.File, bag *diag.Bag, rules *casing.Rules, progress ProgressSink) ([]byte, scope.UnitKind) {
	reporter := diag.BagReporter{Bag: bag}

	progress.OnEvent(Event{Path: file.Path, Stage: StageLex})
	tokens := lexer.Tokens(file, lexer.Options{Reporter: reporter})
	lines := classify.Lines(tokens)

	progress.OnEvent(Event{Path: file.Path, Stage: StageResolve})
	res := scope.Resolve(lines, reporter)

	progress.OnEvent(Event{Path: file.Path, Stage: StageRewrite})
	out := rewrite.Apply(file, tokens, res.Table, rules)
	return out, res.Unit
}

// Normalize loads one file into the FileSet and normalizes it.
func Normalize(fileSet *source.FileSet, path string, maxDiagnostics int, rules *casing.Rules) NormalizeResult {
	bag := diag.NewBag(maxDiagnostics)

	fileID, err := fileSet.Load(path)
	if err != nil {
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return NormalizeResult{Path: path, Bag: bag}
	}

	file := fileSet.Get(fileID)
	out, unit := NormalizeContent(file, bag, rules)
	return NormalizeResult{
		Path:    path,
		FileID:  fileID,
		Unit:    unit,
		Output:  out,
		Changed: !bytes.Equal(file.Content, out),
		Bag:     bag,
	}
}
