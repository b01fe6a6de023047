package driver

import (
	"adacase/internal/diag"
	"adacase/internal/lexer"
	"adacase/internal/source"
	"adacase/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads one file and returns its full token stream including EOF.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	adapter := &lexer.ReporterAdapter{Bag: bag}
	tokens := lexer.Tokens(file, lexer.Options{Reporter: adapter.Reporter()})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}, nil
}
