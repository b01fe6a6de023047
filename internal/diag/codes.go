package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexBadNumber          Code = 1003
	LexBadCharLit         Code = 1004

	// Structural heuristics. Always warnings: a file that confuses the
	// classifier still produces best-effort output.
	StructInfo              Code = 2000
	StructNoUnitKeyword     Code = 2001
	StructMissingBegin      Code = 2002
	StructUnclosedParamList Code = 2003
	StructUnmatchedEnd      Code = 2004

	// I/O
	IOInfo           Code = 4000
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
	IOCreateDirError Code = 4003
	IOCacheError     Code = 4004
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	LexInfo:               "lexical info",
	LexUnknownChar:        "unknown character",
	LexUnterminatedString: "unterminated string literal",
	LexBadNumber:          "malformed numeric literal",
	LexBadCharLit:         "malformed character literal",

	StructInfo:              "structural info",
	StructNoUnitKeyword:     "no package, procedure, or function keyword found",
	StructMissingBegin:      "subprogram has no begin; declarative region unterminated",
	StructUnclosedParamList: "parameter list is never closed",
	StructUnmatchedEnd:      "end without matching begin",

	IOInfo:           "I/O info",
	IOLoadFileError:  "failed to read input file",
	IOWriteFileError: "failed to write output file",
	IOCreateDirError: "failed to create output directory",
	IOCacheError:     "disk cache failure",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
