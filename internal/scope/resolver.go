package scope

import (
	"adacase/internal/classify"
	"adacase/internal/diag"
	"adacase/internal/source"
	"adacase/internal/token"
)

// UnitKind is derived once per file from the first header keyword and never
// re-derived mid-file.
type UnitKind uint8

const (
	// UnitPackage is a package spec or body: every declaration is file-global.
	UnitPackage UnitKind = iota
	// UnitSubprogram is a standalone procedure/function file.
	UnitSubprogram
)

func (k UnitKind) String() string {
	if k == UnitPackage {
		return "PACKAGE"
	}
	return "SUBPROGRAM"
}

// Result is the finalized outcome of scope resolution for one file.
type Result struct {
	Unit  UnitKind
	Table *Table
}

type state uint8

const (
	stTopLevel state = iota
	stHeader
	stDecls
	stBody
)

type declMode uint8

const (
	declGlobal declMode = iota
	declLocal
)

// frame tracks one entered subprogram: its declarative region and body.
type frame struct {
	inBody     bool
	beginDepth int
}

type resolver struct {
	table    *Table
	reporter diag.Reporter

	st          state
	header      []token.Token
	headerAfter state // state to resume when a header turns out to be spec-only
	stack       []frame
}

// Resolve walks the tagged lines in order and produces the role table.
//
// The walk is a finite-state machine over line tags: top-level declarations
// are file-global, parameter lists yield PARAMETER, the region between a
// subprogram's 'is' and its 'begin' yields LOCAL, 'for' headers yield the
// loop variable as LOCAL, and type/subtype declarations yield TYPE anywhere.
// After the declaration passes, assignment targets with no recorded role are
// inserted as implicit external globals. Structural surprises degrade to the
// most permissive assignment; resolution never fails.
func Resolve(lines []classify.LogicalLine, reporter diag.Reporter) *Result {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	r := &resolver{table: NewTable(), reporter: reporter}

	unit, found := detectUnit(lines)
	if !found {
		reporter.Report(diag.StructNoUnitKeyword, diag.SevWarning, source.Span{},
			"treating whole file as file-global scope", nil)
		// Soft fallback: no header anywhere, everything is file-global
		// except loop variables, which stay local.
		for _, ln := range lines {
			if ln.Tag == classify.TagForLoopHeader {
				r.declareLoopVar(ln.Tokens)
				continue
			}
			r.collectDecl(ln.Tokens, declGlobal)
		}
		return &Result{Unit: unit, Table: r.table}
	}

	if unit == UnitPackage {
		// Package units have no PARAMETER or LOCAL roles by rule.
		for _, ln := range lines {
			r.collectDecl(ln.Tokens, declGlobal)
		}
		return &Result{Unit: unit, Table: r.table}
	}

	for _, ln := range lines {
		r.feedLine(ln)
	}
	if len(r.stack) > 0 && !r.stack[len(r.stack)-1].inBody {
		reporter.Report(diag.StructMissingBegin, diag.SevWarning, source.Span{},
			"declarative region is never closed by 'begin'", nil)
	}

	// Implicit externals: assignment targets that no declaration pass
	// claimed. Must run last; it depends on knowing what was not declared.
	for _, ln := range lines {
		toks := ln.Tokens
		if len(toks) >= 2 && toks[0].Kind == token.Ident && toks[1].Kind == token.Assign {
			r.table.DeclareIfAbsent(toks[0].Text, RoleGlobal, ScopeFileGlobal)
		}
	}

	return &Result{Unit: unit, Table: r.table}
}

// detectUnit finds the first header line; package wins over subprogram only
// by appearing first.
func detectUnit(lines []classify.LogicalLine) (UnitKind, bool) {
	for _, ln := range lines {
		switch ln.Tag {
		case classify.TagPackageHeader:
			return UnitPackage, true
		case classify.TagSubprogramHeader:
			return UnitSubprogram, true
		}
	}
	return UnitSubprogram, false
}

func (r *resolver) feedLine(ln classify.LogicalLine) {
	switch ln.Tag {
	case classify.TagContext, classify.TagOther:
		return
	}

	switch r.st {
	case stTopLevel:
		switch ln.Tag {
		case classify.TagSubprogramHeader:
			r.startHeader(ln.Tokens, stTopLevel)
		case classify.TagDeclaration:
			r.collectDecl(ln.Tokens, declGlobal)
		case classify.TagForLoopHeader:
			r.declareLoopVar(ln.Tokens)
		}

	case stHeader:
		r.feedHeader(ln.Tokens)

	case stDecls:
		switch ln.Tag {
		case classify.TagBegin:
			top := &r.stack[len(r.stack)-1]
			top.inBody = true
			top.beginDepth = 1
			r.st = stBody
		case classify.TagDeclaration:
			r.collectDecl(ln.Tokens, declLocal)
		case classify.TagSubprogramHeader:
			r.startHeader(ln.Tokens, stDecls)
		case classify.TagForLoopHeader:
			r.declareLoopVar(ln.Tokens)
		case classify.TagEnd:
			// end of an enclosing unit without a begin we recognized
			if isBodyEnd(ln.Tokens) {
				r.popFrame()
			}
		}

	case stBody:
		switch ln.Tag {
		case classify.TagBegin:
			r.stack[len(r.stack)-1].beginDepth++
		case classify.TagEnd:
			if !isBodyEnd(ln.Tokens) {
				return // end loop / end if / end case / end record
			}
			top := &r.stack[len(r.stack)-1]
			top.beginDepth--
			if top.beginDepth <= 0 {
				r.popFrame()
			}
		case classify.TagForLoopHeader:
			r.declareLoopVar(ln.Tokens)
		}
	}
}

// startHeader begins collecting a subprogram header. after is the state to
// resume if the header closes with ';' (a spec with no body).
func (r *resolver) startHeader(toks []token.Token, after state) {
	r.header = r.header[:0]
	r.headerAfter = after
	r.st = stHeader
	r.feedHeader(toks)
}

// feedHeader accumulates header tokens until 'is' or ';' outside the
// parameter parens decides where the header ends.
func (r *resolver) feedHeader(toks []token.Token) {
	r.header = append(r.header, toks...)

	depth := 0
	for _, t := range r.header {
		switch t.Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
		case token.KwIs:
			if depth == 0 {
				r.processHeader(r.header)
				r.stack = append(r.stack, frame{})
				r.st = stDecls
				return
			}
		case token.Semicolon:
			if depth == 0 {
				r.processHeader(r.header)
				r.st = r.headerAfter
				return
			}
		}
	}
	// still inside the header; keep collecting
}

// processHeader tabulates parameters and type marks of a completed header.
// Parameter names become PARAMETER, their type marks and the return type
// become TYPE. The subprogram's own name is deliberately not recorded.
func (r *resolver) processHeader(toks []token.Token) {
	depth := 0
	var group []token.Token
	flushGroup := func() {
		r.collectParamGroup(group)
		group = group[:0]
	}
	for i := 0; i < len(toks); i++ {
		t := toks[i]
		switch t.Kind {
		case token.LParen:
			depth++
			if depth == 1 {
				continue
			}
		case token.RParen:
			depth--
			if depth == 0 {
				flushGroup()
				continue
			}
		case token.Semicolon:
			if depth == 1 {
				flushGroup()
				continue
			}
		case token.KwReturn:
			if depth == 0 && i+1 < len(toks) && toks[i+1].Kind == token.Ident {
				r.table.Declare(toks[i+1].Text, RoleType, ScopeFileGlobal)
			}
		}
		if depth >= 1 {
			group = append(group, t)
		}
	}
}

// collectParamGroup handles one 'A, B : in out T := default' group.
func (r *resolver) collectParamGroup(toks []token.Token) {
	names, rest := splitNamesAtColon(toks)
	for _, n := range names {
		r.table.Declare(n, RoleParameter, ScopeParameterList)
	}
	if mark, ok := typeMarkAfterColon(rest); ok {
		r.table.Declare(mark, RoleType, ScopeFileGlobal)
	}
}

// collectDecl tabulates one declaration line in the given mode.
// Recognized shapes mirror the heuristics exactly:
//
//	type T is ... / subtype T is ...         -> T TYPE
//	A, B : constant T := ...;                -> A, B CONSTANT; T TYPE
//	C : T;                                   -> C GLOBAL or LOCAL; T TYPE
//	... array (...) of E                     -> E TYPE
//	function ... return T                    -> T TYPE
//
// Anything else contributes nothing.
func (r *resolver) collectDecl(toks []token.Token, mode declMode) {
	if len(toks) == 0 {
		return
	}

	scope := ScopeFileGlobal
	if mode == declLocal {
		scope = ScopeSubprogramLocal
	}

	switch toks[0].Kind {
	case token.KwType, token.KwSubtype:
		if len(toks) >= 2 && toks[1].Kind == token.Ident {
			r.table.Declare(toks[1].Text, RoleType, scope)
		}
		r.collectTypeMarks(toks)
		return
	case token.Ident:
		names, rest := splitNamesAtColon(toks)
		if len(names) == 0 {
			return
		}
		isConst := false
		for _, t := range rest {
			if t.Kind == token.KwConstant {
				isConst = true
				break
			}
		}
		role := RoleGlobal
		if mode == declLocal {
			role = RoleLocal
		}
		if isConst {
			role = RoleConstant
		}
		for _, n := range names {
			r.table.Declare(n, role, scope)
		}
		r.collectTypeMarks(toks)
	}
}

// collectTypeMarks records type names used in a declaration line: after the
// first colon, after 'of' when the line declares an array, and after
// 'return'.
func (r *resolver) collectTypeMarks(toks []token.Token) {
	if mark, ok := firstTypeMark(toks); ok {
		r.table.Declare(mark, RoleType, ScopeFileGlobal)
	}

	hasArray := false
	for _, t := range toks {
		if t.Kind == token.KwArray {
			hasArray = true
			break
		}
	}
	if hasArray {
		for i, t := range toks {
			if t.Kind == token.KwOf && i+1 < len(toks) && toks[i+1].Kind == token.Ident {
				r.table.Declare(toks[i+1].Text, RoleType, ScopeFileGlobal)
				break
			}
		}
	}

	for i, t := range toks {
		if t.Kind == token.KwReturn && i+1 < len(toks) && toks[i+1].Kind == token.Ident {
			r.table.Declare(toks[i+1].Text, RoleType, ScopeFileGlobal)
			break
		}
	}
}

// declareLoopVar records the variable of a 'for <name> in ... loop' header.
// Priority keeps TYPE and CONSTANT intact but overrides GLOBAL. A lone name
// after 'in' is a subtype mark ('for I in Some_Type loop') and becomes TYPE;
// literal ranges contribute nothing.
func (r *resolver) declareLoopVar(toks []token.Token) {
	if len(toks) < 2 || toks[0].Kind != token.KwFor || toks[1].Kind != token.Ident {
		return
	}
	r.table.Declare(toks[1].Text, RoleLocal, ScopeLoopLocal)

	for i, t := range toks {
		if t.Kind != token.KwIn {
			continue
		}
		j := i + 1
		if j < len(toks) && toks[j].Kind == token.KwReverse {
			j++
		}
		if j+1 < len(toks) && toks[j].Kind == token.Ident && toks[j+1].Kind == token.KwLoop {
			r.table.Declare(toks[j].Text, RoleType, ScopeFileGlobal)
		}
		break
	}
}

func (r *resolver) popFrame() {
	if len(r.stack) == 0 {
		r.st = stTopLevel
		return
	}
	r.stack = r.stack[:len(r.stack)-1]
	if len(r.stack) == 0 {
		r.st = stTopLevel
		return
	}
	if r.stack[len(r.stack)-1].inBody {
		r.st = stBody
	} else {
		r.st = stDecls
	}
}

// isBodyEnd reports whether an 'end' line closes a begin..end body rather
// than a loop, conditional, case, select, or record.
func isBodyEnd(toks []token.Token) bool {
	if len(toks) < 2 {
		return true // bare 'end' or 'end;'
	}
	switch toks[1].Kind {
	case token.KwLoop, token.KwIf, token.KwCase, token.KwSelect, token.KwRecord:
		return false
	}
	return true
}

// splitNamesAtColon parses 'A, B, C : rest' and returns the names and the
// tokens after the colon. No colon (or a malformed prefix) yields no names.
func splitNamesAtColon(toks []token.Token) (names []string, rest []token.Token) {
	i := 0
	for i < len(toks) {
		if toks[i].Kind != token.Ident {
			return nil, nil
		}
		names = append(names, toks[i].Text)
		i++
		if i < len(toks) && toks[i].Kind == token.Comma {
			i++
			continue
		}
		break
	}
	if i >= len(toks) || toks[i].Kind != token.Colon {
		return nil, nil
	}
	return names, toks[i+1:]
}

// typeMarkAfterColon finds the type name after a colon, skipping the
// 'constant', 'in', and 'out' modifiers.
func typeMarkAfterColon(rest []token.Token) (string, bool) {
	for _, t := range rest {
		switch t.Kind {
		case token.KwConstant, token.KwIn, token.KwOut:
			continue
		case token.Ident:
			return t.Text, true
		default:
			return "", false
		}
	}
	return "", false
}

// firstTypeMark finds the first colon in the line and resolves its type mark.
func firstTypeMark(toks []token.Token) (string, bool) {
	for i, t := range toks {
		if t.Kind == token.Colon {
			return typeMarkAfterColon(toks[i+1:])
		}
	}
	return "", false
}
