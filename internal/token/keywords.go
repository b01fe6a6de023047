package token

import "strings"

var keywords = map[string]Kind{
	"abort":     KwAbort,
	"abs":       KwAbs,
	"accept":    KwAccept,
	"access":    KwAccess,
	"all":       KwAll,
	"and":       KwAnd,
	"array":     KwArray,
	"at":        KwAt,
	"begin":     KwBegin,
	"body":      KwBody,
	"case":      KwCase,
	"constant":  KwConstant,
	"declare":   KwDeclare,
	"delay":     KwDelay,
	"delta":     KwDelta,
	"digits":    KwDigits,
	"do":        KwDo,
	"else":      KwElse,
	"elsif":     KwElsif,
	"end":       KwEnd,
	"entry":     KwEntry,
	"exception": KwException,
	"exit":      KwExit,
	"for":       KwFor,
	"function":  KwFunction,
	"generic":   KwGeneric,
	"goto":      KwGoto,
	"if":        KwIf,
	"in":        KwIn,
	"is":        KwIs,
	"limited":   KwLimited,
	"loop":      KwLoop,
	"mod":       KwMod,
	"new":       KwNew,
	"not":       KwNot,
	"null":      KwNull,
	"of":        KwOf,
	"or":        KwOr,
	"others":    KwOthers,
	"out":       KwOut,
	"package":   KwPackage,
	"pragma":    KwPragma,
	"private":   KwPrivate,
	"procedure": KwProcedure,
	"raise":     KwRaise,
	"range":     KwRange,
	"record":    KwRecord,
	"rem":       KwRem,
	"renames":   KwRenames,
	"return":    KwReturn,
	"reverse":   KwReverse,
	"select":    KwSelect,
	"separate":  KwSeparate,
	"subtype":   KwSubtype,
	"task":      KwTask,
	"terminate": KwTerminate,
	"then":      KwThen,
	"type":      KwType,
	"use":       KwUse,
	"when":      KwWhen,
	"while":     KwWhile,
	"with":      KwWith,
	"xor":       KwXor,
}

// LookupKeyword returns the keyword kind for an identifier spelling.
// Ada reserved words are case-insensitive: Begin, BEGIN, and begin all match.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}
