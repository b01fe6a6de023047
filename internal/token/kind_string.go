package token

var kindNames = [...]string{
	Invalid:     "Invalid",
	EOF:         "EOF",
	Ident:       "Ident",
	KwAbort:     "KwAbort",
	KwAbs:       "KwAbs",
	KwAccept:    "KwAccept",
	KwAccess:    "KwAccess",
	KwAll:       "KwAll",
	KwAnd:       "KwAnd",
	KwArray:     "KwArray",
	KwAt:        "KwAt",
	KwBegin:     "KwBegin",
	KwBody:      "KwBody",
	KwCase:      "KwCase",
	KwConstant:  "KwConstant",
	KwDeclare:   "KwDeclare",
	KwDelay:     "KwDelay",
	KwDelta:     "KwDelta",
	KwDigits:    "KwDigits",
	KwDo:        "KwDo",
	KwElse:      "KwElse",
	KwElsif:     "KwElsif",
	KwEnd:       "KwEnd",
	KwEntry:     "KwEntry",
	KwException: "KwException",
	KwExit:      "KwExit",
	KwFor:       "KwFor",
	KwFunction:  "KwFunction",
	KwGeneric:   "KwGeneric",
	KwGoto:      "KwGoto",
	KwIf:        "KwIf",
	KwIn:        "KwIn",
	KwIs:        "KwIs",
	KwLimited:   "KwLimited",
	KwLoop:      "KwLoop",
	KwMod:       "KwMod",
	KwNew:       "KwNew",
	KwNot:       "KwNot",
	KwNull:      "KwNull",
	KwOf:        "KwOf",
	KwOr:        "KwOr",
	KwOthers:    "KwOthers",
	KwOut:       "KwOut",
	KwPackage:   "KwPackage",
	KwPragma:    "KwPragma",
	KwPrivate:   "KwPrivate",
	KwProcedure: "KwProcedure",
	KwRaise:     "KwRaise",
	KwRange:     "KwRange",
	KwRecord:    "KwRecord",
	KwRem:       "KwRem",
	KwRenames:   "KwRenames",
	KwReturn:    "KwReturn",
	KwReverse:   "KwReverse",
	KwSelect:    "KwSelect",
	KwSeparate:  "KwSeparate",
	KwSubtype:   "KwSubtype",
	KwTask:      "KwTask",
	KwTerminate: "KwTerminate",
	KwThen:      "KwThen",
	KwType:      "KwType",
	KwUse:       "KwUse",
	KwWhen:      "KwWhen",
	KwWhile:     "KwWhile",
	KwWith:      "KwWith",
	KwXor:       "KwXor",
	NumberLit:   "NumberLit",
	StringLit:   "StringLit",
	CharLit:     "CharLit",
	Plus:        "Plus",
	Minus:       "Minus",
	Star:        "Star",
	StarStar:    "StarStar",
	Slash:       "Slash",
	Amp:         "Amp",
	Eq:          "Eq",
	Ne:          "Ne",
	Lt:          "Lt",
	LtEq:        "LtEq",
	Gt:          "Gt",
	GtEq:        "GtEq",
	Assign:      "Assign",
	Arrow:       "Arrow",
	Colon:       "Colon",
	Semicolon:   "Semicolon",
	Comma:       "Comma",
	Dot:         "Dot",
	DotDot:      "DotDot",
	Tick:        "Tick",
	Pipe:        "Pipe",
	LtLt:        "LtLt",
	GtGt:        "GtGt",
	Box:         "Box",
	LParen:      "LParen",
	RParen:      "RParen",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
