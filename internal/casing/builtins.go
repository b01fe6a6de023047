package casing

// builtinTypes are the predefined Ada scalar/array type names. They are
// treated as TYPE in any file, declared or not, so 'Integer' uppercases even
// when the file never mentions package Standard.
var builtinTypes = map[string]bool{
	"integer":        true,
	"natural":        true,
	"positive":       true,
	"float":          true,
	"long_float":     true,
	"short_float":    true,
	"long_integer":   true,
	"short_integer":  true,
	"boolean":        true,
	"character":      true,
	"wide_character": true,
	"string":         true,
	"wide_string":    true,
	"duration":       true,
}
