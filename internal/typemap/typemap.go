// Package typemap maps documentation-declared type names to the normalized
// display vocabulary shown to editor consumers.
package typemap

// Fallback is returned for every type name outside the fixed table.
const Fallback = "any"

// displayTypes is the fixed documentation-type to display-type table.
var displayTypes = map[string]string{
	"string":   "string",
	"number":   "number",
	"int":      "int",
	"double":   "double",
	"boolean":  "bool",
	"bool":     "bool",
	"Object":   "object",
	"Array":    "array",
	"Function": "function",
	"color":    "color",
	"var":      "var",
	"any":      "any",
}

// Normalize returns the display type for a documentation type name, falling
// back to "any" for unknown names.
func Normalize(docType string) string {
	if display, ok := displayTypes[docType]; ok {
		return display
	}
	return Fallback
}

// Known reports whether the type name is part of the fixed vocabulary.
func Known(docType string) bool {
	_, ok := displayTypes[docType]
	return ok
}
