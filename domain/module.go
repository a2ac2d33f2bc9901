package domain

// Import represents one script-module import declaration found in a QML
// document: import "<file>" as <Alias>
type Import struct {
	// File is the path exactly as written in the declaration, usually
	// relative to the importing document's directory
	File string `json:"file"`

	// Alias is the identifier the module is bound to
	Alias string `json:"alias"`
}

// ParamDoc represents one @param annotation from a documentation block
type ParamDoc struct {
	// Type is the declared parameter type, "any" when not annotated
	Type string `json:"type"`

	// Name is the documented parameter name
	Name string `json:"name"`

	// Description is the free-text description, empty when absent
	Description string `json:"description"`
}

// FunctionInfo represents one top-level function declaration in a script
// file. Params comes from the declaration signature while ParamDocs comes
// from the documentation block; the two are exposed independently and may
// disagree in count or order.
type FunctionInfo struct {
	// Name is the declared function name
	Name string `json:"name"`

	// Params are the raw parameter names from the signature, in order
	Params []string `json:"params"`

	// ParamDocs are the documented parameters, in documentation order
	ParamDocs []ParamDoc `json:"param_docs,omitempty"`

	// ReturnType is the documented return type, "any" when undocumented
	ReturnType string `json:"return_type"`

	// Documentation is the free-text description, empty when undocumented
	Documentation string `json:"documentation,omitempty"`
}

// JsFileMatch represents one auto-import candidate matching a typed
// identifier
type JsFileMatch struct {
	// Path is the absolute path of the candidate script file
	Path string `json:"path"`

	// Alias is the suggested alias derived from the file name
	Alias string `json:"alias"`

	// RelativePath is the path relative to the importing document's
	// directory, prefixed "./" when not already relative
	RelativePath string `json:"relative_path"`
}

// ImportInsertionPoint describes where and how a new script import line is
// spliced into markup text without breaking existing blank-line conventions
type ImportInsertionPoint struct {
	// Line is the zero-based line the new import is inserted at
	Line int `json:"line"`

	// NeedsBlankLine requests a blank line before the new import
	NeedsBlankLine bool `json:"needs_blank_line"`

	// NeedsTrailingBlankLine requests a blank line after the new import
	NeedsTrailingBlankLine bool `json:"needs_trailing_blank_line"`
}

// Reference represents one usage of an imported script function inside a
// markup document
type Reference struct {
	// File is the absolute path of the markup document
	File string `json:"file"`

	// Line is the one-based line number of the usage
	Line int `json:"line"`

	// Column is the one-based column of the usage
	Column int `json:"column"`

	// Text is the trimmed source line containing the usage
	Text string `json:"text"`
}

// FileFunctions groups the function records extracted from one script file
type FileFunctions struct {
	// Path is the absolute path of the script file
	Path string `json:"path"`

	// Functions are the declarations in file order
	Functions []FunctionInfo `json:"functions"`
}

// BoolPtr returns a pointer to the given bool value
func BoolPtr(b bool) *bool {
	return &b
}
