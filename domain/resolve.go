package domain

// OutputFormat represents the output format for results
type OutputFormat string

const (
	// OutputFormatText outputs human-readable text
	OutputFormatText OutputFormat = "text"

	// OutputFormatJSON outputs JSON
	OutputFormatJSON OutputFormat = "json"

	// OutputFormatYAML outputs YAML
	OutputFormatYAML OutputFormat = "yaml"
)

// ResolveRequest asks for the absolute script path an alias denotes inside
// one markup document
type ResolveRequest struct {
	// DocumentPath is the absolute path of the markup document
	DocumentPath string

	// DocumentText overrides the on-disk content when non-empty, so editors
	// can resolve against unsaved buffers
	DocumentText string

	// Alias is the identifier to resolve
	Alias string

	// OutputFormat specifies the output format
	OutputFormat OutputFormat
}

// ResolveResponse carries the resolution result. Found is false when the
// alias has no matching import; that is an expected outcome, not an error.
type ResolveResponse struct {
	Alias        string   `json:"alias"`
	ResolvedPath string   `json:"resolved_path,omitempty"`
	Found        bool     `json:"found"`
	Imports      []Import `json:"imports"`
	GeneratedAt  string   `json:"generated_at"`
}

// DescribeRequest asks for hover-style information about a function reached
// through an alias in one markup document
type DescribeRequest struct {
	DocumentPath string
	DocumentText string
	Alias        string
	FunctionName string
	OutputFormat OutputFormat
}

// DescribeResponse carries function metadata with documentation types
// normalized to the display vocabulary
type DescribeResponse struct {
	Found                bool         `json:"found"`
	SourcePath           string       `json:"source_path,omitempty"`
	Function             FunctionInfo `json:"function,omitempty"`
	NormalizedReturnType string       `json:"normalized_return_type,omitempty"`
	NormalizedParamTypes []string     `json:"normalized_param_types,omitempty"`
	GeneratedAt          string       `json:"generated_at"`
}

// FunctionsRequest asks for the function records of one or more script
// files or directories
type FunctionsRequest struct {
	Paths           []string
	Recursive       bool
	IncludePatterns []string
	ExcludePatterns []string
	NoCache         bool
	OutputFormat    OutputFormat
	ShowDocs        bool
}

// FunctionsResponse carries extraction results. Per-file read failures
// degrade to warnings; the response never represents a hard failure.
type FunctionsResponse struct {
	Files       []FileFunctions `json:"files"`
	Warnings    []string        `json:"warnings,omitempty"`
	Errors      []string        `json:"errors,omitempty"`
	GeneratedAt string          `json:"generated_at"`
}

// SuggestRequest asks for auto-import candidates matching a typed
// identifier
type SuggestRequest struct {
	// DocumentPath is the markup document being edited
	DocumentPath string

	// DocumentText overrides on-disk content when non-empty
	DocumentText string

	// Identifier is the typed identifier
	Identifier string

	// WorkspaceRoot bounds the candidate search
	WorkspaceRoot string

	// MaxCandidates bounds enumeration; 0 means the default bound
	MaxCandidates int

	OutputFormat OutputFormat
}

// SuggestResponse carries auto-import candidates in enumeration order.
// Triggered is false when the identifier does not meet the trigger
// conditions (too short, lowercase initial, or already bound).
type SuggestResponse struct {
	Identifier  string        `json:"identifier"`
	Triggered   bool          `json:"triggered"`
	Matches     []JsFileMatch `json:"matches"`
	Warnings    []string      `json:"warnings,omitempty"`
	GeneratedAt string        `json:"generated_at"`
}

// InsertRequest asks for an import-insertion plan for one markup document
type InsertRequest struct {
	DocumentPath string
	ScriptPath   string

	// Alias overrides the generated alias when non-empty
	Alias string

	// Write applies the insertion to the document on disk
	Write bool

	OutputFormat OutputFormat
}

// InsertResponse carries the computed insertion plan and the resulting text
type InsertResponse struct {
	Point       ImportInsertionPoint `json:"point"`
	Statement   string               `json:"statement"`
	NewText     string               `json:"new_text,omitempty"`
	Written     bool                 `json:"written"`
	GeneratedAt string               `json:"generated_at"`
}

// ReferencesRequest asks for markup-side usages of one script function
// across the workspace
type ReferencesRequest struct {
	// ScriptPath is the absolute path of the script file declaring the
	// function
	ScriptPath string

	// FunctionName is the function whose usages are searched
	FunctionName string

	// WorkspaceRoot bounds the markup file enumeration
	WorkspaceRoot string

	// MaxFiles bounds enumeration; 0 means the default bound
	MaxFiles int

	OutputFormat OutputFormat
}

// ReferencesResponse carries the usages found. Unreadable candidate files
// are reported as warnings and skipped, never aborting the search.
type ReferencesResponse struct {
	References   []Reference `json:"references"`
	FilesScanned int         `json:"files_scanned"`
	Warnings     []string    `json:"warnings,omitempty"`
	GeneratedAt  string      `json:"generated_at"`
}
