package constants

// Tool name and related constants
const (
	// ToolName is the name of this tool
	ToolName = "qmllink"

	// ConfigFileName is the default config file name
	ConfigFileName = ".qmllink.toml"

	// EnvVarPrefix is the prefix for environment variables
	EnvVarPrefix = "QMLLINK"
)

// File extension constants
const (
	// ScriptExtension is the extension of importable script modules
	ScriptExtension = ".js"

	// MarkupExtension is the extension of QML markup documents
	MarkupExtension = ".qml"
)

// Auto-import constants
const (
	// MaxAutoImportCandidates bounds workspace enumeration during
	// auto-import candidate search. Files beyond the bound are silently
	// omitted to keep completion latency predictable.
	MaxAutoImportCandidates = 500

	// AliasSuffix is appended to every generated alias to disambiguate
	// against common short file names (util.js -> UtilJS).
	AliasSuffix = "JS"

	// MinAutoImportIdentifierLength is the minimum typed-identifier length
	// that triggers auto-import suggestions.
	MinAutoImportIdentifierLength = 2
)

// DefaultExcludedDirs are directory names skipped during workspace
// enumeration regardless of configured exclude patterns.
var DefaultExcludedDirs = []string{
	"node_modules",
	".git",
	".svn",
	".hg",
	"build",
	"dist",
	"out",
	"coverage",
}
