package config

import "strconv"

// ProjectType represents the kind of QML project being configured
type ProjectType string

const (
	ProjectTypeGeneric     ProjectType = "generic"
	ProjectTypeApplication ProjectType = "application"
	ProjectTypeLibrary     ProjectType = "library"
)

// ProjectPreset holds workspace presets for different project types
type ProjectPreset struct {
	IncludePatterns []string
	ExcludePatterns []string
}

// GetProjectPresets returns presets for different project types
func GetProjectPresets() map[ProjectType]ProjectPreset {
	return map[ProjectType]ProjectPreset{
		ProjectTypeGeneric: {
			IncludePatterns: []string{
				"**/*.js",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/build/**",
				"**/dist/**",
			},
		},
		ProjectTypeApplication: {
			IncludePatterns: []string{
				"**/*.js",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/build/**",
				"**/dist/**",
				"**/out/**",
				"**/*.min.js",
			},
		},
		ProjectTypeLibrary: {
			IncludePatterns: []string{
				"src/**/*.js",
				"lib/**/*.js",
			},
			ExcludePatterns: []string{
				"**/node_modules/**",
				"**/build/**",
				"**/examples/**",
				"**/tests/**",
			},
		},
	}
}

// GetFullConfigTemplate generates a documented config file for the given
// project type
func GetFullConfigTemplate(projectType ProjectType, format string) string {
	preset := GetProjectPresets()[projectType]

	includePatterns := formatJSONArray(preset.IncludePatterns)
	excludePatterns := formatJSONArray(preset.ExcludePatterns)

	return `{
  // qmllink Configuration
  // Documentation: https://github.com/ludo-technologies/qmllink

  // ============================================================================
  // ALIAS RESOLUTION & AUTO-IMPORT
  // ============================================================================
  "resolve": {
    // Suffix appended to aliases generated from file names
    // (account-helper.js -> AccountHelperJS)
    "alias_suffix": "` + DefaultAliasSuffix + `",

    // Maximum number of script files enumerated per auto-import search.
    // Files beyond the bound are silently omitted.
    "max_candidates": ` + strconv.Itoa(DefaultMaxCandidates) + `,

    // Minimum typed-identifier length before suggestions trigger
    "min_identifier_length": ` + strconv.Itoa(DefaultMinIdentifierLength) + `,

    // Cache parsed function records per script file
    "cache_enabled": true
  },

  // ============================================================================
  // WORKSPACE SCOPE
  // ============================================================================
  // Controls which files are enumerated during auto-import and reference search
  "workspace": {
    // File patterns to include (glob patterns)
    "include_patterns": ` + includePatterns + `,

    // File patterns to exclude (glob patterns)
    "exclude_patterns": ` + excludePatterns + `,

    // Apply .gitignore rules during enumeration
    "respect_gitignore": true
  },

  // ============================================================================
  // OUTPUT SETTINGS
  // ============================================================================
  "output": {
    // Output format: "text", "json", "yaml"
    "format": "` + format + `",

    // Include documentation text in output
    "show_docs": true
  },

  // ============================================================================
  // PERFORMANCE
  // ============================================================================
  "performance": {
    // Number of parallel workers for workspace-wide operations
    "max_goroutines": ` + strconv.Itoa(DefaultMaxGoroutines) + `,

    // Timeout for workspace-wide operations in seconds
    "timeout_seconds": ` + strconv.Itoa(DefaultTimeoutSeconds) + `
  }
}
`
}

// GetMinimalConfigTemplate returns a minimal config template
func GetMinimalConfigTemplate() string {
	return `{
  // qmllink Configuration (minimal)
  // See full options: https://github.com/ludo-technologies/qmllink

  "resolve": {
    "alias_suffix": "` + DefaultAliasSuffix + `",
    "max_candidates": ` + strconv.Itoa(DefaultMaxCandidates) + `
  },

  "workspace": {
    "include_patterns": ["**/*.js"],
    "exclude_patterns": ["**/node_modules/**", "**/build/**"]
  }
}
`
}

// formatJSONArray formats a string slice as a JSON array with proper
// indentation
func formatJSONArray(items []string) string {
	if len(items) == 0 {
		return "[]"
	}

	result := "[\n"
	for i, item := range items {
		result += `      "` + item + `"`
		if i < len(items)-1 {
			result += ","
		}
		result += "\n"
	}
	result += "    ]"
	return result
}
