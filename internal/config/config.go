package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/ludo-technologies/qmllink/internal/constants"
)

// Default resolution settings
const (
	// DefaultMaxCandidates bounds workspace enumeration during auto-import
	// candidate search
	DefaultMaxCandidates = constants.MaxAutoImportCandidates

	// DefaultMinIdentifierLength is the minimum typed-identifier length
	// that triggers auto-import suggestions
	DefaultMinIdentifierLength = constants.MinAutoImportIdentifierLength

	// DefaultAliasSuffix is appended to generated aliases
	DefaultAliasSuffix = constants.AliasSuffix
)

// Default performance settings
const (
	// DefaultMaxGoroutines bounds concurrent per-file work
	DefaultMaxGoroutines = 4

	// DefaultTimeoutSeconds bounds workspace-wide operations
	DefaultTimeoutSeconds = 300
)

// Config represents the main configuration structure
type Config struct {
	// Resolve holds alias resolution and auto-import configuration
	Resolve ResolveConfig `json:"resolve" mapstructure:"resolve" yaml:"resolve"`

	// Workspace holds workspace enumeration configuration
	Workspace WorkspaceConfig `json:"workspace" mapstructure:"workspace" yaml:"workspace"`

	// Output holds output formatting configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Performance holds concurrency configuration
	Performance PerformanceConfig `json:"performance" mapstructure:"performance" yaml:"performance"`
}

// ResolveConfig holds configuration for alias resolution and auto-import
type ResolveConfig struct {
	// AliasSuffix is appended to aliases generated from file names
	AliasSuffix string `json:"alias_suffix" mapstructure:"alias_suffix" yaml:"alias_suffix"`

	// MaxCandidates bounds auto-import candidate enumeration
	MaxCandidates int `json:"max_candidates" mapstructure:"max_candidates" yaml:"max_candidates"`

	// MinIdentifierLength is the minimum identifier length that triggers
	// auto-import suggestions
	MinIdentifierLength int `json:"min_identifier_length" mapstructure:"min_identifier_length" yaml:"min_identifier_length"`

	// CacheEnabled controls whether parsed function records are cached
	CacheEnabled bool `json:"cache_enabled" mapstructure:"cache_enabled" yaml:"cache_enabled"`
}

// WorkspaceConfig holds configuration for workspace file enumeration
type WorkspaceConfig struct {
	// IncludePatterns specifies glob patterns for candidate files
	IncludePatterns []string `json:"include_patterns" mapstructure:"include_patterns" yaml:"include_patterns"`

	// ExcludePatterns specifies glob patterns for files to skip
	ExcludePatterns []string `json:"exclude_patterns" mapstructure:"exclude_patterns" yaml:"exclude_patterns"`

	// RespectGitignore controls whether .gitignore rules are applied
	RespectGitignore bool `json:"respect_gitignore" mapstructure:"respect_gitignore" yaml:"respect_gitignore"`
}

// OutputConfig holds configuration for output formatting
type OutputConfig struct {
	// Format specifies the output format: text, json, yaml
	Format string `json:"format" mapstructure:"format" yaml:"format"`

	// ShowDocs controls whether documentation text is included in output
	ShowDocs bool `json:"show_docs" mapstructure:"show_docs" yaml:"show_docs"`
}

// PerformanceConfig holds configuration for concurrency limits
type PerformanceConfig struct {
	// MaxGoroutines bounds concurrent per-file work
	MaxGoroutines int `json:"max_goroutines" mapstructure:"max_goroutines" yaml:"max_goroutines"`

	// TimeoutSeconds bounds workspace-wide operations
	TimeoutSeconds int `json:"timeout_seconds" mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Resolve: ResolveConfig{
			AliasSuffix:         DefaultAliasSuffix,
			MaxCandidates:       DefaultMaxCandidates,
			MinIdentifierLength: DefaultMinIdentifierLength,
			CacheEnabled:        true,
		},
		Workspace: WorkspaceConfig{
			IncludePatterns: []string{"**/*.js"},
			ExcludePatterns: append([]string{}, constants.DefaultExcludedDirs...),
			RespectGitignore: true,
		},
		Output: OutputConfig{
			Format:   "text",
			ShowDocs: true,
		},
		Performance: PerformanceConfig{
			MaxGoroutines:  DefaultMaxGoroutines,
			TimeoutSeconds: DefaultTimeoutSeconds,
		},
	}
}

// LoadConfig loads configuration from the specified path, discovering one
// when the path is empty
func LoadConfig(configPath string) (*Config, error) {
	return LoadConfigWithTarget(configPath, "")
}

// LoadConfigWithTarget loads configuration with target path context
func LoadConfigWithTarget(configPath string, targetPath string) (*Config, error) {
	if configPath == "" {
		configPath = findDefaultConfig(targetPath)
	}
	return loadConfigFromFile(configPath)
}

// loadConfigFromFile reads and parses a configuration file
func loadConfigFromFile(configPath string) (*Config, error) {
	if configPath == "" {
		return DefaultConfig(), nil
	}

	// A fresh viper instance per load avoids shared state between calls
	v := viper.New()
	config := DefaultConfig()
	v.SetConfigFile(configPath)
	v.SetEnvPrefix(constants.EnvVarPrefix)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// configFileCandidates are the recognized config file names, in order of
// preference
func configFileCandidates() []string {
	return []string{
		"qmllink.config.json",
		".qmllinkrc.json",
		"qmllink.yaml",
		"qmllink.yml",
		constants.ConfigFileName,
		".qmllink.yml",
		"qmllink.json",
		".qmllink.json",
	}
}

// searchConfigInDirectory searches for configuration files in a directory
func searchConfigInDirectory(dir string, candidates []string) string {
	for _, candidate := range candidates {
		path := filepath.Join(dir, candidate)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// findDefaultConfig looks for configuration files starting at targetPath
// and walking up to the filesystem root, then in standard user locations
func findDefaultConfig(targetPath string) string {
	candidates := configFileCandidates()

	if targetPath != "" {
		absPath, err := filepath.Abs(targetPath)
		if err == nil {
			if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
				absPath = filepath.Dir(absPath)
			}

			for dir := absPath; ; dir = filepath.Dir(dir) {
				if config := searchConfigInDirectory(dir, candidates); config != "" {
					return config
				}
				if filepath.Dir(dir) == dir {
					break
				}
			}
		}
	}

	if config := searchConfigInDirectory(".", candidates); config != "" {
		return config
	}

	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		if config := searchConfigInDirectory(filepath.Join(xdgConfig, constants.ToolName), candidates); config != "" {
			return config
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		configDir := filepath.Join(home, ".config", constants.ToolName)
		if config := searchConfigInDirectory(configDir, candidates); config != "" {
			return config
		}
	}

	if envConfig := os.Getenv(constants.EnvVarPrefix + "_CONFIG"); envConfig != "" {
		if _, err := os.Stat(envConfig); err == nil {
			return envConfig
		}
	}

	return ""
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if c.Resolve.MaxCandidates < 1 {
		return fmt.Errorf("resolve.max_candidates must be >= 1, got %d", c.Resolve.MaxCandidates)
	}
	if c.Resolve.MinIdentifierLength < 1 {
		return fmt.Errorf("resolve.min_identifier_length must be >= 1, got %d", c.Resolve.MinIdentifierLength)
	}
	if c.Resolve.AliasSuffix == "" {
		return fmt.Errorf("resolve.alias_suffix must not be empty")
	}

	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("output.format must be one of text, json, yaml, got %q", c.Output.Format)
	}

	if c.Performance.MaxGoroutines < 0 {
		return fmt.Errorf("performance.max_goroutines must be >= 0, got %d", c.Performance.MaxGoroutines)
	}
	if c.Performance.TimeoutSeconds < 0 {
		return fmt.Errorf("performance.timeout_seconds must be >= 0, got %d", c.Performance.TimeoutSeconds)
	}

	return nil
}
