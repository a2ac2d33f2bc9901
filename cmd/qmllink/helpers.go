package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/config"
	"github.com/ludo-technologies/qmllink/service"
)

// parseOutputFormat validates a --format flag value
func parseOutputFormat(format string) (domain.OutputFormat, error) {
	switch format {
	case "text", "":
		return domain.OutputFormatText, nil
	case "json":
		return domain.OutputFormatJSON, nil
	case "yaml":
		return domain.OutputFormatYAML, nil
	default:
		return "", domain.NewUnsupportedFormatError(format)
	}
}

// openOutput returns the output writer for a command: the given file when
// set, stdout otherwise. The returned closer is a no-op for stdout.
func openOutput(path string) (*os.File, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}

// loadConfigFor discovers and loads configuration for the given target
// path, falling back to defaults
func loadConfigFor(configPath, targetPath string) *config.Config {
	loader := service.NewConfigurationLoader()
	if configPath != "" {
		if cfg, err := loader.LoadConfig(configPath); err == nil {
			return cfg
		}
	}
	return loader.LoadDefaultConfig(targetPath)
}
