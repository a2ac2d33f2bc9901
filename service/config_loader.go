package service

import (
	"github.com/ludo-technologies/qmllink/domain"
	"github.com/ludo-technologies/qmllink/internal/config"
)

// ConfigurationLoaderImpl loads tool configuration for the CLI layer
type ConfigurationLoaderImpl struct{}

// NewConfigurationLoader creates a new configuration loader service
func NewConfigurationLoader() *ConfigurationLoaderImpl {
	return &ConfigurationLoaderImpl{}
}

// LoadConfig loads configuration from the specified path
func (c *ConfigurationLoaderImpl) LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, domain.NewConfigError("failed to load configuration file", err)
	}
	return cfg, nil
}

// LoadDefaultConfig loads configuration discovered from targetPath, falling
// back to hardcoded defaults when discovery or parsing fails
func (c *ConfigurationLoaderImpl) LoadDefaultConfig(targetPath string) *config.Config {
	cfg, err := config.LoadConfigWithTarget("", targetPath)
	if err != nil {
		return config.DefaultConfig()
	}
	return cfg
}
