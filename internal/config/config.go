package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete Parley configuration
type Config struct {
	Discussion DiscussionConfig `mapstructure:"discussion"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Models     []Model          `mapstructure:"models"`
}

// DiscussionConfig controls discussion session behavior
type DiscussionConfig struct {
	// ResponsesFolder is the directory under which per-session folders
	// are created (default: "responses")
	ResponsesFolder string `mapstructure:"responses_folder_path"`
	// ConvergenceThreshold is the average agreement percentage at which
	// the discussion stops, inclusive (default: 90, range: 0-100)
	ConvergenceThreshold float64 `mapstructure:"convergence_threshold"`
}

// LoggingConfig controls structured log output
type LoggingConfig struct {
	// Level is the minimum log level (debug/info/warn/error)
	Level string `mapstructure:"level"`
}

// Model describes one participating model
type Model struct {
	// Name uniquely identifies the participant within a session and
	// names its response store file
	Name string `mapstructure:"name"`
	// Provider selects the completion backend
	// Options: "openai-chatgpt", "anthropic-claude"
	Provider string `mapstructure:"model_provider"`
	// Version is the vendor model identifier (e.g. "gpt-4o")
	Version string `mapstructure:"version"`
	// APIKey authenticates against the vendor API
	APIKey string `mapstructure:"api_key"`
}

// SetDefaults establishes default configuration values in viper
func SetDefaults() {
	viper.SetDefault("discussion.responses_folder_path", "responses")
	viper.SetDefault("discussion.convergence_threshold", 90.0)
	viper.SetDefault("logging.level", "info")
}

// Load unmarshals the current viper state into a Config
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigDir returns the directory where the Parley config file lives,
// honoring XDG_CONFIG_HOME when set.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "parley")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "parley")
}
