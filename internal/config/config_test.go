package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadFromFile(t *testing.T) {
	content := `discussion:
  responses_folder_path: /tmp/parley-responses
  convergence_threshold: 85
logging:
  level: debug
models:
  - name: gpt-one
    model_provider: openai-chatgpt
    version: gpt-4o
    api_key: sk-test
  - name: claude-one
    model_provider: anthropic-claude
    version: claude-sonnet-4-5
    api_key: sk-ant-test
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig() error = %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Discussion.ResponsesFolder != "/tmp/parley-responses" {
		t.Errorf("ResponsesFolder = %q", cfg.Discussion.ResponsesFolder)
	}
	if cfg.Discussion.ConvergenceThreshold != 85 {
		t.Errorf("ConvergenceThreshold = %v, want 85", cfg.Discussion.ConvergenceThreshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if len(cfg.Models) != 2 {
		t.Fatalf("Models = %d, want 2", len(cfg.Models))
	}
	m := cfg.Models[1]
	if m.Name != "claude-one" || m.Provider != "anthropic-claude" ||
		m.Version != "claude-sonnet-4-5" || m.APIKey != "sk-ant-test" {
		t.Errorf("Models[1] = %+v", m)
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Discussion.ResponsesFolder != "responses" {
		t.Errorf("default ResponsesFolder = %q, want %q", cfg.Discussion.ResponsesFolder, "responses")
	}
	if cfg.Discussion.ConvergenceThreshold != 90 {
		t.Errorf("default ConvergenceThreshold = %v, want 90", cfg.Discussion.ConvergenceThreshold)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}
