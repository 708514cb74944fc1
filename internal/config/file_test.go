package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/yt-mp3/internal/model"
)

func TestLoad_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigFileName)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Logger.Level != DefaultLogLevel {
		t.Errorf("Expected log level %s, got %s", DefaultLogLevel, cfg.Logger.Level)
	}
	if cfg.DefaultQuality() != model.DefaultQuality {
		t.Errorf("Expected default quality %d, got %d", model.DefaultQuality, cfg.DefaultQuality())
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Default config should have been written: %v", err)
	}
}

func TestLoad_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `tools_dir: /opt/tools
logger:
  level: debug
  format: json
defaults:
  quality: 320
  output_dir: /music
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.ToolsDir != "/opt/tools" {
		t.Errorf("Expected tools dir /opt/tools, got %s", cfg.ToolsDir)
	}
	if cfg.Logger.Level != "debug" || cfg.Logger.Format != "json" {
		t.Errorf("Unexpected logger config: %+v", cfg.Logger)
	}
	if cfg.DefaultQuality() != model.Quality320 {
		t.Errorf("Expected quality 320, got %d", cfg.DefaultQuality())
	}
	if cfg.Defaults.OutputDir != "/music" {
		t.Errorf("Expected output dir /music, got %s", cfg.Defaults.OutputDir)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("tools_dir: /opt/tools\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cfg.Logger.Format != DefaultLogFormat {
		t.Errorf("Expected default format, got %s", cfg.Logger.Format)
	}
	if cfg.DefaultQuality() != model.DefaultQuality {
		t.Errorf("Expected default quality, got %d", cfg.DefaultQuality())
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad level", "logger:\n  level: verbose\n"},
		{"bad format", "logger:\n  format: xml\n"},
		{"bad quality", "defaults:\n  quality: 100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}

			_, err := Load(path)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), "config validation failed") {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(path, []byte("logger: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error for invalid YAML")
	}
}
