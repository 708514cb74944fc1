package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/ytget/yt-mp3/internal/model"
)

// Config file location and defaults
const (
	AppDirName     = "yt-mp3"
	ConfigFileName = "config.yaml"

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config is the on-disk configuration file
type Config struct {
	// ToolsDir overrides the directory searched for yt-dlp and ffmpeg.
	// Empty means the directory of the running executable.
	ToolsDir string   `yaml:"tools_dir"`
	Logger   Logger   `yaml:"logger"`
	Defaults Defaults `yaml:"defaults"`
}

// Logger configures the application logger
type Logger struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json logfmt"`
	File   string `yaml:"file"`
}

// Defaults seeds the form when no preference has been saved yet
type Defaults struct {
	Quality   int    `yaml:"quality" validate:"omitempty,oneof=128 192 256 320"`
	OutputDir string `yaml:"output_dir"`
}

// DefaultConfig returns the configuration written on first start
func DefaultConfig() *Config {
	return &Config{
		Logger: Logger{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Defaults: Defaults{
			Quality: int(model.DefaultQuality),
		},
	}
}

// DefaultPath returns <user config dir>/yt-mp3/config.yaml
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, AppDirName, ConfigFileName), nil
}

// Load reads the YAML file at path. If the file doesn't exist, the default
// configuration is written there and returned.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Info("Config file not found, creating default configuration", "path", path)
		cfg := DefaultConfig()
		if err := Save(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cfg := DefaultConfig()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.Logger.Level == "" {
		cfg.Logger.Level = DefaultLogLevel
	}
	if cfg.Logger.Format == "" {
		cfg.Logger.Format = DefaultLogFormat
	}
	if cfg.Defaults.Quality == 0 {
		cfg.Defaults.Quality = int(model.DefaultQuality)
	}

	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DefaultQuality returns the configured default as a model.Quality
func (c *Config) DefaultQuality() model.Quality {
	q := model.Quality(c.Defaults.Quality)
	if !q.Valid() {
		return model.DefaultQuality
	}
	return q
}
