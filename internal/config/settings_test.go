package config

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/yt-mp3/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Defaults{})

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Defaults{})

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}

	// Test setting custom value
	customDir := "/custom/music"
	settings.SetOutputDirectory(customDir)

	if got := settings.GetOutputDirectory(); got != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, got)
	}
}

func TestOutputDirectory_ConfigDefault(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Defaults{OutputDir: "/from/config"})

	if got := settings.GetOutputDirectory(); got != "/from/config" {
		t.Errorf("Expected config default /from/config, got %s", got)
	}
}

func TestQuality(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Defaults{})

	if got := settings.GetQuality(); got != model.DefaultQuality {
		t.Errorf("Expected default quality %d, got %d", model.DefaultQuality, got)
	}

	settings.SetQuality(model.Quality320)
	if got := settings.GetQuality(); got != model.Quality320 {
		t.Errorf("Expected quality 320, got %d", got)
	}

	// Unsupported values are ignored
	settings.SetQuality(model.Quality(100))
	if got := settings.GetQuality(); got != model.Quality320 {
		t.Errorf("Unsupported quality should be ignored, got %d", got)
	}
}

func TestQuality_ConfigDefault(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Defaults{Quality: 256})

	if got := settings.GetQuality(); got != model.Quality256 {
		t.Errorf("Expected config default 256, got %d", got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app, Defaults{})

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("en")
	if lang := settings.GetLanguage(); lang != "en" {
		t.Errorf("Expected language 'en', got %s", lang)
	}
}
