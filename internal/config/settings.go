package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt-mp3/internal/model"
	"github.com/ytget/yt-mp3/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir = "output_directory"
	KeyQuality   = "audio_quality"
	KeyLanguage  = "app_language"
)

// Default values
const (
	DefaultLanguage   = "zh"
	FallbackDirectory = "/tmp/yt-mp3"
)

// Settings remembers form values between runs
type Settings struct {
	app      fyne.App
	defaults Defaults
}

// NewSettings creates a new settings manager. defaults seed values that were
// never saved.
func NewSettings(app fyne.App, defaults Defaults) *Settings {
	return &Settings{app: app, defaults: defaults}
}

// GetOutputDirectory returns the last used output directory
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir != "" {
		return dir
	}
	if s.defaults.OutputDir != "" {
		return s.defaults.OutputDir
	}
	defaultDir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return FallbackDirectory
	}
	return defaultDir
}

// SetOutputDirectory stores the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetQuality returns the last used quality
func (s *Settings) GetQuality() model.Quality {
	q := model.Quality(s.app.Preferences().Int(KeyQuality))
	if q.Valid() {
		return q
	}
	if d := model.Quality(s.defaults.Quality); d.Valid() {
		return d
	}
	return model.DefaultQuality
}

// SetQuality stores the quality; unsupported values are ignored
func (s *Settings) SetQuality(q model.Quality) {
	if !q.Valid() {
		return
	}
	s.app.Preferences().SetInt(KeyQuality, int(q))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
