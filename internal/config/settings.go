package config

import (
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyGoogleImageURI = "google_login_image_uri"
	KeyLoginDelayMs   = "login_delay_ms"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultLoginDelayMs = 2000
	DefaultLanguage     = "system"
	DefaultSandboxDir   = "google-login"
)

// Bounds for the simulated login delay
const (
	MinLoginDelayMs = 0
	MaxLoginDelayMs = 10000
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLoginDelay returns how long a simulated login takes
func (s *Settings) GetLoginDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyLoginDelayMs, DefaultLoginDelayMs)
	return time.Duration(clampDelay(ms)) * time.Millisecond
}

// SetLoginDelay sets the simulated login delay, clamped to the allowed range
func (s *Settings) SetLoginDelay(delay time.Duration) {
	s.app.Preferences().SetInt(KeyLoginDelayMs, clampDelay(int(delay/time.Millisecond)))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetSandboxDirectory returns the app-private directory the picked image is copied into
func (s *Settings) GetSandboxDirectory() string {
	if root := s.app.Storage().RootURI(); root != nil && root.Path() != "" {
		return root.Path()
	}
	return filepath.Join(os.TempDir(), DefaultSandboxDir)
}

// clampDelay keeps the delay inside [MinLoginDelayMs, MaxLoginDelayMs]
func clampDelay(ms int) int {
	if ms < MinLoginDelayMs {
		return MinLoginDelayMs
	}
	if ms > MaxLoginDelayMs {
		return MaxLoginDelayMs
	}
	return ms
}
