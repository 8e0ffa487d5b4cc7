package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestLoginDelay(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	delay := settings.GetLoginDelay()
	if delay != DefaultLoginDelayMs*time.Millisecond {
		t.Errorf("Expected default delay %dms, got %v", DefaultLoginDelayMs, delay)
	}

	// Test setting custom value
	settings.SetLoginDelay(500 * time.Millisecond)
	if got := settings.GetLoginDelay(); got != 500*time.Millisecond {
		t.Errorf("Expected delay 500ms, got %v", got)
	}

	// Test boundary values
	settings.SetLoginDelay(-time.Second)
	if settings.GetLoginDelay() != 0 {
		t.Error("Login delay should be clamped to minimum 0")
	}

	settings.SetLoginDelay(time.Minute)
	if settings.GetLoginDelay() != MaxLoginDelayMs*time.Millisecond {
		t.Errorf("Login delay should be clamped to maximum %dms", MaxLoginDelayMs)
	}
}

func TestLoginDelay_ClampsStoredValue(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	app.Preferences().SetInt(KeyLoginDelayMs, 999999)
	if settings.GetLoginDelay() != MaxLoginDelayMs*time.Millisecond {
		t.Error("Out-of-range stored delay should be clamped on read")
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")

	retrievedLang := settings.GetLanguage()
	if retrievedLang != "en" {
		t.Errorf("Expected language 'en', got %s", retrievedLang)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}

func TestGetSandboxDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetSandboxDirectory(); dir == "" {
		t.Error("Sandbox directory should not be empty")
	}
}

func TestClampDelay(t *testing.T) {
	tests := []struct {
		input    int
		expected int
	}{
		{-5, 0},
		{0, 0},
		{2000, 2000},
		{MaxLoginDelayMs, MaxLoginDelayMs},
		{MaxLoginDelayMs + 1, MaxLoginDelayMs},
	}

	for _, test := range tests {
		if result := clampDelay(test.input); result != test.expected {
			t.Errorf("clampDelay(%d) = %d, expected %d", test.input, result, test.expected)
		}
	}
}
