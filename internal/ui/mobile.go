package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI helpers
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// WindowSize returns the initial window size; mobile windows are always full screen
func (m *MobileUI) WindowSize() fyne.Size {
	return fyne.NewSize(WindowWidth, WindowHeight)
}

// DismissKeyboard drops text focus, which hides the soft keyboard on mobile
func (m *MobileUI) DismissKeyboard(c fyne.Canvas) {
	if c == nil || c.Focused() == nil {
		return
	}
	c.Unfocus()
}
