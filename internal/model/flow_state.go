package model

import (
	"strings"
	"unicode/utf8"
)

// MaskGlyph is drawn once per password character in place of the real text
const MaskGlyph = "•"

// FlowState is the authoritative state of the login screen
type FlowState struct {
	Screen             Screen
	StartButtonPressed bool // true only while the pointer is down on the start login button
	UsernameOrEmail    string
	Password           string
	UsernameFocused    bool
	PasswordFocused    bool
	SaveLoginEnabled   bool // session only, never persisted
	Busy               bool // a simulated login is in flight
}

// NewFlowState returns the state a freshly mounted screen starts in
func NewFlowState() FlowState {
	return FlowState{
		Screen:           ScreenStart,
		SaveLoginEnabled: true,
	}
}

// IsLoginReady reports whether both credentials are present.
// The username is trimmed; the password is not, so whitespace counts.
func (fs FlowState) IsLoginReady() bool {
	return strings.TrimSpace(fs.UsernameOrEmail) != "" && fs.Password != ""
}

// IsInputFocused returns true if either text field has focus
func (fs FlowState) IsInputFocused() bool {
	return fs.UsernameFocused || fs.PasswordFocused
}

// PasswordMask returns one MaskGlyph per character of the password
func (fs FlowState) PasswordMask() string {
	n := utf8.RuneCountInString(fs.Password)
	if n == 0 {
		return ""
	}
	return strings.Repeat(MaskGlyph, n)
}

// ClearPointerState drops focus and press feedback, used whenever the
// credentials screen is left
func (fs *FlowState) ClearPointerState() {
	fs.UsernameFocused = false
	fs.PasswordFocused = false
	fs.StartButtonPressed = false
}
