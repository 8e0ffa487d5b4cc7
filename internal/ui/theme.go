package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LoginTheme is a light theme matching the white login artwork
type LoginTheme struct{}

// NewLoginTheme creates a new login theme
func NewLoginTheme() fyne.Theme {
	return &LoginTheme{}
}

// Color returns theme colors; the artwork is light so the variant is ignored
func (t *LoginTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 26, G: 115, B: 232, A: 255} // Google blue
	case theme.ColorNameBackground:
		return color.White
	case theme.ColorNameForeground:
		return color.RGBA{R: 32, G: 33, B: 36, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 217, G: 48, B: 37, A: 255}
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *LoginTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LoginTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *LoginTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 2
	case theme.SizeNameInnerPadding:
		return 4
	case theme.SizeNameText:
		return InputTextSize
	case theme.SizeNameInputBorder:
		return 0
	case theme.SizeNameInputRadius:
		return 0
	}

	return theme.DefaultTheme().Size(name)
}

// inputTheme lets text fields sit on top of the artwork: no background,
// no border and, for the password field, no visible glyphs
type inputTheme struct {
	fyne.Theme
	hideText bool
}

func newInputTheme(base fyne.Theme, hideText bool) fyne.Theme {
	return &inputTheme{Theme: base, hideText: hideText}
}

func (t *inputTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameInputBackground, theme.ColorNameInputBorder, theme.ColorNameFocus, theme.ColorNameHover:
		return color.Transparent
	case theme.ColorNameForeground, theme.ColorNameSelection:
		if t.hideText {
			return color.Transparent
		}
	}
	return t.Theme.Color(name, variant)
}
