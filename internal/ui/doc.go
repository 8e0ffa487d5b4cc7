package ui

// Package ui contains the Fyne rendering layer for the login screen.
// It paints the render plan produced by the present package, forwards taps
// and focus changes to the login flow and hosts the picker and notice dialogs.
// All UI strings are localized via Localization.
