package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
)

// tapZone is an invisible hit area laid over the artwork. It reports taps
// and, for zones that show press feedback, press-in and press-out.
type tapZone struct {
	widget.BaseWidget

	onTap    func()
	onPress  func(pressed bool)
	disabled bool
	pressed  bool
}

var (
	_ fyne.Tappable     = (*tapZone)(nil)
	_ desktop.Mouseable = (*tapZone)(nil)
	_ mobile.Touchable  = (*tapZone)(nil)
)

// newTapZone creates a tap zone calling onTap when tapped
func newTapZone(onTap func()) *tapZone {
	z := &tapZone{onTap: onTap}
	z.ExtendBaseWidget(z)
	return z
}

// SetOnPress sets the press feedback callback
func (z *tapZone) SetOnPress(onPress func(bool)) {
	z.onPress = onPress
}

// SetDisabled enables or disables the zone; a disabled zone ignores input
func (z *tapZone) SetDisabled(disabled bool) {
	if disabled {
		z.setPressed(false)
	}
	z.disabled = disabled
}

// Disabled reports whether the zone ignores input
func (z *tapZone) Disabled() bool {
	return z.disabled
}

// CreateRenderer implements fyne.Widget
func (z *tapZone) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(canvas.NewRectangle(color.Transparent))
}

// Tapped handles taps from both mouse and touch
func (z *tapZone) Tapped(*fyne.PointEvent) {
	if z.disabled || z.onTap == nil {
		return
	}
	z.onTap()
}

// MouseDown handles press on desktop
func (z *tapZone) MouseDown(*desktop.MouseEvent) {
	z.setPressed(true)
}

// MouseUp handles release on desktop
func (z *tapZone) MouseUp(*desktop.MouseEvent) {
	z.setPressed(false)
}

// TouchDown handles touch down events
func (z *tapZone) TouchDown(*mobile.TouchEvent) {
	z.setPressed(true)
}

// TouchUp handles touch up events
func (z *tapZone) TouchUp(*mobile.TouchEvent) {
	z.setPressed(false)
}

// TouchCancel handles touch cancel events
func (z *tapZone) TouchCancel(*mobile.TouchEvent) {
	z.setPressed(false)
}

func (z *tapZone) setPressed(pressed bool) {
	if z.pressed == pressed || (pressed && z.disabled) {
		return
	}
	z.pressed = pressed
	if z.onPress != nil {
		z.onPress(pressed)
	}
}

// focusEntry is an entry that reports focus changes, which widget.Entry
// does not expose as callbacks
type focusEntry struct {
	widget.Entry

	onFocus  func(focused bool)
	keyboard mobile.KeyboardType
}

// newFocusEntry creates an entry reporting focus changes to onFocus
func newFocusEntry(keyboard mobile.KeyboardType, onFocus func(bool)) *focusEntry {
	e := &focusEntry{onFocus: onFocus, keyboard: keyboard}
	e.ExtendBaseWidget(e)
	return e
}

// FocusGained implements fyne.Focusable
func (e *focusEntry) FocusGained() {
	e.Entry.FocusGained()
	if e.onFocus != nil {
		e.onFocus(true)
	}
}

// FocusLost implements fyne.Focusable
func (e *focusEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.onFocus != nil {
		e.onFocus(false)
	}
}

// Keyboard implements mobile.Keyboardable
func (e *focusEntry) Keyboard() mobile.KeyboardType {
	return e.keyboard
}
