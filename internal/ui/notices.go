package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/google-login/internal/model"
)

// DialogNotifier shows dismiss-only notices as information dialogs
type DialogNotifier struct {
	window       fyne.Window
	localization *Localization
}

// NewDialogNotifier creates a notifier bound to window
func NewDialogNotifier(window fyne.Window, localization *Localization) *DialogNotifier {
	return &DialogNotifier{window: window, localization: localization}
}

// Notify shows the notice; safe to call from any goroutine
func (n *DialogNotifier) Notify(kind model.NoticeKind) {
	fyne.Do(func() {
		title, message := n.localization.Notice(kind)
		dialog.ShowInformation(title, message, n.window)
	})
}
