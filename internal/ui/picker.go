package ui

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"go.uber.org/zap"

	"github.com/ytget/google-login/internal/logging"
	"github.com/ytget/google-login/internal/vault"
)

// FilePicker picks an image with the Fyne file-open dialog
type FilePicker struct {
	window     fyne.Window
	extensions []string
}

var _ vault.Picker = (*FilePicker)(nil)

type pickOutcome struct {
	result vault.PickResult
	err    error
}

// NewFilePicker creates a picker offering the given file extensions
func NewFilePicker(window fyne.Window, extensions []string) *FilePicker {
	return &FilePicker{window: window, extensions: extensions}
}

// RequestPermission always grants access; the file dialog has no permission model
func (p *FilePicker) RequestPermission(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return true, nil
}

// PickImage shows the dialog and blocks until the user picks, cancels or ctx ends.
// Must not be called from the UI goroutine.
func (p *FilePicker) PickImage(ctx context.Context) (vault.PickResult, error) {
	results := make(chan pickOutcome, 1)

	fyne.Do(func() {
		d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
			if err != nil {
				results <- pickOutcome{err: err}
				return
			}
			if reader == nil {
				results <- pickOutcome{result: vault.PickResult{Cancelled: true}}
				return
			}
			uri := reader.URI().String()
			if cerr := reader.Close(); cerr != nil {
				logging.Debug("Failed to close picked file", zap.Error(cerr))
			}
			results <- pickOutcome{result: vault.PickResult{URI: uri}}
		}, p.window)
		if len(p.extensions) > 0 {
			d.SetFilter(storage.NewExtensionFileFilter(p.extensions))
		}
		d.Show()
	})

	select {
	case out := <-results:
		return out.result, out.err
	case <-ctx.Done():
		return vault.PickResult{}, ctx.Err()
	}
}
