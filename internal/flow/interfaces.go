package flow

import (
	"context"

	"github.com/ytget/google-login/internal/model"
)

// ImageSource is what the flow needs from the image vault.
type ImageSource interface {
	Load(ctx context.Context) string
	Select(ctx context.Context) (string, error)
}

// Notifier surfaces dismiss-only notices to the user.
type Notifier interface {
	Notify(kind model.NoticeKind)
}

// Snapshot is an immutable copy of everything the presenter needs
type Snapshot struct {
	State    model.FlowState
	ImageURI string
}

// HasImage reports whether an image reference is held
func (s Snapshot) HasImage() bool {
	return s.ImageURI != ""
}
