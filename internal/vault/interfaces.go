package vault

import (
	"context"

	"github.com/ytget/google-login/internal/model"
)

// Store is the persistent key-value store the reference lives in.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Remove(key string) error
}

// Files is the file boundary used to copy and probe the stored image.
// Delete must treat a missing resource as success. Move replaces dst.
type Files interface {
	Exists(uri string) (bool, error)
	Copy(src, dst string) error
	Move(src, dst string) error
	Delete(uri string) error
}

// PickResult is the outcome of the media picker
type PickResult struct {
	URI       string
	Cancelled bool
}

// Picker is the media picker boundary.
type Picker interface {
	RequestPermission(ctx context.Context) (bool, error)
	PickImage(ctx context.Context) (PickResult, error)
}

// Notifier surfaces dismiss-only notices to the user.
type Notifier interface {
	Notify(kind model.NoticeKind)
}
