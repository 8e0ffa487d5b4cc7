package vault

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/ytget/google-login/internal/logging"
	"github.com/ytget/google-login/internal/model"
	"github.com/ytget/google-login/internal/platform"
)

// Storage constants
const (
	DefaultKey       = "google_login_image_uri"
	ImageBaseName    = "google-login-image"
	DefaultImageExt  = ".jpg"
	stagingSuffix    = ".tmp"
	maxExtensionSize = 8
)

// ImageVault holds at most one durable image reference
type ImageVault struct {
	store      Store
	files      Files
	picker     Picker
	notifier   Notifier
	key        string
	sandboxDir string

	// serialises Select so two picks cannot interleave their copy and persist
	selectMu sync.Mutex
}

// NewImageVault creates a vault that copies picked images into sandboxDir
func NewImageVault(store Store, files Files, picker Picker, notifier Notifier, sandboxDir string) *ImageVault {
	return &ImageVault{
		store:      store,
		files:      files,
		picker:     picker,
		notifier:   notifier,
		key:        DefaultKey,
		sandboxDir: sandboxDir,
	}
}

// SetKey overrides the store key the reference is persisted under
func (v *ImageVault) SetKey(key string) {
	if key != "" {
		v.key = key
	}
}

// Load returns the persisted reference, or "" when none is usable.
// A local reference whose file is gone is purged from the store.
// Errors are logged and never returned.
func (v *ImageVault) Load(ctx context.Context) string {
	if ctx.Err() != nil {
		return ""
	}

	uri, ok, err := v.store.Get(v.key)
	if err != nil {
		logging.Warn("Failed to read stored image reference", zap.Error(err))
		return ""
	}
	if !ok || uri == "" {
		return ""
	}

	if platform.IsLocalURI(uri) {
		exists, err := v.files.Exists(uri)
		if err != nil {
			logging.Warn("Failed to check stored image", zap.String("uri", uri), zap.Error(err))
			return ""
		}
		if !exists {
			logging.Info("Stored image is missing, dropping reference", zap.String("uri", uri))
			if err := v.store.Remove(v.key); err != nil {
				logging.Warn("Failed to remove dangling image reference", zap.Error(err))
			}
			return ""
		}
	}

	return uri
}

// Select asks the picker for a new image, copies it into the sandbox and
// persists the copy's URI. On any failure the previous reference is kept.
func (v *ImageVault) Select(ctx context.Context) (string, error) {
	v.selectMu.Lock()
	defer v.selectMu.Unlock()

	granted, err := v.picker.RequestPermission(ctx)
	if err != nil {
		logging.Warn("Permission request failed", zap.Error(err))
		granted = false
	}
	if !granted {
		v.notify(model.NoticePermissionDenied)
		return "", ErrPermissionDenied
	}

	result, err := v.picker.PickImage(ctx)
	if err != nil {
		logging.Warn("Image picker failed", zap.Error(err))
		v.notify(model.NoticeImageSaveFailed)
		return "", fmt.Errorf("%w: %v", ErrImageSave, err)
	}
	if result.Cancelled || result.URI == "" {
		return "", ErrPickCancelled
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	previous, _, err := v.store.Get(v.key)
	if err != nil {
		logging.Warn("Failed to read previous image reference", zap.Error(err))
		previous = ""
	}

	target := v.TargetURI(result.URI)
	staging := v.stagingURI(result.URI)

	// Copy beside the target first so a failed copy never touches the current image
	if err := v.files.Delete(staging); err != nil {
		logging.Debug("Failed to clear staging file", zap.String("staging", staging), zap.Error(err))
	}
	if err := v.files.Copy(result.URI, staging); err != nil {
		return "", v.saveFailed(staging, "copy", err)
	}
	if err := v.files.Move(staging, target); err != nil {
		return "", v.saveFailed(staging, "move", err)
	}

	if err := v.store.Set(v.key, target); err != nil {
		logging.Warn("Failed to persist image reference", zap.String("uri", target), zap.Error(err))
	}

	if previous != "" && previous != target && v.ownsURI(previous) {
		if err := v.files.Delete(previous); err != nil {
			logging.Debug("Failed to delete orphaned image", zap.String("uri", previous), zap.Error(err))
		}
	}

	logging.Info("Image selected", zap.String("uri", target))
	return target, nil
}

// TargetURI returns the fixed sandbox URI a picked source is copied to
func (v *ImageVault) TargetURI(source string) string {
	return platform.FileURI(filepath.Join(v.sandboxDir, ImageBaseName+ImageExtension(source)))
}

// stagingURI returns the sibling of the target a pick is copied to first
func (v *ImageVault) stagingURI(source string) string {
	return platform.FileURI(filepath.Join(v.sandboxDir, ImageBaseName+stagingSuffix+ImageExtension(source)))
}

// saveFailed drops the staging copy, shows the notice and wraps err.
// The target is never touched here.
func (v *ImageVault) saveFailed(staging, step string, err error) error {
	logging.Error("Failed to save picked image", zap.String("step", step), zap.String("staging", staging), zap.Error(err))
	if derr := v.files.Delete(staging); derr != nil {
		logging.Debug("Failed to clean up staging file", zap.String("uri", staging), zap.Error(derr))
	}
	v.notify(model.NoticeImageSaveFailed)
	return fmt.Errorf("%w: %w", ErrImageSave, err)
}

// ownsURI reports whether uri is a copy this vault placed in its sandbox
func (v *ImageVault) ownsURI(uri string) bool {
	p, err := platform.LocalPath(uri)
	if err != nil {
		return false
	}
	base := filepath.Base(p)
	return filepath.Clean(filepath.Dir(p)) == filepath.Clean(v.sandboxDir) &&
		strings.HasPrefix(base, ImageBaseName)
}

// notify forwards a notice when a notifier is configured
func (v *ImageVault) notify(kind model.NoticeKind) {
	logging.Notice(kind.String())
	if v.notifier != nil {
		v.notifier.Notify(kind)
	}
}

// ImageExtension derives the file extension of a picked URI, ignoring any
// query string or fragment. DefaultImageExt is used when none is found.
func ImageExtension(uri string) string {
	clean := uri
	if i := strings.IndexAny(clean, "?#"); i >= 0 {
		clean = clean[:i]
	}
	if i := strings.Index(clean, "://"); i >= 0 {
		clean = clean[i+3:]
	}

	ext := path.Ext(path.Base(clean))
	if ext == "" || ext == "." || len(ext) > maxExtensionSize || strings.ContainsAny(ext, `\ `) {
		return DefaultImageExt
	}
	return ext
}
