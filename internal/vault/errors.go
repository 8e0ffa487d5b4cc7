package vault

import "errors"

var (
	// ErrPermissionDenied means the picker was not allowed to read the media library
	ErrPermissionDenied = errors.New("media library permission denied")

	// ErrPickCancelled means the user dismissed the picker without choosing
	ErrPickCancelled = errors.New("image pick cancelled")

	// ErrImageSave means the picked image could not be copied into the sandbox
	ErrImageSave = errors.New("could not save selected image")
)
