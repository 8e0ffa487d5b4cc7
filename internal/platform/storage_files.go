package platform

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2/storage"
)

// StorageFiles implements the file service through Fyne's storage
// repositories, so picked content:// URIs on mobile can be copied too.
type StorageFiles struct{}

// NewStorageFiles creates a new repository-backed file service
func NewStorageFiles() *StorageFiles {
	return &StorageFiles{}
}

// Exists reports whether the resource behind uri exists
func (StorageFiles) Exists(uri string) (bool, error) {
	u, err := storage.ParseURI(uri)
	if err != nil {
		return false, fmt.Errorf("invalid uri %s: %w", uri, err)
	}
	return storage.Exists(u)
}

// Copy copies src to dst, replacing whatever is at dst
func (StorageFiles) Copy(src, dst string) error {
	from, err := storage.ParseURI(src)
	if err != nil {
		return fmt.Errorf("invalid source uri %s: %w", src, err)
	}
	to, err := storage.ParseURI(dst)
	if err != nil {
		return fmt.Errorf("invalid destination uri %s: %w", dst, err)
	}

	if IsLocalURI(dst) {
		if path, err := LocalPath(dst); err == nil {
			if err := CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", path, err)
			}
		}
	}

	if err := storage.Copy(from, to); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return nil
}

// Move moves src over dst. Local files are renamed in place; other
// repositories get dst cleared first.
func (s StorageFiles) Move(src, dst string) error {
	if IsLocalURI(src) && IsLocalURI(dst) {
		return LocalFiles{}.Move(src, dst)
	}

	from, err := storage.ParseURI(src)
	if err != nil {
		return fmt.Errorf("invalid source uri %s: %w", src, err)
	}
	to, err := storage.ParseURI(dst)
	if err != nil {
		return fmt.Errorf("invalid destination uri %s: %w", dst, err)
	}
	if err := s.Delete(dst); err != nil {
		return err
	}
	if err := storage.Move(from, to); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", src, dst, err)
	}
	return nil
}

// Delete removes the resource behind uri; a missing resource is not an error
func (s StorageFiles) Delete(uri string) error {
	u, err := storage.ParseURI(uri)
	if err != nil {
		return fmt.Errorf("invalid uri %s: %w", uri, err)
	}
	exists, err := storage.Exists(u)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	return storage.Delete(u)
}
