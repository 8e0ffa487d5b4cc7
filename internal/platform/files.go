package platform

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2/storage"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// URI schemes
const (
	FileScheme = "file://"
)

// ErrNotLocal is returned when an operation needs a file:// URI
var ErrNotLocal = errors.New("uri is not a local file")

// IsLocalURI reports whether uri points into the local filesystem
func IsLocalURI(uri string) bool {
	return strings.HasPrefix(uri, FileScheme)
}

// LocalPath converts a file:// URI into a filesystem path
func LocalPath(uri string) (string, error) {
	if !IsLocalURI(uri) {
		return "", fmt.Errorf("%w: %s", ErrNotLocal, uri)
	}
	path := strings.TrimPrefix(uri, FileScheme)
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrNotLocal)
	}
	return path, nil
}

// FileURI returns the file:// URI for a filesystem path
func FileURI(path string) string {
	return storage.NewFileURI(path).String()
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// LocalFiles implements the file service on top of the os package.
// Only file:// URIs are supported.
type LocalFiles struct{}

// NewLocalFiles creates a new os-backed file service
func NewLocalFiles() *LocalFiles {
	return &LocalFiles{}
}

// Exists reports whether the resource behind uri exists
func (LocalFiles) Exists(uri string) (bool, error) {
	path, err := LocalPath(uri)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return true, nil
}

// Copy copies src to dst, creating dst's directory and replacing any file there
func (LocalFiles) Copy(src, dst string) error {
	srcPath, err := LocalPath(src)
	if err != nil {
		return err
	}
	dstPath, err := LocalPath(dst)
	if err != nil {
		return err
	}

	if err := CreateDirectoryIfNotExists(filepath.Dir(dstPath)); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", dstPath, err)
	}

	in, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dstPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, DefaultFilePermissions)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", srcPath, dstPath, err)
	}
	return out.Close()
}

// Move renames src over dst, replacing any file there
func (LocalFiles) Move(src, dst string) error {
	srcPath, err := LocalPath(src)
	if err != nil {
		return err
	}
	dstPath, err := LocalPath(dst)
	if err != nil {
		return err
	}
	if err := os.Rename(srcPath, dstPath); err != nil {
		return fmt.Errorf("failed to move %s to %s: %w", srcPath, dstPath, err)
	}
	return nil
}

// Delete removes the file behind uri; a missing file is not an error
func (LocalFiles) Delete(uri string) error {
	path, err := LocalPath(uri)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", path, err)
	}
	return nil
}
