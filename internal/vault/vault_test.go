package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ytget/google-login/internal/model"
	"github.com/ytget/google-login/internal/platform"
)

type memStore struct {
	mu        sync.Mutex
	values    map[string]string
	getErr    error
	setErr    error
	removeErr error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func (s *memStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.removeErr != nil {
		return s.removeErr
	}
	delete(s.values, key)
	return nil
}

type stubPicker struct {
	granted   bool
	permErr   error
	result    PickResult
	pickErr   error
	pickCalls int
}

func (p *stubPicker) RequestPermission(context.Context) (bool, error) {
	return p.granted, p.permErr
}

func (p *stubPicker) PickImage(context.Context) (PickResult, error) {
	p.pickCalls++
	return p.result, p.pickErr
}

type recordingNotifier struct {
	mu      sync.Mutex
	notices []model.NoticeKind
}

func (n *recordingNotifier) Notify(kind model.NoticeKind) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, kind)
}

func (n *recordingNotifier) all() []model.NoticeKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.NoticeKind(nil), n.notices...)
}

type failingFiles struct {
	platform.LocalFiles
	copyErr   error
	existsErr error
}

func (f failingFiles) Copy(src, dst string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	return f.LocalFiles.Copy(src, dst)
}

func (f failingFiles) Exists(uri string) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	return f.LocalFiles.Exists(uri)
}

// switchableFiles works normally until a failure is switched on
type switchableFiles struct {
	platform.LocalFiles
	copyErr error
	moveErr error
}

func (f *switchableFiles) Copy(src, dst string) error {
	if f.copyErr != nil {
		return f.copyErr
	}
	return f.LocalFiles.Copy(src, dst)
}

func (f *switchableFiles) Move(src, dst string) error {
	if f.moveErr != nil {
		return f.moveErr
	}
	return f.LocalFiles.Move(src, dst)
}

type fixture struct {
	store    *memStore
	picker   *stubPicker
	notifier *recordingNotifier
	vault    *ImageVault
	pickDir  string
	sandbox  string
}

func newFixture(t *testing.T, files Files) *fixture {
	t.Helper()
	root := t.TempDir()
	f := &fixture{
		store:    newMemStore(),
		picker:   &stubPicker{granted: true},
		notifier: &recordingNotifier{},
		pickDir:  filepath.Join(root, "gallery"),
		sandbox:  filepath.Join(root, "sandbox"),
	}
	require.NoError(t, os.MkdirAll(f.pickDir, 0755))
	if files == nil {
		files = platform.NewLocalFiles()
	}
	f.vault = NewImageVault(f.store, files, f.picker, f.notifier, f.sandbox)
	return f
}

func (f *fixture) galleryImage(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(f.pickDir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return platform.FileURI(p)
}

func TestLoad_Empty(t *testing.T) {
	f := newFixture(t, nil)

	require.Equal(t, "", f.vault.Load(context.Background()))
}

func TestLoad_ExistingLocalImage(t *testing.T) {
	f := newFixture(t, nil)
	uri := f.galleryImage(t, "kept.png", "img")
	f.store.values[DefaultKey] = uri

	require.Equal(t, uri, f.vault.Load(context.Background()))
}

func TestLoad_NonLocalURIIsTrusted(t *testing.T) {
	f := newFixture(t, nil)
	f.store.values[DefaultKey] = "content://media/external/images/7"

	require.Equal(t, "content://media/external/images/7", f.vault.Load(context.Background()))
}

func TestLoad_DanglingReferenceIsPurged(t *testing.T) {
	f := newFixture(t, nil)
	f.store.values[DefaultKey] = platform.FileURI(filepath.Join(f.sandbox, "google-login-image.jpg"))

	require.Equal(t, "", f.vault.Load(context.Background()))

	_, ok, err := f.store.Get(DefaultKey)
	require.NoError(t, err)
	require.False(t, ok, "dangling key should be removed from the store")

	require.Equal(t, "", f.vault.Load(context.Background()))
}

func TestLoad_StorageErrorsDegradeToAbsent(t *testing.T) {
	f := newFixture(t, nil)
	f.store.getErr = errors.New("disk on fire")

	require.Equal(t, "", f.vault.Load(context.Background()))
	require.Empty(t, f.notifier.all(), "storage errors are never surfaced")
}

func TestLoad_ExistsErrorDegradesToAbsent(t *testing.T) {
	f := newFixture(t, failingFiles{existsErr: errors.New("stat failed")})
	f.store.values[DefaultKey] = "file:///somewhere/google-login-image.jpg"

	require.Equal(t, "", f.vault.Load(context.Background()))
}

func TestLoad_RemoveErrorIsSwallowed(t *testing.T) {
	f := newFixture(t, nil)
	f.store.values[DefaultKey] = platform.FileURI(filepath.Join(f.sandbox, "gone.jpg"))
	f.store.removeErr = errors.New("read-only")

	require.Equal(t, "", f.vault.Load(context.Background()))
}

func TestSelect_PermissionDenied(t *testing.T) {
	f := newFixture(t, nil)
	f.picker.granted = false
	f.store.values[DefaultKey] = "file:///previous.jpg"

	uri, err := f.vault.Select(context.Background())

	require.ErrorIs(t, err, ErrPermissionDenied)
	require.Equal(t, "", uri)
	require.Equal(t, []model.NoticeKind{model.NoticePermissionDenied}, f.notifier.all())
	require.Equal(t, 0, f.picker.pickCalls, "picker must not open without permission")
	require.Equal(t, "file:///previous.jpg", f.store.values[DefaultKey])
}

func TestSelect_PermissionErrorCountsAsDenied(t *testing.T) {
	f := newFixture(t, nil)
	f.picker.permErr = errors.New("no activity")
	f.picker.granted = true

	_, err := f.vault.Select(context.Background())

	require.ErrorIs(t, err, ErrPermissionDenied)
}

func TestSelect_Cancelled(t *testing.T) {
	f := newFixture(t, nil)
	f.picker.result = PickResult{Cancelled: true}

	uri, err := f.vault.Select(context.Background())

	require.ErrorIs(t, err, ErrPickCancelled)
	require.Equal(t, "", uri)
	require.Empty(t, f.notifier.all())
	require.Empty(t, f.store.values)
}

func TestSelect_CopiesIntoSandboxAndPersists(t *testing.T) {
	f := newFixture(t, nil)
	f.picker.result = PickResult{URI: f.galleryImage(t, "IMG_0001.PNG", "pixels")}

	uri, err := f.vault.Select(context.Background())
	require.NoError(t, err)

	expected := platform.FileURI(filepath.Join(f.sandbox, "google-login-image.PNG"))
	require.Equal(t, expected, uri)
	require.Equal(t, expected, f.store.values[DefaultKey])

	data, err := os.ReadFile(filepath.Join(f.sandbox, "google-login-image.PNG"))
	require.NoError(t, err)
	require.Equal(t, "pixels", string(data))

	require.Equal(t, uri, f.vault.Load(context.Background()))
}

func TestSelect_OverwritesSameTarget(t *testing.T) {
	f := newFixture(t, nil)

	f.picker.result = PickResult{URI: f.galleryImage(t, "a.jpg", "first")}
	first, err := f.vault.Select(context.Background())
	require.NoError(t, err)

	f.picker.result = PickResult{URI: f.galleryImage(t, "b.jpg", "second")}
	second, err := f.vault.Select(context.Background())
	require.NoError(t, err)

	require.Equal(t, first, second)
	data, err := os.ReadFile(filepath.Join(f.sandbox, "google-login-image.jpg"))
	require.NoError(t, err)
	require.Equal(t, "second", string(data))
}

func TestSelect_DeletesOrphanedCopyWithOtherExtension(t *testing.T) {
	f := newFixture(t, nil)

	f.picker.result = PickResult{URI: f.galleryImage(t, "a.jpg", "first")}
	_, err := f.vault.Select(context.Background())
	require.NoError(t, err)

	f.picker.result = PickResult{URI: f.galleryImage(t, "b.png", "second")}
	uri, err := f.vault.Select(context.Background())
	require.NoError(t, err)
	require.Equal(t, platform.FileURI(filepath.Join(f.sandbox, "google-login-image.png")), uri)

	_, statErr := os.Stat(filepath.Join(f.sandbox, "google-login-image.jpg"))
	require.True(t, os.IsNotExist(statErr), "old copy should be removed")

	entries, err := os.ReadDir(f.sandbox)
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestSelect_CopyFailureKeepsPreviousReference(t *testing.T) {
	f := newFixture(t, failingFiles{copyErr: errors.New("no space left")})
	f.store.values[DefaultKey] = "file:///previous.jpg"
	f.picker.result = PickResult{URI: "file:///gallery/new.png"}

	uri, err := f.vault.Select(context.Background())

	require.ErrorIs(t, err, ErrImageSave)
	require.Equal(t, "", uri)
	require.Equal(t, []model.NoticeKind{model.NoticeImageSaveFailed}, f.notifier.all())
	require.Equal(t, "file:///previous.jpg", f.store.values[DefaultKey])
}

func TestSelect_FailedSaveKeepsCurrentSandboxImage(t *testing.T) {
	tests := []struct {
		name string
		fail func(*switchableFiles)
	}{
		{"copy fails", func(f *switchableFiles) { f.copyErr = errors.New("no space left") }},
		{"move fails", func(f *switchableFiles) { f.moveErr = errors.New("read-only") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := &switchableFiles{}
			f := newFixture(t, files)

			f.picker.result = PickResult{URI: f.galleryImage(t, "a.jpg", "first")}
			current, err := f.vault.Select(context.Background())
			require.NoError(t, err)

			tt.fail(files)
			f.picker.result = PickResult{URI: f.galleryImage(t, "b.jpg", "second")}
			_, err = f.vault.Select(context.Background())
			require.ErrorIs(t, err, ErrImageSave)

			require.Equal(t, current, f.store.values[DefaultKey])
			data, err := os.ReadFile(filepath.Join(f.sandbox, "google-login-image.jpg"))
			require.NoError(t, err)
			require.Equal(t, "first", string(data))
			require.Equal(t, current, f.vault.Load(context.Background()))

			entries, err := os.ReadDir(f.sandbox)
			require.NoError(t, err)
			require.Len(t, entries, 1, "staging copy should be cleaned up")
		})
	}
}

func TestSelect_PersistFailureIsSwallowed(t *testing.T) {
	f := newFixture(t, nil)
	f.store.setErr = errors.New("quota")
	f.picker.result = PickResult{URI: f.galleryImage(t, "a.gif", "gif")}

	uri, err := f.vault.Select(context.Background())

	require.NoError(t, err)
	require.NotEmpty(t, uri)
	require.Empty(t, f.notifier.all())
}

func TestSelect_PickerErrorShowsNotice(t *testing.T) {
	f := newFixture(t, nil)
	f.picker.pickErr = errors.New("picker crashed")

	_, err := f.vault.Select(context.Background())

	require.ErrorIs(t, err, ErrImageSave)
	require.Equal(t, []model.NoticeKind{model.NoticeImageSaveFailed}, f.notifier.all())
}

func TestSetKey(t *testing.T) {
	f := newFixture(t, nil)
	f.vault.SetKey("custom_key")
	f.picker.result = PickResult{URI: f.galleryImage(t, "a.jpg", "x")}

	uri, err := f.vault.Select(context.Background())
	require.NoError(t, err)
	require.Equal(t, uri, f.store.values["custom_key"])

	f.vault.SetKey("")
	require.Equal(t, uri, f.vault.Load(context.Background()))
}

func TestImageExtension(t *testing.T) {
	tests := []struct {
		uri      string
		expected string
	}{
		{"file:///gallery/photo.png", ".png"},
		{"file:///gallery/photo.jpeg?width=200", ".jpeg"},
		{"file:///gallery/photo.heic#frag", ".heic"},
		{"file:///gallery/photo", ".jpg"},
		{"file:///gallery.d/photo", ".jpg"},
		{"content://media/external/images/media/42", ".jpg"},
		{"file:///gallery/archive.", ".jpg"},
		{"file:///gallery/weird.notanextension", ".jpg"},
		{"", ".jpg"},
	}

	for _, test := range tests {
		if result := ImageExtension(test.uri); result != test.expected {
			t.Errorf("ImageExtension(%s) = %s, expected %s", test.uri, result, test.expected)
		}
	}
}
