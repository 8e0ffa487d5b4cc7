package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"
	"go.uber.org/zap"

	"github.com/ytget/google-login/internal/logging"
	"github.com/ytget/google-login/internal/present"
)

var artworkFiles = map[present.ArtworkKey]string{
	present.ArtworkStartIdle:                ArtStartIdle,
	present.ArtworkStartPressed:             ArtStartPressed,
	present.ArtworkCredentials:              ArtCredentials,
	present.ArtworkCredentialsUnchecked:     ArtCredentialsUnchecked,
	present.ArtworkCredentialsOpen:          ArtCredentialsOpen,
	present.ArtworkCredentialsOpenUnchecked: ArtCredentialsOpenUnchecked,
}

var loginIconFiles = map[present.LoginIcon]string{
	present.LoginIconButton: ArtLoginButton,
	present.LoginIconLoader: ArtLoginLoader,
}

// ResolveAssetsDir finds the artwork directory. It checks $GOOGLE_LOGIN_ASSETS_DIR,
// then assets/ next to the executable, then assets/ in the working directory.
// The boolean is false when none of them exists.
func ResolveAssetsDir() (string, bool) {
	var candidates []string
	if dir := os.Getenv(AssetsDirEnvVar); dir != "" {
		candidates = append(candidates, dir)
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Join(filepath.Dir(exe), DefaultAssetsDir))
	}
	candidates = append(candidates, DefaultAssetsDir)

	for _, dir := range candidates {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			return dir, true
		}
	}
	return DefaultAssetsDir, false
}

// ArtworkSet loads the static screen images from an assets directory.
// Missing files are logged once and rendered as blank.
type ArtworkSet struct {
	dir string

	mu    sync.Mutex
	cache map[string]fyne.Resource
}

// NewArtworkSet creates an artwork set reading from dir
func NewArtworkSet(dir string) *ArtworkSet {
	return &ArtworkSet{dir: dir, cache: make(map[string]fyne.Resource)}
}

// Background returns the resource for a screen background. The held image
// is read fresh every time since a new pick overwrites the same file.
func (a *ArtworkSet) Background(art present.Artwork) fyne.Resource {
	if art.Key == present.ArtworkImage {
		res, err := LoadURIResource(art.URI)
		if err != nil {
			logging.Warn("Failed to load picked image", zap.String("uri", art.URI), zap.Error(err))
			return nil
		}
		return res
	}
	name, ok := artworkFiles[art.Key]
	if !ok {
		return nil
	}
	return a.load(name)
}

// LoginIcon returns the image drawn inside the login affordance
func (a *ArtworkSet) LoginIcon(icon present.LoginIcon) fyne.Resource {
	name, ok := loginIconFiles[icon]
	if !ok {
		return nil
	}
	return a.load(name)
}

// Logo returns the application icon
func (a *ArtworkSet) Logo() fyne.Resource {
	return a.load(AppIcon)
}

func (a *ArtworkSet) load(name string) fyne.Resource {
	a.mu.Lock()
	defer a.mu.Unlock()

	if res, ok := a.cache[name]; ok {
		return res
	}
	res, err := fyne.LoadResourceFromPath(filepath.Join(a.dir, name))
	if err != nil {
		logging.Warn("Failed to load artwork", zap.String("file", name), zap.Error(err))
		res = nil
	}
	a.cache[name] = res
	return res
}

// LoadURIResource reads the resource behind a URI string
func LoadURIResource(uri string) (fyne.Resource, error) {
	if uri == "" {
		return nil, fmt.Errorf("empty uri")
	}
	u, err := storage.ParseURI(uri)
	if err != nil {
		return nil, fmt.Errorf("invalid uri %s: %w", uri, err)
	}
	return storage.LoadResourceFromURI(u)
}
