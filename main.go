package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/ytget/google-login/internal/config"
	"github.com/ytget/google-login/internal/flow"
	"github.com/ytget/google-login/internal/logging"
	"github.com/ytget/google-login/internal/login"
	"github.com/ytget/google-login/internal/platform"
	"github.com/ytget/google-login/internal/ui"
	"github.com/ytget/google-login/internal/vault"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.google-login"
)

func main() {
	if err := logging.Initialize(""); err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer logging.Sync()

	logging.Info("Google login starting", zap.String("version", version))

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewLoginTheme())

	myWindow := myApp.NewWindow("")
	mobile := ui.NewMobileUI(myApp)
	myWindow.Resize(mobile.WindowSize())
	myWindow.SetFixedSize(!mobile.IsMobileDevice())

	// Initialize services
	settings := config.NewSettings(myApp)
	localization := ui.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	sandboxDir := settings.GetSandboxDirectory()
	if err := platform.CreateDirectoryIfNotExists(sandboxDir); err != nil {
		logging.Warn("Failed to ensure sandbox dir", zap.String("dir", sandboxDir), zap.Error(err))
	}

	notifier := ui.NewDialogNotifier(myWindow, localization)
	images := vault.NewImageVault(
		config.NewPreferenceStore(myApp.Preferences()),
		platform.NewStorageFiles(),
		ui.NewFilePicker(myWindow, ui.PickerExtensions),
		notifier,
		sandboxDir,
	)
	images.SetKey(config.KeyGoogleImageURI)

	loginFlow := flow.New(images, login.NewSimulator(), notifier, settings.GetLoginDelay())

	assetsDir, found := ui.ResolveAssetsDir()
	if !found {
		logging.Warn("Artwork directory not found, screens will render blank",
			zap.String("dir", assetsDir), zap.String("override", ui.AssetsDirEnvVar))
	}

	// Create and setup UI
	screen := ui.NewLoginScreen(myWindow, myApp, loginFlow, settings, localization, ui.NewArtworkSet(assetsDir))
	myApp.Lifecycle().SetOnStopped(screen.Close)
	screen.Start()

	// Show and run
	myWindow.ShowAndRun()
}
