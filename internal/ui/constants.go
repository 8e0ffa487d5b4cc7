package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Window sizing; portrait phone proportions so the artwork is not distorted on desktop
const (
	WindowWidth  float32 = 390
	WindowHeight float32 = 844
)

// Artwork files, looked up in the assets directory
const (
	DefaultAssetsDir = "assets"
	AssetsDirEnvVar  = "GOOGLE_LOGIN_ASSETS_DIR"
	AppIcon          = "google-login.png"

	ArtStartIdle                = "start-screen.png"
	ArtStartPressed             = "login-click.png"
	ArtCredentials              = "login.png"
	ArtCredentialsUnchecked     = "loginunchecked.png"
	ArtCredentialsOpen          = "loginopen-full.png"
	ArtCredentialsOpenUnchecked = "loginopen-full-unchecked.png"
	ArtLoginButton              = "loginbutton.png"
	ArtLoginLoader              = "loginloader.png"
)

// Text overlays
const (
	MaskTextSize   float32 = 16
	InputTextSize  float32 = 15
	SettingsWidth  float32 = 340
	SettingsHeight float32 = 260
)

// Image file extensions offered by the picker
var PickerExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".heic"}
