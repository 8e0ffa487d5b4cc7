package model

// Screen represents which top-level screen of the login flow is visible
type Screen string

const (
	// ScreenStart is the landing screen with the provider buttons
	ScreenStart Screen = "Start"

	// ScreenCredentials is the username/password entry screen
	ScreenCredentials Screen = "Credentials"

	// ScreenConfirmation shows the selected Google image after a simulated login
	ScreenConfirmation Screen = "Confirmation"
)

// String returns the string representation of Screen
func (s Screen) String() string {
	return string(s)
}

// HasTextInput returns true if the screen shows the credential text fields
func (s Screen) HasTextInput() bool {
	return s == ScreenCredentials
}

// IsValid returns true for the three known screens
func (s Screen) IsValid() bool {
	return s == ScreenStart || s == ScreenCredentials || s == ScreenConfirmation
}
