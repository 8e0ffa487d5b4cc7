package present

import (
	"github.com/ytget/google-login/internal/model"
)

// ArtworkKey names one of the static background images
type ArtworkKey string

const (
	ArtworkStartIdle                ArtworkKey = "start-idle"
	ArtworkStartPressed             ArtworkKey = "start-pressed"
	ArtworkCredentials              ArtworkKey = "credentials"
	ArtworkCredentialsUnchecked     ArtworkKey = "credentials-unchecked"
	ArtworkCredentialsOpen          ArtworkKey = "credentials-open"
	ArtworkCredentialsOpenUnchecked ArtworkKey = "credentials-open-unchecked"

	// ArtworkImage means the background is the held image URI
	ArtworkImage ArtworkKey = "image"
)

// LoginIcon is the image drawn inside a ready login affordance
type LoginIcon string

const (
	LoginIconNone   LoginIcon = ""
	LoginIconButton LoginIcon = "login-button"
	LoginIconLoader LoginIcon = "login-loader"
)

// Artwork is the background of the screen
type Artwork struct {
	Key ArtworkKey
	URI string // set only for ArtworkImage
}

// RenderPlan is everything the rendering layer needs to paint a frame
type RenderPlan struct {
	Screen              model.Screen
	Artwork             Artwork
	Regions             []Region // in z-order, bottom first
	PasswordMask        string
	LoginIcon           LoginIcon
	Spinner             bool
	LowerControlsHidden bool
}

// Region returns the region with the given ID
func (p RenderPlan) Region(id RegionID) (Region, bool) {
	for _, r := range p.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// HitTest returns the topmost enabled region under the fractional point
func (p RenderPlan) HitTest(x, y float32) (RegionID, bool) {
	for i := len(p.Regions) - 1; i >= 0; i-- {
		r := p.Regions[i]
		if !r.Disabled && r.Rect.Contains(x, y) {
			return r.ID, true
		}
	}
	return "", false
}

// Present derives the render plan for a flow state and the held image
func Present(state model.FlowState, imageURI string) RenderPlan {
	switch state.Screen {
	case model.ScreenCredentials:
		return presentCredentials(state)
	case model.ScreenConfirmation:
		return presentConfirmation(imageURI)
	default:
		return presentStart(state)
	}
}

func presentStart(state model.FlowState) RenderPlan {
	key := ArtworkStartIdle
	if state.StartButtonPressed {
		key = ArtworkStartPressed
	}
	return RenderPlan{
		Screen:  model.ScreenStart,
		Artwork: Artwork{Key: key},
		Regions: []Region{
			{ID: RegionGoogle, Rect: RectGoogle},
			{ID: RegionApple, Rect: RectApple},
			{ID: RegionStartLogin, Rect: RectStartLogin},
			{ID: RegionSignUp, Rect: RectSignUp},
		},
	}
}

func presentCredentials(state model.FlowState) RenderPlan {
	focused := state.IsInputFocused()
	ready := state.IsLoginReady()

	plan := RenderPlan{
		Screen:              model.ScreenCredentials,
		Artwork:             Artwork{Key: credentialsArtwork(focused, state.SaveLoginEnabled)},
		PasswordMask:        state.PasswordMask(),
		Spinner:             state.Busy,
		LowerControlsHidden: focused,
	}

	switch {
	case state.Busy:
		plan.LoginIcon = LoginIconLoader
	case ready:
		plan.LoginIcon = LoginIconButton
	}

	saveRect := RectSaveToggleClosed
	if focused {
		saveRect = RectSaveToggleOpen
	}

	plan.Regions = []Region{
		{ID: RegionUsername, Rect: RectUsername},
		{ID: RegionPassword, Rect: RectPassword},
		{ID: RegionBack, Rect: RectBack},
		{ID: RegionSaveToggle, Rect: saveRect},
		{ID: RegionLoginButton, Rect: loginRect(ready, focused), Disabled: state.Busy},
	}
	return plan
}

func presentConfirmation(imageURI string) RenderPlan {
	return RenderPlan{
		Screen:  model.ScreenConfirmation,
		Artwork: Artwork{Key: ArtworkImage, URI: imageURI},
		Regions: []Region{
			{ID: RegionConfirmation, Rect: RectFullScreen},
		},
	}
}

// credentialsArtwork picks one of four backgrounds from (focused, saveLogin)
func credentialsArtwork(focused, saveLogin bool) ArtworkKey {
	variants := [2][2]ArtworkKey{
		{ArtworkCredentialsUnchecked, ArtworkCredentials},
		{ArtworkCredentialsOpenUnchecked, ArtworkCredentialsOpen},
	}
	return variants[b2i(focused)][b2i(saveLogin)]
}

// loginRect picks one of four affordance geometries from (ready, focused)
func loginRect(ready, focused bool) Rect {
	rects := [2][2]Rect{
		{RectLoginIdleClosed, RectLoginIdleOpen},
		{RectLoginReadyClosed, RectLoginReadyOpen},
	}
	return rects[b2i(ready)][b2i(focused)]
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
