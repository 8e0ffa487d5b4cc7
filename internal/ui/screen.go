package ui

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/google-login/internal/config"
	"github.com/ytget/google-login/internal/flow"
	"github.com/ytget/google-login/internal/logging"
	"github.com/ytget/google-login/internal/model"
	"github.com/ytget/google-login/internal/present"
)

var maskColor = color.RGBA{R: 32, G: 33, B: 36, A: 255}

// LoginScreen paints the login flow into a window
type LoginScreen struct {
	window       fyne.Window
	flow         *flow.Flow
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	artwork      *ArtworkSet

	ctx    context.Context
	cancel context.CancelFunc

	background   *canvas.Image
	cover        *canvas.Rectangle
	dismissZone  *tapZone
	username     *focusEntry
	password     *focusEntry
	usernameView fyne.CanvasObject // username inside its theme override
	passwordView fyne.CanvasObject
	passwordMask *canvas.Text
	loginIcon    *canvas.Image
	spinner      *busyIndicator
	zones        map[present.RegionID]*tapZone
	regions      *regionLayout
	content      *fyne.Container

	lastArtwork present.Artwork
	plan        present.RenderPlan
}

// NewLoginScreen builds the screen and subscribes it to flow updates
func NewLoginScreen(window fyne.Window, app fyne.App, loginFlow *flow.Flow, settings *config.Settings, localization *Localization, artwork *ArtworkSet) *LoginScreen {
	ctx, cancel := context.WithCancel(context.Background())

	s := &LoginScreen{
		window:       window,
		flow:         loginFlow,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		artwork:      artwork,
		ctx:          ctx,
		cancel:       cancel,
		zones:        make(map[present.RegionID]*tapZone),
		regions:      newRegionLayout(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))
	if logo := artwork.Logo(); logo != nil {
		window.SetIcon(logo)
	}

	s.setupUI()
	s.createMenu()

	loginFlow.SetUpdateCallback(s.onFlowUpdate)
	loginFlow.SetKeyboardDismissCallback(func() {
		fyne.Do(func() { s.mobile.DismissKeyboard(s.window.Canvas()) })
	})

	s.apply(loginFlow.Snapshot())
	return s
}

// Start mounts the flow; the persisted image is restored in the background
func (s *LoginScreen) Start() {
	go s.flow.Mount(s.ctx)
}

// Close unmounts the flow and abandons any open picker
func (s *LoginScreen) Close() {
	s.cancel()
	s.flow.Unmount()
}

// setupUI creates the layers of the screen, bottom first
func (s *LoginScreen) setupUI() {
	s.background = canvas.NewImageFromResource(nil)
	s.background.FillMode = canvas.ImageFillStretch

	s.dismissZone = newTapZone(func() { s.mobile.DismissKeyboard(s.window.Canvas()) })

	s.cover = canvas.NewRectangle(color.White)

	s.username = newFocusEntry(mobile.SingleLineKeyboard, func(focused bool) { s.flow.SetUsernameFocused(focused) })
	s.username.OnChanged = func(text string) { s.flow.SetUsernameOrEmail(text) }

	s.password = newFocusEntry(mobile.PasswordKeyboard, func(focused bool) { s.flow.SetPasswordFocused(focused) })
	s.password.OnChanged = func(text string) { s.flow.SetPassword(text) }
	s.password.OnSubmitted = func(string) { s.flow.SubmitLogin() }

	s.passwordMask = canvas.NewText("", maskColor)
	s.passwordMask.TextSize = MaskTextSize

	s.loginIcon = canvas.NewImageFromResource(nil)
	s.loginIcon.FillMode = canvas.ImageFillStretch

	s.spinner = newBusyIndicator()

	s.zones[present.RegionGoogle] = newTapZone(func() { go s.flow.ContinueWithGoogle(s.ctx) })
	s.zones[present.RegionApple] = newTapZone(func() { s.flow.ContinueWithApple() })
	s.zones[present.RegionSignUp] = newTapZone(func() { s.flow.SignUp() })
	startLogin := newTapZone(func() { s.flow.OpenCredentials() })
	startLogin.SetOnPress(func(pressed bool) { s.flow.PressStartLogin(pressed) })
	s.zones[present.RegionStartLogin] = startLogin
	s.zones[present.RegionBack] = newTapZone(func() { s.flow.Back() })
	s.zones[present.RegionSaveToggle] = newTapZone(func() { s.flow.ToggleSaveLogin() })
	s.zones[present.RegionLoginButton] = newTapZone(func() { s.flow.SubmitLogin() })
	s.zones[present.RegionConfirmation] = newTapZone(func() { s.flow.DismissConfirmation() })

	base := NewLoginTheme()
	s.usernameView = container.NewThemeOverride(s.username, newInputTheme(base, false))
	s.passwordView = container.NewThemeOverride(s.password, newInputTheme(base, true))

	s.content = container.New(s.regions,
		s.background,
		s.dismissZone,
		s.cover,
		s.usernameView,
		s.passwordView,
		s.passwordMask,
		s.zones[present.RegionBack],
		s.zones[present.RegionSaveToggle],
		s.loginIcon,
		s.spinner.container,
		s.zones[present.RegionLoginButton],
		s.zones[present.RegionGoogle],
		s.zones[present.RegionApple],
		s.zones[present.RegionStartLogin],
		s.zones[present.RegionSignUp],
		s.zones[present.RegionConfirmation],
	)

	s.window.SetContent(s.content)
}

// createMenu creates the application menu
func (s *LoginScreen) createMenu() {
	settingsItem := fyne.NewMenuItem(s.localization.GetText(KeySettings), s.onShowSettings)
	s.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(s.localization.GetText(KeyFile), settingsItem),
	))
}

// onShowSettings shows the settings dialog
func (s *LoginScreen) onShowSettings() {
	NewSettingsDialog(s.settings, s.localization, s.window, func() {
		s.flow.SetDelay(s.settings.GetLoginDelay())
		s.window.SetTitle(s.localization.GetText(KeyAppTitle))
		s.createMenu()
	}).Show()
}

// onFlowUpdate is called by the flow from any goroutine
func (s *LoginScreen) onFlowUpdate(snap flow.Snapshot) {
	fyne.Do(func() { s.apply(snap) })
}

// apply syncs the widgets with a flow snapshot; UI goroutine only
func (s *LoginScreen) apply(snap flow.Snapshot) {
	s.syncInputs(snap.State)
	s.render(present.Present(snap.State, snap.ImageURI))
}

// syncInputs pushes state the flow changed on its own back into the widgets
func (s *LoginScreen) syncInputs(state model.FlowState) {
	if s.username.Text != state.UsernameOrEmail {
		s.username.SetText(state.UsernameOrEmail)
	}
	if s.password.Text != state.Password {
		s.password.SetText(state.Password)
	}

	if state.IsInputFocused() {
		return
	}
	switch s.window.Canvas().Focused() {
	case fyne.Focusable(s.username), fyne.Focusable(s.password):
		s.mobile.DismissKeyboard(s.window.Canvas())
	}
}

// render shows exactly the layers the plan asks for
func (s *LoginScreen) render(plan present.RenderPlan) {
	s.plan = plan
	s.setArtwork(plan.Artwork)

	visible := make(map[fyne.CanvasObject]bool)
	for _, region := range plan.Regions {
		for _, obj := range s.objectsFor(region.ID) {
			s.regions.place(obj, region.Rect)
			visible[obj] = true
		}
		if z, ok := s.zones[region.ID]; ok {
			z.SetDisabled(region.Disabled)
		}
	}

	if plan.LowerControlsHidden {
		s.regions.place(s.cover, present.RectLowerControlsCover)
		visible[s.cover] = true
	}
	visible[s.dismissZone] = plan.Screen == model.ScreenCredentials

	s.loginIcon.Resource = s.artwork.LoginIcon(plan.LoginIcon)
	if plan.LoginIcon == present.LoginIconNone || s.loginIcon.Resource == nil {
		visible[s.loginIcon] = false
	}
	s.loginIcon.Refresh()

	s.passwordMask.Text = plan.PasswordMask
	s.passwordMask.Refresh()

	for _, obj := range s.managed() {
		if visible[obj] {
			obj.Show()
		} else {
			obj.Hide()
		}
	}
	s.spinner.SetBusy(plan.Spinner)

	s.content.Refresh()
}

// setArtwork swaps the background only when it actually changes
func (s *LoginScreen) setArtwork(art present.Artwork) {
	if art == s.lastArtwork && s.background.Resource != nil {
		return
	}
	s.lastArtwork = art
	s.background.Resource = s.artwork.Background(art)
	s.background.Refresh()
	logging.Debug("Artwork changed", zap.String("key", string(art.Key)))
}

// objectsFor returns the canvas objects drawn at a region
func (s *LoginScreen) objectsFor(id present.RegionID) []fyne.CanvasObject {
	switch id {
	case present.RegionUsername:
		return []fyne.CanvasObject{s.usernameView}
	case present.RegionPassword:
		return []fyne.CanvasObject{s.passwordView, s.passwordMask}
	case present.RegionLoginButton:
		return []fyne.CanvasObject{s.loginIcon, s.spinner.container, s.zones[id]}
	}
	if z, ok := s.zones[id]; ok {
		return []fyne.CanvasObject{z}
	}
	return nil
}

// managed returns every layer whose visibility follows the plan
func (s *LoginScreen) managed() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{
		s.dismissZone,
		s.cover,
		s.usernameView,
		s.passwordView,
		s.passwordMask,
		s.loginIcon,
	}
	for _, z := range s.zones {
		objects = append(objects, z)
	}
	return objects
}

// Plan returns the last rendered plan
func (s *LoginScreen) Plan() present.RenderPlan {
	return s.plan
}

// busyIndicator runs the spinner only while the flow is busy. Start and
// stop happen on busy transitions, never on unrelated repaints.
type busyIndicator struct {
	activity  *widget.Activity
	container *fyne.Container
	busy      bool
}

func newBusyIndicator() *busyIndicator {
	activity := widget.NewActivity()
	b := &busyIndicator{
		activity:  activity,
		container: container.NewCenter(activity),
	}
	b.container.Hide()
	return b
}

// SetBusy starts or stops the spinner when busy changes
func (b *busyIndicator) SetBusy(busy bool) {
	if busy == b.busy {
		return
	}
	b.busy = busy
	if busy {
		b.container.Show()
		b.activity.Start()
		return
	}
	b.activity.Stop()
	b.container.Hide()
}

// Busy reports whether the spinner is running
func (b *busyIndicator) Busy() bool {
	return b.busy
}
