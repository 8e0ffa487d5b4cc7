package present

// RegionID names a tappable or overlay area of the screen
type RegionID string

const (
	RegionGoogle       RegionID = "google-tap"
	RegionApple        RegionID = "apple-tap"
	RegionStartLogin   RegionID = "login-tap"
	RegionSignUp       RegionID = "signup-tap"
	RegionUsername     RegionID = "username-input"
	RegionPassword     RegionID = "password-input"
	RegionBack         RegionID = "back-arrow"
	RegionSaveToggle   RegionID = "save-toggle"
	RegionLoginButton  RegionID = "login-affordance"
	RegionConfirmation RegionID = "full-screen-tap"
)

// Rect is an axis-aligned box in fractions of the screen size
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the fractional point (x, y) lies inside r
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Region is one entry of the render plan
type Region struct {
	ID       RegionID
	Rect     Rect
	Disabled bool
}

// Start screen geometry
var (
	RectGoogle     = Rect{X: 0.075, Y: 0.657, W: 0.85, H: 0.058}
	RectApple      = Rect{X: 0.075, Y: 0.748, W: 0.85, H: 0.058}
	RectStartLogin = Rect{X: 0, Y: 0.815, W: 1, H: 0.0625}
	RectSignUp     = Rect{X: 0, Y: 0.8775, W: 1, H: 0.0625}
)

// Credentials screen geometry
var (
	RectBack     = Rect{X: 0.02, Y: 0.045, W: 0.14, H: 0.08}
	RectUsername = Rect{X: 0.145, Y: 0.242, W: 0.71, H: 0.043}
	RectPassword = Rect{X: 0.145, Y: 0.316, W: 0.65, H: 0.043}

	RectSaveToggleOpen   = Rect{X: 0.125, Y: 0.378, W: 0.795, H: 0.05}
	RectSaveToggleClosed = Rect{X: 0.185, Y: 0.872, W: 0.735, H: 0.042}

	// Login affordance, by (ready, focused)
	RectLoginReadyClosed = Rect{X: 0, Y: 0.615, W: 1, H: 0.059}
	RectLoginReadyOpen   = Rect{X: 0, Y: 0.51, W: 1, H: 0.059}
	RectLoginIdleClosed  = Rect{X: 0.18, Y: 0.668, W: 0.64, H: 0.059}
	RectLoginIdleOpen    = Rect{X: 0.18, Y: 0.524, W: 0.64, H: 0.059}

	// White cover over the lower controls while the keyboard is up
	RectLowerControlsCover = Rect{X: 0, Y: 0.58, W: 1, H: 0.42}
)

// RectFullScreen covers the whole screen
var RectFullScreen = Rect{X: 0, Y: 0, W: 1, H: 1}
