package flow

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ytget/google-login/internal/logging"
	"github.com/ytget/google-login/internal/login"
	"github.com/ytget/google-login/internal/model"
)

// Flow events, used for logging transitions
const (
	EventOpenCredentials     = "open_credentials"
	EventBack                = "back"
	EventLoginCompleted      = "login_completed"
	EventDismissConfirmation = "dismiss_confirmation"
)

// Flow is the login screen state machine
type Flow struct {
	mu       sync.Mutex
	state    model.FlowState
	imageURI string

	images    ImageSource
	simulator login.Starter
	notifier  Notifier
	delay     time.Duration

	pending    *login.Handle
	selecting  bool // an image pick is in flight
	mounted    bool
	generation uint64 // bumped on every mount/unmount to fence stale async results

	onUpdate      func(Snapshot) // callback for UI updates
	onDismissKeys func()         // asks the UI to hide the soft keyboard
}

// New creates a flow in its initial state; call Mount before use
func New(images ImageSource, simulator login.Starter, notifier Notifier, delay time.Duration) *Flow {
	if delay < 0 {
		delay = login.DefaultDelay
	}
	return &Flow{
		state:     model.NewFlowState(),
		images:    images,
		simulator: simulator,
		notifier:  notifier,
		delay:     delay,
	}
}

// SetUpdateCallback sets the callback invoked after every state change
func (f *Flow) SetUpdateCallback(callback func(Snapshot)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onUpdate = callback
}

// SetKeyboardDismissCallback sets the callback used to drop text focus
func (f *Flow) SetKeyboardDismissCallback(callback func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onDismissKeys = callback
}

// SetDelay changes the simulated login delay for subsequent submits
func (f *Flow) SetDelay(delay time.Duration) {
	if delay < 0 {
		delay = login.DefaultDelay
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = delay
}

// Snapshot returns a copy of the current state
func (f *Flow) Snapshot() Snapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

// Mount resets the state and restores the persisted image reference.
// It blocks on the store read; call it off the UI thread.
func (f *Flow) Mount(ctx context.Context) {
	f.mu.Lock()
	f.generation++
	gen := f.generation
	f.mounted = true
	f.state = model.NewFlowState()
	f.imageURI = ""
	f.mu.Unlock()
	f.notifyUpdate()

	uri := f.images.Load(ctx)

	f.mu.Lock()
	if !f.isCurrentLocked(gen) || f.imageURI != "" {
		// unmounted meanwhile, or a pick already resolved and wins
		f.mu.Unlock()
		return
	}
	f.imageURI = uri
	f.mu.Unlock()

	logging.Debug("Flow mounted", zap.Bool("has_image", uri != ""))
	f.notifyUpdate()
}

// Unmount cancels any pending simulated login; later async results are dropped
func (f *Flow) Unmount() {
	f.mu.Lock()
	f.generation++
	f.mounted = false
	pending := f.pending
	f.pending = nil
	f.state.Busy = false
	f.mu.Unlock()

	if pending != nil {
		pending.Cancel()
	}
	logging.Debug("Flow unmounted")
}

// ContinueWithGoogle opens the image picker. The held image only changes
// once the vault resolves successfully. Blocks until the picker resolves;
// taps while a pick is in flight are ignored.
func (f *Flow) ContinueWithGoogle(ctx context.Context) bool {
	f.mu.Lock()
	if !f.mounted || f.state.Screen != model.ScreenStart || f.selecting {
		f.mu.Unlock()
		return false
	}
	gen := f.generation
	f.selecting = true
	f.mu.Unlock()

	uri, err := f.images.Select(ctx)

	f.mu.Lock()
	f.selecting = false
	if err != nil {
		f.mu.Unlock()
		logging.Debug("Image selection did not complete", zap.Error(err))
		return false
	}
	if !f.isCurrentLocked(gen) {
		f.mu.Unlock()
		return false
	}
	f.imageURI = uri
	f.mu.Unlock()

	f.notifyUpdate()
	return true
}

// ContinueWithApple shows an informational notice
func (f *Flow) ContinueWithApple() bool {
	return f.informational(model.NoticeAppleTapped)
}

// SignUp shows an informational notice
func (f *Flow) SignUp() bool {
	return f.informational(model.NoticeSignUpTapped)
}

// PressStartLogin toggles the press feedback of the start screen login button
func (f *Flow) PressStartLogin(pressed bool) bool {
	return f.update(func(s *model.FlowState) bool {
		if s.Screen != model.ScreenStart || s.StartButtonPressed == pressed {
			return false
		}
		s.StartButtonPressed = pressed
		return true
	})
}

// OpenCredentials moves from the start screen to credential entry
func (f *Flow) OpenCredentials() bool {
	changed := f.update(func(s *model.FlowState) bool {
		if s.Screen != model.ScreenStart {
			return false
		}
		s.StartButtonPressed = false
		s.Screen = model.ScreenCredentials
		return true
	})
	if changed {
		logging.Transition(model.ScreenStart.String(), model.ScreenCredentials.String(), EventOpenCredentials)
	}
	return changed
}

// Back leaves credential entry for the start screen, dropping focus and
// cancelling a simulated login still in flight
func (f *Flow) Back() bool {
	f.mu.Lock()
	if !f.mounted || f.state.Screen != model.ScreenCredentials {
		f.mu.Unlock()
		return false
	}
	f.state.Screen = model.ScreenStart
	f.state.ClearPointerState()
	f.state.Busy = false
	pending := f.pending
	f.pending = nil
	dismiss := f.onDismissKeys
	f.mu.Unlock()

	if pending != nil {
		pending.Cancel()
	}
	if dismiss != nil {
		dismiss()
	}

	logging.Transition(model.ScreenCredentials.String(), model.ScreenStart.String(), EventBack)
	f.notifyUpdate()
	return true
}

// SetUsernameOrEmail records the username field text
func (f *Flow) SetUsernameOrEmail(text string) bool {
	return f.update(func(s *model.FlowState) bool {
		if s.Screen != model.ScreenCredentials || s.UsernameOrEmail == text {
			return false
		}
		s.UsernameOrEmail = text
		return true
	})
}

// SetPassword records the password field text
func (f *Flow) SetPassword(text string) bool {
	return f.update(func(s *model.FlowState) bool {
		if s.Screen != model.ScreenCredentials || s.Password == text {
			return false
		}
		s.Password = text
		return true
	})
}

// SetUsernameFocused mirrors the username field focus signal
func (f *Flow) SetUsernameFocused(focused bool) bool {
	return f.update(func(s *model.FlowState) bool {
		if s.Screen != model.ScreenCredentials || s.UsernameFocused == focused {
			return false
		}
		s.UsernameFocused = focused
		return true
	})
}

// SetPasswordFocused mirrors the password field focus signal
func (f *Flow) SetPasswordFocused(focused bool) bool {
	return f.update(func(s *model.FlowState) bool {
		if s.Screen != model.ScreenCredentials || s.PasswordFocused == focused {
			return false
		}
		s.PasswordFocused = focused
		return true
	})
}

// ToggleSaveLogin flips the session-only "save login" checkbox
func (f *Flow) ToggleSaveLogin() bool {
	return f.update(func(s *model.FlowState) bool {
		if s.Screen != model.ScreenCredentials {
			return false
		}
		s.SaveLoginEnabled = !s.SaveLoginEnabled
		return true
	})
}

// SubmitLogin starts a simulated login. It is a silent no-op while busy or
// when the credentials are incomplete; without an image it shows a notice.
func (f *Flow) SubmitLogin() bool {
	f.mu.Lock()
	if !f.mounted || f.state.Screen != model.ScreenCredentials {
		f.mu.Unlock()
		return false
	}
	if !f.state.IsLoginReady() || f.state.Busy {
		f.mu.Unlock()
		return false
	}
	if f.imageURI == "" {
		f.mu.Unlock()
		f.notify(model.NoticeImageRequired)
		return false
	}

	gen := f.generation
	delay := f.delay
	handle, err := f.simulator.Start(delay, func(h *login.Handle) {
		f.completeLogin(gen, h)
	})
	if err != nil {
		f.mu.Unlock()
		logging.Warn("Simulated login rejected", zap.Error(err))
		return false
	}
	f.pending = handle
	f.state.Busy = true
	f.mu.Unlock()

	logging.Info("Simulated login started", zap.String("id", handle.ID), zap.Duration("delay", delay))
	f.notifyUpdate()
	return true
}

// DismissConfirmation returns from the confirmation image to the start screen
func (f *Flow) DismissConfirmation() bool {
	changed := f.update(func(s *model.FlowState) bool {
		if s.Screen != model.ScreenConfirmation {
			return false
		}
		s.Screen = model.ScreenStart
		s.Busy = false
		return true
	})
	if changed {
		logging.Transition(model.ScreenConfirmation.String(), model.ScreenStart.String(), EventDismissConfirmation)
	}
	return changed
}

// completeLogin runs on the simulator's timer goroutine
func (f *Flow) completeLogin(gen uint64, h *login.Handle) {
	f.mu.Lock()
	if !f.isCurrentLocked(gen) || f.pending != h || !f.state.Busy {
		f.mu.Unlock()
		logging.Debug("Dropping stale login completion", zap.String("id", h.ID))
		return
	}
	f.pending = nil
	f.state.Busy = false
	f.state.ClearPointerState()
	f.state.Screen = model.ScreenConfirmation
	dismiss := f.onDismissKeys
	f.mu.Unlock()

	if dismiss != nil {
		dismiss()
	}

	logging.Transition(model.ScreenCredentials.String(), model.ScreenConfirmation.String(), EventLoginCompleted)
	f.notifyUpdate()
}

// update applies mutate under the lock and notifies when it reports a change
func (f *Flow) update(mutate func(*model.FlowState) bool) bool {
	f.mu.Lock()
	if !f.mounted {
		f.mu.Unlock()
		return false
	}
	changed := mutate(&f.state)
	f.mu.Unlock()

	if changed {
		f.notifyUpdate()
	}
	return changed
}

// informational shows a notice from the start screen without changing state
func (f *Flow) informational(kind model.NoticeKind) bool {
	f.mu.Lock()
	ok := f.mounted && f.state.Screen == model.ScreenStart
	f.mu.Unlock()
	if ok {
		f.notify(kind)
	}
	return ok
}

// isCurrentLocked reports whether an async result from generation gen may
// still be applied
func (f *Flow) isCurrentLocked(gen uint64) bool {
	return f.mounted && f.generation == gen
}

func (f *Flow) snapshotLocked() Snapshot {
	return Snapshot{State: f.state, ImageURI: f.imageURI}
}

// notify forwards a notice when a notifier is configured
func (f *Flow) notify(kind model.NoticeKind) {
	logging.Notice(kind.String())
	if f.notifier != nil {
		f.notifier.Notify(kind)
	}
}

// notifyUpdate calls the update callback with a fresh snapshot
func (f *Flow) notifyUpdate() {
	f.mu.Lock()
	callback := f.onUpdate
	snap := f.snapshotLocked()
	f.mu.Unlock()

	if callback != nil {
		callback(snap)
	}
}
