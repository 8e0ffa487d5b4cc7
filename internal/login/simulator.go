package login

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/google-login/internal/logging"
)

// DefaultDelay is the simulated network latency of a login attempt
const DefaultDelay = 2000 * time.Millisecond

// HandleIDPrefix prefixes every simulated login ID
const HandleIDPrefix = "login-"

// ErrAlreadyPending is returned when a login is started while another is in flight
var ErrAlreadyPending = errors.New("simulated login already pending")

// handleState tracks the lifecycle of a single simulated login
type handleState int

const (
	statePending handleState = iota
	stateCompleted
	stateCancelled
)

// Handle is the cancellable token for one simulated login
type Handle struct {
	ID        string
	Delay     time.Duration
	StartedAt time.Time

	mu    sync.Mutex
	state handleState
	timer *time.Timer
	done  chan struct{}
	owner *Simulator
}

// Cancel stops the pending completion. It returns true if the completion was
// prevented; once Cancel returns, the completion callback never runs.
func (h *Handle) Cancel() bool {
	h.mu.Lock()
	if h.state != statePending {
		h.mu.Unlock()
		return false
	}
	h.state = stateCancelled
	h.timer.Stop()
	close(h.done)
	h.mu.Unlock()

	h.owner.release(h)
	logging.Debug("Simulated login cancelled", zap.String("id", h.ID))
	return true
}

// Done is closed when the handle completes or is cancelled
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Completed reports whether the completion callback was delivered
func (h *Handle) Completed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state == stateCompleted
}

// fire runs on the timer goroutine
func (h *Handle) fire(onComplete func(*Handle)) {
	h.mu.Lock()
	if h.state != statePending {
		h.mu.Unlock()
		return
	}
	h.state = stateCompleted
	close(h.done)
	h.mu.Unlock()

	h.owner.release(h)
	logging.Debug("Simulated login completed",
		zap.String("id", h.ID),
		zap.Duration("elapsed", time.Since(h.StartedAt)),
	)

	if onComplete != nil {
		onComplete(h)
	}
}

// Simulator hands out at most one pending Handle at a time
type Simulator struct {
	mu      sync.Mutex
	pending *Handle
}

// NewSimulator creates a new login simulator
func NewSimulator() *Simulator {
	return &Simulator{}
}

// Start schedules onComplete to run once after delay
func (s *Simulator) Start(delay time.Duration, onComplete func(*Handle)) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending != nil {
		return nil, ErrAlreadyPending
	}

	if delay < 0 {
		delay = 0
	}

	h := &Handle{
		ID:        generateHandleID(),
		Delay:     delay,
		StartedAt: time.Now(),
		done:      make(chan struct{}),
		owner:     s,
	}

	// Hold the handle lock so a zero delay cannot fire before timer is assigned
	h.mu.Lock()
	h.timer = time.AfterFunc(delay, func() { h.fire(onComplete) })
	h.mu.Unlock()

	s.pending = h
	logging.Debug("Simulated login started", zap.String("id", h.ID), zap.Duration("delay", delay))
	return h, nil
}

// Pending reports whether a simulated login is in flight
func (s *Simulator) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// release clears the pending slot if h still owns it
func (s *Simulator) release(h *Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == h {
		s.pending = nil
	}
}

// generateHandleID generates a unique handle ID
func generateHandleID() string {
	return HandleIDPrefix + uuid.New().String()
}

var _ Starter = (*Simulator)(nil)
