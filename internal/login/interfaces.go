package login

import "time"

// Starter defines the interface the login flow needs from the simulator.
type Starter interface {
	Start(delay time.Duration, onComplete func(*Handle)) (*Handle, error)
	Pending() bool
}
