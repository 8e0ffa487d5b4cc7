// Package flow implements the login screen state machine. A Flow owns the
// FlowState, the held image reference and the pending simulated login, and
// applies user input and asynchronous results to them under one lock so
// that check-then-act sequences never interleave.
package flow
