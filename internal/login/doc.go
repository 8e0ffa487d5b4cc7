package login

// Package login simulates the network round trip of a login attempt as a
// cancellable timer. It performs no I/O; its only job is to deliver exactly
// one completion after a delay unless cancelled first.
