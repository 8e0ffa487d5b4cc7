package model

// Package model defines the login flow data: the screen enum, the flow state
// with its derived predicates, and the notice kinds surfaced to the user.
// Structures are plain values so they can be snapshotted and handed to the
// presenter without sharing mutable state.
