package login

import (
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

const testDelay = 20 * time.Millisecond

func waitDone(t *testing.T, h *Handle) {
	t.Helper()
	select {
	case <-h.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("Handle %s did not finish in time", h.ID)
	}
}

func TestNewSimulator(t *testing.T) {
	sim := NewSimulator()

	if sim.Pending() {
		t.Error("Expected new simulator to have nothing pending")
	}
}

func TestStart_CompletesOnce(t *testing.T) {
	sim := NewSimulator()

	var calls int32
	h, err := sim.Start(testDelay, func(*Handle) {
		atomic.AddInt32(&calls, 1)
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !sim.Pending() {
		t.Error("Expected simulator to report pending login")
	}

	waitDone(t, h)
	time.Sleep(2 * testDelay)

	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("Expected completion exactly once, got %d", got)
	}
	if !h.Completed() {
		t.Error("Expected handle to be completed")
	}
	if sim.Pending() {
		t.Error("Expected pending slot to be released after completion")
	}
	if elapsed := time.Since(h.StartedAt); elapsed < testDelay {
		t.Errorf("Completion fired too early: %v", elapsed)
	}
}

func TestStart_RejectsWhilePending(t *testing.T) {
	sim := NewSimulator()

	h, err := sim.Start(time.Hour, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer h.Cancel()

	_, err = sim.Start(testDelay, nil)
	if !errors.Is(err, ErrAlreadyPending) {
		t.Errorf("Expected ErrAlreadyPending, got %v", err)
	}
}

func TestCancel_PreventsCompletion(t *testing.T) {
	sim := NewSimulator()

	var calls int32
	h, err := sim.Start(testDelay, func(*Handle) {
		atomic.AddInt32(&calls, 1)
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !h.Cancel() {
		t.Fatal("Expected Cancel to prevent a pending completion")
	}

	time.Sleep(3 * testDelay)

	if got := atomic.LoadInt32(&calls); got != 0 {
		t.Errorf("Expected no completion after cancel, got %d", got)
	}
	if h.Completed() {
		t.Error("Cancelled handle must not report completion")
	}
	if sim.Pending() {
		t.Error("Expected pending slot to be released after cancel")
	}

	// A second cancel is a no-op
	if h.Cancel() {
		t.Error("Expected second Cancel to return false")
	}
}

func TestCancel_AfterCompletion(t *testing.T) {
	sim := NewSimulator()

	h, err := sim.Start(0, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	waitDone(t, h)

	if h.Cancel() {
		t.Error("Cancel after completion should return false")
	}
}

func TestStart_AllowsNewLoginAfterCancel(t *testing.T) {
	sim := NewSimulator()

	first, err := sim.Start(time.Hour, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	first.Cancel()

	second, err := sim.Start(testDelay, nil)
	if err != nil {
		t.Fatalf("Expected new login after cancel, got %v", err)
	}
	waitDone(t, second)

	if first.ID == second.ID {
		t.Error("Expected distinct handle IDs")
	}
}

func TestStart_NegativeDelayClamped(t *testing.T) {
	sim := NewSimulator()

	h, err := sim.Start(-time.Second, nil)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if h.Delay != 0 {
		t.Errorf("Expected delay clamped to 0, got %v", h.Delay)
	}
	waitDone(t, h)
}

func TestGenerateHandleID(t *testing.T) {
	id1 := generateHandleID()
	id2 := generateHandleID()

	if id1 == id2 {
		t.Error("Expected different handle IDs")
	}

	if !strings.HasPrefix(id1, HandleIDPrefix) {
		t.Errorf("Expected ID to start with '%s', got: %s", HandleIDPrefix, id1)
	}

	// login- + 36 chars for UUID
	if len(id1) != len(HandleIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(HandleIDPrefix)+36, len(id1), id1)
	}
}
