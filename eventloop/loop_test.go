package eventloop

import (
	"sync/atomic"
	"testing"
	"time"
)

// TestRealSerializesCallbacks verifies posts run in order on one goroutine
func TestRealSerializesCallbacks(t *testing.T) {
	l := New()
	defer l.Close()

	var got []int
	for i := 0; i < 100; i++ {
		l.Post(func() { got = append(got, i) })
	}

	// Call returns after everything queued before it
	l.Call(func() {})

	if len(got) != 100 {
		t.Fatalf("ran %d callbacks, want 100", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("got[%d] = %d, out of order", i, v)
		}
	}
}

// TestRealAfterFunc verifies timers fire on the loop and Stop prevents firing
func TestRealAfterFunc(t *testing.T) {
	l := New()
	defer l.Close()

	fired := make(chan struct{})
	l.AfterFunc(5*time.Millisecond, func() { close(fired) })

	var stopped atomic.Bool
	timer := l.AfterFunc(5*time.Millisecond, func() { stopped.Store(true) })
	if !timer.Stop() {
		t.Error("Stop on pending timer should report true")
	}

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("timer did not fire")
	}

	time.Sleep(20 * time.Millisecond)
	l.Call(func() {})
	if stopped.Load() {
		t.Error("stopped timer fired")
	}
}

// TestRealCloseIdempotent verifies Close drains and later posts are dropped
func TestRealCloseIdempotent(t *testing.T) {
	l := New()
	var ran atomic.Int32
	l.Post(func() { ran.Add(1) })
	l.Close()
	l.Close()

	l.Post(func() { ran.Add(1) })
	if l.Call(func() { ran.Add(1) }) {
		t.Error("Call after Close should report false")
	}
	if ran.Load() != 1 {
		t.Errorf("ran = %d, want 1", ran.Load())
	}
}
