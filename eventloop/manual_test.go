package eventloop

import (
	"testing"
	"time"
)

// TestManualFiresInDeadlineOrder verifies timers fire sorted by deadline then creation
func TestManualFiresInDeadlineOrder(t *testing.T) {
	m := NewManual()
	var got []string

	m.AfterFunc(30*time.Millisecond, func() { got = append(got, "c") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "a") })
	m.AfterFunc(10*time.Millisecond, func() { got = append(got, "b") })

	if d, ok := m.NextDeadline(); !ok || d != 10*time.Millisecond {
		t.Fatalf("NextDeadline() = %v, %v, want 10ms", d, ok)
	}

	m.Advance(20 * time.Millisecond)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("after 20ms got %v, want [a b]", got)
	}
	if m.Now() != 20*time.Millisecond {
		t.Errorf("Now() = %v, want 20ms", m.Now())
	}

	m.Advance(10 * time.Millisecond)
	if len(got) != 3 || got[2] != "c" {
		t.Fatalf("after 30ms got %v", got)
	}
	if m.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", m.Pending())
	}
	if _, ok := m.NextDeadline(); ok {
		t.Error("NextDeadline reported a deadline with no timers armed")
	}
}

// TestManualStop verifies stopped timers never fire and Stop reports state
func TestManualStop(t *testing.T) {
	m := NewManual()
	fired := false
	timer := m.AfterFunc(time.Second, func() { fired = true })

	if !timer.Stop() {
		t.Error("first Stop should report true")
	}
	if timer.Stop() {
		t.Error("second Stop should report false")
	}

	m.Advance(2 * time.Second)
	if fired {
		t.Error("stopped timer fired")
	}
}

// TestManualReentrantPost verifies posts from a callback run after it returns
func TestManualReentrantPost(t *testing.T) {
	m := NewManual()
	var order []int

	m.Post(func() {
		order = append(order, 1)
		m.Post(func() { order = append(order, 3) })
		order = append(order, 2)
	})

	if len(order) != 3 || order[0] != 1 || order[1] != 2 || order[2] != 3 {
		t.Fatalf("order = %v, want [1 2 3]", order)
	}
}

// TestManualTimerScheduledDuringAdvance verifies chained timers inside one Advance window
func TestManualTimerScheduledDuringAdvance(t *testing.T) {
	m := NewManual()
	count := 0
	var tick func()
	tick = func() {
		count++
		m.AfterFunc(100*time.Millisecond, tick)
	}
	m.AfterFunc(100*time.Millisecond, tick)

	m.Advance(time.Second)
	if count != 10 {
		t.Errorf("count = %d, want 10", count)
	}
	if m.Pending() != 1 {
		t.Errorf("Pending() = %d, want 1", m.Pending())
	}
}

// TestManualStopFromCallback verifies a callback can stop a sibling due at the same instant
func TestManualStopFromCallback(t *testing.T) {
	m := NewManual()
	var second Timer
	fired := false

	m.AfterFunc(time.Millisecond, func() { second.Stop() })
	second = m.AfterFunc(time.Millisecond, func() { fired = true })

	m.Advance(time.Millisecond)
	if fired {
		t.Error("sibling timer fired after Stop")
	}
}
