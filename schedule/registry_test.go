package schedule

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/lixenwraith/soundscape/eventloop"
)

func newTestRegistry(seed uint64) (*Registry, *eventloop.Manual) {
	loop := eventloop.NewManual()
	return NewRegistry(loop, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))), loop
}

// TestScheduleFixedPeriod verifies Min == Max produces a steady tick
func TestScheduleFixedPeriod(t *testing.T) {
	reg, loop := newTestRegistry(1)

	var at []time.Duration
	task := reg.Schedule(Fixed(time.Second), func() { at = append(at, loop.Now()) })

	loop.Advance(5 * time.Second)

	if task.Fired() < 4 {
		t.Fatalf("fired %d times in 5s, want at least 4", task.Fired())
	}
	for i := 1; i < len(at); i++ {
		if gap := at[i] - at[i-1]; gap != time.Second {
			t.Errorf("gap %d = %v, want 1s", i, gap)
		}
	}
	if at[0] > time.Second {
		t.Errorf("first firing at %v, want within [0, 1s]", at[0])
	}
}

// TestScheduleDelayBounds verifies every delay falls inside its window
func TestScheduleDelayBounds(t *testing.T) {
	reg, loop := newTestRegistry(7)
	delays := DelayRange{Min: 200 * time.Millisecond, Max: 800 * time.Millisecond}

	var at []time.Duration
	reg.Schedule(delays, func() { at = append(at, loop.Now()) })

	loop.Advance(time.Minute)

	if len(at) < 60 {
		t.Fatalf("fired %d times, want at least 60", len(at))
	}
	if at[0] > delays.Min {
		t.Errorf("initial delay %v exceeds Min", at[0])
	}
	for i := 1; i < len(at); i++ {
		gap := at[i] - at[i-1]
		if gap < delays.Min || gap > delays.Max {
			t.Fatalf("gap %d = %v outside [%v, %v]", i, gap, delays.Min, delays.Max)
		}
	}
}

// TestCancelAll verifies nothing fires after CancelAll and the registry is empty
func TestCancelAll(t *testing.T) {
	reg, loop := newTestRegistry(3)

	fired := 0
	for i := 0; i < 5; i++ {
		reg.Schedule(DelayRange{Min: 100 * time.Millisecond, Max: 300 * time.Millisecond}, func() { fired++ })
	}
	reg.After(time.Second, func() { fired++ })

	if reg.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", reg.Len())
	}

	reg.CancelAll()
	if reg.Len() != 0 {
		t.Errorf("Len() after CancelAll = %d", reg.Len())
	}
	if loop.Pending() != 0 {
		t.Errorf("loop has %d pending timers after CancelAll", loop.Pending())
	}

	loop.Advance(10 * time.Second)
	if fired != 0 {
		t.Errorf("fired %d times after CancelAll", fired)
	}
}

// TestCancelFromOwnCallback verifies a task cancelled mid-fire does not reschedule
func TestCancelFromOwnCallback(t *testing.T) {
	reg, loop := newTestRegistry(5)

	var task *Task
	task = reg.Schedule(Fixed(100*time.Millisecond), func() { task.Cancel() })

	loop.Advance(time.Second)

	if task.Fired() != 1 {
		t.Errorf("Fired() = %d, want 1", task.Fired())
	}
	if task.Active() {
		t.Error("task still active")
	}
	if reg.Len() != 0 || loop.Pending() != 0 {
		t.Errorf("Len()=%d Pending()=%d, want 0/0", reg.Len(), loop.Pending())
	}
}

// TestCancelAllFromCallback verifies registry teardown inside a firing callback
func TestCancelAllFromCallback(t *testing.T) {
	reg, loop := newTestRegistry(9)

	fired := 0
	reg.Schedule(Fixed(50*time.Millisecond), func() {
		fired++
		reg.CancelAll()
	})
	reg.Schedule(Fixed(50*time.Millisecond), func() { fired++ })

	loop.Advance(time.Second)

	if fired != 1 {
		t.Errorf("fired = %d, want 1", fired)
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", loop.Pending())
	}
}

// TestAfterLeavesRegistry verifies one-shot tasks drop out once run
func TestAfterLeavesRegistry(t *testing.T) {
	reg, loop := newTestRegistry(11)

	ran := false
	task := reg.After(250*time.Millisecond, func() { ran = true })

	loop.Advance(200 * time.Millisecond)
	if ran || reg.Len() != 1 {
		t.Fatalf("ran=%v Len()=%d before deadline", ran, reg.Len())
	}

	loop.Advance(100 * time.Millisecond)
	if !ran {
		t.Fatal("one-shot did not run")
	}
	if reg.Len() != 0 || task.Active() {
		t.Errorf("Len()=%d Active()=%v after run", reg.Len(), task.Active())
	}

	task.Cancel()
}

// TestDelayRangeNormalized verifies inverted and negative ranges are repaired
func TestDelayRangeNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   DelayRange
		want DelayRange
	}{
		{"ordered", DelayRange{1, 2}, DelayRange{1, 2}},
		{"inverted", DelayRange{5, 2}, DelayRange{5, 5}},
		{"negative", DelayRange{-3, 2}, DelayRange{0, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.normalized(); got != tt.want {
				t.Errorf("normalized(%v) = %v, want %v", tt.in, got, tt.want)
			}

			reg, _ := newTestRegistry(3)
			if got := reg.Schedule(tt.in, func() {}).Delays(); got != tt.want {
				t.Errorf("Schedule(%v).Delays() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
