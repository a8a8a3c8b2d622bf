// Package schedule tracks cancellable recurring and one-shot tasks on an event loop
package schedule

import (
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/soundscape/eventloop"
)

// DelayRange is an inclusive interval for randomized task delays
type DelayRange struct {
	Min time.Duration
	Max time.Duration
}

// Fixed returns a range with Min == Max
func Fixed(d time.Duration) DelayRange {
	return DelayRange{Min: d, Max: d}
}

// normalized clamps negative bounds and raises Max to at least Min
func (r DelayRange) normalized() DelayRange {
	if r.Min < 0 {
		r.Min = 0
	}
	if r.Max < r.Min {
		r.Max = r.Min
	}
	return r
}

// Registry owns a set of tasks; all methods must run on the loop goroutine
type Registry struct {
	loop  eventloop.Loop
	rng   *rand.Rand
	tasks map[*Task]struct{}
}

// NewRegistry creates an empty registry drawing delays from rng
func NewRegistry(loop eventloop.Loop, rng *rand.Rand) *Registry {
	return &Registry{
		loop:  loop,
		rng:   rng,
		tasks: make(map[*Task]struct{}),
	}
}

// Task is a handle to a scheduled callback
type Task struct {
	reg       *Registry
	delays    DelayRange
	fire      func()
	timer     eventloop.Timer
	active    bool
	recurring bool
	fired     int
}

// Schedule registers fire as an infinitely recurring task
// First delay is uniform in [0, Min]; every later delay is uniform in [Min, Max]
func (r *Registry) Schedule(delays DelayRange, fire func()) *Task {
	delays = delays.normalized()
	t := &Task{
		reg:       r,
		delays:    delays,
		fire:      fire,
		active:    true,
		recurring: true,
	}
	r.tasks[t] = struct{}{}
	t.arm(r.uniform(0, delays.Min))
	return t
}

// After registers fire as a one-shot task that leaves the registry once it runs
func (r *Registry) After(d time.Duration, fire func()) *Task {
	t := &Task{
		reg:    r,
		delays: Fixed(d).normalized(),
		fire:   fire,
		active: true,
	}
	r.tasks[t] = struct{}{}
	t.arm(t.delays.Min)
	return t
}

// CancelAll cancels every task and empties the registry before returning
func (r *Registry) CancelAll() {
	tasks := r.tasks
	r.tasks = make(map[*Task]struct{})
	for t := range tasks {
		t.stop()
	}
}

// Len returns the number of live tasks
func (r *Registry) Len() int {
	return len(r.tasks)
}

// uniform returns a duration uniformly distributed in [lo, hi]
func (r *Registry) uniform(lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(r.rng.Int64N(int64(hi-lo)+1))
}

func (t *Task) arm(d time.Duration) {
	t.timer = t.reg.loop.AfterFunc(d, t.run)
}

func (t *Task) run() {
	if !t.active {
		return
	}
	t.fired++

	if !t.recurring {
		t.active = false
		delete(t.reg.tasks, t)
		t.fire()
		return
	}

	t.fire()

	// fire may have cancelled this task or the whole registry
	if !t.active {
		return
	}
	t.arm(t.reg.uniform(t.delays.Min, t.delays.Max))
}

// Cancel stops the task; safe to call repeatedly and from inside its own callback
func (t *Task) Cancel() {
	if !t.active {
		return
	}
	delete(t.reg.tasks, t)
	t.stop()
}

func (t *Task) stop() {
	t.active = false
	if t.timer != nil {
		t.timer.Stop()
	}
}

// Active reports whether the task can still fire
func (t *Task) Active() bool {
	return t.active
}

// Fired returns how many times the task has run
func (t *Task) Fired() int {
	return t.fired
}

// Delays returns the task's delay range
func (t *Task) Delays() DelayRange {
	return t.delays
}
