// Package eventloop runs every engine command and timer callback on a single goroutine
package eventloop

import (
	"sync"
	"time"

	"github.com/lixenwraith/soundscape/core"
)

// Loop serializes callbacks; implementations never run two callbacks concurrently
type Loop interface {
	// Post queues fn to run on the loop
	Post(fn func())

	// AfterFunc runs fn on the loop after d elapses
	AfterFunc(d time.Duration, fn func()) Timer

	// Now returns elapsed loop time
	Now() time.Duration
}

// Timer is a pending AfterFunc callback
type Timer interface {
	// Stop prevents the callback from running, returns false if it already ran or was stopped
	Stop() bool
}

// Real is a Loop backed by one goroutine and wall-clock timers
type Real struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	done    chan struct{}
	closing bool
	start   time.Time
}

// New starts a loop goroutine
func New() *Real {
	l := &Real{
		wake:  make(chan struct{}, 1),
		done:  make(chan struct{}),
		start: time.Now(),
	}
	core.Go(l.run)
	return l
}

// Post implements Loop; posts after Close are dropped
func (l *Real) Post(fn func()) {
	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Call posts fn and blocks until it has run
// Must not be called from the loop goroutine
func (l *Real) Call(fn func()) bool {
	ran := make(chan struct{})
	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		return false
	}
	l.mu.Unlock()
	l.Post(func() {
		fn()
		close(ran)
	})
	select {
	case <-ran:
		return true
	case <-l.done:
		return false
	}
}

// AfterFunc implements Loop
func (l *Real) AfterFunc(d time.Duration, fn func()) Timer {
	t := &realTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			// Stop may race with the wall-clock fire; the flag is checked on the loop
			if t.fire() {
				fn()
			}
		})
	})
	return t
}

// Now implements Loop
func (l *Real) Now() time.Duration {
	return time.Since(l.start)
}

// Close drains queued callbacks and stops the goroutine
func (l *Real) Close() {
	l.mu.Lock()
	if l.closing {
		l.mu.Unlock()
		<-l.done
		return
	}
	l.closing = true
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	<-l.done
}

func (l *Real) run() {
	defer close(l.done)
	for {
		l.mu.Lock()
		batch := l.queue
		l.queue = nil
		closing := l.closing
		l.mu.Unlock()

		for _, fn := range batch {
			fn()
		}

		if len(batch) > 0 {
			continue
		}
		if closing {
			return
		}
		<-l.wake
	}
}

type realTimer struct {
	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// fire marks the timer consumed, returns false if it was stopped first
func (t *realTimer) fire() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (t *realTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	t.timer.Stop()
	return true
}
