package eventloop

import (
	"container/heap"
	"time"
)

// Manual is a virtual-clock Loop for tests and offline rendering
// Posts from outside a callback run immediately; posts from inside a callback
// run after it returns. Timers only fire inside Advance.
// Manual is not safe for concurrent use.
type Manual struct {
	now     time.Duration
	seq     uint64
	timers  timerHeap
	queue   []func()
	running bool
}

// NewManual creates a Manual loop at time zero
func NewManual() *Manual {
	return &Manual{}
}

// Post implements Loop
func (m *Manual) Post(fn func()) {
	m.queue = append(m.queue, fn)
	if !m.running {
		m.drain()
	}
}

// AfterFunc implements Loop
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	if d < 0 {
		d = 0
	}
	m.seq++
	t := &manualTimer{loop: m, when: m.now + d, seq: m.seq, fn: fn, index: -1}
	heap.Push(&m.timers, t)
	return t
}

// Now implements Loop
func (m *Manual) Now() time.Duration {
	return m.now
}

// Advance moves the clock forward by d, firing due timers in deadline order
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for len(m.timers) > 0 && m.timers[0].when <= target {
		t := heap.Pop(&m.timers).(*manualTimer)
		m.now = t.when
		m.Post(t.fn)
	}
	m.now = target
}

// Pending returns the number of armed timers
func (m *Manual) Pending() int {
	return len(m.timers)
}

// NextDeadline returns the earliest armed timer deadline
func (m *Manual) NextDeadline() (time.Duration, bool) {
	if len(m.timers) == 0 {
		return 0, false
	}
	return m.timers[0].when, true
}

func (m *Manual) drain() {
	m.running = true
	defer func() { m.running = false }()
	for len(m.queue) > 0 {
		fn := m.queue[0]
		m.queue[0] = nil
		m.queue = m.queue[1:]
		fn()
	}
}

type manualTimer struct {
	loop  *Manual
	when  time.Duration
	seq   uint64
	fn    func()
	index int
}

func (t *manualTimer) Stop() bool {
	if t.index < 0 {
		return false
	}
	heap.Remove(&t.loop.timers, t.index)
	return true
}

// timerHeap orders by deadline, then by creation for equal deadlines
type timerHeap []*manualTimer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].when != h[j].when {
		return h[i].when < h[j].when
	}
	return h[i].seq < h[j].seq
}

func (h timerHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *timerHeap) Push(x any) {
	t := x.(*manualTimer)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}
