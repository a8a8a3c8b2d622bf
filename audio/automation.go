package audio

import "math"

type eventKind uint8

const (
	eventSet eventKind = iota
	eventLinear
	eventExponential
)

type automationEvent struct {
	kind  eventKind
	value float64
	time  float64
}

// Automation is a timeline of scheduled parameter changes
// A ramp runs from the preceding event's time and value to its own; with no
// preceding event it starts from the value held at the call time.
// Automation is not safe for concurrent use.
type Automation struct {
	initial float64
	events  []automationEvent
}

// NewAutomation creates a timeline holding v until the first event
func NewAutomation(v float64) *Automation {
	return &Automation{initial: v}
}

// SetValueAt jumps to v at t
func (a *Automation) SetValueAt(v, t float64) {
	a.insert(automationEvent{kind: eventSet, value: v, time: t})
}

// LinearRampTo ramps linearly to v, arriving at t; now anchors a ramp with no predecessor
func (a *Automation) LinearRampTo(v, t, now float64) {
	a.anchor(now)
	a.insert(automationEvent{kind: eventLinear, value: v, time: t})
}

// ExponentialRampTo ramps geometrically to v, arriving at t
// Non-positive endpoints hold the previous value until t, then jump
func (a *Automation) ExponentialRampTo(v, t, now float64) {
	a.anchor(now)
	a.insert(automationEvent{kind: eventExponential, value: v, time: t})
}

// CancelAndHold removes events after t and holds the value reached at t
// A ramp in progress at t is truncated so the curve up to t is unchanged
func (a *Automation) CancelAndHold(t float64) {
	v := a.ValueAt(t)

	i := 0
	for i < len(a.events) && a.events[i].time <= t {
		i++
	}

	hold := automationEvent{kind: eventSet, value: v, time: t}
	if i < len(a.events) && i > 0 && a.events[i].kind != eventSet {
		hold.kind = a.events[i].kind
	}
	a.events = append(a.events[:i], hold)
}

// ValueAt evaluates the timeline at t
func (a *Automation) ValueAt(t float64) float64 {
	prevV := a.initial
	prevT := math.Inf(-1)
	for _, e := range a.events {
		if e.time <= t {
			prevV, prevT = e.value, e.time
			continue
		}
		if math.IsInf(prevT, -1) || e.time <= prevT {
			return prevV
		}
		frac := (t - prevT) / (e.time - prevT)
		switch e.kind {
		case eventLinear:
			return prevV + (e.value-prevV)*frac
		case eventExponential:
			if prevV > 0 && e.value > 0 {
				return prevV * math.Pow(e.value/prevV, frac)
			}
		}
		return prevV
	}
	return prevV
}

// Fill writes values for len(dst) samples starting at t0, spaced by dt
func (a *Automation) Fill(dst []float64, t0, dt float64) {
	if len(a.events) == 0 || (len(a.events) == 1 && a.events[0].time <= t0) {
		v := a.ValueAt(t0)
		for i := range dst {
			dst[i] = v
		}
		return
	}
	for i := range dst {
		dst[i] = a.ValueAt(t0 + float64(i)*dt)
	}
}

// Prune drops events fully in the past of t, keeping the one that defines the value at t
func (a *Automation) Prune(t float64) {
	n := 0
	for n+1 < len(a.events) && a.events[n+1].time <= t {
		n++
	}
	if n > 0 {
		a.events = append(a.events[:0], a.events[n:]...)
	}
}

// Len returns the number of scheduled events
func (a *Automation) Len() int {
	return len(a.events)
}

func (a *Automation) anchor(now float64) {
	if len(a.events) == 0 {
		a.events = append(a.events, automationEvent{kind: eventSet, value: a.initial, time: now})
	}
}

// insert keeps events ordered by time; equal times keep call order
func (a *Automation) insert(e automationEvent) {
	i := len(a.events)
	for i > 0 && a.events[i-1].time > e.time {
		i--
	}
	a.events = append(a.events, automationEvent{})
	copy(a.events[i+1:], a.events[i:])
	a.events[i] = e
}
