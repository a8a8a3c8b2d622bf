package ambient

import (
	"sync/atomic"

	"github.com/lixenwraith/soundscape/status"
)

// gauges caches metric pointers; writers run on the loop, readers anywhere
type gauges struct {
	phase      *status.AtomicString
	location   *status.AtomicString
	weather    *status.AtomicString
	timers     *atomic.Int64
	voices     *atomic.Int64
	nodes      *atomic.Int64
	generation *atomic.Int64
	builds     *atomic.Int64
	fired      *atomic.Int64
	intensity  *status.AtomicFloat
	master     *status.AtomicFloat
	inert      *atomic.Bool

	applied atomic.Pointer[EnvironmentState]
	pending atomic.Pointer[EnvironmentState]
}

func newGauges(reg *status.Registry) *gauges {
	gg := &gauges{
		phase:      reg.Strings.Get("ambient.phase"),
		location:   reg.Strings.Get("ambient.location"),
		weather:    reg.Strings.Get("ambient.weather"),
		timers:     reg.Ints.Get("ambient.timers"),
		voices:     reg.Ints.Get("ambient.voices"),
		nodes:      reg.Ints.Get("ambient.nodes"),
		generation: reg.Ints.Get("ambient.generation"),
		builds:     reg.Ints.Get("ambient.builds"),
		fired:      reg.Ints.Get("ambient.accents_fired"),
		intensity:  reg.Floats.Get("ambient.intensity"),
		master:     reg.Floats.Get("ambient.master_gain"),
		inert:      reg.Bools.Get("ambient.inert"),
	}
	gg.phase.Store(PhaseIdle.String())
	return gg
}

// statePtr copies s so published snapshots never alias engine state
func statePtr(s *EnvironmentState) *EnvironmentState {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
