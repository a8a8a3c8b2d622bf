package ambient

import (
	"log"

	"github.com/lixenwraith/soundscape/constant"
	"github.com/lixenwraith/soundscape/library"
)

// Transitions, all on the loop:
//
//	Idle      --start-->      Building -> Playing
//	Playing   --scene change--> FadingOut --500ms--> teardown --100ms--> Building
//	Playing   --volume/mute-->  Playing
//	Playing   --restart-->      FadingOut, then the same scene rebuilt
//	any       --stop-->         Idle
//
// While FadingOut, new scenes only replace pending.

func (e *Engine) start(s EnvironmentState) {
	s.Volume = clampVolume(s.Volume)
	e.st.target = &s
	e.mix.set(s.Volume, s.Muted)
	e.resume()

	switch e.st.phase {
	case PhaseIdle:
		e.build(s)
	case PhasePlaying:
		e.change(s)
	case PhaseFadingOut:
		e.st.pending = &s
		e.publish()
	}
}

func (e *Engine) setEnvironment(s EnvironmentState) {
	s.Volume = clampVolume(s.Volume)
	e.st.target = &s
	e.mix.set(s.Volume, s.Muted)

	switch e.st.phase {
	case PhaseIdle:
		// remembered for Restart; nothing plays until Start
	case PhasePlaying:
		e.change(s)
		return
	case PhaseFadingOut:
		e.st.pending = &s
	}
	e.publish()
}

// change either updates the mixer or begins a crossfade to a new scene
func (e *Engine) change(s EnvironmentState) {
	if e.st.applied != nil && e.st.applied.sameScene(s) {
		e.st.applied = &s
		e.mix.apply()
		e.publish()
		return
	}
	e.beginFade(s)
}

func (e *Engine) beginFade(s EnvironmentState) {
	e.st.pending = &s
	e.st.phase = PhaseFadingOut
	e.mix.fadeOut()
	e.timers.After(constant.FadeOutDuration, func() {
		guard("fade out", e.finishFade)
	})
	e.publish()
}

// finishFade tears down the silent graph, then waits for the output to settle
func (e *Engine) finishFade() {
	e.teardown()
	e.publish()
	e.timers.After(constant.SettleDelay, func() {
		guard("settle", e.settle)
	})
}

func (e *Engine) settle() {
	p := e.st.pending
	e.st.pending = nil
	if p == nil {
		e.st.phase = PhaseIdle
		e.publish()
		return
	}
	e.build(*p)
}

// build constructs one generation; missing tables skip their layer
func (e *Engine) build(s EnvironmentState) {
	e.st.phase = PhaseBuilding
	e.st.generation++

	g := newGraph(e.backend, e.loop, e.rng, e.mix.input(), e.st.generation, e.gauges)
	if cfg, ok := library.Soundscape(s.Location, s.TimeOfDay); ok {
		g.buildDrone(cfg, s.Volume)
		g.roomAccents = g.scheduleAccents(cfg.Accents, s.Volume)
	} else {
		log.Printf("ambient: no soundscape for %s, base layer skipped", s.Location)
	}
	g.buildWeather(s.Weather, s.Location, s.Volume)

	e.st.graph = g
	e.st.applied = &s
	e.st.builds++
	e.st.phase = PhasePlaying
	e.mix.apply()
	e.publish()
}

// teardown destroys the current graph; registries are emptied before any node is touched
func (e *Engine) teardown() {
	if g := e.st.graph; g != nil {
		g.teardown()
		e.st.graph = nil
	}
	e.st.applied = nil
}

func (e *Engine) stop() {
	e.timers.CancelAll()
	e.teardown()
	e.st.pending = nil
	e.st.phase = PhaseIdle
	e.mix.silence()
	e.publish()
}

// restart rebuilds the last requested scene; a playing graph fades out first
func (e *Engine) restart() {
	target := e.st.target
	if target == nil {
		e.stop()
		return
	}
	s := *target
	switch e.st.phase {
	case PhasePlaying:
		e.resume()
		e.beginFade(s)
	case PhaseFadingOut:
		e.st.pending = &s
		e.publish()
	default:
		e.stop()
		e.start(s)
	}
}

func (e *Engine) setVolume(v float64) {
	v = clampVolume(v)
	e.mix.set(v, e.mix.muted)
	e.resume()
	e.updateMixFields(func(s *EnvironmentState) { s.Volume = v })
}

func (e *Engine) setMuted(muted bool) {
	e.mix.set(e.mix.volume, muted)
	e.updateMixFields(func(s *EnvironmentState) { s.Muted = muted })
}

// updateMixFields records a mixer change on every held state and ramps the
// master only while playing; a fade in progress picks it up at the next build
func (e *Engine) updateMixFields(fn func(*EnvironmentState)) {
	for _, s := range []*EnvironmentState{e.st.target, e.st.applied, e.st.pending} {
		if s != nil {
			fn(s)
		}
	}
	if e.st.phase == PhasePlaying {
		e.mix.apply()
	}
	e.publish()
}
