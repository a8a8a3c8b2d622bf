// Package ambient drives the procedural soundscape: it resolves environment
// state into a graph of drones, accents and weather, and crossfades between them
package ambient

import (
	"fmt"
	"log"
	"math/rand/v2"
	"sync/atomic"

	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/eventloop"
	"github.com/lixenwraith/soundscape/schedule"
	"github.com/lixenwraith/soundscape/status"
)

// BackendFactory creates the audio backend; an error or panic leaves the engine inert
type BackendFactory func() (audio.Backend, error)

// Options configures an Engine; zero values pick defaults
type Options struct {
	// Rand drives accent timing, detune and impulse noise
	Rand *rand.Rand
	// Status receives engine gauges
	Status *status.Registry
}

// engineState is mutated only on the loop goroutine
type engineState struct {
	phase   Phase
	applied *EnvironmentState
	pending *EnvironmentState
	// target is the last requested state, replayed by Restart
	target *EnvironmentState
	graph  *graph

	generation int64
	builds     int64
}

// Engine is the soundscape controller; its methods may be called from any goroutine
// and run on the loop in call order
type Engine struct {
	loop    eventloop.Loop
	rng     *rand.Rand
	backend audio.Backend
	mix     *mixer
	timers  *schedule.Registry
	status  *status.Registry
	gauges  *gauges

	st     engineState
	inert  atomic.Bool
	closed atomic.Bool
}

// NewEngine creates the backend through factory and attempts to resume output
func NewEngine(loop eventloop.Loop, factory BackendFactory, opts Options) *Engine {
	if opts.Rand == nil {
		opts.Rand = DefaultConfig().Rand()
	}
	if opts.Status == nil {
		opts.Status = status.NewRegistry()
	}

	e := &Engine{
		loop:   loop,
		rng:    opts.Rand,
		status: opts.Status,
		gauges: newGauges(opts.Status),
		timers: schedule.NewRegistry(loop, opts.Rand),
	}

	if err := e.init(factory); err != nil {
		log.Printf("ambient: audio unavailable, engine inert: %v", err)
		e.inert.Store(true)
		e.gauges.inert.Store(true)
		return e
	}
	e.resume()
	return e
}

// init builds the backend and master bus, converting a panic into an error
func (e *Engine) init(factory BackendFactory) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("backend factory panicked: %v", r)
		}
	}()
	if factory == nil {
		return audio.ErrNoAudioBackend
	}
	b, err := factory()
	if err != nil {
		return err
	}
	if b == nil {
		return audio.ErrNoAudioBackend
	}
	e.backend = b
	e.mix = newMixer(b)
	return nil
}

// Start begins playback of s; while playing it behaves as SetEnvironment
func (e *Engine) Start(s EnvironmentState) {
	e.dispatch("start", func() { e.start(s) })
}

// SetEnvironment reports a new environment; only location, time and weather rebuild
func (e *Engine) SetEnvironment(s EnvironmentState) {
	e.dispatch("set environment", func() { e.setEnvironment(s) })
}

// Stop tears down the current graph synchronously on the loop; idempotent
func (e *Engine) Stop() {
	e.dispatch("stop", e.stop)
}

// Restart rebuilds the last requested state, crossfading when a scene is playing
func (e *Engine) Restart() {
	e.dispatch("restart", e.restart)
}

// SetVolume sets master volume in [0,1]
func (e *Engine) SetVolume(v float64) {
	e.dispatch("set volume", func() { e.setVolume(v) })
}

// SetMuted mutes or unmutes the master bus
func (e *Engine) SetMuted(muted bool) {
	e.dispatch("set muted", func() { e.setMuted(muted) })
}

// Close stops playback and closes the output; later calls are no-ops
func (e *Engine) Close() {
	if e.inert.Load() || !e.closed.CompareAndSwap(false, true) {
		return
	}
	e.loop.Post(func() {
		guard("close", func() {
			e.stop()
			if err := e.backend.Close(); err != nil {
				log.Printf("ambient: close backend: %v", err)
			}
		})
	})
}

// Inert reports whether initialization failed
func (e *Engine) Inert() bool {
	return e.inert.Load()
}

// Status returns the gauge registry
func (e *Engine) Status() *status.Registry {
	return e.status
}

// Snapshot reads the published gauges without touching loop state
func (e *Engine) Snapshot() Snapshot {
	gg := e.gauges
	return Snapshot{
		Phase:      parsePhase(gg.phase.Load()),
		Inert:      e.inert.Load(),
		Generation: gg.generation.Load(),
		Builds:     gg.builds.Load(),
		Timers:     int(gg.timers.Load()),
		Voices:     int(gg.voices.Load()),
		Nodes:      int(gg.nodes.Load()),
		Applied:    statePtr(gg.applied.Load()),
		Pending:    statePtr(gg.pending.Load()),
		Intensity:  gg.intensity.Get(),
		MasterGain: gg.master.Get(),
	}
}

// dispatch runs fn on the loop unless the engine is inert or closed
func (e *Engine) dispatch(op string, fn func()) {
	if e.inert.Load() || e.closed.Load() {
		return
	}
	e.loop.Post(func() {
		guard(op, fn)
	})
}

// resume retries output; failure is logged and the logical phase is kept
func (e *Engine) resume() {
	if e.backend.State() == audio.StateRunning {
		return
	}
	if err := e.backend.Resume(); err != nil {
		log.Printf("ambient: resume output: %v", err)
	}
}

// publish mirrors loop state into gauges
func (e *Engine) publish() {
	gg := e.gauges
	gg.phase.Store(e.st.phase.String())
	gg.generation.Store(e.st.generation)
	gg.builds.Store(e.st.builds)
	gg.applied.Store(statePtr(e.st.applied))
	gg.pending.Store(statePtr(e.st.pending))
	gg.master.Set(e.mix.target())

	if g := e.st.graph; g != nil {
		gg.timers.Store(int64(g.timers()))
		gg.nodes.Store(int64(len(g.nodes)))
		gg.intensity.Set(g.intensity)
	} else {
		gg.timers.Store(0)
		gg.nodes.Store(0)
		gg.intensity.Set(0)
	}

	if s := e.st.applied; s != nil {
		gg.location.Store(s.Location.String())
		gg.weather.Store(s.Weather.String())
	} else {
		gg.location.Store("")
		gg.weather.Store("")
	}
}

// guard keeps a panic inside one command from escaping to the caller or loop
func guard(op string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ambient: %s panicked: %v", op, r)
		}
	}()
	fn()
}

func parsePhase(s string) Phase {
	for p := PhaseIdle; p <= PhaseFadingOut; p++ {
		if p.String() == s {
			return p
		}
	}
	return PhaseIdle
}
