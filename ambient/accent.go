package ambient

import (
	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/constant"
	"github.com/lixenwraith/soundscape/library"
)

// scheduleAccents registers one recurring task per descriptor and returns how many
func (g *graph) scheduleAccents(accents []library.AccentDescriptor, scale float64) int {
	for _, a := range accents {
		g.accents.Schedule(a.Interval, func() {
			guard("accent "+a.Name, func() { g.fireAccent(a, scale) })
		})
	}
	return len(accents)
}

// fireAccent synthesizes one transient; a suspended output or a zero peak plays nothing
func (g *graph) fireAccent(a library.AccentDescriptor, scale float64) {
	b := g.backend
	if b.State() != audio.StateRunning {
		return
	}
	peak := a.Volume * scale
	if peak <= 0 {
		return
	}
	now := b.Now()
	dur := a.Duration.Seconds()

	gen := b.NewToneGenerator(a.Waveform)
	gen.Frequency().SetValueAt(a.Freq, now)
	if a.DetuneCents > 0 {
		gen.Detune().SetValueAt((g.rng.Float64()-0.5)*a.DetuneCents, now)
	}

	env := b.NewEnvelope()
	gain := env.Gain()
	gain.SetValueAt(0, now)
	gain.LinearRampTo(peak, now+constant.AccentAttack.Seconds())
	gain.ExponentialRampTo(peak*constant.AccentDecayRatio, now+dur)

	v := &voice{gen: gen, nodes: []audio.Node{gen, env}}
	if a.FilterFreq > 0 {
		f := b.NewFilter(audio.FilterLowpass)
		f.Frequency().SetValueAt(a.FilterFreq, now)
		f.Q().SetValueAt(constant.DefaultFilterQ, now)
		gen.Connect(f)
		f.Connect(env)
		v.nodes = append(v.nodes, f)
	} else {
		gen.Connect(env)
	}
	env.Connect(g.out)

	life := a.Duration + constant.AccentStopPadding
	gen.Start(now)
	gen.Stop(now + life.Seconds())

	g.voices[v] = struct{}{}
	g.cleanup.After(life, func() { g.release(v) })

	g.gauges.fired.Add(1)
	g.gauges.voices.Store(int64(len(g.voices)))
}

// release disconnects a finished voice
func (g *graph) release(v *voice) {
	if _, ok := g.voices[v]; !ok {
		return
	}
	delete(g.voices, v)
	for _, n := range v.nodes {
		n.Disconnect()
	}
	g.gauges.voices.Store(int64(len(g.voices)))
}
