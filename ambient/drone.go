package ambient

import (
	"log"

	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/constant"
	"github.com/lixenwraith/soundscape/library"
)

// buildDrone wires the sustained base layer:
// generators -> envelope -> [filter] -> out, plus an optional wet reverb send
func (g *graph) buildDrone(cfg library.SoundscapeConfig, volume float64) {
	if len(cfg.DroneFreqs) == 0 {
		return
	}
	b := g.backend
	now := b.Now()

	env := b.NewEnvelope()
	env.Gain().SetValueAt(0, now)
	env.Gain().LinearRampTo(cfg.DroneVolume*volume, now+constant.DroneFadeIn.Seconds())
	g.track(env)

	var (
		lfoGain audio.Envelope
		started []audio.ToneGenerator
	)
	if cfg.LFO != nil && cfg.LFO.Rate > 0 {
		depth := cfg.LFO.Depth
		if depth == 0 {
			depth = constant.DefaultLFODepth
		}
		lfo := b.NewToneGenerator(audio.WaveSine)
		lfo.Frequency().SetValueAt(cfg.LFO.Rate, now)
		lfoGain = b.NewEnvelope()
		lfoGain.Gain().SetValueAt(depth, now)
		lfo.Connect(lfoGain)
		g.trackGenerator(lfo)
		g.track(lfoGain)
		started = append(started, lfo)
	}

	center := (len(cfg.DroneFreqs) - 1) / 2
	for i, f := range cfg.DroneFreqs {
		osc := b.NewToneGenerator(cfg.DroneWaveform)
		osc.Frequency().SetValueAt(f, now)
		osc.Detune().SetValueAt(float64(i-center)*constant.DroneDetuneStep, now)
		if lfoGain != nil {
			lfoGain.ConnectParam(osc.Frequency())
		}
		osc.Connect(env)
		g.trackGenerator(osc)
		started = append(started, osc)
	}

	var last audio.Node = env
	if cfg.Filter != nil {
		last = g.filterStage(env, cfg.Filter.Kind, cfg.Filter.Freq, cfg.Filter.Q, now)
	}
	last.Connect(g.out)

	if cfg.Reverb {
		g.buildReverb(last, cfg.ReverbTime)
	}

	for _, gen := range started {
		gen.Start(now)
	}
}

// filterStage inserts a tracked filter after src and returns it
func (g *graph) filterStage(src audio.Node, kind audio.FilterKind, freq, q, now float64) audio.Node {
	if q == 0 {
		q = constant.DefaultFilterQ
	}
	f := g.backend.NewFilter(kind)
	f.Frequency().SetValueAt(freq, now)
	f.Q().SetValueAt(q, now)
	src.Connect(f)
	g.track(f)
	return f
}

// buildReverb adds the wet path src -> convolver -> wet gain -> out
// A convolver failure drops the wet path and keeps the dry signal
func (g *graph) buildReverb(src audio.Node, seconds float64) {
	if seconds <= 0 {
		seconds = constant.DefaultReverbTime.Seconds()
	}
	conv, err := g.backend.NewConvolution(g.impulses.Get(seconds))
	if err != nil {
		log.Printf("ambient: reverb unavailable, dry path only: %v", err)
		return
	}
	wet := g.backend.NewEnvelope()
	wet.Gain().SetValueAt(constant.ReverbWetGain, g.backend.Now())

	src.Connect(conv)
	conv.Connect(wet)
	wet.Connect(g.out)
	g.track(conv, wet)
}
