package audio

import (
	"math"
)

// Oscillator is a naive periodic tone generator with a-rate frequency and detune
type Oscillator struct {
	*node
	wave      Waveform
	frequency *param
	detune    *param

	phase     float64
	startTime float64
	stopTime  float64
}

func newOscillator(ctx *Context, w Waveform) *Oscillator {
	o := &Oscillator{
		wave:      w,
		frequency: newParam(ctx, 440),
		detune:    newParam(ctx, 0),
		startTime: math.Inf(1),
		stopTime:  math.Inf(1),
	}
	o.node = newNode(ctx, o)
	return o
}

// Waveform implements ToneGenerator
func (o *Oscillator) Waveform() Waveform { return o.wave }

// Frequency implements ToneGenerator
func (o *Oscillator) Frequency() Param { return o.frequency }

// Detune implements ToneGenerator
func (o *Oscillator) Detune() Param { return o.detune }

// Start implements ToneGenerator; only the first call takes effect
func (o *Oscillator) Start(at float64) {
	o.ctx.mu.Lock()
	defer o.ctx.mu.Unlock()
	if math.IsInf(o.startTime, 1) {
		o.startTime = at
	}
}

// Stop implements ToneGenerator; a later Stop replaces an earlier one
func (o *Oscillator) Stop(at float64) {
	o.ctx.mu.Lock()
	defer o.ctx.mu.Unlock()
	o.stopTime = at
}

func (o *Oscillator) process(_, out *block, t0 float64) {
	sr := float64(o.ctx.sampleRate)
	dt := 1 / sr
	t1 := t0 + float64(len(out[0]))*dt

	if t1 <= o.startTime || t0 >= o.stopTime {
		out.clear()
		return
	}

	freq := o.frequency.render(o.ctx.quantum, t0)
	det := o.detune.render(o.ctx.quantum, t0)

	for i := range out[0] {
		t := t0 + float64(i)*dt
		if t < o.startTime || t >= o.stopTime {
			out[0][i] = 0
			continue
		}

		out[0][i] = waveSample(o.wave, o.phase)

		f := freq[i]
		if det[i] != 0 {
			f *= math.Exp2(det[i] / 1200)
		}
		o.phase += f / sr
		o.phase -= math.Floor(o.phase)
	}
	copy(out[1], out[0])
}

// waveSample evaluates a unit waveform at phase in [0, 1)
func waveSample(w Waveform, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1.0
		}
		return -1.0
	case WaveSawtooth:
		return 2.0 * (phase - 0.5)
	case WaveTriangle:
		if phase < 0.5 {
			return 4.0*phase - 1.0
		}
		return 3.0 - 4.0*phase
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
