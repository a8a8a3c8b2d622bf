package audio

import (
	"math"
)

// coefficients are a0-normalized Direct Form II Transposed biquad taps
type coefficients struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// designLowpass follows the RBJ cookbook with resonance q given in dB
func designLowpass(freq, qdB, sampleRate float64) coefficients {
	_, cosw, alpha := prewarp(freq, math.Pow(10, qdB/20), sampleRate)
	a0 := 1 + alpha
	return coefficients{
		b0: (1 - cosw) / 2 / a0,
		b1: (1 - cosw) / a0,
		b2: (1 - cosw) / 2 / a0,
		a1: -2 * cosw / a0,
		a2: (1 - alpha) / a0,
	}
}

// designBandpass is the RBJ constant 0 dB peak gain bandpass
func designBandpass(freq, q, sampleRate float64) coefficients {
	_, cosw, alpha := prewarp(freq, q, sampleRate)
	a0 := 1 + alpha
	return coefficients{
		b0: alpha / a0,
		b1: 0,
		b2: -alpha / a0,
		a1: -2 * cosw / a0,
		a2: (1 - alpha) / a0,
	}
}

func prewarp(freq, q, sampleRate float64) (w0, cosw, alpha float64) {
	nyquist := sampleRate / 2
	freq = math.Min(math.Max(freq, 1), nyquist*0.999)
	if q < 1e-4 {
		q = 1e-4
	}
	w0 = 2 * math.Pi * freq / sampleRate
	cosw = math.Cos(w0)
	alpha = math.Sin(w0) / (2 * q)
	return w0, cosw, alpha
}

// section holds per-channel filter state
type section struct {
	d0, d1 float64
}

func (s *section) processBlock(c coefficients, buf []float64) {
	for i, x := range buf {
		y := c.b0*x + s.d0
		s.d0 = c.b1*x - c.a1*y + s.d1
		s.d1 = c.b2*x - c.a2*y
		buf[i] = y
	}
}

// BiquadFilter is a lowpass or bandpass stage with k-rate frequency and Q
type BiquadFilter struct {
	*node
	kind      FilterKind
	frequency *param
	q         *param
	state     [2]section
}

func newBiquad(ctx *Context, kind FilterKind) *BiquadFilter {
	f := &BiquadFilter{
		kind:      kind,
		frequency: newParam(ctx, 350),
		q:         newParam(ctx, 1),
	}
	f.node = newNode(ctx, f)
	return f
}

// Kind implements Filter
func (f *BiquadFilter) Kind() FilterKind { return f.kind }

// Frequency implements Filter
func (f *BiquadFilter) Frequency() Param { return f.frequency }

// Q implements Filter
func (f *BiquadFilter) Q() Param { return f.q }

func (f *BiquadFilter) process(in, out *block, t0 float64) {
	freq := f.frequency.render(f.ctx.quantum, t0)[0]
	q := f.q.render(f.ctx.quantum, t0)[0]
	sr := float64(f.ctx.sampleRate)

	var c coefficients
	if f.kind == FilterBandpass {
		c = designBandpass(freq, q, sr)
	} else {
		c = designLowpass(freq, q, sr)
	}

	for ch := range out {
		copy(out[ch], in[ch])
		f.state[ch].processBlock(c, out[ch])
	}
}
