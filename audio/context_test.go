package audio

import (
	"errors"
	"math"
	"testing"

	"github.com/lixenwraith/soundscape/constant"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	ctx, err := NewContext(constant.AudioSampleRate, NewNullSink())
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return ctx
}

func peak(frames [][2]float64) float64 {
	var p float64
	for _, f := range frames {
		p = math.Max(p, math.Max(math.Abs(f[0]), math.Abs(f[1])))
	}
	return p
}

// TestNewContextValidation verifies factory errors
func TestNewContextValidation(t *testing.T) {
	if _, err := NewContext(0, NewNullSink()); err == nil {
		t.Error("expected error for zero sample rate")
	}
	if _, err := NewContext(44100, nil); err == nil {
		t.Error("expected error for nil sink")
	}
}

// TestContextLifecycle verifies suspended -> running -> closed
func TestContextLifecycle(t *testing.T) {
	ctx := newTestContext(t)

	if ctx.State() != StateSuspended {
		t.Fatalf("initial state = %v, want suspended", ctx.State())
	}
	if err := ctx.Resume(); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	if ctx.State() != StateRunning {
		t.Fatalf("state after Resume = %v", ctx.State())
	}
	if err := ctx.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := ctx.Close(); err != nil {
		t.Errorf("second Close: %v", err)
	}
	if err := ctx.Resume(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("Resume after Close = %v, want ErrContextClosed", err)
	}
}

// TestContextClockAdvancesByRead verifies Now tracks rendered frames in whole quanta
func TestContextClockAdvancesByRead(t *testing.T) {
	ctx := newTestContext(t)

	buf := make([][2]float64, 100)
	ctx.Read(buf)
	if got, want := ctx.Now(), float64(constant.RenderQuantum)/constant.AudioSampleRate; got != want {
		t.Errorf("Now() after 100 frames = %v, want one quantum %v", got, want)
	}

	ctx.Read(buf)
	if got, want := ctx.Now(), float64(2*constant.RenderQuantum)/constant.AudioSampleRate; got != want {
		t.Errorf("Now() after 200 frames = %v, want %v", got, want)
	}
}

// TestOscillatorRendersBetweenStartAndStop verifies start/stop gating
func TestOscillatorRendersBetweenStartAndStop(t *testing.T) {
	ctx := newTestContext(t)
	osc := ctx.NewToneGenerator(WaveSine)
	osc.Frequency().SetValueAt(441, 0)
	osc.Connect(ctx.Destination())

	start := 0.1
	stop := 0.2
	osc.Start(start)
	osc.Stop(stop)

	sr := constant.AudioSampleRate
	frames := make([][2]float64, int(0.3*float64(sr)))
	ctx.Read(frames)

	if p := peak(frames[:int(start*float64(sr))-1]); p != 0 {
		t.Errorf("output before start, peak %v", p)
	}
	if p := peak(frames[int(start*float64(sr))+1 : int(stop*float64(sr))-1]); p < 0.99 {
		t.Errorf("running peak = %v, want ~1", p)
	}
	if p := peak(frames[int(stop*float64(sr))+1:]); p != 0 {
		t.Errorf("output after stop, peak %v", p)
	}
}

// TestWaveSampleShapes verifies unit waveforms at key phases
func TestWaveSampleShapes(t *testing.T) {
	tests := []struct {
		w     Waveform
		phase float64
		want  float64
	}{
		{WaveSine, 0.25, 1},
		{WaveSquare, 0.1, 1},
		{WaveSquare, 0.6, -1},
		{WaveSawtooth, 0, -1},
		{WaveSawtooth, 0.5, 0},
		{WaveTriangle, 0, -1},
		{WaveTriangle, 0.5, 1},
		{WaveTriangle, 0.75, 0},
	}
	for _, tt := range tests {
		if got := waveSample(tt.w, tt.phase); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%v at %v = %v, want %v", tt.w, tt.phase, got, tt.want)
		}
	}
}

// TestGainScalesAndFanOut verifies gain automation and cached fan-out rendering
func TestGainScalesAndFanOut(t *testing.T) {
	ctx := newTestContext(t)
	osc := ctx.NewToneGenerator(WaveSquare)
	osc.Frequency().SetValueAt(100, 0)
	osc.Start(0)

	a := ctx.NewEnvelope()
	b := ctx.NewEnvelope()
	a.Gain().SetValueAt(0.25, 0)
	b.Gain().SetValueAt(0.25, 0)
	osc.Connect(a)
	osc.Connect(b)
	a.Connect(ctx.Destination())
	b.Connect(ctx.Destination())

	frames := make([][2]float64, 1024)
	ctx.Read(frames)

	if p := peak(frames); math.Abs(p-0.5) > 1e-12 {
		t.Errorf("peak = %v, want 0.5 from two 0.25 paths", p)
	}
	if got := ctx.Connected(); got != 3 {
		t.Errorf("Connected() = %d, want 3", got)
	}

	osc.Disconnect()
	osc.Disconnect()
	ctx.Read(frames)
	if p := peak(frames); p != 0 {
		t.Errorf("peak after Disconnect = %v, want 0", p)
	}
	if got := ctx.Connected(); got != 2 {
		t.Errorf("Connected() after Disconnect = %d, want 2", got)
	}
}

// TestParamModulation verifies a node output is summed into a param
func TestParamModulation(t *testing.T) {
	ctx := newTestContext(t)

	// A constant source: square at tiny frequency stays at +1 for the test window
	dc := ctx.NewToneGenerator(WaveSquare)
	dc.Frequency().SetValueAt(0.01, 0)
	dc.Start(0)
	depth := ctx.NewEnvelope()
	depth.Gain().SetValueAt(0.5, 0)
	dc.Connect(depth)

	target := ctx.NewEnvelope()
	target.Gain().SetValueAt(0, 0)
	depth.ConnectParam(target.Gain())

	probe := ctx.NewToneGenerator(WaveSquare)
	probe.Frequency().SetValueAt(0.01, 0)
	probe.Start(0)
	probe.Connect(target)
	target.Connect(ctx.Destination())

	frames := make([][2]float64, 256)
	ctx.Read(frames)
	if got := frames[200][0]; math.Abs(got-0.5) > 1e-12 {
		t.Errorf("modulated output = %v, want 0.5", got)
	}
}

// TestBiquadAttenuation verifies lowpass and bandpass responses
func TestBiquadAttenuation(t *testing.T) {
	measure := func(kind FilterKind, cutoff, q, tone float64) float64 {
		ctx := newTestContext(t)
		osc := ctx.NewToneGenerator(WaveSine)
		osc.Frequency().SetValueAt(tone, 0)
		osc.Start(0)
		f := ctx.NewFilter(kind)
		f.Frequency().SetValueAt(cutoff, 0)
		f.Q().SetValueAt(q, 0)
		osc.Connect(f)
		f.Connect(ctx.Destination())

		frames := make([][2]float64, constant.AudioSampleRate/2)
		ctx.Read(frames)
		return peak(frames[len(frames)/2:])
	}

	if p := measure(FilterLowpass, 400, 1, 100); p < 0.9 {
		t.Errorf("lowpass passband peak = %v, want > 0.9", p)
	}
	if p := measure(FilterLowpass, 400, 1, 8000); p > 0.05 {
		t.Errorf("lowpass stopband peak = %v, want < 0.05", p)
	}
	if p := measure(FilterBandpass, 1500, 3, 1500); math.Abs(p-1) > 0.05 {
		t.Errorf("bandpass center peak = %v, want ~1", p)
	}
	if p := measure(FilterBandpass, 1500, 3, 100); p > 0.1 {
		t.Errorf("bandpass off-band peak = %v, want < 0.1", p)
	}
}

// TestReadAfterCloseIsSilent verifies a closed context renders zeros
func TestReadAfterCloseIsSilent(t *testing.T) {
	ctx := newTestContext(t)
	osc := ctx.NewToneGenerator(WaveSine)
	osc.Start(0)
	osc.Connect(ctx.Destination())
	ctx.Close()

	frames := make([][2]float64, 512)
	ctx.Read(frames)
	if p := peak(frames); p != 0 {
		t.Errorf("peak after Close = %v", p)
	}
}
