// Package audiotest provides a recording audio.Backend for graph-shape tests
package audiotest

import (
	"github.com/lixenwraith/soundscape/audio"
)

// Backend records every node it creates; it renders nothing
// Not safe for concurrent use; drive it from one goroutine or a manual loop
type Backend struct {
	clock      func() float64
	sampleRate int
	state      audio.State
	dest       *Node

	// ResumeErr is returned by Resume while non-nil
	ResumeErr error
	// ConvolutionErr is returned by NewConvolution while non-nil
	ConvolutionErr error

	Resumes    int
	Closed     bool
	Generators []*ToneGenerator
	Envelopes  []*Envelope
	Filters    []*Filter
	Convolvers []*Convolver
}

// New creates a suspended fake backend reading time from clock (seconds)
func New(sampleRate int, clock func() float64) *Backend {
	b := &Backend{
		clock:      clock,
		sampleRate: sampleRate,
		state:      audio.StateSuspended,
	}
	b.dest = b.newNode("destination")
	return b
}

func (b *Backend) SampleRate() int         { return b.sampleRate }
func (b *Backend) Now() float64            { return b.clock() }
func (b *Backend) Destination() audio.Node { return b.dest }
func (b *Backend) State() audio.State      { return b.state }

// Dest returns the concrete destination node
func (b *Backend) Dest() *Node { return b.dest }

// NewToneGenerator implements audio.Backend
func (b *Backend) NewToneGenerator(w audio.Waveform) audio.ToneGenerator {
	g := &ToneGenerator{
		Node:      b.newNode("tone"),
		wave:      w,
		frequency: b.newParam(440),
		detune:    b.newParam(0),
		StartAt:   -1,
		StopAt:    -1,
	}
	b.Generators = append(b.Generators, g)
	return g
}

// NewEnvelope implements audio.Backend
func (b *Backend) NewEnvelope() audio.Envelope {
	e := &Envelope{Node: b.newNode("envelope"), gain: b.newParam(1)}
	b.Envelopes = append(b.Envelopes, e)
	return e
}

// NewFilter implements audio.Backend
func (b *Backend) NewFilter(kind audio.FilterKind) audio.Filter {
	f := &Filter{
		Node:      b.newNode("filter"),
		kind:      kind,
		frequency: b.newParam(350),
		q:         b.newParam(1),
	}
	b.Filters = append(b.Filters, f)
	return f
}

// NewConvolution implements audio.Backend
func (b *Backend) NewConvolution(impulse *audio.Buffer) (audio.Convolver, error) {
	if b.ConvolutionErr != nil {
		return nil, b.ConvolutionErr
	}
	if impulse == nil || impulse.Len() == 0 {
		return nil, audio.ErrEmptyImpulse
	}
	c := &Convolver{Node: b.newNode("convolver"), impulse: impulse}
	b.Convolvers = append(b.Convolvers, c)
	return c, nil
}

// Resume implements audio.Backend
func (b *Backend) Resume() error {
	b.Resumes++
	if b.state == audio.StateClosed {
		return audio.ErrContextClosed
	}
	if b.ResumeErr != nil {
		return b.ResumeErr
	}
	b.state = audio.StateRunning
	return nil
}

// Close implements audio.Backend
func (b *Backend) Close() error {
	b.state = audio.StateClosed
	b.Closed = true
	return nil
}

// LiveGenerators counts generators that still have an outgoing connection
func (b *Backend) LiveGenerators() int {
	n := 0
	for _, g := range b.Generators {
		if g.Connected() {
			n++
		}
	}
	return n
}

// Playing returns connected generators whose stop time is unset or in the future
func (b *Backend) Playing() []*ToneGenerator {
	now := b.clock()
	var out []*ToneGenerator
	for _, g := range b.Generators {
		if !g.Connected() || g.StartAt < 0 {
			continue
		}
		if g.StopAt >= 0 && g.StopAt <= now {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Reset forgets recorded nodes, keeping state and the destination
func (b *Backend) Reset() {
	b.Generators = nil
	b.Envelopes = nil
	b.Filters = nil
	b.Convolvers = nil
}

func (b *Backend) newNode(kind string) *Node {
	return &Node{backend: b, Kind: kind}
}

func (b *Backend) newParam(v float64) *Param {
	return &Param{backend: b, auto: audio.NewAutomation(v)}
}

var _ audio.Backend = (*Backend)(nil)
