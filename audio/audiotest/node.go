package audiotest

import (
	"slices"

	"github.com/lixenwraith/soundscape/audio"
)

// Node records connections
type Node struct {
	backend *Backend
	Kind    string

	outputs     []*Node
	paramOuts   []*Param
	Disconnects int
}

// Connect implements audio.Node
func (n *Node) Connect(dst audio.Node) {
	if d := asNode(dst); d != nil {
		n.outputs = append(n.outputs, d)
	}
}

// ConnectParam implements audio.Node
func (n *Node) ConnectParam(p audio.Param) {
	if fp, ok := p.(*Param); ok {
		n.paramOuts = append(n.paramOuts, fp)
		fp.Modulators = append(fp.Modulators, n)
	}
}

// Disconnect implements audio.Node
func (n *Node) Disconnect() {
	n.Disconnects++
	for _, p := range n.paramOuts {
		p.Modulators = slices.DeleteFunc(p.Modulators, func(m *Node) bool { return m == n })
	}
	n.outputs = nil
	n.paramOuts = nil
}

// Connected reports any outgoing audio or param connection
func (n *Node) Connected() bool {
	return len(n.outputs) > 0 || len(n.paramOuts) > 0
}

// Outputs returns audio destinations
func (n *Node) Outputs() []*Node {
	return n.outputs
}

// ConnectsTo reports a direct audio edge to dst
func (n *Node) ConnectsTo(dst audio.Node) bool {
	d := asNode(dst)
	return d != nil && slices.Contains(n.outputs, d)
}

// Reaches reports whether audio from n arrives at dst along any path
func (n *Node) Reaches(dst audio.Node) bool {
	d := asNode(dst)
	if d == nil {
		return false
	}
	seen := map[*Node]bool{}
	var walk func(*Node) bool
	walk = func(cur *Node) bool {
		if cur == d {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
		for _, o := range cur.outputs {
			if walk(o) {
				return true
			}
		}
		return false
	}
	return walk(n)
}

func asNode(n audio.Node) *Node {
	switch v := n.(type) {
	case *Node:
		return v
	case *ToneGenerator:
		return v.Node
	case *Envelope:
		return v.Node
	case *Filter:
		return v.Node
	case *Convolver:
		return v.Node
	}
	return nil
}

// ToneGenerator records waveform, params and start/stop times (-1 when unset)
type ToneGenerator struct {
	*Node
	wave      audio.Waveform
	frequency *Param
	detune    *Param
	StartAt   float64
	StopAt    float64
}

func (g *ToneGenerator) Waveform() audio.Waveform { return g.wave }
func (g *ToneGenerator) Frequency() audio.Param   { return g.frequency }
func (g *ToneGenerator) Detune() audio.Param      { return g.detune }

// Freq returns the concrete frequency param
func (g *ToneGenerator) Freq() *Param { return g.frequency }

// Det returns the concrete detune param
func (g *ToneGenerator) Det() *Param { return g.detune }

func (g *ToneGenerator) Start(at float64) {
	if g.StartAt < 0 {
		g.StartAt = at
	}
}

func (g *ToneGenerator) Stop(at float64) {
	g.StopAt = at
}

// Envelope records its gain automation
type Envelope struct {
	*Node
	gain *Param
}

func (e *Envelope) Gain() audio.Param { return e.gain }

// GainParam returns the concrete gain param
func (e *Envelope) GainParam() *Param { return e.gain }

// Filter records kind, frequency and Q
type Filter struct {
	*Node
	kind      audio.FilterKind
	frequency *Param
	q         *Param
}

func (f *Filter) Kind() audio.FilterKind { return f.kind }
func (f *Filter) Frequency() audio.Param { return f.frequency }
func (f *Filter) Q() audio.Param         { return f.q }

// Freq returns the concrete frequency param
func (f *Filter) Freq() *Param { return f.frequency }

// QParam returns the concrete Q param
func (f *Filter) QParam() *Param { return f.q }

// Convolver records its impulse
type Convolver struct {
	*Node
	impulse *audio.Buffer
}

func (c *Convolver) Impulse() *audio.Buffer { return c.impulse }

// Param evaluates automation against the backend clock, ignoring modulation
type Param struct {
	backend    *Backend
	auto       *audio.Automation
	Modulators []*Node
}

func (p *Param) Value() float64 { return p.auto.ValueAt(p.backend.clock()) }

func (p *Param) SetValueAt(v, t float64) { p.auto.SetValueAt(v, t) }

func (p *Param) LinearRampTo(v, t float64) { p.auto.LinearRampTo(v, t, p.backend.clock()) }

func (p *Param) ExponentialRampTo(v, t float64) { p.auto.ExponentialRampTo(v, t, p.backend.clock()) }

func (p *Param) CancelAndHold(t float64) { p.auto.CancelAndHold(t) }

// At evaluates the automation at t
func (p *Param) At(t float64) float64 { return p.auto.ValueAt(t) }
