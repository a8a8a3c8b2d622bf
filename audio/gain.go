package audio

import (
	"github.com/cwbudde/algo-vecmath"
)

// Gain multiplies its input by an automated gain
type Gain struct {
	*node
	gain *param
}

func newGain(ctx *Context) *Gain {
	g := &Gain{gain: newParam(ctx, 1)}
	g.node = newNode(ctx, g)
	return g
}

// Gain implements Envelope
func (g *Gain) Gain() Param { return g.gain }

func (g *Gain) process(in, out *block, t0 float64) {
	values := g.gain.render(g.ctx.quantum, t0)
	vecmath.MulBlock(out[0], in[0], values)
	vecmath.MulBlock(out[1], in[1], values)
}
