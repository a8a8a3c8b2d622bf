package audio

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/lixenwraith/soundscape/constant"
)

// param is an audio-rate parameter: automation plus summed modulation inputs
type param struct {
	ctx  *Context
	auto *Automation
	mods []*node

	values   []float64
	rendered int64
}

func newParam(ctx *Context, v float64) *param {
	return &param{
		ctx:      ctx,
		auto:     NewAutomation(v),
		values:   make([]float64, constant.RenderQuantum),
		rendered: -1,
	}
}

func (p *param) Value() float64 {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	return p.auto.ValueAt(p.ctx.nowLocked())
}

func (p *param) SetValueAt(v, t float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	p.auto.SetValueAt(v, t)
}

func (p *param) LinearRampTo(v, t float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	p.auto.LinearRampTo(v, t, p.ctx.nowLocked())
}

func (p *param) ExponentialRampTo(v, t float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	p.auto.ExponentialRampTo(v, t, p.ctx.nowLocked())
}

func (p *param) CancelAndHold(t float64) {
	p.ctx.mu.Lock()
	defer p.ctx.mu.Unlock()
	p.auto.CancelAndHold(t)
}

// render fills per-sample values for quantum q; caller holds the context lock
func (p *param) render(q int64, t0 float64) []float64 {
	if p.rendered == q {
		return p.values
	}
	p.rendered = q

	p.auto.Prune(t0)
	p.auto.Fill(p.values, t0, 1/float64(p.ctx.sampleRate))
	for _, m := range p.mods {
		vecmath.AddBlockInPlace(p.values, m.pull(q, t0)[0])
	}
	return p.values
}
