package audio

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/lixenwraith/soundscape/constant"
)

// processor renders one quantum; in holds the summed inputs
type processor interface {
	process(in, out *block, t0 float64)
}

// block is one stereo render quantum
type block [2][]float64

func newBlock() *block {
	return &block{
		make([]float64, constant.RenderQuantum),
		make([]float64, constant.RenderQuantum),
	}
}

func (b *block) clear() {
	clear(b[0])
	clear(b[1])
}

// node is the shared graph vertex behind every concrete node type
// All fields are guarded by the owning context's mutex
type node struct {
	ctx     *Context
	proc    processor
	inputs  []*node
	outputs []*node
	params  []*param

	in       *block
	out      *block
	rendered int64
}

func newNode(ctx *Context, proc processor) *node {
	return &node{
		ctx:      ctx,
		proc:     proc,
		in:       newBlock(),
		out:      newBlock(),
		rendered: -1,
	}
}

// graphNode exposes the vertex to Connect across concrete types
func (n *node) graphNode() *node {
	return n
}

type graphNoder interface {
	graphNode() *node
}

// Connect implements Node
func (n *node) Connect(dst Node) {
	d, ok := dst.(graphNoder)
	if !ok || d.graphNode().ctx != n.ctx {
		return
	}
	target := d.graphNode()

	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()
	n.ctx.trackConnect(n)
	n.outputs = append(n.outputs, target)
	target.inputs = append(target.inputs, n)
}

// ConnectParam implements Node
func (n *node) ConnectParam(p Param) {
	target, ok := p.(*param)
	if !ok || target.ctx != n.ctx {
		return
	}

	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()
	n.ctx.trackConnect(n)
	n.params = append(n.params, target)
	target.mods = append(target.mods, n)
}

// Disconnect implements Node
func (n *node) Disconnect() {
	n.ctx.mu.Lock()
	defer n.ctx.mu.Unlock()

	if len(n.outputs) == 0 && len(n.params) == 0 {
		return
	}
	for _, dst := range n.outputs {
		dst.inputs = removeNode(dst.inputs, n)
	}
	for _, p := range n.params {
		p.mods = removeNode(p.mods, n)
	}
	n.outputs = nil
	n.params = nil
	n.ctx.connected--
}

// pull renders the node for quantum q, reusing the cached block on fan-out
func (n *node) pull(q int64, t0 float64) *block {
	if n.rendered == q {
		return n.out
	}
	n.rendered = q

	n.in.clear()
	for _, src := range n.inputs {
		b := src.pull(q, t0)
		vecmath.AddBlockInPlace(n.in[0], b[0])
		vecmath.AddBlockInPlace(n.in[1], b[1])
	}
	n.proc.process(n.in, n.out, t0)
	return n.out
}

// removeNode deletes the first occurrence of n, preserving order
func removeNode(list []*node, n *node) []*node {
	for i, v := range list {
		if v == n {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}
