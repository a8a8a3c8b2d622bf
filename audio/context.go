package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/soundscape/constant"
)

// Context is the pull-rendered signal graph and its output sink
// Graph mutation and rendering are serialized by mu; the frame clock is atomic
// so Now never waits on a render in progress
type Context struct {
	mu         sync.Mutex
	sampleRate int
	sink       Sink
	dest       *node

	frames    atomic.Int64
	quantum   int64
	readPos   int
	state     State
	connected int
}

// NewContext creates a suspended context that renders into sink once resumed
func NewContext(sampleRate int, sink Sink) (*Context, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if sink == nil {
		return nil, fmt.Errorf("nil sink")
	}
	c := &Context{
		sampleRate: sampleRate,
		sink:       sink,
		readPos:    constant.RenderQuantum,
		state:      StateSuspended,
	}
	c.dest = newNode(c, passThrough{})
	return c, nil
}

var _ Backend = (*Context)(nil)

// SampleRate implements Backend
func (c *Context) SampleRate() int {
	return c.sampleRate
}

// Now implements Backend
func (c *Context) Now() float64 {
	return c.nowLocked()
}

// nowLocked reads the frame clock; safe with or without mu held
func (c *Context) nowLocked() float64 {
	return float64(c.frames.Load()) / float64(c.sampleRate)
}

// Destination implements Backend
func (c *Context) Destination() Node {
	return c.dest
}

// NewEnvelope implements Backend
func (c *Context) NewEnvelope() Envelope {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newGain(c)
}

// NewToneGenerator implements Backend
func (c *Context) NewToneGenerator(w Waveform) ToneGenerator {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newOscillator(c, w)
}

// NewFilter implements Backend
func (c *Context) NewFilter(kind FilterKind) Filter {
	c.mu.Lock()
	defer c.mu.Unlock()
	return newBiquad(c, kind)
}

// NewConvolution implements Backend
func (c *Context) NewConvolution(impulse *Buffer) (Convolver, error) {
	cv, err := newConvolver(c, impulse)
	if err != nil {
		return nil, err
	}
	return cv, nil
}

// Resume implements Backend; the sink starts pulling on the first successful call
func (c *Context) Resume() error {
	c.mu.Lock()
	state := c.state
	c.mu.Unlock()

	switch state {
	case StateRunning:
		return nil
	case StateClosed:
		return ErrContextClosed
	}

	// Sink start may call back into Read; mu must not be held
	if err := c.sink.Start(c); err != nil {
		return fmt.Errorf("resume %s sink: %w", c.sink.Name(), err)
	}

	c.mu.Lock()
	if c.state == StateSuspended {
		c.state = StateRunning
	}
	c.mu.Unlock()
	return nil
}

// State implements Backend
func (c *Context) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close implements Backend
func (c *Context) Close() error {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return nil
	}
	c.state = StateClosed
	c.mu.Unlock()

	if err := c.sink.Close(); err != nil {
		return fmt.Errorf("close %s sink: %w", c.sink.Name(), err)
	}
	return nil
}

// Connected returns the number of nodes with at least one outgoing connection
func (c *Context) Connected() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// trackConnect counts n the first time it gains an outgoing edge; caller holds mu
func (c *Context) trackConnect(n *node) {
	if len(n.outputs) == 0 && len(n.params) == 0 {
		c.connected++
	}
}

// Read renders len(dst) frames from the destination, advancing the clock
// Frames not yet consumed from the current quantum carry over to the next call
func (c *Context) Read(dst [][2]float64) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateClosed {
		clear(dst)
		return len(dst)
	}

	out := c.dest.out
	for i := range dst {
		if c.readPos >= constant.RenderQuantum {
			c.renderQuantum()
			c.readPos = 0
		}
		dst[i][0] = out[0][c.readPos]
		dst[i][1] = out[1][c.readPos]
		c.readPos++
	}
	return len(dst)
}

// renderQuantum pulls the whole graph once; caller holds mu
func (c *Context) renderQuantum() {
	t0 := c.nowLocked()
	c.quantum++
	c.dest.pull(c.quantum, t0)
	c.frames.Add(constant.RenderQuantum)
}

// passThrough copies summed inputs to the output
type passThrough struct{}

func (passThrough) process(in, out *block, _ float64) {
	copy(out[0], in[0])
	copy(out[1], in[1])
}
