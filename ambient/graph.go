package ambient

import (
	"math/rand/v2"

	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/eventloop"
	"github.com/lixenwraith/soundscape/schedule"
)

// voice is one sounding accent and the nodes released when it ends
type voice struct {
	gen   audio.ToneGenerator
	nodes []audio.Node
}

// graph is one generation of the soundscape: every node and timer it owns is
// tracked here so teardown leaves nothing behind
type graph struct {
	backend    audio.Backend
	rng        *rand.Rand
	out        audio.Node
	generation int64
	gauges     *gauges

	generators []audio.ToneGenerator
	nodes      []audio.Node

	// accents holds recurring tasks, cleanup holds per-voice release timers
	accents  *schedule.Registry
	cleanup  *schedule.Registry
	voices   map[*voice]struct{}
	impulses *audio.ImpulseCache

	roomAccents    int
	weatherAccents int
	intensity      float64
	torn           bool
}

func newGraph(b audio.Backend, loop eventloop.Loop, rng *rand.Rand, out audio.Node, generation int64, gg *gauges) *graph {
	return &graph{
		backend:    b,
		rng:        rng,
		out:        out,
		generation: generation,
		gauges:     gg,
		accents:    schedule.NewRegistry(loop, rng),
		cleanup:    schedule.NewRegistry(loop, rng),
		voices:     make(map[*voice]struct{}),
		impulses:   audio.NewImpulseCache(rng, b.SampleRate()),
	}
}

// track records nodes for disconnection at teardown
func (g *graph) track(nodes ...audio.Node) {
	g.nodes = append(g.nodes, nodes...)
}

// trackGenerator records a generator for stop and disconnection at teardown
func (g *graph) trackGenerator(gen audio.ToneGenerator) {
	g.generators = append(g.generators, gen)
	g.nodes = append(g.nodes, gen)
}

// teardown cancels every timer before touching any node, then stops and
// disconnects everything the graph created; safe to call twice
func (g *graph) teardown() {
	if g.torn {
		return
	}
	g.torn = true

	g.accents.CancelAll()
	g.cleanup.CancelAll()

	now := g.backend.Now()
	for v := range g.voices {
		v.gen.Stop(now)
		for _, n := range v.nodes {
			n.Disconnect()
		}
	}
	clear(g.voices)
	g.gauges.voices.Store(0)

	for _, gen := range g.generators {
		gen.Stop(now)
	}
	for _, n := range g.nodes {
		n.Disconnect()
	}
	g.generators = nil
	g.nodes = nil
}

// timers returns live recurring tasks
func (g *graph) timers() int {
	return g.accents.Len()
}
