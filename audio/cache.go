package audio

import (
	"math/rand/v2"
)

// ImpulseCache synthesizes each distinct reverb length once
// One cache belongs to one graph instance and is discarded with it
type ImpulseCache struct {
	rng        *rand.Rand
	sampleRate int
	store      map[float64]*Buffer
}

// NewImpulseCache creates an empty cache drawing noise from rng
func NewImpulseCache(rng *rand.Rand, sampleRate int) *ImpulseCache {
	return &ImpulseCache{
		rng:        rng,
		sampleRate: sampleRate,
		store:      make(map[float64]*Buffer),
	}
}

// Get returns the impulse for seconds, generating it on first use
func (c *ImpulseCache) Get(seconds float64) *Buffer {
	if buf, ok := c.store[seconds]; ok {
		return buf
	}
	buf := SynthesizeImpulse(c.rng, c.sampleRate, seconds)
	c.store[seconds] = buf
	return buf
}

// Len returns the number of cached impulses
func (c *ImpulseCache) Len() int {
	return len(c.store)
}
