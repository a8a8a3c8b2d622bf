package audio

import (
	"math/rand/v2"
)

// SynthesizeImpulse builds a two-channel decaying noise tail of the given length
// Each sample is uniform(-1, 1) scaled by (1 - i/length)^2; rng is the only source of randomness
func SynthesizeImpulse(rng *rand.Rand, sampleRate int, seconds float64) *Buffer {
	length := int(float64(sampleRate) * seconds)
	buf := NewBuffer(2, length, sampleRate)
	for c := range buf.Data {
		ch := buf.Data[c]
		for i := range ch {
			decay := 1 - float64(i)/float64(length)
			ch[i] = (rng.Float64()*2 - 1) * decay * decay
		}
	}
	return buf
}
