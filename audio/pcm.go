package audio

import (
	"encoding/binary"

	"github.com/lixenwraith/soundscape/constant"
)

// Source is anything that renders stereo frames on demand
type Source interface {
	Read(dst [][2]float64) int
}

// softLimit compresses peaks above 0.8 then hard clips to [-1, 1]
func softLimit(v float64) float64 {
	if v > 0.8 {
		v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
	} else if v < -0.8 {
		v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
	}

	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return v
}

// floatToBytes converts stereo frames to interleaved int16 LE bytes with soft limiting
func floatToBytes(in [][2]float64, out []byte) {
	for i, f := range in {
		idx := i * constant.AudioBytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], uint16(int16(softLimit(f[0])*32767)))   // L
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(int16(softLimit(f[1])*32767))) // R
	}
}

// floatToInts converts stereo frames to interleaved 16-bit integer samples
func floatToInts(in [][2]float64, out []int) {
	for i, f := range in {
		out[2*i] = int(softLimit(f[0]) * 32767)
		out[2*i+1] = int(softLimit(f[1]) * 32767)
	}
}

// pcmReader adapts a Source to an io.Reader of s16le stereo bytes
type pcmReader struct {
	src    Source
	frames [][2]float64
}

func newPCMReader(src Source) *pcmReader {
	return &pcmReader{src: src}
}

func (r *pcmReader) Read(p []byte) (int, error) {
	n := len(p) / constant.AudioBytesPerFrame
	if n == 0 {
		return 0, nil
	}
	if cap(r.frames) < n {
		r.frames = make([][2]float64, n)
	}
	frames := r.frames[:n]
	r.src.Read(frames)
	floatToBytes(frames, p)
	return n * constant.AudioBytesPerFrame, nil
}
