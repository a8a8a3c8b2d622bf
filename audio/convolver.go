package audio

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/lixenwraith/soundscape/constant"
)

// Impulse normalization calibrated to match browser convolvers
const (
	gainCalibration           = 0.00125
	gainCalibrationSampleRate = 44100.0
	minImpulsePower           = 0.000125
)

// ConvolverNode is a uniformly partitioned overlap-save convolver
// Input is down-mixed to mono; the two impulse channels are packed into the
// real and imaginary parts of one spectrum so each block needs a single
// forward and a single inverse FFT. Output lags input by one partition.
type ConvolverNode struct {
	*node
	impulse *Buffer
	plan    *algofft.Plan[complex128]
	size    int

	parts [][]complex128 // per-partition impulse spectra, L + iR
	fdl   [][]complex128 // input spectra ring, newest at head
	head  int

	frame []complex128
	acc   []complex128
	prev  []float64
	cur   []float64
	outL  []float64
	outR  []float64
	pos   int
}

func newConvolver(ctx *Context, impulse *Buffer) (*ConvolverNode, error) {
	if impulse == nil || impulse.Len() == 0 || impulse.Channels() == 0 {
		return nil, ErrEmptyImpulse
	}

	size := constant.ConvolutionBlock
	fftSize := 2 * size
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("convolver: failed to create FFT plan: %w", err)
	}

	left := impulse.Data[0]
	right := left
	if impulse.Channels() > 1 {
		right = impulse.Data[1]
	}
	scale := normalizationScale(impulse, ctx.sampleRate)

	count := (impulse.Len() + size - 1) / size
	cv := &ConvolverNode{
		impulse: impulse,
		plan:    plan,
		size:    size,
		parts:   make([][]complex128, count),
		fdl:     make([][]complex128, count),
		frame:   make([]complex128, fftSize),
		acc:     make([]complex128, fftSize),
		prev:    make([]float64, size),
		cur:     make([]float64, size),
		outL:    make([]float64, size),
		outR:    make([]float64, size),
	}

	for p := range cv.parts {
		padded := make([]complex128, fftSize)
		for i := 0; i < size; i++ {
			idx := p*size + i
			if idx >= len(left) {
				break
			}
			padded[i] = complex(left[idx]*scale, right[idx]*scale)
		}
		cv.parts[p] = make([]complex128, fftSize)
		if err := plan.Forward(cv.parts[p], padded); err != nil {
			return nil, fmt.Errorf("convolver: impulse FFT failed: %w", err)
		}
		cv.fdl[p] = make([]complex128, fftSize)
	}

	ctx.mu.Lock()
	cv.node = newNode(ctx, cv)
	ctx.mu.Unlock()
	return cv, nil
}

// normalizationScale equalizes loudness across impulse lengths by RMS power
func normalizationScale(impulse *Buffer, sampleRate int) float64 {
	var power float64
	for _, ch := range impulse.Data {
		for _, v := range ch {
			power += v * v
		}
	}
	power = math.Sqrt(power / float64(impulse.Channels()*impulse.Len()))
	if math.IsNaN(power) || math.IsInf(power, 0) || power < minImpulsePower {
		power = minImpulsePower
	}
	scale := gainCalibration / power
	if sampleRate > 0 {
		scale *= gainCalibrationSampleRate / float64(sampleRate)
	}
	return scale
}

// Impulse implements Convolver
func (cv *ConvolverNode) Impulse() *Buffer { return cv.impulse }

// Latency returns the wet path delay in frames
func (cv *ConvolverNode) Latency() int { return cv.size }

func (cv *ConvolverNode) process(in, out *block, _ float64) {
	n := len(out[0])
	for i := 0; i < n; i++ {
		cv.cur[cv.pos+i] = 0.5 * (in[0][i] + in[1][i])
	}
	copy(out[0], cv.outL[cv.pos:cv.pos+n])
	copy(out[1], cv.outR[cv.pos:cv.pos+n])

	cv.pos += n
	if cv.pos >= cv.size {
		cv.pos = 0
		cv.convolveBlock()
	}
}

// convolveBlock consumes cur and produces the next output partition
func (cv *ConvolverNode) convolveBlock() {
	size := cv.size
	for i := 0; i < size; i++ {
		cv.frame[i] = complex(cv.prev[i], 0)
		cv.frame[size+i] = complex(cv.cur[i], 0)
	}
	cv.prev, cv.cur = cv.cur, cv.prev

	cv.head = (cv.head + 1) % len(cv.fdl)
	if err := cv.plan.Forward(cv.fdl[cv.head], cv.frame); err != nil {
		clear(cv.outL)
		clear(cv.outR)
		return
	}

	clear(cv.acc)
	count := len(cv.parts)
	for p := 0; p < count; p++ {
		x := cv.fdl[(cv.head-p+count)%count]
		h := cv.parts[p]
		for k := range cv.acc {
			cv.acc[k] += x[k] * h[k]
		}
	}

	if err := cv.plan.Inverse(cv.acc, cv.acc); err != nil {
		clear(cv.outL)
		clear(cv.outR)
		return
	}

	// Overlap-save keeps the second half; real part is L, imaginary part is R
	for i := 0; i < size; i++ {
		v := cv.acc[size+i]
		cv.outL[i] = real(v)
		cv.outR[i] = imag(v)
	}
}
