package audio

import "time"

// Buffer holds planar samples, Data[channel][frame]
type Buffer struct {
	SampleRate int
	Data       [][]float64
}

// NewBuffer allocates a zeroed buffer
func NewBuffer(channels, frames, sampleRate int) *Buffer {
	if frames < 0 {
		frames = 0
	}
	data := make([][]float64, channels)
	for c := range data {
		data[c] = make([]float64, frames)
	}
	return &Buffer{SampleRate: sampleRate, Data: data}
}

// Channels returns the channel count
func (b *Buffer) Channels() int {
	return len(b.Data)
}

// Len returns frames per channel
func (b *Buffer) Len() int {
	if len(b.Data) == 0 {
		return 0
	}
	return len(b.Data[0])
}

// Duration returns the buffer length in time
func (b *Buffer) Duration() time.Duration {
	if b.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(b.Len()) / float64(b.SampleRate) * float64(time.Second))
}
