package audio

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/lixenwraith/soundscape/constant"
)

// WAVWriter encodes rendered stereo frames as 16-bit PCM WAV
type WAVWriter struct {
	enc    *wav.Encoder
	buf    *goaudio.IntBuffer
	frames int
}

// NewWAVWriter starts a WAV stream on w; Close must be called to finalize the header
func NewWAVWriter(w io.WriteSeeker, sampleRate int) *WAVWriter {
	return &WAVWriter{
		enc: wav.NewEncoder(w, sampleRate, constant.AudioBitDepth, constant.AudioChannels, 1),
		buf: &goaudio.IntBuffer{
			Format: &goaudio.Format{
				NumChannels: constant.AudioChannels,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: constant.AudioBitDepth,
		},
	}
}

// Write appends frames with soft limiting
func (w *WAVWriter) Write(frames [][2]float64) error {
	need := len(frames) * constant.AudioChannels
	if cap(w.buf.Data) < need {
		w.buf.Data = make([]int, need)
	}
	w.buf.Data = w.buf.Data[:need]
	floatToInts(frames, w.buf.Data)

	if err := w.enc.Write(w.buf); err != nil {
		return fmt.Errorf("wav write: %w", err)
	}
	w.frames += len(frames)
	return nil
}

// Frames returns the number of frames written
func (w *WAVWriter) Frames() int {
	return w.frames
}

// Close finalizes the WAV header
func (w *WAVWriter) Close() error {
	if err := w.enc.Close(); err != nil {
		return fmt.Errorf("wav close: %w", err)
	}
	return nil
}
