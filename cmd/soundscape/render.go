package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/soundscape/ambient"
	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/constant"
	"github.com/lixenwraith/soundscape/eventloop"
)

// renderBlock is frames rendered between loop advances
const renderBlock = 8 * constant.RenderQuantum

// renderOffline plays s into a WAV file on a virtual clock and returns frames written
// The same seed and state always produce the same file
func renderOffline(cfg *ambient.Config, s ambient.EnvironmentState, path string, seconds float64) (int, error) {
	if seconds <= 0 {
		return 0, fmt.Errorf("render length must be positive, got %v", seconds)
	}

	ctx, err := audio.NewContext(cfg.SampleRate, audio.NewNullSink())
	if err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	loop := eventloop.NewManual()
	eng := ambient.NewEngine(loop, func() (audio.Backend, error) { return ctx, nil }, ambient.Options{
		Rand: cfg.Rand(),
	})
	if eng.Inert() {
		return 0, audio.ErrNoAudioBackend
	}

	s.Volume = cfg.Volume
	s.Muted = cfg.Muted
	eng.Start(s)

	w := audio.NewWAVWriter(f, cfg.SampleRate)
	total := int(seconds * float64(cfg.SampleRate))
	buf := make([][2]float64, renderBlock)

	for written := 0; written < total; {
		n := min(renderBlock, total-written)
		ctx.Read(buf[:n])
		if err := w.Write(buf[:n]); err != nil {
			return written, err
		}
		written += n

		// keep the loop clock on the rendered frame position
		at := time.Duration(float64(written) / float64(cfg.SampleRate) * float64(time.Second))
		loop.Advance(at - loop.Now())
	}

	eng.Close()
	if err := w.Close(); err != nil {
		return w.Frames(), err
	}
	return w.Frames(), nil
}
