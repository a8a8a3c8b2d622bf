package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/soundscape/constant"
)

// SpeakerSink plays through beep's speaker
// beep owns a single process-wide device, so one SpeakerSink should exist at a time
type SpeakerSink struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	ctrl        *beep.Ctrl
	initialized bool
}

// NewSpeakerSink creates an unstarted speaker sink
func NewSpeakerSink(sampleRate int) *SpeakerSink {
	return &SpeakerSink{sampleRate: beep.SampleRate(sampleRate)}
}

// Name implements Sink
func (s *SpeakerSink) Name() string {
	return SinkSpeaker
}

// Silent implements Sink
func (s *SpeakerSink) Silent() bool {
	return false
}

// Start implements Sink
func (s *SpeakerSink) Start(src Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	err := speaker.Init(s.sampleRate, s.sampleRate.N(constant.SinkBufferDuration))
	if err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	s.ctrl = &beep.Ctrl{Streamer: streamerFor(src)}
	speaker.Play(s.ctrl)
	s.initialized = true
	return nil
}

// Close implements Sink
func (s *SpeakerSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil
	}

	speaker.Lock()
	s.ctrl.Paused = true
	speaker.Unlock()

	speaker.Clear()
	speaker.Close()
	s.initialized = false
	return nil
}

// streamerFor wraps src as an endless soft-limited beep.Streamer
func streamerFor(src Source) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		src.Read(samples)
		for i := range samples {
			samples[i][0] = softLimit(samples[i][0])
			samples[i][1] = softLimit(samples[i][1])
		}
		return len(samples), true
	})
}
