package audio

import (
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"

	"github.com/lixenwraith/soundscape/constant"
)

// oto allows one context per process; it is created on first use and reused
var (
	otoOnce sync.Once
	otoCtx  *oto.Context
	otoErr  error
)

func sharedOtoContext(sampleRate int) (*oto.Context, error) {
	otoOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: constant.AudioChannels,
			Format:       oto.FormatSignedInt16LE,
			BufferSize:   constant.SinkBufferDuration,
		})
		if err != nil {
			otoErr = err
			return
		}
		<-ready
		otoCtx = ctx
	})
	return otoCtx, otoErr
}

// OtoSink plays through an oto player fed by the source
type OtoSink struct {
	mu         sync.Mutex
	sampleRate int
	player     *oto.Player
}

// NewOtoSink creates an unstarted oto sink
func NewOtoSink(sampleRate int) *OtoSink {
	return &OtoSink{sampleRate: sampleRate}
}

// Name implements Sink
func (s *OtoSink) Name() string {
	return SinkOto
}

// Silent implements Sink
func (s *OtoSink) Silent() bool {
	return false
}

// Start implements Sink; a previously closed sink resumes the shared device
func (s *OtoSink) Start(src Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player != nil {
		return nil
	}

	ctx, err := sharedOtoContext(s.sampleRate)
	if err != nil {
		return fmt.Errorf("oto context: %w", err)
	}
	if err := ctx.Resume(); err != nil {
		return fmt.Errorf("oto resume: %w", err)
	}

	s.player = ctx.NewPlayer(newPCMReader(src))
	s.player.Play()
	return nil
}

// Close implements Sink
func (s *OtoSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.player == nil {
		return nil
	}
	s.player.Pause()
	err := s.player.Close()
	s.player = nil

	if otoCtx != nil {
		if serr := otoCtx.Suspend(); serr != nil && err == nil {
			err = serr
		}
	}
	if err != nil {
		return fmt.Errorf("oto close: %w", err)
	}
	return nil
}
