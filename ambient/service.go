package ambient

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/eventloop"
	"github.com/lixenwraith/soundscape/library"
	"github.com/lixenwraith/soundscape/service"
	"github.com/lixenwraith/soundscape/status"
)

// Service wraps Engine as a service.Service
// Handles graceful degradation when no audio output is available
type Service struct {
	cfg     *Config
	initial EnvironmentState
	status  *status.Registry

	loop   *eventloop.Real
	engine *Engine
	sink   audio.Sink

	sinkName *status.AtomicString
	silent   *atomic.Bool

	disabled atomic.Bool
	stopOnce sync.Once
}

var _ service.Service = (*Service)(nil)

// NewService creates a new ambient service publishing into reg
func NewService(reg *status.Registry) *Service {
	if reg == nil {
		reg = status.NewRegistry()
	}
	return &Service{
		status:   reg,
		sinkName: reg.Strings.Get("audio.sink"),
		silent:   reg.Bools.Get("audio.silent"),
		initial: EnvironmentState{
			Location:  library.Bedroom,
			TimeOfDay: library.Night,
			Weather:   library.Clear,
		},
	}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "ambient"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return nil
}

// Init implements service.Service
// args[0]: *Config (default LoadConfig), args[1]: EnvironmentState to start with
// Sets the disabled flag when audio is off or unavailable; never returns an error for that
func (s *Service) Init(args ...any) error {
	s.cfg = nil
	for _, arg := range args {
		switch v := arg.(type) {
		case *Config:
			s.cfg = v
		case EnvironmentState:
			s.initial = v
		}
	}
	if s.cfg == nil {
		s.cfg = LoadConfig()
	}
	s.initial.Volume = s.cfg.Volume
	s.initial.Muted = s.cfg.Muted

	if !s.cfg.Enabled {
		s.disabled.Store(true)
		return nil
	}

	s.loop = eventloop.New()
	s.engine = NewEngine(s.loop, s.openBackend, Options{
		Rand:   s.cfg.Rand(),
		Status: s.status,
	})
	if s.engine.Inert() {
		s.disabled.Store(true)
	}
	return nil
}

// openBackend builds the configured sink and an audio context feeding it
func (s *Service) openBackend() (audio.Backend, error) {
	sink, err := audio.NewSink(s.cfg.Sink, s.cfg.SampleRate)
	if err != nil {
		return nil, err
	}
	ctx, err := audio.NewContext(s.cfg.SampleRate, sink)
	if err != nil {
		sink.Close()
		return nil, fmt.Errorf("audio context: %w", err)
	}
	s.sink = sink
	s.sinkName.Store(sink.Name())
	return ctx, nil
}

// Start implements service.Service
func (s *Service) Start() error {
	if s.disabled.Load() || s.engine == nil {
		return nil
	}
	s.engine.Start(s.initial)
	return nil
}

// Stop implements service.Service; idempotent
func (s *Service) Stop() error {
	s.stopOnce.Do(func() {
		if s.engine != nil {
			s.engine.Close()
		}
		if s.loop != nil {
			s.loop.Close()
		}
		log.Printf("ambient: service stopped")
	})
	return nil
}

// IsDisabled returns true if audio is unavailable or turned off
func (s *Service) IsDisabled() bool {
	return s.disabled.Load()
}

// Engine returns the engine, nil when disabled
func (s *Service) Engine() *Engine {
	if s.disabled.Load() {
		return nil
	}
	return s.engine
}

// Config returns the resolved configuration
func (s *Service) Config() *Config {
	return s.cfg
}

// Status refreshes sink gauges and returns the registry
func (s *Service) Status() *status.Registry {
	if s.sink != nil {
		s.silent.Store(s.sink.Silent())
	}
	return s.status
}
