package audio

import (
	"errors"
	"fmt"
)

// Waveform selects a tone generator shape
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSawtooth
	WaveTriangle
)

var waveformNames = [...]string{"sine", "square", "sawtooth", "triangle"}

func (w Waveform) String() string {
	if w < 0 || int(w) >= len(waveformNames) {
		return fmt.Sprintf("waveform(%d)", int(w))
	}
	return waveformNames[w]
}

// FilterKind selects the biquad response
type FilterKind int

const (
	FilterLowpass FilterKind = iota
	FilterBandpass
)

func (k FilterKind) String() string {
	switch k {
	case FilterLowpass:
		return "lowpass"
	case FilterBandpass:
		return "bandpass"
	default:
		return fmt.Sprintf("filter(%d)", int(k))
	}
}

// State is the output context state
type State int

const (
	StateSuspended State = iota
	StateRunning
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateSuspended:
		return "suspended"
	case StateRunning:
		return "running"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// BackendType identifies the CLI pipe backend
type BackendType int

const (
	BackendPulse BackendType = iota
	BackendPipeWire
	BackendALSA
	BackendSoX
	BackendFFplay
	BackendOSS
)

// BackendConfig describes a CLI audio backend
type BackendConfig struct {
	Type BackendType
	Name string
	Path string
	Args []string
}

// Sentinel errors
var (
	ErrNoAudioBackend = errors.New("no compatible audio backend found")
	ErrPipeClosed     = errors.New("audio pipe closed")
	ErrContextClosed  = errors.New("audio context closed")
	ErrEmptyImpulse   = errors.New("impulse response is empty")
	ErrUnknownSink    = errors.New("unknown output sink")
)
