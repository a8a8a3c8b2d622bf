package audio

import (
	"fmt"
	"strings"
)

// Sink drives a Source into an output device
type Sink interface {
	Name() string

	// Start begins pulling from src; calling it again after success is a no-op
	Start(src Source) error

	// Silent reports that the sink degraded and discards audio
	Silent() bool

	Close() error
}

// Sink kinds accepted by NewSink
const (
	SinkSpeaker = "speaker"
	SinkOto     = "oto"
	SinkPipe    = "pipe"
	SinkNull    = "null"
)

// NewSink creates a sink by kind
func NewSink(kind string, sampleRate int) (Sink, error) {
	switch strings.ToLower(kind) {
	case SinkSpeaker, "":
		return NewSpeakerSink(sampleRate), nil
	case SinkOto:
		return NewOtoSink(sampleRate), nil
	case SinkPipe:
		return NewPipeSink(sampleRate), nil
	case SinkNull:
		return NewNullSink(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSink, kind)
	}
}

// NullSink accepts a source and never pulls from it
// Offline rendering reads the context directly
type NullSink struct{}

// NewNullSink creates a NullSink
func NewNullSink() *NullSink {
	return &NullSink{}
}

func (*NullSink) Name() string       { return SinkNull }
func (*NullSink) Start(Source) error { return nil }
func (*NullSink) Silent() bool       { return false }
func (*NullSink) Close() error       { return nil }
