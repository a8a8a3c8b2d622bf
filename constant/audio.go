package constant

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate    = 44100
	AudioChannels      = 2
	AudioBitDepth      = 16
	AudioBytesPerFrame = AudioChannels * (AudioBitDepth / 8) // 4 bytes
)

// Audio Graph Rendering
const (
	// RenderQuantum is the block size every node renders per pull
	RenderQuantum = 128

	// ConvolutionBlock is the partition size of the reverb convolver
	// Wet path latency equals one block (~23ms at 44.1kHz)
	ConvolutionBlock = 1024

	// SinkBufferDuration sets device buffering for speaker/oto/pipe sinks
	SinkBufferDuration = 50 * time.Millisecond

	// SinkBufferSamples is frames per pipe sink tick at 44.1kHz
	SinkBufferSamples = (AudioSampleRate * 50) / 1000 // 2205
)

// Crossfade Timing
const (
	// FadeOutDuration ramps the master bus to zero before teardown
	FadeOutDuration = 500 * time.Millisecond

	// SettleDelay separates teardown from the next build
	SettleDelay = 100 * time.Millisecond

	// MixerRampDuration smooths volume and mute changes
	MixerRampDuration = 100 * time.Millisecond

	// MasterHeadroom scales volume so stacked layers never clip
	MasterHeadroom = 0.5
)

// Drone Layer
const (
	DroneFadeIn        = 2 * time.Second
	DroneDetuneStep    = 5.0 // cents per voice away from center
	DefaultLFODepth    = 10.0
	DefaultFilterQ     = 1.0
	DefaultReverbTime  = 2 * time.Second
	ReverbWetGain      = 0.3
	WeatherDroneFadeIn = 3 * time.Second
)

// Accent Transients
const (
	AccentAttack = 10 * time.Millisecond

	// AccentStopPadding keeps the generator alive past the decay tail
	AccentStopPadding = 50 * time.Millisecond

	// AccentDecayRatio sets the decay target relative to the peak (-60 dB)
	// Exponential ramps cannot reach 0
	AccentDecayRatio = 0.001
)
