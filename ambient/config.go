package ambient

import (
	"math/rand/v2"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/constant"
)

// Environment variables read by LoadConfig
const (
	EnvEnabled    = "SOUNDSCAPE_ENABLED"
	EnvVolume     = "SOUNDSCAPE_VOLUME"
	EnvMuted      = "SOUNDSCAPE_MUTED"
	EnvSampleRate = "SOUNDSCAPE_SAMPLE_RATE"
	EnvSink       = "SOUNDSCAPE_SINK"
	EnvSeed       = "SOUNDSCAPE_SEED"
)

// Config holds engine and output settings
type Config struct {
	Enabled    bool
	Volume     float64 // [0,1]
	Muted      bool
	SampleRate int
	Sink       string

	// Seed fixes all randomness when non-zero
	Seed uint64
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Enabled:    true,
		Volume:     0.5,
		SampleRate: constant.AudioSampleRate,
		Sink:       audio.SinkSpeaker,
	}
}

// LoadConfig loads configuration from environment variables over the defaults
// Malformed values are ignored
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if enabled := os.Getenv(EnvEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Volume is 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Volume = clampVolume(float64(val) / 100.0)
		}
	}

	if muted := os.Getenv(EnvMuted); muted != "" {
		if val, err := strconv.ParseBool(muted); err == nil {
			cfg.Muted = val
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	if sink := os.Getenv(EnvSink); sink != "" {
		switch s := strings.ToLower(sink); s {
		case audio.SinkSpeaker, audio.SinkOto, audio.SinkPipe, audio.SinkNull:
			cfg.Sink = s
		}
	}

	if seed := os.Getenv(EnvSeed); seed != "" {
		if val, err := strconv.ParseUint(seed, 10, 64); err == nil {
			cfg.Seed = val
		}
	}

	return cfg
}

// Rand returns the engine random source, seeded from Seed when set
func (c *Config) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}
