package library

import (
	"math"
	"time"

	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/schedule"
)

// AccentDescriptor is one recurring transient
type AccentDescriptor struct {
	Name     string
	Freq     float64
	Duration time.Duration
	Waveform audio.Waveform
	Interval schedule.DelayRange
	Volume   float64

	// DetuneCents randomizes each firing within ±DetuneCents/2; 0 disables
	DetuneCents float64

	// FilterFreq routes the voice through a lowpass when non-zero
	FilterFreq float64
}

// LFO modulates drone frequency by ±Depth Hz at Rate Hz
type LFO struct {
	Rate  float64
	Depth float64
}

// FilterSpec configures the drone filter stage
type FilterSpec struct {
	Kind audio.FilterKind
	Freq float64
	Q    float64
}

// SoundscapeConfig describes a location's base layer
type SoundscapeConfig struct {
	Location      Location
	DroneFreqs    []float64
	DroneVolume   float64
	DroneWaveform audio.Waveform
	Accents       []AccentDescriptor

	LFO    *LFO
	Filter *FilterSpec

	Reverb     bool
	ReverbTime float64 // seconds
}

// DroneOverlay is the sustained weather bed
type DroneOverlay struct {
	Freqs    []float64
	Volume   float64
	Waveform audio.Waveform

	// FilterFreq adds a lowpass when non-zero
	FilterFreq float64
}

// WeatherOverlayConfig describes a weather condition's overlay layer
type WeatherOverlayConfig struct {
	Weather          Weather
	OutdoorIntensity float64
	IndoorIntensity  float64
	Accents          []AccentDescriptor
	Drone            *DroneOverlay
}

// ms builds an interval from millisecond bounds
func ms(minMs, maxMs int) schedule.DelayRange {
	return schedule.DelayRange{
		Min: time.Duration(minMs) * time.Millisecond,
		Max: time.Duration(maxMs) * time.Millisecond,
	}
}

// sec converts fractional seconds to a duration
func sec(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
