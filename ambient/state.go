package ambient

import (
	"fmt"

	"github.com/lixenwraith/soundscape/library"
)

// Phase is the crossfade controller state
type Phase int32

const (
	PhaseIdle Phase = iota
	PhaseBuilding
	PhasePlaying
	PhaseFadingOut
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBuilding:
		return "building"
	case PhasePlaying:
		return "playing"
	case PhaseFadingOut:
		return "fading-out"
	default:
		return fmt.Sprintf("phase(%d)", int32(p))
	}
}

// EnvironmentState is what the caller reports; Muted and Volume never trigger a rebuild
type EnvironmentState struct {
	Location  library.Location
	TimeOfDay library.TimeOfDay
	Weather   library.Weather
	Muted     bool
	Volume    float64 // [0,1]
}

// sameScene reports whether two states resolve to the same graph
func (s EnvironmentState) sameScene(o EnvironmentState) bool {
	return s.Location == o.Location && s.TimeOfDay == o.TimeOfDay && s.Weather == o.Weather
}

func (s EnvironmentState) String() string {
	return fmt.Sprintf("%s/%s/%s", s.Location, s.TimeOfDay, s.Weather)
}

// clampVolume limits v to [0,1]
func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Snapshot is a point-in-time view of the engine for UIs and tests
type Snapshot struct {
	Phase      Phase
	Inert      bool
	Generation int64
	Builds     int64

	// Timers counts live recurring accent tasks of the current graph
	Timers int
	// Voices counts accent voices still sounding
	Voices int
	// Nodes counts tracked long-lived nodes of the current graph
	Nodes int

	Applied    *EnvironmentState
	Pending    *EnvironmentState
	Intensity  float64
	MasterGain float64
}
