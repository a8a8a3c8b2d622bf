package ambient

import (
	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/constant"
)

// mixer owns the master gain stage, the only node connected to the destination
type mixer struct {
	backend audio.Backend
	master  audio.Envelope
	volume  float64
	muted   bool
}

func newMixer(b audio.Backend) *mixer {
	m := &mixer{backend: b, master: b.NewEnvelope(), volume: 1}
	m.master.Gain().SetValueAt(0, b.Now())
	m.master.Connect(b.Destination())
	return m
}

// input is where every layer connects
func (m *mixer) input() audio.Node {
	return m.master
}

func (m *mixer) set(volume float64, muted bool) {
	m.volume = clampVolume(volume)
	m.muted = muted
}

// target is the master gain implied by volume and mute
func (m *mixer) target() float64 {
	if m.muted {
		return 0
	}
	return m.volume * constant.MasterHeadroom
}

// apply ramps the master to target, starting from wherever automation is now
func (m *mixer) apply() {
	m.rampTo(m.target(), constant.MixerRampDuration.Seconds())
}

// fadeOut ramps the master to silence ahead of teardown
func (m *mixer) fadeOut() {
	m.rampTo(0, constant.FadeOutDuration.Seconds())
}

// silence drops the master to zero immediately
func (m *mixer) silence() {
	now := m.backend.Now()
	g := m.master.Gain()
	g.CancelAndHold(now)
	g.SetValueAt(0, now)
}

func (m *mixer) rampTo(v, seconds float64) {
	now := m.backend.Now()
	g := m.master.Gain()
	g.CancelAndHold(now)
	g.LinearRampTo(v, now+seconds)
}

func (m *mixer) gain() float64 {
	return m.master.Gain().Value()
}
