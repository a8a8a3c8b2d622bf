package ambient

import (
	"log"

	"github.com/lixenwraith/soundscape/audio"
	"github.com/lixenwraith/soundscape/constant"
	"github.com/lixenwraith/soundscape/library"
)

// buildWeather layers the weather overlay over the base layer
// Zero intensity or an overlay without accents contributes nothing
func (g *graph) buildWeather(w library.Weather, loc library.Location, volume float64) {
	cfg, ok := library.WeatherOverlay(w)
	if !ok {
		log.Printf("ambient: no overlay for weather %s, layer skipped", w)
		return
	}
	intensity := library.Intensity(cfg, library.Classify(loc))
	g.intensity = intensity
	if !library.Contributes(cfg, intensity) {
		return
	}

	g.weatherAccents = g.scheduleAccents(cfg.Accents, volume*intensity)
	if cfg.Drone != nil {
		g.buildWeatherDrone(*cfg.Drone, intensity)
	}
}

// buildWeatherDrone wires generators -> [lowpass] -> envelope -> out with a slow fade-in
func (g *graph) buildWeatherDrone(d library.DroneOverlay, intensity float64) {
	if len(d.Freqs) == 0 {
		return
	}
	b := g.backend
	now := b.Now()

	env := b.NewEnvelope()
	env.Gain().SetValueAt(0, now)
	env.Gain().LinearRampTo(d.Volume*intensity, now+constant.WeatherDroneFadeIn.Seconds())
	g.track(env)

	var sum audio.Node = env
	if d.FilterFreq > 0 {
		sum = g.filterStage(env, audio.FilterLowpass, d.FilterFreq, constant.DefaultFilterQ, now)
	}
	sum.Connect(g.out)

	gens := make([]audio.ToneGenerator, 0, len(d.Freqs))
	for _, f := range d.Freqs {
		osc := b.NewToneGenerator(d.Waveform)
		osc.Frequency().SetValueAt(f, now)
		osc.Connect(env)
		g.trackGenerator(osc)
		gens = append(gens, osc)
	}
	for _, osc := range gens {
		osc.Start(now)
	}
}
