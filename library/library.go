package library

// Soundscape resolves the base layer for a location and time of day
// The returned config owns fresh slices; callers may not mutate shared tables
func Soundscape(loc Location, tod TimeOfDay) (SoundscapeConfig, bool) {
	cfg, ok := rooms[loc]
	if !ok {
		return SoundscapeConfig{}, false
	}
	cfg.Location = loc
	cfg.DroneFreqs = append([]float64(nil), cfg.DroneFreqs...)
	if loc == Garden {
		if accents, ok := gardenAccents[tod]; ok {
			cfg.Accents = accents
		}
	}
	cfg.Accents = append([]AccentDescriptor(nil), cfg.Accents...)
	return cfg, true
}

// WeatherOverlay resolves the overlay for a weather condition
func WeatherOverlay(w Weather) (WeatherOverlayConfig, bool) {
	cfg, ok := overlays[w]
	if !ok {
		return WeatherOverlayConfig{}, false
	}
	cfg.Weather = w
	cfg.Accents = append([]AccentDescriptor(nil), cfg.Accents...)
	return cfg, true
}

// Classify reports how exposed a location is; unlisted locations are indoor
func Classify(loc Location) Classification {
	if c, ok := classifications[loc]; ok {
		return c
	}
	return Indoor
}

// Intensity blends an overlay's intensities for a location class
// Semi-outdoor takes the midpoint of outdoor and indoor
func Intensity(cfg WeatherOverlayConfig, c Classification) float64 {
	switch c {
	case Outdoor:
		return cfg.OutdoorIntensity
	case Indoor:
		return cfg.IndoorIntensity
	default:
		return (cfg.OutdoorIntensity + cfg.IndoorIntensity) / 2
	}
}

// Contributes reports whether an overlay adds anything at the given intensity
func Contributes(cfg WeatherOverlayConfig, intensity float64) bool {
	return intensity > 0 && len(cfg.Accents) > 0
}
