package library

import "github.com/lixenwraith/soundscape/audio"

var (
	sine     = audio.WaveSine
	square   = audio.WaveSquare
	sawtooth = audio.WaveSawtooth
	triangle = audio.WaveTriangle
)

// rooms holds the base layer for every location; garden accents are replaced per time of day
var rooms = map[Location]SoundscapeConfig{
	Bedroom: {
		DroneFreqs:    []float64{110, 165, 220},
		DroneVolume:   0.03,
		DroneWaveform: sine,
		Accents: []AccentDescriptor{
			{Name: "music box", Freq: 880, Duration: sec(0.3), Waveform: sine, Interval: ms(3000, 8000), Volume: 0.02, DetuneCents: 50},
			{Name: "music box high", Freq: 1047, Duration: sec(0.2), Waveform: sine, Interval: ms(4000, 10000), Volume: 0.015},
			{Name: "clock tick", Freq: 2000, Duration: sec(0.02), Waveform: square, Interval: ms(1000, 1000), Volume: 0.008},
		},
		LFO:        &LFO{Rate: 0.1, Depth: 5},
		Filter:     &FilterSpec{Kind: audio.FilterLowpass, Freq: 400, Q: 1},
		Reverb:     true,
		ReverbTime: 2,
	},
	Kitchen: {
		DroneFreqs:    []float64{55, 110, 82},
		DroneVolume:   0.02,
		DroneWaveform: triangle,
		Accents: []AccentDescriptor{
			{Name: "sizzle", Freq: 4000, Duration: sec(0.05), Waveform: sawtooth, Interval: ms(200, 800), Volume: 0.01},
			{Name: "bubbling", Freq: 150, Duration: sec(0.08), Waveform: sine, Interval: ms(500, 1500), Volume: 0.02},
			{Name: "fridge hum", Freq: 60, Duration: sec(2), Waveform: sine, Interval: ms(8000, 15000), Volume: 0.015},
		},
		Filter: &FilterSpec{Kind: audio.FilterLowpass, Freq: 800, Q: 0.5},
	},
	Garden: {
		DroneFreqs:    []float64{196, 294, 392},
		DroneVolume:   0.015,
		DroneWaveform: sine,
		Accents: []AccentDescriptor{
			{Name: "wind", Freq: 800, Duration: sec(0.5), Waveform: sawtooth, Interval: ms(2000, 5000), Volume: 0.008},
			{Name: "leaves", Freq: 2500, Duration: sec(0.1), Waveform: sawtooth, Interval: ms(1000, 3000), Volume: 0.005},
		},
		LFO:        &LFO{Rate: 0.3, Depth: 20},
		Filter:     &FilterSpec{Kind: audio.FilterBandpass, Freq: 600, Q: 2},
		Reverb:     true,
		ReverbTime: 3,
	},
	Living: {
		DroneFreqs:    []float64{100, 150, 200},
		DroneVolume:   0.02,
		DroneWaveform: sine,
		Accents: []AccentDescriptor{
			{Name: "page turn", Freq: 1000, Duration: sec(0.3), Waveform: sawtooth, Interval: ms(500, 2000), Volume: 0.005},
			{Name: "clock", Freq: 1500, Duration: sec(0.03), Waveform: square, Interval: ms(2000, 2000), Volume: 0.01},
		},
		Filter: &FilterSpec{Kind: audio.FilterLowpass, Freq: 500, Q: 1},
	},
	Bathroom: {
		DroneFreqs:    []float64{220, 330, 440},
		DroneVolume:   0.015,
		DroneWaveform: sine,
		Accents: []AccentDescriptor{
			{Name: "drip", Freq: 1200, Duration: sec(0.15), Waveform: sine, Interval: ms(2000, 6000), Volume: 0.025, DetuneCents: 100},
			{Name: "drip low", Freq: 800, Duration: sec(0.1), Waveform: sine, Interval: ms(3000, 8000), Volume: 0.02},
			{Name: "pipe hiss", Freq: 3000, Duration: sec(0.8), Waveform: sawtooth, Interval: ms(5000, 12000), Volume: 0.005},
		},
		LFO:        &LFO{Rate: 0.5, Depth: 10},
		Filter:     &FilterSpec{Kind: audio.FilterBandpass, Freq: 1500, Q: 3},
		Reverb:     true,
		ReverbTime: 4,
	},
	Garage: {
		DroneFreqs:    []float64{55, 82, 110},
		DroneVolume:   0.025,
		DroneWaveform: sawtooth,
		Accents: []AccentDescriptor{
			{Name: "metal clink", Freq: 400, Duration: sec(0.05), Waveform: square, Interval: ms(4000, 10000), Volume: 0.02},
			{Name: "creak", Freq: 200, Duration: sec(0.5), Waveform: triangle, Interval: ms(3000, 7000), Volume: 0.01},
			{Name: "engine rumble", Freq: 80, Duration: sec(1.5), Waveform: sawtooth, Interval: ms(6000, 12000), Volume: 0.015},
		},
		Filter:     &FilterSpec{Kind: audio.FilterLowpass, Freq: 400, Q: 0.7},
		Reverb:     true,
		ReverbTime: 2.5,
	},
	Shop: {
		DroneFreqs:    []float64{220, 277, 330, 440},
		DroneVolume:   0.02,
		DroneWaveform: sine,
		Accents: []AccentDescriptor{
			{Name: "door bell", Freq: 2093, Duration: sec(0.4), Waveform: sine, Interval: ms(2000, 5000), Volume: 0.015},
			{Name: "chime", Freq: 1568, Duration: sec(0.3), Waveform: sine, Interval: ms(3000, 6000), Volume: 0.012},
			{Name: "register", Freq: 523, Duration: sec(0.8), Waveform: triangle, Interval: ms(4000, 8000), Volume: 0.015},
		},
		LFO:    &LFO{Rate: 0.2, Depth: 8},
		Filter: &FilterSpec{Kind: audio.FilterLowpass, Freq: 2000, Q: 0.5},
	},
	Supermarket: {
		DroneFreqs:    []float64{100, 120, 150},
		DroneVolume:   0.015,
		DroneWaveform: sine,
		Accents: []AccentDescriptor{
			{Name: "scanner beep", Freq: 1000, Duration: sec(0.1), Waveform: square, Interval: ms(1500, 4000), Volume: 0.02},
			{Name: "cart rattle", Freq: 3000, Duration: sec(0.05), Waveform: sawtooth, Interval: ms(3000, 8000), Volume: 0.008},
			{Name: "announcement", Freq: 880, Duration: sec(0.5), Waveform: sine, Interval: ms(8000, 15000), Volume: 0.01},
		},
		Filter:     &FilterSpec{Kind: audio.FilterLowpass, Freq: 600, Q: 0.5},
		Reverb:     true,
		ReverbTime: 1.5,
	},
	Attic: {
		DroneFreqs:    []float64{82, 123, 165},
		DroneVolume:   0.02,
		DroneWaveform: sine,
		Accents: []AccentDescriptor{
			{Name: "floorboard", Freq: 200, Duration: sec(0.3), Waveform: sawtooth, Interval: ms(4000, 10000), Volume: 0.015},
			{Name: "draft", Freq: 600, Duration: sec(1.2), Waveform: sawtooth, Interval: ms(3000, 7000), Volume: 0.01},
			{Name: "old music box", Freq: 1047, Duration: sec(0.5), Waveform: sine, Interval: ms(6000, 12000), Volume: 0.012, DetuneCents: 30},
			{Name: "scurry", Freq: 150, Duration: sec(0.08), Waveform: square, Interval: ms(5000, 15000), Volume: 0.008},
			{Name: "dust", Freq: 3500, Duration: sec(0.02), Waveform: sawtooth, Interval: ms(8000, 20000), Volume: 0.005},
		},
		LFO:        &LFO{Rate: 0.15, Depth: 8},
		Filter:     &FilterSpec{Kind: audio.FilterLowpass, Freq: 500, Q: 1.5},
		Reverb:     true,
		ReverbTime: 3.5,
	},
	Basement: {
		DroneFreqs:    []float64{41, 62, 82},
		DroneVolume:   0.025,
		DroneWaveform: sawtooth,
		Accents: []AccentDescriptor{
			{Name: "pipe knock", Freq: 300, Duration: sec(0.1), Waveform: square, Interval: ms(5000, 12000), Volume: 0.02},
			{Name: "boiler", Freq: 50, Duration: sec(2), Waveform: sawtooth, Interval: ms(8000, 18000), Volume: 0.015},
			{Name: "drip", Freq: 1000, Duration: sec(0.12), Waveform: sine, Interval: ms(3000, 7000), Volume: 0.018, DetuneCents: 80},
			{Name: "hum", Freq: 60, Duration: sec(0.5), Waveform: sine, Interval: ms(2000, 4000), Volume: 0.01},
			{Name: "skitter", Freq: 500, Duration: sec(0.05), Waveform: square, Interval: ms(6000, 15000), Volume: 0.012},
		},
		Filter:     &FilterSpec{Kind: audio.FilterLowpass, Freq: 350, Q: 0.8},
		Reverb:     true,
		ReverbTime: 2.8,
	},
	Terrace: {
		DroneFreqs:    []float64{147, 220, 294},
		DroneVolume:   0.015,
		DroneWaveform: sine,
		Accents: []AccentDescriptor{
			{Name: "wind chime", Freq: 1568, Duration: sec(0.6), Waveform: sine, Interval: ms(4000, 9000), Volume: 0.01, DetuneCents: 40},
			{Name: "wind chime high", Freq: 2093, Duration: sec(0.4), Waveform: sine, Interval: ms(5000, 11000), Volume: 0.008},
			{Name: "breeze", Freq: 700, Duration: sec(0.6), Waveform: sawtooth, Interval: ms(3000, 7000), Volume: 0.006, FilterFreq: 1200},
		},
		LFO:        &LFO{Rate: 0.2, Depth: 6},
		Filter:     &FilterSpec{Kind: audio.FilterLowpass, Freq: 900, Q: 0.8},
		Reverb:     true,
		ReverbTime: 1.8,
	},
}

// gardenAccents replaces the garden's static accents per time of day
var gardenAccents = map[TimeOfDay][]AccentDescriptor{
	Morning: {
		{Name: "robin", Freq: 2000, Duration: sec(0.15), Waveform: sine, Interval: ms(1000, 3000), Volume: 0.015, DetuneCents: 200},
		{Name: "sparrow", Freq: 2500, Duration: sec(0.1), Waveform: sine, Interval: ms(1500, 4000), Volume: 0.012, DetuneCents: 300},
		{Name: "blackbird", Freq: 1800, Duration: sec(0.2), Waveform: sine, Interval: ms(2000, 5000), Volume: 0.01},
		{Name: "breeze", Freq: 800, Duration: sec(0.5), Waveform: sawtooth, Interval: ms(2000, 5000), Volume: 0.008},
	},
	Afternoon: {
		{Name: "bird", Freq: 2200, Duration: sec(0.12), Waveform: sine, Interval: ms(3000, 6000), Volume: 0.01, DetuneCents: 150},
		{Name: "wind", Freq: 900, Duration: sec(0.6), Waveform: sawtooth, Interval: ms(1500, 4000), Volume: 0.01},
		{Name: "leaves", Freq: 2800, Duration: sec(0.08), Waveform: sawtooth, Interval: ms(1000, 3000), Volume: 0.006},
	},
	Evening: {
		{Name: "cricket", Freq: 4000, Duration: sec(0.05), Waveform: sine, Interval: ms(500, 1500), Volume: 0.008},
		{Name: "late bird", Freq: 2000, Duration: sec(0.15), Waveform: sine, Interval: ms(4000, 8000), Volume: 0.008, DetuneCents: 100},
		{Name: "wind", Freq: 700, Duration: sec(0.4), Waveform: sawtooth, Interval: ms(3000, 6000), Volume: 0.008},
	},
	Night: {
		{Name: "cricket", Freq: 4500, Duration: sec(0.03), Waveform: sine, Interval: ms(300, 800), Volume: 0.01},
		{Name: "cricket low", Freq: 4200, Duration: sec(0.04), Waveform: sine, Interval: ms(400, 1000), Volume: 0.008},
		{Name: "owl", Freq: 300, Duration: sec(0.8), Waveform: sine, Interval: ms(8000, 15000), Volume: 0.015},
		{Name: "night wind", Freq: 600, Duration: sec(0.3), Waveform: sawtooth, Interval: ms(4000, 8000), Volume: 0.006},
	},
}

var classifications = map[Location]Classification{
	Garden:  Outdoor,
	Terrace: SemiOutdoor,
	Garage:  SemiOutdoor,
	Attic:   SemiOutdoor,
}
