package library

// overlays holds one entry per weather condition
var overlays = map[Weather]WeatherOverlayConfig{
	Clear: {},
	Cloudy: {
		OutdoorIntensity: 0.4,
		IndoorIntensity:  0.15,
		Accents: []AccentDescriptor{
			{Name: "distant wind", Freq: 300, Duration: sec(1.2), Waveform: sawtooth, Interval: ms(6000, 12000), Volume: 0.006, FilterFreq: 500},
			{Name: "soft gust", Freq: 500, Duration: sec(0.8), Waveform: sawtooth, Interval: ms(8000, 16000), Volume: 0.004, FilterFreq: 800},
		},
	},
	Rain: {
		OutdoorIntensity: 0.8,
		IndoorIntensity:  0.4,
		Accents: []AccentDescriptor{
			{Name: "raindrop", Freq: 3200, Duration: sec(0.03), Waveform: sine, Interval: ms(80, 250), Volume: 0.006, DetuneCents: 400},
			{Name: "raindrop low", Freq: 2200, Duration: sec(0.04), Waveform: sine, Interval: ms(120, 400), Volume: 0.005, DetuneCents: 300},
			{Name: "patter", Freq: 5000, Duration: sec(0.02), Waveform: sawtooth, Interval: ms(50, 150), Volume: 0.003, FilterFreq: 6000},
			{Name: "gutter drip", Freq: 900, Duration: sec(0.12), Waveform: sine, Interval: ms(1500, 4000), Volume: 0.01, DetuneCents: 80},
		},
		Drone: &DroneOverlay{Freqs: []float64{180, 270}, Volume: 0.01, Waveform: sawtooth, FilterFreq: 1200},
	},
	Storm: {
		OutdoorIntensity: 1.0,
		IndoorIntensity:  0.6,
		Accents: []AccentDescriptor{
			{Name: "heavy rain", Freq: 3000, Duration: sec(0.03), Waveform: sine, Interval: ms(40, 150), Volume: 0.008, DetuneCents: 500},
			{Name: "heavy rain hiss", Freq: 4500, Duration: sec(0.02), Waveform: sawtooth, Interval: ms(30, 120), Volume: 0.004, FilterFreq: 7000},
			{Name: "thunder rumble", Freq: 45, Duration: sec(3), Waveform: sawtooth, Interval: ms(10000, 25000), Volume: 0.03, FilterFreq: 180},
			{Name: "thunder rumble far", Freq: 60, Duration: sec(2.2), Waveform: sawtooth, Interval: ms(15000, 30000), Volume: 0.025, FilterFreq: 220},
			{Name: "thunder crack", Freq: 120, Duration: sec(0.4), Waveform: square, Interval: ms(20000, 45000), Volume: 0.02, FilterFreq: 900},
			{Name: "wind gust", Freq: 400, Duration: sec(1.5), Waveform: sawtooth, Interval: ms(4000, 9000), Volume: 0.01, FilterFreq: 700},
		},
		Drone: &DroneOverlay{Freqs: []float64{40, 55}, Volume: 0.02, Waveform: sawtooth, FilterFreq: 200},
	},
	Snow: {
		OutdoorIntensity: 0.5,
		IndoorIntensity:  0.2,
		Accents: []AccentDescriptor{
			{Name: "ice crystal", Freq: 4800, Duration: sec(0.05), Waveform: sine, Interval: ms(1500, 4000), Volume: 0.003, DetuneCents: 200},
			{Name: "hush", Freq: 250, Duration: sec(2), Waveform: sawtooth, Interval: ms(6000, 12000), Volume: 0.005, FilterFreq: 400},
		},
		Drone: &DroneOverlay{Freqs: []float64{98, 147}, Volume: 0.008, Waveform: sine, FilterFreq: 300},
	},
	Hot: {
		OutdoorIntensity: 0.6,
		IndoorIntensity:  0.3,
		Accents: []AccentDescriptor{
			{Name: "cicada", Freq: 5200, Duration: sec(0.25), Waveform: sawtooth, Interval: ms(400, 1200), Volume: 0.004, DetuneCents: 150, FilterFreq: 7000},
			{Name: "cicada swell", Freq: 4600, Duration: sec(0.6), Waveform: square, Interval: ms(3000, 7000), Volume: 0.003, FilterFreq: 6000},
			{Name: "heat shimmer", Freq: 1760, Duration: sec(0.8), Waveform: sine, Interval: ms(5000, 11000), Volume: 0.004, DetuneCents: 60},
		},
		Drone: &DroneOverlay{Freqs: []float64{120, 180}, Volume: 0.006, Waveform: sine},
	},
	Windy: {
		OutdoorIntensity: 0.9,
		IndoorIntensity:  0.35,
		Accents: []AccentDescriptor{
			{Name: "gust", Freq: 350, Duration: sec(1.8), Waveform: sawtooth, Interval: ms(2500, 6000), Volume: 0.012, FilterFreq: 600},
			{Name: "whistle", Freq: 1400, Duration: sec(1.2), Waveform: sine, Interval: ms(4000, 10000), Volume: 0.006, DetuneCents: 250},
			{Name: "rattle", Freq: 180, Duration: sec(0.06), Waveform: square, Interval: ms(3000, 9000), Volume: 0.008},
		},
		Drone: &DroneOverlay{Freqs: []float64{110, 165, 220}, Volume: 0.012, Waveform: sawtooth, FilterFreq: 450},
	},
}
