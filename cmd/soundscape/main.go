package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/lixenwraith/soundscape/ambient"
	"github.com/lixenwraith/soundscape/library"
	"github.com/lixenwraith/soundscape/service"
	"github.com/lixenwraith/soundscape/status"
	"github.com/lixenwraith/soundscape/weather"
)

var (
	debugFlag    = flag.Bool("debug", false, "Write logs to logs/soundscape.log")
	locationFlag = flag.String("location", "bedroom", "Starting location")
	timeFlag     = flag.String("time", "", "Time of day: morning, afternoon, evening, night (default: from the clock)")
	weatherFlag  = flag.String("weather", "", "Weather: clear, cloudy, rain, storm, snow, hot, windy (default: today's story weather)")
	volumeFlag   = flag.Int("volume", 50, "Volume 0-100")
	muteFlag     = flag.Bool("mute", false, "Start muted")
	sinkFlag     = flag.String("sink", "speaker", "Output: speaker, oto, pipe, null")
	rateFlag     = flag.Int("rate", 44100, "Sample rate")
	seedFlag     = flag.Uint64("seed", 0, "Random seed, 0 for time-based")
	renderFlag   = flag.String("render", "", "Render offline to this WAV file instead of playing")
	secondsFlag  = flag.Float64("seconds", 30, "Length of an offline render")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := resolveConfig()
	initial, err := resolveState(time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "soundscape: %v\n", err)
		os.Exit(2)
	}

	if *renderFlag != "" {
		frames, err := renderOffline(cfg, initial, *renderFlag, *secondsFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "soundscape: render failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("rendered %s (%d frames, %s) to %s\n", initial, frames,
			time.Duration(float64(frames)/float64(cfg.SampleRate)*float64(time.Second)), *renderFlag)
		return
	}

	reg := status.NewRegistry()
	svc := ambient.NewService(reg)
	hub := service.NewHub()
	if err := hub.Register(svc, cfg, initial); err != nil {
		fmt.Fprintf(os.Stderr, "soundscape: %v\n", err)
		os.Exit(1)
	}
	if err := hub.InitAll(); err != nil {
		fmt.Fprintf(os.Stderr, "soundscape: %v\n", err)
		os.Exit(1)
	}
	if err := hub.StartAll(); err != nil {
		fmt.Fprintf(os.Stderr, "soundscape: %v\n", err)
		os.Exit(1)
	}
	defer hub.StopAll()

	ui, err := newApp(svc, initial)
	if err != nil {
		hub.StopAll()
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	defer ui.cleanup()

	ui.run()
}

// resolveConfig layers explicitly set flags over environment configuration
func resolveConfig() *ambient.Config {
	cfg := ambient.LoadConfig()
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "volume":
			cfg.Volume = min(max(float64(*volumeFlag)/100, 0), 1)
		case "mute":
			cfg.Muted = *muteFlag
		case "sink":
			cfg.Sink = *sinkFlag
		case "rate":
			if *rateFlag > 0 {
				cfg.SampleRate = *rateFlag
			}
		case "seed":
			cfg.Seed = *seedFlag
		}
	})
	return cfg
}

// resolveState builds the starting environment; time and weather default to now
func resolveState(now time.Time) (ambient.EnvironmentState, error) {
	var s ambient.EnvironmentState

	loc, err := library.ParseLocation(*locationFlag)
	if err != nil {
		return s, err
	}
	s.Location = loc

	s.TimeOfDay = library.TimeOfDayAt(now.Hour())
	if *timeFlag != "" {
		if s.TimeOfDay, err = library.ParseTimeOfDay(*timeFlag); err != nil {
			return s, err
		}
	}

	s.Weather = weather.StoryWeather(now)
	if *weatherFlag != "" {
		if s.Weather, err = library.ParseWeather(*weatherFlag); err != nil {
			return s, err
		}
	}
	return s, nil
}
