package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/soundscape/ambient"
	"github.com/lixenwraith/soundscape/core"
	"github.com/lixenwraith/soundscape/library"
)

const (
	refreshInterval = 100 * time.Millisecond
	volumeStep      = 0.05
)

var (
	styleTitle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleLabel = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleValue = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleWarn  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleKeys  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
)

// app is the interactive terminal controller
type app struct {
	screen tcell.Screen
	svc    *ambient.Service
	engine *ambient.Engine
	state  ambient.EnvironmentState
	msg    string
}

func newApp(svc *ambient.Service, initial ambient.EnvironmentState) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	core.SetCrashHandler(screen.Fini)

	cfg := svc.Config()
	initial.Volume = cfg.Volume
	initial.Muted = cfg.Muted

	a := &app{
		screen: screen,
		svc:    svc,
		engine: svc.Engine(),
		state:  initial,
	}
	if a.engine == nil {
		a.msg = "audio unavailable, controls are inert"
	}
	return a, nil
}

func (a *app) cleanup() {
	core.SetCrashHandler(nil)
	a.screen.Fini()
}

// apply pushes the local state to the engine as an environment change
func (a *app) apply() {
	if a.engine != nil {
		a.engine.SetEnvironment(a.state)
	}
}

func cycle[T ~int](v T, n int, step int) T {
	return T(((int(v)+step)%n + n) % n)
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}

		nLoc := len(library.Locations())
		switch ev.Rune() {
		case 'q':
			return false
		case 'l':
			a.state.Location = cycle(a.state.Location, nLoc, 1)
			a.apply()
		case 'L':
			a.state.Location = cycle(a.state.Location, nLoc, -1)
			a.apply()
		case 't':
			a.state.TimeOfDay = cycle(a.state.TimeOfDay, len(library.TimesOfDay()), 1)
			a.apply()
		case 'w':
			a.state.Weather = cycle(a.state.Weather, len(library.Weathers()), 1)
			a.apply()
		case '+', '=':
			a.state.Volume = min(a.state.Volume+volumeStep, 1)
			if a.engine != nil {
				a.engine.SetVolume(a.state.Volume)
			}
		case '-', '_':
			a.state.Volume = max(a.state.Volume-volumeStep, 0)
			if a.engine != nil {
				a.engine.SetVolume(a.state.Volume)
			}
		case 'm':
			a.state.Muted = !a.state.Muted
			if a.engine != nil {
				a.engine.SetMuted(a.state.Muted)
			}
		case 'r':
			if a.engine != nil {
				a.engine.Restart()
			}
		case 's':
			if a.engine != nil {
				a.engine.Stop()
			}
		case 'p':
			if a.engine != nil {
				a.engine.Start(a.state)
			}
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *app) drawText(x, y int, style tcell.Style, s string) int {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

func (a *app) drawField(x, y int, label, value string) int {
	x = a.drawText(x, y, styleLabel, label+" ")
	return a.drawText(x, y, styleValue, value) + 2
}

func (a *app) draw() {
	a.screen.Clear()
	s := a.state

	a.drawText(1, 0, styleTitle, "soundscape")

	x := a.drawField(1, 2, "location", fmt.Sprintf("%s (%s)", s.Location, library.Classify(s.Location)))
	x = a.drawField(x, 2, "time", s.TimeOfDay.String())
	a.drawField(x, 2, "weather", s.Weather.String())

	x = a.drawField(1, 3, "volume", fmt.Sprintf("%d%%", int(s.Volume*100+0.5)))
	a.drawField(x, 3, "muted", fmt.Sprint(s.Muted))

	y := 5
	if a.engine != nil {
		snap := a.engine.Snapshot()
		x = a.drawField(1, y, "phase", snap.Phase.String())
		x = a.drawField(x, y, "generation", fmt.Sprint(snap.Generation))
		x = a.drawField(x, y, "timers", fmt.Sprint(snap.Timers))
		x = a.drawField(x, y, "voices", fmt.Sprint(snap.Voices))
		a.drawField(x, y, "intensity", fmt.Sprintf("%.2f", snap.Intensity))
		y += 2
		for _, line := range a.svc.Status().Lines() {
			a.drawText(3, y, styleLabel, line)
			y++
		}
	}
	if a.msg != "" {
		y++
		a.drawText(1, y, styleWarn, a.msg)
	}

	_, h := a.screen.Size()
	a.drawText(1, h-1, styleKeys, "[l/L] location  [t] time  [w] weather  [+/-] volume  [m] mute  [p] play  [s] stop  [r] restart  [q] quit")
	a.screen.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(refreshInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	core.Go(func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			a.draw()
		case <-ticker.C:
			a.draw()
		}
	}
}
