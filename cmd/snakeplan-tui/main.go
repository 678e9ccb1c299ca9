// snakeplan-tui plays the configured runs in a terminal.
// space pauses, q quits
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"snake-planner/audio"
	"snake-planner/config"
	"snake-planner/game"
	"snake-planner/game/manager"
	"snake-planner/game/types"

	"github.com/gdamore/tcell/v2"
)

var (
	s        tcell.Screen
	defStyle tcell.Style
	tiling   = types.Tiling{OffsetX: 1, OffsetY: 2, Size: 1}
)

var (
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed)
	headStyle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	foodStyle   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	hazardStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkGray)
	routeStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func initScreen() {
	var err error
	if s, err = tcell.NewScreen(); err != nil {
		panic(err)
	}
	if err = s.Init(); err != nil {
		panic(err)
	}
	defStyle = tcell.StyleDefault.Background(tcell.ColorDefault).Foreground(tcell.ColorDefault)
	s.SetStyle(defStyle)
}

func msg(y int, m string) {
	for i, c := range m {
		s.SetContent(1+i, y, c, nil, defStyle)
	}
}

func drawAt(p types.Point, c rune, style tcell.Style) {
	x, y := tiling.ToPixel(p)
	s.SetContent(x, y, c, nil, style)
}

func headGlyph(heading string) rune {
	switch heading {
	case types.UP.String():
		return '^'
	case types.RIGHT.String():
		return '>'
	case types.DOWN.String():
		return 'v'
	case types.LEFT.String():
		return '<'
	}
	return '@'
}

func draw(snap game.Snapshot, grid types.Grid, paused, finished bool) {
	s.Clear()
	status := fmt.Sprintf("run %d  food %d  moves %d  %s", snap.Run, snap.FoodsCollected, snap.Moves, snap.State)
	if paused {
		status += "  (paused)"
	}
	msg(0, status)
	if finished {
		msg(1, "all runs completed, q to quit")
	}

	for x := 0; x < grid.Width; x++ {
		for y := 0; y < grid.Height; y++ {
			drawAt(types.Point{X: x, Y: y}, '·', defStyle)
		}
	}
	for _, p := range snap.Route {
		drawAt(p, '+', routeStyle)
	}
	for _, p := range snap.Foods {
		drawAt(p, '*', foodStyle)
	}
	for i, p := range snap.Body {
		if i == 0 {
			drawAt(p, headGlyph(snap.Heading), headStyle)
		} else {
			drawAt(p, 'o', bodyStyle)
		}
	}
	for _, p := range snap.Hazards {
		drawAt(p, '#', hazardStyle)
	}
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config")
	mute := flag.Bool("mute", false, "Disable sound")
	logPath := flag.String("log", "", "Write the run log to this file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The screen owns stdout; keep the log out of it.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatalf("log: %v", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := log.New(logOut, "", log.LstdFlags)

	stats, err := manager.NewStateManager(cfg.StatsFile)
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	session, err := game.NewSession(cfg, stats, logger)
	if err != nil {
		log.Fatalf("session: %v", err)
	}
	grid := session.Game().Grid

	cues := audio.NewCues()
	if !*mute {
		if err := cues.Initialize(); err != nil {
			logger.Printf("audio disabled: %v", err)
		}
	}
	defer cues.Cleanup()

	initScreen()
	defer s.Fini()

	runner := game.NewRunner(session, cfg.TickInterval)
	runner.OnTick(func(snap game.Snapshot) {
		switch snap.Event {
		case game.EventFoodCollected.String():
			cues.PlayFood()
		case game.EventRunEnded.String():
			if snap.Reason == game.ReasonGoalReached.String() {
				cues.PlayGoal()
			} else {
				cues.PlayCollision()
			}
		}
	})

	evChan := make(chan tcell.Event, 100)
	quitChan := make(chan struct{}, 1)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case evChan <- ev:
			case <-quitChan:
				return
			}
		}
	}()

	paused, finished := false, false
	last := session.Snapshot(game.EventNone)
	runner.Start()
	done := runner.Done()
EvLoop:
	for {
		draw(last, grid, paused, finished)
		s.Show()
		select {
		case snap := <-runner.Snapshots():
			last = snap
		case err := <-runner.Errors():
			logger.Printf("stats: %v", err)
		case <-done:
			done = nil
			finished = true
		case ev := <-evChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					break EvLoop
				}
				if ev.Key() == tcell.KeyRune {
					switch ev.Rune() {
					case 'q':
						break EvLoop
					case ' ':
						if finished {
							break
						}
						if paused {
							runner.Start()
						} else {
							runner.Stop()
						}
						paused = !paused
					}
				}
			}
		}
	}
	runner.Stop()
	close(quitChan)

	summary := stats.SessionSummary(session.UUID, game.ReasonGoalReached.String())
	logger.Printf("session %s: %d runs, %d wins", session.UUID, summary.Runs, summary.Wins)
}
