package main

import (
	"flag"
	"log"
	"time"

	"snake-planner/config"
	"snake-planner/game"
	"snake-planner/game/manager"
	"snake-planner/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config")
	speed := flag.Int("speed", 0, "Game speed in milliseconds (lower = faster), overrides tick_interval")
	runs := flag.Int("runs", 0, "Number of runs, overrides the config")
	search := flag.String("search", "", "Search algorithm: bfs, astar or iddfs")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *speed > 0 {
		cfg.TickInterval = time.Duration(*speed) * time.Millisecond
	}
	if *runs > 0 {
		cfg.Runs = *runs
	}
	if *search != "" {
		cfg.Search = *search
	}

	stats, err := manager.NewStateManager(cfg.StatsFile)
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	session, err := game.NewSession(cfg, stats, log.Default())
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	rl.InitWindow(1280, 800, "Snake Planner - "+cfg.Search)
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()
	paused := false

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			paused = !paused
		}
		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}
		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			renderer.Pick(rl.GetMouseX(), rl.GetMouseY(), session.Game().Grid)
		}

		// Update game state at fixed interval
		if !paused && !session.Done() && time.Since(lastUpdate) >= cfg.TickInterval {
			if _, err := session.Tick(); err != nil {
				log.Printf("stats: %v", err)
			}
			lastUpdate = time.Now()
		}

		renderer.Draw(session)
	}

	summary := stats.SessionSummary(session.UUID, game.ReasonGoalReached.String())
	log.Printf("session %s: %d runs, %d wins, mean food %.1f, median moves %.0f",
		session.UUID, summary.Runs, summary.Wins, summary.MeanFoods, summary.MedianMoves)
}
