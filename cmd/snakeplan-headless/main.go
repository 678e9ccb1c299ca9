// snakeplan-headless plays the configured runs without a window, prints a
// summary of the run history and optionally streams every tick over a
// websocket.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"snake-planner/config"
	"snake-planner/game"
	"snake-planner/game/manager"
	"snake-planner/stream"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config")
	runs := flag.Int("runs", 0, "Number of runs, overrides the config")
	search := flag.String("search", "", "Search algorithm: bfs, astar or iddfs")
	policy := flag.String("policy", "", "Planning policy: obstacle-aware or obstacle-ignorant")
	listen := flag.String("listen", "", "Serve the tick stream on this address, e.g. :8080")
	asJSON := flag.Bool("json", false, "Print the summary as JSON")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *runs > 0 {
		cfg.Runs = *runs
	}
	if *search != "" {
		cfg.Search = *search
	}
	if *policy != "" {
		cfg.Policy = *policy
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	stats, err := manager.NewStateManager(cfg.StatsFile)
	if err != nil {
		log.Fatalf("stats: %v", err)
	}
	session, err := game.NewSession(cfg, stats, log.Default())
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	// Without viewers there is nothing to pace for.
	var interval time.Duration
	var hub *stream.Hub
	if cfg.Listen != "" {
		interval = cfg.TickInterval
		hub = stream.NewHub(log.Default())
		defer hub.Close()

		mux := http.NewServeMux()
		mux.Handle("/ws", hub)
		server := &http.Server{Addr: cfg.Listen, Handler: mux}
		go func() {
			log.Printf("streaming on ws://%s/ws", cfg.Listen)
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Printf("stream server: %v", err)
			}
		}()
		defer server.Close()
	}

	runner := game.NewRunner(session, interval)
	if hub != nil {
		runner.OnTick(func(snap game.Snapshot) {
			if err := hub.Broadcast(snap); err != nil {
				log.Printf("broadcast: %v", err)
			}
		})
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	start := time.Now()
	interrupted := false
	runner.Start()
Loop:
	for {
		select {
		case <-runner.Done():
			break Loop
		case <-sigCh:
			interrupted = true
			break Loop
		case err := <-runner.Errors():
			log.Printf("stats: %v", err)
		case <-runner.Snapshots():
		}
	}
	runner.Stop()
	// The session is only safe to read once the loop has exited.
	if interrupted {
		log.Printf("interrupted after %d runs", session.RunsCompleted)
	}

	summary := stats.SessionSummary(session.UUID, game.ReasonGoalReached.String())
	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			log.Fatalf("summary: %v", err)
		}
		return
	}
	fmt.Printf("session %s (%s, %s) finished in %s\n", session.UUID, cfg.Search, cfg.Policy, time.Since(start).Round(time.Millisecond))
	fmt.Printf("runs: %d  wins: %d  best food: %d\n", summary.Runs, summary.Wins, summary.BestFoods)
	fmt.Printf("mean food: %.2f  mean moves: %.1f  median moves: %.0f  mean duration: %.3fs\n",
		summary.MeanFoods, summary.MeanMoves, summary.MedianMoves, summary.MeanDuration)
	if all := stats.Summary(game.ReasonGoalReached.String()); all.Runs > summary.Runs {
		fmt.Printf("all time: runs: %d  wins: %d  best food: %d\n", all.Runs, all.Wins, all.BestFoods)
	}
}
