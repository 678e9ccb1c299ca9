package game

import (
	"log"
	"time"

	"snake-planner/ai"
	"snake-planner/config"
	"snake-planner/game/manager"
	"snake-planner/game/types"

	"github.com/pkg/errors"
)

// Session is the run lifecycle: it plays the scripted runs one after
// another, records each outcome and stops after the last run.
type Session struct {
	UUID          string
	Run           int
	RunsCompleted int
	Wins          int

	cfg      config.Config
	game     *Game
	stats    *manager.StateManager
	logger   *log.Logger
	runStart time.Time
	now      func() time.Time

	// last finished run, reported by Snapshot(EventRunEnded)
	ended    *Game
	endedRun int
}

// NewSession validates cfg and starts run 1. stats may be nil.
func NewSession(cfg config.Config, stats *manager.StateManager, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "session config")
	}
	s := &Session{
		UUID:   manager.NewRunID(),
		cfg:    cfg,
		stats:  stats,
		logger: logger,
		now:    time.Now,
	}
	if err := s.startRun(1); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// NewPlannerFromConfig resolves the configured search and policy.
func NewPlannerFromConfig(cfg config.Config, grid types.Grid, logger *log.Logger) (*ai.Planner, error) {
	searcher, err := ai.NewSearcher(cfg.Search, grid)
	if err != nil {
		return nil, err
	}
	policy, err := ai.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	p := ai.NewPlanner(searcher, policy)
	p.PredictionSteps = cfg.PredictionSteps
	p.MaxDepth = cfg.SearchDepth
	p.Logger = logger
	return p, nil
}

// OptionsFromConfig builds the options for a 1-based run number.
func OptionsFromConfig(cfg config.Config, run int, logger *log.Logger) (Options, error) {
	grid := types.NewGrid(cfg.GridSize)
	planner, err := NewPlannerFromConfig(cfg, grid, logger)
	if err != nil {
		return Options{}, err
	}
	hazards := make([]types.Point, 0, len(cfg.Hazards))
	for _, h := range cfg.Hazards {
		hazards = append(hazards, types.Point{X: h[0], Y: h[1]})
	}
	start := types.Point{X: cfg.Start[0], Y: cfg.Start[1]}
	foods := make([]types.Point, 0, types.FoodGoal)
	for _, f := range types.FoodLayout(run) {
		if grid.Contains(f) && f != start {
			foods = append(foods, f)
		}
	}
	return Options{
		Grid:          grid,
		Start:         start,
		Hazards:       hazards,
		HazardStep:    cfg.HazardStep,
		HazardCadence: cfg.HazardCadence,
		Foods:         foods,
		FoodGoal:      cfg.FoodGoal,
		Replenish:     cfg.Replenish,
		Seed:          cfg.Seed + uint64(run),
		Planner:       planner,
		Logger:        logger,
	}, nil
}

func (s *Session) startRun(run int) error {
	opts, err := OptionsFromConfig(s.cfg, run, s.logger)
	if err != nil {
		return err
	}
	s.Run = run
	s.game = NewGame(opts)
	s.runStart = s.now()
	return nil
}

// Game returns the game of the current run.
func (s *Session) Game() *Game {
	return s.game
}

// Done reports whether every configured run has finished.
func (s *Session) Done() bool {
	return s.RunsCompleted >= s.cfg.Runs
}

// Tick advances the current run. When the run ends its outcome is recorded
// and the next run is set up before Tick returns.
func (s *Session) Tick() (TickEvent, error) {
	if s.Done() {
		return EventNone, nil
	}
	event := s.game.Tick()
	if event != EventRunEnded {
		return event, nil
	}
	return event, s.finishRun()
}

func (s *Session) finishRun() error {
	g := s.game
	s.ended, s.endedRun = g, s.Run
	s.RunsCompleted++
	if g.Reason() == ReasonGoalReached {
		s.Wins++
		s.logf("run %d: collected %d food in %d moves, wins: %d", s.Run, g.FoodsCollected, g.Moves, s.Wins)
	} else {
		s.logf("run %d: collided with a hazard after %d food, moves: %d", s.Run, g.FoodsCollected, g.Moves)
	}

	var recErr error
	if s.stats != nil {
		recErr = s.stats.Record(manager.RunRecord{
			Session:        s.UUID,
			Run:            s.Run,
			FoodsCollected: g.FoodsCollected,
			Moves:          g.Moves,
			Ticks:          g.Ticks,
			Reason:         g.Reason().String(),
			StartTime:      s.runStart,
			EndTime:        s.now(),
		})
	}

	if s.Done() {
		s.logf("all %d runs completed", s.RunsCompleted)
		return recErr
	}
	if err := s.startRun(s.Run + 1); err != nil {
		return err
	}
	return recErr
}

// Snapshot describes the current run for renderers. For EventRunEnded it
// describes the final board of the run that just ended.
func (s *Session) Snapshot(event TickEvent) Snapshot {
	g, run := s.game, s.Run
	if event == EventRunEnded && s.ended != nil {
		g, run = s.ended, s.endedRun
	}
	snap := g.Snapshot(event)
	snap.Session = s.UUID
	snap.Run = run
	return snap
}
