package config

import (
	"os"
	"time"

	"snake-planner/game/types"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the planner, board and driver settings.
type Config struct {
	GridSize        int           `yaml:"grid_size"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	Search          string        `yaml:"search"`
	Policy          string        `yaml:"policy"`
	PredictionSteps int           `yaml:"prediction_steps"`
	SearchDepth     int           `yaml:"search_depth"`
	FoodGoal        int           `yaml:"food_goal"`
	Runs            int           `yaml:"runs"`
	Start           [2]int        `yaml:"start"`
	Hazards         [][2]int      `yaml:"hazards"`
	HazardCadence   int           `yaml:"hazard_cadence"`
	HazardStep      int           `yaml:"hazard_step"`
	Replenish       bool          `yaml:"replenish"`
	Seed            uint64        `yaml:"seed"`
	StatsFile       string        `yaml:"stats_file"`
	Listen          string        `yaml:"listen"`
}

var validSearch = map[string]bool{"bfs": true, "astar": true, "iddfs": true}

var validPolicy = map[string]bool{"obstacle-aware": true, "obstacle-ignorant": true}

// Default is the stock board: 35x35 cells, two hazards patrolling
// columns 5 and 29, agent starting in the middle.
func Default() Config {
	return Config{
		GridSize:        35,
		TickInterval:    35 * time.Millisecond,
		Search:          "astar",
		Policy:          "obstacle-aware",
		PredictionSteps: 3,
		SearchDepth:     100,
		FoodGoal:        20,
		Runs:            5,
		Start:           [2]int{17, 17},
		Hazards:         [][2]int{{5, 0}, {29, 0}},
		HazardCadence:   1,
		HazardStep:      1,
		Seed:            1,
		StatsFile:       "data/runs.json",
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "invalid config %s", path)
	}
	return cfg, nil
}

func (c Config) inGrid(cell [2]int) bool {
	return cell[0] >= 0 && cell[0] < c.GridSize && cell[1] >= 0 && cell[1] < c.GridSize
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	if c.GridSize <= 0 {
		return errors.Errorf("grid_size must be positive, got %d", c.GridSize)
	}
	if c.TickInterval <= 0 {
		return errors.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	}
	if !validSearch[c.Search] {
		return errors.Errorf("unknown search %q", c.Search)
	}
	if !validPolicy[c.Policy] {
		return errors.Errorf("unknown policy %q", c.Policy)
	}
	if c.PredictionSteps < 0 {
		return errors.Errorf("prediction_steps must not be negative, got %d", c.PredictionSteps)
	}
	if c.SearchDepth < 1 {
		return errors.Errorf("search_depth must be positive, got %d", c.SearchDepth)
	}
	if c.FoodGoal < 1 {
		return errors.Errorf("food_goal must be positive, got %d", c.FoodGoal)
	}
	if c.Runs < 1 {
		return errors.Errorf("runs must be positive, got %d", c.Runs)
	}
	if c.HazardCadence < 1 || c.HazardStep < 1 {
		return errors.New("hazard_cadence and hazard_step must be positive")
	}
	if !c.inGrid(c.Start) {
		return errors.Errorf("start %v outside the grid", c.Start)
	}
	for _, h := range c.Hazards {
		if !c.inGrid(h) {
			return errors.Errorf("hazard %v outside the grid", h)
		}
	}
	if !c.Replenish {
		// Without replenishment a run only ends on the goal if its layout
		// holds enough pickups.
		for run := 1; run <= c.Runs && run <= len(types.FoodLayouts); run++ {
			if n := c.layoutFoods(run); c.FoodGoal > n {
				return errors.Errorf("food_goal %d exceeds the %d foods run %d can reach; enable replenish or lower food_goal", c.FoodGoal, n, run)
			}
		}
	}
	return nil
}

// layoutFoods counts the scripted foods of run that land inside the grid
// and off the start cell.
func (c Config) layoutFoods(run int) int {
	n := 0
	for _, f := range types.FoodLayout(run) {
		cell := [2]int{f.X, f.Y}
		if c.inGrid(cell) && cell != c.Start {
			n++
		}
	}
	return n
}
