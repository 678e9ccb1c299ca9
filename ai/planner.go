package ai

import (
	"log"

	"snake-planner/game/entity"
	"snake-planner/game/manager"
	"snake-planner/game/types"

	"github.com/pkg/errors"
)

// Policy selects how the planner guards a route against hazards.
type Policy int

const (
	// ObstacleAware checks the route against hazards predicted a few motion
	// steps ahead. It is the default tick-to-tick policy.
	ObstacleAware Policy = iota
	// ObstacleIgnorant plans without a depth cap and only checks the route
	// against where the hazards are right now.
	ObstacleIgnorant
)

const (
	PolicyObstacleAware    = "obstacle-aware"
	PolicyObstacleIgnorant = "obstacle-ignorant"
)

func ParsePolicy(name string) (Policy, error) {
	switch name {
	case PolicyObstacleAware, "":
		return ObstacleAware, nil
	case PolicyObstacleIgnorant:
		return ObstacleIgnorant, nil
	}
	return ObstacleAware, errors.Errorf("unknown planner policy %q", name)
}

func (p Policy) String() string {
	if p == ObstacleIgnorant {
		return PolicyObstacleIgnorant
	}
	return PolicyObstacleAware
}

// Plan is the outcome of one planning attempt. An empty Route means the
// agent must not move this tick.
type Plan struct {
	Route    []types.Point
	Target   types.Point
	Rerouted bool
}

// Planner picks a food target, searches for a route and vets it against
// the hazards.
type Planner struct {
	Searcher        Searcher
	Policy          Policy
	Occupancy       manager.OccupancyPolicy
	PredictionSteps int
	MaxDepth        int
	Logger          *log.Logger
}

// NewPlanner builds a planner with the default horizon and depth cap. A*
// plans against the body only; BFS and IDDFS also block the hazards'
// current cells.
func NewPlanner(searcher Searcher, policy Policy) *Planner {
	occ := manager.BodyAndHazards
	if _, ok := searcher.(*AStar); ok {
		occ = manager.BodyOnly
	}
	return &Planner{
		Searcher:        searcher,
		Policy:          policy,
		Occupancy:       occ,
		PredictionSteps: types.PredictionSteps,
		MaxDepth:        types.SearchDepth,
	}
}

func (p *Planner) logf(format string, args ...any) {
	if p.Logger != nil {
		p.Logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Plan computes a route for the snake toward the nearest food. It never
// mutates the snake, the hazards or the food list.
func (p *Planner) Plan(snake *entity.Snake, hazards []*entity.Hazard, foods []types.Point) Plan {
	if len(foods) == 0 {
		return Plan{}
	}
	head := snake.GetHead()
	target := NearestFood(head, foods)

	var danger manager.Occupancy
	maxDepth := p.MaxDepth
	if p.Policy == ObstacleIgnorant {
		danger = manager.DangerZone(hazards, 0)
		maxDepth = 0
	} else {
		danger = manager.DangerZone(hazards, p.PredictionSteps)
	}
	if p.Searcher.Name() == SearchIDDFS && maxDepth < 1 {
		maxDepth = types.SearchDepth
	}

	occ := manager.Snapshot(p.Occupancy, snake, hazards)
	route := p.Searcher.Search(head, target, occ, maxDepth)
	if len(route) > 0 && !danger.Intersects(route) {
		return Plan{Route: route, Target: target}
	}

	if len(route) > 0 {
		p.logf("path to %v intersects with a hazard position, finding alternative path", target)
	}
	for _, food := range foods {
		alt := p.Searcher.Search(head, food, occ, maxDepth)
		if len(alt) > 0 {
			p.logf("alternative path found to %v (%d steps)", food, len(alt))
			return Plan{Route: alt, Target: food, Rerouted: true}
		}
	}
	p.logf("no alternative path found for %v, skipping", target)
	return Plan{}
}

// NearestFood returns the food with the smallest Manhattan distance from
// head; the first one wins ties.
func NearestFood(head types.Point, foods []types.Point) types.Point {
	best := foods[0]
	bestDist := types.Manhattan(head, best)
	for _, f := range foods[1:] {
		if d := types.Manhattan(head, f); d < bestDist {
			best, bestDist = f, d
		}
	}
	return best
}
