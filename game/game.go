package game

import (
	"log"

	"snake-planner/ai"
	"snake-planner/game/entity"
	"snake-planner/game/manager"
	"snake-planner/game/types"
)

// TickEvent is what one tick reports to the run lifecycle.
type TickEvent int

const (
	EventNone TickEvent = iota
	EventFoodCollected
	EventRunEnded
)

func (e TickEvent) String() string {
	switch e {
	case EventFoodCollected:
		return "food_collected"
	case EventRunEnded:
		return "run_ended"
	default:
		return "none"
	}
}

// State is the controller's position in its per-tick state machine.
type State int

const (
	Planning State = iota
	Following
	Terminal
)

func (s State) String() string {
	switch s {
	case Following:
		return "following"
	case Terminal:
		return "terminal"
	default:
		return "planning"
	}
}

// EndReason says which trigger ended the run.
type EndReason int

const (
	ReasonNone EndReason = iota
	ReasonGoalReached
	ReasonCollision
)

func (r EndReason) String() string {
	switch r {
	case ReasonGoalReached:
		return "goal_reached"
	case ReasonCollision:
		return "collision"
	default:
		return "none"
	}
}

// Options describe one run.
type Options struct {
	Grid          types.Grid
	Start         types.Point
	Hazards       []types.Point
	HazardStep    int
	HazardCadence int
	Foods         []types.Point
	FoodGoal      int
	Replenish     bool
	Seed          uint64
	Planner       *ai.Planner
	Logger        *log.Logger
}

// Game is the agent controller. It owns the snake and drives it one cell
// per tick along the planned route.
type Game struct {
	Grid types.Grid

	snake      *entity.Snake
	hazards    []*entity.Hazard
	foods      *manager.FoodManager
	collisions *manager.CollisionManager
	planner    *ai.Planner
	logger     *log.Logger

	route     []types.Point
	target    types.Point
	state     State
	reason    EndReason
	foodGoal  int
	replenish bool

	FoodsCollected int
	Moves          int
	Ticks          int
}

func NewGame(opts Options) *Game {
	grid := opts.Grid
	if grid.Width == 0 {
		grid = types.NewGrid(types.GridSize)
	}
	planner := opts.Planner
	if planner == nil {
		planner = ai.NewPlanner(ai.NewAStar(grid), ai.ObstacleAware)
		planner.Logger = opts.Logger
	}
	goal := opts.FoodGoal
	if goal <= 0 {
		goal = types.FoodGoal
	}

	g := &Game{
		Grid:       grid,
		snake:      entity.NewSnake(opts.Start),
		foods:      manager.NewFoodManager(grid, opts.Foods, opts.Seed),
		collisions: manager.NewCollisionManager(grid),
		planner:    planner,
		logger:     opts.Logger,
		state:      Planning,
		foodGoal:   goal,
		replenish:  opts.Replenish,
	}
	for _, pos := range opts.Hazards {
		h := entity.NewHazard(pos, grid.Height-1)
		if opts.HazardStep > 0 {
			h.Step = opts.HazardStep
		}
		if opts.HazardCadence > 0 {
			h.Cadence = opts.HazardCadence
		}
		g.hazards = append(g.hazards, h)
	}
	return g
}

func (g *Game) logf(format string, args ...any) {
	if g.logger != nil {
		g.logger.Printf(format, args...)
		return
	}
	log.Printf(format, args...)
}

// Tick advances the simulation by one step: follow or plan, then move the
// hazards, then check for collisions again.
func (g *Game) Tick() TickEvent {
	if g.state == Terminal {
		return EventNone
	}
	g.Ticks++
	event := EventNone

	if len(g.route) > 0 && !g.routeStillValid() {
		g.logf("route to %v invalidated at %v, replanning", g.target, g.route[0])
		g.route = nil
	}

	if len(g.route) > 0 {
		g.state = Following
		event = g.followRoute()
	} else {
		g.state = Planning
		g.ensureFood()
		plan := g.planner.Plan(g.snake, g.hazards, g.foods.GetFoodList())
		if len(plan.Route) > 0 {
			g.route = plan.Route
			g.target = plan.Target
			event = g.followRoute()
		}
	}
	if g.state == Terminal {
		return EventRunEnded
	}

	for _, h := range g.hazards {
		h.Update()
	}
	if g.collisions.CheckHazardCollision(g.snake, g.hazards) {
		g.end(ReasonCollision)
		return EventRunEnded
	}

	if len(g.route) == 0 {
		g.state = Planning
	} else {
		g.state = Following
	}
	return event
}

// routeStillValid rejects a route whose next cell holds a hazard or the
// body right now.
func (g *Game) routeStillValid() bool {
	next := g.route[0]
	if g.collisions.HazardAt(next, g.hazards) {
		return false
	}
	return g.collisions.ValidateStep(g.snake, next)
}

// followRoute pops the next cell and executes it.
func (g *Game) followRoute() TickEvent {
	next := g.route[0]
	g.route = g.route[1:]
	return g.step(next)
}

func (g *Game) step(next types.Point) TickEvent {
	event := EventNone
	g.snake.Move(next)
	g.Moves++
	if g.collisions.HazardAt(next, g.hazards) {
		g.Moves += types.MovePenalty
		g.logf("penalty applied: +%d to move counter", types.MovePenalty)
	}

	if hit, food := g.collisions.CheckFoodCollisions(g.snake.GetHead(), g.foods.GetFoodList()); hit {
		g.foods.RemoveFood(food)
		g.snake.Grow()
		g.FoodsCollected++
		event = EventFoodCollected
		g.logf("food eaten! total foods collected: %d", g.FoodsCollected)
	}
	if g.collisions.CheckHazardCollision(g.snake, g.hazards) {
		g.end(ReasonCollision)
		return EventRunEnded
	}
	if g.FoodsCollected >= g.foodGoal {
		g.end(ReasonGoalReached)
		return EventRunEnded
	}
	return event
}

// ensureFood refills an empty food set when the board allows it and the
// run still needs pickups.
func (g *Game) ensureFood() {
	if !g.replenish || g.foods.Len() > 0 || g.FoodsCollected >= g.foodGoal {
		return
	}
	if food, ok := g.foods.Replenish(g.snake.Occupies); ok {
		g.logf("food replenished at %v", food)
	}
}

func (g *Game) end(reason EndReason) {
	g.state = Terminal
	g.reason = reason
	g.route = nil
}

// CurrentRoute returns the remaining planned cells, for visualization.
func (g *Game) CurrentRoute() []types.Point {
	out := make([]types.Point, len(g.route))
	copy(out, g.route)
	return out
}

// Body returns the snake cells ordered head to tail.
func (g *Game) Body() []types.Point {
	return g.snake.Segments()
}

func (g *Game) Head() types.Point {
	return g.snake.GetHead()
}

// Heading is the direction of the last move, NONE before the first one.
func (g *Game) Heading() types.Direction {
	return g.snake.Direction
}

// Hazards returns the current hazard cells.
func (g *Game) Hazards() []types.Point {
	out := make([]types.Point, len(g.hazards))
	for i, h := range g.hazards {
		out[i] = h.Position
	}
	return out
}

// HazardStates returns copies of the hazards.
func (g *Game) HazardStates() []entity.Hazard {
	out := make([]entity.Hazard, len(g.hazards))
	for i, h := range g.hazards {
		out[i] = *h
	}
	return out
}

// Foods returns the remaining food cells in iteration order.
func (g *Game) Foods() []types.Point {
	return g.foods.GetFoodList()
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Reason() EndReason {
	return g.reason
}

func (g *Game) Target() types.Point {
	return g.target
}
