package game

import (
	"bytes"
	"io"
	"log"
	"testing"

	"snake-planner/ai"
	"snake-planner/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = log.New(io.Discard, "", 0)

func newTestGame(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = quiet
	}
	if opts.Start == (types.Point{}) {
		opts.Start = types.Point{X: 17, Y: 17}
	}
	return NewGame(opts)
}

func playUntilEnd(t *testing.T, g *Game, limit int) {
	t.Helper()
	for i := 0; i < limit && g.State() != Terminal; i++ {
		g.Tick()
	}
	require.Equal(t, Terminal, g.State(), "run did not end within %d ticks", limit)
}

func TestSingleStepPickupCountsOnce(t *testing.T) {
	g := newTestGame(Options{Foods: []types.Point{{X: 17, Y: 18}}})

	assert.Equal(t, EventFoodCollected, g.Tick())
	assert.Equal(t, 1, g.FoodsCollected)
	assert.Empty(t, g.Foods())
	assert.Len(t, g.Body(), 1, "growth waits for the next move")

	for i := 0; i < 5; i++ {
		assert.Equal(t, EventNone, g.Tick())
	}
	assert.Equal(t, 1, g.FoodsCollected)
	assert.Equal(t, 1, g.Moves)
	assert.Equal(t, Planning, g.State(), "no food left, no goal reached")
}

func TestGrowthLandsOnNextMove(t *testing.T) {
	g := newTestGame(Options{Foods: []types.Point{{X: 17, Y: 18}, {X: 17, Y: 21}}})

	require.Equal(t, EventFoodCollected, g.Tick())
	require.Len(t, g.Foods(), 1)

	assert.Equal(t, EventNone, g.Tick())
	assert.Equal(t, []types.Point{{X: 17, Y: 19}, {X: 17, Y: 18}}, g.Body())
	assert.Equal(t, Following, g.State())
	assert.Equal(t, []types.Point{{X: 17, Y: 20}, {X: 17, Y: 21}}, g.CurrentRoute())
	assert.Equal(t, types.Point{X: 17, Y: 21}, g.Target())

	g.Tick()
	assert.Equal(t, EventFoodCollected, g.Tick())
	assert.Equal(t, 2, g.FoodsCollected)
	assert.Len(t, g.Body(), 2)
}

func TestGoalEndsRun(t *testing.T) {
	g := newTestGame(Options{Foods: []types.Point{{X: 17, Y: 18}}, FoodGoal: 1})

	assert.Equal(t, EventRunEnded, g.Tick())
	assert.Equal(t, Terminal, g.State())
	assert.Equal(t, ReasonGoalReached, g.Reason())

	ticks := g.Ticks
	assert.Equal(t, EventNone, g.Tick())
	assert.Equal(t, ticks, g.Ticks, "terminal runs do not tick")
}

func TestReplenishKeepsRunGoing(t *testing.T) {
	g := newTestGame(Options{
		Foods:     []types.Point{{X: 17, Y: 18}},
		FoodGoal:  3,
		Replenish: true,
		Seed:      9,
	})

	playUntilEnd(t, g, 1000)
	assert.Equal(t, ReasonGoalReached, g.Reason())
	assert.Equal(t, 3, g.FoodsCollected)
}

func TestScriptedLayoutsReachGoal(t *testing.T) {
	for run := 1; run <= len(types.FoodLayouts); run++ {
		g := newTestGame(Options{Foods: types.FoodLayout(run)})

		playUntilEnd(t, g, 5000)
		assert.Equal(t, ReasonGoalReached, g.Reason(), "run %d", run)
		assert.Equal(t, types.FoodGoal, g.FoodsCollected, "run %d", run)
		assert.Empty(t, g.Foods(), "run %d", run)
		assert.Len(t, g.Body(), types.FoodGoal, "run %d: growth from the last pickup is still pending", run)
	}
}

func TestHazardCollisionEndsRun(t *testing.T) {
	g := newTestGame(Options{
		Start:   types.Point{X: 5, Y: 5},
		Hazards: []types.Point{{X: 5, Y: 3}},
	})

	assert.Equal(t, EventNone, g.Tick())
	assert.Equal(t, []types.Point{{X: 5, Y: 4}}, g.Hazards())

	assert.Equal(t, EventRunEnded, g.Tick())
	assert.Equal(t, ReasonCollision, g.Reason())
	assert.Equal(t, 0, g.Moves)
}

func TestSteppingOntoHazardIsPenalized(t *testing.T) {
	grid := types.NewGrid(types.GridSize)
	planner := ai.NewPlanner(ai.NewAStar(grid), ai.ObstacleIgnorant)
	planner.Logger = quiet
	g := newTestGame(Options{
		Start:   types.Point{X: 4, Y: 5},
		Hazards: []types.Point{{X: 5, Y: 5}},
		Foods:   []types.Point{{X: 5, Y: 5}},
		Planner: planner,
	})

	assert.Equal(t, EventRunEnded, g.Tick())
	assert.Equal(t, 1+types.MovePenalty, g.Moves)
	assert.Equal(t, 1, g.FoodsCollected)
	assert.Equal(t, ReasonCollision, g.Reason())
}

func TestRouteInvalidatedByHazard(t *testing.T) {
	grid := types.NewGrid(types.GridSize)
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	planner := ai.NewPlanner(ai.NewBFS(grid), ai.ObstacleAware)
	planner.Logger = logger
	g := newTestGame(Options{
		Start:   types.Point{X: 3, Y: 5},
		Hazards: []types.Point{{X: 5, Y: 4}},
		Foods:   []types.Point{{X: 8, Y: 5}},
		Planner: planner,
		Logger:  logger,
	})

	g.Tick()
	require.Equal(t, types.Point{X: 4, Y: 5}, g.Head())
	require.Equal(t, types.Point{X: 5, Y: 5}, g.CurrentRoute()[0])
	require.Equal(t, []types.Point{{X: 5, Y: 5}}, g.Hazards())

	assert.NotEqual(t, EventRunEnded, g.Tick())
	assert.Contains(t, logs.String(), "invalidated")
	assert.NotEqual(t, types.Point{X: 5, Y: 5}, g.Head())
	assert.True(t, types.Adjacent(types.Point{X: 4, Y: 5}, g.Head()))
	assert.NotEqual(t, Terminal, g.State())
}

func TestHazardsMoveEveryTick(t *testing.T) {
	g := newTestGame(Options{
		Hazards:       []types.Point{{X: 5, Y: 0}, {X: 29, Y: 0}},
		HazardStep:    2,
		HazardCadence: 2,
	})

	g.Tick()
	assert.Equal(t, []types.Point{{X: 5, Y: 0}, {X: 29, Y: 0}}, g.Hazards())
	g.Tick()
	assert.Equal(t, []types.Point{{X: 5, Y: 2}, {X: 29, Y: 2}}, g.Hazards())
	for _, h := range g.HazardStates() {
		assert.Equal(t, types.DOWN, h.Direction)
	}
}

func TestSnapshot(t *testing.T) {
	g := newTestGame(Options{
		Foods:   []types.Point{{X: 17, Y: 18}, {X: 17, Y: 25}},
		Hazards: []types.Point{{X: 5, Y: 0}},
	})
	assert.Equal(t, "none", g.Snapshot(EventNone).Heading)
	event := g.Tick()

	snap := g.Snapshot(event)
	assert.Equal(t, 1, snap.Tick)
	assert.Equal(t, "food_collected", snap.Event)
	assert.Equal(t, "planning", snap.State)
	assert.Empty(t, snap.Reason)
	assert.Equal(t, "down", snap.Heading)
	assert.Equal(t, []types.Point{{X: 17, Y: 18}}, snap.Body)
	assert.Equal(t, []types.Point{{X: 5, Y: 1}}, snap.Hazards)
	assert.Equal(t, []types.Point{{X: 17, Y: 25}}, snap.Foods)
	assert.Equal(t, 1, snap.FoodsCollected)
}
