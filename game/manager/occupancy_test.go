package manager

import (
	"testing"

	"snake-planner/game/entity"
	"snake-planner/game/types"

	"github.com/stretchr/testify/assert"
)

func longSnake() *entity.Snake {
	s := entity.NewSnake(types.Point{X: 1, Y: 1})
	for _, p := range []types.Point{{X: 2, Y: 1}, {X: 3, Y: 1}} {
		s.Grow()
		s.Move(p)
	}
	return s
}

func TestSnapshotPolicies(t *testing.T) {
	s := longSnake()
	hazards := []*entity.Hazard{entity.NewHazard(types.Point{X: 5, Y: 0}, 34)}

	bodyOnly := Snapshot(BodyOnly, s, hazards)
	assert.Equal(t, 3, bodyOnly.Size())
	assert.True(t, bodyOnly.Blocked(types.Point{X: 1, Y: 1}))
	assert.False(t, bodyOnly.Blocked(types.Point{X: 5, Y: 0}))

	withHazards := Snapshot(BodyAndHazards, s, hazards)
	assert.Equal(t, 4, withHazards.Size())
	assert.True(t, withHazards.Blocked(types.Point{X: 5, Y: 0}))
}

func TestDangerZoneCoversPrediction(t *testing.T) {
	hazards := []*entity.Hazard{
		entity.NewHazard(types.Point{X: 5, Y: 0}, 34),
		entity.NewHazard(types.Point{X: 29, Y: 33}, 34),
	}

	zone := DangerZone(hazards, types.PredictionSteps)

	assert.Equal(t, []types.Point{
		{X: 5, Y: 0}, {X: 5, Y: 1}, {X: 5, Y: 2}, {X: 5, Y: 3},
		{X: 29, Y: 33}, {X: 29, Y: 34},
	}, zone.Cells())
	assert.True(t, zone.Intersects([]types.Point{{X: 4, Y: 2}, {X: 5, Y: 2}}))
	assert.False(t, zone.Intersects([]types.Point{{X: 6, Y: 2}, {X: 6, Y: 3}}))
	assert.Equal(t, types.Point{X: 5, Y: 0}, hazards[0].Position, "prediction leaves hazards in place")
}

func TestOccupancyBlock(t *testing.T) {
	o := NewOccupancy(types.Point{X: 1, Y: 1})
	o.Block(types.Point{X: 1, Y: 1})
	o.Block(types.Point{X: 0, Y: 2})

	assert.Equal(t, 2, o.Size())
	assert.Equal(t, []types.Point{{X: 0, Y: 2}, {X: 1, Y: 1}}, o.Cells())
}
