package entity

import (
	"testing"

	"snake-planner/game/types"

	"github.com/stretchr/testify/assert"
)

func TestMoveRetractsTail(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2})

	s.Move(types.Point{X: 3, Y: 2})
	assert.Equal(t, []types.Point{{X: 3, Y: 2}}, s.Body)
	assert.Equal(t, types.RIGHT, s.Direction)
}

func TestGrowthIsDeferredToNextMove(t *testing.T) {
	s := NewSnake(types.Point{X: 2, Y: 2})

	s.Grow()
	assert.Equal(t, 1, s.Len(), "growing does not lengthen immediately")

	s.Move(types.Point{X: 2, Y: 3})
	assert.Equal(t, 2, s.Len())
	assert.False(t, s.GrowPending)
	assert.Equal(t, types.Point{X: 2, Y: 3}, s.GetHead())

	s.Move(types.Point{X: 2, Y: 4})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []types.Point{{X: 2, Y: 4}, {X: 2, Y: 3}}, s.Segments())
}

func TestOccupies(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0})
	s.Grow()
	s.Move(types.Point{X: 1, Y: 0})

	assert.True(t, s.Occupies(types.Point{X: 0, Y: 0}))
	assert.True(t, s.Occupies(types.Point{X: 1, Y: 0}))
	assert.False(t, s.Occupies(types.Point{X: 2, Y: 0}))
}
