package entity

import (
	"testing"

	"snake-planner/game/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func advanceN(h Hazard, n int) Hazard {
	for i := 0; i < n; i++ {
		h = h.Advance()
	}
	return h
}

func TestHazardBouncesWithStepTwo(t *testing.T) {
	h := *NewHazard(types.Point{X: 5, Y: 0}, types.GridSize-1)
	h.Step = 2

	bottom := advanceN(h, 17)
	assert.Equal(t, types.Point{X: 5, Y: 34}, bottom.Position)
	assert.Equal(t, types.DOWN, bottom.Direction)

	flipped := bottom.Advance()
	assert.Equal(t, types.Point{X: 5, Y: 34}, flipped.Position, "flip does not move")
	assert.Equal(t, types.UP, flipped.Direction)

	back := advanceN(h, 35)
	assert.Equal(t, types.Point{X: 5, Y: 0}, back.Position)
	assert.Equal(t, types.UP, back.Direction)

	again := advanceN(h, 36)
	assert.Equal(t, h.Position, again.Position)
	assert.Equal(t, types.DOWN, again.Direction)
}

func TestHazardPeriodWithStepOne(t *testing.T) {
	h := *NewHazard(types.Point{X: 29, Y: 0}, types.GridSize-1)

	assert.Equal(t, h, advanceN(h, 70))
	mid := advanceN(h, 35)
	assert.Equal(t, 34, mid.Position.Y)
	assert.Equal(t, types.UP, mid.Direction)
}

func TestHazardStaysInColumn(t *testing.T) {
	h := *NewHazard(types.Point{X: 5, Y: 0}, types.GridSize-1)
	h.Step = 3
	for i := 0; i < 200; i++ {
		h = h.Advance()
		require.Equal(t, 5, h.Position.X)
		require.GreaterOrEqual(t, h.Position.Y, 0)
		require.LessOrEqual(t, h.Position.Y, 34)
	}
}

func TestPredictMatchesAdvanceAndDoesNotMutate(t *testing.T) {
	h := NewHazard(types.Point{X: 5, Y: 33}, types.GridSize-1)
	before := *h

	predicted := h.Predict(3)
	require.Len(t, predicted, 4)
	assert.Equal(t, before, *h)

	live := *h
	assert.Equal(t, live.Position, predicted[0])
	for i := 1; i <= 3; i++ {
		live.Update()
		assert.Equal(t, live.Position, predicted[i], "step %d", i)
	}
	assert.Equal(t, []types.Point{{X: 5, Y: 33}, {X: 5, Y: 34}, {X: 5, Y: 34}, {X: 5, Y: 33}}, predicted)
}

func TestUpdateHonorsCadence(t *testing.T) {
	h := NewHazard(types.Point{X: 5, Y: 0}, types.GridSize-1)
	h.Cadence = 3

	h.Update()
	h.Update()
	assert.Equal(t, 0, h.Position.Y)
	h.Update()
	assert.Equal(t, 1, h.Position.Y)
	for i := 0; i < 3; i++ {
		h.Update()
	}
	assert.Equal(t, 2, h.Position.Y)
}
