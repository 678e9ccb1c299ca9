package entity

import (
	"snake-planner/game/types"
)

// Hazard is a patrolling obstacle that bounces along one column between row
// 0 and the bottom edge.
type Hazard struct {
	Position  types.Point
	Direction types.Direction // DOWN or UP
	Step      int             // cells per motion step
	Cadence   int             // ticks between motion steps
	Edge      int             // last row of the track

	sinceMove int
}

// NewHazard creates a hazard moving down on a track that ends at row edge.
func NewHazard(pos types.Point, edge int) *Hazard {
	return &Hazard{
		Position:  pos,
		Direction: types.DOWN,
		Step:      1,
		Cadence:   1,
		Edge:      edge,
	}
}

// Advance returns the hazard after one motion step. It never mutates h.
// Moving down below the edge flips to up without moving, and symmetrically
// at row 0.
func (h Hazard) Advance() Hazard {
	step := h.Step
	if step < 1 {
		step = 1
	}
	switch h.Direction {
	case types.DOWN:
		if h.Position.Y < h.Edge {
			h.Position.Y = min(h.Position.Y+step, h.Edge)
		} else {
			h.Direction = h.Direction.Opposite()
		}
	case types.UP:
		if h.Position.Y > 0 {
			h.Position.Y = max(h.Position.Y-step, 0)
		} else {
			h.Direction = h.Direction.Opposite()
		}
	}
	return h
}

// Predict returns the current cell followed by the cell after each of the
// next steps motion steps. The live hazard is left untouched.
func (h Hazard) Predict(steps int) []types.Point {
	out := make([]types.Point, 0, steps+1)
	out = append(out, h.Position)
	ghost := h
	for i := 0; i < steps; i++ {
		ghost = ghost.Advance()
		out = append(out, ghost.Position)
	}
	return out
}

// Update is the live, once-per-tick call. The hazard takes a motion step
// every Cadence ticks.
func (h *Hazard) Update() {
	cadence := h.Cadence
	if cadence < 1 {
		cadence = 1
	}
	h.sinceMove++
	if h.sinceMove < cadence {
		return
	}
	h.sinceMove = 0
	*h = h.Advance()
}
