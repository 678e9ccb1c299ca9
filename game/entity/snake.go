package entity

import (
	"snake-planner/game/types"
)

// Snake is the agent body. Body is stored tail first, head last.
type Snake struct {
	Body        []types.Point
	Direction   types.Direction
	GrowPending bool
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.NONE,
	}
}

// Move advances the head to newHead. The tail retracts unless a growth is
// pending, in which case the body keeps its tail and gets one cell longer.
func (s *Snake) Move(newHead types.Point) {
	if d := types.DirectionBetween(s.GetHead(), newHead); d != types.NONE {
		s.Direction = d
	}
	s.Body = append(s.Body, newHead)
	if s.GrowPending {
		s.GrowPending = false
		return
	}
	s.RemoveTail()
}

// Grow schedules one cell of growth for the next move.
func (s *Snake) Grow() {
	s.GrowPending = true
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 0 {
		s.Body = s.Body[1:]
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body ordered head to tail.
func (s *Snake) Segments() []types.Point {
	out := make([]types.Point, len(s.Body))
	for i, p := range s.Body {
		out[len(s.Body)-1-i] = p
	}
	return out
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, b := range s.Body {
		if b == p {
			return true
		}
	}
	return false
}
