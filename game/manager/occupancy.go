package manager

import (
	"snake-planner/game/entity"
	"snake-planner/game/types"

	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/slices"
)

// OccupancyPolicy selects which obstacles a snapshot blocks.
type OccupancyPolicy int

const (
	// BodyOnly blocks the agent body.
	BodyOnly OccupancyPolicy = iota
	// BodyAndHazards blocks the agent body plus every hazard's current cell.
	BodyAndHazards
)

// Occupancy is the set of cells one search call treats as impassable.
type Occupancy struct {
	cells mapset.Set[types.Point]
}

func NewOccupancy(cells ...types.Point) Occupancy {
	o := Occupancy{cells: mapset.New[types.Point]()}
	for _, c := range cells {
		o.cells.Put(c)
	}
	return o
}

// Snapshot projects the current body and hazards into a fresh occupancy.
func Snapshot(policy OccupancyPolicy, snake *entity.Snake, hazards []*entity.Hazard) Occupancy {
	o := NewOccupancy(snake.Body...)
	if policy == BodyAndHazards {
		for _, h := range hazards {
			o.Block(h.Position)
		}
	}
	return o
}

// DangerZone collects every hazard's current cell and its predicted cells
// for the next steps motion steps.
func DangerZone(hazards []*entity.Hazard, steps int) Occupancy {
	o := NewOccupancy()
	for _, h := range hazards {
		for _, p := range h.Predict(steps) {
			o.Block(p)
		}
	}
	return o
}

func (o Occupancy) Blocked(p types.Point) bool {
	return o.cells.Has(p)
}

func (o Occupancy) Block(p types.Point) {
	o.cells.Put(p)
}

func (o Occupancy) Size() int {
	return o.cells.Size()
}

// Cells returns the blocked cells sorted by X, then Y.
func (o Occupancy) Cells() []types.Point {
	out := make([]types.Point, 0, o.cells.Size())
	o.cells.Each(func(p types.Point) {
		out = append(out, p)
	})
	slices.SortFunc(out, func(a, b types.Point) int {
		if a.X != b.X {
			return a.X - b.X
		}
		return a.Y - b.Y
	})
	return out
}

// Intersects reports whether any cell of route is blocked.
func (o Occupancy) Intersects(route []types.Point) bool {
	for _, p := range route {
		if o.cells.Has(p) {
			return true
		}
	}
	return false
}
