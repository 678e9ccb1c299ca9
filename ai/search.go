package ai

import (
	"snake-planner/game/types"

	"github.com/pkg/errors"
)

// Occupancy answers whether a cell is impassable for one search call.
type Occupancy interface {
	Blocked(p types.Point) bool
}

// Searcher finds a route from start to goal. The route excludes start and
// ends with goal; an empty route means no route exists within maxDepth.
// A non-positive maxDepth means unbounded where the algorithm allows it.
type Searcher interface {
	Name() string
	Search(start, goal types.Point, occ Occupancy, maxDepth int) []types.Point
}

const (
	SearchBFS   = "bfs"
	SearchAStar = "astar"
	SearchIDDFS = "iddfs"
)

// NewSearcher resolves a configured algorithm name once, at construction.
func NewSearcher(name string, grid types.Grid) (Searcher, error) {
	switch name {
	case SearchBFS:
		return NewBFS(grid), nil
	case SearchAStar:
		return NewAStar(grid), nil
	case SearchIDDFS:
		return NewIDDFS(grid), nil
	}
	return nil, errors.Errorf("unknown search algorithm %q", name)
}

// Heuristic is the Manhattan distance, admissible and consistent on a
// 4-connected unit-cost grid.
func Heuristic(a, b types.Point) int {
	return types.Manhattan(a, b)
}

func passable(grid types.Grid, occ Occupancy, p types.Point) bool {
	if !grid.Contains(p) {
		return false
	}
	return occ == nil || !occ.Blocked(p)
}

// step is a search tree node; following parent links walks back to start.
type step struct {
	cell   types.Point
	depth  int
	parent *step
}

// route unwinds the parent chain into start-exclusive order.
func (s *step) route() []types.Point {
	out := make([]types.Point, s.depth)
	for n := s; n.parent != nil; n = n.parent {
		out[n.depth-1] = n.cell
	}
	return out
}
