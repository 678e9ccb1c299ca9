package ai

import (
	"fmt"

	"snake-planner/game/types"

	"github.com/zyedidia/generic/mapset"
)

// IDDFS runs depth-limited DFS with limits 0..maxDepth-1 and returns the
// first route the LIFO expansion finds. Within one limit the route is not
// necessarily the shortest one.
type IDDFS struct {
	grid types.Grid
}

func NewIDDFS(grid types.Grid) *IDDFS {
	return &IDDFS{grid: grid}
}

func (d *IDDFS) Name() string { return SearchIDDFS }

// Search panics when maxDepth < 1; iterative deepening needs a ceiling.
func (d *IDDFS) Search(start, goal types.Point, occ Occupancy, maxDepth int) []types.Point {
	if maxDepth < 1 {
		panic(fmt.Sprintf("ai: iddfs needs a positive depth ceiling, got %d", maxDepth))
	}
	if start == goal {
		return nil
	}
	for limit := 0; limit < maxDepth; limit++ {
		if r := d.limited(start, goal, occ, limit); r != nil {
			return r
		}
	}
	return nil
}

func (d *IDDFS) limited(start, goal types.Point, occ Occupancy, limit int) []types.Point {
	visited := mapset.New[types.Point]()
	stack := []*step{{cell: start}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.cell == goal {
			return cur.route()
		}
		if cur.depth >= limit || visited.Has(cur.cell) {
			continue
		}
		visited.Put(cur.cell)
		for _, n := range d.grid.Neighbors(cur.cell) {
			if visited.Has(n) || !passable(d.grid, occ, n) {
				continue
			}
			stack = append(stack, &step{cell: n, depth: cur.depth + 1, parent: cur})
		}
	}
	return nil
}
