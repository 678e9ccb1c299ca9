package ai

import (
	"snake-planner/game/types"

	"github.com/zyedidia/generic/mapset"
)

// BFS returns a shortest route by hop count.
type BFS struct {
	grid types.Grid
}

func NewBFS(grid types.Grid) *BFS {
	return &BFS{grid: grid}
}

func (b *BFS) Name() string { return SearchBFS }

func (b *BFS) Search(start, goal types.Point, occ Occupancy, maxDepth int) []types.Point {
	if start == goal {
		return nil
	}
	// A cell is marked when first queued, so its first queued path is the
	// one that gets expanded.
	seen := mapset.New[types.Point]()
	seen.Put(start)
	queue := []*step{{cell: start}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.cell == goal {
			return cur.route()
		}
		if maxDepth > 0 && cur.depth >= maxDepth {
			continue
		}
		for _, n := range b.grid.Neighbors(cur.cell) {
			if seen.Has(n) || !passable(b.grid, occ, n) {
				continue
			}
			seen.Put(n)
			queue = append(queue, &step{cell: n, depth: cur.depth + 1, parent: cur})
		}
	}
	return nil
}
