package ai

import (
	"container/heap"

	"snake-planner/game/types"

	"github.com/zyedidia/generic/mapset"
)

// AStar searches with f = g + h, h being the Manhattan distance.
//
// Ties are broken deterministically: lower f first, then lower g, then
// lower X, then lower Y, then earlier insertion. This decides which of
// several equal-cost routes is returned.
type AStar struct {
	grid types.Grid
}

func NewAStar(grid types.Grid) *AStar {
	return &AStar{grid: grid}
}

func (a *AStar) Name() string { return SearchAStar }

func (a *AStar) Search(start, goal types.Point, occ Occupancy, maxDepth int) []types.Point {
	if start == goal {
		return nil
	}
	open := make(PriorityQueue, 0)
	heap.Init(&open)
	seq := 0
	heap.Push(&open, &Item{
		Node:     &step{cell: start},
		Priority: Heuristic(start, goal),
	})

	closed := mapset.New[types.Point]()
	for open.Len() > 0 {
		item := heap.Pop(&open).(*Item)
		cur := item.Node
		if cur.cell == goal {
			return cur.route()
		}
		// Consistent heuristic: the first pop of a cell is optimal.
		if closed.Has(cur.cell) {
			continue
		}
		closed.Put(cur.cell)
		if maxDepth > 0 && cur.depth >= maxDepth {
			continue
		}

		for _, n := range a.grid.Neighbors(cur.cell) {
			if closed.Has(n) || !passable(a.grid, occ, n) {
				continue
			}
			g := cur.depth + 1
			seq++
			heap.Push(&open, &Item{
				Node:     &step{cell: n, depth: g, parent: cur},
				Priority: g + Heuristic(n, goal),
				Seq:      seq,
			})
		}
	}
	return nil
}

// --- Priority Queue Implementation ---

type Item struct {
	Node     *step
	Priority int // f-score
	Seq      int
	Index    int
}

type PriorityQueue []*Item

func (pq PriorityQueue) Len() int { return len(pq) }
func (pq PriorityQueue) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	switch {
	case a.Priority != b.Priority:
		return a.Priority < b.Priority
	case a.Node.depth != b.Node.depth:
		return a.Node.depth < b.Node.depth
	case a.Node.cell.X != b.Node.cell.X:
		return a.Node.cell.X < b.Node.cell.X
	case a.Node.cell.Y != b.Node.cell.Y:
		return a.Node.cell.Y < b.Node.cell.Y
	}
	return a.Seq < b.Seq
}
func (pq PriorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].Index = i
	pq[j].Index = j
}
func (pq *PriorityQueue) Push(x any) {
	n := len(*pq)
	item := x.(*Item)
	item.Index = n
	*pq = append(*pq, item)
}
func (pq *PriorityQueue) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.Index = -1
	*pq = old[0 : n-1]
	return item
}
