package types

import "fmt"

// Point is a cell coordinate on the grid. X is the column, Y the row.
type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	GridSize        = 35  // Side length of the square board
	FoodGoal        = 20  // Pickups that end a run
	PredictionSteps = 3   // Hazard lookahead used by the planner
	SearchDepth     = 100 // Depth cap for planner searches
	MovePenalty     = 5   // Extra moves charged for stepping onto a hazard
)

// NewGrid creates a square grid. A non-positive size is a programming error.
func NewGrid(size int) Grid {
	if size <= 0 {
		panic(fmt.Sprintf("types: invalid grid size %d", size))
	}
	return Grid{Width: size, Height: size}
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// neighborOffsets is the adjacency order used by every search; BFS and IDDFS
// results depend on it.
var neighborOffsets = [4]Point{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
}

// Neighbors returns the orthogonal neighbors of p that are inside the grid.
// Passing a cell outside the grid panics.
func (g Grid) Neighbors(p Point) []Point {
	if !g.Contains(p) {
		panic(fmt.Sprintf("types: cell %v outside %dx%d grid", p, g.Width, g.Height))
	}
	out := make([]Point, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := p.Add(d)
		if g.Contains(n) {
			out = append(out, n)
		}
	}
	return out
}

// Cells returns every cell of the grid in column-major order.
func (g Grid) Cells() []Point {
	out := make([]Point, 0, g.Width*g.Height)
	for x := 0; x < g.Width; x++ {
		for y := 0; y < g.Height; y++ {
			out = append(out, Point{X: x, Y: y})
		}
	}
	return out
}

// Adjacent reports whether a and b are orthogonal neighbors.
func Adjacent(a, b Point) bool {
	return Manhattan(a, b) == 1
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
