package types

// Direction is a cardinal heading on the grid.
type Direction int

const (
	NONE  Direction = iota // 0
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a unit offset. Y grows downward.
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// DirectionBetween returns the heading that moves from a to an adjacent b,
// or NONE when the cells are not adjacent.
func DirectionBetween(a, b Point) Direction {
	switch (Point{X: b.X - a.X, Y: b.Y - a.Y}) {
	case UP.ToPoint():
		return UP
	case RIGHT.ToPoint():
		return RIGHT
	case DOWN.ToPoint():
		return DOWN
	case LEFT.ToPoint():
		return LEFT
	default:
		return NONE
	}
}
