package types

// Tiling maps cells to screen coordinates and back. The mapping is affine:
// cell i starts at Offset + i*(Size+Gap) on each axis.
type Tiling struct {
	OffsetX, OffsetY int
	Size             int
	Gap              int
}

func (t Tiling) pitch() int {
	return t.Size + t.Gap
}

// ToPixel returns the top-left screen coordinate of p.
func (t Tiling) ToPixel(p Point) (x, y int) {
	return t.OffsetX + p.X*t.pitch(), t.OffsetY + p.Y*t.pitch()
}

// ToCell inverts ToPixel. Coordinates in a gap or left of/above the origin
// report false.
func (t Tiling) ToCell(x, y int) (Point, bool) {
	dx, dy := x-t.OffsetX, y-t.OffsetY
	if dx < 0 || dy < 0 || t.pitch() <= 0 {
		return Point{}, false
	}
	p := Point{X: dx / t.pitch(), Y: dy / t.pitch()}
	if dx%t.pitch() >= t.Size || dy%t.pitch() >= t.Size {
		return p, false
	}
	return p, true
}
