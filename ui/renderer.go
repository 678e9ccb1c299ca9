package ui

import (
	"fmt"

	"snake-planner/game"
	"snake-planner/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10 // Padding around game area
	cellGap       = 2
)

var (
	tileColor   = rl.Color{R: 83, G: 41, B: 110, A: 255}
	snakeColor  = rl.Color{R: 209, G: 0, B: 0, A: 255}
	foodColor   = rl.Color{R: 78, G: 128, B: 101, A: 255}
	hazardColor = rl.Color{R: 20, G: 20, B: 20, A: 255}
	routeColor  = rl.Color{R: 255, G: 255, B: 255, A: 60}
)

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	statsPanel   int32
	tiling       types.Tiling

	// Selected is the cell picked with the mouse, nil when none.
	Selected *types.Point
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.statsPanel = r.screenWidth / 4
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

// layout fits the grid into the area left of the stats panel.
func (r *Renderer) layout(grid types.Grid) {
	availableWidth := r.screenWidth - r.statsPanel - (borderPadding * 2)
	availableHeight := r.screenHeight - (borderPadding * 2)
	cellW := availableWidth/int32(grid.Width) - cellGap
	cellH := availableHeight/int32(grid.Height) - cellGap
	size := min(cellW, cellH)
	if size < 1 {
		size = 1
	}
	r.tiling = types.Tiling{
		OffsetX: borderPadding,
		OffsetY: borderPadding,
		Size:    int(size),
		Gap:     cellGap,
	}
}

// Pick selects the cell under the screen coordinate, or clears the
// selection when the coordinate misses the board.
func (r *Renderer) Pick(x, y int32, grid types.Grid) {
	p, ok := r.tiling.ToCell(int(x), int(y))
	if !ok || !grid.Contains(p) {
		r.Selected = nil
		return
	}
	r.Selected = &p
}

func (r *Renderer) cell(p types.Point, inset int32, color rl.Color) {
	x, y := r.tiling.ToPixel(p)
	size := int32(r.tiling.Size) - inset*2
	rl.DrawRectangle(int32(x)+inset, int32(y)+inset, size, size, color)
}

func (r *Renderer) Draw(s *game.Session) {
	g := s.Game()
	r.UpdateDimensions()
	r.layout(g.Grid)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	for x := 0; x < g.Grid.Width; x++ {
		for y := 0; y < g.Grid.Height; y++ {
			r.cell(types.Point{X: x, Y: y}, 0, tileColor)
		}
	}
	for _, p := range g.CurrentRoute() {
		r.cell(p, 0, routeColor)
	}
	for _, food := range g.Foods() {
		r.cell(food, 2, foodColor)
	}

	body := g.Body()
	for i, p := range body {
		color := snakeColor
		if i == 0 {
			color = rl.Color{R: 255, G: 90, B: 90, A: 255}
		}
		r.cell(p, 1, color)
	}
	r.drawHeading(g.Head(), g.Heading())
	for _, h := range g.Hazards() {
		r.cell(h, 0, hazardColor)
	}
	if r.Selected != nil {
		x, y := r.tiling.ToPixel(*r.Selected)
		size := float32(r.tiling.Size)
		rl.DrawRectangleLinesEx(rl.Rectangle{X: float32(x), Y: float32(y), Width: size, Height: size}, 2, rl.Yellow)
	}

	r.drawStatsPanel(s)
	rl.EndDrawing()
}

// drawHeading marks the side of the head the snake is moving toward.
func (r *Renderer) drawHeading(head types.Point, heading types.Direction) {
	if heading == types.NONE {
		return
	}
	x, y := r.tiling.ToPixel(head)
	size := int32(r.tiling.Size)
	mark := size / 4
	d := heading.ToPoint()
	cx := int32(x) + size/2 - mark/2 + int32(d.X)*(size/2-mark)
	cy := int32(y) + size/2 - mark/2 + int32(d.Y)*(size/2-mark)
	rl.DrawRectangle(cx, cy, mark, mark, rl.White)
}

// describe names what occupies p.
func describe(g *game.Game, p types.Point) string {
	for _, b := range g.Body() {
		if b == p {
			return "body"
		}
	}
	for _, h := range g.Hazards() {
		if h == p {
			return "hazard"
		}
	}
	for _, f := range g.Foods() {
		if f == p {
			return "food"
		}
	}
	return "free"
}

func (r *Renderer) drawStatsPanel(s *game.Session) {
	g := s.Game()
	fontSize := min(r.screenHeight/30, r.statsPanel/12)
	lineHeight := fontSize + 8
	statsX := r.screenWidth - r.statsPanel + 10
	statsY := int32(borderPadding)

	rl.DrawRectangle(r.screenWidth-r.statsPanel, 0, r.statsPanel, r.screenHeight, rl.DarkGray)

	lines := []string{
		fmt.Sprintf("Run: %d", s.Run),
		fmt.Sprintf("Run completed: %d", s.RunsCompleted),
		fmt.Sprintf("Wins: %d", s.Wins),
		fmt.Sprintf("Food collected: %d", g.FoodsCollected),
		fmt.Sprintf("Move counter: %d", g.Moves),
		fmt.Sprintf("State: %s", g.State()),
		fmt.Sprintf("Route: %d", len(g.CurrentRoute())),
	}
	if r.Selected != nil {
		lines = append(lines, fmt.Sprintf("Cell %v: %s", *r.Selected, describe(g, *r.Selected)))
	}
	for _, line := range lines {
		rl.DrawText(line, statsX, statsY, fontSize, rl.White)
		statsY += lineHeight
	}

	if s.Done() {
		text := "All runs completed"
		width := rl.MeasureText(text, fontSize)
		rl.DrawText(text, (r.screenWidth-r.statsPanel-width)/2, r.screenHeight/2, fontSize, rl.Yellow)
	}
}
