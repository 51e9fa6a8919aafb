package tui

import (
	"math"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Visual characters for rendering
const (
	BlockChar = '█'
	BallChar  = '●'
)

// ArenaCanvas draws arena-unit shapes onto a terminal screen buffer.
// One column spans cellW arena units and one row spans cellH.
type ArenaCanvas struct {
	screen *core.Screen
	cellW  float64
	cellH  float64
}

// NewArenaCanvas wraps screen with the given cell size in arena units.
func NewArenaCanvas(screen *core.Screen, cellW, cellH float64) *ArenaCanvas {
	return &ArenaCanvas{screen: screen, cellW: cellW, cellH: cellH}
}

// Arena returns the arena size covered by the screen.
func (c *ArenaCanvas) Arena() core.Size {
	return core.Size{
		W: float64(c.screen.Width()) * c.cellW,
		H: float64(c.screen.Height()) * c.cellH,
	}
}

// column converts an arena x to a fractional column.
func (c *ArenaCanvas) column(x float64) float64 {
	return (x + c.Arena().HalfW()) / c.cellW
}

// row converts an arena y to a fractional row; rows grow downwards.
func (c *ArenaCanvas) row(y float64) float64 {
	return (c.Arena().HalfH() - y) / c.cellH
}

// span returns the cells covered by [lo, hi) in fractional cell units.
// Anything thinner than half a cell collapses onto the cell holding its middle.
func span(lo, hi float64) (first, last int) {
	first = int(math.Round(lo))
	last = int(math.Round(hi)) - 1
	if last < first {
		mid := int(math.Floor((lo + hi) / 2))
		return mid, mid
	}
	return first, last
}

// DrawRect fills the cells covered by the rectangle.
// A rectangle no larger than one cell is drawn as a ball.
func (c *ArenaCanvas) DrawRect(center, size core.Vec2, color core.Color) {
	c0, c1 := span(c.column(center.X-size.X/2), c.column(center.X+size.X/2))
	r0, r1 := span(c.row(center.Y+size.Y/2), c.row(center.Y-size.Y/2))

	fill := BlockChar
	if size.X <= c.cellW && size.Y <= c.cellH {
		fill = BallChar
	}
	c.screen.DrawRect(core.NewRect(c0, r0, c1-c0+1, r1-r0+1), fill, color)
}

// DrawText writes text on the row holding pos, centered on pos.X.
// Terminal text has one fixed size.
func (c *ArenaCanvas) DrawText(text string, pos core.Vec2, _ float64, color core.Color) {
	n := len([]rune(text))
	col := int(math.Floor(c.column(pos.X))) - n/2
	row := int(math.Floor(c.row(pos.Y)))
	c.screen.DrawText(col, row, text, color)
}
