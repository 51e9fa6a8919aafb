package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Debug font glyph size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// maxLabels bounds the rendered text cache.
const maxLabels = 16

var palette = map[core.Color]color.RGBA{
	core.ColorDefault:     {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	core.ColorBlack:       {A: 0xff},
	core.ColorRed:         {R: 0xe0, G: 0x40, B: 0x40, A: 0xff},
	core.ColorGreen:       {R: 0x40, G: 0xc0, B: 0x60, A: 0xff},
	core.ColorYellow:      {R: 0xe0, G: 0xc0, B: 0x40, A: 0xff},
	core.ColorBlue:        {R: 0x40, G: 0x70, B: 0xe0, A: 0xff},
	core.ColorMagenta:     {R: 0xc0, G: 0x50, B: 0xc0, A: 0xff},
	core.ColorCyan:        {R: 0x40, G: 0xc0, B: 0xc0, A: 0xff},
	core.ColorWhite:       {R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
	core.ColorGray:        {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	core.ColorBrightWhite: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
}

// rgba returns the window color for c.
func rgba(c core.Color) color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[core.ColorDefault]
}

// toScreen converts an arena point to window pixels: origin top-left, y down.
func toScreen(p core.Vec2, arena core.Size) (x, y float64) {
	return p.X + arena.HalfW(), arena.HalfH() - p.Y
}

// screenRect returns the top-left corner and size in pixels of a rectangle
// given by its arena center and size.
func screenRect(center, size core.Vec2, arena core.Size) (x, y, w, h float64) {
	cx, cy := toScreen(center, arena)
	return cx - size.X/2, cy - size.Y/2, size.X, size.Y
}

// textLayout returns the top-left corner and scale for drawing text of n
// glyphs centered on pos at the given height in pixels.
func textLayout(n int, pos core.Vec2, size float64, arena core.Size) (x, y, scale float64) {
	scale = size / glyphH
	cx, cy := toScreen(pos, arena)
	return cx - float64(n*glyphW)*scale/2, cy - size/2, scale
}

// imageCanvas draws arena shapes onto an ebiten image.
type imageCanvas struct {
	dst    *ebiten.Image
	arena  core.Size
	labels map[string]*ebiten.Image
}

func (c *imageCanvas) DrawRect(center, size core.Vec2, col core.Color) {
	x, y, w, h := screenRect(center, size, c.arena)
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), rgba(col), false)
}

// DrawText scales the debug font up to size pixels high.
func (c *imageCanvas) DrawText(text string, pos core.Vec2, size float64, col core.Color) {
	img := c.label(text)
	x, y, scale := textLayout(len([]rune(text)), pos, size, c.arena)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(rgba(col))
	op.Filter = ebiten.FilterNearest
	c.dst.DrawImage(img, op)
}

// label returns an image holding text in the debug font, rendering it once.
func (c *imageCanvas) label(text string) *ebiten.Image {
	if img, ok := c.labels[text]; ok {
		return img
	}
	if len(c.labels) >= maxLabels {
		for k, img := range c.labels {
			img.Deallocate()
			delete(c.labels, k)
		}
	}

	n := max(len([]rune(text)), 1)
	img := ebiten.NewImage(n*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	c.labels[text] = img
	return img
}
