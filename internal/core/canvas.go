package core

// Canvas is the drawing surface a frontend hands to the presentation pass
// once per render frame. Coordinates are arena units with the origin at the
// arena center and +Y up. Calls are fire-and-forget.
type Canvas interface {
	// DrawRect fills an axis-aligned rectangle centered at center.
	DrawRect(center, size Vec2, c Color)

	// DrawText draws text horizontally centered on pos.
	// size is the nominal glyph height in arena units; frontends may ignore it.
	DrawText(text string, pos Vec2, size float64, c Color)
}
