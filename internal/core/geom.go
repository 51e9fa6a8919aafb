// Package core provides fundamental types and utilities for the pong platform.
// It imports neither Bubble Tea nor Ebiten.
package core

import "math"

// Vec2 is a point or vector in arena units.
// The arena origin is its center and +Y points up.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v multiplied by s on both axes.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length.
// The zero vector has no direction; the result is then NaN on both axes.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Size is the extent of the arena (or any box) in arena units.
type Size struct {
	W, H float64
}

// HalfW returns half the width.
func (s Size) HalfW() float64 {
	return s.W / 2
}

// HalfH returns half the height.
func (s Size) HalfH() float64 {
	return s.H / 2
}

// Box is an axis-aligned rectangle described by its center, in arena units.
type Box struct {
	Center Vec2
	Size   Vec2
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 {
	return b.Center.X - b.Size.X/2
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.Center.X + b.Size.X/2
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Center.Y - b.Size.Y/2
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 {
	return b.Center.Y + b.Size.Y/2
}

// ContainsStrict reports whether p lies strictly inside the box.
// Points on an edge are outside.
func (b Box) ContainsStrict(p Vec2) bool {
	return p.X < b.Right() && p.X > b.Left() &&
		p.Y < b.Top() && p.Y > b.Bottom()
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
