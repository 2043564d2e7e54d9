package slider

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA for ebiten fills.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Vec2 is a 2D vector used for positions, offsets, movements and velocities.
type Vec2 struct {
	X, Y float64
}

// WhitePixel is a 1x1 white image used for solid color fills.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Max(r.Min, math.Min(v, r.Max))
}

// Bounds limits drag offsets. Infinite values leave an axis unconstrained.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// Unbounded allows free panning on both axes.
var Unbounded = Bounds{
	Left: math.Inf(-1), Right: math.Inf(1),
	Top: math.Inf(-1), Bottom: math.Inf(1),
}

// NoIndex marks an unset optional index (a closed lightbox).
const NoIndex = -1

// DragPhase tracks whether the page-level scroll value is being driven by a
// gesture. Settled means no gesture owns the scroll value.
type DragPhase uint8

const (
	Settled      DragPhase = iota // no gesture in progress, animation at rest
	DragStarting                  // pointer down, scroll value follows the finger
	Dragging                      // released, settle animation still playing
)

// String returns the phase name.
func (p DragPhase) String() string {
	switch p {
	case DragStarting:
		return "drag-starting"
	case Dragging:
		return "dragging"
	default:
		return "settled"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
