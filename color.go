package gortrace

import (
	"image/color"
	"math"
)

// Color is a linear RGB triple. Channels may exceed 1 while light accumulates;
// they are only clamped when converted for display.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{}

	// BackgroundColor is returned for rays that escape the scene or are cut
	// off by the trace limits.
	BackgroundColor = Color{R: 0.05, G: 0.05, B: 0.05}
)

func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

func (c Color) Scale(k float64) Color {
	return Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

func (c Color) ApproxEqual(other Color) bool {
	return FloatEqual(c.R, other.R) && FloatEqual(c.G, other.G) && FloatEqual(c.B, other.B)
}

// IsFinite reports whether no channel is NaN or infinite.
func (c Color) IsFinite() bool {
	for _, ch := range []float64{c.R, c.G, c.B} {
		if math.IsNaN(ch) || math.IsInf(ch, 0) {
			return false
		}
	}
	return true
}

// ToRGBA clamps every channel to the displayable range.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp(c.R*255, 0, 255)),
		G: uint8(clamp(c.G*255, 0, 255)),
		B: uint8(clamp(c.B*255, 0, 255)),
		A: 255,
	}
}
