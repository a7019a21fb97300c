package warp

import (
	"errors"
	"image/color"
	"math"
	"math/rand/v2"
)

var (
	// ErrInvalidSize is returned when a surface or field is given a
	// non-positive width or height.
	ErrInvalidSize = errors.New("warp: invalid size")
	// ErrInvalidConfig is returned when a config value is out of range.
	ErrInvalidConfig = errors.New("warp: invalid config")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to a drawing backend.
type Color struct {
	R, G, B, A float64
}

// WithAlpha returns c with its alpha replaced by a.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// RGBA converts c to a premultiplied color.RGBA, clamping each component.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// RGB8 builds an opaque Color from 8-bit channels.
func RGB8(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Inset grows (negative d) or shrinks (positive d) the rectangle on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{r.X + d, r.Y + d, r.Width - 2*d, r.Height - 2*d}
}

// ContainsOpen reports whether (x, y) lies strictly inside the rectangle.
// Points on the edge, and NaN coordinates, are outside.
func (r Rect) ContainsOpen(x, y float64) bool {
	return x > r.X && x < r.X+r.Width &&
		y > r.Y && y < r.Y+r.Height
}

// Range is a general-purpose [Min, Max) range.
type Range struct {
	Min, Max float64
}

// Sample returns a value in [Min, Max) drawn from rng.
func (r Range) Sample(rng Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Rand is the random source used by the simulators. *rand.Rand from
// math/rand/v2 satisfies it; tests pass a seeded one.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand seeded with seed.
func NewRand(seed uint64) Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// orDefault returns rng, or the process-wide source when rng is nil.
func orDefault(rng Rand) Rand {
	if rng == nil {
		return globalRand{}
	}
	return rng
}
