package warp

import (
	"fmt"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Star is one particle of the field. X and Y are lateral offsets from the
// viewport center, Z is the distance from the viewer and Size the fixed
// radius multiplier.
type Star struct {
	X, Y float64
	Z    float64
	Size float64
}

// ResizePolicy selects what Resize does with the existing stars.
type ResizePolicy uint8

const (
	// ResizeReseed recomputes the focal length and reseeds every star for the
	// new viewport.
	ResizeReseed ResizePolicy = iota
	// ResizePreserve only updates the viewport size. The focal length and
	// star positions are kept, so the projection lags the new size until
	// stars recycle.
	ResizePreserve
)

// String returns the policy name used in presets.
func (p ResizePolicy) String() string {
	switch p {
	case ResizeReseed:
		return "reseed"
	case ResizePreserve:
		return "preserve"
	default:
		return fmt.Sprintf("ResizePolicy(%d)", uint8(p))
	}
}

// ParseResizePolicy maps a preset name to a ResizePolicy.
func ParseResizePolicy(s string) (ResizePolicy, error) {
	switch s {
	case "", "reseed":
		return ResizeReseed, nil
	case "preserve":
		return ResizePreserve, nil
	}
	return 0, fmt.Errorf("%w: unknown resize policy %q", ErrInvalidConfig, s)
}

// StarfieldConfig controls how stars are seeded, moved and drawn.
type StarfieldConfig struct {
	// Count is the pool size.
	Count int
	// Speed is the depth each star loses per frame.
	Speed float64
	// TrailAlpha is the opacity of the background fill painted each frame.
	// Lower values leave longer trails.
	TrailAlpha float64
	// Background is the fill color. Its alpha is replaced by TrailAlpha.
	Background Color
	// Palette holds the star tones. Each drawn star picks one at random.
	Palette []Color
	// BaseRadius is the range of per-star size multipliers.
	BaseRadius Range
	// RadiusFactor converts size*scale into a draw radius.
	RadiusFactor float64
	// AlphaFactor converts scale into star opacity, capped at 1.
	AlphaFactor float64
	// Margin is how far outside the surface a star may be and still be drawn.
	Margin float64
	// Resize selects the resize behavior.
	Resize ResizePolicy
}

// DefaultStarfieldConfig returns the warp-speed look: 800 stars at 8 units
// per frame in electric blue and cyan over dark navy.
func DefaultStarfieldConfig() StarfieldConfig {
	return StarfieldConfig{
		Count:        800,
		Speed:        8,
		TrailAlpha:   0.5,
		Background:   RGB8(2, 4, 10),
		Palette:      []Color{RGB8(0, 136, 255), RGB8(0, 217, 255)},
		BaseRadius:   Range{0.5, 2.0},
		RadiusFactor: 0.005,
		AlphaFactor:  0.001,
		Margin:       100,
		Resize:       ResizeReseed,
	}
}

// Validate reports the first out-of-range field.
func (c StarfieldConfig) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("%w: count %d", ErrInvalidConfig, c.Count)
	case !(c.Speed > 0) || math.IsInf(c.Speed, 0):
		return fmt.Errorf("%w: speed %v must be positive", ErrInvalidConfig, c.Speed)
	case c.TrailAlpha < 0 || c.TrailAlpha > 1:
		return fmt.Errorf("%w: trail alpha %v outside [0, 1]", ErrInvalidConfig, c.TrailAlpha)
	case len(c.Palette) == 0:
		return fmt.Errorf("%w: empty palette", ErrInvalidConfig)
	case c.BaseRadius.Min <= 0 || c.BaseRadius.Max < c.BaseRadius.Min:
		return fmt.Errorf("%w: base radius %v", ErrInvalidConfig, c.BaseRadius)
	case c.Margin < 0:
		return fmt.Errorf("%w: margin %v", ErrInvalidConfig, c.Margin)
	}
	return nil
}

// FrameStats summarizes one frame.
type FrameStats struct {
	Frame    uint64
	Drawn    int
	Skipped  int
	Recycled int
}

// Projection is a star mapped to surface coordinates.
type Projection struct {
	X, Y   float64
	Scale  float64
	Radius float64
	Alpha  float64
}

// Starfield simulates stars flying toward the viewer and projects them onto
// a Surface with perspective scaling. Stars that pass the viewer are
// recycled to the far plane, so the pool never grows or shrinks.
//
// A Starfield is not safe for concurrent use; drive it from one loop.
type Starfield struct {
	config        StarfieldConfig
	stars         []Star
	rng           Rand
	width, height float64
	focal         float64
	speed         float64
	ramp          *gween.Tween
	frame         uint64
	debug         bool
}

// NewStarfield creates a field for a width x height viewport. A nil rng uses
// the process-wide source.
func NewStarfield(width, height int, cfg StarfieldConfig, rng Rand) (*Starfield, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new starfield %dx%d: %w", width, height, ErrInvalidSize)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new starfield: %w", err)
	}
	f := &Starfield{
		config: cfg,
		stars:  make([]Star, cfg.Count),
		rng:    orDefault(rng),
		width:  float64(width),
		height: float64(height),
		focal:  float64(width),
		speed:  cfg.Speed,
	}
	f.seed()
	return f, nil
}

// seed places every star at a random position in the viewing volume.
func (f *Starfield) seed() {
	for i := range f.stars {
		s := &f.stars[i]
		f.respawn(s)
		// (0, width]: Float64 may return 0 but never 1.
		s.Z = f.width - f.rng.Float64()*f.width
		s.Size = f.config.BaseRadius.Sample(f.rng)
	}
}

// respawn moves s back to the far plane with a fresh lateral offset.
func (f *Starfield) respawn(s *Star) {
	s.Z = f.width
	s.X = f.rng.Float64()*f.width - f.width/2
	s.Y = f.rng.Float64()*f.height - f.height/2
}

// Config returns a copy of the field's config. Use SetConfig to change it.
func (f *Starfield) Config() StarfieldConfig {
	cfg := f.config
	cfg.Palette = append([]Color(nil), f.config.Palette...)
	return cfg
}

// SetConfig validates and applies cfg. Speed goes through SetSpeed, so any
// ramp is cancelled. A changed Count resizes the pool and reseeds every
// star; other fields apply from the next frame.
func (f *Starfield) SetConfig(cfg StarfieldConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("set starfield config: %w", err)
	}
	cfg.Palette = append([]Color(nil), cfg.Palette...)
	reseed := cfg.Count != len(f.stars)
	f.config = cfg
	f.SetSpeed(cfg.Speed)
	if reseed {
		f.stars = make([]Star, cfg.Count)
		f.seed()
	}
	return nil
}

// Stars returns the star pool. The returned slice MUST NOT be mutated.
func (f *Starfield) Stars() []Star {
	return f.stars
}

// Size returns the viewport size the field projects onto.
func (f *Starfield) Size() (width, height int) {
	return int(f.width), int(f.height)
}

// FocalLength returns the projection focal length.
func (f *Starfield) FocalLength() float64 {
	return f.focal
}

// Speed returns the current per-frame depth decrement.
func (f *Starfield) Speed() float64 {
	return f.speed
}

// SetSpeed changes the per-frame depth decrement and cancels any ramp.
// Negative values are treated as zero.
func (f *Starfield) SetSpeed(v float64) {
	f.ramp = nil
	f.speed = math.Max(0, v)
}

// RampSpeed eases the speed from `from` to `to` over the given number of
// frames. A nil fn is linear.
func (f *Starfield) RampSpeed(from, to float64, frames int, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.Linear
	}
	if frames <= 0 {
		f.SetSpeed(to)
		return
	}
	f.speed = math.Max(0, from)
	f.ramp = gween.New(float32(f.speed), float32(math.Max(0, to)), float32(frames), fn)
}

// Ramping reports whether a speed ramp is in progress.
func (f *Starfield) Ramping() bool {
	return f.ramp != nil
}

// SetDebug enables per-frame stats on stderr.
func (f *Starfield) SetDebug(enabled bool) {
	f.debug = enabled
}

// Resize updates the viewport. What happens to the stars depends on the
// configured ResizePolicy. Non-positive sizes are ignored.
func (f *Starfield) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if float64(width) == f.width && float64(height) == f.height {
		return
	}
	f.width = float64(width)
	f.height = float64(height)
	if f.config.Resize == ResizePreserve {
		return
	}
	f.focal = f.width
	f.seed()
}

// Project maps s to surface coordinates. ok is false when the star must not
// be drawn: a non-positive or non-finite radius, or a position more than
// Margin outside the viewport.
func (f *Starfield) Project(s Star) (p Projection, ok bool) {
	p.Scale = f.focal / s.Z
	p.X = f.width/2 + s.X*p.Scale
	p.Y = f.height/2 + s.Y*p.Scale
	p.Radius = s.Size * p.Scale * f.config.RadiusFactor
	p.Alpha = math.Min(1, p.Scale*f.config.AlphaFactor)

	if !(p.Radius > 0) || math.IsInf(p.Radius, 0) {
		return p, false
	}
	bounds := Rect{0, 0, f.width, f.height}.Inset(-f.config.Margin)
	return p, bounds.ContainsOpen(p.X, p.Y)
}

// Step advances every star by one frame without drawing.
func (f *Starfield) Step() FrameStats {
	return f.Frame(nil)
}

// Frame advances every star by one frame and draws it onto s. The trail
// fade is painted first, then each star is moved, recycled if it passed
// the viewer, projected and drawn. A nil s simulates without drawing.
func (f *Starfield) Frame(s Surface) FrameStats {
	if f == nil {
		return FrameStats{}
	}
	f.frame++
	stats := FrameStats{Frame: f.frame}

	if s != nil {
		s.Fade(f.config.Background.WithAlpha(f.config.TrailAlpha))
	}

	speed := f.speed
	for i := range f.stars {
		st := &f.stars[i]
		st.Z -= speed
		if st.Z <= 0 {
			f.respawn(st)
			stats.Recycled++
		}

		p, ok := f.Project(*st)
		if !ok {
			stats.Skipped++
			continue
		}
		if s == nil {
			continue
		}
		tone := f.config.Palette[f.rng.IntN(len(f.config.Palette))]
		s.FillCircle(p.X, p.Y, p.Radius, tone.WithAlpha(p.Alpha))
		stats.Drawn++
	}

	f.advanceRamp()

	if f.debug {
		debugFrame(stats, f.speed)
	}
	return stats
}

// advanceRamp moves the speed ramp forward one frame.
func (f *Starfield) advanceRamp() {
	if f.ramp == nil {
		return
	}
	v, done := f.ramp.Update(1)
	f.speed = math.Max(0, float64(v))
	if done {
		f.ramp = nil
	}
}
