package warp

import (
	"fmt"
	"os"
	"strconv"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// Preset is a complete hero-scene description loaded from YAML:
//
//	seed: 42
//	starfield:
//	  count: 800
//	  speed: 8
//	  trail_alpha: 0.5
//	  background: "#02040a"
//	  palette: ["#0088ff", "#00d9ff"]
//	  resize: reseed
//	  ramp: {from: 2, to: 8, frames: 90, ease: outCubic}
//	headlines:
//	  - text: OUSSAMA
//	    interval_ms: 30
//
// Zero and missing fields keep the DefaultStarfieldConfig value.
type Preset struct {
	Seed      uint64           `yaml:"seed"`
	Starfield StarfieldPreset  `yaml:"starfield"`
	Headlines []HeadlinePreset `yaml:"headlines"`
}

// StarfieldPreset is the YAML form of StarfieldConfig.
type StarfieldPreset struct {
	Count      int         `yaml:"count"`
	Speed      float64     `yaml:"speed"`
	TrailAlpha *float64    `yaml:"trail_alpha"`
	Background HexColor    `yaml:"background"`
	Palette    []HexColor  `yaml:"palette"`
	Resize     string      `yaml:"resize"`
	Ramp       *RampPreset `yaml:"ramp"`
}

// RampPreset describes a startup speed ramp.
type RampPreset struct {
	From   float64 `yaml:"from"`
	To     float64 `yaml:"to"`
	Frames int     `yaml:"frames"`
	Ease   string  `yaml:"ease"`
}

// HeadlinePreset is one decrypting headline.
type HeadlinePreset struct {
	Text       string `yaml:"text"`
	IntervalMS int    `yaml:"interval_ms"`
}

// Interval returns the tick interval, DefaultDecryptInterval when unset.
func (h HeadlinePreset) Interval() time.Duration {
	if h.IntervalMS <= 0 {
		return DefaultDecryptInterval
	}
	return time.Duration(h.IntervalMS) * time.Millisecond
}

// HexColor is a Color written as "#rrggbb" in YAML.
type HexColor struct {
	Color
	set bool
}

// UnmarshalYAML parses a hex color string.
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	c, err := ParseHexColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	h.Color, h.set = c, true
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque Color.
func ParseHexColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, s, err)
	}
	return Color{c.R, c.G, c.B, 1}, nil
}

// DefaultPreset returns the portfolio hero: the default starfield with a
// two-line name headline.
func DefaultPreset() Preset {
	return Preset{
		Headlines: []HeadlinePreset{
			{Text: "OUSSAMA", IntervalMS: 30},
			{Text: "ELAMRANI", IntervalMS: 30},
		},
	}
}

// ParsePreset decodes YAML preset data.
func ParsePreset(data []byte) (Preset, error) {
	var p Preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	if _, err := p.StarfieldConfig(); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	if _, err := p.Starfield.Easing(); err != nil {
		return Preset{}, fmt.Errorf("parse preset: %w", err)
	}
	return p, nil
}

// LoadPreset reads and decodes a YAML preset file.
func LoadPreset(path string) (Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Preset{}, fmt.Errorf("load preset: %w", err)
	}
	return ParsePreset(data)
}

// StarfieldConfig merges the preset over DefaultStarfieldConfig and
// validates the result.
func (p Preset) StarfieldConfig() (StarfieldConfig, error) {
	cfg := DefaultStarfieldConfig()
	sp := p.Starfield
	if sp.Count > 0 {
		cfg.Count = sp.Count
	}
	if sp.Speed != 0 {
		cfg.Speed = sp.Speed
	}
	if sp.TrailAlpha != nil {
		cfg.TrailAlpha = *sp.TrailAlpha
	}
	if sp.Background.set {
		cfg.Background = sp.Background.Color
	}
	if len(sp.Palette) > 0 {
		cfg.Palette = make([]Color, len(sp.Palette))
		for i, c := range sp.Palette {
			cfg.Palette[i] = c.Color
		}
	}
	policy, err := ParseResizePolicy(sp.Resize)
	if err != nil {
		return StarfieldConfig{}, err
	}
	cfg.Resize = policy
	if err := cfg.Validate(); err != nil {
		return StarfieldConfig{}, err
	}
	return cfg, nil
}

var easings = map[string]ease.TweenFunc{
	"":          ease.Linear,
	"linear":    ease.Linear,
	"inQuad":    ease.InQuad,
	"outQuad":   ease.OutQuad,
	"inOutQuad": ease.InOutQuad,
	"inCubic":   ease.InCubic,
	"outCubic":  ease.OutCubic,
	"inExpo":    ease.InExpo,
	"outExpo":   ease.OutExpo,
	"inOutSine": ease.InOutSine,
}

// Easing returns the ramp's easing function, linear when unset.
func (sp StarfieldPreset) Easing() (ease.TweenFunc, error) {
	name := ""
	if sp.Ramp != nil {
		name = sp.Ramp.Ease
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, name)
	}
	return fn, nil
}

// NewStarfield builds the preset's starfield for a viewport, seeded from
// Seed (0 means a random seed), with its ramp applied.
func (p Preset) NewStarfield(width, height int) (*Starfield, error) {
	cfg, err := p.StarfieldConfig()
	if err != nil {
		return nil, err
	}
	f, err := NewStarfield(width, height, cfg, p.Rand())
	if err != nil {
		return nil, err
	}
	if r := p.Starfield.Ramp; r != nil {
		fn, err := p.Starfield.Easing()
		if err != nil {
			return nil, err
		}
		f.RampSpeed(r.From, r.To, r.Frames, fn)
	}
	return f, nil
}

// Rand returns a source seeded from Seed, or the process-wide source when
// Seed is 0.
func (p Preset) Rand() Rand {
	if p.Seed == 0 {
		return nil
	}
	return NewRand(p.Seed)
}

// Environment variables read by ApplyEnv.
const (
	EnvStars  = "WARP_STARS"
	EnvSpeed  = "WARP_SPEED"
	EnvSeed   = "WARP_SEED"
	EnvResize = "WARP_RESIZE"
)

// ApplyEnv overrides preset fields from environment variables looked up
// with lookup (usually os.LookupEnv). Unset variables are ignored.
func (p *Preset) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvStars); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvStars, v)
		}
		p.Starfield.Count = n
	}
	if v, ok := lookup(EnvSpeed); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSpeed, v)
		}
		p.Starfield.Speed = f
	}
	if v, ok := lookup(EnvSeed); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvSeed, v)
		}
		p.Seed = n
	}
	if v, ok := lookup(EnvResize); ok {
		if _, err := ParseResizePolicy(v); err != nil {
			return err
		}
		p.Starfield.Resize = v
	}
	return nil
}
