package warp

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in a headless script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Speed  float64 `json:"speed,omitempty"`
}

type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences frames, resizes, speed changes and snapshots for a
// headless run:
//
//	{"steps": [
//	  {"action": "frames", "frames": 60},
//	  {"action": "snapshot", "label": "cruise"},
//	  {"action": "resize", "width": 1280, "height": 720},
//	  {"action": "speed", "speed": 20},
//	  {"action": "frames", "frames": 30},
//	  {"action": "snapshot", "label": "after-resize"}
//	]}
type Script struct {
	steps []scriptStep
}

// ScriptResult collects what a Script run produced.
type ScriptResult struct {
	Frames    int
	Snapshots []string
	// Totals sums Drawn, Skipped and Recycled over every frame. Its Frame
	// field is the field's frame counter at the end of the run.
	Totals FrameStats
}

// ParseScript parses a JSON script.
func ParseScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "frames", "snapshot", "speed":
		case "resize":
			if st.Width <= 0 || st.Height <= 0 {
				return nil, fmt.Errorf("parse script: step %d: resize %dx%d: %w", i, st.Width, st.Height, ErrInvalidSize)
			}
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run executes every step against field drawing onto surface. Snapshots
// are written to dir.
func (s *Script) Run(field *Starfield, surface *RasterSurface, dir string) (ScriptResult, error) {
	var res ScriptResult
	for i, st := range s.steps {
		switch st.Action {
		case "frames":
			for n := 0; n < max(st.Frames, 1); n++ {
				fs := field.Frame(surface)
				res.Frames++
				res.Totals.Drawn += fs.Drawn
				res.Totals.Skipped += fs.Skipped
				res.Totals.Recycled += fs.Recycled
				res.Totals.Frame = fs.Frame
			}
		case "snapshot":
			path, err := surface.Snapshot(dir, st.Label)
			if err != nil {
				return res, fmt.Errorf("script step %d: %w", i, err)
			}
			res.Snapshots = append(res.Snapshots, path)
		case "resize":
			if err := surface.Resize(st.Width, st.Height); err != nil {
				return res, fmt.Errorf("script step %d: %w", i, err)
			}
			field.Resize(st.Width, st.Height)
		case "speed":
			field.SetSpeed(st.Speed)
		}
	}
	return res, nil
}
