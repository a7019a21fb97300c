package warp

import (
	"errors"
	"os"
	"testing"
)

func TestParseScript(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [
		{"action": "frames", "frames": 10},
		{"action": "snapshot", "label": "a"},
		{"action": "resize", "width": 64, "height": 32},
		{"action": "speed", "speed": 20}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}

func TestParseScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"not json", `{`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "explode"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseScript([]byte(tt.json)); err == nil {
				t.Error("expected error")
			}
		})
	}
	_, err := ParseScript([]byte(`{"steps": [{"action": "resize", "width": 0, "height": 10}]}`))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}

func TestScriptRepeatedSnapshotLabel(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [
		{"action": "snapshot", "label": "same"},
		{"action": "frames", "frames": 1},
		{"action": "snapshot", "label": "same"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	field, _ := NewStarfield(16, 16, DefaultStarfieldConfig(), NewRand(2))
	surface, _ := NewRasterSurface(16, 16)

	res, err := s.Run(field, surface, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Snapshots) != 2 || res.Snapshots[0] == res.Snapshots[1] {
		t.Fatalf("Snapshots = %v, want two distinct paths", res.Snapshots)
	}
	for _, p := range res.Snapshots {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("snapshot missing: %v", err)
		}
	}
}

func TestScriptRun(t *testing.T) {
	s, err := ParseScript([]byte(`{"steps": [
		{"action": "frames", "frames": 5},
		{"action": "snapshot", "label": "first"},
		{"action": "resize", "width": 64, "height": 32},
		{"action": "speed", "speed": 20},
		{"action": "frames", "frames": 3},
		{"action": "snapshot", "label": "second"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	cfg := DefaultStarfieldConfig()
	cfg.Count = 50
	field, err := NewStarfield(48, 48, cfg, NewRand(8))
	if err != nil {
		t.Fatal(err)
	}
	surface, _ := NewRasterSurface(48, 48)
	dir := t.TempDir()

	res, err := s.Run(field, surface, dir)
	if err != nil {
		t.Fatal(err)
	}
	if res.Frames != 8 || res.Totals.Frame != 8 {
		t.Errorf("Frames = %d, Totals.Frame = %d, want 8", res.Frames, res.Totals.Frame)
	}
	if res.Totals.Drawn+res.Totals.Skipped != 8*50 {
		t.Errorf("drawn %d + skipped %d != 400", res.Totals.Drawn, res.Totals.Skipped)
	}
	if len(res.Snapshots) != 2 {
		t.Fatalf("Snapshots = %v", res.Snapshots)
	}
	for _, p := range res.Snapshots {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("snapshot missing: %v", err)
		}
	}
	if res.Snapshots[0] == res.Snapshots[1] {
		t.Errorf("snapshots share a path: %q", res.Snapshots[0])
	}
	if w, h := field.Size(); w != 64 || h != 32 {
		t.Errorf("field size = %dx%d", w, h)
	}
	if w, h := surface.Size(); w != 64 || h != 32 {
		t.Errorf("surface size = %dx%d", w, h)
	}
	if field.Speed() != 20 {
		t.Errorf("Speed() = %v", field.Speed())
	}
}
