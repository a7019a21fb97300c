package warp

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	// ShowFPS draws an FPS/TPS overlay in the top-left corner.
	ShowFPS bool
	// Debug logs per-frame stats and scene events to stderr.
	Debug bool
}

// Run opens a window and runs scene until the window is closed or
// scene.Close is called. Closing is not an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 800
	}
	if cfg.Height <= 0 {
		cfg.Height = 600
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.ShowFPS(cfg.ShowFPS)
	scene.SetDebugMode(cfg.Debug)

	if err := ebiten.RunGame(scene); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
