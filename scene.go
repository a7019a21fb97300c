package warp

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is an ebiten.Game that draws a Starfield behind decrypting labels.
//
// The starfield is painted into an offscreen canvas that keeps its contents
// between frames, which is what makes the trail fade visible; the canvas
// is then copied to the screen and labels are drawn on top.
type Scene struct {
	field   *Starfield
	canvas  *ebiten.Image
	surface *ImageSurface
	labels  []*Label
	fps     *fpsOverlay
	sink    EventSink
	debug   bool
	closed  bool

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string
	updateFunc      func() error
	lastStats       FrameStats
}

// NewScene creates a scene around field. A nil field draws only labels.
func NewScene(field *Starfield) *Scene {
	return &Scene{
		field:         field,
		surface:       NewImageSurface(nil),
		ScreenshotDir: "screenshots",
	}
}

// Field returns the scene's starfield.
func (s *Scene) Field() *Starfield {
	return s.field
}

// AddLabel adds l to the scene and announces its reveal.
func (s *Scene) AddLabel(l *Label) {
	l.emit = s.emit
	s.labels = append(s.labels, l)
	s.emit(Event{Type: EventRevealStarted, Label: l.Name, Text: l.Text()})
}

// Labels returns the scene's labels. The returned slice MUST NOT be mutated.
func (s *Scene) Labels() []*Label {
	return s.labels
}

// SetEventSink sets the optional event sink.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetUpdateFunc sets a callback run at the start of every Update. A non-nil
// error ends the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// starfield stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if s.field != nil {
		s.field.SetDebug(enabled)
	}
}

// ShowFPS toggles the FPS/TPS overlay.
func (s *Scene) ShowFPS(show bool) {
	if show && s.fps == nil {
		s.fps = newFPSOverlay()
	} else if !show {
		s.fps = nil
	}
}

// LastStats returns the stats of the most recent starfield frame.
func (s *Scene) LastStats() FrameStats {
	return s.lastStats
}

// Close ends the game loop on the next Update. The canvas is released then,
// so nothing keeps drawing against it.
func (s *Scene) Close() {
	s.closed = true
}

func (s *Scene) emit(e Event) {
	if s.sink != nil {
		s.sink.Emit(e)
	}
	if s.debug {
		debugEvent(e)
	}
}

// Update advances labels by one tick of game time.
func (s *Scene) Update() error {
	if s.closed {
		s.release()
		return ebiten.Termination
	}
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			s.release()
			return err
		}
	}
	dt := frameDelta(ebiten.TPS())
	for _, l := range s.labels {
		l.update(dt)
	}
	if s.fps != nil {
		s.fps.update(dt.Seconds())
	}
	return nil
}

// Draw renders one frame of the starfield into the canvas, then composes the
// canvas, labels and overlay onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.canvas != nil {
		s.lastStats = s.field.Frame(s.surface)
		screen.DrawImage(s.canvas, nil)
	}
	for _, l := range s.labels {
		l.draw(screen)
	}
	if s.fps != nil {
		s.fps.draw(screen)
	}
	s.flushScreenshots(screen)
}

// Layout tracks the window size. A new size resizes the starfield and
// recreates the canvas.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	s.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (s *Scene) resize(width, height int) {
	if width <= 0 || height <= 0 || s.field == nil {
		return
	}
	if s.canvas != nil {
		b := s.canvas.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
		s.canvas.Deallocate()
	}
	s.canvas = ebiten.NewImage(width, height)
	s.canvas.Fill(s.field.Config().Background.RGBA())
	s.surface = NewImageSurface(s.canvas)
	s.field.Resize(width, height)
	s.emit(Event{Type: EventResized, Width: width, Height: height})
}

// frameDelta returns the game time covered by one Update at tps ticks per
// second. ebiten.SyncWithFPS and other non-positive rates fall back to
// ebiten.DefaultTPS.
func frameDelta(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (s *Scene) release() {
	if s.canvas != nil {
		s.canvas.Deallocate()
		s.canvas = nil
	}
	s.surface = NewImageSurface(nil)
}
