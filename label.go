package warp

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/gomono"
)

// Font wraps Ebitengine's text/v2 for TrueType font rendering.
type Font struct {
	face *text.GoTextFace
}

// LoadFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	return &Font{face: &text.GoTextFace{Source: source, Size: size}}, nil
}

// LoadMonoFont loads Go Mono at the given size. A fixed-width face keeps the
// headline from jittering while placeholder symbols change.
func LoadMonoFont(size float64) (*Font, error) {
	return LoadFont(gomono.TTF, size)
}

// MeasureString returns the pixel size of s.
func (f *Font) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.LineHeight())
}

// LineHeight returns the face's line height.
func (f *Font) LineHeight() float64 {
	m := f.face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Face returns the underlying GoTextFace.
func (f *Font) Face() *text.GoTextFace {
	return f.face
}

// TextAlign controls horizontal placement relative to Label.X.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // X is the left edge
	TextAlignCenter                  // X is the center
	TextAlignRight                   // X is the right edge
)

func (a TextAlign) textAlign() text.Align {
	switch a {
	case TextAlignCenter:
		return text.AlignCenter
	case TextAlignRight:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// Label is a headline that decrypts itself: it starts as random symbols
// and resolves one character per tick, left to right.
type Label struct {
	Name  string
	X, Y  float64
	Color Color
	Align TextAlign

	font  *Font
	text  *DecryptText
	alpha float64
	fade  *gween.Tween
	emit  func(Event)
}

// NewLabel creates a label revealing content at one character per interval.
func NewLabel(name, content string, font *Font, interval time.Duration, rng Rand) *Label {
	l := &Label{
		Name:  name,
		Color: Color{1, 1, 1, 1},
		font:  font,
		text:  NewDecryptText(content, interval, rng),
		alpha: 1,
	}
	l.text.OnDone = func(target string) {
		l.send(Event{Type: EventRevealCompleted, Label: l.Name, Text: target})
	}
	return l
}

// Text returns the target text.
func (l *Label) Text() string { return l.text.Text() }

// Display returns what is currently shown.
func (l *Label) Display() string { return l.text.Display() }

// Done reports whether the reveal has finished.
func (l *Label) Done() bool { return l.text.Done() }

// Alpha returns the current fade-in opacity.
func (l *Label) Alpha() float64 { return l.alpha }

// SetText restarts the reveal with new content. Same content is a no-op.
func (l *Label) SetText(content string) {
	if content == l.text.Text() {
		return
	}
	l.text.SetText(content)
	l.send(Event{Type: EventRevealStarted, Label: l.Name, Text: content})
}

// SetInterval changes the reveal speed, restarting the reveal.
func (l *Label) SetInterval(interval time.Duration) {
	before := l.text.Interval()
	l.text.SetInterval(interval)
	if l.text.Interval() != before {
		l.send(Event{Type: EventRevealStarted, Label: l.Name, Text: l.text.Text()})
	}
}

// Replay reveals the current content again from the start.
func (l *Label) Replay() {
	l.text.Replay()
	l.send(Event{Type: EventRevealStarted, Label: l.Name, Text: l.text.Text()})
}

// FadeIn animates the label's opacity from 0 to 1 over duration seconds.
func (l *Label) FadeIn(duration float32, fn ease.TweenFunc) {
	if fn == nil {
		fn = ease.OutQuad
	}
	l.alpha = 0
	l.fade = gween.New(0, 1, duration, fn)
}

func (l *Label) send(e Event) {
	if l.emit != nil {
		l.emit(e)
	}
}

// update advances the reveal timer and the fade by dt.
func (l *Label) update(dt time.Duration) {
	l.text.Update(dt)
	if l.fade != nil {
		v, done := l.fade.Update(float32(dt.Seconds()))
		l.alpha = float64(v)
		if done {
			l.fade = nil
		}
	}
}

func (l *Label) draw(dst *ebiten.Image) {
	if l.font == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(l.Color.WithAlpha(l.Color.A * l.alpha).RGBA())
	op.PrimaryAlign = l.Align.textAlign()
	text.Draw(dst, l.text.Display(), l.font.face, op)
}
