package warp

import (
	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Default terminal cell size in surface units. Cells are roughly twice as
// tall as they are wide.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Glyphs used for increasing star brightness.
var termGlyphs = []rune{'.', '·', '+', '*', '✦'}

type termCell struct {
	level float64
	tone  colorful.Color
}

// TermSurface renders the starfield into a tcell screen. Each cell keeps a
// brightness level: Fade scales it down, FillCircle raises it, and Flush
// draws every cell as a glyph whose color is blended over the background.
type TermSurface struct {
	screen tcell.Screen
	cellW  float64
	cellH  float64
	cols   int
	rows   int
	cells  []termCell
	bg     colorful.Color
	// Threshold is the level below which a cell is drawn blank.
	Threshold float64
}

// NewTermSurface wraps screen with the default cell size.
func NewTermSurface(screen tcell.Screen, background Color) *TermSurface {
	s := &TermSurface{
		screen:    screen,
		cellW:     DefaultCellWidth,
		cellH:     DefaultCellHeight,
		bg:        toColorful(background),
		Threshold: 0.05,
	}
	s.Sync()
	return s
}

// Sync re-reads the screen size and drops the cell buffer if it changed.
// Call it after a resize event.
func (s *TermSurface) Sync() {
	cols, rows := s.screen.Size()
	if cols == s.cols && rows == s.rows && s.cells != nil {
		return
	}
	s.cols, s.rows = max(cols, 0), max(rows, 0)
	s.cells = make([]termCell, s.cols*s.rows)
}

// Size returns the screen size in surface units.
func (s *TermSurface) Size() (width, height int) {
	return int(float64(s.cols) * s.cellW), int(float64(s.rows) * s.cellH)
}

// Fade dims every cell by c's alpha. The fade color itself is the
// background passed to NewTermSurface.
func (s *TermSurface) Fade(c Color) {
	keep := 1 - clamp01(c.A)
	for i := range s.cells {
		s.cells[i].level *= keep
	}
}

// FillCircle lights the cell containing (x, y). Larger and more opaque stars
// light it more.
func (s *TermSurface) FillCircle(x, y, radius float64, c Color) {
	col := int(x / s.cellW)
	row := int(y / s.cellH)
	if x < 0 || y < 0 || col >= s.cols || row >= s.rows {
		return
	}
	cell := &s.cells[row*s.cols+col]
	level := clamp01(c.A * (0.5 + radius))
	if level >= cell.level {
		cell.level = level
		cell.tone = toColorful(c)
	}
}

// Flush writes every cell to the screen. Draw overlays after it, then call
// Show.
func (s *TermSurface) Flush() {
	bgR, bgG, bgB := s.bg.RGB255()
	base := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bgR), int32(bgG), int32(bgB)))
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			cell := s.cells[row*s.cols+col]
			if cell.level < s.Threshold {
				s.screen.SetContent(col, row, ' ', nil, base)
				continue
			}
			r, g, b := s.bg.BlendRgb(cell.tone, cell.level).Clamped().RGB255()
			style := base.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			s.screen.SetContent(col, row, s.glyph(cell.level), nil, style)
		}
	}
}

// Show makes everything written since the last Show visible.
func (s *TermSurface) Show() {
	s.screen.Show()
}

// glyph picks a brighter glyph for a higher level in [Threshold, 1].
func (s *TermSurface) glyph(level float64) rune {
	span := 1 - s.Threshold
	if span <= 0 {
		return termGlyphs[len(termGlyphs)-1]
	}
	i := int((level - s.Threshold) / span * float64(len(termGlyphs)))
	return termGlyphs[min(max(i, 0), len(termGlyphs)-1)]
}

// DrawText writes text at a cell position with the given color, on top of
// whatever Flush wrote.
func (s *TermSurface) DrawText(col, row int, text string, c Color) {
	r, g, b := toColorful(c).Clamped().RGB255()
	bgR, bgG, bgB := s.bg.RGB255()
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
		Background(tcell.NewRGBColor(int32(bgR), int32(bgG), int32(bgB))).
		Bold(true)
	for _, ch := range text {
		if col >= s.cols {
			break
		}
		if col >= 0 && row >= 0 && row < s.rows {
			s.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

func toColorful(c Color) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}
