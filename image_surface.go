package warp

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ImageSurface draws onto an Ebitengine image with anti-aliased vector
// shapes. The image must keep its contents between frames for trails to
// show, so it is usually an offscreen canvas rather than the screen.
type ImageSurface struct {
	img *ebiten.Image
	// AntiAlias smooths circle edges. Defaults to true.
	AntiAlias bool
}

// NewImageSurface wraps img. A nil img yields a surface that draws nothing.
func NewImageSurface(img *ebiten.Image) *ImageSurface {
	return &ImageSurface{img: img, AntiAlias: true}
}

// Image returns the wrapped image.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// Size returns the image bounds size.
func (s *ImageSurface) Size() (width, height int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fade fills the image with c using source-over blending.
func (s *ImageSurface) Fade(c Color) {
	if s.img == nil {
		return
	}
	w, h := s.Size()
	vector.DrawFilledRect(s.img, 0, 0, float32(w), float32(h), c.RGBA(), false)
}

// FillCircle draws a filled circle.
func (s *ImageSurface) FillCircle(x, y, radius float64, c Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(radius), c.RGBA(), s.AntiAlias)
}
