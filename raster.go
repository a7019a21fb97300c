package warp

import (
	"fmt"
	"image"
	"image/draw"
	"math"
	"path/filepath"
	"sync/atomic"
	"time"

	"golang.org/x/image/vector"
)

// kappa places cubic Bézier control points for a quarter circle.
const kappa = 0.5522847498

// RasterSurface draws onto an in-memory RGBA image on the CPU. It needs no
// window or GPU, so it backs headless runs and tests.
type RasterSurface struct {
	img  *image.RGBA
	rast *vector.Rasterizer
	src  image.Uniform
}

// NewRasterSurface allocates a width x height surface.
func NewRasterSurface(width, height int) (*RasterSurface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new raster surface %dx%d: %w", width, height, ErrInvalidSize)
	}
	r := vector.NewRasterizer(1, 1)
	r.DrawOp = draw.Over
	return &RasterSurface{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		rast: r,
	}, nil
}

// Image returns the backing image.
func (s *RasterSurface) Image() *image.RGBA {
	return s.img
}

// Size returns the image size.
func (s *RasterSurface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the backing image with a cleared one of the new size.
func (s *RasterSurface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize raster surface %dx%d: %w", width, height, ErrInvalidSize)
	}
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	return nil
}

// Fade composites c over the whole image.
func (s *RasterSurface) Fade(c Color) {
	s.src.C = c.RGBA()
	draw.Draw(s.img, s.img.Bounds(), &s.src, image.Point{}, draw.Over)
}

// FillCircle rasterizes an anti-aliased circle. Only the part of the
// circle's bounding box that overlaps the image is rasterized.
func (s *RasterSurface) FillCircle(x, y, radius float64, c Color) {
	box := image.Rect(
		int(math.Floor(x-radius)), int(math.Floor(y-radius)),
		int(math.Ceil(x+radius)), int(math.Ceil(y+radius)),
	).Intersect(s.img.Bounds())
	if box.Empty() {
		return
	}

	cx := float32(x - float64(box.Min.X))
	cy := float32(y - float64(box.Min.Y))
	r := float32(radius)
	k := r * kappa

	z := s.rast
	z.Reset(box.Dx(), box.Dy())
	z.MoveTo(cx+r, cy)
	z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
	z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
	z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
	z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	z.ClosePath()

	s.src.C = c.RGBA()
	z.Draw(s.img, box, &s.src, image.Point{})
}

// Snapshot writes the current image as a PNG in dir, named with a timestamp,
// a sequence number and the sanitized label. It returns the written path.
func (s *RasterSurface) Snapshot(dir, label string) (string, error) {
	path := snapshotPath(dir, label, time.Now(), nextSnapshotSeq())
	if err := writePNG(path, s.img); err != nil {
		return "", err
	}
	return path, nil
}

// snapshotSeq numbers every snapshot and screenshot taken by the process,
// so names stay unique within one second.
var snapshotSeq atomic.Uint64

func nextSnapshotSeq() uint64 {
	return snapshotSeq.Add(1)
}

func snapshotPath(dir, label string, at time.Time, seq uint64) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%04d_%s.png", at.Format("20060102_150405"), seq, sanitizeLabel(label)))
}
