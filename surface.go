package warp

// Surface is a 2D drawing target for the starfield. Coordinates are in
// surface units with the origin at the top-left.
type Surface interface {
	// Size returns the drawable width and height.
	Size() (width, height int)
	// Fade paints the whole surface with c over its previous contents.
	// A low alpha leaves a fading trail of earlier frames.
	Fade(c Color)
	// FillCircle draws a filled circle. Callers never pass a non-finite or
	// non-positive radius.
	FillCircle(x, y, radius float64, c Color)
}
