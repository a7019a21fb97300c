package warp

import (
	"fmt"
	"os"
)

// debugFrame prints one frame's starfield stats to stderr.
func debugFrame(stats FrameStats, speed float64) {
	_, _ = fmt.Fprintf(os.Stderr,
		"[warp] frame %d | speed: %.2f | drawn: %d | skipped: %d | recycled: %d\n",
		stats.Frame, speed, stats.Drawn, stats.Skipped, stats.Recycled)
}

// debugEvent prints a scene event to stderr.
func debugEvent(e Event) {
	switch e.Type {
	case EventResized:
		_, _ = fmt.Fprintf(os.Stderr, "[warp] %s: %dx%d\n", e.Type, e.Width, e.Height)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "[warp] %s: %s %q\n", e.Type, e.Label, e.Text)
	}
}
