package warp

import (
	"context"
	"sync"
	"time"
)

// Revealer runs a Decrypter on a wall-clock timer, for front ends that are
// not frame driven. At most one run is active: Start cancels the previous
// run before beginning the next.
type Revealer struct {
	// OnFrame receives the display after every tick. It is called from the
	// timer goroutine and must not call Start or Stop.
	OnFrame func(display string)
	// OnDone, if set, is called after the final frame of a run.
	OnDone func(text string)
	// Ticker overrides the timer source. Nil uses SystemTicker.
	Ticker TickerFunc

	run    sync.Mutex // serializes Start and Stop; guards handle
	handle *Handle
	mu     sync.Mutex // guards dec
	dec    *Decrypter
}

// NewRevealer returns a Revealer drawing placeholder symbols from rng.
func NewRevealer(rng Rand, onFrame func(display string)) *Revealer {
	return &Revealer{
		OnFrame: onFrame,
		dec:     NewDecrypter("", rng),
	}
}

// Start stops any run in progress, resets to zero resolved characters and
// begins revealing text with one tick per interval (<= 0 uses
// DefaultDecryptInterval). The run ends on its own once text is resolved.
func (r *Revealer) Start(ctx context.Context, text string, interval time.Duration) *Handle {
	if interval <= 0 {
		interval = DefaultDecryptInterval
	}
	r.run.Lock()
	defer r.run.Unlock()
	r.handle.Stop()

	r.mu.Lock()
	r.dec.Reset(text)
	r.mu.Unlock()

	r.handle = StartLoop(ctx, interval, r.Ticker, r.step)
	return r.handle
}

func (r *Revealer) step() bool {
	r.mu.Lock()
	display, done := r.dec.Tick()
	target := r.dec.Target()
	r.mu.Unlock()

	if r.OnFrame != nil {
		r.OnFrame(display)
	}
	if done && r.OnDone != nil {
		r.OnDone(target)
	}
	return !done
}

// Stop cancels the current run, if any, and waits for its timer to be
// released.
func (r *Revealer) Stop() {
	r.run.Lock()
	defer r.run.Unlock()
	r.handle.Stop()
	r.handle = nil
}

// Resolved returns how many characters the current run has resolved.
func (r *Revealer) Resolved() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dec.Resolved()
}

// Display returns the latest display text.
func (r *Revealer) Display() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.dec.Display()
}
