package warp

import (
	"context"
	"sync"
	"time"
)

// Handle is a running animation loop. Stop must be called on every exit
// path so the loop does not keep ticking against a disposed surface.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the loop and waits for it to exit. It is safe to call more
// than once and on a nil Handle. Stop must not be called from inside the
// loop's own step function.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop has exited, whether it was stopped or
// finished on its own. A nil Handle reports an already closed channel.
func (h *Handle) Done() <-chan struct{} {
	if h == nil {
		return closedDone
	}
	return h.done
}

var closedDone = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// TickerFunc returns a channel that delivers a tick every d, and a function
// that releases it.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

// SystemTicker is a TickerFunc backed by time.Ticker.
func SystemTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// StartLoop calls step once per tick on a single goroutine until step
// returns false, ctx ends or the returned Handle is stopped. Ticks never
// overlap: a slow step delays the next one. A nil ticker uses SystemTicker.
func StartLoop(ctx context.Context, interval time.Duration, ticker TickerFunc, step func() bool) *Handle {
	if ticker == nil {
		ticker = SystemTicker
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}
	ticks, release := ticker(interval)

	go func() {
		defer close(h.done)
		defer release()
		defer cancel()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticks:
				// Re-check so a tick racing with Stop is dropped.
				if ctx.Err() != nil {
					return
				}
				if !step() {
					return
				}
			}
		}
	}()
	return h
}
