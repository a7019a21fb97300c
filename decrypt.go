package warp

import "time"

// Alphabet is the set of placeholder symbols shown at unresolved positions.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ1234567890!@#$%^&*()_+-=[]{}|;:,.<>?/~"

// DefaultDecryptInterval is the time between reveal ticks.
const DefaultDecryptInterval = 30 * time.Millisecond

// Decrypter resolves a target string one character per tick, left to right.
// Unresolved positions show a random symbol from Alphabet that changes on
// every tick.
type Decrypter struct {
	target   []rune
	display  []rune
	resolved int
	rng      Rand
}

// NewDecrypter returns a Decrypter for text. Before the first tick the
// display is all spaces. A nil rng uses the process-wide source.
func NewDecrypter(text string, rng Rand) *Decrypter {
	d := &Decrypter{rng: orDefault(rng)}
	d.Reset(text)
	return d
}

// Reset starts over with a new target.
func (d *Decrypter) Reset(text string) {
	d.target = []rune(text)
	d.resolved = 0
	if cap(d.display) < len(d.target) {
		d.display = make([]rune, len(d.target))
	}
	d.display = d.display[:len(d.target)]
	for i := range d.display {
		d.display[i] = ' '
	}
}

// Tick resolves one more character and rerolls the rest. It returns the new
// display and whether the target is fully resolved. Once done, further
// ticks return the target unchanged.
func (d *Decrypter) Tick() (string, bool) {
	if d.resolved < len(d.target) {
		d.resolved++
	}
	for i, r := range d.target {
		if i < d.resolved {
			d.display[i] = r
			continue
		}
		d.display[i] = d.randomSymbol()
	}
	return string(d.display), d.Done()
}

func (d *Decrypter) randomSymbol() rune {
	// Alphabet is ASCII, so byte index == rune index.
	return rune(Alphabet[d.rng.IntN(len(Alphabet))])
}

// Display returns the current text.
func (d *Decrypter) Display() string {
	return string(d.display)
}

// Target returns the text being revealed.
func (d *Decrypter) Target() string {
	return string(d.target)
}

// Resolved returns how many leading characters are final.
func (d *Decrypter) Resolved() int {
	return d.resolved
}

// Len returns the target length in runes.
func (d *Decrypter) Len() int {
	return len(d.target)
}

// Done reports whether every character is resolved.
func (d *Decrypter) Done() bool {
	return d.resolved >= len(d.target)
}

// DecryptText drives a Decrypter from frame time. Call Update once per frame
// with the elapsed time; one tick fires for each Interval that has passed.
// Changing the text or interval restarts the reveal from zero.
type DecryptText struct {
	dec      *Decrypter
	interval time.Duration
	elapsed  time.Duration
	ticking  bool

	// OnTick, if set, is called with the display after every tick.
	OnTick func(display string)
	// OnDone, if set, is called once when the reveal completes.
	OnDone func(text string)
}

// NewDecryptText starts a reveal of text. interval <= 0 uses
// DefaultDecryptInterval.
func NewDecryptText(text string, interval time.Duration, rng Rand) *DecryptText {
	if interval <= 0 {
		interval = DefaultDecryptInterval
	}
	return &DecryptText{
		dec:      NewDecrypter(text, rng),
		interval: interval,
		ticking:  true,
	}
}

// Text returns the target text.
func (t *DecryptText) Text() string { return t.dec.Target() }

// Interval returns the tick interval.
func (t *DecryptText) Interval() time.Duration { return t.interval }

// Display returns the current display text.
func (t *DecryptText) Display() string { return t.dec.Display() }

// Resolved returns how many leading characters are final.
func (t *DecryptText) Resolved() int { return t.dec.Resolved() }

// Done reports whether the reveal finished and the timer stopped.
func (t *DecryptText) Done() bool { return !t.ticking }

// SetText restarts the reveal with a new target. Setting the current text
// is a no-op.
func (t *DecryptText) SetText(text string) {
	if text == t.dec.Target() {
		return
	}
	t.restart(text)
}

// SetInterval changes the tick interval and restarts the reveal. Setting
// the current interval is a no-op.
func (t *DecryptText) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultDecryptInterval
	}
	if interval == t.interval {
		return
	}
	t.interval = interval
	t.restart(t.dec.Target())
}

// Replay restarts the reveal of the current text.
func (t *DecryptText) Replay() {
	t.restart(t.dec.Target())
}

func (t *DecryptText) restart(text string) {
	t.dec.Reset(text)
	t.elapsed = 0
	t.ticking = true
}

// Update advances the timer by dt and fires any due ticks.
func (t *DecryptText) Update(dt time.Duration) {
	if !t.ticking {
		return
	}
	t.elapsed += dt
	for t.ticking && t.elapsed >= t.interval {
		t.elapsed -= t.interval
		t.tick()
	}
}

func (t *DecryptText) tick() {
	display, done := t.dec.Tick()
	if t.OnTick != nil {
		t.OnTick(display)
	}
	if done {
		t.ticking = false
		t.elapsed = 0
		if t.OnDone != nil {
			t.OnDone(t.dec.Target())
		}
	}
}
