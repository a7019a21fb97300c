package warp

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestAlphabet(t *testing.T) {
	if n := utf8.RuneCountInString(Alphabet); n != 64 {
		t.Fatalf("len(Alphabet) = %d, want 64", n)
	}
	seen := map[rune]bool{}
	for _, r := range Alphabet {
		if seen[r] {
			t.Fatalf("duplicate symbol %q", r)
		}
		seen[r] = true
	}
}

func TestNewDecrypterStartsBlank(t *testing.T) {
	d := NewDecrypter("HELLO", NewRand(1))
	if got := d.Display(); got != "     " {
		t.Errorf("Display() = %q, want 5 spaces", got)
	}
	if d.Resolved() != 0 || d.Done() {
		t.Errorf("Resolved() = %d, Done() = %v before any tick", d.Resolved(), d.Done())
	}
}

func TestDecrypterHelloCompletesOnFifthTick(t *testing.T) {
	d := NewDecrypter("HELLO", NewRand(1))
	var display string
	var done bool
	for i := 1; i <= 5; i++ {
		display, done = d.Tick()
		if !strings.HasPrefix(display, "HELLO"[:i]) {
			t.Fatalf("tick %d: display %q lacks prefix %q", i, display, "HELLO"[:i])
		}
		if d.Resolved() != i {
			t.Fatalf("tick %d: Resolved() = %d", i, d.Resolved())
		}
		if done != (i == 5) {
			t.Fatalf("tick %d: done = %v", i, done)
		}
	}
	if display != "HELLO" {
		t.Fatalf("final display = %q, want HELLO", display)
	}

	display, done = d.Tick()
	if display != "HELLO" || !done || d.Resolved() != 5 {
		t.Errorf("extra tick = (%q, %v), resolved %d", display, done, d.Resolved())
	}
}

func TestDecrypterUnresolvedFromAlphabet(t *testing.T) {
	target := "PORTFOLIO ENGINEER"
	d := NewDecrypter(target, NewRand(9))
	for tick := 1; !d.Done(); tick++ {
		display, _ := d.Tick()
		runes := []rune(display)
		if len(runes) != len([]rune(target)) {
			t.Fatalf("tick %d: display length %d", tick, len(runes))
		}
		for i, r := range runes {
			if i < tick {
				if r != rune(target[i]) {
					t.Fatalf("tick %d pos %d: %q, want %q", tick, i, r, target[i])
				}
				continue
			}
			if !strings.ContainsRune(Alphabet, r) {
				t.Fatalf("tick %d pos %d: %q not in Alphabet", tick, i, r)
			}
		}
	}
}

func TestDecrypterEmptyText(t *testing.T) {
	d := NewDecrypter("", NewRand(1))
	display, done := d.Tick()
	if display != "" || !done {
		t.Errorf("Tick() = (%q, %v), want (\"\", true)", display, done)
	}
}

func TestDecrypterUnicode(t *testing.T) {
	d := NewDecrypter("héllo ✦", NewRand(3))
	for i := 0; i < 7; i++ {
		d.Tick()
	}
	if !d.Done() || d.Display() != "héllo ✦" {
		t.Errorf("Display() = %q, Done() = %v", d.Display(), d.Done())
	}
	if d.Len() != 7 {
		t.Errorf("Len() = %d, want 7 runes", d.Len())
	}
}

func TestDecrypterReset(t *testing.T) {
	d := NewDecrypter("AB", NewRand(1))
	d.Tick()
	d.Reset("XYZ")
	if d.Resolved() != 0 || d.Display() != "   " || d.Target() != "XYZ" {
		t.Fatalf("after Reset: resolved %d display %q target %q", d.Resolved(), d.Display(), d.Target())
	}
	display, _ := d.Tick()
	if display[0] != 'X' {
		t.Errorf("first tick after reset = %q, want X prefix", display)
	}
}

// --- DecryptText ---

func TestDecryptTextTicksPerInterval(t *testing.T) {
	dt := NewDecryptText("HELLO", 30*time.Millisecond, NewRand(2))
	var ticks []string
	var finished []string
	dt.OnTick = func(s string) { ticks = append(ticks, s) }
	dt.OnDone = func(s string) { finished = append(finished, s) }

	dt.Update(29 * time.Millisecond)
	if len(ticks) != 0 {
		t.Fatalf("ticked before interval elapsed")
	}
	dt.Update(1 * time.Millisecond)
	if len(ticks) != 1 || dt.Resolved() != 1 {
		t.Fatalf("after 30ms: %d ticks, resolved %d", len(ticks), dt.Resolved())
	}

	// A long frame fires several ticks.
	dt.Update(90 * time.Millisecond)
	if dt.Resolved() != 4 {
		t.Fatalf("after 120ms: resolved %d, want 4", dt.Resolved())
	}
	if dt.Done() {
		t.Fatal("done too early")
	}

	dt.Update(time.Second)
	if !dt.Done() || dt.Display() != "HELLO" {
		t.Fatalf("Done() = %v, Display() = %q", dt.Done(), dt.Display())
	}
	if len(ticks) != 5 {
		t.Errorf("ticks = %d, want 5", len(ticks))
	}
	if len(finished) != 1 || finished[0] != "HELLO" {
		t.Errorf("OnDone calls = %v", finished)
	}

	dt.Update(time.Second)
	if len(ticks) != 5 || len(finished) != 1 {
		t.Error("ticked after completion")
	}
}

func TestDecryptTextSetTextRestarts(t *testing.T) {
	dt := NewDecryptText("AB", 10*time.Millisecond, NewRand(4))
	dt.Update(10 * time.Millisecond)
	if dt.Resolved() != 1 {
		t.Fatalf("resolved %d, want 1", dt.Resolved())
	}

	dt.SetText("XYZ")
	if dt.Resolved() != 0 || dt.Text() != "XYZ" || dt.Done() {
		t.Fatalf("after SetText: resolved %d text %q done %v", dt.Resolved(), dt.Text(), dt.Done())
	}
	dt.Update(5 * time.Millisecond)
	if dt.Resolved() != 0 {
		t.Fatal("elapsed time carried over from the previous text")
	}
	dt.Update(25 * time.Millisecond)
	if !dt.Done() || dt.Display() != "XYZ" {
		t.Errorf("Display() = %q, Done() = %v", dt.Display(), dt.Done())
	}
}

func TestDecryptTextSameTextIsNoop(t *testing.T) {
	dt := NewDecryptText("AB", 10*time.Millisecond, NewRand(4))
	dt.Update(10 * time.Millisecond)
	dt.SetText("AB")
	if dt.Resolved() != 1 {
		t.Errorf("resolved %d after same-text SetText, want 1", dt.Resolved())
	}
}

func TestDecryptTextSetIntervalRestarts(t *testing.T) {
	dt := NewDecryptText("ABC", 0, NewRand(4))
	if dt.Interval() != DefaultDecryptInterval {
		t.Fatalf("Interval() = %v, want default", dt.Interval())
	}
	dt.Update(DefaultDecryptInterval)

	dt.SetInterval(DefaultDecryptInterval)
	if dt.Resolved() != 1 {
		t.Fatal("same interval should not restart")
	}
	dt.SetInterval(5 * time.Millisecond)
	if dt.Resolved() != 0 || dt.Interval() != 5*time.Millisecond {
		t.Fatalf("resolved %d interval %v", dt.Resolved(), dt.Interval())
	}
}

func TestDecryptTextReplay(t *testing.T) {
	dt := NewDecryptText("OK", 10*time.Millisecond, NewRand(4))
	dt.Update(time.Second)
	if !dt.Done() {
		t.Fatal("expected done")
	}
	dt.Replay()
	if dt.Done() || dt.Resolved() != 0 {
		t.Errorf("after Replay: done %v resolved %d", dt.Done(), dt.Resolved())
	}
}
