package ecs

import (
	"testing"
	"time"

	"github.com/oelamrani/warp"

	"github.com/yohamta/donburi"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	if NewDonburiSink(world) == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []warp.Event
	SceneEventType.Subscribe(world, func(w donburi.World, e warp.Event) {
		received = append(received, e)
	})

	sink.Emit(warp.Event{Type: warp.EventRevealStarted, Label: "first", Text: "OUSSAMA"})
	sink.Emit(warp.Event{Type: warp.EventResized, Width: 1280, Height: 720})

	if len(received) != 0 {
		t.Fatalf("events delivered before ProcessEvents: %d", len(received))
	}
	SceneEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != warp.EventRevealStarted || e.Text != "OUSSAMA" {
		t.Errorf("event 0: %+v", e)
	}
	if e := received[1]; e.Type != warp.EventResized || e.Width != 1280 || e.Height != 720 {
		t.Errorf("event 1: %+v", e)
	}
}

func TestDonburiSink_LabelLifecycle(t *testing.T) {
	world := donburi.NewWorld()

	var types []warp.EventType
	SceneEventType.Subscribe(world, func(w donburi.World, e warp.Event) {
		types = append(types, e.Type)
	})

	scene := warp.NewScene(nil)
	scene.SetEventSink(NewDonburiSink(world))
	label := warp.NewLabel("name", "HI", nil, 10*time.Millisecond, warp.NewRand(1))
	scene.AddLabel(label)
	label.SetText("YO")

	SceneEventType.ProcessEvents(world)

	want := []warp.EventType{warp.EventRevealStarted, warp.EventRevealStarted}
	if len(types) != len(want) {
		t.Fatalf("got %v, want %v", types, want)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("event %d = %v, want %v", i, types[i], want[i])
		}
	}
}
