package ecs

import (
	"github.com/oelamrani/warp"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SceneEventType is the Donburi event type for warp scene events.
var SceneEventType = events.NewEventType[warp.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on SceneEventType and delivered when the world calls
// ProcessEvents.
func NewDonburiSink(world donburi.World) warp.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) Emit(event warp.Event) {
	SceneEventType.Publish(s.world, event)
}
