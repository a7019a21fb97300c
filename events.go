package warp

// EventType identifies a kind of lifecycle event.
type EventType uint8

const (
	EventRevealStarted   EventType = iota // a label began revealing its text
	EventRevealCompleted                  // a label finished revealing its text
	EventResized                          // the scene viewport changed size
)

// String returns a short name for logs.
func (t EventType) String() string {
	switch t {
	case EventRevealStarted:
		return "reveal-started"
	case EventRevealCompleted:
		return "reveal-completed"
	case EventResized:
		return "resized"
	}
	return "unknown"
}

// Event carries lifecycle data to an EventSink.
type Event struct {
	Type  EventType
	Label string // label name, for reveal events
	Text  string // target text, for reveal events
	// Width and Height are the new viewport size, for EventResized.
	Width, Height int
}

// EventSink receives scene lifecycle events. When set on a Scene, events are
// emitted synchronously from Update and Layout.
type EventSink interface {
	Emit(event Event)
}
