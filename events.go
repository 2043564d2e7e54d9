package slider

// EventType identifies a slider event.
type EventType uint8

const (
	EventIndexChange        EventType = iota // active index changed
	EventFirstVisibleChange                  // visible window moved
	EventDragStart                           // page or zoomed item drag began
	EventDragEnd                             // drag released
	EventPinch                               // pinch update on an item
	EventTap                                 // tap on an item
	EventLightboxOpen                        // lightbox opened
	EventLightboxClose                       // lightbox closed
)

var eventNames = [...]string{
	EventIndexChange:        "index-change",
	EventFirstVisibleChange: "first-visible-change",
	EventDragStart:          "drag-start",
	EventDragEnd:            "drag-end",
	EventPinch:              "pinch",
	EventTap:                "tap",
	EventLightboxOpen:       "lightbox-open",
	EventLightboxClose:      "lightbox-close",
}

// String returns the event name.
func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is emitted to an EventSink at the end of the Update that produced it.
type Event struct {
	Type     EventType
	Lightbox bool // emitted by the lightbox slider
	Index    int  // active index, tapped or pinched item, or lightbox index
	First    int  // first visible index
	Offset   float64
	Scale    float64
}

// EventSink receives slider events. The ecs sub-package provides a Donburi
// implementation.
type EventSink interface {
	EmitEvent(event Event)
}
