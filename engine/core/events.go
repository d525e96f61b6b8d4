package core

// Direction of a scroll event.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Event is the canonical, platform-independent event delivered to the
// embedding application. Coordinates are in logical units, not device pixels.
type Event interface{ isEvent() }

type EventQuit struct{}

func (EventQuit) isEvent() {}

type EventKeyInput struct{ Token string }

func (EventKeyInput) isEvent() {}

type EventMouseDragged struct{ X, Y uint32 }

func (EventMouseDragged) isEvent() {}

type EventMousePressed struct{ X, Y uint32 }

func (EventMousePressed) isEvent() {}

type EventMouseReleased struct{ X, Y uint32 }

func (EventMouseReleased) isEvent() {}

type EventScroll struct {
	Dir  Direction
	X, Y uint32
}

func (EventScroll) isEvent() {}

type EventFocusLost struct{}

func (EventFocusLost) isEvent() {}

type EventFocusGained struct{}

func (EventFocusGained) isEvent() {}

// EventHandler receives canonical events, synchronously and in platform
// delivery order. Handlers must not block; the whole loop stalls while a
// handler runs. Events are not retained past the call.
type EventHandler interface {
	HandleEvent(ev Event)
}

// EventHandlerFunc adapts a function to the EventHandler interface.
type EventHandlerFunc func(Event)

func (f EventHandlerFunc) HandleEvent(ev Event) { f(ev) }
