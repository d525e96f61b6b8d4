package core

// RawEvent is a platform notification as delivered by the window system,
// before translation. The platform layer queues these during PollEvents and
// the frame loop drains them in delivery order.
type RawEvent interface{ isRawEvent() }

type RawQuit struct{}

func (RawQuit) isRawEvent() {}

type RawKeyDown struct{ Key Key }

func (RawKeyDown) isRawEvent() {}

type RawTextInput struct{ Text string }

func (RawTextInput) isRawEvent() {}

// RawMouseMotion carries the cursor position in device pixels.
type RawMouseMotion struct{ X, Y int }

func (RawMouseMotion) isRawEvent() {}

type RawMouseDown struct{}

func (RawMouseDown) isRawEvent() {}

type RawMouseUp struct{}

func (RawMouseUp) isRawEvent() {}

type RawMouseWheel struct{ Dx, Dy float64 }

func (RawMouseWheel) isRawEvent() {}

type RawFocusLost struct{}

func (RawFocusLost) isRawEvent() {}

type RawFocusGained struct{}

func (RawFocusGained) isRawEvent() {}

// RawWindowEvent is any other window activity (moved, exposed, iconified,
// maximized, framebuffer resized). Unclassified window activity is treated
// as redraw-worthy by the loop.
type RawWindowEvent struct{}

func (RawWindowEvent) isRawEvent() {}
