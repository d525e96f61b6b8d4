package core

import (
	"fmt"
	"log"
	"runtime"
	"time"
)

// frameInput is the keyboard state buffered while draining one batch of raw
// events. Key-down and text-input notifications for the same press arrive as
// separate raw events; they are flushed through the translator once per
// frame so the encoder sees both halves together.
type frameInput struct {
	key          Key
	text         string
	suppressText bool
	stop         bool
}

// routeEvent sends one raw event to its translator operation. Quit sets
// stop: the rest of the batch must not be dispatched.
func routeEvent(t *Translator, scheduler *RedrawScheduler, ev RawEvent, in *frameInput) {
	switch e := ev.(type) {
	case RawQuit:
		t.HandleQuit()
		in.stop = true
	case RawKeyDown:
		in.key = e.Key
	case RawTextInput:
		in.text = e.Text
	case RawMouseMotion:
		t.HandleMouseMotion(e.X, e.Y)
	case RawMouseDown:
		t.HandleMouseDown()
	case RawMouseUp:
		t.HandleMouseUp()
	case RawMouseWheel:
		t.HandleMouseWheel(e.Dx, e.Dy)
	case RawFocusLost:
		t.HandleFocusLost()
	case RawFocusGained:
		// Ignore text events on the frame focus comes back; some platforms
		// synthesize key echoes on focus regain.
		in.suppressText = true
		t.HandleFocusGained()
	case RawWindowEvent:
		scheduler.QueueNextFrame()
	}
}

// dispatchBatch routes a drained batch in delivery order, then flushes the
// buffered keyboard input unless suppressed. Returns true when the loop
// must stop; no event after a quit is dispatched.
func dispatchBatch(t *Translator, scheduler *RedrawScheduler, batch []RawEvent) (stop bool) {
	var in frameInput
	for _, ev := range batch {
		routeEvent(t, scheduler, ev, &in)
		if in.stop {
			return true
		}
	}
	if !in.suppressText {
		t.HandleKeyboardInput(in.key, in.text)
	}
	return false
}

// drawFrame recomputes the logical size, runs resize bookkeeping when it
// changed and renders if a redraw is owed.
func drawFrame(t *Translator, win Window, rend Renderer, scheduler *RedrawScheduler) {
	w, h := win.LogicalSize()
	if w != t.prevW || h != t.prevH {
		t.HandleResize(w, h)
		if w >= 1 && h >= 1 {
			rend.Resize(int(w), int(h))
		}
	}

	if scheduler.ShouldDraw() {
		rend.DrawFrame()
	}
}

// frameDelay returns how long the loop must still sleep to hold the pacing
// floor. Frames over budget get zero delay and no catch-up: the next frame
// runs on its own full budget.
func frameDelay(elapsed, budget time.Duration) time.Duration {
	if elapsed >= budget {
		return 0
	}
	return budget - elapsed
}

// Run wires the platform window and renderer and executes the frame loop:
// poll, translate, draw, pace. It blocks until a quit event, abandoning the
// rest of that event batch and rendering no further frame, then returns so
// the caller can exit the process. Initialization failures are fatal and
// returned before the loop starts.
func Run(handler EventHandler, cfg Config, newWindow func(Config) (Window, error), newRenderer func(Window, Config) (Renderer, error)) error {
	// Window and GL context require the main OS thread.
	runtime.LockOSThread()

	win, err := newWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer win.Destroy()

	rend, err := newRenderer(win, cfg)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer rend.Shutdown()

	scheduler := NewRedrawScheduler()
	t := NewTranslator(win, handler, scheduler, cfg)

	budget := cfg.FrameDuration
	if budget <= 0 {
		budget = DefaultFrameDuration
	}

	log.Println("starting window event loop")

	for {
		frameStart := time.Now()

		win.PollEvents()
		if dispatchBatch(t, scheduler, win.DrainEvents()) {
			return nil
		}

		drawFrame(t, win, rend, scheduler)

		if d := frameDelay(time.Since(frameStart), budget); d > 0 {
			time.Sleep(d)
		}
	}
}
