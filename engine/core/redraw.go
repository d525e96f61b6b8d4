package core

import "sync/atomic"

// RedrawScheduler coalesces redraw requests into a single pending frame.
// Any number of QueueNextFrame calls between two ShouldDraw calls produce
// exactly one draw. The flag is atomic so the contract holds even if a
// render thread is ever split off the event loop.
//
// The scheduler is owned by the frame loop and handed to the translator;
// there is deliberately no package-level instance.
type RedrawScheduler struct {
	pending atomic.Bool
}

func NewRedrawScheduler() *RedrawScheduler { return &RedrawScheduler{} }

// QueueNextFrame marks a redraw as owed. Idempotent.
func (s *RedrawScheduler) QueueNextFrame() { s.pending.Store(true) }

// ShouldDraw reports whether a redraw is owed and consumes the request:
// it returns true once per queued frame, then false until queued again.
func (s *RedrawScheduler) ShouldDraw() bool { return s.pending.Swap(false) }
