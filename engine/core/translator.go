package core

import "log"

// Translator turns raw platform events into canonical events and keeps the
// window/input bookkeeping that translation needs: mouse button state, the
// last logical mouse position, the fullscreen flag and the geometry cached
// across a fullscreen round trip.
//
// All state is owned by the loop thread; no locking.
type Translator struct {
	win       Window
	handler   EventHandler
	scheduler *RedrawScheduler
	cellSize  float64

	mouseDown        bool
	mouseX, mouseY   uint32
	fullscreen       bool
	cachedW, cachedH uint32
	cachedX, cachedY int
	prevW, prevH     uint32
	title            string
}

// NewTranslator builds a translator over the given collaborators. The
// initial logical size seeds resize detection; cellSize <= 0 falls back to
// the placeholder scale.
func NewTranslator(win Window, handler EventHandler, scheduler *RedrawScheduler, cfg Config) *Translator {
	cell := cfg.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	w, h := cfg.InitialLogicalSize()
	return &Translator{
		win:       win,
		handler:   handler,
		scheduler: scheduler,
		cellSize:  cell,
		prevW:     w,
		prevH:     h,
		title:     cfg.Title,
	}
}

func (t *Translator) emit(ev Event) { t.handler.HandleEvent(ev) }

func (t *Translator) HandleQuit() { t.emit(EventQuit{}) }

// HandleKeyboardInput encodes the buffered key/text pair for this frame and
// emits at most one token. Modifier state is queried from the platform at
// dispatch time, matching what is held when the frame's input is flushed.
func (t *Translator) HandleKeyboardInput(key Key, text string) {
	mods := t.win.Modifiers()
	if token, ok := EncodeKeybinding(key, text, mods); ok {
		t.emit(EventKeyInput{Token: token})
	}
}

// HandleMouseMotion converts the device-pixel cursor position to logical
// units and, while the button is held, emits a drag for every logical cell
// the cursor crosses. Sub-cell jitter produces nothing. Coordinates go
// negative when the cursor is dragged past the window edge; they clamp to
// cell zero.
func (t *Translator) HandleMouseMotion(x, y int) {
	prevX, prevY := t.mouseX, t.mouseY
	scale := t.win.ScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	t.mouseX = uint32(float64(x) / t.cellSize / scale)
	t.mouseY = uint32(float64(y) / t.cellSize / scale)

	if t.mouseDown && (t.mouseX != prevX || t.mouseY != prevY) {
		t.emit(EventMouseDragged{X: t.mouseX, Y: t.mouseY})
	}
}

func (t *Translator) HandleMouseDown() {
	t.emit(EventMousePressed{X: t.mouseX, Y: t.mouseY})
	t.mouseDown = true
}

func (t *Translator) HandleMouseUp() {
	t.emit(EventMouseReleased{X: t.mouseX, Y: t.mouseY})
	t.mouseDown = false
}

// HandleMouseWheel decomposes a wheel delta into its axes. A diagonal wheel
// event emits twice: horizontal first, then vertical.
func (t *Translator) HandleMouseWheel(dx, dy float64) {
	if dx > 0 {
		t.emit(EventScroll{Dir: DirRight, X: t.mouseX, Y: t.mouseY})
	} else if dx < 0 {
		t.emit(EventScroll{Dir: DirLeft, X: t.mouseX, Y: t.mouseY})
	}

	if dy > 0 {
		t.emit(EventScroll{Dir: DirUp, X: t.mouseX, Y: t.mouseY})
	} else if dy < 0 {
		t.emit(EventScroll{Dir: DirDown, X: t.mouseX, Y: t.mouseY})
	}
}

func (t *Translator) HandleFocusLost() { t.emit(EventFocusLost{}) }

// HandleFocusGained also queues a redraw: the content may have changed
// while the window was unfocused.
func (t *Translator) HandleFocusGained() {
	t.emit(EventFocusGained{})
	t.scheduler.QueueNextFrame()
}

// ToggleFullscreen switches between windowed and fullscreen. Entering
// captures the current geometry and grows the window to the monitor under
// it; exiting restores the capture. Platform geometry calls are best-effort;
// a failure leaves geometry as-is but the flag still flips.
func (t *Translator) ToggleFullscreen() {
	if t.fullscreen {
		t.win.SetResizable(true)
		if err := t.win.SetSize(t.cachedW, t.cachedH); err != nil {
			log.Printf("fullscreen exit: restore size: %v", err)
		}
		t.win.SetPosition(t.cachedX, t.cachedY)
	} else {
		t.cachedW, t.cachedH = t.win.Size()
		t.cachedX, t.cachedY = t.win.Position()

		if bounds, err := t.win.DisplayBounds(); err == nil {
			t.win.SetResizable(false)
			if err := t.win.SetSize(bounds.W, bounds.H); err != nil {
				log.Printf("fullscreen enter: resize: %v", err)
			}
			t.win.SetPosition(bounds.X, bounds.Y)
		} else {
			log.Printf("fullscreen enter: display bounds: %v", err)
		}
	}

	t.fullscreen = !t.fullscreen
	t.scheduler.QueueNextFrame()
}

// HandleResize records the new logical size. No canonical event is emitted;
// the renderer reacts to size during the draw step, but a redraw is owed.
func (t *Translator) HandleResize(w, h uint32) {
	t.prevW, t.prevH = w, h
	t.scheduler.QueueNextFrame()
}

// MousePosition returns the last observed logical mouse position.
func (t *Translator) MousePosition() (uint32, uint32) { return t.mouseX, t.mouseY }

// Fullscreen reports whether the window is currently fullscreen.
func (t *Translator) Fullscreen() bool { return t.fullscreen }
