package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeWindow implements Window for tests. Geometry mutations are recorded so
// fullscreen round trips can be asserted.
type fakeWindow struct {
	events    []RawEvent
	mods      Modifiers
	w, h      uint32
	x, y      int
	bounds    Rect
	boundsErr error
	sizeErr   error
	scale     float64
	logW      uint32
	logH      uint32
	resizable []bool
	title     string
	swaps     int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{w: 800, h: 600, x: 10, y: 20, scale: 1,
		bounds: Rect{X: 0, Y: 0, W: 1920, H: 1080}}
}

func (f *fakeWindow) PollEvents() {}
func (f *fakeWindow) DrainEvents() []RawEvent {
	evs := f.events
	f.events = nil
	return evs
}
func (f *fakeWindow) Modifiers() Modifiers   { return f.mods }
func (f *fakeWindow) Size() (uint32, uint32) { return f.w, f.h }
func (f *fakeWindow) SetSize(w, h uint32) error {
	if f.sizeErr != nil {
		return f.sizeErr
	}
	f.w, f.h = w, h
	return nil
}
func (f *fakeWindow) Position() (int, int) { return f.x, f.y }
func (f *fakeWindow) SetPosition(x, y int) { f.x, f.y = x, y }
func (f *fakeWindow) DisplayBounds() (Rect, error) {
	if f.boundsErr != nil {
		return Rect{}, f.boundsErr
	}
	return f.bounds, nil
}
func (f *fakeWindow) SetResizable(r bool)  { f.resizable = append(f.resizable, r) }
func (f *fakeWindow) ScaleFactor() float64 { return f.scale }
func (f *fakeWindow) LogicalSize() (uint32, uint32) {
	if f.logW != 0 || f.logH != 0 {
		return f.logW, f.logH
	}
	return f.w, f.h
}
func (f *fakeWindow) SetTitle(t string) { f.title = t }
func (f *fakeWindow) SwapBuffers()      { f.swaps++ }
func (f *fakeWindow) Destroy()          {}

// recorder collects emitted canonical events.
type recorder struct{ events []Event }

func (r *recorder) HandleEvent(ev Event) { r.events = append(r.events, ev) }

func newTestTranslator(win *fakeWindow) (*Translator, *recorder, *RedrawScheduler) {
	rec := &recorder{}
	sched := NewRedrawScheduler()
	cfg := Config{Columns: 64, Rows: 64}
	return NewTranslator(win, rec, sched, cfg), rec, sched
}

func TestMouseMotionWithoutButtonNeverDrags(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleMouseMotion(100, 100)
	tr.HandleMouseMotion(300, 300)

	assert.Empty(t, rec.events)
	x, y := tr.MousePosition()
	assert.Equal(t, uint32(30), x)
	assert.Equal(t, uint32(30), y)
}

func TestMouseDragEmitsOncePerCellChange(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleMouseDown()
	assert.Equal(t, []Event{EventMousePressed{X: 0, Y: 0}}, rec.events)
	rec.events = nil

	tr.HandleMouseMotion(25, 35)
	assert.Equal(t, []Event{EventMouseDragged{X: 2, Y: 3}}, rec.events)
	rec.events = nil

	// Same logical cell: sub-cell jitter emits nothing.
	tr.HandleMouseMotion(26, 36)
	tr.HandleMouseMotion(29, 39)
	assert.Empty(t, rec.events)

	tr.HandleMouseMotion(45, 35)
	assert.Equal(t, []Event{EventMouseDragged{X: 4, Y: 3}}, rec.events)
}

func TestMouseUpStopsDragging(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleMouseDown()
	tr.HandleMouseUp()
	assert.Equal(t, []Event{
		EventMousePressed{X: 0, Y: 0},
		EventMouseReleased{X: 0, Y: 0},
	}, rec.events)
	rec.events = nil

	tr.HandleMouseMotion(100, 100)
	assert.Empty(t, rec.events)
}

func TestMouseMotionClampsNegativeCoordinates(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	// Drag past the window edge: the platform reports negative pixels.
	tr.HandleMouseMotion(55, 50)
	tr.HandleMouseDown()
	rec.events = nil

	tr.HandleMouseMotion(-15, 50)
	assert.Equal(t, []Event{EventMouseDragged{X: 0, Y: 5}}, rec.events)
	rec.events = nil

	tr.HandleMouseMotion(-30, -40)
	assert.Equal(t, []Event{EventMouseDragged{X: 0, Y: 0}}, rec.events)
	rec.events = nil

	// Still at cell zero: no event.
	tr.HandleMouseMotion(-100, -1)
	assert.Empty(t, rec.events)
}

func TestMouseMotionHonorsScaleFactor(t *testing.T) {
	win := newFakeWindow()
	win.scale = 2
	tr, _, _ := newTestTranslator(win)

	tr.HandleMouseMotion(100, 200)
	x, y := tr.MousePosition()
	assert.Equal(t, uint32(5), x)
	assert.Equal(t, uint32(10), y)
}

func TestWheelVerticalOnly(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleMouseWheel(0, 5)
	assert.Equal(t, []Event{EventScroll{Dir: DirUp, X: 0, Y: 0}}, rec.events)
}

func TestWheelDiagonalEmitsBothAxes(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleMouseWheel(-3, -2)
	assert.Equal(t, []Event{
		EventScroll{Dir: DirLeft, X: 0, Y: 0},
		EventScroll{Dir: DirDown, X: 0, Y: 0},
	}, rec.events)
}

func TestWheelZeroEmitsNothing(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleMouseWheel(0, 0)
	assert.Empty(t, rec.events)
}

func TestWheelCarriesMousePosition(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleMouseMotion(50, 70)
	tr.HandleMouseWheel(0, 1)
	assert.Equal(t, []Event{EventScroll{Dir: DirUp, X: 5, Y: 7}}, rec.events)
}

func TestFocusGainedQueuesRedraw(t *testing.T) {
	win := newFakeWindow()
	tr, rec, sched := newTestTranslator(win)

	tr.HandleFocusGained()
	assert.Equal(t, []Event{EventFocusGained{}}, rec.events)
	assert.True(t, sched.ShouldDraw())

	rec.events = nil
	tr.HandleFocusLost()
	assert.Equal(t, []Event{EventFocusLost{}}, rec.events)
	assert.False(t, sched.ShouldDraw())
}

func TestKeyboardInputEmitsToken(t *testing.T) {
	win := newFakeWindow()
	win.mods = ModCtrl
	tr, rec, _ := newTestTranslator(win)

	tr.HandleKeyboardInput(KeyA, "")
	assert.Equal(t, []Event{EventKeyInput{Token: "<C-a>"}}, rec.events)
}

func TestKeyboardInputWithNoKeyEmitsNothing(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleKeyboardInput(KeyUnknown, "")
	assert.Empty(t, rec.events)
}

func TestFullscreenRoundTripRestoresGeometry(t *testing.T) {
	win := newFakeWindow()
	tr, _, _ := newTestTranslator(win)

	tr.ToggleFullscreen()
	assert.True(t, tr.Fullscreen())
	assert.Equal(t, uint32(1920), win.w)
	assert.Equal(t, uint32(1080), win.h)
	assert.Equal(t, 0, win.x)
	assert.Equal(t, 0, win.y)
	assert.Equal(t, []bool{false}, win.resizable)

	tr.ToggleFullscreen()
	assert.False(t, tr.Fullscreen())
	assert.Equal(t, uint32(800), win.w)
	assert.Equal(t, uint32(600), win.h)
	assert.Equal(t, 10, win.x)
	assert.Equal(t, 20, win.y)
	assert.Equal(t, []bool{false, true}, win.resizable)
}

func TestFullscreenBestEffortOnBoundsFailure(t *testing.T) {
	win := newFakeWindow()
	win.boundsErr = errors.New("no monitor")
	tr, _, _ := newTestTranslator(win)

	tr.ToggleFullscreen()

	// Geometry untouched, flag flipped anyway.
	assert.True(t, tr.Fullscreen())
	assert.Equal(t, uint32(800), win.w)
	assert.Equal(t, uint32(600), win.h)
	assert.Equal(t, 10, win.x)
	assert.Equal(t, 20, win.y)
}

func TestResizeQueuesRedraw(t *testing.T) {
	win := newFakeWindow()
	tr, rec, sched := newTestTranslator(win)

	tr.HandleResize(100, 50)
	assert.Empty(t, rec.events)
	assert.True(t, sched.ShouldDraw())
	assert.Equal(t, uint32(100), tr.prevW)
	assert.Equal(t, uint32(50), tr.prevH)
}

func TestQuitEmitsQuit(t *testing.T) {
	win := newFakeWindow()
	tr, rec, _ := newTestTranslator(win)

	tr.HandleQuit()
	assert.Equal(t, []Event{EventQuit{}}, rec.events)
}
