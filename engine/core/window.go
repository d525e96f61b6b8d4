package core

import "time"

// Rect is a display region in device pixels.
type Rect struct {
	X, Y int
	W, H uint32
}

// Window is the window-system collaborator. The platform package provides
// the GLFW implementation; tests provide fakes. All methods are called from
// the loop thread only.
type Window interface {
	// PollEvents pumps the platform event queue; delivered events are
	// buffered and returned, in delivery order, by DrainEvents.
	PollEvents()
	DrainEvents() []RawEvent

	// Modifiers reports the modifier keys currently held.
	Modifiers() Modifiers

	// Geometry, in device pixels. SetSize and SetPosition are best-effort
	// during fullscreen transitions; a failure leaves geometry unchanged.
	Size() (uint32, uint32)
	SetSize(w, h uint32) error
	Position() (int, int)
	SetPosition(x, y int)

	// DisplayBounds returns the bounds of the monitor under the window.
	DisplayBounds() (Rect, error)

	// SetResizable works around platforms that refuse fullscreen-sized
	// windows while resizable; a no-op elsewhere.
	SetResizable(resizable bool)

	ScaleFactor() float64
	LogicalSize() (uint32, uint32)

	SetTitle(title string)
	SwapBuffers()
	Destroy()
}

// Renderer is the opaque "render now" collaborator bound to the window
// surface. Its internals are not this layer's concern.
type Renderer interface {
	Init() error
	Resize(w, h int)
	DrawFrame()
	Shutdown()
}

// Config for the window layer.
type Config struct {
	Title string

	// Initial window size in cells; the window opens at
	// Columns*CellSize x Rows*CellSize+1 logical pixels.
	Columns uint32
	Rows    uint32

	// CellSize is the pixel-per-cell scale used for the pixel→logical
	// conversion of pointer coordinates. Injectable so real font metrics
	// can replace the default.
	CellSize float64

	// FrameDuration is the pacing floor per loop iteration.
	FrameDuration time.Duration

	VSync      bool
	ClearColor [4]float32
}

const (
	DefaultCellSize      = 10.0
	DefaultFrameDuration = time.Second / 144
)

// InitialLogicalSize converts the configured cell grid to logical pixels.
func (c Config) InitialLogicalSize() (uint32, uint32) {
	cell := c.CellSize
	if cell <= 0 {
		cell = DefaultCellSize
	}
	return uint32(float64(c.Columns) * cell), uint32(float64(c.Rows)*cell + 1)
}
