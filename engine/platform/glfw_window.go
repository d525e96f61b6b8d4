package platform

import (
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/hubastard/vide/engine/core"
)

// GLFWWindow implements core.Window. GLFW delivers input through callbacks;
// they are buffered here into an ordered queue so the frame loop can drain
// one batch per iteration, preserving delivery order.
type GLFWWindow struct {
	w     *glfw.Window
	queue []core.RawEvent
}

// NewGLFWWindow creates the native window and GL context. Must be called on
// the main thread before any GL calls.
func NewGLFWWindow(cfg core.Config) (*GLFWWindow, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	// GL 3.2+ core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.ScaleToMonitor, glfw.True)

	w, h := cfg.InitialLogicalSize()
	win, err := glfw.CreateWindow(int(w), int(h), cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	log.Println("window created")

	gw := &GLFWWindow{w: win}

	win.SetCloseCallback(func(*glfw.Window) {
		gw.push(core.RawQuit{})
	})
	win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		gw.push(core.RawKeyDown{Key: translateKey(key)})
	})
	win.SetCharCallback(func(_ *glfw.Window, r rune) {
		gw.push(core.RawTextInput{Text: string(r)})
	})
	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		gw.push(core.RawMouseMotion{X: int(x), Y: int(y)})
	})
	win.SetMouseButtonCallback(func(_ *glfw.Window, _ glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			gw.push(core.RawMouseDown{})
		case glfw.Release:
			gw.push(core.RawMouseUp{})
		}
	})
	win.SetScrollCallback(func(_ *glfw.Window, dx, dy float64) {
		gw.push(core.RawMouseWheel{Dx: dx, Dy: dy})
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			gw.push(core.RawFocusGained{})
		} else {
			gw.push(core.RawFocusLost{})
		}
	})

	// Remaining window activity is unclassified but still redraw-worthy.
	win.SetPosCallback(func(_ *glfw.Window, _, _ int) {
		gw.push(core.RawWindowEvent{})
	})
	win.SetSizeCallback(func(_ *glfw.Window, _, _ int) {
		gw.push(core.RawWindowEvent{})
	})
	win.SetRefreshCallback(func(*glfw.Window) {
		gw.push(core.RawWindowEvent{})
	})
	win.SetIconifyCallback(func(_ *glfw.Window, _ bool) {
		gw.push(core.RawWindowEvent{})
	})
	win.SetMaximizeCallback(func(_ *glfw.Window, _ bool) {
		gw.push(core.RawWindowEvent{})
	})

	return gw, nil
}

func (g *GLFWWindow) push(ev core.RawEvent) { g.queue = append(g.queue, ev) }

// core.Window impl

func (g *GLFWWindow) PollEvents() { glfw.PollEvents() }

// DrainEvents returns the events buffered since the last drain, in delivery
// order. The returned slice is valid until the next PollEvents.
func (g *GLFWWindow) DrainEvents() []core.RawEvent {
	evs := g.queue
	g.queue = g.queue[:0]
	return evs
}

// Modifiers polls the modifier keys directly rather than trusting callback
// mod bits, which lag on some platforms when focus changes mid-chord.
func (g *GLFWWindow) Modifiers() core.Modifiers {
	var mods core.Modifiers
	if g.keyHeld(glfw.KeyLeftShift) || g.keyHeld(glfw.KeyRightShift) {
		mods |= core.ModShift
	}
	if g.keyHeld(glfw.KeyLeftControl) || g.keyHeld(glfw.KeyRightControl) {
		mods |= core.ModCtrl
	}
	if g.keyHeld(glfw.KeyLeftAlt) || g.keyHeld(glfw.KeyRightAlt) {
		mods |= core.ModAlt
	}
	if g.keyHeld(glfw.KeyLeftSuper) || g.keyHeld(glfw.KeyRightSuper) {
		mods |= core.ModSuper
	}
	return mods
}

func (g *GLFWWindow) keyHeld(k glfw.Key) bool {
	return g.w.GetKey(k) == glfw.Press
}

func (g *GLFWWindow) Size() (uint32, uint32) {
	w, h := g.w.GetSize()
	return uint32(w), uint32(h)
}

func (g *GLFWWindow) SetSize(w, h uint32) error {
	g.w.SetSize(int(w), int(h))
	return nil
}

func (g *GLFWWindow) Position() (int, int) { return g.w.GetPos() }

func (g *GLFWWindow) SetPosition(x, y int) { g.w.SetPos(x, y) }

// DisplayBounds returns the bounds of the monitor containing the window's
// origin, falling back to the primary monitor.
func (g *GLFWWindow) DisplayBounds() (core.Rect, error) {
	wx, wy := g.w.GetPos()
	var target *glfw.Monitor
	for _, m := range glfw.GetMonitors() {
		mx, my := m.GetPos()
		mode := m.GetVideoMode()
		if mode == nil {
			continue
		}
		if wx >= mx && wx < mx+mode.Width && wy >= my && wy < my+mode.Height {
			target = m
			break
		}
	}
	if target == nil {
		target = glfw.GetPrimaryMonitor()
	}
	if target == nil {
		return core.Rect{}, fmt.Errorf("no monitor available")
	}
	mode := target.GetVideoMode()
	if mode == nil {
		return core.Rect{}, fmt.Errorf("no video mode for monitor %q", target.GetName())
	}
	mx, my := target.GetPos()
	return core.Rect{X: mx, Y: my, W: uint32(mode.Width), H: uint32(mode.Height)}, nil
}

func (g *GLFWWindow) ScaleFactor() float64 {
	sx, _ := g.w.GetContentScale()
	if sx <= 0 {
		return 1
	}
	return float64(sx)
}

func (g *GLFWWindow) LogicalSize() (uint32, uint32) {
	w, h := g.w.GetSize()
	scale := g.ScaleFactor()
	return uint32(float64(w) / scale), uint32(float64(h) / scale)
}

func (g *GLFWWindow) SetTitle(t string) { g.w.SetTitle(t) }

func (g *GLFWWindow) SwapBuffers() { g.w.SwapBuffers() }

func (g *GLFWWindow) Destroy() {
	g.w.Destroy()
	glfw.Terminate()
}

func translateKey(k glfw.Key) core.Key {
	if key, ok := glfwKeys[k]; ok {
		return key
	}
	return core.KeyUnknown
}

var glfwKeys = map[glfw.Key]core.Key{
	glfw.KeyA: core.KeyA, glfw.KeyB: core.KeyB, glfw.KeyC: core.KeyC,
	glfw.KeyD: core.KeyD, glfw.KeyE: core.KeyE, glfw.KeyF: core.KeyF,
	glfw.KeyG: core.KeyG, glfw.KeyH: core.KeyH, glfw.KeyI: core.KeyI,
	glfw.KeyJ: core.KeyJ, glfw.KeyK: core.KeyK, glfw.KeyL: core.KeyL,
	glfw.KeyM: core.KeyM, glfw.KeyN: core.KeyN, glfw.KeyO: core.KeyO,
	glfw.KeyP: core.KeyP, glfw.KeyQ: core.KeyQ, glfw.KeyR: core.KeyR,
	glfw.KeyS: core.KeyS, glfw.KeyT: core.KeyT, glfw.KeyU: core.KeyU,
	glfw.KeyV: core.KeyV, glfw.KeyW: core.KeyW, glfw.KeyX: core.KeyX,
	glfw.KeyY: core.KeyY, glfw.KeyZ: core.KeyZ,

	glfw.Key0: core.Key0, glfw.Key1: core.Key1, glfw.Key2: core.Key2,
	glfw.Key3: core.Key3, glfw.Key4: core.Key4, glfw.Key5: core.Key5,
	glfw.Key6: core.Key6, glfw.Key7: core.Key7, glfw.Key8: core.Key8,
	glfw.Key9: core.Key9,

	glfw.KeySpace: core.KeySpace, glfw.KeyMinus: core.KeyMinus,
	glfw.KeyEqual: core.KeyEquals, glfw.KeyLeftBracket: core.KeyLeftBracket,
	glfw.KeyRightBracket: core.KeyRightBracket, glfw.KeyBackslash: core.KeyBackslash,
	glfw.KeySemicolon: core.KeySemicolon, glfw.KeyApostrophe: core.KeyApostrophe,
	glfw.KeyGraveAccent: core.KeyGrave, glfw.KeyComma: core.KeyComma,
	glfw.KeyPeriod: core.KeyPeriod, glfw.KeySlash: core.KeySlash,

	glfw.KeyEscape: core.KeyEscape, glfw.KeyEnter: core.KeyEnter,
	glfw.KeyTab: core.KeyTab, glfw.KeyBackspace: core.KeyBackspace,
	glfw.KeyDelete: core.KeyDelete, glfw.KeyInsert: core.KeyInsert,

	glfw.KeyUp: core.KeyUp, glfw.KeyDown: core.KeyDown,
	glfw.KeyLeft: core.KeyLeft, glfw.KeyRight: core.KeyRight,
	glfw.KeyHome: core.KeyHome, glfw.KeyEnd: core.KeyEnd,
	glfw.KeyPageUp: core.KeyPageUp, glfw.KeyPageDown: core.KeyPageDown,

	glfw.KeyF1: core.KeyF1, glfw.KeyF2: core.KeyF2, glfw.KeyF3: core.KeyF3,
	glfw.KeyF4: core.KeyF4, glfw.KeyF5: core.KeyF5, glfw.KeyF6: core.KeyF6,
	glfw.KeyF7: core.KeyF7, glfw.KeyF8: core.KeyF8, glfw.KeyF9: core.KeyF9,
	glfw.KeyF10: core.KeyF10, glfw.KeyF11: core.KeyF11, glfw.KeyF12: core.KeyF12,

	glfw.KeyLeftShift: core.KeyLeftShift, glfw.KeyRightShift: core.KeyRightShift,
	glfw.KeyLeftControl: core.KeyLeftControl, glfw.KeyRightControl: core.KeyRightControl,
	glfw.KeyLeftAlt: core.KeyLeftAlt, glfw.KeyRightAlt: core.KeyRightAlt,
	glfw.KeyLeftSuper: core.KeyLeftSuper, glfw.KeyRightSuper: core.KeyRightSuper,
}
