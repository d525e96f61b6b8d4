package glbackend

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/vide/engine/core"
)

// RendererGL is the minimal GL-backed implementation of core.Renderer: it
// owns the viewport and presents frames when the loop asks. Everything the
// application draws happens between clear and swap, outside this layer.
type RendererGL struct {
	win   core.Window
	clear [4]float32
}

func NewRendererGL(win core.Window, cfg core.Config) (*RendererGL, error) {
	r := &RendererGL{win: win, clear: cfg.ClearColor}
	if err := r.Init(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *RendererGL) Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Printf("GL: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	return nil
}

func (r *RendererGL) Resize(w, h int) {
	gl.Viewport(0, 0, int32(w), int32(h))
}

// DrawFrame presents one frame: clear, then swap.
func (r *RendererGL) DrawFrame() {
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	r.win.SwapBuffers()
}

func (r *RendererGL) Shutdown() {}
