//go:build windows

package platform

import "github.com/go-gl/glfw/v3.3/glfw"

// Windows won't let a resizable window grow to cover the monitor during a
// borderless-fullscreen transition, so resizability is toggled around it.
func (g *GLFWWindow) SetResizable(resizable bool) {
	v := glfw.False
	if resizable {
		v = glfw.True
	}
	g.w.SetAttrib(glfw.Resizable, v)
}
