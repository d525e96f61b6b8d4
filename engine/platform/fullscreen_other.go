//go:build !windows

package platform

// No fullscreen transition quirk outside Windows.
func (g *GLFWWindow) SetResizable(resizable bool) {}
