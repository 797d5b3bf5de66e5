package card

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Input edge-detects mouse buttons and maps the cursor into framebuffer
// pixel space (window and framebuffer sizes differ on HiDPI).
type Input struct {
	prevMouse map[glfw.MouseButton]bool
}

func NewInput() *Input {
	return &Input{
		prevMouse: make(map[glfw.MouseButton]bool),
	}
}

// ButtonEdge reports (pressedThisFrame, releasedThisFrame) for a button.
func (in *Input) ButtonEdge(window *glfw.Window, btn glfw.MouseButton) (bool, bool) {
	down := window.GetMouseButton(btn) == glfw.Press
	was := in.prevMouse[btn]
	in.prevMouse[btn] = down
	return down && !was, was && !down
}

// CursorPos returns the cursor in framebuffer pixel coordinates.
func CursorPos(window *glfw.Window, fbW, fbH int) (float64, float64) {
	cx, cy := window.GetCursorPos()
	winW, winH := window.GetSize()
	if winW <= 0 || winH <= 0 {
		return cx, cy
	}
	scaleX := float64(fbW) / float64(winW)
	scaleY := float64(fbH) / float64(winH)
	return cx * scaleX, cy * scaleY
}
