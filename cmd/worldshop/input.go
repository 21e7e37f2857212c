package main

import (
	"worldshop/internal/camera"
	"worldshop/internal/input"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func mapButton(button glfw.MouseButton) (camera.Button, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return camera.ButtonPrimary, true
	case glfw.MouseButtonRight:
		return camera.ButtonSecondary, true
	case glfw.MouseButtonMiddle:
		return camera.ButtonMiddle, true
	default:
		return 0, false
	}
}

func mapMods(mods glfw.ModifierKey) camera.Mods {
	return camera.Mods{
		Control: mods&glfw.ModControl != 0,
		Shift:   mods&glfw.ModShift != 0,
		Super:   mods&glfw.ModSuper != 0,
	}
}

func setupInputHandlers(window *glfw.Window, loop *ViewerLoop, components *ViewerComponents, im *input.Manager) {
	controller := components.Controller
	r := components.Renderer

	// Cursor feeds the active drag, if any.
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		controller.PointerMove(xpos, ypos)
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		// Update input manager state first
		im.HandleMouseButtonEvent(button, action)

		btn, ok := mapButton(button)
		if !ok {
			return
		}
		switch action {
		case glfw.Press:
			// Manual camera input cancels a running tour.
			components.Tour.Stop()
			x, y := w.GetCursorPos()
			controller.PointerDown(btn, mapMods(mods), x, y)
		case glfw.Release:
			controller.PointerUp()
		}
	})

	window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		components.Tour.Stop()
		controller.Wheel(yoff)
	})

	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleKeyEvent(key, action)
	})

	// Framebuffer size callback
	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		winW, winH := w.GetSize()
		r.UpdateViewport(winW, winH)
		controller.SetViewport(float64(winW), float64(winH))
		loop.RequestRedraw()
	})

	// Window size callback
	window.SetSizeCallback(func(w *glfw.Window, width, height int) {
		r.UpdateViewport(width, height)
		controller.SetViewport(float64(width), float64(height))
		loop.RequestRedraw()
	})

	// Refresh callback (called during window resize to prevent visual glitches)
	window.SetRefreshCallback(func(w *glfw.Window) {
		loop.RefreshRender()
	})
}
