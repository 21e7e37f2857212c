package main

import (
	"fmt"
	"log"
	"time"

	"worldshop/internal/config"
	"worldshop/internal/graphics"
	"worldshop/internal/input"
	"worldshop/internal/profiling"
	"worldshop/pkg/scenefile"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// exportPath is where the export action writes the combined world.
const exportPath = "combined_world.json"

// ViewerLoop manages the main render loop state
type ViewerLoop struct {
	window       *glfw.Window
	components   *ViewerComponents
	inputManager *input.Manager
	fpsLimiter   *FPSLimiter

	// needsRedraw forces a frame even when the camera is at rest, e.g.
	// after an overlay toggle or a resize.
	needsRedraw bool

	// Timing
	frames           int
	lastFPSCheckTime time.Time
	lastTime         time.Time
}

// NewViewerLoop creates a new viewer loop with all components
func NewViewerLoop(window *glfw.Window, components *ViewerComponents, im *input.Manager) *ViewerLoop {
	return &ViewerLoop{
		window:           window,
		components:       components,
		inputManager:     im,
		fpsLimiter:       NewFPSLimiter(),
		needsRedraw:      true,
		lastFPSCheckTime: time.Now(),
		lastTime:         time.Now(),
	}
}

// RequestRedraw forces the next tick to render even if the camera is idle.
func (l *ViewerLoop) RequestRedraw() {
	l.needsRedraw = true
}

// Run starts the main render loop
func (l *ViewerLoop) Run() {
	for !l.window.ShouldClose() {
		l.tick()
	}
}

func (l *ViewerLoop) tick() {
	profiling.ResetFrame()
	now := time.Now()
	dt := now.Sub(l.lastTime).Seconds()
	l.lastTime = now

	// Poll events at start
	func() { defer profiling.Track("glfw.PollEvents")(); glfw.PollEvents() }()

	l.handleInputActions()

	// A running tour drives the focus point and distance each frame.
	if wp, ok := l.components.Tour.Update(dt); ok {
		l.components.Controller.SetTarget(wp.Target)
		l.components.Controller.SetDistance(wp.Distance)
	}

	var moved bool
	func() { defer profiling.Track("camera.Update")(); moved = l.components.Controller.Update() }()

	// Skip the redraw entirely when nothing changed; damping keeps moved
	// true until the camera actually settles.
	if moved || l.needsRedraw {
		l.needsRedraw = false
		renderDur := l.renderFrame(dt)
		func() { defer profiling.Track("glfw.SwapBuffers")(); l.window.SwapBuffers() }()
		l.warnIfSlow(renderDur)
	}

	// Clear edge flags at end of frame
	l.inputManager.PostUpdate()

	l.fpsLimiter.Wait()
}

func (l *ViewerLoop) handleInputActions() {
	im := l.inputManager
	controller := l.components.Controller

	if im.JustPressed(input.ActionQuit) {
		l.window.SetShouldClose(true)
	}

	if im.JustPressed(input.ActionExportWorld) {
		l.exportWorld()
	}

	if im.JustPressed(input.ActionToggleTour) {
		if l.components.Tour.Active() {
			l.components.Tour.Stop()
		} else {
			l.components.Tour.Start()
		}
		l.RequestRedraw()
	}

	if im.JustPressed(input.ActionToggleLabels) {
		config.SetShowLabels(!config.GetShowLabels())
		l.RequestRedraw()
	}
	if im.JustPressed(input.ActionToggleOutlines) {
		config.SetShowOutlines(!config.GetShowOutlines())
		l.RequestRedraw()
	}

	if im.JustPressed(input.ActionResetView) {
		l.components.Tour.Stop()
		controller.Position = l.components.HomePosition
		controller.Target = l.components.HomeTarget
		l.RequestRedraw()
	}

	// Arrow keys pan while held.
	var dx, dy float64
	if im.IsActive(input.ActionPanLeft) {
		dx -= 1
	}
	if im.IsActive(input.ActionPanRight) {
		dx += 1
	}
	if im.IsActive(input.ActionPanUp) {
		dy -= 1
	}
	if im.IsActive(input.ActionPanDown) {
		dy += 1
	}
	if dx != 0 || dy != 0 {
		l.components.Tour.Stop()
		controller.PanBy(dx, dy)
	}
}

func (l *ViewerLoop) exportWorld() {
	rec := l.components.Compositor.Export()
	if err := scenefile.SaveWorld(exportPath, rec); err != nil {
		log.Printf("export: %v", err)
		return
	}
	log.Printf("exported %d scenes to %s", rec.Metadata.TotalScenes, exportPath)
}

func (l *ViewerLoop) renderFrame(dt float64) time.Duration {
	controller := l.components.Controller

	renderStart := time.Now()

	view64 := controller.ViewMatrix()
	view := graphics.Mat4To32(view64)
	// Rows of the view rotation are the camera axes in world space.
	right := mgl32.Vec3{float32(view64[0]), float32(view64[4]), float32(view64[8])}
	up := mgl32.Vec3{float32(view64[1]), float32(view64[5]), float32(view64[9])}

	l.components.Renderer.Render(
		l.components.Graph,
		view,
		graphics.Vec3To32(controller.Position),
		right,
		up,
		dt,
	)

	renderDur := time.Since(renderStart)
	l.frames++

	if time.Since(l.lastFPSCheckTime) >= time.Second {
		fmt.Println("FPS: ", l.frames)
		l.frames = 0
		l.lastFPSCheckTime = time.Now()
	}

	return renderDur
}

func (l *ViewerLoop) warnIfSlow(renderDur time.Duration) {
	limit := config.GetFPSLimit()
	if limit <= 0 {
		return
	}
	targetFrameTime := time.Second / time.Duration(limit)
	if renderDur > targetFrameTime {
		renderablesDur := profiling.SumWithPrefix("renderer.")
		fmt.Printf("Frame render too slow: %.2fms (target: %.2fms, renderables: %.2fms) [%s]\n",
			float64(renderDur.Nanoseconds())/1000000.0,
			float64(targetFrameTime.Nanoseconds())/1000000.0,
			float64(renderablesDur.Nanoseconds())/1000000.0,
			profiling.TopN(3))
	}
}

// RefreshRender renders a frame without advancing state (used during window
// resize so the content does not smear).
func (l *ViewerLoop) RefreshRender() {
	l.renderFrame(0.016)
	l.window.SwapBuffers()
}
