package main

import (
	"worldshop/internal/camera"
	"worldshop/internal/compositor"
	"worldshop/internal/config"
	"worldshop/internal/graphics"
	"worldshop/internal/graphics/renderables/labels"
	"worldshop/internal/graphics/renderables/outline"
	"worldshop/internal/graphics/renderables/primitives"
	renderer "worldshop/internal/graphics/renderer"
	"worldshop/internal/registry"
	"worldshop/internal/scene"
	"worldshop/internal/tour"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
)

// tourLegSeconds is the pace of scripted tours.
const tourLegSeconds = 4.0

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(graphics.WinWidth, graphics.WinHeight, "worldshop", nil, nil)
	if err != nil {
		return nil, err
	}
	window.MakeContextCurrent()

	// Initialize OpenGL bindings
	if err := gl.Init(); err != nil {
		return nil, err
	}

	// Disable V-Sync; we'll use our own FPS limiter
	glfw.SwapInterval(0)

	return window, nil
}

// ViewerComponents holds all the initialized viewer components
type ViewerComponents struct {
	Renderer   *renderer.Renderer
	Controller *camera.Controller
	Compositor *compositor.Compositor
	Graph      *scene.Graph
	Entries    []scene.Entry
	Instances  []registry.Scene
	Tour       *tour.Tour

	// Home transform for the reset-view action.
	HomePosition mgl64.Vec3
	HomeTarget   mgl64.Vec3
}

func setupViewer() (*ViewerComponents, error) {
	// Initialize renderable features
	primitivesRenderer := primitives.NewPrimitives()
	outlineRenderer := outline.NewOutline()
	labelsRenderer := labels.NewLabels()

	// Initialize renderer with all features
	r, err := renderer.NewRenderer(
		primitivesRenderer,
		outlineRenderer,
		labelsRenderer,
	)
	if err != nil {
		return nil, err
	}

	// Build every registered scene and lay the grid out.
	entries, instances := registry.BuildEntries()
	maxPerRow := config.GetMaxPerRow()
	spacing := config.GetSpacing()

	graph := scene.NewGraph()
	comp := compositor.New(graph, maxPerRow, spacing)
	comp.Combine(entries)

	// Collect tour waypoints, shifted from scene-local to grid coordinates.
	var points []tour.Waypoint
	for i, inst := range instances {
		tp, ok := inst.(registry.TourProvider)
		if !ok {
			continue
		}
		cell := compositor.CellOffset(i, len(entries), maxPerRow, spacing)
		for _, wp := range tp.TourPoints() {
			wp.Target = wp.Target.Add(cell)
			points = append(points, wp)
		}
	}
	viewerTour := tour.New(points, tourLegSeconds)

	// Frame the whole grid from a high three-quarter angle.
	rows := (len(entries) + maxPerRow - 1) / maxPerRow
	if rows < 1 {
		rows = 1
	}
	cols := len(entries)
	if cols > maxPerRow {
		cols = maxPerRow
	}
	span := spacing * float64(rows)
	if w := spacing * float64(cols); w > span {
		span = w
	}
	target := mgl64.Vec3{0, 0, spacing * float64(rows-1) / 2}
	distance := span * 1.1
	if distance < spacing {
		distance = spacing
	}
	position := target.Add(mgl64.Vec3{0, distance * 0.75, distance * 0.75})

	controller := camera.New(camera.DefaultConfig(), position, target)
	controller.SetViewport(graphics.WinWidth, graphics.WinHeight)

	return &ViewerComponents{
		Renderer:     r,
		Controller:   controller,
		Compositor:   comp,
		Graph:        graph,
		Entries:      entries,
		Instances:    instances,
		Tour:         viewerTour,
		HomePosition: position,
		HomeTarget:   target,
	}, nil
}
