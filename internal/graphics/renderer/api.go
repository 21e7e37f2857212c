package renderer

import (
	"worldshop/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

// RenderContext provides shared context for all renderables
type RenderContext struct {
	Graph *scene.Graph
	DT    float64
	View  mgl32.Mat4
	Proj  mgl32.Mat4

	// Camera basis in world space, for billboarding.
	CameraPos   mgl32.Vec3
	CameraRight mgl32.Vec3
	CameraUp    mgl32.Vec3
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
