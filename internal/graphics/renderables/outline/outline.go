// Package outline draws the rectangular cell boundary under each scene group,
// so neighboring scenes in the grid read as separate districts.
package outline

import (
	"worldshop/internal/config"
	"worldshop/internal/graphics"
	renderer "worldshop/internal/graphics/renderer"
	"worldshop/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const vertexShaderSrc = `#version 410 core
layout (location = 0) in vec3 aPos;

uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;

void main() {
    gl_Position = proj * view * model * vec4(aPos, 1.0);
}
`

const fragmentShaderSrc = `#version 410 core
uniform vec3 color;

out vec4 fragColor;

void main() {
    fragColor = vec4(color, 1.0);
}
`

// groundLift keeps the outline from z-fighting with ground planes at y=0.
const groundLift = 0.02

// Outline renders cell boundary rectangles for outlined groups
type Outline struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
}

// NewOutline creates the outline renderable
func NewOutline() *Outline {
	return &Outline{}
}

// Init compiles the shader and uploads a unit square line loop on XZ.
func (o *Outline) Init() error {
	var err error
	o.shader, err = graphics.NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return err
	}

	// Unit square on the XZ plane, scaled per group by its half extents.
	vertices := []float32{
		-1, 0, -1,
		1, 0, -1,
		1, 0, 1,
		-1, 0, 1,
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	return nil
}

// Render draws the boundary rectangle of every outlined group.
func (o *Outline) Render(ctx renderer.RenderContext) {
	if !config.GetShowOutlines() {
		return
	}
	defer profiling.Track("renderer.outline")()

	o.shader.Use()
	o.shader.SetMatrix4("proj", &ctx.Proj[0])
	o.shader.SetMatrix4("view", &ctx.View[0])
	o.shader.SetVector3("color", 0.85, 0.85, 0.35)

	gl.BindVertexArray(o.vao)
	gl.LineWidth(1.0)

	for _, group := range ctx.Graph.Groups() {
		if group.Outline == nil {
			continue
		}
		model := mgl32.Translate3D(
			float32(group.Offset.X()),
			float32(group.Offset.Y())+groundLift,
			float32(group.Offset.Z()),
		).Mul4(mgl32.Scale3D(
			float32(group.Outline.HalfWidth),
			1,
			float32(group.Outline.HalfDepth),
		))
		o.shader.SetMatrix4("model", &model[0])
		gl.DrawArrays(gl.LINE_LOOP, 0, 4)
	}
}

// Dispose cleans up OpenGL resources
func (o *Outline) Dispose() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
	if o.shader != nil {
		o.shader.Dispose()
	}
}

// SetViewport is a no-op.
func (o *Outline) SetViewport(width, height int) {}
