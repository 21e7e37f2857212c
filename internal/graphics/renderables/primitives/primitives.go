// Package primitives draws the solid geometry of every scene group: one
// shared mesh per primitive kind, instanced by a per-object model matrix.
package primitives

import (
	"worldshop/internal/graphics"
	renderer "worldshop/internal/graphics/renderer"
	"worldshop/internal/profiling"
	"worldshop/internal/scene"

	"github.com/go-gl/mathgl/mgl32"
)

const vertexShaderSrc = `#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;

out vec3 vNormal;

void main() {
    gl_Position = proj * view * model * vec4(aPos, 1.0);
    vNormal = mat3(model) * aNormal;
}
`

const fragmentShaderSrc = `#version 410 core
in vec3 vNormal;

uniform vec3 color;
uniform vec3 lightDir;

out vec4 fragColor;

void main() {
    float diff = max(dot(normalize(vNormal), lightDir), 0.0);
    vec3 lit = color * (0.35 + 0.65 * diff);
    fragColor = vec4(lit, 1.0);
}
`

// Sphere and round-solid tessellation.
const (
	sphereStacks     = 16
	sphereSectors    = 24
	cylinderSegments = 24
	coneSegments     = 24
)

// Primitives renders all primitive objects in the scene graph
type Primitives struct {
	shader *graphics.Shader
	meshes map[scene.Kind]*graphics.Mesh
}

// NewPrimitives creates the primitives renderable
func NewPrimitives() *Primitives {
	return &Primitives{}
}

// Init compiles the shader and uploads one mesh per primitive kind.
func (p *Primitives) Init() error {
	var err error
	p.shader, err = graphics.NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return err
	}

	p.meshes = make(map[scene.Kind]*graphics.Mesh, 5)
	for kind, verts := range map[scene.Kind][]float32{
		scene.KindBox:      graphics.BoxVertices(),
		scene.KindSphere:   graphics.SphereVertices(sphereStacks, sphereSectors),
		scene.KindCylinder: graphics.CylinderVertices(cylinderSegments),
		scene.KindCone:     graphics.ConeVertices(coneSegments),
		scene.KindPlane:    graphics.PlaneVertices(),
	} {
		mesh := &graphics.Mesh{}
		mesh.Upload(verts)
		p.meshes[kind] = mesh
	}
	return nil
}

// Render draws every object of every group in graph order.
func (p *Primitives) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.primitives")()

	p.shader.Use()
	p.shader.SetMatrix4("proj", &ctx.Proj[0])
	p.shader.SetMatrix4("view", &ctx.View[0])

	light := mgl32.Vec3{0.35, 1.0, 0.45}.Normalize()
	p.shader.SetVector3("lightDir", light.X(), light.Y(), light.Z())

	for _, group := range ctx.Graph.Groups() {
		for i := range group.Objects {
			obj := &group.Objects[i]
			mesh, ok := p.meshes[obj.Kind]
			if !ok {
				continue
			}

			model := modelMatrix(group, obj)
			p.shader.SetMatrix4("model", &model[0])

			r, g, b := unpackColor(obj.Color)
			p.shader.SetVector3("color", r, g, b)

			mesh.Draw()
		}
	}
}

// Dispose releases the shader and meshes.
func (p *Primitives) Dispose() {
	for _, mesh := range p.meshes {
		mesh.Dispose()
	}
	p.meshes = nil
	if p.shader != nil {
		p.shader.Dispose()
	}
}

// SetViewport is a no-op; the shared projection handles resizing.
func (p *Primitives) SetViewport(width, height int) {}

// modelMatrix composes translate(group offset + object position), rotate XYZ,
// then scale, matching the transform order objects were authored in.
func modelMatrix(group *scene.Group, obj *scene.Object) mgl32.Mat4 {
	pos := group.Offset.Add(obj.Position)
	translate := mgl32.Translate3D(float32(pos.X()), float32(pos.Y()), float32(pos.Z()))
	rotate := mgl32.AnglesToQuat(
		float32(obj.Rotation.X()),
		float32(obj.Rotation.Y()),
		float32(obj.Rotation.Z()),
		mgl32.XYZ,
	).Mat4()
	scale := mgl32.Scale3D(float32(obj.Scale.X()), float32(obj.Scale.Y()), float32(obj.Scale.Z()))
	return translate.Mul4(rotate).Mul4(scale)
}

// unpackColor splits a packed 0xRRGGBB color into normalized channels.
func unpackColor(c uint32) (r, g, b float32) {
	r = float32((c>>16)&0xFF) / 255.0
	g = float32((c>>8)&0xFF) / 255.0
	b = float32(c&0xFF) / 255.0
	return
}
