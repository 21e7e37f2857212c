// Package labels draws floating billboard name tags above each scene group.
// Text is rasterized once per unique string and cached as a GL_RED texture.
package labels

import (
	"log"

	"worldshop/internal/config"
	"worldshop/internal/graphics"
	renderer "worldshop/internal/graphics/renderer"
	"worldshop/internal/profiling"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/font"
)

const vertexShaderSrc = `#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

uniform mat4 proj;
uniform mat4 view;
uniform mat4 model;

out vec2 vUV;

void main() {
    gl_Position = proj * view * model * vec4(aPos, 0.0, 1.0);
    vUV = aUV;
}
`

const fragmentShaderSrc = `#version 410 core
in vec2 vUV;

uniform sampler2D text;
uniform vec3 textColor;

out vec4 fragColor;

void main() {
    float coverage = texture(text, vUV).r;
    fragColor = vec4(textColor, coverage);
}
`

// fontPixels is the rasterization size; labels are drawn scaled in world
// units, so this only sets texture sharpness.
const fontPixels = 48

// labelWorldHeight is the billboard height in world units.
const labelWorldHeight = 1.4

type labelTexture struct {
	id     uint32
	aspect float32 // width / height of the rasterized image
}

// Labels renders one billboard per labeled group
type Labels struct {
	shader *graphics.Shader
	face   font.Face
	cache  map[string]labelTexture

	vao uint32
	vbo uint32
}

// NewLabels creates the labels renderable
func NewLabels() *Labels {
	return &Labels{}
}

// Init compiles the shader, opens the font face, and uploads the unit quad.
func (l *Labels) Init() error {
	var err error
	l.shader, err = graphics.NewShader(vertexShaderSrc, fragmentShaderSrc)
	if err != nil {
		return err
	}
	l.face, err = graphics.NewFace(fontPixels)
	if err != nil {
		return err
	}
	l.cache = make(map[string]labelTexture)
	l.setupQuad()
	return nil
}

func (l *Labels) setupQuad() {
	// Unit quad centered at the origin; v flipped because the rasterized
	// image has a top-left origin.
	quad := []float32{
		-0.5, -0.5, 0, 1,
		0.5, -0.5, 1, 1,
		0.5, 0.5, 1, 0,
		-0.5, -0.5, 0, 1,
		0.5, 0.5, 1, 0,
		-0.5, 0.5, 0, 0,
	}

	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)

	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(quad), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
}

// Render draws a camera-facing name tag above every group that carries one.
func (l *Labels) Render(ctx renderer.RenderContext) {
	if !config.GetShowLabels() {
		return
	}
	defer profiling.Track("renderer.labels")()

	l.shader.Use()
	l.shader.SetMatrix4("proj", &ctx.Proj[0])
	l.shader.SetMatrix4("view", &ctx.View[0])
	l.shader.SetInt("text", 0)
	l.shader.SetVector3("textColor", 1, 1, 1)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindVertexArray(l.vao)

	for _, group := range ctx.Graph.Groups() {
		if group.Label == nil || group.Label.Text == "" {
			continue
		}
		tex, ok := l.texture(group.Label.Text)
		if !ok {
			continue
		}

		pos := mgl32.Vec3{
			float32(group.Offset.X()),
			float32(group.Offset.Y() + group.Label.Height),
			float32(group.Offset.Z()),
		}
		model := billboardMatrix(pos, ctx.CameraRight, ctx.CameraUp,
			labelWorldHeight*tex.aspect, labelWorldHeight)

		l.shader.SetMatrix4("model", &model[0])
		gl.BindTexture(gl.TEXTURE_2D, tex.id)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)
	}

	gl.Disable(gl.BLEND)
}

// texture returns the cached texture for text, rasterizing on first use.
func (l *Labels) texture(text string) (labelTexture, bool) {
	if tex, ok := l.cache[text]; ok {
		return tex, true
	}
	img, err := graphics.RasterizeText(l.face, text)
	if err != nil {
		log.Printf("labels: rasterize %q: %v", text, err)
		return labelTexture{}, false
	}
	tex := labelTexture{
		id:     graphics.UploadAlpha(img),
		aspect: float32(img.Bounds().Dx()) / float32(img.Bounds().Dy()),
	}
	l.cache[text] = tex
	return tex, true
}

// Dispose releases textures, the quad, the shader, and the font face.
func (l *Labels) Dispose() {
	for _, tex := range l.cache {
		id := tex.id
		gl.DeleteTextures(1, &id)
	}
	l.cache = nil
	if l.vao != 0 {
		gl.DeleteVertexArrays(1, &l.vao)
		l.vao = 0
	}
	if l.vbo != 0 {
		gl.DeleteBuffers(1, &l.vbo)
		l.vbo = 0
	}
	if l.shader != nil {
		l.shader.Dispose()
	}
	if l.face != nil {
		_ = l.face.Close()
	}
}

// SetViewport is a no-op; billboards scale with the projection.
func (l *Labels) SetViewport(width, height int) {}

// billboardMatrix maps the unit quad's local X/Y onto the camera's right and
// up axes at the given world position, so the quad always faces the viewer.
func billboardMatrix(pos, right, up mgl32.Vec3, w, h float32) mgl32.Mat4 {
	r := right.Normalize().Mul(w)
	u := up.Normalize().Mul(h)
	n := right.Cross(up).Normalize()
	return mgl32.Mat4{
		r.X(), r.Y(), r.Z(), 0,
		u.X(), u.Y(), u.Z(), 0,
		n.X(), n.Y(), n.Z(), 0,
		pos.X(), pos.Y(), pos.Z(), 1,
	}
}
