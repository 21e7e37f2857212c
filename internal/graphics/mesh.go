package graphics

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Vertex layout for primitive meshes: position.xyz, normal.xyz.
const meshStride = 6

// Mesh is an uploaded triangle mesh. Build the vertex data with one of the
// generators below, then Upload on the GL thread.
type Mesh struct {
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// Upload creates the VAO/VBO pair for the given interleaved vertex data.
func (m *Mesh) Upload(vertices []float32) {
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, meshStride*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, meshStride*4, 3*4)

	m.vertexCount = int32(len(vertices) / meshStride)
}

// Draw issues the triangle draw call. The caller binds the shader and sets
// uniforms first.
func (m *Mesh) Draw() {
	if m.vertexCount == 0 {
		return
	}
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.vertexCount)
}

// Dispose releases the GL buffers.
func (m *Mesh) Dispose() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	m.vertexCount = 0
}

// BoxVertices returns a unit cube centered at the origin, CCW front faces.
func BoxVertices() []float32 {
	h := float32(0.5)
	return []float32{
		// Front (+Z)
		-h, -h, h, 0, 0, 1,
		h, -h, h, 0, 0, 1,
		h, h, h, 0, 0, 1,
		-h, -h, h, 0, 0, 1,
		h, h, h, 0, 0, 1,
		-h, h, h, 0, 0, 1,
		// Back (-Z)
		h, -h, -h, 0, 0, -1,
		-h, -h, -h, 0, 0, -1,
		-h, h, -h, 0, 0, -1,
		h, -h, -h, 0, 0, -1,
		-h, h, -h, 0, 0, -1,
		h, h, -h, 0, 0, -1,
		// Right (+X)
		h, -h, h, 1, 0, 0,
		h, -h, -h, 1, 0, 0,
		h, h, -h, 1, 0, 0,
		h, -h, h, 1, 0, 0,
		h, h, -h, 1, 0, 0,
		h, h, h, 1, 0, 0,
		// Left (-X)
		-h, -h, -h, -1, 0, 0,
		-h, -h, h, -1, 0, 0,
		-h, h, h, -1, 0, 0,
		-h, -h, -h, -1, 0, 0,
		-h, h, h, -1, 0, 0,
		-h, h, -h, -1, 0, 0,
		// Top (+Y)
		-h, h, h, 0, 1, 0,
		h, h, h, 0, 1, 0,
		h, h, -h, 0, 1, 0,
		-h, h, h, 0, 1, 0,
		h, h, -h, 0, 1, 0,
		-h, h, -h, 0, 1, 0,
		// Bottom (-Y)
		-h, -h, -h, 0, -1, 0,
		h, -h, -h, 0, -1, 0,
		h, -h, h, 0, -1, 0,
		-h, -h, -h, 0, -1, 0,
		h, -h, h, 0, -1, 0,
		-h, -h, h, 0, -1, 0,
	}
}

// PlaneVertices returns a unit quad on the XZ plane at y=0, facing up.
func PlaneVertices() []float32 {
	h := float32(0.5)
	return []float32{
		-h, 0, -h, 0, 1, 0,
		-h, 0, h, 0, 1, 0,
		h, 0, h, 0, 1, 0,
		-h, 0, -h, 0, 1, 0,
		h, 0, h, 0, 1, 0,
		h, 0, -h, 0, 1, 0,
	}
}

// SphereVertices returns a UV sphere of diameter 1 centered at the origin.
func SphereVertices(stacks, sectors int) []float32 {
	if stacks < 2 {
		stacks = 2
	}
	if sectors < 3 {
		sectors = 3
	}
	r := float32(0.5)

	point := func(i, j int) (pos, normal [3]float32) {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(sectors)
		nx := float32(math.Sin(phi) * math.Cos(theta))
		ny := float32(math.Cos(phi))
		nz := float32(math.Sin(phi) * math.Sin(theta))
		return [3]float32{r * nx, r * ny, r * nz}, [3]float32{nx, ny, nz}
	}

	verts := make([]float32, 0, stacks*sectors*6*meshStride)
	push := func(pos, n [3]float32) {
		verts = append(verts, pos[0], pos[1], pos[2], n[0], n[1], n[2])
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < sectors; j++ {
			p00, n00 := point(i, j)
			p01, n01 := point(i, j+1)
			p10, n10 := point(i+1, j)
			p11, n11 := point(i+1, j+1)

			// Top and bottom rows collapse to the poles; emit only the
			// non-degenerate triangle there.
			if i != 0 {
				push(p00, n00)
				push(p01, n01)
				push(p10, n10)
			}
			if i != stacks-1 {
				push(p01, n01)
				push(p11, n11)
				push(p10, n10)
			}
		}
	}
	return verts
}

// CylinderVertices returns a cylinder of radius 0.5 and height 1 centered at
// the origin, with caps.
func CylinderVertices(segments int) []float32 {
	if segments < 3 {
		segments = 3
	}
	r := float32(0.5)
	h := float32(0.5)

	verts := make([]float32, 0, segments*12*meshStride)
	push := func(x, y, z, nx, ny, nz float32) {
		verts = append(verts, x, y, z, nx, ny, nz)
	}
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		c0, s0 := float32(math.Cos(a0)), float32(math.Sin(a0))
		c1, s1 := float32(math.Cos(a1)), float32(math.Sin(a1))

		// Side quad, outward normals.
		push(r*c0, -h, r*s0, c0, 0, s0)
		push(r*c0, h, r*s0, c0, 0, s0)
		push(r*c1, -h, r*s1, c1, 0, s1)
		push(r*c1, -h, r*s1, c1, 0, s1)
		push(r*c0, h, r*s0, c0, 0, s0)
		push(r*c1, h, r*s1, c1, 0, s1)

		// Top cap.
		push(0, h, 0, 0, 1, 0)
		push(r*c1, h, r*s1, 0, 1, 0)
		push(r*c0, h, r*s0, 0, 1, 0)

		// Bottom cap.
		push(0, -h, 0, 0, -1, 0)
		push(r*c0, -h, r*s0, 0, -1, 0)
		push(r*c1, -h, r*s1, 0, -1, 0)
	}
	return verts
}

// ConeVertices returns a cone of base radius 0.5 and height 1 centered at the
// origin, apex up, with a base cap.
func ConeVertices(segments int) []float32 {
	if segments < 3 {
		segments = 3
	}
	r := float32(0.5)
	h := float32(0.5)

	// Slant normal: the surface tilts by atan(r / height); normalize (h', r')
	// components where h' is the full height.
	nl := float32(math.Hypot(float64(2*h), float64(r)))
	ny := r / nl
	nr := 2 * h / nl

	verts := make([]float32, 0, segments*6*meshStride)
	push := func(x, y, z, nx, nyy, nz float32) {
		verts = append(verts, x, y, z, nx, nyy, nz)
	}
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / float64(segments)
		a1 := 2 * math.Pi * float64(i+1) / float64(segments)
		am := (a0 + a1) / 2
		c0, s0 := float32(math.Cos(a0)), float32(math.Sin(a0))
		c1, s1 := float32(math.Cos(a1)), float32(math.Sin(a1))
		cm, sm := float32(math.Cos(am)), float32(math.Sin(am))

		// Side triangle; apex uses the mid-angle normal.
		push(r*c0, -h, r*s0, nr*c0, ny, nr*s0)
		push(0, h, 0, nr*cm, ny, nr*sm)
		push(r*c1, -h, r*s1, nr*c1, ny, nr*s1)

		// Base cap.
		push(0, -h, 0, 0, -1, 0)
		push(r*c0, -h, r*s0, 0, -1, 0)
		push(r*c1, -h, r*s1, 0, -1, 0)
	}
	return verts
}
