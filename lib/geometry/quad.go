package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const f32 = 4

// Vertex is a position interleaved with a colour, the layout the quad
// shaders expect at attribute locations 0 and 1.
type Vertex struct {
	Position mgl32.Vec3
	Colour   mgl32.Vec3
}

// Attribute describes how one vertex attribute is read out of the
// interleaved buffer.
type Attribute struct {
	Name       string
	Location   uint32
	Components int32
	Offset     int
}

type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

var quadVertices = [...]Vertex{
	{Position: mgl32.Vec3{0.5, 0.5, 0}, Colour: mgl32.Vec3{1, 0, 0}},   // top right
	{Position: mgl32.Vec3{0.5, -0.5, 0}, Colour: mgl32.Vec3{0, 1, 0}},  // bottom right
	{Position: mgl32.Vec3{-0.5, -0.5, 0}, Colour: mgl32.Vec3{0, 0, 1}}, // bottom left
	{Position: mgl32.Vec3{-0.5, 0.5, 0}, Colour: mgl32.Vec3{1, 1, 0}},  // top left
}

var quadIndices = [...]uint32{
	0, 1, 3,
	1, 2, 3,
}

// Quad returns a fresh copy of the static two-triangle rectangle, so
// callers can never mutate the shared data.
func Quad() *Mesh {
	m := &Mesh{
		Vertices: make([]Vertex, len(quadVertices)),
		Indices:  make([]uint32, len(quadIndices)),
	}
	copy(m.Vertices, quadVertices[:])
	copy(m.Indices, quadIndices[:])
	return m
}

// Attributes lists the vertex layout: position at location 0 and colour
// at location 1.
func Attributes() []Attribute {
	return []Attribute{
		{Name: "aPos", Location: 0, Components: 3, Offset: 0},
		{Name: "aColor", Location: 1, Components: 3, Offset: 3 * f32},
	}
}

// Stride is the size in bytes of one interleaved vertex.
func Stride() int32 {
	return 6 * f32
}

func (m *Mesh) Interleaved() []float32 {
	data := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		data = append(data, v.Position[:]...)
		data = append(data, v.Colour[:]...)
	}
	return data
}

func (m *Mesh) NumIndices() int32 {
	return int32(len(m.Indices))
}

func (m *Mesh) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d refers to vertex %d but only %d vertices exist", i, idx, len(m.Vertices))
		}
	}
	return nil
}

// Triangles groups the index list into triangles.
func (m *Mesh) Triangles() [][3]uint32 {
	tris := make([][3]uint32, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tris = append(tris, [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]})
	}
	return tris
}
