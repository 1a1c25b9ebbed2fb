package rendering

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/modernopengl/quadview/lib/geometry"
	"github.com/modernopengl/quadview/lib/rendering/renderconsts"
	"github.com/modernopengl/quadview/lib/utils"
)

// GLVars holds the GL object names the render loop draws with. The
// current program and vertex array are bound explicitly every frame.
type GLVars struct {
	Program  uint32
	Mesh     *geometry.Mesh
	BGColour utils.Colour

	// GL IDs
	VAO uint32
	VBO uint32
	EBO uint32
}

func NewGLVars(program uint32, mesh *geometry.Mesh, bgColour utils.Colour) *GLVars {
	g := &GLVars{}

	g.Program = program
	g.Mesh = mesh
	g.BGColour = bgColour

	return g
}

// Start uploads the mesh and sets up the state that does not change
// between frames.
func (g *GLVars) Start() {
	g.allocate()
	gl.ClearColor(g.BGColour.R, g.BGColour.G, g.BGColour.B, g.BGColour.A)
	gl.UseProgram(g.Program)
}

func (g *GLVars) SetPolygonMode(mode renderconsts.PolygonMode) {
	gl.PolygonMode(gl.FRONT_AND_BACK, uint32(mode))
}

// SwapProgram replaces the program used for drawing and deletes the old one.
func (g *GLVars) SwapProgram(program uint32) {
	old := g.Program
	g.Program = program
	gl.UseProgram(g.Program)
	if old != 0 && old != program {
		gl.DeleteProgram(old)
	}
}

func (g *GLVars) StartFrame() {
	gl.ClearColor(g.BGColour.R, g.BGColour.G, g.BGColour.B, g.BGColour.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (g *GLVars) Draw() {
	gl.UseProgram(g.Program)
	gl.BindVertexArray(g.VAO)
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.Mesh.NumIndices(), gl.UNSIGNED_INT, 0)
}

func (g *GLVars) allocate() {
	vertices := g.Mesh.Interleaved()
	indices := g.Mesh.Indices

	gl.GenBuffers(1, &g.VBO)
	gl.GenVertexArrays(1, &g.VAO)
	gl.GenBuffers(1, &g.EBO)

	// the VAO records the buffer bindings and attribute layout below
	gl.BindVertexArray(g.VAO)

	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.EBO)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := geometry.Stride()
	for _, attr := range geometry.Attributes() {
		gl.VertexAttribPointerWithOffset(attr.Location, attr.Components, gl.FLOAT, false, stride, uintptr(attr.Offset))
		gl.EnableVertexAttribArray(attr.Location)
	}
}
