package rendering

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/xes-gl/xes/lib/config"
	"github.com/xes-gl/xes/lib/mesh"
	"github.com/xes-gl/xes/lib/rendering/shaders"
	"github.com/xes-gl/xes/lib/shaderfile"
	"github.com/xes-gl/xes/lib/utils"
)

const f32 = 4

// GLVars owns the GL objects of the demo: one program, one vertex array
// and its buffers. All methods must run on the thread that owns the context.
type GLVars struct {
	Mesh     mesh.Mesh
	BGColour utils.Colour

	ShaderPath string
	Sentinel   string

	// GL IDs
	Program uint32
	VAO     uint32
	VBO     uint32
	EBO     uint32
}

func NewGLVars(cfg *config.Config, m mesh.Mesh, bgColour utils.Colour) *GLVars {
	return &GLVars{
		Mesh:       m,
		BGColour:   bgColour,
		ShaderPath: string(cfg.Shader.Path),
		Sentinel:   cfg.Shader.Sentinel,
	}
}

// Start uploads the mesh and builds the first program. A shader that fails
// to load or build is logged and the demo carries on with what it got.
func (g *GLVars) Start() error {
	g.allocate()
	gl.ClearColor(g.BGColour[0], g.BGColour[1], g.BGColour[2], g.BGColour[3])
	return g.Reload()
}

// Reload re-reads the shader file and swaps in the newly assembled program.
// The previous program is kept when the file cannot be read at all.
// Without a configured shader file it returns shaderfile.ErrNoShader.
func (g *GLVars) Reload() error {
	if g.ShaderPath == "" {
		return shaderfile.ErrNoShader
	}
	src, err := shaderfile.Load(g.ShaderPath, g.Sentinel)
	if err != nil {
		return err
	}

	program, err := shaders.Assemble(src)
	shaders.Delete(g.Program)
	g.Program = program
	if err != nil {
		slog.Warn("continuing with a shader program that did not build cleanly", slog.String("module", "rendering"))
		return err
	}
	slog.Info(fmt.Sprintf("built shader program %d from %s", program, g.ShaderPath), slog.String("module", "rendering"))
	return nil
}

func (g *GLVars) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (g *GLVars) DrawFrame() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
	if g.Program == 0 {
		return
	}
	gl.UseProgram(g.Program)
	gl.BindVertexArray(g.VAO)
	if g.Mesh.Indexed() {
		gl.DrawElements(gl.TRIANGLES, g.Mesh.Count(), gl.UNSIGNED_BYTE, nil)
	} else {
		gl.DrawArrays(gl.TRIANGLES, 0, g.Mesh.Count())
	}
	gl.BindVertexArray(0)
}

func (g *GLVars) Delete() {
	shaders.Delete(g.Program)
	g.Program = 0
	if g.EBO != 0 {
		gl.DeleteBuffers(1, &g.EBO)
	}
	gl.DeleteBuffers(1, &g.VBO)
	gl.DeleteVertexArrays(1, &g.VAO)
}

func (g *GLVars) allocate() {
	vertices := g.Mesh.Flatten()

	gl.GenVertexArrays(1, &g.VAO)
	gl.BindVertexArray(g.VAO)

	gl.GenBuffers(1, &g.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*f32, gl.Ptr(vertices), gl.STATIC_DRAW)

	if g.Mesh.Indexed() {
		gl.GenBuffers(1, &g.EBO)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.EBO)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Mesh.Indices), gl.Ptr(g.Mesh.Indices), gl.STATIC_DRAW)
	}

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, mesh.Components, gl.FLOAT, false, mesh.Components*f32, 0)

	// the element buffer binding is part of the VAO state, so unbind the
	// VAO first
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	slog.Debug(fmt.Sprintf("uploaded %s mesh: %d vertices, %d indices", g.Mesh.Name, len(g.Mesh.Positions), len(g.Mesh.Indices)),
		slog.String("module", "rendering"))
}
