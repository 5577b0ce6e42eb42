// Package mesh holds the hard-coded shapes the demo can draw.
package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is a fixed set of 2D positions with an optional byte index array.
type Mesh struct {
	Name      string
	Positions []mgl32.Vec2
	Indices   []uint8
}

// Components is the number of floats per vertex.
const Components = 2

var Quad = Mesh{
	Name: "quad",
	Positions: []mgl32.Vec2{
		{-0.5, -0.5},
		{0.5, -0.5},
		{0.5, 0.5},
		{-0.5, 0.5},
	},
	Indices: []uint8{
		0, 1, 2,
		2, 3, 0,
	},
}

var Triangle = Mesh{
	Name: "triangle",
	Positions: []mgl32.Vec2{
		{-0.5, -0.5},
		{0.5, -0.5},
		{0.0, 0.5},
	},
}

func ByName(name string) (Mesh, error) {
	switch name {
	case Quad.Name:
		return Quad, nil
	case Triangle.Name:
		return Triangle, nil
	}
	return Mesh{}, fmt.Errorf("no such mesh: %s", name)
}

// Flatten lays the positions out the way they go into the vertex buffer.
func (m Mesh) Flatten() []float32 {
	out := make([]float32, 0, len(m.Positions)*Components)
	for _, p := range m.Positions {
		out = append(out, p.X(), p.Y())
	}
	return out
}

func (m Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Count is what the draw call needs: the index count for indexed meshes,
// the vertex count otherwise.
func (m Mesh) Count() int32 {
	if m.Indexed() {
		return int32(len(m.Indices))
	}
	return int32(len(m.Positions))
}
