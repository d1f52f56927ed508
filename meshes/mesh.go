package meshes

import (
	"errors"
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glscaffold/assert"
)

// Mesh is vertex data in the halves layout expected by drawables.NewDrawable:
// all positions first, then one color per position, both with 4 components per vertex.
type Mesh struct {
	Name      string
	Positions []gglm.Vec4
	Colors    []gglm.Vec4
}

// VertexDepth is the number of components per vertex of meshes built by this package
const VertexDepth int32 = 4

func (m *Mesh) VertexCount() int32 {
	return int32(len(m.Positions))
}

// Flatten returns the mesh as one float array: every position's components followed by every color's components
func (m *Mesh) Flatten() []float32 {

	assert.T(len(m.Positions) == len(m.Colors), "Mesh '%s' has %d positions but %d colors", m.Name, len(m.Positions), len(m.Colors))

	out := make([]float32, 0, 2*len(m.Positions)*int(VertexDepth))
	out = flattenVec4s(out, m.Positions)
	out = flattenVec4s(out, m.Colors)
	return out
}

func flattenVec4s(out []float32, vs []gglm.Vec4) []float32 {

	for i := 0; i < len(vs); i++ {
		out = append(out, vs[i].Data[:]...)
	}

	return out
}

func NewMesh(name string, positions, colors []gglm.Vec4) (Mesh, error) {

	if len(positions) == 0 {
		return Mesh{}, errors.New("mesh '" + name + "' has no vertices")
	}

	if len(positions) != len(colors) {
		return Mesh{}, fmt.Errorf("mesh '%s' has %d positions but %d colors", name, len(positions), len(colors))
	}

	return Mesh{
		Name:      name,
		Positions: positions,
		Colors:    colors,
	}, nil
}

func repeatColor(c gglm.Vec4, n int) []gglm.Vec4 {

	cs := make([]gglm.Vec4, n)
	for i := 0; i < n; i++ {
		cs[i] = c
	}

	return cs
}
