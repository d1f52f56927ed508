package meshes

import (
	"testing"

	"github.com/bloeys/gglm/gglm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenUsesHalvesLayout(t *testing.T) {

	m := NewTriangle()
	require.Equal(t, int32(3), m.VertexCount())

	data := m.Flatten()
	require.Len(t, data, 2*3*int(VertexDepth))

	assert.Equal(t, []float32{0, 0.5, 0, 1}, data[0:4])
	assert.Equal(t, []float32{-0.5, -0.5, 0, 1}, data[8:12])

	// Colors start halfway through
	assert.Equal(t, Red.Data[:], data[12:16])
	assert.Equal(t, Blue.Data[:], data[20:24])
}

func TestNewMeshValidates(t *testing.T) {

	_, err := NewMesh("empty", nil, nil)
	assert.Error(t, err)

	_, err = NewMesh("mismatch", []gglm.Vec4{gglm.NewVec4(0, 0, 0, 1)}, nil)
	assert.Error(t, err)

	m, err := NewMesh("one", []gglm.Vec4{gglm.NewVec4(1, 2, 3, 1)}, []gglm.Vec4{White})
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2, 3, 1, 1, 1, 1, 1}, m.Flatten())
}

func TestQuadCornersInFanOrder(t *testing.T) {

	q := NewSolidQuad("q", -0.2, -0.2, 0, 0, Green)
	require.Equal(t, int32(4), q.VertexCount())

	assert.Equal(t, gglm.NewVec4(0, 0, 0, 1), q.Positions[0])
	assert.Equal(t, gglm.NewVec4(-0.2, 0, 0, 1), q.Positions[1])
	assert.Equal(t, gglm.NewVec4(-0.2, -0.2, 0, 1), q.Positions[2])
	assert.Equal(t, gglm.NewVec4(0, -0.2, 0, 1), q.Positions[3])

	for _, c := range q.Colors {
		assert.Equal(t, Green, c)
	}
}

func TestCube(t *testing.T) {

	c := NewCube(0.5, DefaultCubeFaceColors)
	require.Equal(t, int32(36), c.VertexCount())

	for i, p := range c.Positions {
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0.5, abs(p.Data[axis]), 1e-6, "vertex %d", i)
		}
		assert.Equal(t, float32(1), p.Data[3])
	}

	// Each face has 6 vertices of one color
	for f := 0; f < 6; f++ {
		for v := 0; v < 6; v++ {
			assert.Equal(t, DefaultCubeFaceColors[f], c.Colors[f*6+v])
		}
	}

	// Front face triangles wind clockwise when seen from +z
	a, b, d := c.Positions[0], c.Positions[1], c.Positions[2]
	cross := (b.Data[0]-a.Data[0])*(d.Data[1]-a.Data[1]) - (b.Data[1]-a.Data[1])*(d.Data[0]-a.Data[0])
	assert.Negative(t, cross)
}

func abs(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
