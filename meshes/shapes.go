package meshes

import "github.com/bloeys/gglm/gglm"

var (
	Red     = gglm.NewVec4(1, 0, 0, 1)
	Green   = gglm.NewVec4(0, 1, 0, 1)
	Blue    = gglm.NewVec4(0, 0, 1, 1)
	Yellow  = gglm.NewVec4(1, 1, 0, 1)
	Cyan    = gglm.NewVec4(0, 1, 1, 1)
	Magenta = gglm.NewVec4(1, 0, 1, 1)
	White   = gglm.NewVec4(1, 1, 1, 1)
)

// NewTriangle returns the red/green/blue triangle centered on the origin
func NewTriangle() Mesh {

	m, _ := NewMesh(
		"triangle",
		[]gglm.Vec4{gglm.NewVec4(0, 0.5, 0, 1), gglm.NewVec4(0.5, -0.5, 0, 1), gglm.NewVec4(-0.5, -0.5, 0, 1)},
		[]gglm.Vec4{Red, Green, Blue},
	)

	return m
}

// NewQuad returns the axis aligned rectangle (minX, minY)-(maxX, maxY) at z=0, with corners in
// fan order starting from the top right and going counter clockwise.
func NewQuad(name string, minX, minY, maxX, maxY float32, cornerColors [4]gglm.Vec4) Mesh {

	m, _ := NewMesh(
		name,
		[]gglm.Vec4{gglm.NewVec4(maxX, maxY, 0, 1), gglm.NewVec4(minX, maxY, 0, 1), gglm.NewVec4(minX, minY, 0, 1), gglm.NewVec4(maxX, minY, 0, 1)},
		cornerColors[:],
	)

	return m
}

// NewSolidQuad is NewQuad with every corner the same color
func NewSolidQuad(name string, minX, minY, maxX, maxY float32, color gglm.Vec4) Mesh {
	return NewQuad(name, minX, minY, maxX, maxY, [4]gglm.Vec4{color, color, color, color})
}

// cubeFaces lists, per face, two clockwise (seen from outside) triangles as corner signs
var cubeFaces = [6][6][3]float32{
	// Front (+z)
	{{-1, 1, 1}, {1, 1, 1}, {-1, -1, 1}, {-1, -1, 1}, {1, 1, 1}, {1, -1, 1}},
	// Left (-x)
	{{-1, 1, -1}, {-1, 1, 1}, {-1, -1, -1}, {-1, -1, -1}, {-1, 1, 1}, {-1, -1, 1}},
	// Bottom (-y)
	{{-1, -1, 1}, {1, -1, 1}, {-1, -1, -1}, {-1, -1, -1}, {1, -1, 1}, {1, -1, -1}},
	// Back (-z)
	{{1, 1, -1}, {-1, 1, -1}, {1, -1, -1}, {1, -1, -1}, {-1, 1, -1}, {-1, -1, -1}},
	// Right (+x)
	{{1, 1, 1}, {1, 1, -1}, {1, -1, 1}, {1, -1, 1}, {1, 1, -1}, {1, -1, -1}},
	// Top (+y)
	{{-1, 1, -1}, {1, 1, -1}, {-1, 1, 1}, {-1, 1, 1}, {1, 1, -1}, {1, 1, 1}},
}

// DefaultCubeFaceColors are the face colors in the order front, left, bottom, back, right, top
var DefaultCubeFaceColors = [6]gglm.Vec4{Red, Green, Blue, Yellow, Cyan, Magenta}

// NewCube returns a triangle list (36 vertices) for a cube centered on the origin.
// Front faces are wound clockwise.
func NewCube(halfSize float32, faceColors [6]gglm.Vec4) Mesh {

	positions := make([]gglm.Vec4, 0, 36)
	colors := make([]gglm.Vec4, 0, 36)
	for f := 0; f < len(cubeFaces); f++ {

		for v := 0; v < len(cubeFaces[f]); v++ {
			s := cubeFaces[f][v]
			positions = append(positions, gglm.NewVec4(s[0]*halfSize, s[1]*halfSize, s[2]*halfSize, 1))
		}

		colors = append(colors, repeatColor(faceColors[f], len(cubeFaces[f]))...)
	}

	m, _ := NewMesh("cube", positions, colors)
	return m
}
