package drawables

import (
	"errors"
	"fmt"
	"math"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glscaffold/assert"
	"github.com/bloeys/glscaffold/buffers"
	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer"
	"github.com/bloeys/glscaffold/shaders"
)

const (
	PositionAttribName = "position"
	ColorAttribName    = "color"
	OffsetUniformName  = "offset"
)

var ErrBadLayout = errors.New("vertex data doesn't split into equal position and color halves")

// Drawable is one vertex buffer drawn with a shared program.
//
// The vertex data it is built from uses the halves layout: the first half of the array holds
// VertexDepth components per vertex of position data, and the second half the same number of
// color components per vertex. The color attribute reads from byte offset
// VertexDepth*VertexCount*4, so data that isn't laid out this way renders wrongly.
type Drawable struct {
	Vbo  buffers.VertexBuffer
	Prog *shaders.ShaderProgram

	// VertexDepth is the number of components per vertex for both position and color
	VertexDepth int32
	VertexCount int32
	Primitive   renderer.Primitive

	PositionLoc renderer.Location
	ColorLoc    renderer.Location
	OffsetLoc   renderer.Location

	offset gglm.Vec3
}

// Translate adds to the drawable's offset. Calls accumulate; there is no reset, so callers
// wanting absolute positions must cancel their previous deltas.
func (d *Drawable) Translate(dx, dy, dz float32) {
	d.offset.Data[0] += dx
	d.offset.Data[1] += dy
	d.offset.Data[2] += dz
}

func (d *Drawable) Offset() gglm.Vec3 {
	return d.offset
}

// ColorByteOffset is where color data starts in the vertex buffer
func (d *Drawable) ColorByteOffset() uintptr {
	return uintptr(d.VertexDepth) * uintptr(d.VertexCount) * renderer.SizeOfFloat32
}

// Draw binds the drawable's program, draws, and unbinds the program again.
// The program must not already be active.
//
// Vertex attribute arrays enabled by Draw stay enabled afterwards.
func (d *Drawable) Draw() {
	d.Prog.Bind()
	defer d.Prog.UnBind()

	d.draw()
}

// draw issues the drawable's calls assuming its program is already active
func (d *Drawable) draw() {

	assert.T(d.Vbo.Id != 0, "Draw called on a deleted drawable")

	ctx := d.Prog.Context()

	d.Vbo.Bind()
	defer d.Vbo.UnBind()

	if d.PositionLoc.Found() {
		ctx.EnableVertexAttribArray(d.PositionLoc)
		ctx.VertexAttribPointer(d.PositionLoc, d.VertexDepth, 0, 0)
	}

	if d.ColorLoc.Found() {
		ctx.EnableVertexAttribArray(d.ColorLoc)
		ctx.VertexAttribPointer(d.ColorLoc, d.VertexDepth, 0, d.ColorByteOffset())
	}

	if d.OffsetLoc.Found() {
		ctx.Uniform3f(d.OffsetLoc, d.offset.Data[0], d.offset.Data[1], d.offset.Data[2])
	}

	ctx.DrawArrays(d.Primitive, 0, d.VertexCount)
}

// Delete releases the drawable's vertex buffer. The program is shared and is not deleted.
func (d *Drawable) Delete() {
	d.Vbo.Delete()
}

// halvesVertexCount is the number of vertices in valueCount values of halves layout data.
// Counts are int32 on the native side, so longer data is rejected rather than truncated.
func halvesVertexCount(valueCount int64, vertexDepth int32) (int32, error) {

	if valueCount == 0 || valueCount%int64(2*vertexDepth) != 0 {
		return 0, fmt.Errorf("%w: %d values with a vertex depth of %d", ErrBadLayout, valueCount, vertexDepth)
	}

	if valueCount > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %d values is more than a buffer can hold", ErrBadLayout, valueCount)
	}

	return int32(valueCount / int64(vertexDepth) / 2), nil
}

// NewDrawable uploads vertexData, which must use the halves layout with vertexDepth components
// per vertex, and resolves the 'position', 'color' and 'offset' locations of prog.
// Names prog doesn't have are skipped when drawing.
func NewDrawable(vertexData []float32, vertexDepth int32, prog *shaders.ShaderProgram) (*Drawable, error) {

	if prog == nil {
		return nil, errors.New("drawable requires a shader program")
	}

	if vertexDepth <= 0 {
		return nil, fmt.Errorf("vertex depth must be positive, got %d", vertexDepth)
	}

	vertexCount, err := halvesVertexCount(int64(len(vertexData)), vertexDepth)
	if err != nil {
		return nil, err
	}

	d := &Drawable{
		Vbo:         buffers.NewVertexBuffer(prog.Context(), vertexData),
		Prog:        prog,
		VertexDepth: vertexDepth,
		VertexCount: vertexCount,
		Primitive:   renderer.Primitive_TriangleFan,

		PositionLoc: prog.AttribLocation(PositionAttribName),
		ColorLoc:    prog.AttribLocation(ColorAttribName),
		OffsetLoc:   prog.UniformLocation(OffsetUniformName),
	}

	if !d.PositionLoc.Found() {
		logging.WarnLog.Printf("Shader program %v has no '%s' attribute. Drawable will not set positions\n", prog.Id, PositionAttribName)
	}

	if !d.ColorLoc.Found() {
		logging.WarnLog.Printf("Shader program %v has no '%s' attribute. Drawable will not set colors\n", prog.Id, ColorAttribName)
	}

	if !d.OffsetLoc.Found() {
		logging.WarnLog.Printf("Shader program %v has no '%s' uniform. Drawable will not apply its offset\n", prog.Id, OffsetUniformName)
	}

	return d, nil
}
