package drawables

import (
	"errors"
	"io"
	"math"
	"os"
	"testing"

	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer"
	"github.com/bloeys/glscaffold/renderer/rendtest"
	"github.com/bloeys/glscaffold/shaders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	colorVertSrc = `//shader:vertex
#version 410
in vec4 position;
in vec4 color;
uniform vec3 offset;
out vec4 fragment_color;
void main()
{
    gl_Position = position + vec4(offset, 0.0);
    fragment_color = color;
}
`
	colorFragSrc = `//shader:fragment
#version 410
in vec4 fragment_color;
out vec4 out_color;
void main()
{
    out_color = fragment_color;
}
`

	// positionOnlyVertSrc has no color attribute and no offset uniform
	positionOnlyVertSrc = `//shader:vertex
#version 410
in vec4 position;
void main()
{
    gl_Position = position;
}
`
)

// A triangle in the halves layout with 4 components per vertex
var triangleData = []float32{
	0, 0.5, 0, 1,
	0.5, -0.5, 0, 1,
	-0.5, -0.5, 0, 1,

	1, 0, 0, 1,
	0, 1, 0, 1,
	0, 0, 1, 1,
}

func TestMain(m *testing.M) {
	logging.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newProgram(t *testing.T, rec *rendtest.Recorder, src string) *shaders.ShaderProgram {

	t.Helper()

	prog, err := shaders.LoadAndCompileCombinedShaderSrc(rec, []byte(src))
	require.NoError(t, err)
	return prog
}

func TestNewDrawable(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)

	d, err := NewDrawable(triangleData, 4, prog)
	require.NoError(t, err)

	assert.Equal(t, int32(3), d.VertexCount)
	assert.Equal(t, int32(4), d.VertexDepth)
	assert.Equal(t, renderer.Primitive_TriangleFan, d.Primitive)
	assert.Equal(t, renderer.Location(0), d.PositionLoc)
	assert.Equal(t, renderer.Location(1), d.ColorLoc)
	assert.True(t, d.OffsetLoc.Found())

	assert.Equal(t, triangleData, rec.BufferContents(d.Vbo.Id))
	assert.Equal(t, renderer.BufUsage_Static_Draw, rec.BufferUsage(d.Vbo.Id))
	assert.Equal(t, renderer.Handle(0), rec.BoundArrayBuffer())
}

func TestNewDrawableRejectsBadInput(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)

	_, err := NewDrawable(triangleData, 4, nil)
	assert.Error(t, err)

	_, err = NewDrawable(triangleData, 0, prog)
	assert.Error(t, err)

	_, err = NewDrawable(nil, 4, prog)
	assert.True(t, errors.Is(err, ErrBadLayout))

	// 5 values can't split into equal halves of depth 4
	_, err = NewDrawable(triangleData[:5], 4, prog)
	assert.ErrorIs(t, err, ErrBadLayout)

	assert.Zero(t, rec.Count("GenBuffer"))
}

func TestHalvesVertexCount(t *testing.T) {

	count, err := halvesVertexCount(24, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(3), count)

	count, err = halvesVertexCount(math.MaxInt32-1, 1)
	require.NoError(t, err)
	assert.Equal(t, int32((math.MaxInt32-1)/2), count)

	// Too long for an int32 count, even though it splits evenly
	_, err = halvesVertexCount(1<<32, 4)
	assert.ErrorIs(t, err, ErrBadLayout)

	_, err = halvesVertexCount(math.MaxInt32+1, 1)
	assert.ErrorIs(t, err, ErrBadLayout)

	_, err = halvesVertexCount(0, 4)
	assert.ErrorIs(t, err, ErrBadLayout)
}

func TestColorByteOffset(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)

	for _, tt := range []struct {
		depth int32
		data  []float32
	}{
		{depth: 4, data: triangleData},
		{depth: 2, data: make([]float32, 2*2*5)},
		{depth: 3, data: make([]float32, 2*3*1)},
	} {
		d, err := NewDrawable(tt.data, tt.depth, prog)
		require.NoError(t, err)

		assert.Equal(t, uintptr(tt.depth)*uintptr(d.VertexCount)*4, d.ColorByteOffset())
		assert.Equal(t, uintptr(len(tt.data)/2*4), d.ColorByteOffset(), "color data starts halfway through the buffer")
	}
}

func TestDrawCallSequence(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)
	d, err := NewDrawable(triangleData, 4, prog)
	require.NoError(t, err)

	rec.ResetCalls()
	d.Draw()

	assert.Equal(t, []string{
		"UseProgram",
		"BindArrayBuffer",
		"EnableVertexAttribArray", "VertexAttribPointer",
		"EnableVertexAttribArray", "VertexAttribPointer",
		"Uniform3f",
		"DrawArrays",
		"BindArrayBuffer",
		"UseProgram",
	}, rec.Names())

	pointers := rec.Named("VertexAttribPointer")
	assert.Equal(t, []any{d.PositionLoc, int32(4), int32(0), uintptr(0)}, pointers[0].Args)
	assert.Equal(t, []any{d.ColorLoc, int32(4), int32(0), uintptr(48)}, pointers[1].Args)

	assert.Equal(t, []any{renderer.Primitive_TriangleFan, int32(0), int32(3)}, rec.Named("DrawArrays")[0].Args)

	// Binding state is restored but attribute arrays stay enabled
	assert.Equal(t, renderer.Handle(0), rec.ActiveProgram())
	assert.Equal(t, renderer.Handle(0), rec.BoundArrayBuffer())
	assert.True(t, rec.AttribEnabled(d.PositionLoc))
	assert.True(t, rec.AttribEnabled(d.ColorLoc))
	assert.Empty(t, rec.PendingErrors())
}

func TestDrawPanicsWhenProgramActive(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)
	d, err := NewDrawable(triangleData, 4, prog)
	require.NoError(t, err)

	prog.Bind()
	assert.Panics(t, func() { d.Draw() })
	prog.UnBind()
}

func TestTranslateIsAdditive(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)
	d, err := NewDrawable(triangleData, 4, prog)
	require.NoError(t, err)

	d.Translate(1, 0, 0)
	d.Translate(1, 0, 0)
	d.Draw()

	off := d.Offset()
	assert.Equal(t, [3]float32{2, 0, 0}, off.Data)
	assert.Equal(t, []float32{2, 0, 0}, rec.UniformValue(prog.Id, d.OffsetLoc))

	d.Translate(-2, 0.5, -1)
	off = d.Offset()
	assert.Equal(t, [3]float32{0, 0.5, -1}, off.Data)
}

func TestDrawSkipsMissingLocations(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, positionOnlyVertSrc+colorFragSrc)

	d, err := NewDrawable(triangleData, 4, prog)
	require.NoError(t, err)

	assert.True(t, d.PositionLoc.Found())
	assert.Equal(t, renderer.NotFound, d.ColorLoc)
	assert.Equal(t, renderer.NotFound, d.OffsetLoc)

	rec.ResetCalls()
	d.Draw()

	assert.Equal(t, 1, rec.Count("EnableVertexAttribArray"))
	assert.Equal(t, 1, rec.Count("VertexAttribPointer"))
	assert.Zero(t, rec.Count("Uniform3f"))
	assert.Equal(t, 1, rec.Count("DrawArrays"))
	assert.Empty(t, rec.PendingErrors())
}

func TestDrawableDelete(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)
	d, err := NewDrawable(triangleData, 4, prog)
	require.NoError(t, err)

	buf := d.Vbo.Id
	d.Delete()
	d.Delete()

	assert.True(t, rec.IsDeleted(buf))
	assert.Equal(t, 1, rec.Count("DeleteBuffer"))
	assert.False(t, rec.IsDeleted(prog.Id), "the program is shared and must outlive the drawable")
	assert.Panics(t, func() { d.Draw() })
}

func TestSceneActivatesProgramOnce(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)

	ds := make([]*Drawable, 3)
	for i := range ds {
		d, err := NewDrawable(triangleData, 4, prog)
		require.NoError(t, err)
		ds[i] = d
	}

	scene, err := NewScene(NewList(ds...), prog)
	require.NoError(t, err)

	rec.ResetCalls()
	scene.Draw()

	useCalls := rec.Named("UseProgram")
	require.Len(t, useCalls, 2)
	assert.Equal(t, []any{prog.Id}, useCalls[0].Args)
	assert.Equal(t, []any{renderer.Handle(0)}, useCalls[1].Args)

	names := rec.Names()
	assert.Equal(t, "UseProgram", names[0])
	assert.Equal(t, "UseProgram", names[len(names)-1])
	assert.Equal(t, 3, rec.Count("DrawArrays"))
	assert.Empty(t, rec.PendingErrors())
}

func TestSceneDrawsInInsertionOrder(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)

	first, err := NewDrawable(triangleData, 4, prog)
	require.NoError(t, err)
	second, err := NewDrawable(triangleData, 4, prog)
	require.NoError(t, err)

	list := NewList(second)
	scene, err := NewScene(list, prog)
	require.NoError(t, err)

	// The list is shared; additions after construction are drawn too
	list.Add(first)
	assert.Equal(t, 2, scene.Drawables.Len())

	rec.ResetCalls()
	scene.Draw()

	binds := make([]renderer.Handle, 0)
	for _, c := range rec.Named("BindArrayBuffer") {
		if h := c.Args[0].(renderer.Handle); h != 0 {
			binds = append(binds, h)
		}
	}
	assert.Equal(t, []renderer.Handle{second.Vbo.Id, first.Vbo.Id}, binds)
}

func TestSceneRejectsForeignProgram(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)
	other := newProgram(t, rec, colorVertSrc+colorFragSrc)

	d, err := NewDrawable(triangleData, 4, other)
	require.NoError(t, err)

	scene, err := NewScene(NewList(d), prog)
	require.NoError(t, err)
	assert.Panics(t, func() { scene.Draw() })
}

func TestNewSceneRejectsNil(t *testing.T) {

	rec := rendtest.NewRecorder()
	prog := newProgram(t, rec, colorVertSrc+colorFragSrc)

	_, err := NewScene(nil, prog)
	assert.Error(t, err)

	_, err = NewScene(NewList(), nil)
	assert.Error(t, err)
}
