package rendtest

import (
	"testing"

	"github.com/bloeys/glscaffold/renderer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	vertSrc = `#version 410
in vec4 position;
in vec4 color;
uniform vec3 offset;
out vec4 fragment_color;
void main() { gl_Position = position; fragment_color = color; }`

	fragSrc = `#version 410
uniform float brightness;
in vec4 fragment_color;
out vec4 out_color;
void main() { out_color = fragment_color * brightness; }`
)

func compiled(r *Recorder, stage renderer.ShaderStage, src string) renderer.Handle {
	h := r.CreateShader(stage)
	r.ShaderSource(h, src)
	r.CompileShader(h)
	return h
}

func TestRecorderLinkAssignsLocations(t *testing.T) {

	r := NewRecorder()
	vs := compiled(r, renderer.ShaderStage_Vertex, vertSrc)
	fs := compiled(r, renderer.ShaderStage_Fragment, fragSrc)
	require.True(t, r.ShaderCompiled(vs))
	require.True(t, r.ShaderCompiled(fs))

	p := r.CreateProgram()
	r.AttachShader(p, vs)
	r.AttachShader(p, fs)
	r.LinkProgram(p)
	require.True(t, r.ProgramLinked(p))

	assert.Equal(t, renderer.Location(0), r.AttribLocation(p, "position"))
	assert.Equal(t, renderer.Location(1), r.AttribLocation(p, "color"))
	assert.Equal(t, renderer.NotFound, r.AttribLocation(p, "normal"))

	assert.Equal(t, renderer.Location(0), r.UniformLocation(p, "offset"))
	assert.Equal(t, renderer.Location(1), r.UniformLocation(p, "brightness"))
	assert.Equal(t, renderer.NotFound, r.UniformLocation(p, "missing"))

	assert.Empty(t, r.PendingErrors())
}

func TestRecorderCompileFailure(t *testing.T) {

	r := NewRecorder()
	h := compiled(r, renderer.ShaderStage_Vertex, "void notmain() {")
	assert.False(t, r.ShaderCompiled(h))
	assert.NotEmpty(t, r.ShaderInfoLog(h))

	r.CompileLog = func(stage renderer.ShaderStage, src string) string { return "" }
	r.CompileShader(h)
	assert.True(t, r.ShaderCompiled(h))
}

func TestRecorderLinkNeedsBothStages(t *testing.T) {

	r := NewRecorder()
	vs := compiled(r, renderer.ShaderStage_Vertex, vertSrc)

	p := r.CreateProgram()
	r.AttachShader(p, vs)
	r.LinkProgram(p)
	assert.False(t, r.ProgramLinked(p))
	assert.NotEmpty(t, r.ProgramInfoLog(p))
}

func TestRecorderDeletedObjectsQueueErrors(t *testing.T) {

	r := NewRecorder()

	buf := r.GenBuffer()
	r.DeleteBuffer(buf)
	assert.True(t, r.IsDeleted(buf))
	assert.Empty(t, r.PendingErrors())

	r.BindArrayBuffer(buf)
	assert.Equal(t, []renderer.ErrorCode{renderer.ErrorCode_InvalidValue}, r.PendingErrors())
	assert.Equal(t, renderer.Handle(0), r.BoundArrayBuffer())
}

func TestRecorderBufferUpload(t *testing.T) {

	r := NewRecorder()
	buf := r.GenBuffer()
	r.BindArrayBuffer(buf)
	r.ArrayBufferData([]float32{1, 2, 3}, renderer.BufUsage_Static_Draw)
	r.BindArrayBuffer(0)

	assert.Equal(t, []float32{1, 2, 3}, r.BufferContents(buf))
	assert.Equal(t, renderer.BufUsage_Static_Draw, r.BufferUsage(buf))

	// Uploading with nothing bound is an error
	r.ArrayBufferData([]float32{4}, renderer.BufUsage_Static_Draw)
	assert.Equal(t, []renderer.ErrorCode{renderer.ErrorCode_InvalidOperation}, r.PendingErrors())
}

func TestRecorderCallLog(t *testing.T) {

	r := NewRecorder()
	r.ClearColor(0, 0, 0, 1)
	r.Clear()
	r.Clear()

	assert.Equal(t, []string{"ClearColor", "Clear", "Clear"}, r.Names())
	assert.Equal(t, 2, r.Count("Clear"))
	assert.Equal(t, []any{float32(0), float32(0), float32(0), float32(1)}, r.Named("ClearColor")[0].Args)

	r.ResetCalls()
	assert.Empty(t, r.Calls)
}
