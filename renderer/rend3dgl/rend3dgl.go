package rend3dgl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glscaffold/assert"
	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer"
	"github.com/go-gl/gl/v4.1-core/gl"
)

var _ renderer.Context = &Rend3DGL{}

// Rend3DGL is the OpenGL 4.1 core binding context. It must be created after the window's
// GL context is made current, and used only from the thread that owns that context.
type Rend3DGL struct {
	BoundProgId uint32
	BoundVboId  uint32

	// Core profile refuses attribute pointers without a bound vertex array object,
	// so one is created and kept bound for the lifetime of the context.
	DefaultVaoId uint32
}

func (r *Rend3DGL) CreateShader(stage renderer.ShaderStage) renderer.Handle {
	return renderer.Handle(gl.CreateShader(shaderStageToGl(stage)))
}

func (r *Rend3DGL) ShaderSource(shader renderer.Handle, src string) {

	shaderCStr, shaderFree := gl.Strs(src + "\x00")
	defer shaderFree()
	gl.ShaderSource(uint32(shader), 1, shaderCStr, nil)
}

func (r *Rend3DGL) CompileShader(shader renderer.Handle) {
	gl.CompileShader(uint32(shader))
}

func (r *Rend3DGL) ShaderCompiled(shader renderer.Handle) bool {

	var compiledSuccessfully int32
	gl.GetShaderiv(uint32(shader), gl.COMPILE_STATUS, &compiledSuccessfully)
	return compiledSuccessfully == gl.TRUE
}

func (r *Rend3DGL) ShaderInfoLog(shader renderer.Handle) string {

	var logLength int32
	gl.GetShaderiv(uint32(shader), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetShaderInfoLog(uint32(shader), logLength, nil, log)
	return gl.GoStr(log)
}

func (r *Rend3DGL) DeleteShader(shader renderer.Handle) {
	gl.DeleteShader(uint32(shader))
}

func (r *Rend3DGL) CreateProgram() renderer.Handle {
	return renderer.Handle(gl.CreateProgram())
}

func (r *Rend3DGL) AttachShader(prog, shader renderer.Handle) {
	gl.AttachShader(uint32(prog), uint32(shader))
}

func (r *Rend3DGL) DetachShader(prog, shader renderer.Handle) {
	gl.DetachShader(uint32(prog), uint32(shader))
}

func (r *Rend3DGL) LinkProgram(prog renderer.Handle) {
	gl.LinkProgram(uint32(prog))
}

func (r *Rend3DGL) ProgramLinked(prog renderer.Handle) bool {

	var linkedSuccessfully int32
	gl.GetProgramiv(uint32(prog), gl.LINK_STATUS, &linkedSuccessfully)
	return linkedSuccessfully == gl.TRUE
}

func (r *Rend3DGL) ProgramInfoLog(prog renderer.Handle) string {

	var logLength int32
	gl.GetProgramiv(uint32(prog), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}

	log := gl.Str(strings.Repeat("\x00", int(logLength+1)))
	gl.GetProgramInfoLog(uint32(prog), logLength, nil, log)
	return gl.GoStr(log)
}

func (r *Rend3DGL) DeleteProgram(prog renderer.Handle) {

	if uint32(prog) == r.BoundProgId {
		r.BoundProgId = 0
	}

	gl.DeleteProgram(uint32(prog))
}

func (r *Rend3DGL) AttribLocation(prog renderer.Handle, name string) renderer.Location {
	return renderer.Location(gl.GetAttribLocation(uint32(prog), gl.Str(name+"\x00")))
}

func (r *Rend3DGL) UniformLocation(prog renderer.Handle, name string) renderer.Location {
	return renderer.Location(gl.GetUniformLocation(uint32(prog), gl.Str(name+"\x00")))
}

func (r *Rend3DGL) UseProgram(prog renderer.Handle) {
	gl.UseProgram(uint32(prog))
	r.BoundProgId = uint32(prog)
}

func (r *Rend3DGL) ActiveProgram() renderer.Handle {
	return renderer.Handle(r.BoundProgId)
}

func (r *Rend3DGL) GenBuffer() renderer.Handle {

	var id uint32
	gl.GenBuffers(1, &id)
	return renderer.Handle(id)
}

func (r *Rend3DGL) BindArrayBuffer(buf renderer.Handle) {
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	r.BoundVboId = uint32(buf)
}

func (r *Rend3DGL) BoundArrayBuffer() renderer.Handle {
	return renderer.Handle(r.BoundVboId)
}

func (r *Rend3DGL) ArrayBufferData(values []float32, usage renderer.BufUsage) {

	sizeInBytes := len(values) * renderer.SizeOfFloat32
	if sizeInBytes == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, gl.Ptr(nil), bufUsageToGl(usage))
	} else {
		gl.BufferData(gl.ARRAY_BUFFER, sizeInBytes, gl.Ptr(&values[0]), bufUsageToGl(usage))
	}
}

func (r *Rend3DGL) DeleteBuffer(buf renderer.Handle) {

	if uint32(buf) == r.BoundVboId {
		r.BoundVboId = 0
	}

	id := uint32(buf)
	gl.DeleteBuffers(1, &id)
}

func (r *Rend3DGL) EnableVertexAttribArray(loc renderer.Location) {
	gl.EnableVertexAttribArray(uint32(loc))
}

func (r *Rend3DGL) DisableVertexAttribArray(loc renderer.Location) {
	gl.DisableVertexAttribArray(uint32(loc))
}

func (r *Rend3DGL) VertexAttribPointer(loc renderer.Location, compCount int32, stride int32, byteOffset uintptr) {
	gl.VertexAttribPointerWithOffset(uint32(loc), compCount, gl.FLOAT, false, stride, byteOffset)
}

func (r *Rend3DGL) Uniform1f(loc renderer.Location, x float32) {
	gl.Uniform1f(int32(loc), x)
}

func (r *Rend3DGL) Uniform2f(loc renderer.Location, x, y float32) {
	gl.Uniform2f(int32(loc), x, y)
}

func (r *Rend3DGL) Uniform3f(loc renderer.Location, x, y, z float32) {
	gl.Uniform3f(int32(loc), x, y, z)
}

func (r *Rend3DGL) Uniform4f(loc renderer.Location, x, y, z, w float32) {
	gl.Uniform4f(int32(loc), x, y, z, w)
}

func (r *Rend3DGL) UniformMat4(loc renderer.Location, m *gglm.Mat4) {
	gl.UniformMatrix4fv(int32(loc), 1, false, &m.Data[0][0])
}

func (r *Rend3DGL) EnableBackFaceCulling(front renderer.Winding) {

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	switch front {
	case renderer.Winding_CW:
		gl.FrontFace(gl.CW)
	case renderer.Winding_CCW:
		gl.FrontFace(gl.CCW)
	default:
		assert.T(false, "Unknown winding '%d'", front)
	}
}

func (r *Rend3DGL) DisableFaceCulling() {
	gl.Disable(gl.CULL_FACE)
}

func (r *Rend3DGL) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (r *Rend3DGL) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

func (r *Rend3DGL) DrawArrays(mode renderer.Primitive, first, count int32) {
	gl.DrawArrays(primitiveToGl(mode), first, count)
}

func (r *Rend3DGL) GetError() renderer.ErrorCode {

	switch gl.GetError() {
	case gl.NO_ERROR:
		return renderer.ErrorCode_None
	case gl.INVALID_ENUM:
		return renderer.ErrorCode_InvalidEnum
	case gl.INVALID_VALUE:
		return renderer.ErrorCode_InvalidValue
	case gl.INVALID_OPERATION:
		return renderer.ErrorCode_InvalidOperation
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return renderer.ErrorCode_InvalidFramebufferOperation
	case gl.OUT_OF_MEMORY:
		return renderer.ErrorCode_OutOfMemory
	default:
		return renderer.ErrorCode_Unknown
	}
}

// Delete releases the default vertex array. Resources created through this context
// must be deleted before calling it.
func (r *Rend3DGL) Delete() {

	if r.DefaultVaoId == 0 {
		return
	}

	gl.BindVertexArray(0)
	gl.DeleteVertexArrays(1, &r.DefaultVaoId)
	r.DefaultVaoId = 0
}

func shaderStageToGl(s renderer.ShaderStage) uint32 {

	switch s {
	case renderer.ShaderStage_Vertex:
		return gl.VERTEX_SHADER
	case renderer.ShaderStage_Fragment:
		return gl.FRAGMENT_SHADER
	}

	assert.T(false, "Unknown shader stage '%d'", s)
	return 0
}

func primitiveToGl(p renderer.Primitive) uint32 {

	switch p {
	case renderer.Primitive_Points:
		return gl.POINTS
	case renderer.Primitive_Lines:
		return gl.LINES
	case renderer.Primitive_Triangles:
		return gl.TRIANGLES
	case renderer.Primitive_TriangleStrip:
		return gl.TRIANGLE_STRIP
	case renderer.Primitive_TriangleFan:
		return gl.TRIANGLE_FAN
	}

	assert.T(false, "Unexpected primitive '%v'", p)
	return 0
}

func bufUsageToGl(b renderer.BufUsage) uint32 {

	switch b {
	case renderer.BufUsage_Static_Draw:
		return gl.STATIC_DRAW
	case renderer.BufUsage_Dynamic_Draw:
		return gl.DYNAMIC_DRAW
	case renderer.BufUsage_Stream_Draw:
		return gl.STREAM_DRAW

	case renderer.BufUsage_Static_Read:
		return gl.STATIC_READ
	case renderer.BufUsage_Dynamic_Read:
		return gl.DYNAMIC_READ
	case renderer.BufUsage_Stream_Read:
		return gl.STREAM_READ

	case renderer.BufUsage_Static_Copy:
		return gl.STATIC_COPY
	case renderer.BufUsage_Dynamic_Copy:
		return gl.DYNAMIC_COPY
	case renderer.BufUsage_Stream_Copy:
		return gl.STREAM_COPY
	}

	assert.T(false, "Unexpected BufUsage value '%v'", b)
	return 0
}

// NewRend3DGL loads the GL function pointers for the current context and binds the default vertex array.
// A window with a current GL context must exist before calling this.
func NewRend3DGL() (*Rend3DGL, error) {

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to init OpenGL: %w", err)
	}

	r := &Rend3DGL{}
	gl.GenVertexArrays(1, &r.DefaultVaoId)
	if r.DefaultVaoId == 0 {
		return nil, errors.New("failed to create OpenGL vertex array object")
	}
	gl.BindVertexArray(r.DefaultVaoId)

	logging.InfoLog.Printf("OpenGL context ready. Version=%s; Renderer=%s\n", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return r, nil
}
