// The renderer package defines the binding context: the single, global, mutable state of the
// native graphics API (currently active program, currently bound array buffer, enabled vertex
// attribute arrays) plus the calls that mutate or read it.
//
// Every Bind/UseProgram style call changes what the next call, by any component, will observe.
// Because of this, callers must pair each bind with its unbind on every exit path, including
// error paths, and must never assume that program activation is reentrant.
//
// A Context is owned by one thread for its whole lifetime and is not safe for concurrent use.
package renderer

import (
	"fmt"

	"github.com/bloeys/gglm/gglm"
)

// Handle is an opaque native object name. Zero means 'no object'.
type Handle uint32

// Location is an attribute or uniform slot in a linked program.
type Location int32

// NotFound is returned by location lookups for names the linked program doesn't have.
// It is never a valid location.
const NotFound Location = -1

func (l Location) Found() bool {
	return l >= 0
}

type ShaderStage uint8

const (
	ShaderStage_Unknown ShaderStage = iota
	ShaderStage_Vertex
	ShaderStage_Fragment
)

func (s ShaderStage) String() string {

	switch s {
	case ShaderStage_Vertex:
		return "vertex"
	case ShaderStage_Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

type Primitive uint8

const (
	Primitive_Unknown Primitive = iota
	Primitive_Points
	Primitive_Lines
	Primitive_Triangles
	Primitive_TriangleStrip
	Primitive_TriangleFan
)

func (p Primitive) String() string {

	switch p {
	case Primitive_Points:
		return "points"
	case Primitive_Lines:
		return "lines"
	case Primitive_Triangles:
		return "triangles"
	case Primitive_TriangleStrip:
		return "triangle_strip"
	case Primitive_TriangleFan:
		return "triangle_fan"
	default:
		return "unknown"
	}
}

// Winding is the vertex order that makes a triangle front facing
type Winding uint8

const (
	Winding_Unknown Winding = iota
	Winding_CW
	Winding_CCW
)

type Context interface {

	// Shader stages
	CreateShader(stage ShaderStage) Handle
	ShaderSource(shader Handle, src string)
	CompileShader(shader Handle)
	ShaderCompiled(shader Handle) bool
	// ShaderInfoLog returns the compiler diagnostics. Only call it after a failed compile.
	ShaderInfoLog(shader Handle) string
	DeleteShader(shader Handle)

	// Programs
	CreateProgram() Handle
	AttachShader(prog, shader Handle)
	DetachShader(prog, shader Handle)
	LinkProgram(prog Handle)
	ProgramLinked(prog Handle) bool
	// ProgramInfoLog returns the linker diagnostics. Only call it after a failed link.
	ProgramInfoLog(prog Handle) string
	DeleteProgram(prog Handle)
	AttribLocation(prog Handle, name string) Location
	UniformLocation(prog Handle, name string) Location

	// UseProgram makes prog the active program. Passing 0 deactivates.
	UseProgram(prog Handle)
	ActiveProgram() Handle

	// Array buffers
	GenBuffer() Handle
	// BindArrayBuffer makes buf the current array buffer. Passing 0 unbinds.
	BindArrayBuffer(buf Handle)
	BoundArrayBuffer() Handle
	// ArrayBufferData uploads data to the currently bound array buffer
	ArrayBufferData(data []float32, usage BufUsage)
	DeleteBuffer(buf Handle)

	// Vertex attributes. Pointers read from the currently bound array buffer.
	EnableVertexAttribArray(loc Location)
	DisableVertexAttribArray(loc Location)
	// VertexAttribPointer describes float components; stride and byteOffset are in bytes
	VertexAttribPointer(loc Location, compCount int32, stride int32, byteOffset uintptr)

	// Uniforms of the active program
	Uniform1f(loc Location, x float32)
	Uniform2f(loc Location, x, y float32)
	Uniform3f(loc Location, x, y, z float32)
	Uniform4f(loc Location, x, y, z, w float32)
	UniformMat4(loc Location, m *gglm.Mat4)

	// EnableBackFaceCulling discards triangles facing away, where front faces use the given winding
	EnableBackFaceCulling(front Winding)
	DisableFaceCulling()

	// Frame
	ClearColor(r, g, b, a float32)
	Clear()
	DrawArrays(mode Primitive, first, count int32)

	GetError() ErrorCode
}

// SizeOfFloat32 is the size in bytes of one vertex component
const SizeOfFloat32 = 4

type ErrorCode uint32

const (
	ErrorCode_None ErrorCode = iota
	ErrorCode_InvalidEnum
	ErrorCode_InvalidValue
	ErrorCode_InvalidOperation
	ErrorCode_InvalidFramebufferOperation
	ErrorCode_OutOfMemory
	ErrorCode_Unknown
)

func (e ErrorCode) String() string {

	switch e {
	case ErrorCode_None:
		return "no error"
	case ErrorCode_InvalidEnum:
		return "invalid enum"
	case ErrorCode_InvalidValue:
		return "invalid value"
	case ErrorCode_InvalidOperation:
		return "invalid operation"
	case ErrorCode_InvalidFramebufferOperation:
		return "invalid framebuffer operation"
	case ErrorCode_OutOfMemory:
		return "out of memory"
	default:
		return "unknown error"
	}
}

// GLError holds every error code that was queued when CheckErrors ran
type GLError struct {
	Op    string
	Codes []ErrorCode
}

func (e *GLError) Error() string {

	msg := "error in " + e.Op + ":"
	for i := 0; i < len(e.Codes); i++ {
		msg += " " + e.Codes[i].String() + "."
	}

	return msg
}

// maxQueuedErrors bounds CheckErrors in case a broken driver never reports ErrorCode_None
const maxQueuedErrors = 32

// CheckErrors drains the context's error queue and returns a *GLError naming op if anything was queued
func CheckErrors(ctx Context, op string) error {

	var codes []ErrorCode
	for i := 0; i < maxQueuedErrors; i++ {

		code := ctx.GetError()
		if code == ErrorCode_None {
			break
		}

		codes = append(codes, code)
	}

	if len(codes) == 0 {
		return nil
	}

	return &GLError{Op: op, Codes: codes}
}

func (h Handle) String() string {
	return fmt.Sprintf("#%d", uint32(h))
}
