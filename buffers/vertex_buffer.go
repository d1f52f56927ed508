package buffers

import (
	"github.com/bloeys/glscaffold/assert"
	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer"
)

// VertexBuffer is a static array buffer of float32 vertex data.
// Its contents are uploaded once by NewVertexBuffer and never change.
type VertexBuffer struct {
	Id renderer.Handle
	// Len is the number of float32 values stored in the buffer
	Len int
	ctx renderer.Context
}

// Bind makes this the context's current array buffer. Attribute pointers and draws
// read from the current buffer, so pair every Bind with an UnBind on every exit path.
func (vb *VertexBuffer) Bind() {
	assert.T(vb.Id != 0, "Bind called on a deleted vertex buffer")
	vb.ctx.BindArrayBuffer(vb.Id)
}

func (vb *VertexBuffer) UnBind() {

	bound := vb.ctx.BoundArrayBuffer()
	assert.T(bound == vb.Id, "UnBind of vertex buffer %v but the bound buffer is %v", vb.Id, bound)
	vb.ctx.BindArrayBuffer(0)
}

// Delete releases the native buffer. Calling Delete again is a no-op.
func (vb *VertexBuffer) Delete() {

	if vb.Id == 0 {
		return
	}

	vb.ctx.DeleteBuffer(vb.Id)
	vb.Id = 0
	vb.Len = 0
}

// NewVertexBuffer allocates a buffer and uploads values into it as static draw data.
// The buffer is left unbound.
func NewVertexBuffer(ctx renderer.Context, values []float32) VertexBuffer {

	vb := VertexBuffer{
		Id:  ctx.GenBuffer(),
		Len: len(values),
		ctx: ctx,
	}

	if vb.Id == 0 {
		logging.ErrLog.Panicln("Failed to create OpenGL buffer")
	}

	vb.Bind()
	ctx.ArrayBufferData(values, renderer.BufUsage_Static_Draw)
	vb.UnBind()

	return vb
}
