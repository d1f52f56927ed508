package renderer_test

import (
	"errors"
	"testing"

	"github.com/bloeys/glscaffold/renderer"
	"github.com/bloeys/glscaffold/renderer/rendtest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFound(t *testing.T) {
	assert.False(t, renderer.NotFound.Found())
	assert.True(t, renderer.Location(0).Found())
	assert.True(t, renderer.Location(7).Found())
}

func TestCheckErrorsEmptyQueue(t *testing.T) {
	rec := rendtest.NewRecorder()
	assert.NoError(t, renderer.CheckErrors(rec, "nothing"))
}

func TestCheckErrorsDrainsQueue(t *testing.T) {

	rec := rendtest.NewRecorder()
	rec.QueueError(renderer.ErrorCode_InvalidValue)
	rec.QueueError(renderer.ErrorCode_InvalidOperation)

	err := renderer.CheckErrors(rec, "draw")
	require.Error(t, err)

	var glErr *renderer.GLError
	require.True(t, errors.As(err, &glErr))
	assert.Equal(t, "draw", glErr.Op)
	assert.Equal(t, []renderer.ErrorCode{renderer.ErrorCode_InvalidValue, renderer.ErrorCode_InvalidOperation}, glErr.Codes)
	assert.Equal(t, "error in draw: invalid value. invalid operation.", err.Error())

	assert.Empty(t, rec.PendingErrors())
	assert.NoError(t, renderer.CheckErrors(rec, "draw"))
}

func TestCheckErrorsIsBounded(t *testing.T) {

	rec := rendtest.NewRecorder()
	for i := 0; i < 40; i++ {
		rec.QueueError(renderer.ErrorCode_OutOfMemory)
	}

	var glErr *renderer.GLError
	require.ErrorAs(t, renderer.CheckErrors(rec, "upload"), &glErr)
	assert.Len(t, glErr.Codes, 32)
	assert.Len(t, rec.PendingErrors(), 8)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "vertex", renderer.ShaderStage_Vertex.String())
	assert.Equal(t, "fragment", renderer.ShaderStage_Fragment.String())
	assert.Equal(t, "triangle_fan", renderer.Primitive_TriangleFan.String())
	assert.Equal(t, "triangles", renderer.Primitive_Triangles.String())
	assert.Equal(t, "no error", renderer.ErrorCode_None.String())
	assert.Equal(t, "#3", renderer.Handle(3).String())
}
