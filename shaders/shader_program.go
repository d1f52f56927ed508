package shaders

import (
	"bytes"
	"errors"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glscaffold/assert"
	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer"
)

// ShaderProgram is a linked program. It is shared by pointer between every drawable and scene
// that renders with it, and doesn't own the shaders it was linked from.
type ShaderProgram struct {
	Id  renderer.Handle
	ctx renderer.Context

	UnifLocs   map[string]renderer.Location
	AttribLocs map[string]renderer.Location
}

func (sp *ShaderProgram) Context() renderer.Context {
	return sp.ctx
}

// Bind makes this the active program of its context.
//
// Activation isn't reentrant: no other program may be active when Bind is called,
// and every Bind must be paired with an UnBind on all exit paths.
func (sp *ShaderProgram) Bind() {

	assert.T(sp.Id != 0, "Bind called on a deleted shader program")

	active := sp.ctx.ActiveProgram()
	assert.T(active == 0, "Bind of shader program %v while shader program %v is still active. Nested activation is not supported", sp.Id, active)
	sp.ctx.UseProgram(sp.Id)
}

// UnBind deactivates this program. It must be the active one.
func (sp *ShaderProgram) UnBind() {

	active := sp.ctx.ActiveProgram()
	assert.T(active == sp.Id, "UnBind of shader program %v but the active shader program is %v", sp.Id, active)
	sp.ctx.UseProgram(0)
}

func (sp *ShaderProgram) IsBound() bool {
	return sp.Id != 0 && sp.ctx.ActiveProgram() == sp.Id
}

// AttribLocation returns the location of the named vertex attribute, or renderer.NotFound
// if the program has no such attribute. Results are cached.
func (sp *ShaderProgram) AttribLocation(attribName string) renderer.Location {

	loc, ok := sp.AttribLocs[attribName]
	if ok {
		return loc
	}

	assert.T(sp.Id != 0, "AttribLocation called on a deleted shader program")
	loc = sp.ctx.AttribLocation(sp.Id, attribName)
	sp.AttribLocs[attribName] = loc
	return loc
}

// UniformLocation returns the location of the named uniform, or renderer.NotFound
// if the program has no such uniform. Results are cached.
func (sp *ShaderProgram) UniformLocation(uniformName string) renderer.Location {

	loc, ok := sp.UnifLocs[uniformName]
	if ok {
		return loc
	}

	assert.T(sp.Id != 0, "UniformLocation called on a deleted shader program")
	loc = sp.ctx.UniformLocation(sp.Id, uniformName)
	sp.UnifLocs[uniformName] = loc
	return loc
}

// The SetUnif functions write to uniforms of this program, which must be bound.
// Names the program doesn't have are ignored.

func (sp *ShaderProgram) SetUnifFloat32(uniformName string, val float32) {

	loc := sp.boundUnifLoc(uniformName)
	if !loc.Found() {
		return
	}

	sp.ctx.Uniform1f(loc, val)
}

func (sp *ShaderProgram) SetUnifVec2(uniformName string, vec2 *gglm.Vec2) {

	loc := sp.boundUnifLoc(uniformName)
	if !loc.Found() {
		return
	}

	sp.ctx.Uniform2f(loc, vec2.Data[0], vec2.Data[1])
}

func (sp *ShaderProgram) SetUnifVec3(uniformName string, vec3 *gglm.Vec3) {

	loc := sp.boundUnifLoc(uniformName)
	if !loc.Found() {
		return
	}

	sp.ctx.Uniform3f(loc, vec3.Data[0], vec3.Data[1], vec3.Data[2])
}

func (sp *ShaderProgram) SetUnifVec4(uniformName string, vec4 *gglm.Vec4) {

	loc := sp.boundUnifLoc(uniformName)
	if !loc.Found() {
		return
	}

	sp.ctx.Uniform4f(loc, vec4.Data[0], vec4.Data[1], vec4.Data[2], vec4.Data[3])
}

func (sp *ShaderProgram) SetUnifMat4(uniformName string, mat4 *gglm.Mat4) {

	loc := sp.boundUnifLoc(uniformName)
	if !loc.Found() {
		return
	}

	sp.ctx.UniformMat4(loc, mat4)
}

func (sp *ShaderProgram) boundUnifLoc(uniformName string) renderer.Location {
	assert.T(sp.IsBound(), "Setting uniform '%s' of shader program %v which is not bound", uniformName, sp.Id)
	return sp.UniformLocation(uniformName)
}

// Delete releases the native program. Calling Delete again is a no-op.
func (sp *ShaderProgram) Delete() {

	if sp.Id == 0 {
		return
	}

	sp.ctx.DeleteProgram(sp.Id)
	sp.Id = 0
	clear(sp.AttribLocs)
	clear(sp.UnifLocs)
}

// NewShaderProgram links the given shaders, in order, into a new program.
// The shaders are detached after linking and remain owned by the caller.
func NewShaderProgram(ctx renderer.Context, shdrs ...Shader) (*ShaderProgram, error) {

	for i := 0; i < len(shdrs); i++ {
		assert.T(shdrs[i].Id != 0, "Shader at index %d passed to NewShaderProgram was deleted or never compiled", i)
	}

	id := ctx.CreateProgram()
	if id == 0 {
		return nil, errors.New("failed to create shader program")
	}

	for i := 0; i < len(shdrs); i++ {
		ctx.AttachShader(id, shdrs[i].Id)
	}

	ctx.LinkProgram(id)

	for i := 0; i < len(shdrs); i++ {
		ctx.DetachShader(id, shdrs[i].Id)
	}

	if err := getProgramLinkErrors(ctx, id); err != nil {
		ctx.DeleteProgram(id)
		return nil, err
	}

	return &ShaderProgram{
		Id:         id,
		ctx:        ctx,
		UnifLocs:   make(map[string]renderer.Location),
		AttribLocs: make(map[string]renderer.Location),
	}, nil
}

func getProgramLinkErrors(ctx renderer.Context, progId renderer.Handle) error {

	if ctx.ProgramLinked(progId) {
		return nil
	}

	errMsg := ctx.ProgramInfoLog(progId)
	if len(bytes.TrimSpace([]byte(errMsg))) == 0 {
		errMsg = emptyLogMsg
	}

	logging.ErrLog.Println("Linking of shader program with id", progId, "failed. Err:", errMsg)
	return &LinkError{Log: errMsg}
}
