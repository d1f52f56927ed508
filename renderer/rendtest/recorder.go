// The rendtest package provides a recording renderer.Context for tests.
//
// Recorder keeps a log of every call together with its arguments, tracks binding state the
// same way a real context does, and simulates the parts of a driver the core depends on:
//   - A shader stage compiles if its source declares a 'main(' function and has balanced braces.
//   - A program links if it has exactly one compiled vertex and one compiled fragment stage attached.
//   - Attribute locations are assigned in declaration order of the vertex stage's
//     'attribute'/'in' variables, uniform locations in declaration order across stages.
//   - Using a deleted or unknown object queues ErrorCode_InvalidValue, like GL does.
package rendtest

import (
	"fmt"
	"strings"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glscaffold/renderer"
)

var _ renderer.Context = &Recorder{}

type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Args)
}

type fakeShader struct {
	stage    renderer.ShaderStage
	src      string
	compiled bool
	log      string
	deleted  bool
}

type fakeProgram struct {
	attached []renderer.Handle
	linked   bool
	log      string
	deleted  bool
	attribs  map[string]renderer.Location
	uniforms map[string]renderer.Location
}

type fakeBuffer struct {
	data    []float32
	usage   renderer.BufUsage
	deleted bool
}

type Recorder struct {
	Calls []Call

	// CompileLog, if set, overrides the built-in compile check. A non-empty returned log fails the compile.
	CompileLog func(stage renderer.ShaderStage, src string) string

	lastHandle uint32
	shaders    map[renderer.Handle]*fakeShader
	programs   map[renderer.Handle]*fakeProgram
	buffers    map[renderer.Handle]*fakeBuffer

	activeProg renderer.Handle
	boundBuf   renderer.Handle
	enabled    map[renderer.Location]bool
	uniformVal map[renderer.Handle]map[renderer.Location][]float32
	errQueue   []renderer.ErrorCode
	culling    renderer.Winding
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) newHandle() renderer.Handle {
	r.lastHandle++
	return renderer.Handle(r.lastHandle)
}

func (r *Recorder) queueErr(code renderer.ErrorCode) {
	r.errQueue = append(r.errQueue, code)
}

func (r *Recorder) shader(h renderer.Handle) *fakeShader {

	s, ok := r.shaders[h]
	if !ok || s.deleted {
		r.queueErr(renderer.ErrorCode_InvalidValue)
		return nil
	}

	return s
}

func (r *Recorder) program(h renderer.Handle) *fakeProgram {

	p, ok := r.programs[h]
	if !ok || p.deleted {
		r.queueErr(renderer.ErrorCode_InvalidValue)
		return nil
	}

	return p
}

func (r *Recorder) CreateShader(stage renderer.ShaderStage) renderer.Handle {

	h := r.newHandle()
	r.shaders[h] = &fakeShader{stage: stage}
	r.record("CreateShader", stage)
	return h
}

func (r *Recorder) ShaderSource(shader renderer.Handle, src string) {

	r.record("ShaderSource", shader, src)
	if s := r.shader(shader); s != nil {
		s.src = src
	}
}

func (r *Recorder) CompileShader(shader renderer.Handle) {

	r.record("CompileShader", shader)

	s := r.shader(shader)
	if s == nil {
		return
	}

	if r.CompileLog != nil {
		s.log = r.CompileLog(s.stage, s.src)
	} else {
		s.log = compileCheck(s.src)
	}
	s.compiled = s.log == ""
}

func (r *Recorder) ShaderCompiled(shader renderer.Handle) bool {

	r.record("ShaderCompiled", shader)
	s := r.shader(shader)
	return s != nil && s.compiled
}

func (r *Recorder) ShaderInfoLog(shader renderer.Handle) string {

	r.record("ShaderInfoLog", shader)
	if s := r.shader(shader); s != nil {
		return s.log
	}

	return ""
}

func (r *Recorder) DeleteShader(shader renderer.Handle) {

	r.record("DeleteShader", shader)
	if s := r.shader(shader); s != nil {
		s.deleted = true
	}
}

func (r *Recorder) CreateProgram() renderer.Handle {

	h := r.newHandle()
	r.programs[h] = &fakeProgram{}
	r.record("CreateProgram")
	return h
}

func (r *Recorder) AttachShader(prog, shader renderer.Handle) {

	r.record("AttachShader", prog, shader)

	p := r.program(prog)
	s := r.shader(shader)
	if p == nil || s == nil {
		return
	}

	p.attached = append(p.attached, shader)
}

func (r *Recorder) DetachShader(prog, shader renderer.Handle) {

	r.record("DetachShader", prog, shader)

	p := r.program(prog)
	if p == nil {
		return
	}

	for i := 0; i < len(p.attached); i++ {
		if p.attached[i] == shader {
			p.attached = append(p.attached[:i], p.attached[i+1:]...)
			return
		}
	}

	r.queueErr(renderer.ErrorCode_InvalidOperation)
}

func (r *Recorder) LinkProgram(prog renderer.Handle) {

	r.record("LinkProgram", prog)

	p := r.program(prog)
	if p == nil {
		return
	}

	p.linked = false
	p.attribs = map[string]renderer.Location{}
	p.uniforms = map[string]renderer.Location{}

	var vert, frag *fakeShader
	for _, h := range p.attached {

		s := r.shaders[h]
		if !s.compiled {
			p.log = fmt.Sprintf("error: shader %v attached to program %v is not compiled", h, prog)
			return
		}

		switch s.stage {
		case renderer.ShaderStage_Vertex:
			if vert != nil {
				p.log = "error: multiple vertex shaders attached"
				return
			}
			vert = s
		case renderer.ShaderStage_Fragment:
			if frag != nil {
				p.log = "error: multiple fragment shaders attached"
				return
			}
			frag = s
		}
	}

	if vert == nil || frag == nil {
		p.log = "error: program requires one vertex and one fragment shader"
		return
	}

	for _, name := range declaredNames(vert.src, "attribute", "in") {
		if _, ok := p.attribs[name]; !ok {
			p.attribs[name] = renderer.Location(len(p.attribs))
		}
	}

	for _, src := range []string{vert.src, frag.src} {
		for _, name := range declaredNames(src, "uniform") {
			if _, ok := p.uniforms[name]; !ok {
				p.uniforms[name] = renderer.Location(len(p.uniforms))
			}
		}
	}

	p.log = ""
	p.linked = true
}

func (r *Recorder) ProgramLinked(prog renderer.Handle) bool {

	r.record("ProgramLinked", prog)
	p := r.program(prog)
	return p != nil && p.linked
}

func (r *Recorder) ProgramInfoLog(prog renderer.Handle) string {

	r.record("ProgramInfoLog", prog)
	if p := r.program(prog); p != nil {
		return p.log
	}

	return ""
}

func (r *Recorder) DeleteProgram(prog renderer.Handle) {

	r.record("DeleteProgram", prog)
	if p := r.program(prog); p != nil {
		p.deleted = true
	}

	if r.activeProg == prog {
		r.activeProg = 0
	}
}

func (r *Recorder) AttribLocation(prog renderer.Handle, name string) renderer.Location {

	r.record("AttribLocation", prog, name)

	p := r.program(prog)
	if p == nil {
		return renderer.NotFound
	}

	if !p.linked {
		r.queueErr(renderer.ErrorCode_InvalidOperation)
		return renderer.NotFound
	}

	loc, ok := p.attribs[name]
	if !ok {
		return renderer.NotFound
	}

	return loc
}

func (r *Recorder) UniformLocation(prog renderer.Handle, name string) renderer.Location {

	r.record("UniformLocation", prog, name)

	p := r.program(prog)
	if p == nil {
		return renderer.NotFound
	}

	if !p.linked {
		r.queueErr(renderer.ErrorCode_InvalidOperation)
		return renderer.NotFound
	}

	loc, ok := p.uniforms[name]
	if !ok {
		return renderer.NotFound
	}

	return loc
}

func (r *Recorder) UseProgram(prog renderer.Handle) {

	r.record("UseProgram", prog)

	if prog != 0 {
		p := r.program(prog)
		if p == nil {
			return
		}

		if !p.linked {
			r.queueErr(renderer.ErrorCode_InvalidOperation)
			return
		}
	}

	r.activeProg = prog
}

func (r *Recorder) ActiveProgram() renderer.Handle {
	return r.activeProg
}

func (r *Recorder) GenBuffer() renderer.Handle {

	h := r.newHandle()
	r.buffers[h] = &fakeBuffer{}
	r.record("GenBuffer")
	return h
}

func (r *Recorder) BindArrayBuffer(buf renderer.Handle) {

	r.record("BindArrayBuffer", buf)

	if buf != 0 {
		b, ok := r.buffers[buf]
		if !ok || b.deleted {
			r.queueErr(renderer.ErrorCode_InvalidValue)
			return
		}
	}

	r.boundBuf = buf
}

func (r *Recorder) BoundArrayBuffer() renderer.Handle {
	return r.boundBuf
}

func (r *Recorder) ArrayBufferData(data []float32, usage renderer.BufUsage) {

	r.record("ArrayBufferData", len(data), usage)

	if r.boundBuf == 0 {
		r.queueErr(renderer.ErrorCode_InvalidOperation)
		return
	}

	b := r.buffers[r.boundBuf]
	b.data = append([]float32(nil), data...)
	b.usage = usage
}

func (r *Recorder) DeleteBuffer(buf renderer.Handle) {

	r.record("DeleteBuffer", buf)

	b, ok := r.buffers[buf]
	if !ok || b.deleted {
		r.queueErr(renderer.ErrorCode_InvalidValue)
		return
	}

	b.deleted = true
	if r.boundBuf == buf {
		r.boundBuf = 0
	}
}

func (r *Recorder) EnableVertexAttribArray(loc renderer.Location) {

	r.record("EnableVertexAttribArray", loc)
	if !loc.Found() {
		r.queueErr(renderer.ErrorCode_InvalidValue)
		return
	}

	r.enabled[loc] = true
}

func (r *Recorder) DisableVertexAttribArray(loc renderer.Location) {

	r.record("DisableVertexAttribArray", loc)
	if !loc.Found() {
		r.queueErr(renderer.ErrorCode_InvalidValue)
		return
	}

	delete(r.enabled, loc)
}

func (r *Recorder) VertexAttribPointer(loc renderer.Location, compCount int32, stride int32, byteOffset uintptr) {

	r.record("VertexAttribPointer", loc, compCount, stride, byteOffset)
	if !loc.Found() || r.boundBuf == 0 {
		r.queueErr(renderer.ErrorCode_InvalidOperation)
	}
}

func (r *Recorder) setUniform(name string, loc renderer.Location, vals ...float32) {

	args := make([]any, 0, len(vals)+1)
	args = append(args, loc)
	for _, v := range vals {
		args = append(args, v)
	}
	r.record(name, args...)

	// Location -1 is silently ignored by GL
	if !loc.Found() {
		return
	}

	if r.activeProg == 0 {
		r.queueErr(renderer.ErrorCode_InvalidOperation)
		return
	}

	m, ok := r.uniformVal[r.activeProg]
	if !ok {
		m = map[renderer.Location][]float32{}
		r.uniformVal[r.activeProg] = m
	}
	m[loc] = vals
}

func (r *Recorder) Uniform1f(loc renderer.Location, x float32) {
	r.setUniform("Uniform1f", loc, x)
}

func (r *Recorder) Uniform2f(loc renderer.Location, x, y float32) {
	r.setUniform("Uniform2f", loc, x, y)
}

func (r *Recorder) Uniform3f(loc renderer.Location, x, y, z float32) {
	r.setUniform("Uniform3f", loc, x, y, z)
}

func (r *Recorder) Uniform4f(loc renderer.Location, x, y, z, w float32) {
	r.setUniform("Uniform4f", loc, x, y, z, w)
}

func (r *Recorder) UniformMat4(loc renderer.Location, m *gglm.Mat4) {

	vals := make([]float32, 0, 16)
	for c := 0; c < 4; c++ {
		vals = append(vals, m.Data[c][:]...)
	}
	r.setUniform("UniformMat4", loc, vals...)
}

func (r *Recorder) EnableBackFaceCulling(front renderer.Winding) {
	r.record("EnableBackFaceCulling", front)
	r.culling = front
}

func (r *Recorder) DisableFaceCulling() {
	r.record("DisableFaceCulling")
	r.culling = renderer.Winding_Unknown
}

// Culling returns the front face winding if back face culling is enabled, and Winding_Unknown otherwise
func (r *Recorder) Culling() renderer.Winding {
	return r.culling
}

func (r *Recorder) ClearColor(red, green, blue, alpha float32) {
	r.record("ClearColor", red, green, blue, alpha)
}

func (r *Recorder) Clear() {
	r.record("Clear")
}

func (r *Recorder) DrawArrays(mode renderer.Primitive, first, count int32) {

	r.record("DrawArrays", mode, first, count)
	if r.activeProg == 0 || r.boundBuf == 0 {
		r.queueErr(renderer.ErrorCode_InvalidOperation)
	}
}

func (r *Recorder) GetError() renderer.ErrorCode {

	if len(r.errQueue) == 0 {
		return renderer.ErrorCode_None
	}

	code := r.errQueue[0]
	r.errQueue = r.errQueue[1:]
	return code
}

// QueueError pushes code onto the error queue read by GetError
func (r *Recorder) QueueError(code renderer.ErrorCode) {
	r.queueErr(code)
}

// PendingErrors returns the queued error codes without draining them
func (r *Recorder) PendingErrors() []renderer.ErrorCode {
	return append([]renderer.ErrorCode(nil), r.errQueue...)
}

// Named returns the recorded calls with the given name, in call order
func (r *Recorder) Named(name string) []Call {

	out := make([]Call, 0)
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}

	return out
}

func (r *Recorder) Count(name string) int {
	return len(r.Named(name))
}

// Names returns the names of all recorded calls, in call order
func (r *Recorder) Names() []string {

	names := make([]string, len(r.Calls))
	for i := range r.Calls {
		names[i] = r.Calls[i].Name
	}

	return names
}

// ResetCalls forgets the recorded calls but keeps all object and binding state
func (r *Recorder) ResetCalls() {
	r.Calls = r.Calls[:0]
}

func (r *Recorder) AttribEnabled(loc renderer.Location) bool {
	return r.enabled[loc]
}

// BufferContents returns what was uploaded to buf
func (r *Recorder) BufferContents(buf renderer.Handle) []float32 {

	b, ok := r.buffers[buf]
	if !ok {
		return nil
	}

	return b.data
}

func (r *Recorder) BufferUsage(buf renderer.Handle) renderer.BufUsage {

	b, ok := r.buffers[buf]
	if !ok {
		return renderer.BufUsage_Unknown
	}

	return b.usage
}

// UniformValue returns the last values written to loc while prog was active
func (r *Recorder) UniformValue(prog renderer.Handle, loc renderer.Location) []float32 {
	return r.uniformVal[prog][loc]
}

func (r *Recorder) IsDeleted(h renderer.Handle) bool {

	if s, ok := r.shaders[h]; ok {
		return s.deleted
	}

	if p, ok := r.programs[h]; ok {
		return p.deleted
	}

	if b, ok := r.buffers[h]; ok {
		return b.deleted
	}

	return false
}

// Attached returns the shaders currently attached to prog
func (r *Recorder) Attached(prog renderer.Handle) []renderer.Handle {

	p, ok := r.programs[prog]
	if !ok {
		return nil
	}

	return append([]renderer.Handle(nil), p.attached...)
}

func compileCheck(src string) string {

	if !strings.Contains(src, "main(") {
		return "0:1(1): error: function 'main' is not defined"
	}

	if strings.Count(src, "{") != strings.Count(src, "}") {
		return "0:1(1): error: syntax error, unexpected end of file"
	}

	return ""
}

// declaredNames returns the variable names of declarations starting with one of the given qualifiers,
// e.g. 'uniform vec3 offset;' gives 'offset'
func declaredNames(src string, qualifiers ...string) []string {

	names := make([]string, 0)
	for _, line := range strings.Split(src, "\n") {

		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}

		isMatch := false
		for _, q := range qualifiers {
			if fields[0] == q {
				isMatch = true
				break
			}
		}

		if !isMatch {
			continue
		}

		name := strings.TrimSuffix(fields[2], ";")
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}

		names = append(names, name)
	}

	return names
}

func NewRecorder() *Recorder {
	return &Recorder{
		Calls:      make([]Call, 0, 64),
		shaders:    make(map[renderer.Handle]*fakeShader),
		programs:   make(map[renderer.Handle]*fakeProgram),
		buffers:    make(map[renderer.Handle]*fakeBuffer),
		enabled:    make(map[renderer.Location]bool),
		uniformVal: make(map[renderer.Handle]map[renderer.Location][]float32),
	}
}
