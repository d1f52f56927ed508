package shaders

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer"
)

// Shader is one compiled shader stage. It is owned by whoever compiled it and may be
// deleted as soon as every program using it has been linked.
type Shader struct {
	Id   renderer.Handle
	Type ShaderType
	ctx  renderer.Context
}

// Delete releases the native shader object. Calling Delete again is a no-op.
func (s *Shader) Delete() {

	if s.Id == 0 {
		return
	}

	s.ctx.DeleteShader(s.Id)
	s.Id = 0
}

func CompileShaderOfType(ctx renderer.Context, shaderSource string, shaderType ShaderType) (Shader, error) {

	shaderId := ctx.CreateShader(shaderType.ToStage())
	if shaderId == 0 {
		if err := renderer.CheckErrors(ctx, "CreateShader"); err != nil {
			return Shader{}, fmt.Errorf("failed to create %s shader: %w", shaderType, err)
		}
		return Shader{}, fmt.Errorf("failed to create %s shader", shaderType)
	}

	ctx.ShaderSource(shaderId, shaderSource)
	ctx.CompileShader(shaderId)
	if err := getShaderCompileErrors(ctx, shaderId, shaderType); err != nil {
		ctx.DeleteShader(shaderId)
		return Shader{}, err
	}

	return Shader{Id: shaderId, Type: shaderType, ctx: ctx}, nil
}

func getShaderCompileErrors(ctx renderer.Context, shaderId renderer.Handle, shaderType ShaderType) error {

	if ctx.ShaderCompiled(shaderId) {
		return nil
	}

	errMsg := ctx.ShaderInfoLog(shaderId)
	if len(bytes.TrimSpace([]byte(errMsg))) == 0 {
		errMsg = emptyLogMsg
	}

	logging.ErrLog.Println("Compilation of", shaderType, "shader with id", shaderId, "failed. Err:", errMsg)
	return &CompileError{Type: shaderType, Log: errMsg}
}

// ReadShaderSource reads a shader file. Failures are returned as *ResourceError naming the path.
func ReadShaderSource(shaderPath string) (string, error) {

	src, err := os.ReadFile(shaderPath)
	if err != nil {
		return "", &ResourceError{Path: shaderPath, Err: err}
	}

	return string(src), nil
}

// LoadAndCompileCombinedShader loads a file holding both stages, each preceded by a
// '//shader:vertex' or '//shader:fragment' line, and links them into a program.
func LoadAndCompileCombinedShader(ctx renderer.Context, shaderPath string) (*ShaderProgram, error) {

	combinedSource, err := ReadShaderSource(shaderPath)
	if err != nil {
		logging.ErrLog.Println("Failed to read shader. Err:", err)
		return nil, err
	}

	return LoadAndCompileCombinedShaderSrc(ctx, []byte(combinedSource))
}

// LoadAndCompileCombinedShaderSrc is like LoadAndCompileCombinedShader but takes the combined source directly.
// The compiled stages are deleted once the program is linked.
func LoadAndCompileCombinedShaderSrc(ctx renderer.Context, shaderSrc []byte) (*ShaderProgram, error) {

	shaderSources := bytes.Split(shaderSrc, []byte("//shader:"))
	if len(shaderSources) < 2 {
		return nil, errors.New("failed to read combined shader. The minimum shader types to have are '//shader:vertex' and '//shader:fragment'")
	}

	shdrs := make([]Shader, 0, 2)
	defer func() {
		for i := 0; i < len(shdrs); i++ {
			shdrs[i].Delete()
		}
	}()

	hasVert := false
	hasFrag := false
	for i := 0; i < len(shaderSources); i++ {

		src := shaderSources[i]

		// Anything before the first marker (e.g. a license comment) isn't part of a stage
		if i == 0 {
			continue
		}

		if len(bytes.TrimSpace(src)) == 0 {
			continue
		}

		var shdrType ShaderType
		if bytes.HasPrefix(src, []byte("vertex")) {
			src = src[6:]
			shdrType = ShaderType_Vertex
			hasVert = true
		} else if bytes.HasPrefix(src, []byte("fragment")) {
			src = src[8:]
			shdrType = ShaderType_Fragment
			hasFrag = true
		} else {
			return nil, errors.New("unknown shader type. Must be '//shader:vertex' or '//shader:fragment'")
		}

		shdr, err := CompileShaderOfType(ctx, string(src), shdrType)
		if err != nil {
			return nil, err
		}

		shdrs = append(shdrs, shdr)
	}

	if len(shdrs) == 0 {
		return nil, errors.New("no valid shaders found. Please put '//shader:vertex' or '//shader:fragment' before your shaders")
	}

	if !hasVert {
		return nil, errors.New("no valid vertex shader found. Please put '//shader:vertex' before your vertex shader")
	}

	if !hasFrag {
		return nil, errors.New("no valid fragment shader found. Please put '//shader:fragment' before your fragment shader")
	}

	return NewShaderProgram(ctx, shdrs...)
}
