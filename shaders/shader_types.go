package shaders

import (
	"github.com/bloeys/glscaffold/assert"
	"github.com/bloeys/glscaffold/renderer"
)

type ShaderType int32

func (s ShaderType) ToStage() renderer.ShaderStage {

	switch s {
	case ShaderType_Vertex:
		return renderer.ShaderStage_Vertex
	case ShaderType_Fragment:
		return renderer.ShaderStage_Fragment

	default:
		assert.T(false, "Unknown shader type '%d'", s)
		return renderer.ShaderStage_Unknown
	}
}

func (s ShaderType) String() string {

	switch s {
	case ShaderType_Vertex:
		return "vertex"
	case ShaderType_Fragment:
		return "fragment"
	default:
		return "unknown"
	}
}

const (
	ShaderType_Unknown ShaderType = iota
	ShaderType_Vertex
	ShaderType_Fragment
)
