package shaders

import "fmt"

// CompileError is returned when a shader stage fails to compile.
// Log holds the compiler's full diagnostic output.
type CompileError struct {
	Type ShaderType
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Type, e.Log)
}

// LinkError is returned when a program fails to link.
// Log holds the linker's full diagnostic output.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "failed to link shader program: " + e.Log
}

// ResourceError is returned when shader source can't be read from disk
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("couldn't open file \"%s\": %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}

// emptyLogMsg stands in for drivers that fail without writing a log, so diagnostics are never empty
const emptyLogMsg = "no diagnostic output"
