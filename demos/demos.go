// The demos package holds the small programs the scaffold ships with. Each one builds its drawables
// from the core packages and is driven by the runner through the Demo lifecycle.
//
// Demos only talk to a renderer.Context and a Keyboard, so they run the same against a real window
// and against rendtest.Recorder.
package demos

import (
	"fmt"
	"sort"

	"github.com/bloeys/glscaffold/config"
	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer"
	"github.com/bloeys/glscaffold/shaders"
)

type Key uint8

const (
	Key_Unknown Key = iota
	Key_Up
	Key_Down
	Key_Left
	Key_Right
	Key_W
	Key_A
	Key_S
	Key_D
)

// Keyboard reports which keys are held this frame
type Keyboard interface {
	KeyDown(k Key) bool
}

// Demo is run as Init once, then Update and Render every frame, then DeInit.
type Demo interface {
	Init(ctx renderer.Context) error
	Update(elapsedSeconds float32, kb Keyboard) error
	Render()
	DeInit()
}

type factory func(cfg config.DemoConfig) Demo

var registry = map[string]factory{
	config.DemoStaticTriangle:     func(cfg config.DemoConfig) Demo { return &staticTriangle{cfg: cfg} },
	config.DemoTranslatedTriangle: func(cfg config.DemoConfig) Demo { return &translatedTriangle{cfg: cfg} },
	config.DemoRotatedSquare:      func(cfg config.DemoConfig) Demo { return &rotatedSquare{cfg: cfg} },
	config.DemoPerspectiveSquare:  func(cfg config.DemoConfig) Demo { return &perspectiveSquare{cfg: cfg} },
	config.DemoMovableSquare:      func(cfg config.DemoConfig) Demo { return &movableSquare{cfg: cfg} },
	config.DemoMovableSquares:     func(cfg config.DemoConfig) Demo { return &movableSquares{cfg: cfg} },
	config.DemoPerspectiveCube:    func(cfg config.DemoConfig) Demo { return &perspectiveCube{cfg: cfg} },
}

func New(name string, cfg config.DemoConfig) (Demo, error) {

	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown demo '%s'. Known demos: %v", name, Names())
	}

	return f(cfg), nil
}

// Names returns the registered demo names in sorted order
func Names() []string {

	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}

	sort.Strings(names)
	return names
}

// loadProgram builds the demo's program from the configured shader file if there is one,
// and from its built in combined source otherwise
func loadProgram(ctx renderer.Context, cfg config.DemoConfig, builtinSrc string) (*shaders.ShaderProgram, error) {

	if cfg.ShaderPath != "" {
		logging.InfoLog.Printf("Loading shader program from '%s'\n", cfg.ShaderPath)
		return shaders.LoadAndCompileCombinedShader(ctx, cfg.ShaderPath)
	}

	return shaders.LoadAndCompileCombinedShaderSrc(ctx, []byte(builtinSrc))
}

// moveAxis returns +step, -step or 0 depending on which of the two keys is held
func moveAxis(kb Keyboard, positive, negative Key, step float32) float32 {

	var d float32
	if kb.KeyDown(positive) {
		d += step
	}

	if kb.KeyDown(negative) {
		d -= step
	}

	return d
}
