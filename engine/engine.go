// The engine package owns the native surface: SDL2 initialization, the window with its OpenGL
// context, the event pump and the frame loop.
package engine

import (
	"runtime"

	"github.com/bloeys/glscaffold/assert"
	"github.com/bloeys/glscaffold/input"
	"github.com/bloeys/glscaffold/timing"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	isInited = false
)

type Window struct {
	SDLWin         *sdl.Window
	GlCtx          sdl.GLContext
	EventCallbacks []func(sdl.Event)
}

// handleInputs pumps the SDL event queue, firing callbacks and feeding the input package
func (w *Window) handleInputs() {

	input.EventLoopStart()

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {

		//Fire callbacks
		for i := 0; i < len(w.EventCallbacks); i++ {
			w.EventCallbacks[i](event)
		}

		//Internal processing
		switch e := event.(type) {

		case *sdl.WindowEvent:

			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				w.handleWindowResize()
			}

		default:
			input.HandleEvent(event)
		}
	}
}

func (w *Window) handleWindowResize() {

	fbWidth, fbHeight := w.SDLWin.GLGetDrawableSize()
	if fbWidth <= 0 || fbHeight <= 0 {
		return
	}
	gl.Viewport(0, 0, fbWidth, fbHeight)
}

func (w *Window) Swap() {
	w.SDLWin.GLSwap()
}

// Destroy releases the GL context and then the window
func (w *Window) Destroy() error {

	if w.GlCtx != nil {
		sdl.GLDeleteContext(w.GlCtx)
		w.GlCtx = nil
	}

	return w.SDLWin.Destroy()
}

// Init locks the calling goroutine to its OS thread, which then owns the GL context for the rest
// of the program, and initializes SDL. It must be called from main before any window is created.
func Init() error {

	runtime.LockOSThread()
	timing.Init()

	if err := sdlInit(); err != nil {
		return err
	}

	isInited = true
	return nil
}

// sdlInit is swapped out by tests that run without a display
var sdlInit = initSDL

func initSDL() error {

	err := sdl.Init(sdl.INIT_TIMER | sdl.INIT_VIDEO)
	if err != nil {
		return err
	}

	sdl.ShowCursor(1)

	sdl.GLSetAttribute(sdl.MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.MINOR_VERSION, 1)

	sdl.GLSetAttribute(sdl.GL_RED_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_GREEN_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_BLUE_SIZE, 8)
	sdl.GLSetAttribute(sdl.GL_ALPHA_SIZE, 8)

	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)

	return nil
}

// DeInit shuts SDL down. Windows must be destroyed first.
func DeInit() {
	sdl.Quit()
	isInited = false
}

func CreateOpenGLWindow(title string, x, y, width, height int32, flags WindowFlags) (*Window, error) {
	return createWindow(title, x, y, width, height, WindowFlags_OPENGL|flags)
}

func CreateOpenGLWindowCentered(title string, width, height int32, flags WindowFlags) (*Window, error) {
	return createWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, WindowFlags_OPENGL|flags)
}

func createWindow(title string, x, y, width, height int32, flags WindowFlags) (*Window, error) {

	assert.T(isInited, "engine.Init() was not called!")

	sdlWin, err := sdl.CreateWindow(title, x, y, width, height, uint32(flags))
	if err != nil {
		return nil, err
	}

	win := &Window{
		SDLWin:         sdlWin,
		EventCallbacks: make([]func(sdl.Event), 0),
	}

	win.GlCtx, err = sdlWin.GLCreateContext()
	if err != nil {
		sdlWin.Destroy()
		return nil, err
	}

	return win, nil
}

func SetVSync(enabled bool) error {

	if enabled {
		return sdl.GLSetSwapInterval(1)
	}

	return sdl.GLSetSwapInterval(0)
}
