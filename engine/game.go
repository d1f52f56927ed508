package engine

import (
	"github.com/bloeys/glscaffold/logging"
	"github.com/bloeys/glscaffold/renderer"
	"github.com/bloeys/glscaffold/timing"
)

// Game is driven by Run: Init once, then Update, Render and FrameEnd every frame until Quit
// is called, then DeInit.
type Game interface {
	Init() error
	Update() error
	Render()
	FrameEnd()
	DeInit()
}

var isRunning = false

// Run drives g until Quit is called or a hook returns an error. Each frame clears the surface,
// renders, reports queued GL errors on the error log and swaps buffers.
func Run(g Game, w *Window, rend renderer.Context) error {

	if err := g.Init(); err != nil {
		return err
	}
	defer g.DeInit()

	isRunning = true
	for isRunning {

		timing.FrameStarted()
		w.handleInputs()

		if err := g.Update(); err != nil {
			return err
		}

		rend.Clear()
		g.Render()

		if err := renderer.CheckErrors(rend, "frame"); err != nil {
			logging.ErrLog.Println(err)
		}

		w.Swap()
		g.FrameEnd()
		timing.FrameEnded()
	}

	return nil
}

// Quit makes Run return after the current frame
func Quit() {
	isRunning = false
}

func IsRunning() bool {
	return isRunning
}
