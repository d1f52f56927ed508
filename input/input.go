// The input package tracks keyboard state between frames. The frame loop calls EventLoopStart
// once per frame before feeding it that frame's events, after which KeyDown reports held keys and
// KeyClicked/KeyReleased report transitions that happened this frame.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

type keyState struct {
	Key                 sdl.Keycode
	State               int
	IsPressedThisFrame  bool
	IsReleasedThisFrame bool
}

var (
	keyMap = make(map[sdl.Keycode]keyState)

	isQuitRequested bool
)

func EventLoopStart() {

	// Update per-frame state
	for k, v := range keyMap {
		v.IsPressedThisFrame = false
		v.IsReleasedThisFrame = false
		keyMap[k] = v
	}

	isQuitRequested = false
}

func ClearKeyboardState() {
	clear(keyMap)
}

func HandleQuitEvent(e *sdl.QuitEvent) {
	isQuitRequested = true
}

func IsQuitClicked() bool {
	return isQuitRequested
}

func HandleKeyboardEvent(e *sdl.KeyboardEvent) {

	ks, ok := keyMap[e.Keysym.Sym]
	if !ok {
		ks = keyState{Key: e.Keysym.Sym}
	}

	ks.State = int(e.State)
	ks.IsPressedThisFrame = e.State == sdl.PRESSED && e.Repeat == 0
	ks.IsReleasedThisFrame = e.State == sdl.RELEASED && e.Repeat == 0

	keyMap[ks.Key] = ks
}

// HandleEvent routes the events this package cares about and ignores the rest
func HandleEvent(event sdl.Event) {

	switch e := event.(type) {
	case *sdl.KeyboardEvent:
		HandleKeyboardEvent(e)
	case *sdl.QuitEvent:
		HandleQuitEvent(e)
	}
}

func KeyClicked(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.IsPressedThisFrame
}

func KeyReleased(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.IsReleasedThisFrame
}

func KeyDown(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return false
	}

	return ks.State == sdl.PRESSED
}

func KeyUp(kc sdl.Keycode) bool {

	ks, ok := keyMap[kc]
	if !ok {
		return true
	}

	return ks.State == sdl.RELEASED
}
