package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"
)

func keyEvent(kc sdl.Keycode, state uint8, repeat uint8) *sdl.KeyboardEvent {
	return &sdl.KeyboardEvent{
		State:  state,
		Repeat: repeat,
		Keysym: sdl.Keysym{Sym: kc},
	}
}

func TestKeyPressAndRelease(t *testing.T) {

	ClearKeyboardState()

	assert.False(t, KeyDown(sdl.K_UP))
	assert.True(t, KeyUp(sdl.K_UP))

	EventLoopStart()
	HandleEvent(keyEvent(sdl.K_UP, sdl.PRESSED, 0))
	assert.True(t, KeyDown(sdl.K_UP))
	assert.True(t, KeyClicked(sdl.K_UP))
	assert.False(t, KeyReleased(sdl.K_UP))

	// Held keys stay down on later frames but are no longer 'clicked'
	EventLoopStart()
	HandleEvent(keyEvent(sdl.K_UP, sdl.PRESSED, 1))
	assert.True(t, KeyDown(sdl.K_UP))
	assert.False(t, KeyClicked(sdl.K_UP))

	EventLoopStart()
	HandleEvent(keyEvent(sdl.K_UP, sdl.RELEASED, 0))
	assert.False(t, KeyDown(sdl.K_UP))
	assert.True(t, KeyUp(sdl.K_UP))
	assert.True(t, KeyReleased(sdl.K_UP))

	EventLoopStart()
	assert.False(t, KeyReleased(sdl.K_UP))
}

func TestClearKeyboardState(t *testing.T) {

	EventLoopStart()
	HandleKeyboardEvent(keyEvent(sdl.K_w, sdl.PRESSED, 0))
	assert.True(t, KeyDown(sdl.K_w))

	ClearKeyboardState()
	assert.False(t, KeyDown(sdl.K_w))
}

func TestQuitIsPerFrame(t *testing.T) {

	EventLoopStart()
	assert.False(t, IsQuitClicked())

	HandleEvent(&sdl.QuitEvent{})
	assert.True(t, IsQuitClicked())

	EventLoopStart()
	assert.False(t, IsQuitClicked())
}
