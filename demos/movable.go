package demos

import (
	"github.com/bloeys/glscaffold/config"
	"github.com/bloeys/glscaffold/drawables"
	"github.com/bloeys/glscaffold/meshes"
	"github.com/bloeys/glscaffold/renderer"
	"github.com/bloeys/glscaffold/shaders"
)

type keyBinding struct {
	Up, Down, Left, Right Key
}

var (
	arrowKeys = keyBinding{Up: Key_Up, Down: Key_Down, Left: Key_Left, Right: Key_Right}
	wasdKeys  = keyBinding{Up: Key_W, Down: Key_S, Left: Key_A, Right: Key_D}
)

// moveWithKeys translates d by step along each axis whose key is held
func moveWithKeys(d *drawables.Drawable, kb Keyboard, keys keyBinding, step float32) {

	dx := moveAxis(kb, keys.Right, keys.Left, step)
	dy := moveAxis(kb, keys.Up, keys.Down, step)
	if dx == 0 && dy == 0 {
		return
	}

	d.Translate(dx, dy, 0)
}

// movableSquare is a single square steered with the arrow keys
type movableSquare struct {
	cfg    config.DemoConfig
	prog   *shaders.ShaderProgram
	square *drawables.Drawable
}

func (m *movableSquare) Init(ctx renderer.Context) (err error) {

	m.prog, err = loadProgram(ctx, m.cfg, offsetSrc)
	if err != nil {
		return err
	}

	mesh := meshes.NewSolidQuad("square", -0.1, -0.1, 0.1, 0.1, meshes.Green)
	m.square, err = drawables.NewDrawable(mesh.Flatten(), meshes.VertexDepth, m.prog)
	if err != nil {
		m.prog.Delete()
		return err
	}

	return nil
}

func (m *movableSquare) Update(elapsedSeconds float32, kb Keyboard) error {
	moveWithKeys(m.square, kb, arrowKeys, m.cfg.MoveStep)
	return nil
}

func (m *movableSquare) Render() {
	m.square.Draw()
}

func (m *movableSquare) DeInit() {
	m.square.Delete()
	m.prog.Delete()
}

// movableSquares draws two independently steered squares as one scene:
// the green one follows the arrow keys and the red one follows WASD.
type movableSquares struct {
	cfg   config.DemoConfig
	prog  *shaders.ShaderProgram
	green *drawables.Drawable
	red   *drawables.Drawable
	scene *drawables.Scene
}

func (m *movableSquares) Init(ctx renderer.Context) (err error) {

	m.prog, err = loadProgram(ctx, m.cfg, offsetSrc)
	if err != nil {
		return err
	}

	greenMesh := meshes.NewSolidQuad("green_square", -0.2, -0.2, 0, 0, meshes.Green)
	m.green, err = drawables.NewDrawable(greenMesh.Flatten(), meshes.VertexDepth, m.prog)
	if err != nil {
		m.prog.Delete()
		return err
	}

	redMesh := meshes.NewSolidQuad("red_square", -0.1, -0.1, 0.1, 0.1, meshes.Red)
	m.red, err = drawables.NewDrawable(redMesh.Flatten(), meshes.VertexDepth, m.prog)
	if err != nil {
		m.green.Delete()
		m.prog.Delete()
		return err
	}

	m.scene, err = drawables.NewScene(drawables.NewList(m.green, m.red), m.prog)
	if err != nil {
		m.red.Delete()
		m.green.Delete()
		m.prog.Delete()
		return err
	}

	return nil
}

func (m *movableSquares) Update(elapsedSeconds float32, kb Keyboard) error {
	moveWithKeys(m.green, kb, arrowKeys, m.cfg.MoveStep)
	moveWithKeys(m.red, kb, wasdKeys, m.cfg.MoveStep)
	return nil
}

func (m *movableSquares) Render() {
	m.scene.Draw()
}

func (m *movableSquares) DeInit() {
	m.red.Delete()
	m.green.Delete()
	m.prog.Delete()
}
