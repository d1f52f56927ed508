package demos

import (
	"github.com/bloeys/glscaffold/config"
	"github.com/bloeys/glscaffold/drawables"
	"github.com/bloeys/glscaffold/meshes"
	"github.com/bloeys/glscaffold/renderer"
	"github.com/bloeys/glscaffold/shaders"
	"github.com/bloeys/glscaffold/transform"
)

// newTriangle builds the stock triangle as a triangle list drawable
func newTriangle(prog *shaders.ShaderProgram) (*drawables.Drawable, error) {

	mesh := meshes.NewTriangle()
	d, err := drawables.NewDrawable(mesh.Flatten(), meshes.VertexDepth, prog)
	if err != nil {
		return nil, err
	}

	d.Primitive = renderer.Primitive_Triangles
	return d, nil
}

// staticTriangle draws one unmoving triangle
type staticTriangle struct {
	cfg  config.DemoConfig
	prog *shaders.ShaderProgram
	tri  *drawables.Drawable
}

func (s *staticTriangle) Init(ctx renderer.Context) (err error) {

	s.prog, err = loadProgram(ctx, s.cfg, staticTriangleSrc)
	if err != nil {
		return err
	}

	s.tri, err = newTriangle(s.prog)
	if err != nil {
		s.prog.Delete()
		return err
	}

	return nil
}

func (s *staticTriangle) Update(elapsedSeconds float32, kb Keyboard) error {
	return nil
}

func (s *staticTriangle) Render() {
	s.tri.Draw()
}

func (s *staticTriangle) DeInit() {
	s.tri.Delete()
	s.prog.Delete()
}

// translatedTriangle moves a triangle around a circle.
//
// The position is absolute per frame, but drawable translation is additive,
// so each frame applies the difference to the previous frame's position.
type translatedTriangle struct {
	cfg  config.DemoConfig
	prog *shaders.ShaderProgram
	tri  *drawables.Drawable

	lastX, lastY float32
}

func (t *translatedTriangle) Init(ctx renderer.Context) (err error) {

	t.prog, err = loadProgram(ctx, t.cfg, offsetSrc)
	if err != nil {
		return err
	}

	t.tri, err = newTriangle(t.prog)
	if err != nil {
		t.prog.Delete()
		return err
	}

	t.lastX, t.lastY = 0, 0
	return nil
}

func (t *translatedTriangle) Update(elapsedSeconds float32, kb Keyboard) error {

	x, y, err := transform.CircularOffset(t.cfg.CircleRadius, t.cfg.CirclePeriod, elapsedSeconds)
	if err != nil {
		return err
	}

	t.tri.Translate(x-t.lastX, y-t.lastY, 0)
	t.lastX, t.lastY = x, y
	return nil
}

func (t *translatedTriangle) Render() {
	t.tri.Draw()
}

func (t *translatedTriangle) DeInit() {
	t.tri.Delete()
	t.prog.Delete()
}
