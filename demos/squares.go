package demos

import (
	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glscaffold/config"
	"github.com/bloeys/glscaffold/drawables"
	"github.com/bloeys/glscaffold/meshes"
	"github.com/bloeys/glscaffold/renderer"
	"github.com/bloeys/glscaffold/shaders"
	"github.com/bloeys/glscaffold/transform"
)

const (
	rotationUniformName    = "rotation_matrix"
	perspectiveUniformName = "perspective_matrix"
)

var squareCornerColors = [4]gglm.Vec4{meshes.Red, meshes.Yellow, meshes.Cyan, meshes.Blue}

func newColoredSquare(prog *shaders.ShaderProgram) (*drawables.Drawable, error) {
	mesh := meshes.NewQuad("square", -0.5, -0.5, 0.5, 0.5, squareCornerColors)
	return drawables.NewDrawable(mesh.Flatten(), meshes.VertexDepth, prog)
}

// rotationAt is the combined vertical and depth rotation after elapsedSeconds
func rotationAt(cfg config.DemoConfig, elapsedSeconds float32) (gglm.Mat4, error) {

	yAngle, err := transform.RotationAngle(cfg.VerticalPeriod, elapsedSeconds)
	if err != nil {
		return gglm.Mat4{}, err
	}

	zAngle, err := transform.RotationAngle(cfg.DepthPeriod, elapsedSeconds)
	if err != nil {
		return gglm.Mat4{}, err
	}

	ySin, yCos := transform.SinCos(yAngle)
	zSin, zCos := transform.SinCos(zAngle)
	return transform.RotationYZ(ySin, yCos, zSin, zCos), nil
}

// setProgramMat4 writes a matrix uniform outside of a draw. Uniform values are kept by the
// program between activations.
func setProgramMat4(prog *shaders.ShaderProgram, name string, m *gglm.Mat4) {
	prog.Bind()
	defer prog.UnBind()
	prog.SetUnifMat4(name, m)
}

// rotatedSquare spins a square about the vertical and depth axes
type rotatedSquare struct {
	cfg    config.DemoConfig
	prog   *shaders.ShaderProgram
	square *drawables.Drawable
}

func (r *rotatedSquare) Init(ctx renderer.Context) (err error) {

	r.prog, err = loadProgram(ctx, r.cfg, rotatedSquareSrc)
	if err != nil {
		return err
	}

	r.square, err = newColoredSquare(r.prog)
	if err != nil {
		r.prog.Delete()
		return err
	}

	return nil
}

func (r *rotatedSquare) Update(elapsedSeconds float32, kb Keyboard) error {

	rot, err := rotationAt(r.cfg, elapsedSeconds)
	if err != nil {
		return err
	}

	setProgramMat4(r.prog, rotationUniformName, &rot)
	return nil
}

func (r *rotatedSquare) Render() {
	r.square.Draw()
}

func (r *rotatedSquare) DeInit() {
	r.square.Delete()
	r.prog.Delete()
}

// perspectiveSquare is the rotating square pushed back from the viewer and projected with perspective
type perspectiveSquare struct {
	cfg    config.DemoConfig
	prog   *shaders.ShaderProgram
	square *drawables.Drawable
}

func (p *perspectiveSquare) Init(ctx renderer.Context) (err error) {

	persp, err := transform.PerspectiveMatrix(p.cfg.FrustumScale, p.cfg.ZNear, p.cfg.ZFar)
	if err != nil {
		return err
	}

	p.prog, err = loadProgram(ctx, p.cfg, perspectiveSquareSrc)
	if err != nil {
		return err
	}

	p.square, err = newColoredSquare(p.prog)
	if err != nil {
		p.prog.Delete()
		return err
	}

	p.square.Translate(0, 0, p.cfg.ObjectDepth)
	setProgramMat4(p.prog, perspectiveUniformName, &persp)
	return nil
}

func (p *perspectiveSquare) Update(elapsedSeconds float32, kb Keyboard) error {

	rot, err := rotationAt(p.cfg, elapsedSeconds)
	if err != nil {
		return err
	}

	setProgramMat4(p.prog, rotationUniformName, &rot)
	return nil
}

func (p *perspectiveSquare) Render() {
	p.square.Draw()
}

func (p *perspectiveSquare) DeInit() {
	p.square.Delete()
	p.prog.Delete()
}
