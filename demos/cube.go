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
	yRotationUniformName    = "y_rotation_matrix"
	zRotationUniformName    = "z_rotation_matrix"
	cameraOffsetUniformName = "camera_offset"
)

// perspectiveCube is a spinning cube seen through a perspective projection. The arrow keys move
// the camera: left/right along x and up/down along z.
type perspectiveCube struct {
	cfg  config.DemoConfig
	ctx  renderer.Context
	prog *shaders.ShaderProgram
	cube *drawables.Drawable

	cameraOffset gglm.Vec3
}

func (c *perspectiveCube) Init(ctx renderer.Context) (err error) {

	persp, err := transform.PerspectiveMatrix(c.cfg.FrustumScale, c.cfg.ZNear, c.cfg.ZFar)
	if err != nil {
		return err
	}

	c.prog, err = loadProgram(ctx, c.cfg, perspectiveCubeSrc)
	if err != nil {
		return err
	}

	mesh := meshes.NewCube(0.5, meshes.DefaultCubeFaceColors)
	c.cube, err = drawables.NewDrawable(mesh.Flatten(), meshes.VertexDepth, c.prog)
	if err != nil {
		c.prog.Delete()
		return err
	}

	c.cube.Primitive = renderer.Primitive_Triangles
	c.cube.Translate(0, 0, c.cfg.ObjectDepth)

	c.ctx = ctx
	c.ctx.EnableBackFaceCulling(renderer.Winding_CW)

	c.cameraOffset = gglm.Vec3{}
	setProgramMat4(c.prog, perspectiveUniformName, &persp)
	return nil
}

func (c *perspectiveCube) Update(elapsedSeconds float32, kb Keyboard) error {

	yAngle, err := transform.RotationAngle(c.cfg.VerticalPeriod, elapsedSeconds)
	if err != nil {
		return err
	}

	zAngle, err := transform.RotationAngle(c.cfg.DepthPeriod, elapsedSeconds)
	if err != nil {
		return err
	}

	ySin, yCos := transform.SinCos(yAngle)
	zSin, zCos := transform.SinCos(zAngle)
	yRot := transform.RotationMatrix(transform.Axis_Vertical, ySin, yCos)
	zRot := transform.RotationMatrix(transform.Axis_Depth, zSin, zCos)

	c.cameraOffset.Data[0] += moveAxis(kb, Key_Left, Key_Right, c.cfg.CameraStep)
	c.cameraOffset.Data[2] += moveAxis(kb, Key_Up, Key_Down, c.cfg.CameraStep)

	c.prog.Bind()
	defer c.prog.UnBind()

	c.prog.SetUnifMat4(yRotationUniformName, &yRot)
	c.prog.SetUnifMat4(zRotationUniformName, &zRot)
	c.prog.SetUnifVec3(cameraOffsetUniformName, &c.cameraOffset)
	return nil
}

func (c *perspectiveCube) Render() {
	c.cube.Draw()
}

func (c *perspectiveCube) DeInit() {
	c.ctx.DisableFaceCulling()
	c.cube.Delete()
	c.prog.Delete()
}
