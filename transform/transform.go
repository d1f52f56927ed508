// The transform package builds the per-frame matrices of the scaffold: axis rotations from
// precomputed sine/cosine pairs, a cycling rotation angle from elapsed time, and a perspective
// projection. Functions here are pure; all state (current angle, offsets) belongs to the caller.
//
// Matrices are column-major gglm.Mat4 values (Data[column][row]), ready for upload.
package transform

import (
	"errors"
	"fmt"

	"github.com/bloeys/gglm/gglm"
	"github.com/bloeys/glscaffold/assert"
	"github.com/chewxy/math32"
)

var ErrPrecondition = errors.New("precondition violated")

// PreconditionError reports invalid numeric input, such as a zero rotation period or zNear == zFar
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Op, ErrPrecondition.Error(), e.Reason)
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

type Axis uint8

const (
	Axis_Unknown Axis = iota
	// Axis_Vertical rotates about Y
	Axis_Vertical
	// Axis_Depth rotates about Z
	Axis_Depth
)

func (a Axis) String() string {

	switch a {
	case Axis_Vertical:
		return "vertical"
	case Axis_Depth:
		return "depth"
	default:
		return "unknown"
	}
}

// RotationMatrix returns the rotation about axis whose angle has the given sine and cosine
func RotationMatrix(axis Axis, sinTheta, cosTheta float32) gglm.Mat4 {

	switch axis {
	case Axis_Vertical:
		return gglm.Mat4{
			Data: [4][4]float32{
				{cosTheta, 0, -sinTheta, 0},
				{0, 1, 0, 0},
				{sinTheta, 0, cosTheta, 0},
				{0, 0, 0, 1},
			},
		}

	case Axis_Depth:
		return gglm.Mat4{
			Data: [4][4]float32{
				{cosTheta, sinTheta, 0, 0},
				{-sinTheta, cosTheta, 0, 0},
				{0, 0, 1, 0},
				{0, 0, 0, 1},
			},
		}
	}

	assert.T(false, "Unknown rotation axis '%d'", axis)
	return gglm.Mat4{}
}

// RotationYZ composes the depth-axis rotation followed by the vertical-axis rotation (Y * Z).
// The order is part of the visual result and must not be swapped.
func RotationYZ(ySin, yCos, zSin, zCos float32) gglm.Mat4 {
	yRot := RotationMatrix(Axis_Vertical, ySin, yCos)
	zRot := RotationMatrix(Axis_Depth, zSin, zCos)
	return gglm.MulMat4(&yRot, &zRot)
}

func SinCos(angle float32) (sin, cos float32) {
	return math32.Sin(angle), math32.Cos(angle)
}

// RotationAngle maps elapsed seconds onto [0, 2π) so that the angle completes one turn every period seconds
func RotationAngle(periodSeconds, elapsedSeconds float32) (float32, error) {

	if !isFinite(periodSeconds) || periodSeconds <= 0 {
		return 0, &PreconditionError{Op: "RotationAngle", Reason: fmt.Sprintf("period must be positive, got %v", periodSeconds)}
	}

	if !isFinite(elapsedSeconds) {
		return 0, &PreconditionError{Op: "RotationAngle", Reason: fmt.Sprintf("elapsed time must be finite, got %v", elapsedSeconds)}
	}

	elapsedPeriod := math32.Mod(elapsedSeconds, periodSeconds)
	if elapsedPeriod < 0 {
		elapsedPeriod += periodSeconds
	}

	// Rounding can land exactly on the period
	if elapsedPeriod >= periodSeconds {
		elapsedPeriod = 0
	}

	return 2 * math32.Pi * elapsedPeriod / periodSeconds, nil
}

// ZMapping returns the factor and offset that map camera-space depth in [zNear, zFar] onto clip space
func ZMapping(zNear, zFar float32) (factor, offset float32, err error) {

	if zNear == zFar {
		return 0, 0, &PreconditionError{Op: "ZMapping", Reason: fmt.Sprintf("zNear and zFar must differ, both are %v", zNear)}
	}

	factor = (zNear + zFar) / (zNear - zFar)
	offset = (2 * zNear * zFar) / (zNear - zFar)
	if !isFinite(factor) || !isFinite(offset) {
		return 0, 0, &PreconditionError{Op: "ZMapping", Reason: fmt.Sprintf("zNear=%v and zFar=%v give a non-finite mapping", zNear, zFar)}
	}

	return factor, offset, nil
}

// PerspectiveMatrix builds the projection used by the perspective demos:
//
//	| s 0 0  0 |
//	| 0 s 0  0 |
//	| 0 0 f  o |
//	| 0 0 -1 0 |
//
// where s is frustumScale and f, o are the z mapping factor and offset.
func PerspectiveMatrix(frustumScale, zNear, zFar float32) (gglm.Mat4, error) {

	if !isFinite(frustumScale) {
		return gglm.Mat4{}, &PreconditionError{Op: "PerspectiveMatrix", Reason: fmt.Sprintf("frustum scale must be finite, got %v", frustumScale)}
	}

	factor, offset, err := ZMapping(zNear, zFar)
	if err != nil {
		return gglm.Mat4{}, err
	}

	return gglm.Mat4{
		Data: [4][4]float32{
			{frustumScale, 0, 0, 0},
			{0, frustumScale, 0, 0},
			{0, 0, factor, -1},
			{0, 0, offset, 0},
		},
	}, nil
}

// CircularOffset returns the position on a circle of the given radius, moving one full turn per period
func CircularOffset(radius, periodSeconds, elapsedSeconds float32) (x, y float32, err error) {

	angle, err := RotationAngle(periodSeconds, elapsedSeconds)
	if err != nil {
		return 0, 0, err
	}

	sin, cos := SinCos(angle)
	return radius * cos, radius * sin, nil
}

func isFinite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
