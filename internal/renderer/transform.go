package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ComposeTransform builds a model matrix from scale factors, per-axis
// rotation angles in degrees and a translation. Matrices are multiplied
// right-to-left, so vertices are scaled first, rotated about X, then Y,
// then Z, and translated last: T * Rz * Ry * Rx * S.
func ComposeTransform(scale mgl32.Vec3, xDegrees, yDegrees, zDegrees float32, translate mgl32.Vec3) mgl32.Mat4 {
	scaleMatrix := mgl32.Scale3D(scale.X(), scale.Y(), scale.Z())
	rotationX := mgl32.HomogRotate3DX(mgl32.DegToRad(xDegrees))
	rotationY := mgl32.HomogRotate3DY(mgl32.DegToRad(yDegrees))
	rotationZ := mgl32.HomogRotate3DZ(mgl32.DegToRad(zDegrees))
	translation := mgl32.Translate3D(translate.X(), translate.Y(), translate.Z())

	return translation.Mul4(rotationZ).Mul4(rotationY).Mul4(rotationX).Mul4(scaleMatrix)
}
