// Package rotation wraps the quaternion/rotation primitive that the
// geometry core treats as an external collaborator (see SPEC_FULL.md):
// compose a pose from yaw/pitch/roll, combine two poses, and rotate a
// 3-vector. Callers never touch the underlying quaternion library type
// directly.
package rotation

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Quat is an opaque rotation; construct one via FromYPR or Compose.
type Quat struct {
	q mgl32.Quat
}

// Identity is the no-op rotation.
var Identity = Quat{q: mgl32.QuatIdent()}

// FromYPR builds a quaternion from yaw/pitch/roll given in degrees,
// applied in the order yaw, then pitch, then roll (intrinsic, z-down
// convention used throughout the geometry core).
func FromYPR(yawDeg, pitchDeg, rollDeg float32) Quat {
	yaw := mgl32.DegToRad(yawDeg)
	pitch := mgl32.DegToRad(pitchDeg)
	roll := mgl32.DegToRad(rollDeg)

	qYaw := mgl32.QuatRotate(yaw, mgl32.Vec3{0, 0, 1})
	qPitch := mgl32.QuatRotate(pitch, mgl32.Vec3{0, 1, 0})
	qRoll := mgl32.QuatRotate(roll, mgl32.Vec3{1, 0, 0})

	return Quat{q: qYaw.Mul(qPitch).Mul(qRoll)}
}

// Compose returns the rotation equivalent to applying b, then a (a ⊗ b).
func Compose(a, b Quat) Quat {
	return Quat{q: a.q.Mul(b.q)}
}

// Rotate applies the quaternion to a 3-vector.
func Rotate(q Quat, v [3]float32) [3]float32 {
	r := q.q.Rotate(mgl32.Vec3{v[0], v[1], v[2]})
	return [3]float32{r[0], r[1], r[2]}
}

// degToRad converts degrees to radians with the same convention as the
// mgl32.DegToRad calls in FromYPR. It is unexported, so only this package
// can call it.
func degToRad(deg float32) float32 {
	return deg * float32(math.Pi) / 180
}
