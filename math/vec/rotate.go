// SPDX-License-Identifier: GPL-2.0-or-later

package vec

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Rotation is a rotation about an axis through the origin.
type Rotation mgl32.Mat4

// AxisAngle builds the rotation by angle radians about axis.
// The axis must be normalized.
func AxisAngle(axis Vec3, angle float32) Rotation {
	return Rotation(mgl32.HomogRotate3D(angle, mgl32.Vec3{axis.X, axis.Y, axis.Z}))
}

// Apply rotates v. Translation is ignored.
func (r Rotation) Apply(v Vec3) Vec3 {
	o := mgl32.Mat4(r).Mul4x1(mgl32.Vec4{v.X, v.Y, v.Z, 0})
	return Vec3{o[0], o[1], o[2]}
}
