// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"github.com/chewxy/math32"

	"goball/math/vec"
)

const (
	restitution = 1.7

	pendulumMass    = 5.0
	pendulumCouple  = 0.5
	pendulumDamping = 0.995
)

// rotate integrates the rotation of basis e under angular velocity w
// through time dt and re-orthonormalizes it.
func rotate(e *[3]vec.Vec3, w vec.Vec3, dt float32) {
	l := w.Length()
	if !(l > 0) {
		return
	}
	M := vec.AxisAngle(w.Scale(1/l), l*dt)

	f0 := M.Apply(e[0])
	f1 := M.Apply(e[1])
	f2 := M.Apply(e[2])

	e[2] = vec.Cross(f0, f1).Normalize()
	e[1] = vec.Cross(f2, f0).Normalize()
	e[0] = vec.Cross(f1, f2).Normalize()
}

// step moves the ball dt seconds along its velocity and spins it.
func (up *Ball) step(dt float32) {
	up.P = vec.MulAdd(up.P, up.V, dt)
	rotate(&up.Basis, up.W, dt)
}

// bounce computes the new linear and angular velocity of a ball
// hitting the point q of a surface moving with velocity w. It returns
// the energy of the impact.
func (up *Ball) bounce(q, w vec.Vec3) float32 {
	r := vec.Sub(up.P, q)
	d := vec.Sub(up.V, w)
	n := r.Normalize()

	up.W = vec.Cross(d, r).Scale(-1 / (up.R * up.R))

	vn := vec.Dot(up.V, n)
	wn := vec.Dot(w, n)
	up.V = vec.MulAdd(up.V, n, restitution*(wn-vn))
	up.P = vec.MulAdd(q, n, up.R)

	return math32.Abs(vec.Dot(n, d))
}

// pendulum swings the decorative pendulum of the ball under the ball's
// acceleration a and gravity g. It never affects the ball itself.
func (up *Ball) pendulum(a, g vec.Vec3, dt float32) {
	if !(dt > 0) {
		return
	}
	A := vec.MulAdd(a.Scale(pendulumCouple), g, -dt)
	F := A.Scale(pendulumMass / dt)
	r := up.PendE[1].Scale(-up.R)

	var T vec.Vec3
	if math32.Abs(vec.Dot(r, F)) > 0 {
		T = vec.Cross(F, r)
	}
	up.PendW = vec.MulAdd(up.PendW, T, dt).Scale(pendulumDamping)
	rotate(&up.PendE, up.PendW, dt)

	// turn toward the direction of travel
	v := vec.MulAdd(up.V, up.PendE[1], vec.Dot(up.V, up.PendE[1]))
	Y := vec.Cross(v, up.PendE[2])
	Y = up.PendE[1].Scale(2 * vec.Dot(Y, up.PendE[1]))
	rotate(&up.PendE, Y, dt)
}
