// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"goball/math"
	"goball/math/vec"
)

// BodyPosition returns the offset of body b along its path at its
// current time. Static bodies sit at the origin.
func (l *Level) BodyPosition(b int) vec.Vec3 {
	bp := &l.Bodies[b]
	if bp.Path < 0 {
		return vec.Vec3{}
	}
	pp := &l.Paths[bp.Path]
	if pp.T <= 0 {
		return pp.P
	}
	pq := &l.Paths[pp.Next]

	x := bp.T / pp.T
	if pp.Smooth {
		x = math.Erp(x)
	}
	return vec.MulAdd(pp.P, vec.Sub(pq.P, pp.P), x)
}

// BodyVelocity returns the velocity of body b. Static bodies and
// bodies on a disabled path point do not move.
func (l *Level) BodyVelocity(b int) vec.Vec3 {
	bp := &l.Bodies[b]
	if bp.Path < 0 {
		return vec.Vec3{}
	}
	pp := &l.Paths[bp.Path]
	if !pp.Enabled || pp.T <= 0 {
		return vec.Vec3{}
	}
	pq := &l.Paths[pp.Next]

	v := vec.Sub(pq.P, pp.P).Scale(1 / pp.T)
	if pp.Smooth {
		v = v.Scale(math.DErp(bp.T / pp.T))
	}
	return v
}

// stepBodies advances every enabled body dt seconds along its path.
func (l *Level) stepBodies(dt float32) {
	for i := range l.Bodies {
		bp := &l.Bodies[i]
		if bp.Path < 0 {
			continue
		}
		pp := &l.Paths[bp.Path]
		if !pp.Enabled {
			continue
		}
		bp.T += dt
		if bp.T >= pp.T {
			bp.T = 0
			bp.Path = pp.Next
		}
	}
}
