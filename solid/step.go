// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"goball/conlog"
	"goball/math/vec"
)

const (
	// maxContacts bounds the collisions resolved by one Step. A ball
	// pinched between converging bodies would otherwise never finish.
	maxContacts = 16

	restEpsilon = 0.0005
	restCosine  = 0.999
)

// advance moves bodies, switches and all balls dt seconds forward.
func (l *Level) advance(dt float32) {
	l.stepBodies(dt)
	l.stepSwitches(dt)
	for i := range l.Balls {
		l.Balls[i].step(dt)
	}
}

// Step moves ball ui and the level dt seconds forward under gravity g
// and returns the largest impact energy seen. A non-nil stops enables
// friction on resting contacts and is incremented whenever friction
// brings the ball to a halt.
func (l *Level) Step(g vec.Vec3, dt float32, ui int, stops *int) float32 {
	if ui < 0 || ui >= len(l.Balls) {
		return 0
	}
	up := &l.Balls[ui]

	var b float32
	tt := dt
	a := up.V
	v := up.V

	grounded := false
	if stops != nil {
		// probe for resting contact by falling along g
		up.V = g
		t, P, V := l.testFile(tt, up)
		up.V = v

		if r := vec.Sub(P, up.P); t < restEpsilon &&
			vec.Dot(r, g)/(r.Length()*g.Length()) > restCosine {
			grounded = true
			if e := up.V.Length() - dt; e > 0 {
				up.V = up.V.Normalize().Scale(e)
				up.W = vec.Cross(vec.Sub(V, up.V), r).Scale(-1 / (up.R * up.R))
			} else {
				up.V = vec.Vec3{}
				*stops++
			}
		}
	}
	if !grounded {
		up.V = vec.MulAdd(v, g, tt)
	}

	for c := maxContacts; tt > 0; c-- {
		if c == 0 {
			conlog.DPrintf("solid: contact limit reached, %v s left unresolved\n", tt)
			break
		}
		nt, P, V := l.testFile(tt, up)
		if !(nt < tt) {
			break
		}
		l.advance(nt)
		tt -= nt
		if e := up.bounce(P, V); e > b {
			b = e
		}
	}
	l.advance(tt)

	up.pendulum(vec.Sub(up.V, a), g, dt)
	return b
}
