// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"goball/math/vec"
)

// frame is the moving coordinate system of one body: its current
// position o and velocity w.
type frame struct {
	o, w vec.Vec3
}

func (l *Level) testVert(up *Ball, vp *Vert, f frame) (float32, vec.Vec3) {
	return testVert(f.o, vp.P, f.w, up.P, up.V, up.R)
}

func (l *Level) testEdge(up *Ball, ep *Edge, f frame) (float32, vec.Vec3) {
	q := l.Verts[ep.Vi].P
	u := vec.Sub(l.Verts[ep.Vj].P, q)
	return testEdge(f.o, q, u, f.w, up.P, up.V, up.R)
}

// testSide rejects plane contacts outside of any other side of the
// same convex lump.
func (l *Level) testSide(dt float32, up *Ball, lp *Lump, si int, f frame) (float32, vec.Vec3) {
	sp := &l.Sides[si]
	t, q := testSide(f.o, f.w, sp.N, sp.D, up.P, up.V, up.R)
	if t < dt {
		for i := 0; i < lp.SideCount; i++ {
			sj := l.lumpSide(lp, i)
			if sj == si {
				continue
			}
			sq := &l.Sides[sj]
			if vec.Dot(q, sq.N)-vec.Dot(f.o, sq.N)-vec.Dot(f.w, sq.N)*t > sq.D {
				return NoContact, vec.Vec3{}
			}
		}
	}
	return t, q
}

// testFore reports whether the ball may be in front of the plane at
// some point of the next dt seconds. The plane moves with the frame.
func testFore(dt float32, up *Ball, sp *Side, f frame) bool {
	q := vec.Sub(up.P, f.o)
	if vec.Dot(q, sp.N)-sp.D+up.R >= 0 {
		return true
	}
	q = vec.MulAdd(q, vec.Sub(up.V, f.w), dt)
	return vec.Dot(q, sp.N)-sp.D+up.R >= 0
}

// testBack reports whether the ball may be behind the plane at some
// point of the next dt seconds.
func testBack(dt float32, up *Ball, sp *Side, f frame) bool {
	q := vec.Sub(up.P, f.o)
	if vec.Dot(q, sp.N)-sp.D-up.R <= 0 {
		return true
	}
	q = vec.MulAdd(q, vec.Sub(up.V, f.w), dt)
	return vec.Dot(q, sp.N)-sp.D-up.R <= 0
}

func (l *Level) testLump(dt float32, up *Ball, lp *Lump, f frame) (float32, vec.Vec3) {
	var T vec.Vec3
	t := dt

	if lp.Flags&LumpDetail != 0 {
		return t, T
	}

	// a point ball has no business with verts and edges
	if up.R > 0 {
		for i := 0; i < lp.VertCount; i++ {
			if u, U := l.testVert(up, l.lumpVert(lp, i), f); u < t {
				t, T = u, U
			}
		}
		for i := 0; i < lp.EdgeCount; i++ {
			if u, U := l.testEdge(up, l.lumpEdge(lp, i), f); u < t {
				t, T = u, U
			}
		}
	}
	for i := 0; i < lp.SideCount; i++ {
		if u, U := l.testSide(t, up, lp, l.lumpSide(lp, i), f); u < t {
			t, T = u, U
		}
	}
	return t, T
}

func (l *Level) testNode(dt float32, up *Ball, np *Node, f frame) (float32, vec.Vec3) {
	var T vec.Vec3
	t := dt

	for i := 0; i < np.LumpCount; i++ {
		if u, U := l.testLump(t, up, &l.Lumps[np.FirstLump+i], f); u < t {
			t, T = u, U
		}
	}
	sp := &l.Sides[np.Side]
	if np.Front >= 0 && testFore(t, up, sp, f) {
		if u, U := l.testNode(t, up, &l.Nodes[np.Front], f); u < t {
			t, T = u, U
		}
	}
	if np.Back >= 0 && testBack(t, up, sp, f) {
		if u, U := l.testNode(t, up, &l.Nodes[np.Back], f); u < t {
			t, T = u, U
		}
	}
	return t, T
}

func (l *Level) testBody(dt float32, up *Ball, b int) (float32, vec.Vec3, vec.Vec3) {
	f := frame{
		o: l.BodyPosition(b),
		w: l.BodyVelocity(b),
	}
	t, T := l.testNode(dt, up, &l.Nodes[l.Bodies[b].Node], f)
	if t < dt {
		return t, T, f.w
	}
	return dt, vec.Vec3{}, vec.Vec3{}
}

func (l *Level) testFile(dt float32, up *Ball) (float32, vec.Vec3, vec.Vec3) {
	var T, V vec.Vec3
	t := dt

	for b := range l.Bodies {
		if u, U, W := l.testBody(t, up, b); u < t {
			t, T, V = u, U, W
		}
	}
	return t, T, V
}

// Test returns the earliest time within dt at which the ball touches
// the level, together with the point of contact and the velocity of
// the surface struck. It returns dt unchanged when nothing is hit.
func (l *Level) Test(dt float32, ball int) (t float32, contact, velocity vec.Vec3) {
	if ball < 0 || ball >= len(l.Balls) {
		return dt, vec.Vec3{}, vec.Vec3{}
	}
	return l.testFile(dt, &l.Balls[ball])
}
