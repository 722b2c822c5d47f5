// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"github.com/chewxy/math32"

	"goball/math/vec"
)

// solve returns the earliest non-negative t with |p + v*t| = r.
// Degenerate input (no relative motion) yields NoContact.
func solve(p, v vec.Vec3, r float32) float32 {
	a := vec.Dot(v, v)
	b := vec.Dot(v, p) * 2
	c := vec.Dot(p, p) - r*r
	d := b*b - 4*a*c

	var t float32
	switch {
	case d < 0:
		return NoContact
	case d > 0:
		t0 := 0.5 * (-b - math32.Sqrt(d)) / a
		t1 := 0.5 * (-b + math32.Sqrt(d)) / a
		t = min(t0, t1)
	default:
		t = -b * 0.5 / a
	}
	// also catches the NaN of a zero leading coefficient
	if !(t >= 0) {
		return NoContact
	}
	return t
}

// testVert computes the earliest time and position of the intersection
// of a sphere and a vertex.
//
// The sphere has radius r and moves along v from p. The vertex moves
// along w from q in a coordinate system based at o.
func testVert(o, q, w, p, v vec.Vec3, r float32) (float32, vec.Vec3) {
	O := vec.Add(o, q)
	P := vec.Sub(p, O)
	V := vec.Sub(v, w)

	if vec.Dot(P, V) >= 0 {
		return NoContact, vec.Vec3{}
	}
	t := solve(P, V, r)
	if t >= NoContact {
		return NoContact, vec.Vec3{}
	}
	return t, vec.MulAdd(O, w, t)
}

// testEdge computes the earliest time and position of the intersection
// of a sphere and an edge.
//
// The sphere has radius r and moves along v from p. The edge moves
// along w from q in a coordinate system based at o and extends along u.
// Contacts at the end points are left to testVert.
func testEdge(o, q, u, w, p, v vec.Vec3, r float32) (float32, vec.Vec3) {
	d := vec.Sub(vec.Sub(p, o), q)
	e := vec.Sub(v, w)

	du := vec.Dot(d, u)
	eu := vec.Dot(e, u)
	uu := vec.Dot(u, u)

	P := vec.MulAdd(d, u, -du/uu)
	V := vec.MulAdd(e, u, -eu/uu)

	t := solve(P, V, r)
	s := (du + eu*t) / uu

	if 0 <= t && t < NoContact && 0 < s && s < 1 {
		return t, vec.Add(vec.MulAdd(q, u, s), vec.MulAdd(o, w, t))
	}
	return NoContact, vec.Vec3{}
}

// testSide computes the earliest time and position of the intersection
// of a sphere and a plane.
//
// The sphere has radius r and moves along v from p. The plane moves
// along w and has normal n at distance d from the origin o.
func testSide(o, w, n vec.Vec3, d float32, p, v vec.Vec3, r float32) (float32, vec.Vec3) {
	vn := vec.Dot(v, n)
	wn := vec.Dot(w, n)

	if vn-wn > 0 {
		return NoContact, vec.Vec3{}
	}
	on := vec.Dot(o, n)
	pn := vec.Dot(p, n)

	u := (r + d + on - pn) / (vn - wn)
	a := (d + on - pn) / (vn - wn)

	var t float32
	switch {
	case 0 <= u:
		t = u
	case 0 <= a:
		// already penetrating
		t = 0
	default:
		return NoContact, vec.Vec3{}
	}
	return t, vec.MulAdd(vec.MulAdd(p, v, t), n, -r)
}
