// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"testing"

	"github.com/chewxy/math32"

	"goball/math/vec"
)

func near(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}

func TestVertContact(t *testing.T) {
	q := vec.Vec3{}
	p := vec.Vec3{X: -3, Y: 0.5, Z: 0}
	v := vec.Vec3{X: 1, Y: 0, Z: 0}
	var r float32 = 1

	got, Q := testVert(vec.Vec3{}, q, vec.Vec3{}, p, v, r)
	want := 3 - math32.Sqrt(0.75)
	if !near(got, want, 1e-5) {
		t.Errorf("testVert time = %v, want %v", got, want)
	}
	if d := vec.Sub(vec.MulAdd(p, v, got), q).Length(); !near(d, r, 1e-5) {
		t.Errorf("distance at contact = %v, want %v", d, r)
	}
	if Q != q {
		t.Errorf("testVert point = %v, want %v", Q, q)
	}
}

func TestVertMoving(t *testing.T) {
	w := vec.Vec3{X: -1, Y: 0, Z: 0}
	got, Q := testVert(vec.Vec3{}, vec.Vec3{}, w, vec.Vec3{X: -3, Y: 0, Z: 0}, vec.Vec3{X: 1, Y: 0, Z: 0}, 1)
	if !near(got, 1, 1e-6) {
		t.Errorf("testVert time = %v, want 1", got)
	}
	want := vec.Vec3{X: -1, Y: 0, Z: 0}
	if !vec.Near(Q, want, 1e-6) {
		t.Errorf("testVert point = %v, want %v", Q, want)
	}
}

func TestVertMovingAway(t *testing.T) {
	got, _ := testVert(vec.Vec3{}, vec.Vec3{}, vec.Vec3{}, vec.Vec3{X: -3, Y: 0, Z: 0}, vec.Vec3{X: -1, Y: 0, Z: 0}, 1)
	if got != NoContact {
		t.Errorf("testVert moving away = %v, want %v", got, NoContact)
	}
	// passing by at a distance
	got, _ = testVert(vec.Vec3{}, vec.Vec3{}, vec.Vec3{}, vec.Vec3{X: -3, Y: 2, Z: 0}, vec.Vec3{X: 1, Y: 0, Z: 0}, 1)
	if got != NoContact {
		t.Errorf("testVert miss = %v, want %v", got, NoContact)
	}
}

func TestSolveDegenerate(t *testing.T) {
	// no relative motion: zero leading coefficient
	if got := solve(vec.Vec3{X: 2, Y: 0, Z: 0}, vec.Vec3{}, 1); got != NoContact {
		t.Errorf("solve without motion = %v, want %v", got, NoContact)
	}
	// both roots in the past
	if got := solve(vec.Vec3{X: 3, Y: 0, Z: 0}, vec.Vec3{X: 1, Y: 0, Z: 0}, 1); got != NoContact {
		t.Errorf("solve receding = %v, want %v", got, NoContact)
	}
	// grazing contact
	if got := solve(vec.Vec3{X: -2, Y: 1, Z: 0}, vec.Vec3{X: 1, Y: 0, Z: 0}, 1); !near(got, 2, 1e-6) {
		t.Errorf("solve tangent = %v, want 2", got)
	}
}

func TestEdgeContact(t *testing.T) {
	q := vec.Vec3{X: 0, Y: 0, Z: -1}
	u := vec.Vec3{X: 0, Y: 0, Z: 2}
	got, Q := testEdge(vec.Vec3{}, q, u, vec.Vec3{}, vec.Vec3{X: -3, Y: 0, Z: 0}, vec.Vec3{X: 1, Y: 0, Z: 0}, 0.5)
	if !near(got, 2.5, 1e-6) {
		t.Errorf("testEdge time = %v, want 2.5", got)
	}
	if !vec.Near(Q, vec.Vec3{}, 1e-6) {
		t.Errorf("testEdge point = %v, want origin", Q)
	}
}

func TestEdgeBeyondEnds(t *testing.T) {
	q := vec.Vec3{X: 0, Y: 0, Z: -1}
	u := vec.Vec3{X: 0, Y: 0, Z: 2}
	got, _ := testEdge(vec.Vec3{}, q, u, vec.Vec3{}, vec.Vec3{X: -3, Y: 0, Z: 5}, vec.Vec3{X: 1, Y: 0, Z: 0}, 0.5)
	if got != NoContact {
		t.Errorf("testEdge past the end = %v, want %v", got, NoContact)
	}
	got, _ = testEdge(vec.Vec3{}, q, u, vec.Vec3{}, vec.Vec3{X: -3, Y: 0, Z: 0}, vec.Vec3{X: -1, Y: 0, Z: 0}, 0.5)
	if got != NoContact {
		t.Errorf("testEdge moving away = %v, want %v", got, NoContact)
	}
}

func TestEdgeDegenerate(t *testing.T) {
	got, _ := testEdge(vec.Vec3{}, vec.Vec3{}, vec.Vec3{}, vec.Vec3{}, vec.Vec3{X: -3, Y: 0, Z: 0}, vec.Vec3{X: 1, Y: 0, Z: 0}, 0.5)
	if got != NoContact {
		t.Errorf("testEdge of zero length = %v, want %v", got, NoContact)
	}
}

func TestSideFalling(t *testing.T) {
	n := vec.Vec3{X: 0, Y: 1, Z: 0}
	p := vec.Vec3{X: 0, Y: 1, Z: 0}
	v := vec.Vec3{X: 0, Y: -1, Z: 0}
	got, Q := testSide(vec.Vec3{}, vec.Vec3{}, n, 0, p, v, 0.1)
	if !near(got, 0.9, 1e-6) {
		t.Errorf("testSide time = %v, want 0.9", got)
	}
	if !near(Q.Y, 0, 1e-6) {
		t.Errorf("testSide point = %v, want on the plane", Q)
	}
	if c := vec.MulAdd(p, v, got); !near(c.Y, 0.1, 1e-6) {
		t.Errorf("ball center at contact = %v, want y 0.1", c)
	}
}

func TestSideMovingPlane(t *testing.T) {
	n := vec.Vec3{X: 0, Y: 1, Z: 0}
	got, _ := testSide(vec.Vec3{}, vec.Vec3{X: 0, Y: 1, Z: 0}, n, 0, vec.Vec3{X: 0, Y: 1, Z: 0}, vec.Vec3{}, 0.1)
	if !near(got, 0.9, 1e-6) {
		t.Errorf("testSide with rising plane = %v, want 0.9", got)
	}
	// plane at height 2 relative to o
	got, _ = testSide(vec.Vec3{X: 0, Y: 2, Z: 0}, vec.Vec3{}, n, 0, vec.Vec3{X: 0, Y: 3, Z: 0}, vec.Vec3{X: 0, Y: -1, Z: 0}, 0.1)
	if !near(got, 0.9, 1e-6) {
		t.Errorf("testSide with offset plane = %v, want 0.9", got)
	}
}

func TestSidePenetrating(t *testing.T) {
	n := vec.Vec3{X: 0, Y: 1, Z: 0}
	v := vec.Vec3{X: 0, Y: -1, Z: 0}
	got, _ := testSide(vec.Vec3{}, vec.Vec3{}, n, 0, vec.Vec3{X: 0, Y: 0.05, Z: 0}, v, 0.1)
	if got != 0 {
		t.Errorf("testSide penetrating = %v, want 0", got)
	}
	got, _ = testSide(vec.Vec3{}, vec.Vec3{}, n, 0, vec.Vec3{X: 0, Y: -1, Z: 0}, v, 0.1)
	if got != NoContact {
		t.Errorf("testSide behind = %v, want %v", got, NoContact)
	}
	got, _ = testSide(vec.Vec3{}, vec.Vec3{}, n, 0, vec.Vec3{X: 0, Y: 1, Z: 0}, vec.Vec3{X: 0, Y: 1, Z: 0}, 0.1)
	if got != NoContact {
		t.Errorf("testSide moving away = %v, want %v", got, NoContact)
	}
}
