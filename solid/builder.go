// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"github.com/pkg/errors"

	"goball/math/vec"
)

// Builder assembles a Level in memory. Lumps are numbered in creation
// order, so the lumps of one node have to be added back to back.
type Builder struct {
	l Level
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Vert(p vec.Vec3) int {
	b.l.Verts = append(b.l.Verts, Vert{P: p})
	return len(b.l.Verts) - 1
}

func (b *Builder) Edge(vi, vj int) int {
	b.l.Edges = append(b.l.Edges, Edge{Vi: vi, Vj: vj})
	return len(b.l.Edges) - 1
}

// Plane adds a side with normal n at distance d. n gets normalized.
func (b *Builder) Plane(n vec.Vec3, d float32) int {
	b.l.Sides = append(b.l.Sides, Side{N: n.Normalize(), D: d})
	return len(b.l.Sides) - 1
}

func (b *Builder) indices(ids []int) int {
	first := len(b.l.Indices)
	b.l.Indices = append(b.l.Indices, ids...)
	return first
}

// Lump adds a convex lump bounded by the given verts, edges and sides.
func (b *Builder) Lump(verts, edges, sides []int, flags int) int {
	b.l.Lumps = append(b.l.Lumps, Lump{
		Flags:     flags,
		FirstVert: b.indices(verts),
		VertCount: len(verts),
		FirstEdge: b.indices(edges),
		EdgeCount: len(edges),
		FirstSide: b.indices(sides),
		SideCount: len(sides),
	})
	return len(b.l.Lumps) - 1
}

// Box adds an axis aligned box lump spanning mins to maxs.
func (b *Builder) Box(mins, maxs vec.Vec3, flags int) int {
	var verts [8]int
	for i := range verts {
		p := mins
		if i&1 != 0 {
			p.X = maxs.X
		}
		if i&2 != 0 {
			p.Y = maxs.Y
		}
		if i&4 != 0 {
			p.Z = maxs.Z
		}
		verts[i] = b.Vert(p)
	}
	var edges []int
	for i := range verts {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges = append(edges, b.Edge(verts[i], verts[i|bit]))
			}
		}
	}
	sides := []int{
		b.Plane(vec.Vec3{X: 1}, maxs.X),
		b.Plane(vec.Vec3{X: -1}, -mins.X),
		b.Plane(vec.Vec3{Y: 1}, maxs.Y),
		b.Plane(vec.Vec3{Y: -1}, -mins.Y),
		b.Plane(vec.Vec3{Z: 1}, maxs.Z),
		b.Plane(vec.Vec3{Z: -1}, -mins.Z),
	}
	return b.Lump(verts[:], edges, sides, flags)
}

// Node adds a BSP node. Use -1 for missing children.
func (b *Builder) Node(side, front, back, firstLump, lumpCount int) int {
	b.l.Nodes = append(b.l.Nodes, Node{
		Side:      side,
		Front:     front,
		Back:      back,
		FirstLump: firstLump,
		LumpCount: lumpCount,
	})
	return len(b.l.Nodes) - 1
}

// Path adds a path point leading to itself. Link it up with Cycle.
func (b *Builder) Path(p vec.Vec3, t float32, smooth, enabled bool) int {
	i := len(b.l.Paths)
	b.l.Paths = append(b.l.Paths, Path{P: p, T: t, Next: i, Smooth: smooth, Enabled: enabled})
	return i
}

// Cycle links the path points in the given order, the last one
// leading back to the first.
func (b *Builder) Cycle(points ...int) {
	for i, p := range points {
		b.l.Paths[p].Next = points[(i+1)%len(points)]
	}
}

// Body adds a body rooted at node. Use path -1 for static geometry.
func (b *Builder) Body(path, node int) int {
	b.l.Bodies = append(b.l.Bodies, Body{Path: path, Node: node})
	return len(b.l.Bodies) - 1
}

// Ball adds a ball with an identity orientation at rest.
func (b *Builder) Ball(p vec.Vec3, r float32) int {
	basis := [3]vec.Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	b.l.Balls = append(b.l.Balls, Ball{P: p, R: r, Basis: basis, PendE: basis})
	return len(b.l.Balls) - 1
}

func (b *Builder) Item(p vec.Vec3, typ, n int) int {
	b.l.Items = append(b.l.Items, Item{P: p, Type: typ, N: n})
	return len(b.l.Items) - 1
}

func (b *Builder) Goal(p vec.Vec3, r float32) int {
	b.l.Goals = append(b.l.Goals, Goal{P: p, R: r})
	return len(b.l.Goals) - 1
}

func (b *Builder) Jump(p, q vec.Vec3, r float32) int {
	b.l.Jumps = append(b.l.Jumps, Jump{P: p, Q: q, R: r})
	return len(b.l.Jumps) - 1
}

// Switch adds a switch driving the path cycle through path. The
// switch starts out in its default state f0.
func (b *Builder) Switch(p vec.Vec3, r float32, path int, t0 float32, f0, invisible bool) int {
	b.l.Switches = append(b.l.Switches, Switch{
		P:         p,
		R:         r,
		Path:      path,
		T0:        t0,
		F0:        f0,
		F:         f0,
		Invisible: invisible,
	})
	return len(b.l.Switches) - 1
}

// Build validates the level and hands it over. The builder must not be
// used afterwards.
func (b *Builder) Build() (*Level, error) {
	l := b.l
	if err := l.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid level")
	}
	b.l = Level{}
	return &l, nil
}
