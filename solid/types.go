// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"goball/math/vec"
)

const (
	// NoContact is the time reported when nothing is struck.
	NoContact = 1e5

	GoalHeight   = 3.0
	JumpHeight   = 2.0
	SwitchHeight = 2.0
)

// Lump flags
const (
	LumpDetail = 1 << iota // not solid, ignored by collision
)

// Item types
const (
	ItemNone = iota
	ItemCoin
	ItemGrow
	ItemShrink
)

type Vert struct {
	P vec.Vec3
}

type Edge struct {
	Vi, Vj int // vertex ids
}

// Side is a plane with unit normal N at distance D from the origin.
// The interior of a lump lies behind all of its sides.
type Side struct {
	N vec.Vec3
	D float32
}

// Lump is a convex region. The vert, edge and side ranges index into
// Level.Indices.
type Lump struct {
	Flags     int
	FirstVert int
	VertCount int
	FirstEdge int
	EdgeCount int
	FirstSide int
	SideCount int
}

// Node is a BSP node. Front and Back are child node ids or -1.
// The lumps FirstLump..FirstLump+LumpCount belong to this node.
type Node struct {
	Side      int // splitting plane
	Front     int
	Back      int
	FirstLump int
	LumpCount int
}

// Path is one keyframe of a path cycle. Next is followed to reach the
// successor, T is the time it takes to get there.
type Path struct {
	P       vec.Vec3
	T       float32
	Next    int
	Enabled bool
	Smooth  bool
}

// Body is a group of geometry moving rigidly along a path.
type Body struct {
	T    float32 // time into the current segment
	Path int     // current path point or -1 for static bodies
	Node int     // root of the body's BSP subtree
}

type Item struct {
	P    vec.Vec3
	Type int
	N    int // value
}

type Goal struct {
	P vec.Vec3
	R float32
}

// Jump teleports the ball to Q, keeping its offset from P.
type Jump struct {
	P vec.Vec3
	Q vec.Vec3
	R float32
}

type Switch struct {
	P         vec.Vec3
	R         float32
	Path      int     // path cycle controlled by this switch
	T0        float32 // timer duration, 0 for continuous switches
	T         float32 // remaining time
	F0        bool    // default state
	F         bool
	Invisible bool
	Entered   bool
}

type Ball struct {
	Basis [3]vec.Vec3 // orientation
	P     vec.Vec3
	V     vec.Vec3
	W     vec.Vec3 // angular velocity
	R     float32
	PendE [3]vec.Vec3 // pendulum basis
	PendW vec.Vec3    // pendulum angular velocity
}

// Level holds all geometry and runtime state of one play session.
// Verts, edges, sides and nodes never change after construction.
// Bodies, paths, switches and balls are mutated in place by Step and
// the sensor tests. A Level is not safe for concurrent use.
type Level struct {
	Verts    []Vert
	Edges    []Edge
	Sides    []Side
	Lumps    []Lump
	Nodes    []Node
	Paths    []Path
	Bodies   []Body
	Items    []Item
	Goals    []Goal
	Jumps    []Jump
	Switches []Switch
	Balls    []Ball
	Indices  []int
}

func (l *Level) lumpVert(lp *Lump, i int) *Vert {
	return &l.Verts[l.Indices[lp.FirstVert+i]]
}

func (l *Level) lumpEdge(lp *Lump, i int) *Edge {
	return &l.Edges[l.Indices[lp.FirstEdge+i]]
}

func (l *Level) lumpSide(lp *Lump, i int) int {
	return l.Indices[lp.FirstSide+i]
}
