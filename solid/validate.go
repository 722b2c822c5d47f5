// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

const normalTolerance = 1e-3

func inRange(i, n int) bool {
	return 0 <= i && i < n
}

// Validate checks the structural guarantees the physics relies on but
// never checks itself: all indices in range, unit side normals, body
// times inside their segment and every path point on a cycle.
func (l *Level) Validate() error {
	for i, e := range l.Edges {
		if !inRange(e.Vi, len(l.Verts)) || !inRange(e.Vj, len(l.Verts)) {
			return errors.Errorf("edge %d: vertex out of range", i)
		}
	}
	for i, s := range l.Sides {
		if math32.Abs(s.N.Length()-1) > normalTolerance {
			return errors.Errorf("side %d: normal %v is not unit length", i, s.N)
		}
	}
	for i, x := range l.Indices {
		if x < 0 {
			return errors.Errorf("index %d: negative", i)
		}
	}
	for i := range l.Lumps {
		if err := l.validateLump(&l.Lumps[i]); err != nil {
			return errors.Wrapf(err, "lump %d", i)
		}
	}
	for i, n := range l.Nodes {
		if !inRange(n.Side, len(l.Sides)) {
			return errors.Errorf("node %d: side %d out of range", i, n.Side)
		}
		if n.Front >= len(l.Nodes) || n.Back >= len(l.Nodes) {
			return errors.Errorf("node %d: dangling child", i)
		}
		if n.FirstLump < 0 || n.LumpCount < 0 || n.FirstLump+n.LumpCount > len(l.Lumps) {
			return errors.Errorf("node %d: lumps out of range", i)
		}
	}
	if err := l.validatePaths(); err != nil {
		return err
	}
	for i, b := range l.Bodies {
		if !inRange(b.Node, len(l.Nodes)) {
			return errors.Errorf("body %d: node %d out of range", i, b.Node)
		}
		if err := l.validateTree(b.Node); err != nil {
			return errors.Wrapf(err, "body %d", i)
		}
		if b.Path >= len(l.Paths) {
			return errors.Errorf("body %d: path %d out of range", i, b.Path)
		}
		if b.Path >= 0 && (b.T < 0 || (l.Paths[b.Path].T > 0 && b.T >= l.Paths[b.Path].T)) {
			return errors.Errorf("body %d: time %v outside of its segment", i, b.T)
		}
	}
	for i, x := range l.Switches {
		if !inRange(x.Path, len(l.Paths)) {
			return errors.Errorf("switch %d: path %d out of range", i, x.Path)
		}
	}
	return nil
}

func (l *Level) validateLump(lp *Lump) error {
	ranges := []struct {
		name         string
		first, count int
		n            int
	}{
		{"vert", lp.FirstVert, lp.VertCount, len(l.Verts)},
		{"edge", lp.FirstEdge, lp.EdgeCount, len(l.Edges)},
		{"side", lp.FirstSide, lp.SideCount, len(l.Sides)},
	}
	for _, r := range ranges {
		if r.count == 0 {
			continue
		}
		if r.first < 0 || r.count < 0 || r.first+r.count > len(l.Indices) {
			return errors.Errorf("%s range out of index bounds", r.name)
		}
		for _, x := range l.Indices[r.first : r.first+r.count] {
			if x >= r.n {
				return errors.Errorf("%s %d out of range", r.name, x)
			}
		}
	}
	return nil
}

// validateTree walks the BSP below root and rejects any node reached
// twice, which covers cycles as well as shared subtrees.
func (l *Level) validateTree(root int) error {
	seen := make(map[int]bool)
	stack := []int{root}
	for len(stack) > 0 {
		ni := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if ni < 0 {
			continue
		}
		if seen[ni] {
			return errors.Errorf("node %d reached twice", ni)
		}
		seen[ni] = true
		stack = append(stack, l.Nodes[ni].Front, l.Nodes[ni].Back)
	}
	return nil
}

// validatePaths makes sure the successor function is a permutation,
// i.e. every path point returns to itself.
func (l *Level) validatePaths() error {
	for i, p := range l.Paths {
		if !inRange(p.Next, len(l.Paths)) {
			return errors.Errorf("path %d: next %d out of range", i, p.Next)
		}
	}
	for i := range l.Paths {
		j := l.Paths[i].Next
		for n := 1; j != i; n++ {
			if n >= len(l.Paths) {
				return errors.Errorf("path %d: not on a cycle", i)
			}
			j = l.Paths[j].Next
		}
	}
	return nil
}
