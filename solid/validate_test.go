// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"strings"
	"testing"

	"goball/math/vec"
)

func TestValidate(t *testing.T) {
	up := vec.Vec3{Y: 1}
	tests := []struct {
		name string
		l    Level
		want string
	}{
		{"empty", Level{}, ""},
		{"broken cycle", Level{Paths: []Path{{Next: 1}, {Next: 1}}}, "not on a cycle"},
		{"next out of range", Level{Paths: []Path{{Next: 2}}}, "out of range"},
		{"unit normal", Level{Sides: []Side{{N: vec.Vec3{Y: 2}}}}, "not unit length"},
		{"dangling child", Level{
			Sides: []Side{{N: up}},
			Nodes: []Node{{Side: 0, Front: 3, Back: -1}},
		}, "dangling child"},
		{"edge", Level{Edges: []Edge{{Vi: 0, Vj: 1}}}, "edge 0"},
		{"lump", Level{
			Sides:   []Side{{N: up}},
			Indices: []int{0},
			Lumps:   []Lump{{FirstSide: 0, SideCount: 2}},
		}, "lump 0"},
		{"body node", Level{Bodies: []Body{{Path: -1, Node: 0}}}, "body 0"},
		{"body time", Level{
			Sides:  []Side{{N: up}},
			Nodes:  []Node{{Side: 0, Front: -1, Back: -1}},
			Paths:  []Path{{T: 1}},
			Bodies: []Body{{Path: 0, T: 1}},
		}, "outside of its segment"},
		{"node loop", Level{
			Sides:  []Side{{N: up}},
			Nodes:  []Node{{Side: 0, Front: 0, Back: -1}},
			Bodies: []Body{{Path: -1, Node: 0}},
		}, "body 0: node 0 reached twice"},
		{"node cycle", Level{
			Sides:  []Side{{N: up}},
			Nodes:  []Node{{Side: 0, Front: 1, Back: -1}, {Side: 0, Front: -1, Back: 0}},
			Bodies: []Body{{Path: -1, Node: 0}},
		}, "reached twice"},
		{"shared child", Level{
			Sides:  []Side{{N: up}},
			Nodes:  []Node{{Side: 0, Front: 1, Back: 1}, {Side: 0, Front: -1, Back: -1}},
			Bodies: []Body{{Path: -1, Node: 0}},
		}, "node 1 reached twice"},
		{"tree", Level{
			Sides:  []Side{{N: up}},
			Nodes:  []Node{{Side: 0, Front: 1, Back: 2}, {Side: 0, Front: -1, Back: -1}, {Side: 0, Front: -1, Back: -1}},
			Bodies: []Body{{Path: -1, Node: 0}, {Path: -1, Node: 1}},
		}, ""},
		{"switch path", Level{Switches: []Switch{{Path: 0}}}, "switch 0"},
	}
	for _, tt := range tests {
		err := tt.l.Validate()
		switch {
		case tt.want == "" && err != nil:
			t.Errorf("%s: Validate() = %v, want nil", tt.name, err)
		case tt.want != "" && (err == nil || !strings.Contains(err.Error(), tt.want)):
			t.Errorf("%s: Validate() = %v, want %q", tt.name, err, tt.want)
		}
	}
}

func TestBuildRejects(t *testing.T) {
	b := NewBuilder()
	b.Body(-1, 4)
	l, err := b.Build()
	if l != nil || err == nil {
		t.Fatalf("Build() = %v, %v, want error", l, err)
	}
	if !strings.HasPrefix(err.Error(), "invalid level: body 0") {
		t.Errorf("Build() error = %q", err)
	}
}

func TestBuildBox(t *testing.T) {
	b := NewBuilder()
	b.Box(vec.Vec3{X: -1, Y: -2, Z: -3}, vec.Vec3{X: 1, Y: 2, Z: 3}, 0)
	l, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	lp := &l.Lumps[0]
	if lp.VertCount != 8 || lp.EdgeCount != 12 || lp.SideCount != 6 {
		t.Fatalf("box lump = %+v", *lp)
	}
	// every vertex lies on exactly three faces
	for i := 0; i < lp.VertCount; i++ {
		p := l.lumpVert(lp, i).P
		on := 0
		for j := 0; j < lp.SideCount; j++ {
			sp := &l.Sides[l.lumpSide(lp, j)]
			if d := vec.Dot(p, sp.N) - sp.D; d > 1e-6 {
				t.Errorf("vertex %v outside side %v", p, sp)
			} else if d > -1e-6 {
				on++
			}
		}
		if on != 3 {
			t.Errorf("vertex %v on %d faces, want 3", p, on)
		}
	}
}
