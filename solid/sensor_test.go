// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"testing"

	"goball/math/vec"
)

func sensorLevel(t *testing.T) *Level {
	t.Helper()
	b := NewBuilder()
	b.Item(vec.Vec3{}, ItemCoin, 5)
	b.Item(vec.Vec3{X: 0.3}, ItemNone, 0)
	b.Goal(vec.Vec3{Z: 20}, 1)
	b.Jump(vec.Vec3{Z: -20}, vec.Vec3{X: 10, Y: 5}, 1)
	b.Ball(vec.Vec3{}, 0.25)
	l, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	return l
}

func TestItemTest(t *testing.T) {
	l := sensorLevel(t)
	tests := []struct {
		p    vec.Vec3
		want *Item
	}{
		{vec.Vec3{X: 0.25}, &l.Items[0]},
		{vec.Vec3{X: 0.35}, &l.Items[0]},
		{vec.Vec3{X: 1}, nil},
		{vec.Vec3{Y: 0.5}, nil},
	}
	for _, tt := range tests {
		l.Balls[0].P = tt.p
		if got := l.ItemTest(0, 0.15); got != tt.want {
			t.Errorf("ItemTest() at %v = %v, want %v", tt.p, got, tt.want)
		}
	}
	if got := l.ItemTest(1, 0.15); got != nil {
		t.Errorf("ItemTest() unknown ball = %v, want nil", got)
	}
}

func TestGoalTest(t *testing.T) {
	l := sensorLevel(t)
	tests := []struct {
		p    vec.Vec3
		want bool
	}{
		{vec.Vec3{X: 0.2, Y: 0.5, Z: 20}, true},
		{vec.Vec3{X: 0.7, Y: 1.4, Z: 20}, true},
		{vec.Vec3{X: 0.8, Y: 0.5, Z: 20}, false},
		{vec.Vec3{Y: 1.6, Z: 20}, false},
		{vec.Vec3{Y: -0.1, Z: 20}, false},
		{vec.Vec3{Y: 0.5}, false},
	}
	for _, tt := range tests {
		l.Balls[0].P = tt.p
		if got := l.GoalTest(0) != nil; got != tt.want {
			t.Errorf("GoalTest() at %v = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestJumpTest(t *testing.T) {
	l := sensorLevel(t)
	tests := []struct {
		p    vec.Vec3
		want JumpResult
		dst  vec.Vec3
	}{
		{vec.Vec3{X: 0.2, Y: 0.5, Z: -19.9}, JumpInside, vec.Vec3{X: 10.2, Y: 5.5, Z: 0.1}},
		{vec.Vec3{X: 0.9, Y: 0.5, Z: -20}, JumpBorder, vec.Vec3{}},
		{vec.Vec3{X: 2, Y: 0.5, Z: -20}, JumpNone, vec.Vec3{}},
		{vec.Vec3{Y: 1.2, Z: -20}, JumpNone, vec.Vec3{}},
	}
	for _, tt := range tests {
		l.Balls[0].P = tt.p
		got, dst := l.JumpTest(0)
		if got != tt.want {
			t.Errorf("JumpTest() at %v = %v, want %v", tt.p, got, tt.want)
		}
		if !vec.Near(dst, tt.dst, 1e-5) {
			t.Errorf("JumpTest() at %v sends to %v, want %v", tt.p, dst, tt.dst)
		}
	}
}
