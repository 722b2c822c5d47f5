// SPDX-License-Identifier: GPL-2.0-or-later

package scene

import (
	"goball/math/vec"
	"goball/rand"
	"goball/solid"
)

func init() {
	mustRegister(Scene{
		Name:        "floor",
		Description: "a ball dropped onto a static floor",
		Build:       buildFloor,
	})
	mustRegister(Scene{
		Name:        "lift",
		Description: "a ball riding a smoothly moving platform",
		Build:       buildLift,
	})
	mustRegister(Scene{
		Name:        "switch",
		Description: "a rolling ball triggering a timed switch on its way to the goal",
		Build:       buildSwitch,
	})
	mustRegister(Scene{
		Name:        "course",
		Description: "coins, a jump and a goal",
		Build:       buildCourse,
	})
	mustRegister(Scene{
		Name:        "scatter",
		Description: "pillars and coins strewn over a floor",
		Build:       buildScatter,
	})
	mustRegister(Scene{
		Name:        "pinch",
		Description: "a ball wedged between two walls",
		Build:       buildPinch,
	})
}

const ballRadius = 0.25

// floor adds a static floor body with its top at y = 0 spanning
// [-size, size] in x and z. It returns the splitting plane for the
// level's nodes.
func floor(b *solid.Builder, size float32) int {
	split := b.Plane(vec.Vec3{Y: 1}, 0)
	lump := b.Box(vec.Vec3{X: -size, Y: -1, Z: -size}, vec.Vec3{X: size, Z: size}, 0)
	b.Body(-1, b.Node(split, -1, -1, lump, 1))
	return split
}

func buildFloor() (*solid.Level, error) {
	b := solid.NewBuilder()
	floor(b, 5)
	b.Ball(vec.Vec3{Y: 2}, ballRadius)
	return b.Build()
}

func buildLift() (*solid.Level, error) {
	b := solid.NewBuilder()
	split := floor(b, 5)

	platform := b.Box(vec.Vec3{X: -1, Z: -1}, vec.Vec3{X: 1, Y: 0.5, Z: 1}, 0)
	down := b.Path(vec.Vec3{}, 2, true, true)
	up := b.Path(vec.Vec3{Y: 2}, 2, true, true)
	b.Cycle(down, up)
	b.Body(down, b.Node(split, -1, -1, platform, 1))

	b.Ball(vec.Vec3{Y: 0.5 + ballRadius}, ballRadius)
	return b.Build()
}

func buildSwitch() (*solid.Level, error) {
	b := solid.NewBuilder()
	split := floor(b, 8)

	// a gate that opens while the switch is on
	gate := b.Box(vec.Vec3{X: -1, Z: -0.25}, vec.Vec3{X: 1, Y: 2, Z: 0.25}, 0)
	closed := b.Path(vec.Vec3{Z: 4}, 1, true, false)
	open := b.Path(vec.Vec3{Y: -2, Z: 4}, 1, true, false)
	b.Cycle(closed, open)
	b.Body(closed, b.Node(split, -1, -1, gate, 1))

	b.Switch(vec.Vec3{X: 1}, 0.5, closed, 3, false, false)
	b.Goal(vec.Vec3{X: 4}, 1)

	b.Ball(vec.Vec3{X: -2, Y: ballRadius}, ballRadius)
	return withVelocity(b, vec.Vec3{X: 3.5})
}

func buildCourse() (*solid.Level, error) {
	b := solid.NewBuilder()
	floor(b, 8)

	for x := float32(1); x <= 3; x++ {
		b.Item(vec.Vec3{X: x, Y: ballRadius}, solid.ItemCoin, 1)
	}
	b.Item(vec.Vec3{Y: ballRadius, Z: 3}, solid.ItemGrow, 0)
	b.Jump(vec.Vec3{X: 5}, vec.Vec3{X: -3, Z: 3}, 1)
	b.Goal(vec.Vec3{X: -1, Z: 3}, 1)

	b.Ball(vec.Vec3{X: -2, Y: ballRadius}, ballRadius)
	return withVelocity(b, vec.Vec3{X: 4.5})
}

const scatterSeed = 1998

func buildScatter() (*solid.Level, error) {
	b := solid.NewBuilder()
	split := floor(b, 8)
	g := rand.New(scatterSeed)

	first := -1
	const pillars = 6
	for i := 0; i < pillars; i++ {
		x, z := g.Range(-6, 6), g.Range(-6, 6)
		if x*x+z*z < 2.25 {
			// keep the start clear
			x += 3
		}
		h := g.Range(0.5, 2)
		lump := b.Box(vec.Vec3{X: x - 0.5, Z: z - 0.5}, vec.Vec3{X: x + 0.5, Y: h, Z: z + 0.5}, 0)
		if first < 0 {
			first = lump
		}
	}
	b.Body(-1, b.Node(split, -1, -1, first, pillars))

	for i := 0; i < 12; i++ {
		b.Item(vec.Vec3{X: g.Range(-7, 7), Y: ballRadius, Z: g.Range(-7, 7)}, solid.ItemCoin, 1+g.Intn(5))
	}

	b.Ball(vec.Vec3{Y: ballRadius}, ballRadius)
	return withVelocity(b, vec.Vec3{X: g.Range(-4, 4), Z: g.Range(-4, 4)})
}

func buildPinch() (*solid.Level, error) {
	b := solid.NewBuilder()
	split := floor(b, 5)

	left := b.Box(vec.Vec3{X: -1.5, Z: -5}, vec.Vec3{X: -0.5, Y: 2, Z: 5}, 0)
	b.Box(vec.Vec3{X: 0.5, Z: -5}, vec.Vec3{X: 1.5, Y: 2, Z: 5}, 0)
	b.Body(-1, b.Node(split, -1, -1, left, 2))

	b.Ball(vec.Vec3{Y: 0.5}, 0.5)
	return withVelocity(b, vec.Vec3{X: 1})
}

func withVelocity(b *solid.Builder, v vec.Vec3) (*solid.Level, error) {
	l, err := b.Build()
	if err != nil {
		return nil, err
	}
	l.Balls[0].V = v
	return l, nil
}
