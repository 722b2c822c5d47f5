// SPDX-License-Identifier: GPL-2.0-or-later

package solid

import (
	"goball/math/vec"
)

type JumpResult int

const (
	JumpNone JumpResult = iota
	JumpInside
	JumpBorder
)

func (l *Level) ball(ui int) *Ball {
	if ui < 0 || ui >= len(l.Balls) {
		return nil
	}
	return &l.Balls[ui]
}

// ItemTest returns the first item touching ball ui, or nil.
func (l *Level) ItemTest(ui int, itemRadius float32) *Item {
	up := l.ball(ui)
	if up == nil {
		return nil
	}
	for i := range l.Items {
		hp := &l.Items[i]
		if hp.Type == ItemNone {
			continue
		}
		r := vec.Sub(up.P, hp.P)
		if r.Length() < up.R+itemRadius {
			return hp
		}
	}
	return nil
}

// GoalTest returns the first goal ball ui is fully inside of, or nil.
func (l *Level) GoalTest(ui int) *Goal {
	up := l.ball(ui)
	if up == nil {
		return nil
	}
	for i := range l.Goals {
		zp := &l.Goals[i]
		r := vec.Sub(up.P, zp.P).Horizontal()
		if r.Length() < zp.R-up.R &&
			up.P.Y > zp.P.Y &&
			up.P.Y < zp.P.Y+GoalHeight/2 {
			return zp
		}
	}
	return nil
}

// JumpTest tests whether ball ui is inside a jump. When it is fully
// inside it returns JumpInside and the position the ball is sent to.
// JumpBorder reports a ball overlapping the rim of a jump.
func (l *Level) JumpTest(ui int) (JumpResult, vec.Vec3) {
	up := l.ball(ui)
	if up == nil {
		return JumpNone, vec.Vec3{}
	}
	res := JumpNone
	for i := range l.Jumps {
		jp := &l.Jumps[i]
		d := vec.Sub(up.P, jp.P).Horizontal().Length() - jp.R
		if d < 0 &&
			up.P.Y > jp.P.Y &&
			up.P.Y < jp.P.Y+JumpHeight/2 {
			if d < -up.R {
				return JumpInside, vec.Add(jp.Q, vec.Sub(up.P, jp.P))
			}
			res = JumpBorder
		}
	}
	return res, vec.Vec3{}
}

// SwitchTest processes ball ui entering and leaving switches. It
// reports whether a visible switch was toggled.
func (l *Level) SwitchTest(ui int) bool {
	up := l.ball(ui)
	if up == nil {
		return false
	}
	res := false
	for i := range l.Switches {
		xp := &l.Switches[i]
		if xp.T0 != 0 && xp.F != xp.F0 {
			continue
		}
		d := vec.Sub(up.P, xp.P).Horizontal().Length() - xp.R
		if d < up.R &&
			up.P.Y > xp.P.Y &&
			up.P.Y < xp.P.Y+SwitchHeight/2 {
			if !xp.Entered && d < -up.R {
				// the ball enters
				if xp.T0 == 0 {
					xp.Entered = true
				}
				xp.F = !xp.F
				l.setCycle(xp.Path, xp.F)

				if xp.F != xp.F0 {
					xp.T = xp.T0
				}
				if !xp.Invisible {
					res = true
				}
			}
		} else if xp.Entered {
			// the ball exits
			xp.Entered = false
		}
	}
	return res
}
