// SPDX-License-Identifier: GPL-2.0-or-later

package solid

// setCycle writes f to every path point on the cycle through pi.
// Every path point lies on a cycle, so the tortoise and the hare are
// bound to meet again after one lap of the tortoise.
func (l *Level) setCycle(pi int, f bool) {
	pj := pi
	for {
		l.Paths[pi].Enabled = f
		l.Paths[pj].Enabled = f

		pi = l.Paths[pi].Next
		pj = l.Paths[pj].Next
		pj = l.Paths[pj].Next
		if pi == pj {
			return
		}
	}
}

// stepSwitches counts down all timed switches. An expired switch falls
// back to its default state.
func (l *Level) stepSwitches(dt float32) {
	for i := range l.Switches {
		xp := &l.Switches[i]
		if xp.T <= 0 {
			continue
		}
		xp.T -= dt
		if xp.T <= 0 {
			l.setCycle(xp.Path, xp.F0)
			xp.F = xp.F0
			xp.T = 0
		}
	}
}
