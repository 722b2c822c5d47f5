// SPDX-License-Identifier: GPL-2.0-or-later

// Package gametime turns variable frame times into fixed simulation
// ticks.
package gametime

import (
	"time"

	"goball/cvars"
	"goball/math"
)

const (
	minFrameTime = 0.001
	maxFrameTime = 0.1
)

type GameTime struct {
	now        func() time.Time
	last       time.Time
	tick       float64
	time       float64
	frameTime  float64
	acc        float64
	frameCount int
	tickCount  int
}

// New returns a clock producing ticks of length tick seconds.
func New(tick float64) *GameTime {
	return &GameTime{now: time.Now, tick: tick}
}

func (h *GameTime) Tick() float64      { return h.tick }
func (h *GameTime) Time() float64      { return h.time }
func (h *GameTime) FrameTime() float64 { return h.frameTime }
func (h *GameTime) FrameCount() int    { return h.frameCount }
func (h *GameTime) TickCount() int     { return h.tickCount }

// Alpha is how far the simulation has progressed into the next tick.
func (h *GameTime) Alpha() float64 {
	return h.acc / h.tick
}

// Frame accounts for a frame that took elapsed seconds and returns the
// number of ticks to simulate. The frame time is clamped and scaled by
// sim_timescale.
func (h *GameTime) Frame(elapsed float64) int {
	h.frameCount++
	h.frameTime = math.Clamp(minFrameTime, elapsed, maxFrameTime)
	if s := float64(cvars.SimTimeScale.Value()); s > 0 {
		h.frameTime *= s
	}
	h.time += h.frameTime
	h.acc += h.frameTime

	n := 0
	for h.tick > 0 && h.acc >= h.tick {
		h.acc -= h.tick
		n++
	}
	h.tickCount += n
	return n
}

// UpdateTime measures the wall clock time since the previous call and
// passes it to Frame.
func (h *GameTime) UpdateTime() int {
	t := h.now()
	if h.last.IsZero() {
		h.last = t
		return 0
	}
	elapsed := t.Sub(h.last).Seconds()
	h.last = t
	return h.Frame(elapsed)
}
