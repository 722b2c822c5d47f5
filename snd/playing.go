// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"github.com/gopxl/beep/v2"

	"goball/math"
	"goball/math/vec"
)

type playingSound struct {
	distanceMultiplier float32
	masterVolume       float64
	origin             vec.Vec3
	right              float64
	left               float64
	sound              beep.Streamer
}

// spatialize pans the sound by its direction from the listener and
// fades it with distance.
func (s *playingSound) spatialize(listenerPos, listenerRight vec.Vec3) {
	v := vec.Sub(s.origin, listenerPos)
	dist := v.Length() * s.distanceMultiplier
	v = v.Normalize()
	dot := vec.Dot(listenerRight, v)
	dist = 1.0 - dist
	lscale := (1.0 - dot) * dist
	rscale := (1.0 + dot) * dist
	s.left = math.Clamp(0, float64(lscale), 1)
	s.right = math.Clamp(0, float64(rscale), 1)
}

func (s *playingSound) Stream(samples [][2]float64) (int, bool) {
	if s.sound == nil {
		return 0, false
	}
	n, ok := s.sound.Stream(samples)
	for i := range samples[:n] {
		samples[i][0] *= s.left * s.masterVolume
		samples[i][1] *= s.right * s.masterVolume
	}
	return n, ok
}

func (s *playingSound) Err() error {
	if s.sound == nil {
		return nil
	}
	return s.sound.Err()
}
