// SPDX-License-Identifier: GPL-2.0-or-later

// Package snd turns impact energies reported by the simulation into
// sound. Nothing here is played live, tracks are rendered to WAV.
package snd

import (
	"github.com/gopxl/beep/v2"
)

const (
	clipDistance      = 100.0
	desiredSampleRate = 11025
	desiredPrecision  = 2 // 16 bit
	desiredChannelNum = 2

	// impacts below this energy make no sound
	minEnergy = 0.5
	// energy range mapped onto the full volume range
	energyRange = 4.0
)

var format = beep.Format{
	SampleRate:  desiredSampleRate,
	NumChannels: desiredChannelNum,
	Precision:   desiredPrecision,
}

// Volume maps the impact energy returned by a simulation step to a
// linear volume in [0, 1].
func Volume(e float32) float32 {
	if !(e >= minEnergy) {
		return 0
	}
	return min(1, (e-minEnergy)/energyRange)
}
