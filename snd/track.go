// SPDX-License-Identifier: GPL-2.0-or-later

package snd

import (
	"io"
	gmath "math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/wav"
	"github.com/pkg/errors"

	"goball/math/vec"
)

const clickLength = 40 * time.Millisecond

type Impact struct {
	Time   float32 // seconds since the start of the track
	Volume float32
	Origin vec.Vec3
}

// Track collects impacts heard by a listener and renders them as a
// click track.
type Track struct {
	Listener vec.Vec3
	Right    vec.Vec3
	Pitch    float64 // click frequency in Hz
	Master   float64 // master volume in [0, 1]
	impacts  []Impact
}

func NewTrack(pitch, master float64) *Track {
	return &Track{Right: vec.Vec3{X: 1}, Pitch: pitch, Master: master}
}

// Add records an impact of energy e at time t. Inaudible impacts are
// dropped. It reports whether the impact was kept.
func (tr *Track) Add(t, e float32, origin vec.Vec3) bool {
	v := Volume(e)
	if v == 0 {
		return false
	}
	tr.impacts = append(tr.impacts, Impact{Time: t, Volume: v, Origin: origin})
	return true
}

func (tr *Track) Impacts() []Impact {
	return tr.impacts
}

func (tr *Track) click(sr beep.SampleRate, im Impact) (beep.Streamer, error) {
	tone, err := generators.SineTone(sr, tr.Pitch)
	if err != nil {
		return nil, err
	}
	ps := &playingSound{
		distanceMultiplier: 1 / clipDistance,
		masterVolume:       float64(im.Volume),
		origin:             im.Origin,
		sound:              beep.Take(sr.N(clickLength), tone),
	}
	ps.spatialize(tr.Listener, tr.Right)
	offset := sr.N(time.Duration(float64(im.Time) * float64(time.Second)))
	return beep.Seq(beep.Silence(offset), ps), nil
}

// Render writes length seconds of the track to w as a 16 bit stereo
// WAV file.
func (tr *Track) Render(w io.WriteSeeker, length float32) error {
	sr := format.SampleRate
	var mixer beep.Mixer
	for _, im := range tr.impacts {
		if im.Time < 0 || im.Time >= length {
			continue
		}
		c, err := tr.click(sr, im)
		if err != nil {
			return errors.Wrap(err, "generating click")
		}
		mixer.Add(c)
	}
	var s beep.Streamer = beep.Seq(&mixer, beep.Silence(-1))
	if tr.Master < 1 {
		s = &effects.Volume{
			Streamer: s,
			Base:     2,
			Volume:   gmath.Log2(tr.Master),
			Silent:   tr.Master <= 0,
		}
	}
	n := sr.N(time.Duration(float64(length) * float64(time.Second)))
	if err := wav.Encode(w, beep.Take(n, s), format); err != nil {
		return errors.Wrap(err, "encoding wav")
	}
	return nil
}
