// SPDX-License-Identifier: GPL-2.0-or-later

package record

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"

	"goball/math/vec"
	"goball/solid"
)

type digestBuf []byte

func (b digestBuf) f(f float32) digestBuf {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(f))
}

func (b digestBuf) i(i int) digestBuf {
	return binary.LittleEndian.AppendUint64(b, uint64(i))
}

func (b digestBuf) t(t bool) digestBuf {
	if t {
		return append(b, 1)
	}
	return append(b, 0)
}

func (b digestBuf) v(v vec.Vec3) digestBuf {
	return b.f(v.X).f(v.Y).f(v.Z)
}

// Digest hashes the mutable state of l. Two runs of the same scene
// agree on every digest exactly when they are bit for bit identical.
func Digest(l *solid.Level) uint64 {
	var b digestBuf
	for _, p := range l.Paths {
		b = b.t(p.Enabled)
	}
	for _, bp := range l.Bodies {
		b = b.f(bp.T).i(bp.Path)
	}
	for _, hp := range l.Items {
		b = b.i(hp.Type)
	}
	for _, x := range l.Switches {
		b = b.f(x.T).t(x.F).t(x.Entered)
	}
	for _, up := range l.Balls {
		b = b.v(up.P).v(up.V).v(up.W).f(up.R)
		for _, e := range up.Basis {
			b = b.v(e)
		}
		for _, e := range up.PendE {
			b = b.v(e)
		}
		b = b.v(up.PendW)
	}
	return xxh3.Hash(b)
}
