// SPDX-License-Identifier: GPL-2.0-or-later

package record

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"goball/math/vec"
)

func binaryUvarint(r io.ByteReader) (uint64, error) {
	n, err := binary.ReadUvarint(r)
	if err == io.ErrUnexpectedEOF {
		return 0, errors.Wrap(err, "truncated length")
	}
	return n, err
}

type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

// fields calls fn for every field of the message m. fn returns the
// number of bytes it consumed, 0 skips the field.
func fields(m []byte, fn fieldFunc) error {
	for len(m) > 0 {
		num, typ, n := protowire.ConsumeTag(m)
		if n < 0 {
			return protowire.ParseError(n)
		}
		m = m[n:]
		n, err := fn(num, typ, m)
		if err != nil {
			return errors.Wrapf(err, "field %d", num)
		}
		if n == 0 {
			n = protowire.ConsumeFieldValue(num, typ, m)
		}
		if n < 0 {
			return errors.Wrapf(protowire.ParseError(n), "field %d", num)
		}
		m = m[n:]
	}
	return nil
}

func wantType(typ, want protowire.Type) error {
	if typ != want {
		return errors.Errorf("wire type %d, want %d", typ, want)
	}
	return nil
}

func consumeFloat(typ protowire.Type, b []byte, f *float32) (int, error) {
	if err := wantType(typ, protowire.Fixed32Type); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeFixed32(b)
	*f = math.Float32frombits(v)
	return n, nil
}

func consumeInt(typ protowire.Type, b []byte, i *int) (int, error) {
	if err := wantType(typ, protowire.VarintType); err != nil {
		return 0, err
	}
	v, n := protowire.ConsumeVarint(b)
	*i = int(v)
	return n, nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if err := wantType(typ, protowire.BytesType); err != nil {
		return nil, 0, err
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeVec(typ protowire.Type, b []byte, v *vec.Vec3) (int, error) {
	m, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	if len(m) != 12 {
		return 0, errors.Errorf("vector of %d bytes", len(m))
	}
	var a [3]float32
	for i := range a {
		a[i] = math.Float32frombits(binary.LittleEndian.Uint32(m[4*i:]))
	}
	*v = vec.VFromA(a)
	return n, nil
}

func (h *Header) unmarshal(m []byte) error {
	return fields(m, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case headerID:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return 0, err
			}
			if h.ID, err = uuid.FromBytes(v); err != nil {
				return 0, err
			}
			return n, nil
		case headerScene:
			v, n, err := consumeBytes(typ, b)
			h.Scene = string(v)
			return n, err
		case headerTick:
			return consumeFloat(typ, b, &h.Tick)
		case headerGravity:
			return consumeFloat(typ, b, &h.Gravity)
		case headerCreated:
			v, n, err := consumeBytes(typ, b)
			if err != nil {
				return 0, err
			}
			ts := &timestamppb.Timestamp{}
			if err := proto.Unmarshal(v, ts); err != nil {
				return 0, err
			}
			h.Created = ts.AsTime()
			return n, nil
		case headerBall:
			return consumeInt(typ, b, &h.Ball)
		case headerFric:
			var f int
			n, err := consumeInt(typ, b, &f)
			h.Friction = f != 0
			return n, err
		case headerItemR:
			return consumeFloat(typ, b, &h.ItemRadius)
		}
		return 0, nil
	})
}

func (f *Frame) unmarshal(m []byte) error {
	return fields(m, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case frameTick:
			return consumeInt(typ, b, &f.Tick)
		case frameTime:
			return consumeFloat(typ, b, &f.Time)
		case framePos:
			return consumeVec(typ, b, &f.P)
		case frameVel:
			return consumeVec(typ, b, &f.V)
		case frameEnergy:
			return consumeFloat(typ, b, &f.Energy)
		case frameStops:
			return consumeInt(typ, b, &f.Stops)
		case frameDigest:
			if err := wantType(typ, protowire.Fixed64Type); err != nil {
				return 0, err
			}
			v, n := protowire.ConsumeFixed64(b)
			f.Digest = v
			return n, nil
		case frameEvents:
			return consumeInt(typ, b, &f.Events)
		}
		return 0, nil
	})
}
