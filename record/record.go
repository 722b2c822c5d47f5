// SPDX-License-Identifier: GPL-2.0-or-later

// Package record stores step traces. A trace is a header followed by
// one frame per simulation tick, each a length prefixed message in
// protobuf wire format.
package record

import (
	"bufio"
	"io"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"

	"goball/math/vec"
)

const (
	// stop decoding instead of allocating absurd buffers
	maxMessageSize = 1 << 16
)

// Header fields
const (
	headerID      protowire.Number = 1
	headerScene   protowire.Number = 2
	headerTick    protowire.Number = 3
	headerGravity protowire.Number = 4
	headerCreated protowire.Number = 5
	headerBall    protowire.Number = 6
	headerFric    protowire.Number = 7
	headerItemR   protowire.Number = 8
)

// Frame fields
const (
	frameTick   protowire.Number = 1
	frameTime   protowire.Number = 2
	framePos    protowire.Number = 3
	frameVel    protowire.Number = 4
	frameEnergy protowire.Number = 5
	frameStops  protowire.Number = 6
	frameDigest protowire.Number = 7
	frameEvents protowire.Number = 8
)

// Events seen during a tick
const (
	EventItem = 1 << iota
	EventGoal
	EventJump
	EventSwitch
)

type Header struct {
	ID      uuid.UUID
	Scene   string
	Tick    float32
	Gravity float32
	Ball    int
	Created time.Time
	// Friction and ItemRadius complete the settings a replay needs
	Friction   bool
	ItemRadius float32
}

type Frame struct {
	Tick   int
	Time   float32
	P      vec.Vec3
	V      vec.Vec3
	Energy float32
	Stops  int
	Digest uint64
	Events int
}

func appendVec(b []byte, num protowire.Number, v vec.Vec3) []byte {
	var m []byte
	for _, f := range v.Array() {
		m = protowire.AppendFixed32(m, math.Float32bits(f))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, m)
}

func appendFloat(b []byte, num protowire.Number, f float32) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(f))
}

func appendVarint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func (h *Header) marshal() ([]byte, error) {
	var b []byte
	b = protowire.AppendTag(b, headerID, protowire.BytesType)
	b = protowire.AppendBytes(b, h.ID[:])
	b = protowire.AppendTag(b, headerScene, protowire.BytesType)
	b = protowire.AppendString(b, h.Scene)
	b = appendFloat(b, headerTick, h.Tick)
	b = appendFloat(b, headerGravity, h.Gravity)
	ts, err := proto.Marshal(timestamppb.New(h.Created))
	if err != nil {
		return nil, errors.Wrap(err, "encoding creation time")
	}
	b = protowire.AppendTag(b, headerCreated, protowire.BytesType)
	b = protowire.AppendBytes(b, ts)
	b = appendVarint(b, headerBall, uint64(h.Ball))
	b = appendVarint(b, headerFric, protowire.EncodeBool(h.Friction))
	b = appendFloat(b, headerItemR, h.ItemRadius)
	return b, nil
}

func (f *Frame) marshal() []byte {
	var b []byte
	b = appendVarint(b, frameTick, uint64(f.Tick))
	b = appendFloat(b, frameTime, f.Time)
	b = appendVec(b, framePos, f.P)
	b = appendVec(b, frameVel, f.V)
	b = appendFloat(b, frameEnergy, f.Energy)
	b = appendVarint(b, frameStops, uint64(f.Stops))
	b = protowire.AppendTag(b, frameDigest, protowire.Fixed64Type)
	b = protowire.AppendFixed64(b, f.Digest)
	b = appendVarint(b, frameEvents, uint64(f.Events))
	return b
}

// Writer appends frames to a trace.
type Writer struct {
	w      *bufio.Writer
	header Header
	frames int
}

// NewWriter writes the header to w. A zero header ID is replaced with
// a fresh random one.
func NewWriter(w io.Writer, h Header) (*Writer, error) {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	if h.Created.IsZero() {
		h.Created = time.Now()
	}
	rw := &Writer{w: bufio.NewWriter(w), header: h}
	m, err := h.marshal()
	if err != nil {
		return nil, err
	}
	if err := rw.write(m); err != nil {
		return nil, errors.Wrap(err, "writing header")
	}
	return rw, nil
}

func (w *Writer) Header() Header { return w.header }
func (w *Writer) Frames() int    { return w.frames }

func (w *Writer) write(m []byte) error {
	b := protowire.AppendVarint(nil, uint64(len(m)))
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	_, err := w.w.Write(m)
	return err
}

func (w *Writer) WriteFrame(f Frame) error {
	if err := w.write(f.marshal()); err != nil {
		return errors.Wrapf(err, "writing frame %d", w.frames)
	}
	w.frames++
	return nil
}

// Flush writes buffered frames to the underlying writer.
func (w *Writer) Flush() error {
	return errors.Wrap(w.w.Flush(), "flushing trace")
}

// Reader decodes a trace.
type Reader struct {
	r      *bufio.Reader
	header Header
}

// NewReader reads and decodes the header of the trace in r.
func NewReader(r io.Reader) (*Reader, error) {
	rr := &Reader{r: bufio.NewReader(r)}
	m, err := rr.read()
	if err == io.EOF {
		return nil, errors.New("empty trace")
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}
	if err := rr.header.unmarshal(m); err != nil {
		return nil, errors.Wrap(err, "decoding header")
	}
	return rr, nil
}

func (r *Reader) Header() Header { return r.header }

func (r *Reader) read() ([]byte, error) {
	n, err := binaryUvarint(r.r)
	if err != nil {
		return nil, err
	}
	if n > maxMessageSize {
		return nil, errors.Errorf("message of %d bytes", n)
	}
	m := make([]byte, n)
	if _, err := io.ReadFull(r.r, m); err != nil {
		return nil, errors.Wrap(io.ErrUnexpectedEOF, "truncated message")
	}
	return m, nil
}

// Next returns the next frame. It returns io.EOF at the end of the
// trace.
func (r *Reader) Next() (Frame, error) {
	var f Frame
	m, err := r.read()
	if err != nil {
		return f, err
	}
	if err := f.unmarshal(m); err != nil {
		return f, errors.Wrap(err, "decoding frame")
	}
	return f, nil
}

// ReadAll returns all remaining frames.
func (r *Reader) ReadAll() ([]Frame, error) {
	var frames []Frame
	for {
		f, err := r.Next()
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, err
		}
		frames = append(frames, f)
	}
}
