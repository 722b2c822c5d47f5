// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goball/conlog"
	"goball/cvars"
	"goball/gametime"
	"goball/math/vec"
	"goball/record"
	"goball/scene"
	"goball/snd"
	"goball/solid"
)

var (
	flagRecord   string
	flagWav      string
	flagRealtime bool
)

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Simulate a scene",
	Long: `Simulates ball 0 of a scene for sim_frames ticks of sim_tick seconds
and prints a summary. The trace can be recorded for replay and the impacts
rendered as a click track.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScene(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	runCmd.Flags().StringVar(&flagRecord, "record", "", "write the trace to this file")
	runCmd.Flags().StringVar(&flagWav, "wav", "", "render impact sounds to this WAV file")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "pace the simulation by the wall clock")
}

type options struct {
	tick       float32
	gravity    float32
	frames     int
	friction   bool
	itemRadius float32
	ball       int
}

func optionsFromCvars() options {
	return options{
		tick:       cvars.SimTick.Value(),
		gravity:    cvars.SimGravity.Value(),
		frames:     int(cvars.SimFrames.Value()),
		friction:   cvars.SimFriction.Bool(),
		itemRadius: cvars.SimItemRadius.Value(),
	}
}

func (o options) header(name string) record.Header {
	return record.Header{
		Scene:      name,
		Tick:       o.tick,
		Gravity:    o.gravity,
		Ball:       o.ball,
		Friction:   o.friction,
		ItemRadius: o.itemRadius,
	}
}

func (o options) validate() error {
	if !(o.tick > 0) {
		return errors.Errorf("tick %v must be positive", o.tick)
	}
	if o.frames < 0 {
		return errors.Errorf("negative frame count %d", o.frames)
	}
	return nil
}

type summary struct {
	Frames    int
	Coins     int
	Goals     int
	Jumps     int
	Switches  int
	Stops     int
	MaxEnergy float32
	Digest    uint64
}

func (s summary) String() string {
	return fmt.Sprintf("%d frames, %d coins, %d goals, %d jumps, %d switches, %d stops, max impact %.3f, digest %016x",
		s.Frames, s.Coins, s.Goals, s.Jumps, s.Switches, s.Stops, s.MaxEnergy, s.Digest)
}

// simulation advances one ball through a level tick by tick and runs
// the gameplay sensors after each tick.
type simulation struct {
	l      *solid.Level
	opts   options
	g      vec.Vec3
	stops  int
	sum    summary
	inGoal bool
}

func newSimulation(l *solid.Level, o options) *simulation {
	return &simulation{l: l, opts: o, g: vec.Vec3{Y: -o.gravity}}
}

// tick advances the simulation by one tick and returns the frame
// describing the new state.
func (s *simulation) tick() record.Frame {
	l := s.l
	ui := s.opts.ball

	var stops *int
	if s.opts.friction {
		stops = &s.stops
	}
	e := l.Step(s.g, s.opts.tick, ui, stops)

	events := 0
	if hp := l.ItemTest(ui, s.opts.itemRadius); hp != nil {
		if hp.Type == solid.ItemCoin {
			s.sum.Coins += hp.N
		}
		conlog.Debug("item", zap.Int("type", hp.Type), zap.Int("value", hp.N))
		hp.Type = solid.ItemNone
		events |= record.EventItem
	}
	if zp := l.GoalTest(ui); zp != nil {
		if !s.inGoal {
			s.sum.Goals++
			conlog.Info("goal reached", zap.Int("frame", s.sum.Frames))
		}
		s.inGoal = true
		events |= record.EventGoal
	} else {
		s.inGoal = false
	}
	if r, dst := l.JumpTest(ui); r == solid.JumpInside {
		l.Balls[ui].P = dst
		s.sum.Jumps++
		events |= record.EventJump
	}
	if l.SwitchTest(ui) {
		s.sum.Switches++
		events |= record.EventSwitch
	}

	s.sum.Frames++
	s.sum.Stops = s.stops
	s.sum.MaxEnergy = max(s.sum.MaxEnergy, e)
	s.sum.Digest = record.Digest(l)

	up := &l.Balls[ui]
	return record.Frame{
		Tick:   s.sum.Frames - 1,
		Time:   float32(s.sum.Frames) * s.opts.tick,
		P:      up.P,
		V:      up.V,
		Energy: e,
		Stops:  s.stops,
		Digest: s.sum.Digest,
		Events: events,
	}
}

// simulate runs all frames, handing each to fn.
func simulate(l *solid.Level, o options, fn func(record.Frame) error) (summary, error) {
	if err := o.validate(); err != nil {
		return summary{}, err
	}
	if o.ball < 0 || o.ball >= len(l.Balls) {
		return summary{}, errors.Errorf("no ball %d", o.ball)
	}
	s := newSimulation(l, o)
	for i := 0; i < o.frames; i++ {
		if err := fn(s.tick()); err != nil {
			return s.sum, err
		}
	}
	return s.sum, nil
}

func runScene(out io.Writer, name string) error {
	l, err := scene.Load(name)
	if err != nil {
		return err
	}
	o := optionsFromCvars()

	var (
		rec   *record.Writer
		trace *os.File
	)
	if flagRecord != "" {
		if trace, err = os.Create(flagRecord); err != nil {
			return errors.Wrap(err, "creating trace")
		}
		defer trace.Close()
		if rec, err = record.NewWriter(trace, o.header(name)); err != nil {
			return err
		}
		conlog.Info("recording", zap.String("file", flagRecord), zap.Stringer("run", rec.Header().ID))
	}

	track := snd.NewTrack(float64(cvars.SoundClickPitch.Value()), float64(cvars.Volume.Value()))
	var clock *gametime.GameTime
	pending := 0
	if flagRealtime {
		clock = gametime.New(float64(o.tick))
	}

	sum, err := simulate(l, o, func(f record.Frame) error {
		if clock != nil {
			for pending == 0 {
				time.Sleep(time.Millisecond)
				pending = clock.UpdateTime()
			}
			pending--
		}
		if f.Energy > 0 {
			track.Add(f.Time, f.Energy, f.P)
		}
		if rec != nil {
			return rec.WriteFrame(f)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if rec != nil {
		if err := rec.Flush(); err != nil {
			return err
		}
		if err := trace.Close(); err != nil {
			return errors.Wrap(err, "closing trace")
		}
	}
	if flagWav != "" {
		if err := renderTrack(track, flagWav, float32(sum.Frames)*o.tick); err != nil {
			return err
		}
	}
	conlog.Info("done", zap.String("scene", name), zap.Int("frames", sum.Frames),
		zap.Int("impacts", len(track.Impacts())))
	fmt.Fprintf(out, "%s: %v\n", name, sum)
	return nil
}

func renderTrack(tr *snd.Track, path string, length float32) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating wav")
	}
	if err := tr.Render(f, length); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing wav")
}
