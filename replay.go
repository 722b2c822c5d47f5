// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goball/conlog"
	"goball/math/vec"
	"goball/record"
	"goball/scene"
)

var replayCmd = &cobra.Command{
	Use:   "replay <trace>",
	Short: "Re-simulate a recorded trace and compare",
	Long: `Rebuilds the scene named in the trace header, simulates it with the
recorded settings and compares every frame. The first divergent frame is
reported as an error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening trace")
		}
		defer f.Close()
		return replay(cmd.OutOrStdout(), f)
	},
}

// divergence describes the first frame where a replay differs from its
// trace.
type divergence struct {
	Tick      int
	Want, Got record.Frame
}

func (d *divergence) Error() string {
	return fmt.Sprintf("frame %d diverges: recorded ball at %v, replayed at %v",
		d.Tick, d.Want.P, d.Got.P)
}

func replay(out io.Writer, r io.Reader) error {
	rd, err := record.NewReader(r)
	if err != nil {
		return err
	}
	h := rd.Header()
	conlog.Info("replaying", zap.Stringer("run", h.ID), zap.String("scene", h.Scene),
		zap.Time("created", h.Created))

	l, err := scene.Load(h.Scene)
	if err != nil {
		return err
	}
	want, err := rd.ReadAll()
	if err != nil {
		return err
	}
	o := options{
		tick:       h.Tick,
		gravity:    h.Gravity,
		frames:     len(want),
		friction:   h.Friction,
		itemRadius: h.ItemRadius,
		ball:       h.Ball,
	}
	i := 0
	sum, err := simulate(l, o, func(got record.Frame) error {
		w := want[i]
		i++
		if got.Digest != w.Digest || !vec.Equal(got.P, w.P) || got.Events != w.Events {
			conlog.Warn("replay diverged", zap.Int("frame", w.Tick),
				zap.Uint64("recorded", w.Digest), zap.Uint64("replayed", got.Digest))
			return &divergence{Tick: w.Tick, Want: w, Got: got}
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s (run %s): %d frames match\n", h.Scene, h.ID, sum.Frames)
	return nil
}
