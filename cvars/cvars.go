// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"goball/cvar"
)

var (
	Developer       *cvar.Cvar
	LogFile         *cvar.Cvar
	LogLevel        *cvar.Cvar
	LogMaxSize      *cvar.Cvar
	SimFrames       *cvar.Cvar
	SimFriction     *cvar.Cvar
	SimGravity      *cvar.Cvar
	SimItemRadius   *cvar.Cvar
	SimTick         *cvar.Cvar
	SimTimeScale    *cvar.Cvar
	SoundClickPitch *cvar.Cvar
	Version         *cvar.Cvar
	Volume          *cvar.Cvar
)

func init() {
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	LogFile = cvar.MustRegister("log_file", "", cvar.ARCHIVE)
	LogLevel = cvar.MustRegister("log_level", "info", cvar.ARCHIVE)
	LogMaxSize = cvar.MustRegister("log_maxsize", "10", cvar.ARCHIVE)
	SimFrames = cvar.MustRegister("sim_frames", "500", cvar.ARCHIVE)
	SimFriction = cvar.MustRegister("sim_friction", "1", cvar.ARCHIVE)
	SimGravity = cvar.MustRegister("sim_gravity", "9.8", cvar.ARCHIVE|cvar.NOTIFY)
	SimItemRadius = cvar.MustRegister("sim_itemradius", "0.15", cvar.NONE)
	SimTick = cvar.MustRegister("sim_tick", "0.01", cvar.ARCHIVE|cvar.NOTIFY)
	SimTimeScale = cvar.MustRegister("sim_timescale", "1", cvar.NONE)
	SoundClickPitch = cvar.MustRegister("snd_clickpitch", "880", cvar.ARCHIVE)
	Version = cvar.MustRegister("version", "1", cvar.ROM)
	Volume = cvar.MustRegister("volume", "0.7", cvar.ARCHIVE)
}
