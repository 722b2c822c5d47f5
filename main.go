// SPDX-License-Identifier: GPL-2.0-or-later

// goball simulates balls rolling through the built-in scenes.
//
// Usage:
//
//	goball list                 - list the scenes
//	goball run <scene>          - simulate a scene
//	goball replay <trace>       - re-simulate a recorded trace and compare
//	goball cvarlist             - show all cvars
//
// Global flags:
//
//	--config <file>     - YAML file applied over the cvar defaults
//	--set name=value    - cvar override, may be repeated
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"goball/config"
	"goball/conlog"
	"goball/cvars"
)

var (
	flagConfig string
	flagSet    []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		conlog.Error("goball failed", zap.Error(err))
		conlog.Sync()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "goball",
	Short:         "Simulate balls rolling through moving geometry",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		conlog.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "YAML config file")
	rootCmd.PersistentFlags().StringArrayVar(&flagSet, "set", nil, "cvar override as name=value")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(cvarlistCmd)
	rootCmd.AddCommand(cvarsaveCmd)
}

// setup applies the configuration and installs the logger.
func setup() error {
	if flagConfig != "" {
		if err := config.Load(flagConfig); err != nil {
			return err
		}
	}
	if err := config.Override(flagSet); err != nil {
		return err
	}
	level := cvars.LogLevel.String()
	if cvars.Developer.Bool() {
		level = "debug"
	}
	fc := conlog.FileConfig{}
	if f := cvars.LogFile.String(); f != "" {
		fc = conlog.DefaultFileConfig(f)
		fc.MaxSizeMB = int(cvars.LogMaxSize.Value())
	}
	return conlog.InitWithFileConfig(level, fc, true)
}
