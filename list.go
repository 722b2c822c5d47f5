// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"goball/config"
	"goball/cvar"
	"goball/scene"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in scenes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listScenes(cmd.OutOrStdout())
	},
}

var cvarlistCmd = &cobra.Command{
	Use:   "cvarlist",
	Short: "List all cvars with their current values",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cvar.List(cmd.OutOrStdout())
	},
}

var cvarsaveCmd = &cobra.Command{
	Use:   "cvarsave [file]",
	Short: "Write the archived cvars to a YAML config",
	Long: `Write the archived cvars to file. Without an argument the file
given by --config is overwritten.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if len(args) > 0 {
			path = args[0]
		}
		if path == "" {
			return errors.New("cvarsave: no file given and no --config set")
		}
		if err := config.Save(path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	},
}

func listScenes(w io.Writer) {
	scenes := scene.All()
	width := 4
	for _, s := range scenes {
		width = max(width, len(s.Name))
	}
	fmt.Fprintf(w, "  %-*s  %s\n", width, "Name", "Description")
	fmt.Fprintf(w, "  %-*s  %s\n", width, "----", "-----------")
	for _, s := range scenes {
		fmt.Fprintf(w, "  %-*s  %s\n", width, s.Name, s.Description)
	}
}
