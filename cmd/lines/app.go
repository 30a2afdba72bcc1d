// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/config"
	"cogentcore.org/geom/logx"
	"github.com/spf13/cobra"
)

// App is the main app type that handles
// the logic for the lines tool.
type App struct {

	// Config is the loaded configuration, set before any command runs.
	Config *config.Config

	// configFile is the value of the --config flag.
	configFile string

	// verbosity flags
	vv, v, q bool
}

func newApp() *App {
	return &App{}
}

// root returns the root command with all of the subcommands added.
func (a *App) root() *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "lines",
		Short: "Line geometry in 3D space",
		Long: `lines computes distances, closest points and intersections of oriented
3D lines, converts between points and abscissas along a line, extracts
segments from abscissa intervals, and generates random unit vectors.

Points are written x,y,z and lines point:direction.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (toml, yaml or json)")
	pf.String("format", def.Format, "output format: json, yaml or toml")
	pf.String("log-level", def.LogLevel, "log level: debug, info, warn or error")
	pf.Int("indent", def.Indent, "indentation of json and yaml output")
	pf.BoolVar(&a.vv, "vv", false, "very verbose (debug) logging")
	pf.BoolVarP(&a.v, "verbose", "v", false, "verbose (info) logging")
	pf.BoolVarP(&a.q, "quiet", "q", false, "only log errors")

	cmd.AddCommand(
		a.lineCmd(),
		a.distanceCmd(),
		a.closestCmd(),
		a.intersectCmd(),
		a.pointCmd(),
		a.atCmd(),
		a.segmentsCmd(),
		a.sphereCmd(),
	)
	return cmd
}

// load loads the config and sets up logging.
func (a *App) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	a.Config = cfg
	switch {
	case a.vv || a.v || a.q:
		logx.UserLevel = logx.LevelFromFlags(a.vv, a.v, a.q)
	default:
		logx.UserLevel = errors.Log1(logx.LevelFromString(cfg.LogLevel))
	}
	logx.SetDefaultLogger()
	slog.Debug("loaded config", "file", a.configFile, "format", cfg.Format)
	return nil
}

// print writes the given result to the command output in the configured format.
func (a *App) print(cmd *cobra.Command, v any) error {
	return encode(cmd.OutOrStdout(), a.Config.Format, a.Config.Indent, v)
}
