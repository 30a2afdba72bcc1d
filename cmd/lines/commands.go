// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/base/randx"
	"cogentcore.org/geom/config"
	"cogentcore.org/geom/math64"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"
)

// lineFlags adds the --line flag, and the --other flag if other is true.
func lineFlags(cmd *cobra.Command, other bool) {
	cmd.Flags().String("line", "", "the line, as px,py,pz:dx,dy,dz")
	cmd.MarkFlagRequired("line")
	if other {
		cmd.Flags().String("other", "", "the other line, as px,py,pz:dx,dy,dz")
		cmd.MarkFlagRequired("other")
	}
}

// lineFlag returns the line parsed from the named flag.
func lineFlag(cmd *cobra.Command, name string) (math64.Line3, error) {
	s, err := cmd.Flags().GetString(name)
	if err != nil {
		return math64.Line3{}, err
	}
	l, err := parseLine(s)
	if err != nil {
		return math64.Line3{}, errors.Errorf("--%s: %w", name, err)
	}
	return l, nil
}

// twoLines returns the lines of the --line and --other flags.
func twoLines(cmd *cobra.Command) (l, o math64.Line3, err error) {
	if l, err = lineFlag(cmd, "line"); err != nil {
		return
	}
	o, err = lineFlag(cmd, "other")
	return
}

type lineResult struct {
	Origin    point `json:"origin" yaml:"origin" toml:"origin"`
	Direction point `json:"direction" yaml:"direction" toml:"direction"`
}

func (a *App) lineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line",
		Short: "Show the normalized form of a line: its unit direction and the point closest to the origin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lineFlag(cmd, "line")
			if err != nil {
				return err
			}
			if rev, _ := cmd.Flags().GetBool("revert"); rev {
				l = l.Revert()
			}
			return a.print(cmd, lineResult{Origin: toPoint(l.Origin()), Direction: toPoint(l.Direction())})
		},
	}
	lineFlags(cmd, false)
	cmd.Flags().Bool("revert", false, "revert the direction of the line")
	return cmd
}

type distanceResult struct {
	Distance coord `json:"distance" yaml:"distance" toml:"distance"`
	Similar  bool  `json:"similar" yaml:"similar" toml:"similar"`
}

func (a *App) distanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Compute the shortest distance between two lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, o, err := twoLines(cmd)
			if err != nil {
				return err
			}
			d := l.DistanceToLine(o)
			slog.Info("distance", "line", l, "other", o, "distance", d)
			return a.print(cmd, distanceResult{Distance: coord(d), Similar: l.IsSimilarTo(o)})
		},
	}
	lineFlags(cmd, true)
	return cmd
}

type closestResult struct {
	Point      point `json:"point" yaml:"point" toml:"point"`
	OtherPoint point `json:"other_point" yaml:"other_point" toml:"other_point"`
}

func (a *App) closestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "closest",
		Short: "Compute the points of each line closest to the other line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, o, err := twoLines(cmd)
			if err != nil {
				return err
			}
			return a.print(cmd, closestResult{
				Point:      toPoint(l.ClosestPointToLine(o)),
				OtherPoint: toPoint(o.ClosestPointToLine(l)),
			})
		},
	}
	lineFlags(cmd, true)
	return cmd
}

type intersectResult struct {
	Intersects bool   `json:"intersects" yaml:"intersects" toml:"intersects"`
	Point      *point `json:"point,omitempty" yaml:"point,omitempty" toml:"point,omitempty"`
}

func (a *App) intersectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "intersect",
		Short: "Compute the intersection point of two lines, if any",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, o, err := twoLines(cmd)
			if err != nil {
				return err
			}
			res := intersectResult{}
			if p, ok := l.Intersection(o); ok {
				res.Intersects = true
				res.Point = toPointPtr(p)
			}
			return a.print(cmd, res)
		},
	}
	lineFlags(cmd, true)
	return cmd
}

type pointResult struct {
	Abscissa   coord `json:"abscissa" yaml:"abscissa" toml:"abscissa"`
	Distance   coord `json:"distance" yaml:"distance" toml:"distance"`
	Contains   bool  `json:"contains" yaml:"contains" toml:"contains"`
	Projection point `json:"projection" yaml:"projection" toml:"projection"`
}

func (a *App) pointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "point",
		Short: "Locate a point relative to a line: its abscissa, distance and projection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lineFlag(cmd, "line")
			if err != nil {
				return err
			}
			ps, _ := cmd.Flags().GetString("point")
			p, err := parsePoint(ps)
			if err != nil {
				return errors.Errorf("--point: %w", err)
			}
			ab := l.Abscissa(p)
			return a.print(cmd, pointResult{
				Abscissa:   coord(ab),
				Distance:   coord(l.DistanceToPoint(p)),
				Contains:   l.Contains(p),
				Projection: toPoint(l.PointAt(ab)),
			})
		},
	}
	lineFlags(cmd, false)
	cmd.Flags().String("point", "", "the point, as x,y,z")
	cmd.MarkFlagRequired("point")
	return cmd
}

type atResult struct {
	Point point `json:"point" yaml:"point" toml:"point"`
}

func (a *App) atCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "at",
		Short: "Compute the point of a line at a given abscissa",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lineFlag(cmd, "line")
			if err != nil {
				return err
			}
			ab, _ := cmd.Flags().GetFloat64("abscissa")
			return a.print(cmd, atResult{Point: toPoint(l.PointAt(ab))})
		},
	}
	lineFlags(cmd, false)
	cmd.Flags().Float64("abscissa", 0, "the abscissa along the line")
	return cmd
}

type segment struct {
	Start point `json:"start" yaml:"start" toml:"start"`
	End   point `json:"end" yaml:"end" toml:"end"`
}

type segmentsResult struct {
	Length   coord     `json:"length" yaml:"length" toml:"length"`
	Segments []segment `json:"segments" yaml:"segments" toml:"segments"`
}

func (a *App) segmentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segments",
		Short: "Extract the segments of a line covered by abscissa intervals",
		Long: `Extract the segments of a line covered by the union of the given abscissa
intervals (or their complement). Interval bounds may be -inf or inf, which
result in half-infinite segments. Without intervals, the whole line is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := lineFlag(cmd, "line")
			if err != nil {
				return err
			}
			strs, _ := cmd.Flags().GetStringArray("interval")
			ivs := math64.Intervals(nil)
			if len(strs) == 0 {
				ivs = math64.FullIntervals()
			}
			for _, s := range strs {
				iv, err := parseInterval(s)
				if err != nil {
					return errors.Errorf("--interval: %w", err)
				}
				ivs = math64.Union(ivs, math64.NewIntervals(iv))
			}
			if comp, _ := cmd.Flags().GetBool("complement"); comp {
				ivs = ivs.Complement()
			}
			sub := math64.NewSubLine[r3.Vec](l, ivs)
			if rev, _ := cmd.Flags().GetBool("reverse"); rev {
				sub = sub.Reverse()
			}
			slog.Debug("segments", "line", l, "intervals", sub.Remaining)
			res := segmentsResult{Length: coord(sub.Length()), Segments: []segment{}}
			for _, s := range sub.Segments() {
				res.Segments = append(res.Segments, segment{Start: toPoint(s.Start), End: toPoint(s.End)})
			}
			return a.print(cmd, res)
		},
	}
	lineFlags(cmd, false)
	cmd.Flags().StringArray("interval", nil, "an abscissa interval, as min,max (repeatable)")
	cmd.Flags().Bool("complement", false, "use the complement of the intervals")
	cmd.Flags().Bool("reverse", false, "traverse the segments in the opposite direction")
	return cmd
}

type sphereResult struct {
	Vectors [][]float64 `json:"vectors" yaml:"vectors" toml:"vectors"`
}

func (a *App) sphereCmd() *cobra.Command {
	def := config.Default()
	cmd := &cobra.Command{
		Use:   "sphere",
		Short: "Generate random unit vectors, isotropically distributed on the unit sphere",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc := a.Config.Sphere
			var rnd randx.Rand
			if sc.Seed != 0 {
				rnd = randx.NewSysRand(sc.Seed)
			}
			us := randx.NewUnitSphere(sc.Dim, rnd)
			res := sphereResult{Vectors: make([][]float64, sc.Count)}
			for i := range res.Vectors {
				res.Vectors[i] = us.Next()
			}
			return a.print(cmd, res)
		},
	}
	cmd.Flags().Int("sphere-dim", def.Sphere.Dim, "the dimension of the vectors")
	cmd.Flags().Int("sphere-count", def.Sphere.Count, "the number of vectors")
	cmd.Flags().Int64("sphere-seed", def.Sphere.Seed, "the random seed (0 for the global source)")
	return cmd
}
