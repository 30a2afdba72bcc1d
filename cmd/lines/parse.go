// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"cogentcore.org/geom/base/errors"
	"cogentcore.org/geom/math64"
	"gonum.org/v1/gonum/spatial/r3"
)

// parseFloats parses n comma separated numbers. Infinities
// (inf, +inf, -inf) are accepted.
func parseFloats(s string, n int) ([]float64, error) {
	fields := strings.Split(s, ",")
	if len(fields) != n {
		return nil, errors.Errorf("expected %d comma separated values, got %d in %q", n, len(fields), s)
	}
	res := make([]float64, n)
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, errors.Errorf("invalid number %q in %q", f, s)
		}
		res[i] = v
	}
	return res, nil
}

// parsePoint parses a point of the form x,y,z.
func parsePoint(s string) (r3.Vec, error) {
	v, err := parseFloats(s, 3)
	if err != nil {
		return r3.Vec{}, err
	}
	return math64.Vec3(v[0], v[1], v[2]), nil
}

// parseLine parses a line of the form px,py,pz:dx,dy,dz,
// which is a point of the line followed by its direction.
func parseLine(s string) (math64.Line3, error) {
	ps, ds, ok := strings.Cut(s, ":")
	if !ok {
		return math64.Line3{}, errors.Errorf("invalid line %q: expected point:direction", s)
	}
	p, err := parsePoint(ps)
	if err != nil {
		return math64.Line3{}, errors.Errorf("invalid line point: %w", err)
	}
	d, err := parsePoint(ds)
	if err != nil {
		return math64.Line3{}, errors.Errorf("invalid line direction: %w", err)
	}
	return math64.NewLine3(p, d)
}

// parseInterval parses an interval of the form min,max.
func parseInterval(s string) (math64.Interval, error) {
	v, err := parseFloats(s, 2)
	if err != nil {
		return math64.Interval{}, err
	}
	return math64.Iv(v[0], v[1]), nil
}
