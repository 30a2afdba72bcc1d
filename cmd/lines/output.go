// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"

	"cogentcore.org/geom/base/errors"
	"github.com/pelletier/go-toml/v2"
	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

// coord is a number that is written as a json string
// ("NaN", "+Inf" or "-Inf") when it is not finite.
type coord float64

func (c coord) MarshalJSON() ([]byte, error) {
	f := float64(c)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

func (c *coord) UnmarshalJSON(b []byte) error {
	s := string(b)
	if uq, err := strconv.Unquote(s); err == nil {
		s = uq
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errors.Errorf("invalid coordinate %s", b)
	}
	*c = coord(f)
	return nil
}

// point is the output form of a 3D point.
type point struct {
	X coord `json:"x" yaml:"x" toml:"x"`
	Y coord `json:"y" yaml:"y" toml:"y"`
	Z coord `json:"z" yaml:"z" toml:"z"`
}

func toPoint(v r3.Vec) point {
	return point{X: coord(v.X), Y: coord(v.Y), Z: coord(v.Z)}
}

func toPointPtr(v r3.Vec) *point {
	p := toPoint(v)
	return &p
}

// encode writes v to w in the given format (json, yaml, or toml).
// v must be a struct for the toml format.
func encode(w io.Writer, format string, indent int, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", indent))
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		if indent > 0 {
			enc.SetIndent(indent)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(v)
	}
	return errors.Errorf("unknown output format %q", format)
}
