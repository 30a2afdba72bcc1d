// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math64 is a float64 based line geometry package for 2D and 3D,
// built on the gonum spatial vector types. Lines carry an intrinsic 1D
// abscissa coordinate, which is used to describe sub-lines as sets of
// intervals and convert them back into segments.
package math64

import (
	"math"
	"strconv"

	"cogentcore.org/geom/base/errors"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Tolerances used by the line predicates. These values determine which
// branch (parallel, skew, coincident) a query takes, so they are fixed.
const (
	// ContainsTol is the absolute distance below which a point
	// is considered to belong to a line.
	ContainsTol = 1e-10

	// AngleTol is the angle in radians within which two
	// directions are considered parallel (or anti-parallel).
	AngleTol = 1e-10

	// SafeMin is the smallest normalized float64 (2^-1022). A cross product
	// norm below it marks two directions as parallel.
	SafeMin = 0x1p-1022

	// Epsilon is the largest relative spacing between adjacent float64
	// values (2^-53). A squared sine below it marks two directions as parallel.
	Epsilon = 0x1p-53
)

// ErrZeroNorm is returned when a vector that must have a direction
// has a norm of exactly zero.
var ErrZeroNorm = errors.New("zero norm")

// Infinity is positive infinity.
var Infinity = math.Inf(1)

// Vec3 returns a new [r3.Vec] with the given x, y and z components.
func Vec3(x, y, z float64) r3.Vec {
	return r3.Vec{X: x, Y: y, Z: z}
}

// Vec2 returns a new [r2.Vec] with the given x and y components.
func Vec2(x, y float64) r2.Vec {
	return r2.Vec{X: x, Y: y}
}

// IsNaN3 returns true if any component of v is NaN.
func IsNaN3(v r3.Vec) bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// Angle3 returns the angle between the two vectors, in the range [0, Pi].
// Nearly aligned vectors use the norm of the cross product, which is
// accurate where the arc cosine of the dot product is not.
// An error wrapping [ErrZeroNorm] is returned if either vector is zero.
func Angle3(u, v r3.Vec) (float64, error) {
	np := r3.Norm(u) * r3.Norm(v)
	if np == 0 {
		return 0, errors.Errorf("math64.Angle3: angle between %v and %v: %w", u, v, ErrZeroNorm)
	}
	return angle3(u, v, np), nil
}

// angle3 is [Angle3] for a known non-zero norm product np.
func angle3(u, v r3.Vec, np float64) float64 {
	dot := r3.Dot(u, v)
	threshold := np * 0.9999
	if dot < -threshold || dot > threshold {
		sin := r3.Norm(r3.Cross(u, v)) / np
		if dot >= 0 {
			return math.Asin(sin)
		}
		return math.Pi - math.Asin(sin)
	}
	return math.Acos(dot / np)
}

// fstr formats a float64 compactly for String methods.
func fstr(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func vecString3(v r3.Vec) string {
	return "(" + fstr(v.X) + ", " + fstr(v.Y) + ", " + fstr(v.Z) + ")"
}

func vecString2(v r2.Vec) string {
	return "(" + fstr(v.X) + ", " + fstr(v.Y) + ")"
}
