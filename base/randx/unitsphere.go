// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r3"
)

// UnitSphere generates random vectors isotropically distributed
// on the surface of the unit sphere of a given dimension.
// Each vector is made of independent standard gaussian components,
// normalized to unit length (see https://mathworld.wolfram.com/SpherePointPicking.html).
type UnitSphere struct {

	// Dim is the space dimension.
	Dim int

	// Rand is the source of the gaussian components.
	Rand Rand
}

// NewUnitSphere returns a new [UnitSphere] generator with the given
// dimension. Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func NewUnitSphere(dim int, randOpt ...Rand) *UnitSphere {
	return &UnitSphere{Dim: dim, Rand: randOrGlobal(randOpt)}
}

// Next returns a new random unit vector with Dim components.
// It returns nil if Dim is not positive.
func (us *UnitSphere) Next() []float64 {
	if us.Dim <= 0 {
		return nil
	}
	v := make([]float64, us.Dim)
	for {
		for i := range v {
			v[i] = GaussianGen(0, 1, us.Rand)
		}
		// all-zero samples cannot be normalized
		if n := floats.Norm(v, 2); n > 0 {
			floats.Scale(1/n, v)
			return v
		}
	}
}

// Vector3 returns a new random 3D unit vector, regardless of Dim.
func (us *UnitSphere) Vector3() r3.Vec {
	s := UnitSphere{Dim: 3, Rand: us.Rand}
	v := s.Next()
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}
}
