// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// GaussianGen returns a gaussian (normally) distributed number with
// given mean and sigma (standard deviation).
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func GaussianGen(mean, sigma float64, randOpt ...Rand) float64 {
	rnd := randOrGlobal(randOpt)
	return mean + sigma*rnd.NormFloat64()
}
