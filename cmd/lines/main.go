// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lines computes distances, closest points, intersections
// and segments of 3D lines, and generates random unit vectors.
//
// Points are written x,y,z and lines point:direction, for example:
//
//	lines distance --line 0,0,0:1,0,0 --other 0,0,1:0,1,0
//	lines segments --line -1,-7,0:8,6,0 --interval -inf,0 --interval 1,2
package main

import (
	"os"
)

func main() {
	if err := newApp().root().Execute(); err != nil {
		os.Exit(1)
	}
}
