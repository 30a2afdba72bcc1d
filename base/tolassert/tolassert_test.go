// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tolassert

import (
	"testing"
)

func TestEqual(t *testing.T) {
	Equal(t, 3.1415, 3.14159)
	Equal(t, float32(2), 2.00001)
	EqualTol(t, 1.0, 1.0+1e-12, 1e-10)
	EqualTol(t, float32(1), 1.04, 0.05)
}

type recorder struct {
	failed bool
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failed = true
}

func TestNotEqual(t *testing.T) {
	r := &recorder{}
	if EqualTol(r, 1.0, 1.1, 1e-3) {
		t.Error("expected 1.0 and 1.1 not to be equal within 1e-3")
	}
	if !r.failed {
		t.Error("expected a failure to be reported")
	}
}
